package lint

import "github.com/yaklabco/codelint/pkg/config"

// SeveritySummary counts issues by severity.
// Error+Warning+Suggestion always equals Total.
type SeveritySummary struct {
	Error      int `json:"error"`
	Warning    int `json:"warning"`
	Suggestion int `json:"suggestion"`
	Total      int `json:"total"`
}

// Add counts one issue of the given severity. Unknown severities are ignored
// so the sum invariant holds.
func (s *SeveritySummary) Add(sev config.Severity) {
	switch sev {
	case config.SeverityError:
		s.Error++
	case config.SeverityWarning:
		s.Warning++
	case config.SeveritySuggestion:
		s.Suggestion++
	default:
		return
	}
	s.Total++
}

// Merge adds other into s element-wise.
func (s *SeveritySummary) Merge(other SeveritySummary) {
	s.Error += other.Error
	s.Warning += other.Warning
	s.Suggestion += other.Suggestion
	s.Total += other.Total
}

// Count returns the number of issues with the given severity.
func (s SeveritySummary) Count(sev config.Severity) int {
	switch sev {
	case config.SeverityError:
		return s.Error
	case config.SeverityWarning:
		return s.Warning
	case config.SeveritySuggestion:
		return s.Suggestion
	default:
		return 0
	}
}

// SummarizeIssues folds the severities of issues into a summary.
func SummarizeIssues(issues []Issue) SeveritySummary {
	var s SeveritySummary
	for _, issue := range issues {
		s.Add(issue.Severity)
	}
	return s
}

// FileAnalysis holds the issues found in one file.
type FileAnalysis struct {
	Path    string          `json:"file_path"`
	Issues  []Issue         `json:"issues"`
	Summary SeveritySummary `json:"summary"`
}

// NewFileAnalysis builds a FileAnalysis whose summary matches issues.
func NewFileAnalysis(path string, issues []Issue) FileAnalysis {
	if issues == nil {
		issues = []Issue{}
	}
	return FileAnalysis{
		Path:    path,
		Issues:  issues,
		Summary: SummarizeIssues(issues),
	}
}

// HasIssues returns true if any issues were found.
func (fa FileAnalysis) HasIssues() bool {
	return len(fa.Issues) > 0
}

// AnalysisResult aggregates the analyses of a run.
// It is not safe for concurrent use; callers add files one at a time.
type AnalysisResult struct {
	Files   []FileAnalysis  `json:"files"`
	Summary SeveritySummary `json:"summary"`
}

// AddFile appends a file analysis and merges its summary into the aggregate.
func (r *AnalysisResult) AddFile(fa FileAnalysis) {
	r.Files = append(r.Files, fa)
	r.Summary.Merge(fa.Summary)
}

// Issues returns every issue in file order.
func (r *AnalysisResult) Issues() []Issue {
	var out []Issue
	for _, fa := range r.Files {
		out = append(out, fa.Issues...)
	}
	return out
}

// FilesWithIssues returns the number of files that have at least one issue.
func (r *AnalysisResult) FilesWithIssues() int {
	n := 0
	for _, fa := range r.Files {
		if fa.HasIssues() {
			n++
		}
	}
	return n
}
