package runner

import (
	"github.com/yaklabco/codelint/pkg/lint"
)

// FileOutcome is the result of analyzing one target.
type FileOutcome struct {
	Target

	// Analysis holds the file's issues. Nil when Error is set.
	Analysis *lint.FileAnalysis

	// Error is set if the file could not be analyzed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the number of targets found during discovery.
	FilesDiscovered int

	// FilesAnalyzed is the number of files analyzed successfully.
	FilesAnalyzed int

	// FilesFailed is the number of files that could not be read or parsed.
	FilesFailed int

	// FilesWithIssues is the number of analyzed files with at least one issue.
	FilesWithIssues int

	// IssuesTotal is the number of issues across all analyzed files.
	IssuesTotal int
}

// Result is the overall runner result.
type Result struct {
	// Files holds one outcome per target, ordered by path.
	Files []FileOutcome

	// Analysis aggregates the successful files in path order.
	// Failed files are not part of it.
	Analysis lint.AnalysisResult

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasErrors reports whether any error-severity issue was found.
func (r *Result) HasErrors() bool {
	if r == nil {
		return false
	}
	return r.Analysis.Summary.Error > 0
}

// HasIssues reports whether any issue was found.
func (r *Result) HasIssues() bool {
	if r == nil {
		return false
	}
	return r.Analysis.Summary.Total > 0
}

// Failures returns the outcomes of files that could not be analyzed.
func (r *Result) Failures() []FileOutcome {
	if r == nil {
		return nil
	}
	var out []FileOutcome
	for _, outcome := range r.Files {
		if outcome.Error != nil {
			out = append(out, outcome)
		}
	}
	return out
}

// Fatal returns the error of the first explicitly named file that failed,
// or nil. Failures of files found by walking a directory are not fatal.
func (r *Result) Fatal() error {
	for _, outcome := range r.Failures() {
		if outcome.Explicit {
			return outcome.Error
		}
	}
	return nil
}

// accumulate records an outcome. Callers pass outcomes in path order.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil || outcome.Analysis == nil {
		r.Stats.FilesFailed++
		return
	}

	r.Stats.FilesAnalyzed++
	r.Stats.IssuesTotal += len(outcome.Analysis.Issues)
	if outcome.Analysis.HasIssues() {
		r.Stats.FilesWithIssues++
	}
	r.Analysis.AddFile(*outcome.Analysis)
}
