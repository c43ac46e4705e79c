package analysis

import (
	"time"

	"github.com/yaklabco/codelint/pkg/config"
	"github.com/yaklabco/codelint/pkg/lint"
)

// Report contains pre-computed views of a run.
// Computed once by Analyze, used by all renderers.
type Report struct {
	// Issues is the flat list in file order, then analyzer order.
	Issues []lint.Issue `json:"issues,omitempty"`

	// Files holds every analyzed file with its issues and summary.
	Files []lint.FileAnalysis `json:"files"`

	// Failures lists files that could not be analyzed.
	Failures []Failure `json:"errors,omitempty"`

	// ByFile groups issue counts by file path.
	ByFile []FileStats `json:"by_file,omitempty"`

	// ByRule groups issue counts by rule.
	ByRule []RuleStats `json:"by_rule,omitempty"`

	// ByCategory groups issue counts by category.
	ByCategory []CategoryStats `json:"by_category,omitempty"`

	// Totals contains aggregate statistics.
	Totals Totals `json:"totals"`

	// Summary is the severity fold over all analyzed files.
	Summary lint.SeveritySummary `json:"summary"`

	// Version is the report format version.
	Version string `json:"version"`

	// Timestamp is when the analysis was performed.
	Timestamp time.Time `json:"timestamp"`
}

// Failure records a file that could not be analyzed.
type Failure struct {
	Path  string `json:"file_path"`
	Error string `json:"error"`
}

// Counts holds per-severity issue counts for one group.
type Counts struct {
	Issues      int `json:"issues"`
	Errors      int `json:"errors"`
	Warnings    int `json:"warnings"`
	Suggestions int `json:"suggestions"`
}

func (c *Counts) add(sev config.Severity) {
	c.Issues++
	switch sev {
	case config.SeverityError:
		c.Errors++
	case config.SeverityWarning:
		c.Warnings++
	case config.SeveritySuggestion:
		c.Suggestions++
	}
}

// Totals contains aggregate statistics for the report.
type Totals struct {
	Counts

	Files           int `json:"files_checked"`
	FilesWithIssues int `json:"files_with_issues"`
	FilesFailed     int `json:"files_failed"`
}

// HasIssues returns true if there are any issues.
func (t Totals) HasIssues() bool {
	return t.Issues > 0
}

// HasErrors returns true if there are any error-severity issues.
func (t Totals) HasErrors() bool {
	return t.Errors > 0
}

// FileStats contains aggregated data for a single file.
type FileStats struct {
	Counts

	Path  string   `json:"path"`
	Rules []string `json:"rules,omitempty"`
}

// RuleStats contains aggregated data for a single rule.
type RuleStats struct {
	Counts

	Rule     string        `json:"rule"`
	Category lint.Category `json:"category"`
	Files    []string      `json:"files,omitempty"`
}

// CategoryStats contains aggregated data for a single category.
type CategoryStats struct {
	Counts

	Category lint.Category `json:"category"`
	Rules    []string      `json:"rules,omitempty"`
}
