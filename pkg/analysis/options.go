package analysis

// SortField specifies how grouped views are ordered.
type SortField string

const (
	// SortByCount sorts by issue count (descending by default).
	SortByCount SortField = "count"
	// SortByAlpha sorts alphabetically.
	SortByAlpha SortField = "alpha"
	// SortBySeverity sorts by severity (errors first).
	SortBySeverity SortField = "severity"
)

// IsValid returns true if the sort field is valid.
func (s SortField) IsValid() bool {
	switch s {
	case SortByCount, SortByAlpha, SortBySeverity:
		return true
	default:
		return false
	}
}

// Options configures the Analyze function.
type Options struct {
	// IncludeIssues includes the flat issue list.
	IncludeIssues bool

	// IncludeByFile includes the per-file view.
	IncludeByFile bool

	// IncludeByRule includes the per-rule view.
	IncludeByRule bool

	// IncludeByCategory includes the per-category view.
	IncludeByCategory bool

	// SortBy specifies how to sort the grouped views.
	SortBy SortField

	// SortDesc sorts counts in descending order (highest first).
	SortDesc bool
}

// DefaultOptions returns Options with every view enabled.
func DefaultOptions() Options {
	return Options{
		IncludeIssues:     true,
		IncludeByFile:     true,
		IncludeByRule:     true,
		IncludeByCategory: true,
		SortBy:            SortByCount,
		SortDesc:          true,
	}
}
