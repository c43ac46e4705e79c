package analyzers

import (
	"github.com/yaklabco/codelint/pkg/config"
	"github.com/yaklabco/codelint/pkg/lint"
	"github.com/yaklabco/codelint/pkg/syntax"
)

// PatternAnalyzer reports leftover debugging statements.
// The best-practice analyzer reports the same statements under its own
// severity; both issues are kept.
type PatternAnalyzer struct {
	lint.BaseAnalyzer
}

// NewPatternAnalyzer creates the patterns analyzer.
func NewPatternAnalyzer() *PatternAnalyzer {
	return &PatternAnalyzer{
		BaseAnalyzer: lint.NewBaseAnalyzer("patterns",
			lint.RuleInfo{
				ID:          "no-debugger",
				Category:    lint.CategoryCodeQuality,
				Severity:    config.SeveritySuggestion,
				Description: "debugger statement left in code",
			},
		),
	}
}

// Analyze implements lint.Analyzer.
func (a *PatternAnalyzer) Analyze(file *lint.File) []lint.Issue {
	var issues []lint.Issue
	for _, n := range syntax.FindByKind(file.Root(), "debugger_statement") {
		issues = append(issues, lint.NewIssue(file, n, a.Rule("no-debugger"),
			"Remove the debugger statement before deploying to production").Build())
	}
	return issues
}
