// Package lint provides the analyzer contract, issue model, registry and
// pipeline for codelint.
package lint

import (
	"fmt"
	"strings"

	"github.com/yaklabco/codelint/pkg/config"
)

// Category tags the concern area of an issue.
type Category string

const (
	CategorySecurity        Category = "security"
	CategoryBestPractice    Category = "best-practice"
	CategoryCodeQuality     Category = "code-quality"
	CategoryPerformance     Category = "performance"
	CategoryMaintainability Category = "maintainability"
	CategoryComplexity      Category = "complexity"
	CategoryTypeAnnotation  Category = "typescript"
)

// Categories returns every category in display order.
func Categories() []Category {
	return []Category{
		CategorySecurity,
		CategoryBestPractice,
		CategoryCodeQuality,
		CategoryPerformance,
		CategoryMaintainability,
		CategoryComplexity,
		CategoryTypeAnnotation,
	}
}

// IsValid returns true if the category is one of the known values.
func (c Category) IsValid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory converts kebab-case text to a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}

// Issue is a single finding produced by an analyzer.
// Issues are values; analyzers construct them through IssueBuilder and
// nothing modifies them once they are part of a FileAnalysis.
type Issue struct {
	// FilePath is the path of the analyzed file.
	FilePath string `json:"file_path"`

	// Line is the 1-based line where the triggering node starts.
	Line int `json:"line"`

	// Column is the 1-based byte column where the triggering node starts.
	Column int `json:"column"`

	// EndLine is the 1-based line where the triggering node ends (0 if unknown).
	EndLine int `json:"end_line,omitempty"`

	// EndColumn is the 1-based column just past the end of the node (0 if unknown).
	EndColumn int `json:"end_column,omitempty"`

	Message  string          `json:"message"`
	Severity config.Severity `json:"severity"`
	Category Category        `json:"category"`
	Rule     string          `json:"rule"`

	// CodeSnippet is the source text of the triggering node, if available.
	CodeSnippet string `json:"code_snippet,omitempty"`
}

// HasEnd returns true if the issue carries an end position.
func (i Issue) HasEnd() bool {
	return i.EndLine > 0 && i.EndColumn > 0
}

// Location formats the issue position as path:line:column.
func (i Issue) Location() string {
	return fmt.Sprintf("%s:%d:%d", i.FilePath, i.Line, i.Column)
}
