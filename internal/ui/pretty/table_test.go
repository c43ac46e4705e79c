package pretty_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/codelint/internal/ui/pretty"
	"github.com/yaklabco/codelint/pkg/analysis"
	"github.com/yaklabco/codelint/pkg/config"
	"github.com/yaklabco/codelint/pkg/lint"
)

func tableIssues() []lint.Issue {
	return []lint.Issue{
		{FilePath: "a.js", Line: 1, Column: 1, Message: "Use 'let' or 'const' instead of 'var'", Severity: config.SeveritySuggestion, Rule: "no-var"},
		{FilePath: "a.js", Line: 3, Column: 5, Message: "Use '===' instead of '=='", Severity: config.SeverityWarning, Rule: "eqeqeq"},
		{FilePath: "b.ts", Line: 2, Column: 1, Message: "Use of eval() is dangerous", Severity: config.SeverityError, Rule: "no-eval"},
	}
}

func TestTableFormatter_FormatTable(t *testing.T) {
	formatter := pretty.NewTableFormatter(pretty.NewStyles(false), false, 120)

	result := formatter.FormatTable(tableIssues())
	lines := strings.Split(strings.TrimSuffix(result, "\n"), "\n")

	// header, heavy rule, 2 rows, light rule, 1 row, heavy rule, legend
	require.Len(t, lines, 8)
	assert.Contains(t, lines[0], "FILE")
	assert.Contains(t, lines[0], "MESSAGE")
	assert.True(t, strings.HasPrefix(lines[1], "===="))
	assert.Contains(t, lines[2], "1:1")
	assert.Contains(t, lines[2], "no-var")
	assert.Contains(t, lines[3], "eqeqeq")
	assert.True(t, strings.HasPrefix(lines[4], "----"))
	assert.Contains(t, lines[5], "b.ts")
	assert.Contains(t, lines[5], "no-eval")
	assert.True(t, strings.HasPrefix(lines[6], "===="))
	assert.Contains(t, lines[7], "ordered by file")
}

func TestTableFormatter_Empty(t *testing.T) {
	formatter := pretty.NewTableFormatter(pretty.NewStyles(false), false, 0)

	assert.Empty(t, formatter.FormatTable(nil))
}

func TestTableFormatter_TruncatesToWidth(t *testing.T) {
	formatter := pretty.NewTableFormatter(pretty.NewStyles(false), false, 80)

	issues := []lint.Issue{{
		FilePath: "very/deeply/nested/directory/structure/for/testing/component.tsx",
		Line:     1,
		Column:   1,
		Message:  strings.Repeat("long message ", 10),
		Severity: config.SeverityWarning,
		Rule:     "no-any-type",
	}}

	result := formatter.FormatTable(issues)

	assert.Contains(t, result, "...")
	assert.Contains(t, result, "component.tsx")
}

func TestTableFormatter_FormatTableSummary(t *testing.T) {
	formatter := pretty.NewTableFormatter(pretty.NewStyles(false), false, 100)

	totals := analysis.Totals{
		Counts:          analysis.Counts{Issues: 3, Errors: 1, Warnings: 1, Suggestions: 1},
		Files:           2,
		FilesWithIssues: 2,
	}

	assert.Equal(t,
		" 2 files checked | 1 error | 1 warning | 1 suggestion | 12ms",
		formatter.FormatTableSummary(totals, "12ms"))
}

func TestIssueToTableRow(t *testing.T) {
	row := pretty.IssueToTableRow(tableIssues()[1])

	assert.Equal(t, "a.js", row.File)
	assert.Equal(t, "3:5", row.Location)
	assert.Equal(t, "eqeqeq", row.RuleID)
	assert.Equal(t, config.SeverityWarning, row.Severity)
}
