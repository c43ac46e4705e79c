package pretty

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/codelint/pkg/analysis"
	"github.com/yaklabco/codelint/pkg/config"
	"github.com/yaklabco/codelint/pkg/lint"
)

// Table formatting constants.
const (
	tablePadding     = 2
	tableColumnCount = 4 // FILE, LOC, MESSAGE, RULE
	minFileWidth     = 20
	minLocWidth      = 8
	minMessageWidth  = 35
	minRuleWidth     = 8
	heavySeparator   = "="
	lightSeparator   = "-"
	defaultTermWidth = 100
)

// TableRow represents a single row in the issue table.
type TableRow struct {
	File     string
	Location string
	Message  string
	RuleID   string
	Severity config.Severity
}

// IssueToTableRow converts an issue to a table row.
func IssueToTableRow(issue lint.Issue) TableRow {
	return TableRow{
		File:     issue.FilePath,
		Location: fmt.Sprintf("%d:%d", issue.Line, issue.Column),
		Message:  issue.Message,
		RuleID:   issue.Rule,
		Severity: issue.Severity,
	}
}

// TableFormatter formats issues as a styled table.
type TableFormatter struct {
	styles       *Styles
	colorEnabled bool
	termWidth    int
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles, colorEnabled bool, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{
		styles:       styles,
		colorEnabled: colorEnabled,
		termWidth:    termWidth,
	}
}

type columnWidths struct {
	file    int
	loc     int
	message int
	rule    int
}

func (w columnWidths) total() int {
	return w.file + w.loc + w.message + w.rule + tablePadding*tableColumnCount
}

// FormatTable formats issues as a table, one group per file. Issues are
// expected in report order, so consecutive issues share a file.
func (t *TableFormatter) FormatTable(issues []lint.Issue) string {
	groups := groupRows(issues)
	if len(groups) == 0 {
		return ""
	}

	widths := t.calculateColumnWidths(groups)

	var builder strings.Builder
	builder.WriteString(t.formatHeader(widths) + "\n")
	builder.WriteString(t.formatSeparator(widths, heavySeparator) + "\n")

	for i, group := range groups {
		if i > 0 {
			builder.WriteString(t.formatSeparator(widths, lightSeparator) + "\n")
		}
		for _, row := range group {
			builder.WriteString(t.formatRow(row, widths) + "\n")
		}
	}

	builder.WriteString(t.formatSeparator(widths, heavySeparator) + "\n")
	builder.WriteString(t.formatLegend() + "\n")

	return builder.String()
}

func groupRows(issues []lint.Issue) [][]TableRow {
	var groups [][]TableRow
	for _, issue := range issues {
		row := IssueToTableRow(issue)
		last := len(groups) - 1
		if last >= 0 && groups[last][0].File == row.File {
			groups[last] = append(groups[last], row)
			continue
		}
		groups = append(groups, []TableRow{row})
	}
	return groups
}

// calculateColumnWidths sizes columns to their content, then shrinks the
// message and file columns to fit the terminal.
func (t *TableFormatter) calculateColumnWidths(groups [][]TableRow) columnWidths {
	widths := columnWidths{
		file:    minFileWidth,
		loc:     minLocWidth,
		message: minMessageWidth,
		rule:    minRuleWidth,
	}

	for _, group := range groups {
		for _, row := range group {
			widths.file = max(widths.file, lipgloss.Width(row.File))
			widths.loc = max(widths.loc, lipgloss.Width(row.Location))
			widths.message = max(widths.message, lipgloss.Width(row.Message))
			widths.rule = max(widths.rule, lipgloss.Width(row.RuleID))
		}
	}

	if excess := widths.total() - t.termWidth; excess > 0 {
		widths.message = max(minMessageWidth, widths.message-excess)
	}
	if excess := widths.total() - t.termWidth; excess > 0 {
		widths.file = max(minFileWidth, widths.file-excess)
	}

	return widths
}

func (t *TableFormatter) formatHeader(widths columnWidths) string {
	header := fmt.Sprintf(" %-*s  %-*s  %-*s  %-*s ",
		widths.file, "FILE",
		widths.loc, "LOC",
		widths.message, "MESSAGE",
		widths.rule, "RULE",
	)
	return t.styles.TableHeader.Render(header)
}

func (t *TableFormatter) formatSeparator(widths columnWidths, char string) string {
	return t.styles.TableSeparator.Render(strings.Repeat(char, widths.total()))
}

func (t *TableFormatter) formatRow(row TableRow, widths columnWidths) string {
	content := fmt.Sprintf(" %-*s  %-*s  %-*s  %-*s",
		widths.file, truncateLeft(row.File, widths.file),
		widths.loc, truncate(row.Location, widths.loc),
		widths.message, truncate(row.Message, widths.message),
		widths.rule, truncate(row.RuleID, widths.rule),
	)
	return t.rowStyle(row.Severity).Render(content)
}

func (t *TableFormatter) rowStyle(severity config.Severity) lipgloss.Style {
	switch severity {
	case config.SeverityError:
		return t.styles.TableErrorRow
	case config.SeverityWarning:
		return t.styles.TableWarnRow
	case config.SeveritySuggestion:
		return t.styles.TableSuggestRow
	default:
		return lipgloss.NewStyle()
	}
}

func (t *TableFormatter) formatLegend() string {
	if !t.colorEnabled {
		return t.styles.TableLegend.Render(" Rows are ordered by file, line and column")
	}

	return t.styles.TableLegend.Render(
		fmt.Sprintf(" Legend: %s  %s  %s",
			t.styles.TableErrorRow.Render("error"),
			t.styles.TableWarnRow.Render("warning"),
			t.styles.TableSuggestRow.Render("suggestion"),
		),
	)
}

// FormatTableSummary formats a one-line footer for table output.
func (t *TableFormatter) FormatTableSummary(totals analysis.Totals, duration string) string {
	parts := []string{fmt.Sprintf("%d %s checked", totals.Files, plural(totals.Files, wordFile, wordFiles))}

	if totals.Errors > 0 {
		parts = append(parts, t.styles.Error.Render(fmt.Sprintf("%d %s", totals.Errors, plural(totals.Errors, "error", "errors"))))
	}
	if totals.Warnings > 0 {
		parts = append(parts, t.styles.Warning.Render(fmt.Sprintf("%d %s", totals.Warnings, plural(totals.Warnings, "warning", "warnings"))))
	}
	if totals.Suggestions > 0 {
		parts = append(parts, t.styles.Suggestion.Render(fmt.Sprintf("%d %s", totals.Suggestions, plural(totals.Suggestions, "suggestion", "suggestions"))))
	}
	if totals.FilesFailed > 0 {
		parts = append(parts, t.styles.Failure.Render(fmt.Sprintf("%d failed", totals.FilesFailed)))
	}
	if duration != "" {
		parts = append(parts, t.styles.Dim.Render(duration))
	}

	return " " + strings.Join(parts, " | ")
}
