package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/codelint/pkg/analysis"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// FormatSummaryOneLine formats run totals as a single line.
// Example: "12 issues (2 errors, 4 warnings, 6 suggestions) in 3 files".
func (s *Styles) FormatSummaryOneLine(totals analysis.Totals) string {
	var line string

	if totals.Issues == 0 {
		line = s.Success.Render("No issues found") +
			s.Dim.Render(fmt.Sprintf(" (%d %s checked)", totals.Files, plural(totals.Files, wordFile, wordFiles)))
	} else {
		var severityParts []string
		if totals.Errors > 0 {
			severityParts = append(severityParts, s.Error.Render(fmt.Sprintf("%d %s", totals.Errors, plural(totals.Errors, "error", "errors"))))
		}
		if totals.Warnings > 0 {
			severityParts = append(severityParts, s.Warning.Render(fmt.Sprintf("%d %s", totals.Warnings, plural(totals.Warnings, "warning", "warnings"))))
		}
		if totals.Suggestions > 0 {
			severityParts = append(severityParts, s.Suggestion.Render(fmt.Sprintf("%d %s", totals.Suggestions, plural(totals.Suggestions, "suggestion", "suggestions"))))
		}

		line = fmt.Sprintf("%d %s (%s) in %d %s",
			totals.Issues, plural(totals.Issues, "issue", "issues"),
			strings.Join(severityParts, ", "),
			totals.FilesWithIssues, plural(totals.FilesWithIssues, wordFile, wordFiles),
		)
	}

	if totals.FilesFailed > 0 {
		line += ", " + s.Failure.Render(fmt.Sprintf("%d %s could not be analyzed",
			totals.FilesFailed, plural(totals.FilesFailed, wordFile, wordFiles)))
	}

	return line + "\n"
}

// FormatSummary formats run totals as a summary block.
func (s *Styles) FormatSummary(totals analysis.Totals) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Files checked:     " + s.SummaryValue.Render(strconv.Itoa(totals.Files)) + "\n")
	if totals.FilesWithIssues > 0 {
		builder.WriteString("  Files with issues: " + s.Failure.Render(strconv.Itoa(totals.FilesWithIssues)) + "\n")
	}
	if totals.FilesFailed > 0 {
		builder.WriteString("  Files failed:      " + s.Failure.Render(strconv.Itoa(totals.FilesFailed)) + "\n")
	}

	builder.WriteString("\n")
	builder.WriteString("  Total issues:      " + s.SummaryValue.Render(strconv.Itoa(totals.Issues)) + "\n")
	if totals.Errors > 0 {
		builder.WriteString("    Errors:          " + s.Error.Render(strconv.Itoa(totals.Errors)) + "\n")
	}
	if totals.Warnings > 0 {
		builder.WriteString("    Warnings:        " + s.Warning.Render(strconv.Itoa(totals.Warnings)) + "\n")
	}
	if totals.Suggestions > 0 {
		builder.WriteString("    Suggestions:     " + s.Suggestion.Render(strconv.Itoa(totals.Suggestions)) + "\n")
	}

	builder.WriteString("\n")
	switch {
	case totals.Errors > 0:
		builder.WriteString(s.Failure.Render("Analysis found errors"))
	case totals.Warnings > 0:
		builder.WriteString(s.Warning.Render("Analysis completed with warnings"))
	case totals.Suggestions > 0:
		builder.WriteString(s.Success.Render("Analysis completed with suggestions"))
	default:
		builder.WriteString(s.Success.Render("Analysis passed"))
	}
	builder.WriteString("\n")

	return builder.String()
}
