package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/codelint/pkg/config"
	"github.com/yaklabco/codelint/pkg/lint"
)

// maxSnippetWidth bounds the source context shown under an issue.
const maxSnippetWidth = 80

// FormatIssue formats a single issue for terminal output:
//
//	path:line:col  severity  message  (rule)
//
// followed, when showContext is set, by the first line of the code snippet
// with a caret run under the reported span.
func (s *Styles) FormatIssue(issue lint.Issue, showContext bool) string {
	var builder strings.Builder

	location := fmt.Sprintf("%s:%d:%d",
		s.FilePath.Render(issue.FilePath),
		issue.Line,
		issue.Column,
	)

	fmt.Fprintf(&builder, "  %s  %s  %s  %s\n",
		location,
		s.FormatSeverity(issue.Severity),
		s.Message.Render(issue.Message),
		s.RuleID.Render("("+issue.Rule+")"),
	)

	if showContext && issue.CodeSnippet != "" {
		builder.WriteString(s.FormatSnippet(issue.CodeSnippet))
	}

	return builder.String()
}

// FormatSeverity returns a styled severity string.
func (s *Styles) FormatSeverity(sev config.Severity) string {
	switch sev {
	case config.SeverityError:
		return s.Error.Render("error")
	case config.SeverityWarning:
		return s.Warning.Render("warning")
	case config.SeveritySuggestion:
		return s.Suggestion.Render("suggestion")
	default:
		return string(sev)
	}
}

// FormatSnippet renders the first line of a snippet with carets under it.
// Multi-line snippets are marked with a trailing ellipsis.
func (s *Styles) FormatSnippet(snippet string) string {
	const indent = "      "

	line, rest, multiline := strings.Cut(snippet, "\n")
	line = strings.TrimRight(line, "\r")
	line = truncate(line, maxSnippetWidth)
	width := max(1, len([]rune(line)))
	if multiline && strings.TrimSpace(rest) != "" {
		line += " ..."
	}

	var builder strings.Builder
	builder.WriteString(indent + s.SourceLine.Render(line) + "\n")
	builder.WriteString(indent + s.Caret.Render(strings.Repeat("^", width)) + "\n")
	return builder.String()
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, issueCount int) string {
	header := s.FilePath.Render(path)
	switch issueCount {
	case 0:
	case 1:
		header += s.Dim.Render(" (1 issue)")
	default:
		header += s.Dim.Render(fmt.Sprintf(" (%d issues)", issueCount))
	}
	return header
}

// truncate shortens str to maxLen runes, adding "..." if truncated.
func truncate(str string, maxLen int) string {
	runes := []rune(str)
	if len(runes) <= maxLen {
		return str
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// truncateLeft shortens a path from the left so the file name stays visible.
func truncateLeft(str string, maxLen int) string {
	runes := []rune(str)
	if len(runes) <= maxLen {
		return str
	}
	if maxLen <= 3 {
		return string(runes[len(runes)-maxLen:])
	}
	return "..." + string(runes[len(runes)-maxLen+3:])
}
