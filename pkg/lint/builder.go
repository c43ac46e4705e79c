package lint

import (
	"github.com/yaklabco/codelint/pkg/config"
	"github.com/yaklabco/codelint/pkg/syntax"
)

// IssueBuilder helps construct Issue values.
type IssueBuilder struct {
	issue Issue
}

// NewIssue starts building an issue for rule located at node.
// The position, end position and snippet come from the node's byte span.
func NewIssue(file *File, node *syntax.Node, rule RuleInfo, message string) *IssueBuilder {
	if node == nil {
		return NewIssueAt(file, 0, 0, rule, message)
	}
	return NewIssueAt(file, int(node.StartByte()), int(node.EndByte()), rule, message)
}

// NewIssueAt starts building an issue for rule at the byte span [start, end).
func NewIssueAt(file *File, start, end int, rule RuleInfo, message string) *IssueBuilder {
	b := &IssueBuilder{
		issue: Issue{
			Message:  message,
			Severity: rule.Severity,
			Category: rule.Category,
			Rule:     rule.ID,
		},
	}

	if file == nil {
		return b
	}

	b.issue.FilePath = file.Path
	if file.Lines == nil {
		return b
	}

	pos := file.Lines.Span(start, end)
	b.issue.Line = pos.Line
	b.issue.Column = pos.Column
	if end > start {
		b.issue.EndLine = pos.EndLine
		b.issue.EndColumn = pos.EndColumn
	}
	b.issue.CodeSnippet = file.Lines.Snippet(start, end)

	return b
}

// WithSeverity overrides the rule's default severity.
func (b *IssueBuilder) WithSeverity(s config.Severity) *IssueBuilder {
	b.issue.Severity = s
	return b
}

// WithSnippet replaces the code snippet.
func (b *IssueBuilder) WithSnippet(s string) *IssueBuilder {
	b.issue.CodeSnippet = s
	return b
}

// AtLine places the issue at a fixed line and column with no end position.
func (b *IssueBuilder) AtLine(line, column int) *IssueBuilder {
	b.issue.Line = line
	b.issue.Column = column
	b.issue.EndLine = 0
	b.issue.EndColumn = 0
	return b
}

// Build returns the constructed Issue.
func (b *IssueBuilder) Build() Issue {
	return b.issue
}
