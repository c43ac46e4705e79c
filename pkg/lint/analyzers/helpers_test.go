package analyzers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yaklabco/codelint/pkg/lint"
)

// analyze parses src as path and runs a single analyzer over it.
func analyze(t *testing.T, a lint.Analyzer, path, src string) []lint.Issue {
	t.Helper()

	tree, err := lint.NewTreeSitterParser().Parse(context.Background(), path, []byte(src))
	require.NoError(t, err)
	t.Cleanup(tree.Close)

	return a.Analyze(lint.NewFile(path, tree))
}

// ruleIDs returns the rule of each issue, in order.
func ruleIDs(issues []lint.Issue) []string {
	out := make([]string, 0, len(issues))
	for _, issue := range issues {
		out = append(out, issue.Rule)
	}
	return out
}

// countRule counts issues of one rule.
func countRule(issues []lint.Issue, rule string) int {
	n := 0
	for _, issue := range issues {
		if issue.Rule == rule {
			n++
		}
	}
	return n
}

// firstOf returns the first issue of a rule.
func firstOf(t *testing.T, issues []lint.Issue, rule string) lint.Issue {
	t.Helper()
	for _, issue := range issues {
		if issue.Rule == rule {
			return issue
		}
	}
	require.Failf(t, "rule not reported", "no %s issue in %v", rule, ruleIDs(issues))
	return lint.Issue{}
}
