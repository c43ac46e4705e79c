package lint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/codelint/pkg/config"
	"github.com/yaklabco/codelint/pkg/langdetect"
	"github.com/yaklabco/codelint/pkg/lint"
	"github.com/yaklabco/codelint/pkg/syntax"
)

// kindAnalyzer reports every node of one kind with a fixed rule.
type kindAnalyzer struct {
	lint.BaseAnalyzer
	kind  string
	langs []langdetect.Language
}

func newKindAnalyzer(name, ruleID, kind string, sev config.Severity) *kindAnalyzer {
	return &kindAnalyzer{
		BaseAnalyzer: lint.NewBaseAnalyzer(name, lint.RuleInfo{
			ID:          ruleID,
			Category:    lint.CategoryCodeQuality,
			Severity:    sev,
			Description: "reports " + kind,
		}),
		kind: kind,
	}
}

func (a *kindAnalyzer) Languages() []langdetect.Language {
	if a.langs == nil {
		return []langdetect.Language{langdetect.JavaScript, langdetect.TypeScript, langdetect.TSX}
	}
	return a.langs
}

func (a *kindAnalyzer) Analyze(file *lint.File) []lint.Issue {
	var issues []lint.Issue
	for _, n := range syntax.FindByKind(file.Root(), a.kind) {
		if !n.IsNamed() {
			continue
		}
		rule := a.Rules()[0]
		issues = append(issues, lint.NewIssue(file, n, rule, "found "+a.kind).Build())
	}
	return issues
}

func TestRegistryOrderAndLookup(t *testing.T) {
	t.Parallel()

	reg := lint.NewRegistry()
	require.NoError(t, reg.Register(newKindAnalyzer("second", "r2", "identifier", config.SeverityWarning)))
	require.NoError(t, reg.Register(newKindAnalyzer("first", "r1", "number", config.SeveritySuggestion)))

	assert.Equal(t, []string{"second", "first"}, reg.Names())
	assert.Equal(t, 2, reg.Len())

	a, ok := reg.Get("first")
	require.True(t, ok)
	assert.Equal(t, "first", a.Name())

	_, ok = reg.Get("missing")
	assert.False(t, ok)

	rules := reg.Rules()
	require.Len(t, rules, 2)
	assert.Equal(t, "r2", rules[0].ID)
	assert.Equal(t, "second", rules[0].Analyzer)

	assert.True(t, reg.Known("first"))
	assert.True(t, reg.Known("r1"))
	assert.False(t, reg.Known("r3"))
}

func TestRegistryRejectsDuplicate(t *testing.T) {
	t.Parallel()

	reg := lint.NewRegistry()
	require.NoError(t, reg.Register(newKindAnalyzer("dup", "r1", "number", config.SeverityWarning)))

	err := reg.Register(newKindAnalyzer("dup", "r2", "number", config.SeverityWarning))
	require.ErrorIs(t, err, lint.ErrDuplicateAnalyzer)

	assert.Panics(t, func() {
		reg.MustRegister(newKindAnalyzer("dup", "r3", "number", config.SeverityWarning))
	})
}

func TestBaseAnalyzerRule(t *testing.T) {
	t.Parallel()

	a := newKindAnalyzer("x", "only-rule", "number", config.SeverityWarning)
	assert.Equal(t, "only-rule", a.Rule("only-rule").ID)
	assert.Panics(t, func() { a.Rule("other") })

	rules := a.Rules()
	rules[0].ID = "mutated"
	assert.Equal(t, "only-rule", a.Rules()[0].ID)
}
