package lint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/codelint/pkg/config"
	"github.com/yaklabco/codelint/pkg/lint"
)

func boolPtr(b bool) *bool { return &b }

func strPtr(s string) *string { return &s }

func names(as []lint.Analyzer) []string {
	out := make([]string, 0, len(as))
	for _, a := range as {
		out = append(out, a.Name())
	}
	return out
}

func testRegistry(t *testing.T) *lint.Registry {
	t.Helper()

	reg := lint.NewRegistry()
	reg.MustRegister(newKindAnalyzer("alpha", "rule-a", "number", config.SeverityWarning))
	reg.MustRegister(newKindAnalyzer("beta", "rule-b", "identifier", config.SeveritySuggestion))
	reg.MustRegister(newKindAnalyzer("gamma", "rule-c", "string", config.SeverityError))
	return reg
}

func TestResolveAnalyzers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  *config.Config
		want []string
	}{
		{name: "nil config runs all", cfg: nil, want: []string{"alpha", "beta", "gamma"}},
		{
			name: "config disables analyzer",
			cfg:  &config.Config{Analyzers: map[string]config.AnalyzerConfig{"beta": {Enabled: boolPtr(false)}}},
			want: []string{"alpha", "gamma"},
		},
		{
			name: "cli enable overrides config",
			cfg: &config.Config{
				Analyzers:   map[string]config.AnalyzerConfig{"beta": {Enabled: boolPtr(false)}},
				EnableRules: []string{"beta"},
			},
			want: []string{"alpha", "beta", "gamma"},
		},
		{
			name: "cli disable wins over enable",
			cfg:  &config.Config{EnableRules: []string{"gamma"}, DisableRules: []string{"gamma"}},
			want: []string{"alpha", "beta"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sel := lint.Resolve(testRegistry(t), tt.cfg)
			assert.Equal(t, tt.want, names(sel.Analyzers()))
		})
	}
}

func TestSelectionApply(t *testing.T) {
	t.Parallel()

	issues := []lint.Issue{
		{Rule: "rule-a", Severity: config.SeverityWarning},
		{Rule: "rule-b", Severity: config.SeveritySuggestion},
		{Rule: "rule-c", Severity: config.SeverityError},
	}

	t.Run("rule disabled in config", func(t *testing.T) {
		t.Parallel()

		sel := lint.Resolve(testRegistry(t), &config.Config{
			Rules: map[string]config.RuleConfig{"rule-b": {Enabled: boolPtr(false)}},
		})
		got := sel.Apply(issues)
		assert.Len(t, got, 2)
		assert.False(t, sel.RuleEnabled("rule-b"))
	})

	t.Run("cli re-enables rule", func(t *testing.T) {
		t.Parallel()

		sel := lint.Resolve(testRegistry(t), &config.Config{
			Rules:       map[string]config.RuleConfig{"rule-b": {Enabled: boolPtr(false)}},
			EnableRules: []string{"rule-b"},
		})
		assert.Len(t, sel.Apply(issues), 3)
	})

	t.Run("severity override", func(t *testing.T) {
		t.Parallel()

		sel := lint.Resolve(testRegistry(t), &config.Config{
			Rules: map[string]config.RuleConfig{"rule-a": {Severity: strPtr("error")}},
		})
		got := sel.Apply(issues)
		assert.Equal(t, config.SeverityError, got[0].Severity)
		assert.Equal(t, config.SeverityWarning, issues[0].Severity, "input must not change")
	})

	t.Run("minimum severity", func(t *testing.T) {
		t.Parallel()

		sel := lint.Resolve(testRegistry(t), &config.Config{MinSeverity: "warning"})
		got := sel.Apply(issues)
		assert.Len(t, got, 2)
		for _, issue := range got {
			assert.NotEqual(t, config.SeveritySuggestion, issue.Severity)
		}
	})

	t.Run("override applies before minimum", func(t *testing.T) {
		t.Parallel()

		sel := lint.Resolve(testRegistry(t), &config.Config{
			MinSeverity: "error",
			Rules:       map[string]config.RuleConfig{"rule-b": {Severity: strPtr("error")}},
		})
		got := sel.Apply(issues)
		assert.Len(t, got, 2)
	})
}
