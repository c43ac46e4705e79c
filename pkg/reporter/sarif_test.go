package reporter_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/codelint/pkg/config"
	"github.com/yaklabco/codelint/pkg/lint"
	"github.com/yaklabco/codelint/pkg/reporter"
)

func decodeSARIF(t *testing.T, out string) reporter.SARIFOutput {
	t.Helper()

	var doc reporter.SARIFOutput
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Runs, 1)
	return doc
}

func TestSARIFReporter(t *testing.T) {
	out, _ := render(t, reporter.Options{Format: reporter.FormatSARIF, ToolVersion: "1.2.3"}, sampleResult())
	doc := decodeSARIF(t, out)

	assert.Equal(t, "2.1.0", doc.Version)
	assert.Contains(t, doc.Schema, "sarif-schema-2.1.0")

	driver := doc.Runs[0].Tool.Driver
	assert.Equal(t, "codelint", driver.Name)
	assert.Equal(t, "1.2.3", driver.Version)

	results := doc.Runs[0].Results
	require.Len(t, results, 2)

	first := results[0]
	assert.Equal(t, "no-eval", first.RuleID)
	assert.Equal(t, 0, first.RuleIndex)
	assert.Equal(t, "error", first.Level)
	region := first.Locations[0].PhysicalLocation.Region
	assert.Equal(t, reporter.SARIFRegion{
		StartLine: 2, StartColumn: 1, EndLine: 2, EndColumn: 11,
		Snippet: &reporter.SARIFSnippet{Text: "eval(code)"},
	}, region)
	assert.Equal(t, "src/app.js", first.Locations[0].PhysicalLocation.ArtifactLocation.URI)

	second := results[1]
	assert.Equal(t, "note", second.Level)
	assert.Equal(t, 1, second.RuleIndex)
	assert.Zero(t, second.Locations[0].PhysicalLocation.Region.EndLine)
}

func TestSARIFReporter_LevelMapping(t *testing.T) {
	tests := []struct {
		severity config.Severity
		want     string
	}{
		{severity: config.SeverityError, want: "error"},
		{severity: config.SeverityWarning, want: "warning"},
		{severity: config.SeveritySuggestion, want: "note"},
	}

	for _, tt := range tests {
		t.Run(string(tt.severity), func(t *testing.T) {
			result := newResult(outcome("a.js", lint.Issue{
				FilePath: "a.js", Line: 1, Column: 1, Rule: "r", Severity: tt.severity, Category: lint.CategoryCodeQuality,
			}))

			out, _ := render(t, reporter.Options{Format: reporter.FormatSARIF}, result)
			doc := decodeSARIF(t, out)

			require.Len(t, doc.Runs[0].Results, 1)
			assert.Equal(t, tt.want, doc.Runs[0].Results[0].Level)
		})
	}
}

func TestSARIFReporter_RuleMetadata(t *testing.T) {
	catalogue := []lint.RuleRef{
		{
			RuleInfo: lint.RuleInfo{
				ID:          "no-eval",
				Category:    lint.CategorySecurity,
				Severity:    config.SeverityError,
				Description: "Disallow eval()",
			},
			Analyzer: "security",
		},
	}

	out, _ := render(t, reporter.Options{Format: reporter.FormatSARIF, Rules: catalogue}, sampleResult())
	doc := decodeSARIF(t, out)

	rules := doc.Runs[0].Tool.Driver.Rules
	require.Len(t, rules, 2)

	assert.Equal(t, "no-eval", rules[0].ID)
	assert.Equal(t, "Disallow eval()", rules[0].ShortDescription.Text)
	assert.Equal(t, "security", rules[0].Properties["analyzer"])

	// Not in the catalogue: described from the first issue.
	assert.Equal(t, "no-var", rules[1].ID)
	assert.Equal(t, "note", rules[1].DefaultConfig.Level)
	assert.Equal(t, "best-practice", rules[1].Properties["category"])
	assert.Equal(t, "dev", doc.Runs[0].Tool.Driver.Version)
}

func TestSARIFReporter_Empty(t *testing.T) {
	out, count := render(t, reporter.Options{Format: reporter.FormatSARIF}, nil)
	doc := decodeSARIF(t, out)

	assert.Zero(t, count)
	assert.Empty(t, doc.Runs[0].Results)
	assert.NotNil(t, doc.Runs[0].Results)
	assert.Empty(t, doc.Runs[0].Tool.Driver.Rules)
}
