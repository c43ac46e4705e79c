package reporter_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/codelint/pkg/config"
	"github.com/yaklabco/codelint/pkg/reporter"
)

func TestSummaryReporter(t *testing.T) {
	out, _ := render(t, reporter.Options{Format: reporter.FormatSummary}, sampleResult())

	rules := strings.Index(out, "Rules Summary")
	files := strings.Index(out, "Files Summary")
	categories := strings.Index(out, "Categories Summary")

	assert.GreaterOrEqual(t, rules, 0)
	assert.Greater(t, files, rules)
	assert.Greater(t, categories, files)

	assert.Contains(t, out, "no-eval")
	assert.Contains(t, out, "src/app.js")
	assert.Contains(t, out, "best-practice")
	assert.Contains(t, out, "Total: 2 issues (1 error, 1 suggestion) in 1 file")
}

func TestSummaryReporter_FilesFirst(t *testing.T) {
	out, _ := render(t, reporter.Options{
		Format:       reporter.FormatSummary,
		SummaryOrder: config.SummaryOrderFiles,
	}, sampleResult())

	assert.Less(t, strings.Index(out, "Files Summary"), strings.Index(out, "Rules Summary"))
}

func TestSummaryReporter_RowCounts(t *testing.T) {
	out, _ := render(t, reporter.Options{Format: reporter.FormatSummary}, sampleResult())

	var evalRow string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "no-eval") {
			evalRow = line
		}
	}

	assert.Equal(t, []string{"no-eval", "1", "1", "0", "0"}, strings.Fields(evalRow))
}

func TestSummaryReporter_NoIssues(t *testing.T) {
	out, count := render(t, reporter.Options{Format: reporter.FormatSummary}, newResult(outcome("a.js")))

	assert.Zero(t, count)
	assert.Equal(t, "No issues found (1 file checked)\n", out)
}

func TestSummaryReporter_TruncatesLongNames(t *testing.T) {
	long := strings.Repeat("nested/", 10) + "component.tsx"
	issue := sampleResult().Analysis.Files[0].Issues[0]
	issue.FilePath = long
	result := newResult(outcome(long, issue))

	out, _ := render(t, reporter.Options{Format: reporter.FormatSummary}, result)

	assert.Contains(t, out, "…")
	assert.Contains(t, out, "component.tsx")
	assert.NotContains(t, out, long)
}
