package reporter_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/codelint/pkg/reporter"
)

func TestJSONReporter_WireShape(t *testing.T) {
	out, _ := render(t, reporter.Options{Format: reporter.FormatJSON}, sampleResult())

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))

	assert.Equal(t, "1.0.0", doc["version"])
	assert.Equal(t, map[string]any{
		"error": 1.0, "warning": 0.0, "suggestion": 1.0, "total": 2.0,
	}, doc["summary"])

	files, ok := doc["files"].([]any)
	require.True(t, ok)
	require.Len(t, files, 2)

	first := files[0].(map[string]any)
	assert.Equal(t, "src/app.js", first["file_path"])

	issues := first["issues"].([]any)
	require.Len(t, issues, 2)
	assert.Equal(t, map[string]any{
		"file_path":    "src/app.js",
		"line":         2.0,
		"column":       1.0,
		"end_line":     2.0,
		"end_column":   11.0,
		"message":      "Use of eval() is dangerous and should be avoided",
		"severity":     "error",
		"category":     "security",
		"rule":         "no-eval",
		"code_snippet": "eval(code)",
	}, issues[0])

	second := issues[1].(map[string]any)
	assert.NotContains(t, second, "end_line")
	assert.NotContains(t, second, "code_snippet")
	assert.Equal(t, "best-practice", second["category"])

	clean := files[1].(map[string]any)
	assert.Equal(t, []any{}, clean["issues"])

	errs := doc["errors"].([]any)
	require.Len(t, errs, 1)
	assert.Equal(t, "src/broken.js", errs[0].(map[string]any)["file_path"])
}

func TestJSONReporter_Empty(t *testing.T) {
	out, count := render(t, reporter.Options{Format: reporter.FormatJSON, Compact: true}, nil)

	assert.Zero(t, count)
	assert.Equal(t,
		`{"version":"1.0.0","files":[],"summary":{"error":0,"warning":0,"suggestion":0,"total":0}}`+"\n",
		out)
}

func TestJSONReporter_Compact(t *testing.T) {
	pretty, _ := render(t, reporter.Options{Format: reporter.FormatJSON}, sampleResult())
	compact, _ := render(t, reporter.Options{Format: reporter.FormatJSON, Compact: true}, sampleResult())

	assert.Contains(t, pretty, "\n  \"files\"")
	assert.Equal(t, 1, strings.Count(compact, "\n"))
}
