package runner_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/codelint/internal/logging"
	"github.com/yaklabco/codelint/pkg/config"
	"github.com/yaklabco/codelint/pkg/lint"
	"github.com/yaklabco/codelint/pkg/lint/analyzers"
	"github.com/yaklabco/codelint/pkg/runner"
)

func newRunner(buf *bytes.Buffer) *runner.Runner {
	pipeline := lint.NewPipeline(nil, analyzers.NewRegistry(config.DefaultThresholds()), nil)
	r := runner.New(pipeline)
	r.Logger = logging.NewWithWriter(buf, "debug")
	return r
}

func TestRunner_Run_NoFiles(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	result, err := newRunner(&logs).Run(context.Background(), runner.Options{WorkingDir: t.TempDir()})
	require.NoError(t, err)

	assert.Empty(t, result.Files)
	assert.Zero(t, result.Stats.FilesDiscovered)
	assert.False(t, result.HasIssues())
	assert.NoError(t, result.Fatal())
}

func TestRunner_Run_Aggregates(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"a.js":    "var count = 1;\nuse(count);\n",
		"b.ts":    "export const total: number = 1;\n",
		"c.py":    "print('x')\n",
		"d/e.jsx": "const view = <div />;\nrender(view);\n",
	})

	var logs bytes.Buffer
	result, err := newRunner(&logs).Run(context.Background(), runner.Options{WorkingDir: dir, Jobs: 2})
	require.NoError(t, err)

	require.Len(t, result.Files, 4)
	assert.Equal(t, "a.js", result.Files[0].Display)
	assert.Equal(t, filepath.Join("d", "e.jsx"), result.Files[3].Display)

	assert.Equal(t, 4, result.Stats.FilesDiscovered)
	assert.Equal(t, 4, result.Stats.FilesAnalyzed)
	assert.Zero(t, result.Stats.FilesFailed)
	assert.Equal(t, 2, result.Stats.FilesWithIssues)
	assert.Equal(t, result.Stats.IssuesTotal, result.Analysis.Summary.Total)

	require.Len(t, result.Analysis.Files, 4)
	first := result.Analysis.Files[0]
	assert.Equal(t, "a.js", first.Path)
	require.NotEmpty(t, first.Issues)
	assert.Equal(t, "no-var", first.Issues[0].Rule)
	assert.Equal(t, "a.js", first.Issues[0].FilePath)

	assert.Equal(t, []string{"no-print"}, rules(result.Analysis.Files[2].Issues))
	assert.Contains(t, logs.String(), "analysis finished")
}

func TestRunner_Run_IsolatesFailures(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"good.js":   "var leftover = 1;\n",
		"broken.js": "function (\n",
	})

	var logs bytes.Buffer
	result, err := newRunner(&logs).Run(context.Background(), runner.Options{WorkingDir: dir})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Stats.FilesAnalyzed)
	assert.Equal(t, 1, result.Stats.FilesFailed)
	require.Len(t, result.Analysis.Files, 1)
	assert.Equal(t, "good.js", result.Analysis.Files[0].Path)

	failures := result.Failures()
	require.Len(t, failures, 1)
	assert.Equal(t, "broken.js", failures[0].Display)
	require.ErrorIs(t, failures[0].Error, lint.ErrParse)

	// Found by walking a directory, so not fatal.
	require.NoError(t, result.Fatal())
	assert.Contains(t, logs.String(), "skipping file")
	assert.Contains(t, logs.String(), "broken.js")
}

func TestRunner_Run_ExplicitFailureIsFatal(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"notes.md": "# notes\n"})

	tests := []struct {
		name string
		path string
	}{
		{name: "unsupported type", path: "notes.md"},
		{name: "missing file", path: "missing.js"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var logs bytes.Buffer
			result, err := newRunner(&logs).Run(context.Background(), runner.Options{
				WorkingDir: dir,
				Paths:      []string{tt.path},
			})
			require.NoError(t, err)

			fatal := result.Fatal()
			require.Error(t, fatal)
			require.ErrorIs(t, fatal, lint.ErrInvalidInput)

			var fileErr *lint.FileError
			require.ErrorAs(t, fatal, &fileErr)
			assert.Equal(t, tt.path, fileErr.Path)
		})
	}
}

func TestRunner_Run_SerialMatchesParallel(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	files := make(map[string]string)
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		files["src/"+name+".js"] = "var " + name + "Value = 5000;\nif (" + name + "Value == 3) { console.log(1); }\n"
	}
	writeTree(t, dir, files)

	var logs bytes.Buffer
	serial, err := newRunner(&logs).Run(context.Background(), runner.Options{WorkingDir: dir, Jobs: 1})
	require.NoError(t, err)
	parallel, err := newRunner(&logs).Run(context.Background(), runner.Options{WorkingDir: dir, Jobs: 8})
	require.NoError(t, err)

	assert.Equal(t, serial.Analysis, parallel.Analysis)
	assert.Equal(t, serial.Stats, parallel.Stats)
}

func TestRunner_Run_ContextCancellation(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"a.js": "var a = 1;\n"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var logs bytes.Buffer
	_, err := newRunner(&logs).Run(ctx, runner.Options{WorkingDir: dir})
	require.ErrorIs(t, err, context.Canceled)
}

func TestResult_NilSafe(t *testing.T) {
	t.Parallel()

	var result *runner.Result
	assert.False(t, result.HasIssues())
	assert.False(t, result.HasErrors())
	assert.Nil(t, result.Failures())
	assert.NoError(t, result.Fatal())
}

func rules(issues []lint.Issue) []string {
	out := make([]string, 0, len(issues))
	for _, issue := range issues {
		out = append(out, issue.Rule)
	}
	return out
}
