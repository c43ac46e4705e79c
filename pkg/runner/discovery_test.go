package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/codelint/pkg/runner"
)

// writeTree creates files (relative paths) under dir.
func writeTree(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func displays(targets []runner.Target) []string {
	out := make([]string, 0, len(targets))
	for _, target := range targets {
		out = append(out, filepath.ToSlash(target.Display))
	}
	return out
}

func TestDiscover_Directory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"app.js":                    "",
		"src/view.tsx":              "",
		"src/model.ts":              "",
		"pkg/tool.py":               "",
		"README.md":                 "",
		"main.go":                   "",
		"node_modules/dep/index.js": "",
		".git/hooks/pre-commit.js":  "",
		".hidden.js":                "",
		"src/__pycache__/x.py":      "",
		"vendor/lib.js":             "",
		"web/app.min.js":            "",
	})

	targets, err := runner.Discover(context.Background(), runner.Options{WorkingDir: dir})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"app.js",
		"pkg/tool.py",
		"src/model.ts",
		"src/view.tsx",
	}, displays(targets))
	for _, target := range targets {
		assert.False(t, target.Explicit)
		assert.True(t, filepath.IsAbs(target.Path))
	}
}

func TestDiscover_IncludeVendored(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"app.js":        "",
		"vendor/lib.js": "",
	})

	targets, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir:      dir,
		IncludeVendored: true,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"app.js", "vendor/lib.js"}, displays(targets))
}

func TestDiscover_ExcludeGlobs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"src/app.js":         "",
		"src/app.test.js":    "",
		"build/out.js":       "",
		"gen/deep/schema.ts": "",
		"docs/example.py":    "",
	})

	targets, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir:   dir,
		ExcludeGlobs: []string{"*.test.js", "build", "gen/**", "docs/*.py"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"src/app.js"}, displays(targets))
}

func TestDiscover_CustomExtensions(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"a.js": "",
		"b.py": "",
	})

	targets, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir: dir,
		Extensions: []string{".PY"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"b.py"}, displays(targets))
}

func TestDiscover_ExplicitFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"notes.md": "",
		"src/a.js": "",
		"tool":     "#!/usr/bin/env python3\n",
	})

	targets, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir: dir,
		Paths:      []string{"notes.md", "tool", "missing.js", "src", "src/a.js"},
	})
	require.NoError(t, err)

	require.Equal(t, []string{"missing.js", "notes.md", "src/a.js", "tool"}, displays(targets))
	for _, target := range targets {
		assert.True(t, target.Explicit, target.Display)
	}
}

func TestDiscover_OutsideWorkingDir(t *testing.T) {
	t.Parallel()

	work := t.TempDir()
	other := t.TempDir()
	writeTree(t, other, map[string]string{"lib.js": ""})

	targets, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir: work,
		Paths:      []string{other},
	})
	require.NoError(t, err)
	require.Len(t, targets, 1)
	assert.Equal(t, filepath.Join(other, "lib.js"), targets[0].Display)
}

func TestDiscover_DirectorySymlinks(t *testing.T) {
	t.Parallel()

	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	writeTree(t, dir, map[string]string{"real/a.js": ""})
	if err := os.Symlink(filepath.Join(dir, "real"), filepath.Join(dir, "link")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	targets, err := runner.Discover(context.Background(), runner.Options{WorkingDir: dir})
	require.NoError(t, err)
	assert.Equal(t, []string{"real/a.js"}, displays(targets))

	targets, err = runner.Discover(context.Background(), runner.Options{
		WorkingDir:     dir,
		FollowSymlinks: true,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"real/a.js"}, displays(targets), "the target is deduplicated")
}

func TestDiscover_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.Discover(ctx, runner.Options{WorkingDir: t.TempDir()})
	require.ErrorIs(t, err, context.Canceled)
}

func TestDefaultExtensions(t *testing.T) {
	t.Parallel()

	exts := runner.DefaultExtensions()
	assert.IsNonDecreasing(t, exts)
	for _, want := range []string{".js", ".jsx", ".ts", ".tsx", ".py"} {
		assert.Contains(t, exts, want)
	}
}

func TestDiscover_InvalidGlob(t *testing.T) {
	t.Parallel()

	_, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir:   t.TempDir(),
		ExcludeGlobs: []string{"src/[a"},
	})
	require.ErrorIs(t, err, runner.ErrInvalidGlob)
}
