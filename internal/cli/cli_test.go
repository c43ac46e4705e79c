package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/codelint/internal/cli"
	"github.com/yaklabco/codelint/pkg/config"
)

const (
	cleanSource      = "export const total: number = 1;\n"
	suggestionSource = "var count = 1;\nuse(count);\n"
	brokenPython     = "def broken(:\n    pass\n"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := cli.NewRootCommand(cli.BuildInfo{Version: "1.2.3", Commit: "abc123", Date: "2026-01-01"})

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(cli.BuildInfo{Version: "test"})
	require.NotNil(t, cmd)

	assert.Equal(t, "codelint", cmd.Name())
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	for _, name := range []string{"lint", "rules", "init", "version"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, sub.Name())
	}
}

func TestLintCommandFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(cli.BuildInfo{Version: "test"})
	lintCmd, _, err := cmd.Find([]string{"lint"})
	require.NoError(t, err)

	tests := []struct {
		flag string
		def  string
	}{
		{flag: "format", def: "text"},
		{flag: "severity", def: "suggestion"},
		{flag: "strict", def: "false"},
		{flag: "workers", def: "0"},
		{flag: "ignore", def: "[]"},
		{flag: "enable", def: "[]"},
		{flag: "disable", def: "[]"},
		{flag: "summary-order", def: "rules"},
		{flag: "config", def: ""},
		{flag: "no-config", def: "false"},
		{flag: "color", def: "auto"},
		{flag: "verbose", def: "false"},
		{flag: "quiet", def: "false"},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			t.Parallel()

			flag := lintCmd.Flags().Lookup(tt.flag)
			if flag == nil {
				flag = lintCmd.InheritedFlags().Lookup(tt.flag)
			}
			require.NotNil(t, flag, "flag %s should exist", tt.flag)
			assert.Equal(t, tt.def, flag.DefValue)
		})
	}

	// The root command accepts the same lint flags.
	assert.NotNil(t, cmd.Flags().Lookup("severity"))
}

func TestLint_ExitCodes(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	clean := writeFile(t, dir, "clean.ts", cleanSource)
	suggestions := writeFile(t, dir, "app.js", suggestionSource)
	broken := writeFile(t, dir, "broken.py", brokenPython)

	tests := []struct {
		name string
		args []string
		want int
	}{
		{name: "clean file", args: []string{"lint", clean}, want: cli.ExitSuccess},
		{name: "suggestions only", args: []string{"lint", suggestions}, want: cli.ExitSuccess},
		{name: "strict with suggestions", args: []string{"lint", "--strict", suggestions}, want: cli.ExitIssues},
		{name: "error severity", args: []string{"lint", broken}, want: cli.ExitIssues},
		{name: "root runs lint", args: []string{"--strict", suggestions}, want: cli.ExitIssues},
		{name: "unknown format", args: []string{"lint", "--format", "xml", clean}, want: cli.ExitUsage},
		{name: "unknown severity", args: []string{"lint", "--severity", "loud", clean}, want: cli.ExitUsage},
		{name: "negative workers", args: []string{"lint", "--workers", "-1", clean}, want: cli.ExitUsage},
		{name: "unknown flag", args: []string{"lint", "--bogus", clean}, want: cli.ExitUsage},
		{name: "invalid color", args: []string{"lint", "--color", "sometimes", clean}, want: cli.ExitUsage},
		{name: "missing explicit file", args: []string{"lint", filepath.Join(dir, "missing.js")}, want: cli.ExitFatal},
		{name: "missing config file", args: []string{"lint", "--config", filepath.Join(dir, "nope.yml"), clean}, want: cli.ExitUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			args := append([]string{"--no-config", "--color", "never"}, tt.args...)
			_, _, err := execute(t, args...)
			assert.Equal(t, tt.want, cli.ExitCode(err), "error: %v", err)
		})
	}
}

func TestLint_TextOutput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "app.js", suggestionSource)

	stdout, _, err := execute(t, "lint", "--no-config", "--color", "never", path)
	require.NoError(t, err)

	assert.Contains(t, stdout, path)
	assert.Contains(t, stdout, "no-var")
	assert.Contains(t, stdout, "suggestion")
}

func TestLint_JSONOutput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "app.js", suggestionSource)

	stdout, _, err := execute(t, "lint", "--no-config", "--format", "json", path)
	require.NoError(t, err)

	var out struct {
		Files []struct {
			FilePath string `json:"file_path"`
			Issues   []struct {
				Rule     string `json:"rule"`
				Severity string `json:"severity"`
			} `json:"issues"`
		} `json:"files"`
		Summary struct {
			Total int `json:"total"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))

	require.Len(t, out.Files, 1)
	assert.Equal(t, path, out.Files[0].FilePath)
	require.NotEmpty(t, out.Files[0].Issues)
	assert.Equal(t, "no-var", out.Files[0].Issues[0].Rule)
	assert.Equal(t, "suggestion", out.Files[0].Issues[0].Severity)
	assert.Equal(t, len(out.Files[0].Issues), out.Summary.Total)
}

func TestLint_DisableAndSeverity(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "app.js", suggestionSource)

	tests := []struct {
		name string
		args []string
	}{
		{name: "disable rule", args: []string{"--disable", "no-var"}},
		{name: "disable analyzer", args: []string{"--disable", "best-practice"}},
		{name: "severity floor", args: []string{"--severity", "warning"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			args := append([]string{"lint", "--no-config", "--format", "json"}, tt.args...)
			stdout, _, err := execute(t, append(args, path)...)
			require.NoError(t, err)
			assert.NotContains(t, stdout, `"no-var"`)
		})
	}
}

func TestLint_ConfigFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "app.js", suggestionSource)

	t.Run("severity override fails the run", func(t *testing.T) {
		t.Parallel()

		cfg := writeFile(t, t.TempDir(), ".codelint.yml", "rules:\n  no-var:\n    severity: error\n")
		stdout, _, err := execute(t, "lint", "--no-config", "--config", cfg, "--format", "json", path)

		assert.Equal(t, cli.ExitIssues, cli.ExitCode(err))
		assert.Contains(t, stdout, `"severity": "error"`)
	})

	t.Run("invalid value is a usage error", func(t *testing.T) {
		t.Parallel()

		cfg := writeFile(t, t.TempDir(), ".codelint.yml", "min_severity: loud\n")
		_, _, err := execute(t, "lint", "--no-config", "--config", cfg, path)

		require.Error(t, err)
		assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
		assert.Contains(t, err.Error(), "min_severity")
	})

	t.Run("unknown rule warns", func(t *testing.T) {
		t.Parallel()

		cfg := writeFile(t, t.TempDir(), ".codelint.yml", "rules:\n  no-such-rule:\n    enabled: false\n")
		_, stderr, err := execute(t, "lint", "--no-config", "--config", cfg, path)

		require.NoError(t, err)
		assert.Contains(t, stderr, "no-such-rule")
	})
}

func TestLint_DirectoryFailureIsNotFatal(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "good.ts", cleanSource)
	writeFile(t, dir, "broken.js", "function (\n")

	stdout, stderr, err := execute(t, "lint", "--no-config", "--color", "never", dir)
	require.NoError(t, err)

	assert.Contains(t, stdout, "broken.js")
	assert.Contains(t, stderr, "skipping file")
}

func TestRulesCommand(t *testing.T) {
	t.Parallel()

	t.Run("text", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := execute(t, "rules", "--color", "never")
		require.NoError(t, err)
		assert.Contains(t, stdout, "security\n")
		assert.Contains(t, stdout, "no-eval")
		assert.Contains(t, stdout, "Use of eval()")
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := execute(t, "rules", "--format", "json", "--analyzer", "security")
		require.NoError(t, err)

		var rules []listedRule
		require.NoError(t, json.Unmarshal([]byte(stdout), &rules))
		require.NotEmpty(t, rules)
		for _, rule := range rules {
			assert.Equal(t, "security", rule.Analyzer)
		}
		assert.Contains(t, ids(rules), "no-eval")
	})

	t.Run("unknown analyzer", func(t *testing.T) {
		t.Parallel()

		_, _, err := execute(t, "rules", "--analyzer", "nope")
		assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
	})
}

type listedRule struct {
	ID       string `json:"id"`
	Analyzer string `json:"analyzer"`
	Severity string `json:"severity"`
}

func ids(rules []listedRule) []string {
	out := make([]string, 0, len(rules))
	for _, rule := range rules {
		out = append(out, rule.ID)
	}
	return out
}

func TestInitCommand(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	target := filepath.Join(dir, ".codelint.yml")

	_, stderr, err := execute(t, "init", "--output", target)
	require.NoError(t, err)
	assert.Contains(t, stderr, "created configuration file")

	content, err := os.ReadFile(target)
	require.NoError(t, err)
	cfg, err := config.FromYAML(content)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultThresholds(), cfg.Thresholds)
	assert.Equal(t, string(config.SeveritySuggestion), cfg.MinSeverity)

	_, _, err = execute(t, "init", "--output", target)
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))

	_, _, err = execute(t, "init", "--output", target, "--force", "--full")
	require.NoError(t, err)
	content, err = os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(content), "no-eval:")

	// The generated file is accepted by the loader.
	src := writeFile(t, dir, "app.ts", cleanSource)
	_, _, err = execute(t, "lint", "--no-config", "--config", target, src)
	require.NoError(t, err)
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, "version")
	require.NoError(t, err)

	assert.Contains(t, stdout, "codelint")
	assert.Contains(t, stdout, "1.2.3")
	assert.Contains(t, stdout, "abc123")

	_, _, err = execute(t, "version", "extra")
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
}

func TestHelpOutput(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, "lint", "--help", "--color", "never")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Usage:")
	assert.Contains(t, stdout, "codelint lint [paths...]")
	assert.Contains(t, stdout, "--severity string")
	assert.Contains(t, stdout, "Global Flags:")
	assert.Contains(t, stdout, "Environment:")
	assert.Contains(t, stdout, "CODELINT_MIN_SEVERITY")
	assert.NotContains(t, stdout, "\x1b[")
}
