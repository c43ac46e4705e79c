package configloader

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/codelint/pkg/config"
)

func ptr[T any](v T) *T {
	return &v
}

func TestMerge(t *testing.T) {
	t.Parallel()

	base := config.NewConfig()
	base.Strict = true
	base.Ignore = []string{"vendor/**"}
	base.Analyzers["naming"] = config.AnalyzerConfig{Enabled: ptr(false)}
	base.Rules["no-var"] = config.RuleConfig{Enabled: ptr(false), Severity: ptr("warning")}

	override := &config.Config{
		MinSeverity: "error",
		Thresholds:  config.Thresholds{MaxDepth: 6},
		Analyzers: map[string]config.AnalyzerConfig{
			"naming":   {},
			"security": {Enabled: ptr(false)},
		},
		Rules: map[string]config.RuleConfig{
			"no-var": {Severity: ptr("error")},
		},
	}

	got := merge(base, override)

	assert.Equal(t, "error", got.MinSeverity)
	assert.True(t, got.Strict, "a false override does not clear strict")
	assert.Equal(t, 6, got.Thresholds.MaxDepth)
	assert.Equal(t, 10, got.Thresholds.MaxComplexity)
	assert.Equal(t, []string{"vendor/**"}, got.Ignore, "nil slices do not replace")

	assert.False(t, *got.Analyzers["naming"].Enabled, "unset toggle keeps base")
	assert.False(t, *got.Analyzers["security"].Enabled)

	noVar := got.Rules["no-var"]
	assert.False(t, *noVar.Enabled)
	assert.Equal(t, "error", *noVar.Severity)

	assert.Equal(t, "warning", *base.Rules["no-var"].Severity, "base is not modified")
}

func TestMerge_Nil(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	assert.Same(t, cfg, merge(nil, cfg))
	assert.Same(t, cfg, merge(cfg, nil))
}

func TestMergeAll(t *testing.T) {
	t.Parallel()

	assert.Nil(t, MergeAll())

	got := MergeAll(
		config.NewConfig(),
		&config.Config{Jobs: 2},
		&config.Config{Jobs: 4, Ignore: []string{"a"}},
	)
	assert.Equal(t, 4, got.Jobs)
	assert.Equal(t, []string{"a"}, got.Ignore)
}
