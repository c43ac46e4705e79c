package configloader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/codelint/pkg/config"
)

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CODELINT_MIN_SEVERITY", "warning")
	t.Setenv("CODELINT_FORMAT", "json")
	t.Setenv("CODELINT_STRICT", "true")
	t.Setenv("CODELINT_JOBS", "3")
	t.Setenv("CODELINT_IGNORE", " dist/** , ,build/**")
	t.Setenv("CODELINT_DISABLE", "naming,no-var")
	t.Setenv("CODELINT_MAX_STRING_LENGTH", "80")

	cfg := config.NewConfig()
	require.NoError(t, LoadFromEnv(cfg))

	assert.Equal(t, "warning", cfg.MinSeverity)
	assert.Equal(t, config.FormatJSON, cfg.Format)
	assert.True(t, cfg.Strict)
	assert.Equal(t, 3, cfg.Jobs)
	assert.Equal(t, []string{"dist/**", "build/**"}, cfg.Ignore)
	assert.Equal(t, []string{"naming", "no-var"}, cfg.DisableRules)
	assert.Equal(t, 80, cfg.Thresholds.MaxStringLength)
	assert.Equal(t, 10, cfg.Thresholds.MaxComplexity)
}

func TestLoadFromEnv_StrictCanBeTurnedOff(t *testing.T) {
	t.Setenv("CODELINT_STRICT", "false")

	cfg := config.NewConfig()
	cfg.Strict = true
	require.NoError(t, LoadFromEnv(cfg))

	assert.False(t, cfg.Strict)
}

func TestLoadFromEnv_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		envVar  string
		value   string
		wantMsg string
	}{
		{name: "bool", envVar: "CODELINT_STRICT", value: "maybe", wantMsg: "invalid boolean for CODELINT_STRICT"},
		{name: "int", envVar: "CODELINT_JOBS", value: "many", wantMsg: "invalid integer for CODELINT_JOBS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.envVar, tt.value)

			err := LoadFromEnv(config.NewConfig())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestLoadFromEnv_NilConfig(t *testing.T) {
	assert.NoError(t, LoadFromEnv(nil))
}

func TestEnvVarNames(t *testing.T) {
	assert.Equal(t, "CODELINT_MIN_SEVERITY", GetEnvVarName("min_severity"))
	assert.Equal(t, "CODELINT_MAX_DEPTH", GetEnvVarName("thresholds.max_depth"))
	assert.Empty(t, GetEnvVarName("flavor"))

	vars := ListEnvVars()
	assert.Len(t, vars, len(envMappings))
	assert.Contains(t, vars, "CODELINT_IGNORE")
}
