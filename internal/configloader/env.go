package configloader

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/yaklabco/codelint/pkg/config"
)

// EnvVarPrefix is the prefix for all codelint environment variables.
const EnvVarPrefix = "CODELINT_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
	envTypeSlice
)

// envMapping defines an environment variable to config field mapping.
type envMapping struct {
	field       string
	typ         envFieldType
	description string
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"MIN_SEVERITY":      {field: "min_severity", typ: envTypeString, description: "Minimum severity to report: error, warning, or suggestion"},
	"FORMAT":            {field: "format", typ: envTypeString, description: "Output format: text, table, json, sarif, or summary"},
	"STRICT":            {field: "strict", typ: envTypeBool, description: "Fail when any issue remains: true or false"},
	"JOBS":              {field: "jobs", typ: envTypeInt, description: "Number of parallel workers (0 = auto)"},
	"IGNORE":            {field: "ignore", typ: envTypeSlice, description: "Comma-separated list of ignore globs"},
	"DISABLE":           {field: "disable", typ: envTypeSlice, description: "Comma-separated analyzers or rules to disable"},
	"ENABLE":            {field: "enable", typ: envTypeSlice, description: "Comma-separated analyzers or rules to enable"},
	"MAX_COMPLEXITY":    {field: "thresholds.max_complexity", typ: envTypeInt, description: "Highest allowed function complexity"},
	"MAX_PARAMS":        {field: "thresholds.max_params", typ: envTypeInt, description: "Highest allowed parameter count"},
	"MAX_STATEMENTS":    {field: "thresholds.max_statements", typ: envTypeInt, description: "Highest allowed statements per block"},
	"MAX_DEPTH":         {field: "thresholds.max_depth", typ: envTypeInt, description: "Nesting level that triggers max-depth"},
	"MAX_STRING_LENGTH": {field: "thresholds.max_string_length", typ: envTypeInt, description: "Longest allowed hardcoded string"},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Variables are prefixed with CODELINT_ (e.g., CODELINT_MIN_SEVERITY).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for _, envSuffix := range sortedEnvSuffixes() {
		envVar := EnvVarPrefix + envSuffix
		value, ok := os.LookupEnv(envVar)
		if !ok || value == "" {
			continue
		}

		if err := applyEnvValue(cfg, envMappings[envSuffix], value, envVar); err != nil {
			return err
		}
	}

	return nil
}

func sortedEnvSuffixes() []string {
	suffixes := make([]string, 0, len(envMappings))
	for suffix := range envMappings {
		suffixes = append(suffixes, suffix)
	}
	sort.Strings(suffixes)
	return suffixes
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(cfg, mapping.field, i)
	case envTypeSlice:
		return setSliceField(cfg, mapping.field, parseSliceValue(value))
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// parseSliceValue parses a comma-separated string into a slice.
// Each element is trimmed of whitespace.
func parseSliceValue(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "min_severity":
		cfg.MinSeverity = value
	case "format":
		cfg.Format = config.OutputFormat(value)
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "strict":
		cfg.Strict = value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "jobs":
		cfg.Jobs = value
	case "thresholds.max_complexity":
		cfg.Thresholds.MaxComplexity = value
	case "thresholds.max_params":
		cfg.Thresholds.MaxParams = value
	case "thresholds.max_statements":
		cfg.Thresholds.MaxStatements = value
	case "thresholds.max_depth":
		cfg.Thresholds.MaxDepth = value
	case "thresholds.max_string_length":
		cfg.Thresholds.MaxStringLength = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

func setSliceField(cfg *config.Config, field string, value []string) error {
	switch field {
	case "ignore":
		cfg.Ignore = value
	case "disable":
		cfg.DisableRules = append(cfg.DisableRules, value...)
	case "enable":
		cfg.EnableRules = append(cfg.EnableRules, value...)
	default:
		return fmt.Errorf("unknown slice field: %s", field)
	}
	return nil
}

// GetEnvVarName returns the full environment variable name for a config field.
func GetEnvVarName(field string) string {
	for suffix, mapping := range envMappings {
		if mapping.field == field {
			return EnvVarPrefix + suffix
		}
	}
	return ""
}

// ListEnvVars returns all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	vars := make(map[string]string, len(envMappings))
	for suffix, mapping := range envMappings {
		vars[EnvVarPrefix+suffix] = mapping.description
	}
	return vars
}
