package configloader

import (
	"maps"
	"slices"

	"github.com/yaklabco/codelint/pkg/config"
)

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Maps: deep merge, with override's values taking precedence
//   - Slices: override replaces base entirely if override is non-nil
//   - Nil/unset values in override do not override values in base
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.MinSeverity != "" {
		result.MinSeverity = override.MinSeverity
	}
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}

	// false is the zero value, so a layer can turn strict mode on but not off.
	if override.Strict {
		result.Strict = true
	}

	result.Thresholds = mergeThresholds(base.Thresholds, override.Thresholds)
	result.Analyzers = mergeAnalyzers(base.Analyzers, override.Analyzers)
	result.Rules = mergeRules(base.Rules, override.Rules)

	if override.Ignore != nil {
		result.Ignore = slices.Clone(override.Ignore)
	}
	if override.EnableRules != nil {
		result.EnableRules = slices.Clone(override.EnableRules)
	}
	if override.DisableRules != nil {
		result.DisableRules = slices.Clone(override.DisableRules)
	}

	return &result
}

// mergeThresholds overrides each limit that override sets.
func mergeThresholds(base, override config.Thresholds) config.Thresholds {
	result := base
	if override.MaxComplexity > 0 {
		result.MaxComplexity = override.MaxComplexity
	}
	if override.MaxParams > 0 {
		result.MaxParams = override.MaxParams
	}
	if override.MaxStatements > 0 {
		result.MaxStatements = override.MaxStatements
	}
	if override.MaxDepth > 0 {
		result.MaxDepth = override.MaxDepth
	}
	if override.MaxStringLength > 0 {
		result.MaxStringLength = override.MaxStringLength
	}
	return result
}

func mergeAnalyzers(base, override map[string]config.AnalyzerConfig) map[string]config.AnalyzerConfig {
	if base == nil && override == nil {
		return nil
	}

	result := make(map[string]config.AnalyzerConfig, len(base)+len(override))
	maps.Copy(result, base)
	for key, val := range override {
		if val.Enabled != nil {
			result[key] = val
		} else if _, ok := result[key]; !ok {
			result[key] = val
		}
	}
	return result
}

// mergeRules performs deep merge of rule configurations.
func mergeRules(base, override map[string]config.RuleConfig) map[string]config.RuleConfig {
	if base == nil && override == nil {
		return nil
	}

	result := make(map[string]config.RuleConfig, len(base)+len(override))
	maps.Copy(result, base)

	for key, val := range override {
		if existing, ok := result[key]; ok {
			result[key] = mergeRuleConfig(existing, val)
		} else {
			result[key] = val
		}
	}

	return result
}

// mergeRuleConfig merges individual rule configurations.
func mergeRuleConfig(base, override config.RuleConfig) config.RuleConfig {
	result := base

	if override.Enabled != nil {
		result.Enabled = override.Enabled
	}
	if override.Severity != nil {
		result.Severity = override.Severity
	}

	return result
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for _, cfg := range configs[1:] {
		result = merge(result, cfg)
	}
	return result
}
