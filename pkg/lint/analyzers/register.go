package analyzers

import (
	"github.com/yaklabco/codelint/pkg/config"
	"github.com/yaklabco/codelint/pkg/lint"
)

// RegisterAll registers the built-in analyzers with the given registry.
// The order here is the order issues are reported in for each file.
func RegisterAll(registry *lint.Registry, thresholds config.Thresholds) error {
	for _, a := range []lint.Analyzer{
		NewPatternAnalyzer(),
		NewTypeAnnotationAnalyzer(),
		NewSecurityAnalyzer(),
		NewBestPracticeAnalyzer(),
		NewUnusedAnalyzer(),
		NewComplexityAnalyzer(thresholds),
		NewMagicLiteralAnalyzer(thresholds),
		NewNamingAnalyzer(),
		NewNullSafetyAnalyzer(),
		NewPythonAnalyzer(thresholds),
	} {
		if err := registry.Register(a); err != nil {
			return err
		}
	}
	return nil
}

// NewRegistry returns a registry holding the built-in analyzers configured
// with the given thresholds.
func NewRegistry(thresholds config.Thresholds) *lint.Registry {
	registry := lint.NewRegistry()
	if err := RegisterAll(registry, thresholds); err != nil {
		panic(err)
	}
	return registry
}

// RuleInfos lists the rules of the default registry for config templates.
func RuleInfos() []config.RuleInfo {
	refs := lint.DefaultRegistry.Rules()
	out := make([]config.RuleInfo, 0, len(refs))
	for _, ref := range refs {
		out = append(out, config.RuleInfo{
			ID:          ref.ID,
			Analyzer:    ref.Analyzer,
			Category:    string(ref.Category),
			Description: ref.Description,
			Severity:    ref.Severity,
		})
	}
	return out
}

func init() {
	if err := RegisterAll(lint.DefaultRegistry, config.DefaultThresholds()); err != nil {
		panic(err)
	}
	config.DefaultRuleInfoProvider = RuleInfos
}
