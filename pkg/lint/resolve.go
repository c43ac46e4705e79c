package lint

import (
	"slices"

	"github.com/yaklabco/codelint/pkg/config"
)

// Selection is the resolved set of analyzers and rule settings for a run.
// It is read-only after Resolve and safe to share between workers.
type Selection struct {
	analyzers     []Analyzer
	disabledRules map[string]bool
	severities    map[string]config.Severity
	minSeverity   config.Severity
}

// Resolve determines which analyzers run and how their rules are adjusted.
//
// Precedence, lowest to highest: analyzer defaults (all enabled), the
// analyzers and rules maps of cfg, then the CLI enable and disable lists.
// A key in the CLI lists may name either an analyzer or a rule; disable wins
// when a key is in both.
func Resolve(registry *Registry, cfg *config.Config) *Selection {
	sel := &Selection{
		disabledRules: make(map[string]bool),
		severities:    make(map[string]config.Severity),
	}

	if cfg == nil {
		sel.analyzers = registry.All()
		return sel
	}

	sel.minSeverity = cfg.MinimumSeverity()

	for _, a := range registry.All() {
		if analyzerEnabled(a.Name(), cfg) {
			sel.analyzers = append(sel.analyzers, a)
		}
	}

	for id, rc := range cfg.Rules {
		if rc.Enabled != nil && !*rc.Enabled {
			sel.disabledRules[id] = true
		}
		if rc.Severity != nil {
			if sev, err := config.ParseSeverity(*rc.Severity); err == nil {
				sel.severities[id] = sev
			}
		}
	}

	for _, id := range cfg.EnableRules {
		delete(sel.disabledRules, id)
	}
	for _, id := range cfg.DisableRules {
		sel.disabledRules[id] = true
	}

	return sel
}

// analyzerEnabled applies config and CLI toggles to one analyzer.
func analyzerEnabled(name string, cfg *config.Config) bool {
	enabled := true
	if ac, ok := cfg.Analyzers[name]; ok && ac.Enabled != nil {
		enabled = *ac.Enabled
	}
	if slices.Contains(cfg.EnableRules, name) {
		enabled = true
	}
	if slices.Contains(cfg.DisableRules, name) {
		enabled = false
	}
	return enabled
}

// Analyzers returns the enabled analyzers in registration order.
func (s *Selection) Analyzers() []Analyzer {
	return s.analyzers
}

// RuleEnabled reports whether issues of rule id are kept.
func (s *Selection) RuleEnabled(id string) bool {
	return !s.disabledRules[id]
}

// Apply drops issues of disabled rules, applies severity overrides and then
// the minimum severity filter. The input slice is not modified.
func (s *Selection) Apply(issues []Issue) []Issue {
	out := make([]Issue, 0, len(issues))
	for _, issue := range issues {
		if s.disabledRules[issue.Rule] {
			continue
		}
		if sev, ok := s.severities[issue.Rule]; ok {
			issue.Severity = sev
		}
		if !issue.Severity.AtLeast(s.minSeverity) {
			continue
		}
		out = append(out, issue)
	}
	return out
}
