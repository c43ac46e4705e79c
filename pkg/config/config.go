// Package config defines core configuration types for codelint.
// These types are pure data structures with no dependency on the config loader.
package config

import (
	"fmt"
	"strings"
)

// Severity represents the severity level of an issue.
type Severity string

const (
	SeverityError      Severity = "error"
	SeverityWarning    Severity = "warning"
	SeveritySuggestion Severity = "suggestion"
)

// ParseSeverity converts text to a Severity, rejecting unknown values.
func ParseSeverity(s string) (Severity, error) {
	switch Severity(strings.ToLower(strings.TrimSpace(s))) {
	case SeverityError:
		return SeverityError, nil
	case SeverityWarning:
		return SeverityWarning, nil
	case SeveritySuggestion:
		return SeveritySuggestion, nil
	default:
		return "", fmt.Errorf("unknown severity %q; valid severities: error, warning, suggestion", s)
	}
}

// IsValid returns true if the severity is one of the known levels.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityError, SeverityWarning, SeveritySuggestion:
		return true
	default:
		return false
	}
}

// Rank orders severities for display and filtering only; higher is more severe.
func (s Severity) Rank() int {
	switch s {
	case SeverityError:
		return 3
	case SeverityWarning:
		return 2
	case SeveritySuggestion:
		return 1
	default:
		return 0
	}
}

// AtLeast reports whether s is at least as severe as minimum.
// An empty minimum admits everything.
func (s Severity) AtLeast(minimum Severity) bool {
	if minimum == "" {
		return true
	}
	return s.Rank() >= minimum.Rank()
}

// RuleConfig holds per-rule configuration options.
type RuleConfig struct {
	Enabled  *bool   `yaml:"enabled"`
	Severity *string `yaml:"severity"`
}

// AnalyzerConfig toggles a whole analyzer.
type AnalyzerConfig struct {
	Enabled *bool `yaml:"enabled"`
}

// Thresholds holds the numeric limits used by the analyzers.
type Thresholds struct {
	// MaxComplexity is the highest allowed cyclomatic-like complexity per function.
	MaxComplexity int `yaml:"max_complexity"`

	// MaxParams is the highest allowed parameter count per function.
	MaxParams int `yaml:"max_params"`

	// MaxStatements is the highest allowed statement count per block.
	MaxStatements int `yaml:"max_statements"`

	// MaxDepth is the nesting level at which max-depth fires.
	MaxDepth int `yaml:"max_depth"`

	// MaxStringLength is the longest string literal allowed before
	// no-long-hardcoded-string fires.
	MaxStringLength int `yaml:"max_string_length"`
}

// DefaultThresholds returns the built-in limits.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MaxComplexity:   10,
		MaxParams:       5,
		MaxStatements:   50,
		MaxDepth:        4,
		MaxStringLength: 50,
	}
}

// WithDefaults fills zero or negative fields from DefaultThresholds.
func (t Thresholds) WithDefaults() Thresholds {
	def := DefaultThresholds()
	if t.MaxComplexity <= 0 {
		t.MaxComplexity = def.MaxComplexity
	}
	if t.MaxParams <= 0 {
		t.MaxParams = def.MaxParams
	}
	if t.MaxStatements <= 0 {
		t.MaxStatements = def.MaxStatements
	}
	if t.MaxDepth <= 0 {
		t.MaxDepth = def.MaxDepth
	}
	if t.MaxStringLength <= 0 {
		t.MaxStringLength = def.MaxStringLength
	}
	return t
}

// OutputFormat specifies the output format for issues.
type OutputFormat string

const (
	FormatText    OutputFormat = "text"
	FormatTable   OutputFormat = "table"
	FormatJSON    OutputFormat = "json"
	FormatSARIF   OutputFormat = "sarif"
	FormatSummary OutputFormat = "summary"
)

// SummaryOrder controls the order of tables in summary output.
type SummaryOrder string

const (
	// SummaryOrderRules shows rules table first (default).
	SummaryOrderRules SummaryOrder = "rules"
	// SummaryOrderFiles shows files table first.
	SummaryOrderFiles SummaryOrder = "files"
)

// IsValid returns true if the summary order is valid.
func (s SummaryOrder) IsValid() bool {
	switch s {
	case SummaryOrderRules, SummaryOrderFiles:
		return true
	default:
		return false
	}
}

// Config is the root configuration structure for codelint.
type Config struct {
	// MinSeverity drops issues below this severity from the output.
	MinSeverity string `yaml:"min_severity"`

	// Strict makes any remaining issue fail the run.
	Strict bool `yaml:"strict"`

	// Thresholds tunes the numeric limits of the analyzers.
	Thresholds Thresholds `yaml:"thresholds"`

	// Analyzers toggles whole analyzers keyed by analyzer name.
	Analyzers map[string]AnalyzerConfig `yaml:"analyzers"`

	// Rules contains per-rule configuration keyed by rule ID.
	Rules map[string]RuleConfig `yaml:"rules"`

	// Ignore contains glob patterns for files to ignore.
	Ignore []string `yaml:"ignore"`

	// CLI-level options (not persisted to config files).

	// Format specifies the output format.
	Format OutputFormat `yaml:"-"`

	// Jobs specifies the number of parallel workers.
	Jobs int `yaml:"-"`

	// EnableRules contains analyzer names or rule IDs to explicitly enable.
	EnableRules []string `yaml:"-"`

	// DisableRules contains analyzer names or rule IDs to explicitly disable.
	DisableRules []string `yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		MinSeverity: string(SeveritySuggestion),
		Thresholds:  DefaultThresholds(),
		Analyzers:   make(map[string]AnalyzerConfig),
		Rules:       make(map[string]RuleConfig),
		Format:      FormatText,
		Jobs:        0, // 0 means use GOMAXPROCS
	}
}

// EffectiveThresholds returns the thresholds with unset fields defaulted.
func (c *Config) EffectiveThresholds() Thresholds {
	if c == nil {
		return DefaultThresholds()
	}
	return c.Thresholds.WithDefaults()
}

// MinimumSeverity returns the parsed minimum severity, or "" when unset or invalid.
func (c *Config) MinimumSeverity() Severity {
	if c == nil || c.MinSeverity == "" {
		return ""
	}
	sev, err := ParseSeverity(c.MinSeverity)
	if err != nil {
		return ""
	}
	return sev
}
