package configloader

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/codelint/pkg/config"
	"github.com/yaklabco/codelint/pkg/lint"
	"github.com/yaklabco/codelint/pkg/runner"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "rules.no-var.severity").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string

	// Line is the line number in the config file (if known).
	Line int
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		if e.Line > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", e.FilePath, e.Line))
		} else {
			parts = append(parts, e.FilePath)
		}
	}

	if e.Field != "" {
		parts = append(parts, e.Field)
	}

	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues.
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

const severityChoices = "error, warning, suggestion"

// knownFormats lists valid output format values.
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownFormats = map[config.OutputFormat]bool{
	config.FormatText:    true,
	config.FormatTable:   true,
	config.FormatJSON:    true,
	config.FormatSARIF:   true,
	config.FormatSummary: true,
}

// Validate checks a configuration against the analyzers and rules of registry.
// Invalid severities, formats, thresholds, and globs are errors; unknown
// analyzer or rule names are warnings.
func Validate(cfg *config.Config, registry *lint.Registry) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if cfg.MinSeverity != "" && !config.Severity(cfg.MinSeverity).IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "min_severity",
			Value:   cfg.MinSeverity,
			Message: fmt.Sprintf("invalid severity %q; must be one of: %s", cfg.MinSeverity, severityChoices),
		})
	}

	if cfg.Format != "" && !knownFormats[cfg.Format] {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "format",
			Value:   cfg.Format,
			Message: fmt.Sprintf("invalid format %q; must be one of: text, table, json, sarif, summary", cfg.Format),
		})
	}

	if cfg.Jobs < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "jobs",
			Value:   cfg.Jobs,
			Message: "jobs must be >= 0 (0 means auto)",
		})
	}

	validateThresholds(cfg.Thresholds, result)
	validateAnalyzers(cfg, registry, result)
	validateRules(cfg, registry, result)
	validateIgnorePatterns(cfg, result)

	return result
}

func validateThresholds(t config.Thresholds, result *ValidationResult) {
	for _, field := range []struct {
		name  string
		value int
	}{
		{"max_complexity", t.MaxComplexity},
		{"max_params", t.MaxParams},
		{"max_statements", t.MaxStatements},
		{"max_depth", t.MaxDepth},
		{"max_string_length", t.MaxStringLength},
	} {
		if field.value < 0 {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "thresholds." + field.name,
				Value:   field.value,
				Message: "threshold must be >= 0 (0 means default)",
			})
		}
	}
}

func validateAnalyzers(cfg *config.Config, registry *lint.Registry, result *ValidationResult) {
	if registry == nil {
		return
	}

	for _, name := range sortedKeys(cfg.Analyzers) {
		if _, ok := registry.Get(name); !ok {
			result.Warnings = append(result.Warnings, ValidationError{
				Field:   "analyzers." + name,
				Value:   name,
				Message: fmt.Sprintf("unknown analyzer %q; it will be ignored", name),
			})
		}
	}

	for _, list := range []struct {
		field string
		keys  []string
	}{
		{"enable", cfg.EnableRules},
		{"disable", cfg.DisableRules},
	} {
		for _, key := range list.keys {
			if !registry.Known(key) {
				result.Warnings = append(result.Warnings, ValidationError{
					Field:   list.field,
					Value:   key,
					Message: fmt.Sprintf("unknown analyzer or rule %q; it will be ignored", key),
				})
			}
		}
	}
}

func validateRules(cfg *config.Config, registry *lint.Registry, result *ValidationResult) {
	for _, ruleID := range sortedKeys(cfg.Rules) {
		ruleCfg := cfg.Rules[ruleID]

		if registry != nil && !registry.HasRule(ruleID) {
			result.Warnings = append(result.Warnings, ValidationError{
				Field:   "rules." + ruleID,
				Value:   ruleID,
				Message: fmt.Sprintf("unknown rule %q; it will be ignored", ruleID),
			})
		}

		if ruleCfg.Severity != nil && !config.Severity(*ruleCfg.Severity).IsValid() {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "rules." + ruleID + ".severity",
				Value:   *ruleCfg.Severity,
				Message: fmt.Sprintf("invalid severity %q; must be one of: %s", *ruleCfg.Severity, severityChoices),
			})
		}
	}
}

// validateIgnorePatterns rejects patterns the discovery matcher cannot compile.
func validateIgnorePatterns(cfg *config.Config, result *ValidationResult) {
	for i, pattern := range cfg.Ignore {
		message := ""
		switch {
		case strings.TrimSpace(pattern) == "":
			message = "empty glob pattern"
		case strings.Count(pattern, "[") != strings.Count(pattern, "]"):
			message = "invalid glob pattern: unbalanced brackets"
		default:
			if err := runner.CompileGlob(pattern); err != nil {
				message = err.Error()
			}
		}
		if message != "" {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("ignore[%d]", i),
				Value:   pattern,
				Message: message,
			})
		}
	}
}

// ValidateWithFile validates a configuration loaded from filePath. When the
// file's YAML document is given, findings carry the line of the offending key.
func ValidateWithFile(cfg *config.Config, registry *lint.Registry, filePath string, doc *yaml.Node) *ValidationResult {
	result := Validate(cfg, registry)

	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
		result.Errors[i].Line = fieldLine(doc, result.Errors[i].Field)
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
		result.Warnings[i].Line = fieldLine(doc, result.Warnings[i].Field)
	}

	return result
}

// fieldLine returns the line of the key at a dotted field path such as
// "rules.no-var.severity", or of the deepest key found. A bracketed index
// such as "ignore[2]" addresses a sequence element.
func fieldLine(doc *yaml.Node, field string) int {
	if doc == nil || field == "" {
		return 0
	}

	node := doc
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}

	line := 0
	for _, part := range splitField(field) {
		next, keyLine := lookup(node, part)
		if next == nil {
			break
		}
		line = keyLine
		node = next
	}
	return line
}

// splitField splits "rules.no-var.severity" on dots and "ignore[2]" into
// "ignore" and "[2]". Rule IDs never contain dots.
func splitField(field string) []string {
	var parts []string
	for _, part := range strings.Split(field, ".") {
		if name, index, ok := strings.Cut(part, "["); ok {
			parts = append(parts, name, "["+index)
			continue
		}
		parts = append(parts, part)
	}
	return parts
}

func lookup(node *yaml.Node, part string) (*yaml.Node, int) {
	switch node.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			if node.Content[i].Value == part {
				return node.Content[i+1], node.Content[i].Line
			}
		}
	case yaml.SequenceNode:
		var index int
		if _, err := fmt.Sscanf(part, "[%d]", &index); err == nil && index >= 0 && index < len(node.Content) {
			return node.Content[index], node.Content[index].Line
		}
	}
	return nil, 0
}

func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}
