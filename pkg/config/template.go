package config

import (
	"bytes"
	"fmt"
	"strings"
)

// commentWrapWidth is the maximum width for wrapped comments in templates.
const commentWrapWidth = 70

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full lists every rule with its documentation.
	// If false, generates a minimal template.
	Full bool

	// Rules supplies rule metadata for the full template.
	// When nil, DefaultRuleInfoProvider is consulted.
	Rules []RuleInfo
}

// RuleInfo contains rule metadata for template generation.
type RuleInfo struct {
	ID          string
	Analyzer    string
	Category    string
	Description string
	Severity    Severity
}

// RuleInfoProvider is a function that returns rule information.
// This allows decoupling from the lint package to avoid circular imports.
type RuleInfoProvider func() []RuleInfo

// DefaultRuleInfoProvider is set by the analyzers package during init.
//
//nolint:gochecknoglobals // Intentional extension point for rule info.
var DefaultRuleInfoProvider RuleInfoProvider

const minimalTemplate = `# Minimum severity to report: error, warning, or suggestion
min_severity: suggestion

# Fail the run when any issue remains
strict: false

# Analyzer limits
thresholds:
  max_complexity: 10
  max_params: 5
  max_statements: 50
  max_depth: 4
  max_string_length: 50

# File patterns to ignore (glob patterns)
# ignore:
#   - "dist/**"
#   - "**/*.min.js"

# Turn whole analyzers off
# analyzers:
#   naming:
#     enabled: false
`

// GenerateTemplate creates a configuration file template.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(DefaultTemplateHeader())
	buf.WriteString("\n\n")
	buf.WriteString(minimalTemplate)

	if !opts.Full {
		buf.WriteString(`
# Rule-specific configuration
# rules:
#   no-console:
#     enabled: false
#   eqeqeq:
#     severity: warning
`)
		return buf.Bytes(), nil
	}

	rules := opts.Rules
	if rules == nil {
		rules = getRuleInfos()
	}
	if len(rules) == 0 {
		return nil, fmt.Errorf("no rule metadata available for full template")
	}

	buf.WriteString("\n# Rule-specific configuration\nrules:\n")
	seen := make(map[string]bool, len(rules))
	for _, rule := range rules {
		if seen[rule.ID] {
			continue
		}
		seen[rule.ID] = true

		fmt.Fprintf(&buf, "\n  # %s (%s, %s)\n", rule.ID, rule.Analyzer, rule.Category)
		if rule.Description != "" {
			fmt.Fprintf(&buf, "  # %s\n", wrapComment(rule.Description, commentWrapWidth))
		}
		fmt.Fprintf(&buf, "  %s:\n", rule.ID)
		buf.WriteString("    enabled: true\n")
		fmt.Fprintf(&buf, "    severity: %s\n", rule.Severity)
	}

	return buf.Bytes(), nil
}

// getRuleInfos returns information about all registered rules.
func getRuleInfos() []RuleInfo {
	if DefaultRuleInfoProvider != nil {
		return DefaultRuleInfoProvider()
	}
	return nil
}

// wrapComment wraps a comment to fit within maxWidth characters.
func wrapComment(text string, maxWidth int) string {
	if len(text) <= maxWidth {
		return text
	}

	var lines []string
	words := strings.Fields(text)
	currentLine := ""

	for _, word := range words {
		switch {
		case currentLine == "":
			currentLine = word
		case len(currentLine)+1+len(word) <= maxWidth:
			currentLine += " " + word
		default:
			lines = append(lines, currentLine)
			currentLine = word
		}
	}
	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return strings.Join(lines, "\n  # ")
}

// DefaultTemplateHeader returns the default header for generated configs.
func DefaultTemplateHeader() string {
	return `# codelint configuration
# See: https://github.com/yaklabco/codelint`
}
