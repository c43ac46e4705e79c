package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/yaklabco/codelint/internal/ui/pretty"
	"github.com/yaklabco/codelint/pkg/lint"
)

type rulesFlags struct {
	format   string
	analyzer string
}

const (
	formatText = "text"
	formatJSON = "json"
)

// ruleJSON represents a rule in JSON output.
type ruleJSON struct {
	ID          string `json:"id"`
	Analyzer    string `json:"analyzer"`
	Category    string `json:"category"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
}

func newRulesCommand(global *globalFlags) *cobra.Command {
	flags := &rulesFlags{}

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List analyzers and their rules",
		Long: `List every analyzer with the rules it reports, their default severity,
category and a short description.`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRules(cmd, global, flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", formatText, "output format: text, json")
	cmd.Flags().StringVar(&flags.analyzer, "analyzer", "", "only list rules of this analyzer")

	return cmd
}

func runRules(cmd *cobra.Command, global *globalFlags, flags *rulesFlags) error {
	registry := lint.DefaultRegistry

	if flags.analyzer != "" {
		if _, ok := registry.Get(flags.analyzer); !ok {
			return usageError("unknown analyzer %q; known analyzers: %s",
				flags.analyzer, strings.Join(registry.Names(), ", "))
		}
	}

	var rules []lint.RuleRef
	for _, ref := range registry.Rules() {
		if flags.analyzer == "" || ref.Analyzer == flags.analyzer {
			rules = append(rules, ref)
		}
	}

	out := cmd.OutOrStdout()
	switch flags.format {
	case formatJSON:
		return writeRulesJSON(out, rules)
	case formatText:
		styles := pretty.NewStyles(pretty.IsColorEnabled(global.color, out))
		_, err := io.WriteString(out, formatRulesText(styles, rules))
		return err
	default:
		return usageError("invalid --format %q: must be text or json", flags.format)
	}
}

// formatRulesText lists rules grouped under their analyzer, with aligned columns.
func formatRulesText(styles *pretty.Styles, rules []lint.RuleRef) string {
	if len(rules) == 0 {
		return "No rules registered.\n"
	}

	idWidth := 0
	for _, ref := range rules {
		idWidth = max(idWidth, len(ref.ID))
	}

	var b strings.Builder
	current := ""
	for _, ref := range rules {
		if ref.Analyzer != current {
			if current != "" {
				b.WriteString("\n")
			}
			current = ref.Analyzer
			b.WriteString(styles.SummaryTitle.Render(current))
			b.WriteString("\n")
		}

		id := styles.RuleID.Render(ref.ID)
		sev := styles.FormatSeverity(ref.Severity)
		fmt.Fprintf(&b, "  %s%s  %s%s  %s  %s\n",
			id, pad(id, idWidth),
			sev, pad(sev, len("suggestion")),
			styles.Category.Render(string(ref.Category)),
			ref.Description,
		)
	}
	return b.String()
}

// pad returns the spaces needed to bring a styled string to width cells.
func pad(styled string, width int) string {
	return strings.Repeat(" ", max(0, width-lipgloss.Width(styled)))
}

func writeRulesJSON(w io.Writer, rules []lint.RuleRef) error {
	out := make([]ruleJSON, 0, len(rules))
	for _, ref := range rules {
		out = append(out, ruleJSON{
			ID:          ref.ID,
			Analyzer:    ref.Analyzer,
			Category:    string(ref.Category),
			Severity:    string(ref.Severity),
			Description: ref.Description,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode rules: %w", err)
	}
	return nil
}
