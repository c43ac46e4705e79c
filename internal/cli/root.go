// Package cli provides the Cobra command structure for codelint.
package cli

import (
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yaklabco/codelint/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	noConfig   bool
	color      string
	verbose    bool
	quiet      bool
}

//nolint:gochecknoglobals // Static lookup table.
var colorModes = []string{"auto", "always", "never"}

// NewRootCommand creates the root codelint command with all subcommands.
// Run without a subcommand it behaves like "codelint lint".
func NewRootCommand(info BuildInfo) *cobra.Command {
	global := &globalFlags{}
	rootLint := &lintFlags{}

	rootCmd := &cobra.Command{
		Use:   "codelint [paths...]",
		Short: "Static analysis for JavaScript, TypeScript and Python",
		Long: `codelint analyzes JavaScript, TypeScript and Python sources for security
problems, risky patterns, naming, complexity and other code quality issues.

Files are parsed with tree-sitter and checked by a set of analyzers whose
rules can be tuned or disabled per project in .codelint.yml. Running codelint
without a subcommand is the same as running "codelint lint".`,
		Args: cobra.ArbitraryArgs,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if !slices.Contains(colorModes, global.color) {
				return usageError("invalid --color %q: must be one of auto, always, never", global.color)
			}
			logging.SetLevel(logging.LevelFor(global.verbose, global.quiet))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args, global, rootLint, info)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	})

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&global.configPath, "config", "", "path to config file")
	flags.BoolVar(&global.noConfig, "no-config", false, "skip user and project config discovery")
	flags.StringVar(&global.color, "color", "auto", "colorize output: auto, always, never")
	flags.BoolVarP(&global.verbose, "verbose", "v", false, "enable debug logging")
	flags.BoolVarP(&global.quiet, "quiet", "q", false, "only log errors")

	addLintFlags(rootCmd, rootLint)

	rootCmd.AddCommand(newLintCommand(global, info))
	rootCmd.AddCommand(newRulesCommand(global))
	rootCmd.AddCommand(newInitCommand(global))
	rootCmd.AddCommand(newVersionCommand(info))

	NewHelpFormatter(global).ApplyToCommand(rootCmd)

	return rootCmd
}

// commandLogger returns a logger for user-facing command messages.
// Unlike the lint logger it reports at info level by default.
func commandLogger(w io.Writer, global *globalFlags) *log.Logger {
	level := "info"
	switch {
	case global.quiet:
		level = "error"
	case global.verbose:
		level = "debug"
	}
	return logging.NewWithWriter(w, level)
}

// noArgs rejects positional arguments with a usage error.
func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return usageError("%s takes no arguments, got %q", cmd.CommandPath(), args[0])
	}
	return nil
}
