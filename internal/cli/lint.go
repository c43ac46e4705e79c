package cli

import (
	"context"
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/codelint/internal/configloader"
	"github.com/yaklabco/codelint/internal/logging"
	"github.com/yaklabco/codelint/pkg/config"
	"github.com/yaklabco/codelint/pkg/lint"
	"github.com/yaklabco/codelint/pkg/lint/analyzers"
	"github.com/yaklabco/codelint/pkg/reporter"
	"github.com/yaklabco/codelint/pkg/runner"
)

type lintFlags struct {
	format       string
	severity     string
	strict       bool
	workers      int
	ignore       []string
	enable       []string
	disable      []string
	summaryOrder string
	noContext    bool
	compact      bool
}

func newLintCommand(global *globalFlags, info BuildInfo) *cobra.Command {
	flags := &lintFlags{}

	cmd := &cobra.Command{
		Use:   "lint [paths...]",
		Short: "Analyze source files",
		Long:  lintLongDescription + envHelp(),
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args, global, flags, info)
		},
	}

	addLintFlags(cmd, flags)

	return cmd
}

const lintLongDescription = `Analyze JavaScript, TypeScript and Python files.

By default, analyzes every supported file under the current directory.
Dependency and vendored directories such as node_modules are skipped.
Specify paths to analyze specific files or directories.

Examples:
  codelint lint                       # Analyze current directory
  codelint lint src/                  # Analyze src directory
  codelint lint app.ts                # Analyze a single file
  codelint lint --severity warning    # Hide suggestions
  codelint lint --format sarif        # SARIF output for code scanning
  codelint lint --disable naming      # Turn off an analyzer or a rule
  codelint lint --strict              # Fail on any remaining issue`

// envHelp lists the CODELINT_* variables in a stable order.
func envHelp() string {
	vars := configloader.ListEnvVars()
	names := slices.Sorted(maps.Keys(vars))

	var b strings.Builder
	b.WriteString("\n\nEnvironment:\n")
	for _, name := range names {
		fmt.Fprintf(&b, "  %-26s %s\n", name, vars[name])
	}
	return strings.TrimRight(b.String(), "\n")
}

func addLintFlags(cmd *cobra.Command, flags *lintFlags) {
	f := cmd.Flags()
	f.StringVar(&flags.format, "format", "text", "output format: text, table, json, sarif, summary")
	f.StringVar(&flags.severity, "severity", "suggestion", "minimum severity to report: error, warning, suggestion")
	f.BoolVar(&flags.strict, "strict", false, "exit non-zero when any issue remains")
	f.IntVarP(&flags.workers, "workers", "j", 0, "number of files analyzed in parallel (0 = number of CPUs)")
	f.StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns of files to skip")
	f.StringSliceVar(&flags.enable, "enable", nil, "analyzer names or rule IDs to enable")
	f.StringSliceVar(&flags.disable, "disable", nil, "analyzer names or rule IDs to disable")
	f.StringVar(&flags.summaryOrder, "summary-order", "rules", "order of tables in summary output: rules, files")
	f.BoolVar(&flags.noContext, "no-context", false, "hide source snippets in text output")
	f.BoolVar(&flags.compact, "compact", false, "use compact output where supported")
}

// cliConfig builds the configuration layer contributed by flags.
// Only flags the user set take part, so config files are not overridden
// by flag defaults.
func cliConfig(cmd *cobra.Command, flags *lintFlags) (*config.Config, error) {
	cfg := &config.Config{}
	set := cmd.Flags().Changed

	if set("format") {
		format, err := reporter.ParseFormat(flags.format)
		if err != nil {
			return nil, usageError("%v", err)
		}
		cfg.Format = config.OutputFormat(format)
	}
	if set("severity") {
		if _, err := config.ParseSeverity(flags.severity); err != nil {
			return nil, usageError("invalid --severity: %v", err)
		}
		cfg.MinSeverity = flags.severity
	}
	if set("workers") {
		if flags.workers < 0 {
			return nil, usageError("invalid --workers %d: must not be negative", flags.workers)
		}
		cfg.Jobs = flags.workers
	}
	if set("summary-order") && !config.SummaryOrder(flags.summaryOrder).IsValid() {
		return nil, usageError("invalid --summary-order %q: must be rules or files", flags.summaryOrder)
	}

	cfg.Strict = flags.strict
	cfg.Ignore = flags.ignore
	cfg.EnableRules = flags.enable
	cfg.DisableRules = flags.disable

	return cfg, nil
}

func runLint(cmd *cobra.Command, args []string, global *globalFlags, flags *lintFlags, info BuildInfo) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	logger := logging.NewWithWriter(cmd.ErrOrStderr(), logging.LevelFor(global.verbose, global.quiet))
	ctx = logging.WithLogger(ctx, logger)

	flagCfg, err := cliConfig(cmd, flags)
	if err != nil {
		return err
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loaded, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:          workDir,
		ExplicitPath:        global.configPath,
		IgnoreUserConfig:    global.noConfig,
		IgnoreProjectConfig: global.noConfig,
		CLIConfig:           flagCfg,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}
	for _, warning := range loaded.Warnings {
		logger.Warn(warning)
	}

	cfg := loaded.Config
	logger.Debug("configuration loaded",
		logging.FieldConfig, loaded.LoadedFrom,
		logging.FieldFormat, cfg.Format,
		logging.FieldJobs, cfg.Jobs,
		logging.FieldStrict, cfg.Strict,
	)

	format, err := reporter.ParseFormat(string(cfg.Format))
	if err != nil {
		return usageError("%v", err)
	}

	registry := analyzers.NewRegistry(cfg.EffectiveThresholds())
	lintRunner := runner.New(lint.NewPipeline(nil, registry, cfg))
	lintRunner.Logger = logger

	runOpts := runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		ExcludeGlobs: cfg.Ignore,
		Jobs:         cfg.Jobs,
	}

	logger.Debug("starting lint run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
	)

	result, err := lintRunner.Run(ctx, runOpts)
	if err != nil {
		return fmt.Errorf("lint run: %w", err)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:       cmd.OutOrStdout(),
		ErrorWriter:  cmd.ErrOrStderr(),
		Format:       format,
		Color:        global.color,
		ShowContext:  !flags.noContext,
		ShowSummary:  true,
		GroupByFile:  true,
		Compact:      flags.compact,
		SummaryOrder: config.SummaryOrder(flags.summaryOrder),
		ToolVersion:  info.Version,
		Rules:        registry.Rules(),
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	if fatal := result.Fatal(); fatal != nil {
		return fmt.Errorf("analysis failed: %w", fatal)
	}
	if ExitCodeFromResult(result, cfg.Strict) != ExitSuccess {
		return ErrIssuesFound
	}
	return nil
}
