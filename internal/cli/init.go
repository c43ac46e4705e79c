package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/codelint/internal/configloader"
	"github.com/yaklabco/codelint/internal/logging"
	"github.com/yaklabco/codelint/pkg/config"
	"github.com/yaklabco/codelint/pkg/fsutil"
)

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0o644

type initFlags struct {
	force  bool
	full   bool
	output string
}

func newInitCommand(global *globalFlags) *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a codelint configuration file",
		Long: `Create a .codelint.yml configuration file in the current directory with
the default settings. Edit it to tune thresholds, ignore files, or turn
analyzers and rules off.

Examples:
  codelint init                      Create a minimal .codelint.yml
  codelint init --full               List every rule with its default severity
  codelint init --output ci.yml      Write to a custom file path`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return runInit(ctx, cmd, global, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "overwrite an existing configuration file")
	cmd.Flags().BoolVar(&flags.full, "full", false, "list every rule with its description")
	cmd.Flags().StringVarP(&flags.output, "output", "o", configloader.ProjectConfigFiles[0], "output file path")

	return cmd
}

func runInit(ctx context.Context, cmd *cobra.Command, global *globalFlags, flags *initFlags) error {
	logger := commandLogger(cmd.ErrOrStderr(), global)

	absPath, err := filepath.Abs(flags.output)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if fsutil.Exists(absPath) {
		if !flags.force {
			return usageError("file %q already exists; use --force to overwrite", flags.output)
		}
		logger.Warn("overwriting existing file", logging.FieldPath, flags.output)
	}

	content, err := config.GenerateTemplate(config.TemplateOptions{Full: flags.full})
	if err != nil {
		return fmt.Errorf("generate template: %w", err)
	}

	if err := fsutil.WriteAtomic(ctx, absPath, content, configFilePermissions); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	logger.Info("created configuration file", logging.FieldPath, flags.output)
	logger.Info("run 'codelint rules' to see all available rules")

	return nil
}
