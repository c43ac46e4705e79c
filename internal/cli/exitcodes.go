package cli

import (
	"errors"
	"fmt"

	"github.com/yaklabco/codelint/internal/configloader"
	"github.com/yaklabco/codelint/pkg/runner"
)

// Exit codes for codelint.
const (
	// ExitSuccess indicates a clean run.
	ExitSuccess = 0

	// ExitIssues indicates error-severity issues, or any issue in strict mode.
	ExitIssues = 1

	// ExitUsage indicates invalid flags or configuration.
	ExitUsage = 2

	// ExitFatal indicates an explicitly named file could not be analyzed,
	// or the run itself failed.
	ExitFatal = 3
)

var (
	// ErrIssuesFound signals that the run should exit with ExitIssues.
	ErrIssuesFound = errors.New("issues found")

	// ErrUsage marks command-line usage errors.
	ErrUsage = errors.New("invalid usage")

	// ErrConfig marks configuration that could not be loaded.
	ErrConfig = errors.New("configuration error")
)

// ExitCodeFromResult determines the exit code for a finished run.
// In strict mode any remaining issue fails the run.
func ExitCodeFromResult(result *runner.Result, strict bool) int {
	if result == nil {
		return ExitSuccess
	}
	if result.HasErrors() || (strict && result.HasIssues()) {
		return ExitIssues
	}
	return ExitSuccess
}

// ExitCode maps an error returned by a command onto a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrIssuesFound):
		return ExitIssues
	case errors.Is(err, ErrUsage), errors.Is(err, ErrConfig), errors.Is(err, configloader.ErrInvalidConfig):
		return ExitUsage
	default:
		return ExitFatal
	}
}

func usageError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUsage, fmt.Sprintf(format, args...))
}
