package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/codelint/internal/configloader"
	"github.com/yaklabco/codelint/pkg/lint"
	"github.com/yaklabco/codelint/pkg/runner"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitSuccess},
		{name: "issues", err: ErrIssuesFound, want: ExitIssues},
		{name: "usage", err: usageError("bad flag %q", "--x"), want: ExitUsage},
		{name: "invalid config", err: fmt.Errorf("load: %w", configloader.ErrInvalidConfig), want: ExitUsage},
		{name: "config load", err: fmt.Errorf("%w: missing", ErrConfig), want: ExitUsage},
		{name: "explicit file", err: &lint.FileError{Path: "a.js", Err: lint.ErrIO}, want: ExitFatal},
		{name: "other", err: errors.New("boom"), want: ExitFatal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestExitCodeFromResult(t *testing.T) {
	withSummary := func(errs, total int) *runner.Result {
		result := &runner.Result{}
		result.Analysis.Summary = lint.SeveritySummary{Error: errs, Suggestion: total - errs, Total: total}
		return result
	}

	tests := []struct {
		name   string
		result *runner.Result
		strict bool
		want   int
	}{
		{name: "nil result", result: nil, want: ExitSuccess},
		{name: "clean", result: withSummary(0, 0), strict: true, want: ExitSuccess},
		{name: "suggestions", result: withSummary(0, 3), want: ExitSuccess},
		{name: "suggestions strict", result: withSummary(0, 3), strict: true, want: ExitIssues},
		{name: "errors", result: withSummary(1, 1), want: ExitIssues},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeFromResult(tt.result, tt.strict))
		})
	}
}

func TestUsageErrorWrapsSentinel(t *testing.T) {
	err := usageError("invalid --color %q", "pink")
	assert.ErrorIs(t, err, ErrUsage)
	assert.Equal(t, `invalid usage: invalid --color "pink"`, err.Error())
}
