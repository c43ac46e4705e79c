package reporter

import (
	"io"
	"os"

	"github.com/yaklabco/codelint/pkg/config"
	"github.com/yaklabco/codelint/pkg/lint"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	// ErrorWriter is the destination for errors (typically os.Stderr).
	ErrorWriter io.Writer

	// Format specifies the output format.
	Format Format

	// Color controls colorized output.
	// Values: "auto" (default), "always", "never"
	Color string

	// ShowContext prints the code snippet under each issue.
	ShowContext bool

	// ShowSummary displays aggregate statistics after results.
	ShowSummary bool

	// GroupByFile groups issues under a file header (text format).
	GroupByFile bool

	// Compact uses minified output where applicable.
	Compact bool

	// SummaryOrder controls the order of tables in summary output.
	SummaryOrder config.SummaryOrder

	// ToolVersion is reported in SARIF driver metadata.
	ToolVersion string

	// Rules is the catalogue of known rules, used for SARIF rule metadata.
	Rules []lint.RuleRef
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:       os.Stdout,
		ErrorWriter:  os.Stderr,
		Format:       FormatText,
		Color:        "auto",
		ShowContext:  true,
		ShowSummary:  true,
		GroupByFile:  true,
		SummaryOrder: config.SummaryOrderRules,
	}
}
