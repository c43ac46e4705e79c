package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/codelint/pkg/analysis"
	"github.com/yaklabco/codelint/pkg/lint"
)

// JSONOutput is the top-level JSON document.
// Files and their issues use the lint package wire shape.
type JSONOutput struct {
	Version string               `json:"version"`
	Files   []lint.FileAnalysis  `json:"files"`
	Summary lint.SeveritySummary `json:"summary"`
	Errors  []analysis.Failure   `json:"errors,omitempty"`
}

// JSONRenderer formats reports as JSON.
type JSONRenderer struct {
	opts Options
}

// NewJSONRenderer creates a new JSON renderer.
func NewJSONRenderer(opts Options) *JSONRenderer {
	return &JSONRenderer{opts: opts}
}

// Render implements Renderer.
func (r *JSONRenderer) Render(_ context.Context, report *analysis.Report) (err error) {
	bw := bufio.NewWriterSize(r.opts.Writer, bufWriterSize)
	defer func() {
		if flushErr := bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := JSONOutput{
		Version: report.Version,
		Files:   report.Files,
		Summary: report.Summary,
		Errors:  report.Failures,
	}
	if output.Files == nil {
		output.Files = []lint.FileAnalysis{}
	}

	encoder := json.NewEncoder(bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}

	return nil
}
