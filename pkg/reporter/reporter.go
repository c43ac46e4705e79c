// Package reporter renders lint results as text, tables, JSON, SARIF, or summaries.
package reporter

import (
	"context"
	"fmt"

	"github.com/yaklabco/codelint/pkg/analysis"
	"github.com/yaklabco/codelint/pkg/runner"
)

// Compile-time interface check for reporterFacade.
var _ Reporter = (*reporterFacade)(nil)

// Reporter formats and writes lint results.
type Reporter interface {
	// Report writes formatted output for the given result.
	// It returns the number of issues reported and any write errors.
	Report(ctx context.Context, result *runner.Result) (int, error)
}

// reporterFacade bridges the Reporter interface to Renderer implementations.
type reporterFacade struct {
	renderer     Renderer
	analysisOpts analysis.Options
}

// Report implements Reporter by analyzing the result and rendering it.
func (f *reporterFacade) Report(ctx context.Context, result *runner.Result) (int, error) {
	report := analysis.Analyze(result, f.analysisOpts)
	if err := f.renderer.Render(ctx, report); err != nil {
		return 0, fmt.Errorf("render: %w", err)
	}
	return report.Totals.Issues, nil
}

func newRendererFacade(renderer Renderer, analysisOpts analysis.Options) *reporterFacade {
	return &reporterFacade{
		renderer:     renderer,
		analysisOpts: analysisOpts,
	}
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}
	if opts.ErrorWriter == nil {
		opts.ErrorWriter = DefaultOptions().ErrorWriter
	}

	format := opts.Format
	if format == "" {
		format = FormatText
	}

	// Each format asks only for the views it renders.
	views := analysis.DefaultOptions()
	views.IncludeByFile = false
	views.IncludeByRule = false
	views.IncludeByCategory = false

	switch format {
	case FormatText:
		return newRendererFacade(NewTextRenderer(opts), views), nil
	case FormatTable:
		return newRendererFacade(NewTableRenderer(opts), views), nil
	case FormatJSON:
		views.IncludeIssues = false
		return newRendererFacade(NewJSONRenderer(opts), views), nil
	case FormatSARIF:
		return newRendererFacade(NewSARIFRenderer(opts), views), nil
	case FormatSummary:
		return newRendererFacade(NewSummaryRenderer(opts), analysis.DefaultOptions()), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
