package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/codelint/internal/ui/pretty"
	"github.com/yaklabco/codelint/pkg/analysis"
)

// TextRenderer formats reports as styled terminal output.
type TextRenderer struct {
	opts   Options
	styles *pretty.Styles
}

// NewTextRenderer creates a new text renderer.
func NewTextRenderer(opts Options) *TextRenderer {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextRenderer{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
	}
}

// Render implements Renderer.
func (r *TextRenderer) Render(_ context.Context, report *analysis.Report) (err error) {
	bw := bufio.NewWriterSize(r.opts.Writer, bufWriterSize)
	defer func() {
		if flushErr := bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if report.Totals.Files == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(bw, r.styles.Success.Render("No files to check."))
		}
		return nil
	}

	if r.opts.GroupByFile {
		r.renderGrouped(bw, report)
	} else {
		for _, issue := range report.Issues {
			fmt.Fprint(bw, r.styles.FormatIssue(issue, r.opts.ShowContext))
		}
	}

	for _, failure := range report.Failures {
		fmt.Fprintf(bw, "%s: %s\n",
			r.styles.FilePath.Render(failure.Path),
			r.styles.Error.Render("error: "+failure.Error),
		)
	}

	if r.opts.ShowSummary {
		if len(report.Failures) > 0 || (!r.opts.GroupByFile && len(report.Issues) > 0) {
			fmt.Fprintln(bw)
		}
		fmt.Fprint(bw, r.styles.FormatSummaryOneLine(report.Totals))
	}

	return nil
}

func (r *TextRenderer) renderGrouped(bw *bufio.Writer, report *analysis.Report) {
	for _, file := range report.Files {
		if !file.HasIssues() {
			continue
		}

		fmt.Fprintln(bw, r.styles.FormatFileHeader(file.Path, len(file.Issues)))
		for _, issue := range file.Issues {
			fmt.Fprint(bw, r.styles.FormatIssue(issue, r.opts.ShowContext))
		}
		fmt.Fprintln(bw)
	}
}
