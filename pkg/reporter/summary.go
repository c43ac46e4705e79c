package reporter

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/codelint/internal/ui/pretty"
	"github.com/yaklabco/codelint/pkg/analysis"
	"github.com/yaklabco/codelint/pkg/config"
)

// Table layout constants for summary output.
// All tables share one width so they line up.
const (
	tableWidth      = 90
	nameColWidth    = 50 // rule, file, or category column
	numColWidth     = 7
	warnColWidth    = 9
	suggestColWidth = 12
	maxNameLength   = 48
)

// padRight pads a string to the given display width.
// This must be called BEFORE applying ANSI styles.
func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// padLeft pads a string to the given display width on the left.
// This must be called BEFORE applying ANSI styles.
func padLeft(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return strings.Repeat(" ", width-w) + s
	}
	return s
}

// summaryRow is one line of a summary table.
type summaryRow struct {
	name   string
	counts analysis.Counts
}

// SummaryRenderer formats reports as aggregated summary tables.
type SummaryRenderer struct {
	opts   Options
	styles *pretty.Styles
}

// NewSummaryRenderer creates a new summary renderer.
func NewSummaryRenderer(opts Options) *SummaryRenderer {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &SummaryRenderer{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
	}
}

// Render implements Renderer.
func (r *SummaryRenderer) Render(_ context.Context, report *analysis.Report) (err error) {
	bw := bufio.NewWriterSize(r.opts.Writer, bufWriterSize)
	defer func() {
		if flushErr := bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if report.Totals.Issues == 0 {
		fmt.Fprint(bw, r.styles.FormatSummaryOneLine(report.Totals))
		return nil
	}

	ruleRows := make([]summaryRow, 0, len(report.ByRule))
	for _, rule := range report.ByRule {
		ruleRows = append(ruleRows, summaryRow{name: rule.Rule, counts: rule.Counts})
	}
	fileRows := make([]summaryRow, 0, len(report.ByFile))
	for _, file := range report.ByFile {
		fileRows = append(fileRows, summaryRow{name: file.Path, counts: file.Counts})
	}
	categoryRows := make([]summaryRow, 0, len(report.ByCategory))
	for _, category := range report.ByCategory {
		categoryRows = append(categoryRows, summaryRow{name: string(category.Category), counts: category.Counts})
	}

	if r.opts.SummaryOrder == config.SummaryOrderFiles {
		r.renderTable(bw, "Files Summary", "File", fileRows)
		r.renderTable(bw, "Rules Summary", "Rule", ruleRows)
	} else {
		r.renderTable(bw, "Rules Summary", "Rule", ruleRows)
		r.renderTable(bw, "Files Summary", "File", fileRows)
	}
	r.renderTable(bw, "Categories Summary", "Category", categoryRows)

	fmt.Fprint(bw, r.styles.Bold.Render("Total: ")+r.styles.FormatSummaryOneLine(report.Totals))

	return nil
}

func (r *SummaryRenderer) renderTable(bw *bufio.Writer, title, column string, rows []summaryRow) {
	if len(rows) == 0 {
		return
	}

	separator := r.styles.TableSeparator.Render(strings.Repeat("─", tableWidth))

	fmt.Fprintln(bw, r.styles.Bold.Render(title))
	fmt.Fprintln(bw, separator)
	fmt.Fprintf(bw, "%s %s %s %s %s\n",
		r.styles.TableHeader.Render(padRight(column, nameColWidth)),
		r.styles.TableHeader.Render(padLeft("Count", numColWidth)),
		r.styles.TableHeader.Render(padLeft("Errors", numColWidth)),
		r.styles.TableHeader.Render(padLeft("Warnings", warnColWidth)),
		r.styles.TableHeader.Render(padLeft("Suggestions", suggestColWidth)),
	)
	fmt.Fprintln(bw, separator)

	for _, row := range rows {
		name := row.name
		if runes := []rune(name); len(runes) > maxNameLength {
			name = "…" + string(runes[len(runes)-maxNameLength+1:])
		}

		padded := padRight(name, nameColWidth)
		switch {
		case row.counts.Errors > 0:
			padded = r.styles.TableErrorRow.Render(padded)
		case row.counts.Warnings > 0:
			padded = r.styles.TableWarnRow.Render(padded)
		}

		fmt.Fprintf(bw, "%s %s %s %s %s\n",
			padded,
			padLeft(strconv.Itoa(row.counts.Issues), numColWidth),
			padLeft(strconv.Itoa(row.counts.Errors), numColWidth),
			padLeft(strconv.Itoa(row.counts.Warnings), warnColWidth),
			padLeft(strconv.Itoa(row.counts.Suggestions), suggestColWidth),
		)
	}
	fmt.Fprintln(bw)
}
