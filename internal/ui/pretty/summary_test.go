package pretty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/codelint/internal/ui/pretty"
	"github.com/yaklabco/codelint/pkg/analysis"
)

func TestFormatSummaryOneLine(t *testing.T) {
	styles := pretty.NewStyles(false)

	tests := []struct {
		name   string
		totals analysis.Totals
		want   string
	}{
		{
			name:   "no issues",
			totals: analysis.Totals{Files: 4},
			want:   "No issues found (4 files checked)\n",
		},
		{
			name:   "single file",
			totals: analysis.Totals{Files: 1},
			want:   "No issues found (1 file checked)\n",
		},
		{
			name: "mixed severities",
			totals: analysis.Totals{
				Counts:          analysis.Counts{Issues: 12, Errors: 2, Warnings: 4, Suggestions: 6},
				Files:           5,
				FilesWithIssues: 3,
			},
			want: "12 issues (2 errors, 4 warnings, 6 suggestions) in 3 files\n",
		},
		{
			name: "single issue",
			totals: analysis.Totals{
				Counts:          analysis.Counts{Issues: 1, Warnings: 1},
				Files:           2,
				FilesWithIssues: 1,
			},
			want: "1 issue (1 warning) in 1 file\n",
		},
		{
			name: "failed files",
			totals: analysis.Totals{
				Files:       3,
				FilesFailed: 2,
			},
			want: "No issues found (3 files checked), 2 files could not be analyzed\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, styles.FormatSummaryOneLine(tt.totals))
		})
	}
}

func TestFormatSummary(t *testing.T) {
	styles := pretty.NewStyles(false)

	tests := []struct {
		name     string
		totals   analysis.Totals
		contains []string
		excludes []string
	}{
		{
			name:     "clean",
			totals:   analysis.Totals{Files: 5},
			contains: []string{"Summary", "Files checked:     5", "Total issues:      0", "Analysis passed"},
			excludes: []string{"Files with issues:", "Errors:", "Files failed:"},
		},
		{
			name: "errors",
			totals: analysis.Totals{
				Counts:          analysis.Counts{Issues: 5, Errors: 2, Warnings: 3},
				Files:           10,
				FilesWithIssues: 2,
			},
			contains: []string{"Files with issues: 2", "Errors:          2", "Warnings:        3", "Analysis found errors"},
			excludes: []string{"Suggestions:"},
		},
		{
			name: "warnings only",
			totals: analysis.Totals{
				Counts:          analysis.Counts{Issues: 1, Warnings: 1},
				Files:           1,
				FilesWithIssues: 1,
			},
			contains: []string{"Analysis completed with warnings"},
		},
		{
			name: "suggestions and failures",
			totals: analysis.Totals{
				Counts:          analysis.Counts{Issues: 1, Suggestions: 1},
				Files:           2,
				FilesWithIssues: 1,
				FilesFailed:     1,
			},
			contains: []string{"Suggestions:     1", "Files failed:      1", "Analysis completed with suggestions"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := styles.FormatSummary(tt.totals)
			for _, want := range tt.contains {
				assert.Contains(t, result, want)
			}
			for _, unwanted := range tt.excludes {
				assert.NotContains(t, result, unwanted)
			}
		})
	}
}
