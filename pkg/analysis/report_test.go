package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotals_Predicates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		totals     Totals
		wantIssues bool
		wantErrors bool
	}{
		{name: "empty", totals: Totals{}},
		{name: "suggestions only", totals: Totals{Counts: Counts{Issues: 2, Suggestions: 2}}, wantIssues: true},
		{name: "with errors", totals: Totals{Counts: Counts{Issues: 1, Errors: 1}}, wantIssues: true, wantErrors: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.wantIssues, tt.totals.HasIssues())
			assert.Equal(t, tt.wantErrors, tt.totals.HasErrors())
		})
	}
}

func TestSortField_IsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, SortByCount.IsValid())
	assert.True(t, SortByAlpha.IsValid())
	assert.True(t, SortBySeverity.IsValid())
	assert.False(t, SortField("random").IsValid())
}
