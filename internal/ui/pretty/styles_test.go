package pretty_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/codelint/internal/ui/pretty"
)

func TestNewStyles_ColorDisabled(t *testing.T) {
	styles := pretty.NewStyles(false)
	require.NotNil(t, styles)

	text := "test"
	assert.Equal(t, text, styles.Bold.Render(text))
	assert.Equal(t, text, styles.Error.Render(text))
	assert.Equal(t, text, styles.TableSuggestRow.Render(text))
}

func TestStyles_AllFieldsRender(t *testing.T) {
	styles := pretty.NewStyles(true)

	for _, rendered := range []string{
		styles.Error.Render("x"),
		styles.Warning.Render("x"),
		styles.Suggestion.Render("x"),
		styles.FilePath.Render("x"),
		styles.Location.Render("x"),
		styles.RuleID.Render("x"),
		styles.Category.Render("x"),
		styles.Message.Render("x"),
		styles.SourceLine.Render("x"),
		styles.Caret.Render("x"),
		styles.SummaryTitle.Render("x"),
		styles.SummaryValue.Render("x"),
		styles.Success.Render("x"),
		styles.Failure.Render("x"),
		styles.TableHeader.Render("x"),
		styles.TableLegend.Render("x"),
		styles.Dim.Render("x"),
		styles.Bold.Render("x"),
	} {
		assert.Contains(t, rendered, "x")
	}
}

func TestIsColorEnabled(t *testing.T) {
	t.Setenv("NO_COLOR", "")

	var buf bytes.Buffer
	tests := []struct {
		name string
		mode string
		want bool
	}{
		{name: "always", mode: "always", want: true},
		{name: "never", mode: "never", want: false},
		{name: "auto with non-TTY", mode: "auto", want: false},
		{name: "empty defaults to auto", mode: "", want: false},
		{name: "unknown defaults to auto", mode: "sometimes", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pretty.IsColorEnabled(tt.mode, &buf))
		})
	}
}

func TestIsColorEnabled_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	assert.False(t, pretty.IsColorEnabled("auto", os.Stdout))
	assert.True(t, pretty.IsColorEnabled("always", os.Stdout))
}
