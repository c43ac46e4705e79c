package runner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatcher(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path    string
		pattern string
		want    bool
	}{
		{"src/app.test.js", "*.test.js", true},
		{"src/app.js", "*.test.js", false},
		{"build", "build", true},
		{"src/build", "build", true},
		{"vendor/a/b.js", "vendor/**", true},
		{"vendor", "vendor/**", true},
		{"src/vendor/b.js", "vendor/**", false},
		{"src/vendor/b.js", "**/vendor/**", true},
		{"vendor/b.js", "**/vendor/**", true},
		{"a/b/c/d.py", "a/**/d.py", true},
		{"a/d.py", "a/**/d.py", true},
		{"a/b/c/d.py", "a/*/d.py", false},
		{"a/b/d.py", "a/*/d.py", true},
		{"anything/at/all", "**", true},
		{"dist/app.min.js", "**/*.min.js", true},
		{"app.min.js", "**/*.min.js", true},
		{"src/app.ts", "src/*.{ts,tsx}", true},
		{"x.js", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.path+"|"+tt.pattern, func(t *testing.T) {
			t.Parallel()

			m, err := NewMatcher([]string{tt.pattern})
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.Match(tt.path))
		})
	}
}

func TestMatcher_AnyPattern(t *testing.T) {
	t.Parallel()

	m, err := NewMatcher([]string{"*.py", "gen/**"})
	require.NoError(t, err)

	assert.True(t, m.Match("tools/run.py"))
	assert.True(t, m.Match("gen/api/client.ts"))
	assert.False(t, m.Match("src/app.ts"))

	var empty *Matcher
	assert.False(t, empty.Match("src/app.ts"))
}

func TestCompileGlob(t *testing.T) {
	t.Parallel()

	require.NoError(t, CompileGlob("src/**/*.js"))
	require.NoError(t, CompileGlob(""))

	err := CompileGlob("src/[a")
	require.ErrorIs(t, err, ErrInvalidGlob)

	_, err = NewMatcher([]string{"ok/**", "src/[a"})
	require.ErrorIs(t, err, ErrInvalidGlob)
}

func TestDoubleStarVariants(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"a/**/b", "a/b"}, doubleStarVariants("a/**/b"))
	assert.Equal(t, []string{"**/x/**", "x/**", "**/x", "x"}, doubleStarVariants("**/x/**"))
	assert.Equal(t, []string{"**"}, doubleStarVariants("**"))
}
