package runner

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// ErrInvalidGlob is returned for exclusion patterns that do not compile.
var ErrInvalidGlob = errors.New("invalid glob pattern")

// Matcher tests slash-separated relative paths against exclusion globs.
//
// "*" stays within one path segment and "**" spans any number of segments,
// including none. A pattern without a slash also matches the last path
// segment, so "*.test.js" or "build" work at any depth.
type Matcher struct {
	patterns []compiledPattern
}

type compiledPattern struct {
	baseOnly bool
	variants []glob.Glob
}

// NewMatcher compiles patterns. Empty patterns are skipped.
func NewMatcher(patterns []string) (*Matcher, error) {
	m := &Matcher{}
	for _, pattern := range patterns {
		compiled, ok, err := compilePattern(pattern)
		if err != nil {
			return nil, err
		}
		if ok {
			m.patterns = append(m.patterns, compiled)
		}
	}
	return m, nil
}

// CompileGlob reports whether pattern is a valid exclusion glob.
func CompileGlob(pattern string) error {
	_, _, err := compilePattern(pattern)
	return err
}

// Match reports whether rel matches any pattern.
func (m *Matcher) Match(rel string) bool {
	if m == nil || len(m.patterns) == 0 {
		return false
	}
	rel = filepath.ToSlash(filepath.Clean(rel))
	base := rel[strings.LastIndex(rel, "/")+1:]

	for _, p := range m.patterns {
		subject := rel
		if p.baseOnly {
			subject = base
		}
		for _, g := range p.variants {
			if g.Match(subject) {
				return true
			}
		}
	}
	return false
}

func compilePattern(pattern string) (compiledPattern, bool, error) {
	pattern = strings.TrimSuffix(filepath.ToSlash(strings.TrimSpace(pattern)), "/")
	if pattern == "" {
		return compiledPattern{}, false, nil
	}

	compiled := compiledPattern{
		baseOnly: !strings.Contains(pattern, "/") && pattern != "**",
	}
	for _, variant := range doubleStarVariants(pattern) {
		g, err := glob.Compile(variant, '/')
		if err != nil {
			return compiledPattern{}, false, fmt.Errorf("%w %q: %w", ErrInvalidGlob, pattern, err)
		}
		compiled.variants = append(compiled.variants, g)
	}
	return compiled, true, nil
}

// doubleStarVariants spells out "**" segments matching zero segments, which
// gobwas/glob does not do on its own: "a/**/b" yields "a/**/b" and "a/b".
func doubleStarVariants(pattern string) []string {
	var expand func(segments []string) [][]string
	expand = func(segments []string) [][]string {
		if len(segments) == 0 {
			return [][]string{nil}
		}
		var out [][]string
		for _, rest := range expand(segments[1:]) {
			out = append(out, append([]string{segments[0]}, rest...))
			if segments[0] == "**" {
				out = append(out, rest)
			}
		}
		return out
	}

	seen := make(map[string]bool)
	var variants []string
	for _, segments := range expand(strings.Split(pattern, "/")) {
		variant := strings.Join(segments, "/")
		if variant == "" || seen[variant] {
			continue
		}
		seen[variant] = true
		variants = append(variants, variant)
	}
	return variants
}
