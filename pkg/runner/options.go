// Package runner discovers source files and analyzes them concurrently.
package runner

import (
	"slices"

	"github.com/yaklabco/codelint/pkg/langdetect"
)

// Options controls multi-file analysis.
type Options struct {
	// Paths are the user-specified files or directories to process.
	// If empty, defaults to the working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths and
	// to shorten reported paths. If empty, the process working directory is used.
	WorkingDir string

	// Extensions is the set of file extensions (lowercase, with leading dot)
	// picked up while walking directories. Defaults to DefaultExtensions().
	Extensions []string

	// ExcludeGlobs are glob patterns used to skip files or directories,
	// relative to WorkingDir. See Matcher for the syntax.
	ExcludeGlobs []string

	// IncludeVendored disables the go-enry vendored-path filter.
	IncludeVendored bool

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Jobs is the maximum number of files analyzed at once.
	// 0 or negative means runtime.NumCPU().
	Jobs int
}

// skippedDirs are never descended into, whatever the globs say.
//
//nolint:gochecknoglobals // Static lookup table.
var skippedDirs = map[string]bool{
	"node_modules": true,
	"__pycache__":  true,
}

// DefaultExtensions returns every extension with a supported language, sorted.
func DefaultExtensions() []string {
	exts := langdetect.Extensions()
	slices.Sort(exts)
	return exts
}

func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
