package runner

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/yaklabco/codelint/pkg/langdetect"
)

// Target is one file selected for analysis.
type Target struct {
	// Path is the absolute file path.
	Path string

	// Display is the path reported on issues: relative to the working
	// directory when the file lies under it, absolute otherwise.
	Display string

	// Explicit is set when the user named the file directly rather than
	// through a directory. Failures of explicit files are fatal.
	Explicit bool
}

// Discover finds source files matching opts. Directories are walked for
// files with a known extension; explicitly named files are kept whatever
// their extension so unsupported inputs surface as errors.
// The result is sorted by path and free of duplicates.
func Discover(ctx context.Context, opts Options) ([]Target, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	exclude, err := NewMatcher(opts.ExcludeGlobs)
	if err != nil {
		return nil, err
	}

	d := &discoverer{
		opts:       opts,
		workDir:    workDir,
		extensions: opts.effectiveExtensions(),
		exclude:    exclude,
		seen:       make(map[string]int),
	}

	for _, inputPath := range opts.effectivePaths() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("discovery cancelled: %w", err)
		}

		absPath := inputPath
		if !filepath.IsAbs(inputPath) {
			absPath = filepath.Join(workDir, inputPath)
		}
		absPath = filepath.Clean(absPath)

		info, err := os.Stat(absPath)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				// Reported as an invalid input when the file is analyzed.
				d.add(absPath, true)
				continue
			}
			return nil, fmt.Errorf("stat %s: %w", inputPath, err)
		}

		if !info.IsDir() {
			if !d.excluded(d.rel(absPath)) {
				d.add(absPath, true)
			}
			continue
		}

		if err := d.walk(ctx, absPath); err != nil {
			return nil, err
		}
	}

	slices.SortFunc(d.targets, func(a, b Target) int {
		return strings.Compare(a.Path, b.Path)
	})
	return d.targets, nil
}

// discoverer accumulates targets for one Discover call.
type discoverer struct {
	opts       Options
	workDir    string
	extensions []string
	exclude    *Matcher
	targets    []Target
	seen       map[string]int
}

func (d *discoverer) add(path string, explicit bool) {
	if i, ok := d.seen[path]; ok {
		d.targets[i].Explicit = d.targets[i].Explicit || explicit
		return
	}
	d.seen[path] = len(d.targets)
	d.targets = append(d.targets, Target{Path: path, Display: d.display(path), Explicit: explicit})
}

func (d *discoverer) rel(path string) string {
	rel, err := filepath.Rel(d.workDir, path)
	if err != nil {
		return path
	}
	return rel
}

func (d *discoverer) display(path string) string {
	rel := d.rel(path)
	if filepath.IsAbs(rel) || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return rel
}

func (d *discoverer) excluded(rel string) bool {
	return d.exclude.Match(rel)
}

func (d *discoverer) vendored(rel string, dir bool) bool {
	if d.opts.IncludeVendored {
		return false
	}
	rel = filepath.ToSlash(rel)
	if dir {
		rel += "/"
	}
	return langdetect.IsVendored(rel)
}

// walk adds every matching file under root.
func (d *discoverer) walk(ctx context.Context, root string) error {
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		rel := d.rel(path)

		if entry.IsDir() {
			if path == root {
				return nil
			}
			name := entry.Name()
			if strings.HasPrefix(name, ".") || skippedDirs[name] ||
				d.excluded(rel) || d.vendored(rel, true) {
				return filepath.SkipDir
			}
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			realPath, err := filepath.EvalSymlinks(path)
			if err != nil {
				return nil //nolint:nilerr // Broken symlinks are skipped.
			}
			info, err := os.Stat(realPath)
			if err != nil {
				return nil //nolint:nilerr // Unreadable targets are skipped.
			}
			if info.IsDir() {
				if !d.opts.FollowSymlinks {
					return nil
				}
				// Walk the target; WalkDir does not follow the link itself.
				return d.walk(ctx, realPath)
			}
		}

		if strings.HasPrefix(entry.Name(), ".") {
			return nil
		}

		if hasExtension(path, d.extensions) && !d.excluded(rel) && !d.vendored(rel, false) {
			d.add(path, false)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walk directory %s: %w", root, err)
	}
	return nil
}

// resolveWorkDir resolves the working directory, defaulting to os.Getwd().
func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	absPath, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	return absPath, nil
}

func hasExtension(path string, extensions []string) bool {
	ext := filepath.Ext(path)
	for _, e := range extensions {
		if strings.EqualFold(e, ext) {
			return true
		}
	}
	return false
}
