package lint

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/yaklabco/codelint/pkg/config"
	"github.com/yaklabco/codelint/pkg/fsutil"
)

// Pipeline runs the selected analyzers over parsed files.
// It holds no per-file state, so one Pipeline may analyze many files
// concurrently.
type Pipeline struct {
	// Parser produces syntax trees from source.
	Parser Parser

	// Selection is the resolved analyzer and rule configuration.
	Selection *Selection
}

// NewPipeline creates a pipeline over the registry's analyzers, resolved
// against cfg. A nil cfg runs every analyzer with default severities.
func NewPipeline(parser Parser, registry *Registry, cfg *config.Config) *Pipeline {
	if parser == nil {
		parser = NewTreeSitterParser()
	}
	return &Pipeline{
		Parser:    parser,
		Selection: Resolve(registry, cfg),
	}
}

// AnalyzeModule runs each selected analyzer that applies to the file's
// language, in registration order, and concatenates their issues.
// No configuration filtering is applied.
func (p *Pipeline) AnalyzeModule(file *File) []Issue {
	var issues []Issue
	for _, a := range p.Selection.Analyzers() {
		if !AppliesTo(a, file.Language) {
			continue
		}
		issues = append(issues, a.Analyze(file)...)
	}
	return issues
}

// AnalyzeSource parses content and analyzes it, applying rule toggles,
// severity overrides and the minimum severity filter.
func (p *Pipeline) AnalyzeSource(ctx context.Context, path string, content []byte) (FileAnalysis, error) {
	tree, err := p.Parser.Parse(ctx, path, content)
	if err != nil {
		return FileAnalysis{}, &FileError{Path: path, Err: err}
	}
	defer tree.Close()

	issues := p.AnalyzeModule(NewFile(path, tree))
	return NewFileAnalysis(path, p.Selection.Apply(issues)), nil
}

// AnalyzeFile reads path from disk and analyzes it.
// Failures are returned as *FileError wrapping ErrIO, ErrParse or ErrInvalidInput.
func (p *Pipeline) AnalyzeFile(ctx context.Context, path string) (FileAnalysis, error) {
	return p.AnalyzePath(ctx, path, path)
}

// AnalyzePath reads path from disk and reports its issues under display,
// typically a path relative to the working directory.
func (p *Pipeline) AnalyzePath(ctx context.Context, path, display string) (FileAnalysis, error) {
	if path == "" {
		return FileAnalysis{}, &FileError{Path: display, Err: fmt.Errorf("%w: empty path", ErrInvalidInput)}
	}

	content, _, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return FileAnalysis{}, &FileError{Path: display, Err: categorizeError(err)}
	}

	return p.AnalyzeSource(ctx, display, content)
}

// categorizeError wraps a read error with the matching pipeline category.
// It uses errors.Is for robust error detection rather than string matching.
func categorizeError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	if errors.Is(err, fsutil.ErrNotFound) || errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, fsutil.ErrIsDirectory) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return fmt.Errorf("%w: %w", ErrIO, err)
}
