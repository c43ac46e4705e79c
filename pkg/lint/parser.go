package lint

import (
	"context"
	"errors"
	"fmt"

	"github.com/yaklabco/codelint/internal/logging"
	"github.com/yaklabco/codelint/pkg/langdetect"
	"github.com/yaklabco/codelint/pkg/syntax"
)

// Parser produces a syntax tree for a source file.
//
// The lint package defines this interface in the consumer package; the
// tree-sitter implementation below is the default.
//
// Implementations must be:
//   - deterministic for a given (path, content) pair,
//   - safe for concurrent use by multiple goroutines,
//   - side-effect free (no I/O).
type Parser interface {
	// Parse converts raw source bytes into a syntax tree. The caller closes the tree.
	//
	// Errors wrap ErrInvalidInput for unsupported files and ErrParse (usually
	// as *ParseError) when no usable tree can be built.
	Parse(ctx context.Context, path string, content []byte) (*syntax.Tree, error)
}

// TreeSitterParser parses files with tree-sitter, choosing the grammar from
// the detected language.
type TreeSitterParser struct{}

// NewTreeSitterParser returns the default parser.
func NewTreeSitterParser() *TreeSitterParser {
	return &TreeSitterParser{}
}

// Parse implements Parser.
//
// A JavaScript-family file with syntax errors is rejected with a *ParseError
// located at the first ERROR or MISSING node. Python trees are returned even
// when they contain errors; the Python analyzer reports those itself.
func (p *TreeSitterParser) Parse(ctx context.Context, path string, content []byte) (*syntax.Tree, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidInput)
	}

	lang := langdetect.Detect(path, content)
	if !lang.IsSupported() {
		return nil, fmt.Errorf("%w: unsupported file type: %s", ErrInvalidInput, path)
	}
	logging.FromContext(ctx).Debug("parsing file", logging.FieldLanguage, lang)

	tree, err := syntax.Parse(ctx, lang, content)
	if err != nil {
		if errors.Is(err, syntax.ErrUnsupportedLanguage) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrParse, path, err)
	}

	if lang.IsECMAScript() && tree.HasError() {
		perr := &ParseError{Path: path, Message: "syntax error"}
		if bad := tree.FirstError(); bad != nil {
			li := NewLineIndex(content)
			perr.Line, perr.Column = li.Resolve(int(bad.StartByte()))
			if bad.IsMissing() {
				perr.Message = "missing " + bad.Kind()
			} else {
				perr.Message = "unexpected " + firstLine(syntax.Text(bad, content))
			}
		}
		tree.Close()
		return nil, perr
	}

	return tree, nil
}

// firstLine trims text to its first line and a readable length.
func firstLine(text string) string {
	const maxLen = 40
	for i, r := range text {
		if r == '\n' || r == '\r' {
			text = text[:i]
			break
		}
	}
	if len(text) > maxLen {
		text = text[:maxLen] + "..."
	}
	if text == "" {
		return "token"
	}
	return fmt.Sprintf("%q", text)
}
