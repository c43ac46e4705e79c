// Package syntax wraps tree-sitter parsing for the supported languages.
// It owns grammar selection, parser lifetime and the traversal helpers the
// analyzers share.
package syntax

import (
	"context"
	"errors"
	"fmt"
	"sync"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_python "github.com/tree-sitter/tree-sitter-python/bindings/go"
	tree_sitter_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"

	"github.com/yaklabco/codelint/pkg/langdetect"
)

// Node is a tree-sitter syntax node.
type Node = sitter.Node

// ErrUnsupportedLanguage is returned when no grammar exists for a language.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// ErrCanceled is returned when parsing stops because the context ended.
var ErrCanceled = errors.New("parse canceled")

//nolint:gochecknoglobals // Grammars are immutable and shared by all parsers.
var (
	typescriptGrammar = sync.OnceValue(func() *sitter.Language {
		return sitter.NewLanguage(tree_sitter_typescript.LanguageTypescript())
	})
	tsxGrammar = sync.OnceValue(func() *sitter.Language {
		return sitter.NewLanguage(tree_sitter_typescript.LanguageTSX())
	})
	pythonGrammar = sync.OnceValue(func() *sitter.Language {
		return sitter.NewLanguage(tree_sitter_python.Language())
	})
)

// Grammar returns the tree-sitter grammar used for lang.
// Plain JavaScript is parsed with the TSX grammar, which accepts JSX and is a
// superset of the JavaScript syntax.
func Grammar(lang langdetect.Language) (*sitter.Language, error) {
	switch lang {
	case langdetect.TypeScript:
		return typescriptGrammar(), nil
	case langdetect.TSX, langdetect.JavaScript:
		return tsxGrammar(), nil
	case langdetect.Python:
		return pythonGrammar(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedLanguage, lang)
	}
}

// Tree is a parsed source file. Call Close when done with it.
type Tree struct {
	tree     *sitter.Tree
	Source   []byte
	Language langdetect.Language
}

// Parse parses source as lang. Syntax errors do not fail the parse; they
// show up as ERROR or MISSING nodes and are reported by HasError.
func Parse(ctx context.Context, lang langdetect.Language, source []byte) (*Tree, error) {
	grammar, err := Grammar(lang)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCanceled, err)
	}

	// Parsers are not safe for concurrent use; one per parse keeps workers independent.
	parser := sitter.NewParser()
	defer parser.Close()

	if err := parser.SetLanguage(grammar); err != nil {
		return nil, fmt.Errorf("set language %s: %w", lang, err)
	}

	length := len(source)
	tree := parser.ParseWithOptions(func(offset int, _ sitter.Point) []byte {
		if offset < length {
			return source[offset:]
		}
		return []byte{}
	}, nil, &sitter.ParseOptions{
		ProgressCallback: func(sitter.ParseState) bool {
			return ctx.Err() != nil
		},
	})

	if tree == nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrCanceled, ctxErr)
		}
		return nil, fmt.Errorf("parse %s: parser returned no tree", lang)
	}

	return &Tree{tree: tree, Source: source, Language: lang}, nil
}

// Root returns the root node of the tree.
func (t *Tree) Root() *Node {
	if t == nil || t.tree == nil {
		return nil
	}
	return t.tree.RootNode()
}

// HasError reports whether the tree contains syntax errors.
func (t *Tree) HasError() bool {
	root := t.Root()
	return root != nil && root.HasError()
}

// FirstError returns the first ERROR or MISSING node in document order,
// or nil when the tree is clean.
func (t *Tree) FirstError() *Node {
	root := t.Root()
	if root == nil || !root.HasError() {
		return nil
	}
	return FindFirst(root, func(n *Node) bool {
		return n.IsError() || n.IsMissing()
	})
}

// Close releases the native tree.
func (t *Tree) Close() {
	if t == nil || t.tree == nil {
		return
	}
	t.tree.Close()
	t.tree = nil
}

// Text returns the source text covered by n.
func Text(n *Node, source []byte) string {
	if n == nil {
		return ""
	}
	return n.Utf8Text(source)
}

// Line returns the 1-based line on which n starts.
func Line(n *Node) int {
	return int(n.StartPosition().Row) + 1
}
