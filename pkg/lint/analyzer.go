package lint

import (
	"slices"

	"github.com/yaklabco/codelint/pkg/config"
	"github.com/yaklabco/codelint/pkg/langdetect"
	"github.com/yaklabco/codelint/pkg/syntax"
)

// RuleInfo describes one rule an analyzer can emit.
type RuleInfo struct {
	// ID is the rule identifier carried by issues (e.g., "no-var").
	ID string

	// Category is the concern area of the rule.
	Category Category

	// Severity is the default severity of issues from this rule.
	Severity config.Severity

	// Description is a one-line summary for listings and SARIF metadata.
	Description string
}

// File is the input to an analyzer: one parsed source file.
type File struct {
	// Path is the logical file path reported on issues.
	Path string

	// Source is the raw file content. Analyzers must not modify it.
	Source []byte

	// Language is the detected language of the file.
	Language langdetect.Language

	// Tree is the parsed syntax tree.
	Tree *syntax.Tree

	// Lines resolves byte offsets to lines and columns.
	Lines *LineIndex
}

// NewFile wraps a parsed tree for analysis.
func NewFile(path string, tree *syntax.Tree) *File {
	return &File{
		Path:     path,
		Source:   tree.Source,
		Language: tree.Language,
		Tree:     tree,
		Lines:    NewLineIndex(tree.Source),
	}
}

// Root returns the root node of the file's tree.
func (f *File) Root() *syntax.Node {
	return f.Tree.Root()
}

// Text returns the source text of n.
func (f *File) Text(n *syntax.Node) string {
	return syntax.Text(n, f.Source)
}

// Analyzer is a stateless rule analyzer.
//
// Analyze must:
//   - return issues in traversal order; co-firing rules all emit.
//   - keep any working state local to the call.
//   - never fail: shapes it does not recognize are simply not reported.
type Analyzer interface {
	// Name returns the analyzer name used for selection (e.g., "complexity").
	Name() string

	// Rules returns metadata for every rule the analyzer can emit.
	Rules() []RuleInfo

	// Analyze inspects one file and returns its issues.
	Analyze(file *File) []Issue
}

// LanguageFilter is implemented by analyzers that only apply to some languages.
type LanguageFilter interface {
	Languages() []langdetect.Language
}

// AppliesTo reports whether analyzer a should run on files of lang.
// Analyzers without a LanguageFilter run on the JavaScript family only.
func AppliesTo(a Analyzer, lang langdetect.Language) bool {
	if f, ok := a.(LanguageFilter); ok {
		return slices.Contains(f.Languages(), lang)
	}
	return lang.IsECMAScript()
}
