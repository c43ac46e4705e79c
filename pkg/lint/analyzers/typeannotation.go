package analyzers

import (
	"github.com/yaklabco/codelint/pkg/config"
	"github.com/yaklabco/codelint/pkg/langdetect"
	"github.com/yaklabco/codelint/pkg/lint"
	"github.com/yaklabco/codelint/pkg/syntax"
)

// TypeAnnotationAnalyzer reports weak type annotations in TypeScript:
// functions without a declared return type and uses of `any`.
type TypeAnnotationAnalyzer struct {
	lint.BaseAnalyzer
}

// NewTypeAnnotationAnalyzer creates the type-annotation analyzer.
func NewTypeAnnotationAnalyzer() *TypeAnnotationAnalyzer {
	return &TypeAnnotationAnalyzer{
		BaseAnalyzer: lint.NewBaseAnalyzer("type-annotation",
			lint.RuleInfo{
				ID:          "explicit-function-return-type",
				Category:    lint.CategoryTypeAnnotation,
				Severity:    config.SeveritySuggestion,
				Description: "Function declaration has no explicit return type",
			},
			lint.RuleInfo{
				ID:          "no-any-type",
				Category:    lint.CategoryTypeAnnotation,
				Severity:    config.SeveritySuggestion,
				Description: "Annotation uses the any type",
			},
		),
	}
}

// Languages implements lint.LanguageFilter.
func (a *TypeAnnotationAnalyzer) Languages() []langdetect.Language {
	return []langdetect.Language{langdetect.TypeScript, langdetect.TSX}
}

// Analyze implements lint.Analyzer.
func (a *TypeAnnotationAnalyzer) Analyze(file *lint.File) []lint.Issue {
	var issues []lint.Issue

	checkAnnotation := func(annotation *syntax.Node) {
		if annotation == nil {
			return
		}
		for _, anyNode := range anyTypes(file, firstNamed(annotation)) {
			issues = append(issues, lint.NewIssue(file, anyNode, a.Rule("no-any-type"),
				"Avoid the 'any' type; it removes the benefits of TypeScript").Build())
		}
	}

	_ = syntax.Walk(file.Root(), func(n *syntax.Node) error {
		switch {
		case n.Kind() == kindDeclarator:
			checkAnnotation(syntax.Field(n, "type"))

		case isFunction(n):
			for _, p := range parameters(n) {
				checkAnnotation(syntax.Field(p, "type"))
			}
			returnType := syntax.Field(n, "return_type")
			if returnType == nil && syntax.IsKind(n, kindFunctionDecl, kindGeneratorDecl) {
				issues = append(issues, lint.NewIssue(file, n, a.Rule("explicit-function-return-type"),
					"Missing return type on function. Add an explicit return type for better type safety").Build())
			}
			checkAnnotation(returnType)
		}
		return nil
	})

	return issues
}

// anyTypes returns the `any` keywords in a type, looking through array,
// union and parenthesized types.
func anyTypes(file *lint.File, typ *syntax.Node) []*syntax.Node {
	if typ == nil {
		return nil
	}
	switch typ.Kind() {
	case "predefined_type":
		if file.Text(typ) == "any" {
			return []*syntax.Node{typ}
		}
	case "array_type", "union_type", "parenthesized_type":
		var out []*syntax.Node
		for _, child := range statements(typ) {
			out = append(out, anyTypes(file, child)...)
		}
		return out
	}
	return nil
}
