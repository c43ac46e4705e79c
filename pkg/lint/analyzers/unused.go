package analyzers

import (
	"fmt"
	"strings"

	"github.com/yaklabco/codelint/pkg/config"
	"github.com/yaklabco/codelint/pkg/lint"
	"github.com/yaklabco/codelint/pkg/syntax"
)

// UnusedAnalyzer reports top-level bindings whose name never appears again
// in the file.
//
// Only declarations at program level are collected; declarations inside
// blocks and function bodies are not. Any identifier in reference position
// with the same spelling counts as a use, so shadowing is not modeled and a
// reference to a block-local variable can keep a top-level one alive.
type UnusedAnalyzer struct {
	lint.BaseAnalyzer
}

// NewUnusedAnalyzer creates the unused-binding analyzer.
func NewUnusedAnalyzer() *UnusedAnalyzer {
	return &UnusedAnalyzer{
		BaseAnalyzer: lint.NewBaseAnalyzer("unused",
			lint.RuleInfo{
				ID:          "no-unused-vars",
				Category:    lint.CategoryCodeQuality,
				Severity:    config.SeveritySuggestion,
				Description: "Top-level variable or function is declared but never used",
			},
		),
	}
}

// declaration is a declared name and the node of its latest declaration.
type declaration struct {
	name string
	node *syntax.Node
}

// declarations keeps first-declaration order while later declarations of
// the same name replace the reported node.
type declarations struct {
	order []string
	byKey map[string]*syntax.Node
	nodes map[uintptr]bool
}

func (d *declarations) add(file *lint.File, node *syntax.Node) {
	name := file.Text(node)
	if _, seen := d.byKey[name]; !seen {
		d.order = append(d.order, name)
	}
	d.byKey[name] = node
	d.nodes[node.Id()] = true
}

func (d *declarations) list() []declaration {
	out := make([]declaration, 0, len(d.order))
	for _, name := range d.order {
		out = append(out, declaration{name: name, node: d.byKey[name]})
	}
	return out
}

// Analyze implements lint.Analyzer.
func (a *UnusedAnalyzer) Analyze(file *lint.File) []lint.Issue {
	decls := &declarations{
		byKey: make(map[string]*syntax.Node),
		nodes: make(map[uintptr]bool),
	}
	for _, stmt := range statements(file.Root()) {
		collectDeclarations(file, stmt, decls)
	}
	if len(decls.order) == 0 {
		return nil
	}

	used := collectUses(file, decls)

	var issues []lint.Issue
	for _, d := range decls.list() {
		if used[d.name] || strings.HasPrefix(d.name, "_") {
			continue
		}
		issues = append(issues, lint.NewIssue(file, d.node, a.Rule("no-unused-vars"),
			fmt.Sprintf("Variable '%s' is declared but never used", d.name)).Build())
	}
	return issues
}

// collectDeclarations records the names a statement declares. It descends
// into if branches that are not blocks and into for initializers, never
// into block bodies.
func collectDeclarations(file *lint.File, stmt *syntax.Node, decls *declarations) {
	switch stmt.Kind() {
	case kindLexicalDecl, kindVariableDecl:
		for _, d := range statements(stmt) {
			if d.Kind() != kindDeclarator {
				continue
			}
			if name := syntax.Field(d, "name"); syntax.IsKind(name, kindIdentifier) {
				decls.add(file, name)
			}
		}
	case kindFunctionDecl, kindGeneratorDecl:
		if name := syntax.Field(stmt, "name"); name != nil {
			decls.add(file, name)
		}
	case kindIf:
		for _, branch := range []*syntax.Node{
			syntax.Field(stmt, "consequence"),
			unwrapElse(syntax.Field(stmt, "alternative")),
		} {
			if branch != nil && branch.Kind() != kindStatementBlock {
				collectDeclarations(file, branch, decls)
			}
		}
	case kindFor:
		if init := syntax.Field(stmt, "initializer"); init != nil {
			collectDeclarations(file, init, decls)
		}
	}
}

// collectUses returns the identifier spellings that appear in reference
// position. Names introduced by nested declarations, parameters and catch
// clauses are bindings, not uses.
func collectUses(file *lint.File, decls *declarations) map[string]bool {
	used := make(map[string]bool)
	_ = syntax.Walk(file.Root(), func(n *syntax.Node) error {
		switch n.Kind() {
		case kindIdentifier, "shorthand_property_identifier", "type_identifier":
			if !decls.nodes[n.Id()] && !isBinding(n) {
				used[file.Text(n)] = true
			}
		}
		return nil
	})
	return used
}

// isBinding reports whether identifier n is the name a declaration,
// function, parameter or catch clause introduces.
func isBinding(n *syntax.Node) bool {
	parent := n.Parent()
	if parent == nil {
		return false
	}
	switch parent.Kind() {
	case kindDeclarator, kindFunctionDecl, kindGeneratorDecl, "function_expression", "class_declaration":
		return sameNode(syntax.Field(parent, "name"), n)
	case "formal_parameters":
		return true
	case "required_parameter", "optional_parameter":
		return sameNode(parameterName(parent), n)
	case "assignment_pattern":
		grand := parent.Parent()
		return grand != nil && grand.Kind() == "formal_parameters" && sameNode(parameterName(parent), n)
	case kindArrow:
		return sameNode(syntax.Field(parent, "parameter"), n)
	case "catch_clause":
		return sameNode(syntax.Field(parent, "parameter"), n)
	}
	return false
}

func sameNode(a, b *syntax.Node) bool {
	return a != nil && b != nil && a.Id() == b.Id()
}
