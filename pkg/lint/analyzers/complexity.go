package analyzers

import (
	"fmt"

	"github.com/yaklabco/codelint/pkg/config"
	"github.com/yaklabco/codelint/pkg/lint"
	"github.com/yaklabco/codelint/pkg/syntax"
)

// ComplexityAnalyzer reports functions and blocks that are hard to follow:
// high branch complexity, long parameter lists, oversized blocks and deep
// nesting of conditionals and loops.
type ComplexityAnalyzer struct {
	lint.BaseAnalyzer

	thresholds config.Thresholds
}

// NewComplexityAnalyzer creates the complexity analyzer with the given limits.
// Zero limits fall back to config.DefaultThresholds.
func NewComplexityAnalyzer(thresholds config.Thresholds) *ComplexityAnalyzer {
	return &ComplexityAnalyzer{
		BaseAnalyzer: lint.NewBaseAnalyzer("complexity",
			lint.RuleInfo{
				ID:          "complexity",
				Category:    lint.CategoryMaintainability,
				Severity:    config.SeverityWarning,
				Description: "Function branch complexity exceeds the configured maximum",
			},
			lint.RuleInfo{
				ID:          "max-params",
				Category:    lint.CategoryMaintainability,
				Severity:    config.SeveritySuggestion,
				Description: "Function has more parameters than the configured maximum",
			},
			lint.RuleInfo{
				ID:          "max-statements",
				Category:    lint.CategoryMaintainability,
				Severity:    config.SeveritySuggestion,
				Description: "Block has more statements than the configured maximum",
			},
			lint.RuleInfo{
				ID:          "max-depth",
				Category:    lint.CategoryMaintainability,
				Severity:    config.SeverityWarning,
				Description: "Conditionals or loops are nested too deeply",
			},
		),
		thresholds: thresholds.WithDefaults(),
	}
}

// Analyze implements lint.Analyzer.
func (a *ComplexityAnalyzer) Analyze(file *lint.File) []lint.Issue {
	w := &complexityWalker{analyzer: a, file: file}
	for _, stmt := range statements(file.Root()) {
		w.statement(stmt, 0)
	}
	return w.issues
}

// complexityWalker carries the issues of one Analyze call.
type complexityWalker struct {
	analyzer *ComplexityAnalyzer
	file     *lint.File
	issues   []lint.Issue
}

func (w *complexityWalker) report(node *syntax.Node, rule, msg string) {
	w.issues = append(w.issues, lint.NewIssue(w.file, node, w.analyzer.Rule(rule), msg).Build())
}

// statement visits a statement at the given nesting depth.
func (w *complexityWalker) statement(n *syntax.Node, depth int) {
	if n == nil {
		return
	}
	limits := w.analyzer.thresholds

	switch {
	case n.Kind() == kindIf:
		level := depth + 1
		if level >= limits.MaxDepth {
			w.report(n, "max-depth", fmt.Sprintf(
				"Nested if statement is too deep (level %d). Consider refactoring to reduce nesting", level))
		}
		w.scan(syntax.Field(n, "condition"))
		w.statement(syntax.Field(n, "consequence"), depth+1)

		alt := unwrapElse(syntax.Field(n, "alternative"))
		if syntax.IsKind(alt, kindIf) {
			w.statement(alt, depth)
		} else {
			w.statement(alt, depth+1)
		}

	case isLoop(n):
		level := depth + 1
		if level >= limits.MaxDepth {
			w.report(n, "max-depth", fmt.Sprintf("Loop is too deeply nested (level %d)", level))
		}
		body := syntax.Field(n, "body")
		for _, child := range syntax.NamedChildren(n) {
			if body != nil && child.Id() == body.Id() {
				continue
			}
			w.scan(child)
		}
		w.statement(body, level)

	case n.Kind() == kindStatementBlock:
		w.block(n, statements(n), depth)

	case n.Kind() == kindSwitch:
		w.scan(syntax.Field(n, "value"))
		for _, c := range statements(syntax.Field(n, "body")) {
			if !syntax.IsKind(c, kindSwitchCase, kindSwitchDefault) {
				continue
			}
			w.scan(syntax.Field(c, "value"))
			w.block(c, caseStatements(c), depth)
		}

	case n.Kind() == kindTry:
		w.statement(syntax.Field(n, "body"), depth)
		if handler := syntax.Field(n, "handler"); handler != nil {
			w.statement(syntax.Field(handler, "body"), depth)
		}
		if finalizer := syntax.Field(n, "finalizer"); finalizer != nil {
			w.statement(syntax.Field(finalizer, "body"), depth)
		}

	case n.Kind() == "labeled_statement":
		w.statement(syntax.Field(n, "body"), depth)

	case isFunction(n):
		w.function(n)

	default:
		w.scan(n)
	}
}

// block checks the statement count of a block and visits its statements
// at the same depth.
func (w *complexityWalker) block(n *syntax.Node, stmts []*syntax.Node, depth int) {
	limit := w.analyzer.thresholds.MaxStatements
	if len(stmts) > limit {
		w.report(n, "max-statements", fmt.Sprintf(
			"Block has too many statements (%d). Consider splitting it into smaller functions", len(stmts)))
	}
	for _, stmt := range stmts {
		w.statement(stmt, depth)
	}
}

// scan looks for functions nested in a statement or expression that is not
// itself a control-flow statement.
func (w *complexityWalker) scan(n *syntax.Node) {
	if n == nil {
		return
	}
	_ = syntax.Walk(n, func(node *syntax.Node) error {
		if isFunction(node) {
			w.function(node)
			return syntax.SkipChildren
		}
		return nil
	})
}

// function measures one function and visits its body with depth reset.
func (w *complexityWalker) function(fn *syntax.Node) {
	limits := w.analyzer.thresholds

	for _, p := range parameters(fn) {
		w.scan(p)
	}

	body := syntax.Field(fn, "body")
	if !syntax.IsKind(body, kindStatementBlock) {
		// Expression-bodied arrows have no statements to measure.
		w.scan(body)
		return
	}

	name := functionName(w.file, fn)

	if score := 1 + contributions(statements(body)); score > limits.MaxComplexity {
		w.report(fn, "complexity", fmt.Sprintf(
			"Function '%s' has a high cyclomatic complexity (%d). Consider refactoring", name, score))
	}

	if count := len(parameters(fn)); count > limits.MaxParams {
		w.report(fn, "max-params", fmt.Sprintf(
			"Function '%s' has too many parameters (%d). Consider using an options object", name, count))
	}

	w.statement(body, 0)
}

// contributions sums the complexity added by a statement list.
func contributions(stmts []*syntax.Node) int {
	total := 0
	for _, stmt := range stmts {
		total += contribution(stmt)
	}
	return total
}

// contribution is the complexity one statement adds to its function.
// Loop bodies are not descended into.
func contribution(n *syntax.Node) int {
	switch {
	case syntax.IsKind(n, kindIf):
		return 1 +
			branchContribution(syntax.Field(n, "consequence")) +
			branchContribution(unwrapElse(syntax.Field(n, "alternative")))
	case isLoop(n):
		return 1
	case syntax.IsKind(n, kindSwitch):
		cases := 0
		for _, c := range statements(syntax.Field(n, "body")) {
			if syntax.IsKind(c, kindSwitchCase, kindSwitchDefault) {
				cases++
			}
		}
		return cases
	case syntax.IsKind(n, kindTry):
		total := 1 + contributions(statements(syntax.Field(n, "body")))
		if handler := syntax.Field(n, "handler"); handler != nil {
			total += contributions(statements(syntax.Field(handler, "body")))
		}
		return total
	case syntax.IsKind(n, kindStatementBlock):
		return contributions(statements(n))
	default:
		return 0
	}
}

// branchContribution is the complexity of an if branch: a block counts its
// statements, a chained if counts itself.
func branchContribution(n *syntax.Node) int {
	switch {
	case syntax.IsKind(n, kindStatementBlock):
		return contributions(statements(n))
	case syntax.IsKind(n, kindIf):
		return contribution(n)
	default:
		return 0
	}
}
