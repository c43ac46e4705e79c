package analyzers

import (
	"fmt"

	"github.com/yaklabco/codelint/pkg/config"
	"github.com/yaklabco/codelint/pkg/lint"
	"github.com/yaklabco/codelint/pkg/syntax"
)

// BestPracticeAnalyzer reports constructs that modern style guides avoid.
type BestPracticeAnalyzer struct {
	lint.BaseAnalyzer
}

func bestPracticeRule(id string, sev config.Severity, description string) lint.RuleInfo {
	return lint.RuleInfo{
		ID:          id,
		Category:    lint.CategoryBestPractice,
		Severity:    sev,
		Description: description,
	}
}

// NewBestPracticeAnalyzer creates the best-practice analyzer.
func NewBestPracticeAnalyzer() *BestPracticeAnalyzer {
	return &BestPracticeAnalyzer{
		BaseAnalyzer: lint.NewBaseAnalyzer("best-practice",
			bestPracticeRule("no-var", config.SeveritySuggestion, "Use let or const instead of var"),
			bestPracticeRule("eqeqeq", config.SeveritySuggestion, "Use === and !== instead of == and !="),
			bestPracticeRule("no-empty-catch", config.SeveritySuggestion, "Empty catch block"),
			bestPracticeRule("no-double-negation", config.SeveritySuggestion, "Double negation (!!) used for boolean conversion"),
			bestPracticeRule("no-void", config.SeveritySuggestion, "Use of the void operator"),
			bestPracticeRule("no-sequences", config.SeveritySuggestion, "Use of the comma operator"),
			bestPracticeRule("no-debugger", config.SeverityWarning, "debugger statement left in code"),
		),
	}
}

// Analyze implements lint.Analyzer.
func (a *BestPracticeAnalyzer) Analyze(file *lint.File) []lint.Issue {
	var issues []lint.Issue
	add := func(n *syntax.Node, rule, msg string) {
		issues = append(issues, lint.NewIssue(file, n, a.Rule(rule), msg).Build())
	}

	_ = syntax.Walk(file.Root(), func(n *syntax.Node) error {
		switch n.Kind() {
		case kindVariableDecl:
			for _, d := range statements(n) {
				name := syntax.Field(d, "name")
				if d.Kind() == kindDeclarator && syntax.IsKind(name, kindIdentifier) {
					add(d, "no-var", fmt.Sprintf(
						"Use 'let' or 'const' instead of 'var' for variable '%s'", file.Text(name)))
				}
			}

		case "binary_expression":
			switch operator(file, n) {
			case "==", "!=":
				add(n, "eqeqeq", "Use '===' instead of '==' for strict equality comparison")
			}

		case "unary_expression":
			switch operator(file, n) {
			case "!":
				arg := syntax.Field(n, "argument")
				if syntax.IsKind(arg, "unary_expression") && operator(file, arg) == "!" {
					add(n, "no-double-negation",
						"Avoid double negation (!!); use Boolean() for clarity")
				}
			case "void":
				add(n, "no-void", "Avoid the void operator; it can be confusing")
			}

		case "sequence_expression":
			if isOutermostSequence(n) {
				add(n, "no-sequences", "Avoid the comma operator; it makes code hard to read")
			}

		case "catch_clause":
			if body := syntax.Field(n, "body"); body != nil && len(statements(body)) == 0 {
				add(n, "no-empty-catch", "Empty catch block. Handle the error or remove the catch")
			}

		case "debugger_statement":
			add(n, "no-debugger", "Remove the debugger statement before deploying to production")
		}
		return nil
	})

	return issues
}

// isOutermostSequence reports whether a comma sequence is not nested in
// another sequence and not part of a for loop header.
func isOutermostSequence(n *syntax.Node) bool {
	parent := n.Parent()
	switch {
	case syntax.IsKind(parent, "sequence_expression"):
		return false
	case syntax.IsKind(parent, kindFor):
		return false
	case syntax.IsKind(parent, kindExpressionStatement) && syntax.IsKind(parent.Parent(), kindFor):
		return false
	}
	return true
}
