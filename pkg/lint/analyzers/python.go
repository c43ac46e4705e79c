package analyzers

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/yaklabco/codelint/pkg/config"
	"github.com/yaklabco/codelint/pkg/langdetect"
	"github.com/yaklabco/codelint/pkg/lint"
	"github.com/yaklabco/codelint/pkg/syntax"
)

// pythonQuery captures every construct the Python analyzer inspects.
const pythonQuery = `
(call
  function: (identifier) @func_name
  arguments: (argument_list)
  (#eq? @func_name "print")) @print_call

(integer) @magic_number
(float) @magic_number

(string) @string_literal

(class_definition
  name: (identifier) @class_name)

(function_definition
  name: (identifier) @def_func_name)

(assignment
  left: (identifier) @var_assign)

(if_statement) @if_stmt

(function_definition
  parameters: (parameters) @params)
`

//nolint:gochecknoglobals // Fixed allow-list.
var pythonAllowedNumbers = map[float64]bool{0: true, 1: true, 2: true, 10: true, 100: true}

// Python string and nesting limits.
const (
	pythonMaxStringLength = 20
	pythonMaxIfAncestors  = 2
)

// PythonAnalyzer runs query-based checks over Python sources.
type PythonAnalyzer struct {
	lint.BaseAnalyzer

	query     string
	maxParams int
}

// NewPythonAnalyzer creates the Python analyzer.
func NewPythonAnalyzer(thresholds config.Thresholds) *PythonAnalyzer {
	return &PythonAnalyzer{
		BaseAnalyzer: lint.NewBaseAnalyzer("python",
			lint.RuleInfo{
				ID: "python-syntax-error", Category: lint.CategoryCodeQuality,
				Severity: config.SeverityError, Description: "Python file contains syntax errors",
			},
			lint.RuleInfo{
				ID: "no-print", Category: lint.CategoryBestPractice,
				Severity: config.SeverityWarning, Description: "print() call left in code",
			},
			lint.RuleInfo{
				ID: "no-magic-numbers", Category: lint.CategoryBestPractice,
				Severity: config.SeveritySuggestion, Description: "Numeric literal outside the allowed set",
			},
			lint.RuleInfo{
				ID: "no-hardcoded-strings", Category: lint.CategoryBestPractice,
				Severity: config.SeveritySuggestion, Description: "Long string literal written inline",
			},
			lint.RuleInfo{
				ID: "class-naming", Category: lint.CategoryCodeQuality,
				Severity: config.SeverityWarning, Description: "Class name is not PascalCase",
			},
			lint.RuleInfo{
				ID: "function-naming", Category: lint.CategoryCodeQuality,
				Severity: config.SeverityWarning, Description: "Function name is not snake_case",
			},
			lint.RuleInfo{
				ID: "variable-naming", Category: lint.CategoryCodeQuality,
				Severity: config.SeverityWarning, Description: "Variable name is neither snake_case nor UPPER_CASE",
			},
			lint.RuleInfo{
				ID: "nested-if", Category: lint.CategoryComplexity,
				Severity: config.SeverityWarning, Description: "if statement nested inside two or more ifs",
			},
			lint.RuleInfo{
				ID: "complexity", Category: lint.CategoryComplexity,
				Severity: config.SeverityWarning, Description: "Function has too many parameters",
			},
			lint.RuleInfo{
				ID: "internal-error", Category: lint.CategoryCodeQuality,
				Severity: config.SeverityError, Description: "Analyzer query failed to compile",
			},
		),
		query:     pythonQuery,
		maxParams: thresholds.WithDefaults().MaxParams,
	}
}

// Languages implements lint.LanguageFilter.
func (a *PythonAnalyzer) Languages() []langdetect.Language {
	return []langdetect.Language{langdetect.Python}
}

// Analyze implements lint.Analyzer.
func (a *PythonAnalyzer) Analyze(file *lint.File) []lint.Issue {
	var issues []lint.Issue

	if file.Tree.HasError() {
		issues = append(issues, lint.NewIssueAt(file, 0, 0, a.Rule("python-syntax-error"),
			"Syntax error detected in Python file").AtLine(1, 1).Build())
	}

	matches, err := file.Tree.Query(a.query)
	if err != nil {
		return append(issues, lint.NewIssueAt(file, 0, 0, a.Rule("internal-error"),
			fmt.Sprintf("Internal error: failed to compile Python query: %v", err)).AtLine(1, 1).Build())
	}

	for _, m := range matches {
		for _, c := range m.Captures {
			if issue, ok := a.capture(file, c); ok {
				issues = append(issues, issue)
			}
		}
	}
	return issues
}

// capture checks one captured node; captures used only for matching are ignored.
func (a *PythonAnalyzer) capture(file *lint.File, c syntax.Capture) (lint.Issue, bool) {
	n := c.Node
	text := file.Text(n)
	issue := func(node *syntax.Node, rule, msg string) (lint.Issue, bool) {
		return lint.NewIssue(file, node, a.Rule(rule), msg).Build(), true
	}

	switch c.Name {
	case "print_call":
		return issue(n, "no-print", "Avoid using print() in production. Use a logger.")

	case "magic_number":
		target, literal := n, text
		if parent := n.Parent(); syntax.IsKind(parent, "unary_operator") && operator(file, parent) == "-" {
			target, literal = parent, "-"+text
		}
		value, ok := parsePythonNumber(literal)
		if !ok || pythonAllowedNumbers[math.Abs(value)] || inConstantAssignment(file, n) {
			return lint.Issue{}, false
		}
		return issue(target, "no-magic-numbers", fmt.Sprintf("Magic number detected: %s. Define a constant.", literal))

	case "string_literal":
		content := pythonStringContent(file, n)
		if utf8.RuneCountInString(content) <= pythonMaxStringLength || strings.Contains(content, "{") || isDocstring(n) {
			return lint.Issue{}, false
		}
		preview := []rune(content)[:pythonMaxStringLength]
		return issue(n, "no-hardcoded-strings", fmt.Sprintf(
			"Hardcoded string detected: \"%s...\". Consider extracting to a constant.", string(preview)))

	case "class_name":
		if !isPascalCase(text) {
			return issue(n, "class-naming", fmt.Sprintf("Class name '%s' should be PascalCase.", text))
		}

	case "def_func_name":
		if !isSnakeCase(text) {
			return issue(n, "function-naming", fmt.Sprintf("Function name '%s' should be snake_case.", text))
		}

	case "var_assign":
		if !isUpperCase(text) && !isSnakeCase(text) {
			return issue(n, "variable-naming", fmt.Sprintf(
				"Variable name '%s' should be snake_case (or UPPER_CASE for constants).", text))
		}

	case "if_stmt":
		depth := 0
		for p := n.Parent(); p != nil; p = p.Parent() {
			if p.Kind() == "if_statement" {
				depth++
			}
		}
		if depth >= pythonMaxIfAncestors {
			return issue(n, "nested-if", "Avoid deeply nested if statements.")
		}

	case "params":
		count := 0
		for _, p := range syntax.NamedChildren(n) {
			if syntax.IsKind(p, "identifier", "typed_parameter", "default_parameter", "typed_default_parameter") {
				count++
			}
		}
		if count > a.maxParams {
			return issue(n, "complexity", fmt.Sprintf(
				"Function has too many parameters (%d). Max allowed is %d.", count, a.maxParams))
		}
	}

	return lint.Issue{}, false
}

// inConstantAssignment reports whether a literal sits in an assignment to
// an UPPER_CASE name, searching up to the enclosing function or class.
func inConstantAssignment(file *lint.File, n *syntax.Node) bool {
	return syntax.Ancestor(n,
		func(p *syntax.Node) bool {
			if p.Kind() != "assignment" {
				return false
			}
			left := syntax.Field(p, "left")
			return left != nil && isUpperCase(file.Text(left))
		},
		func(p *syntax.Node) bool {
			return syntax.IsKind(p, "function_definition", "class_definition")
		},
	) != nil
}

// isDocstring reports whether a string is the first statement of a module,
// class or function body.
func isDocstring(n *syntax.Node) bool {
	stmt := n.Parent()
	if !syntax.IsKind(stmt, kindExpressionStatement) {
		return false
	}
	body := stmt.Parent()
	switch {
	case syntax.IsKind(body, "module"):
	case syntax.IsKind(body, "block") && syntax.IsKind(body.Parent(), "function_definition", "class_definition"):
	default:
		return false
	}
	first := firstNamed(body)
	return first != nil && first.Id() == stmt.Id()
}

// pythonStringContent returns the text between a string's quotes.
func pythonStringContent(file *lint.File, n *syntax.Node) string {
	var b strings.Builder
	for _, child := range syntax.NamedChildren(n) {
		switch child.Kind() {
		case "string_content", "escape_sequence":
			b.WriteString(file.Text(child))
		case "interpolation":
			b.WriteString("{")
		}
	}
	return b.String()
}

// parsePythonNumber parses an integer or float literal, with an optional
// leading minus sign.
func parsePythonNumber(text string) (float64, bool) {
	clean := strings.ReplaceAll(strings.ToLower(text), "_", "")
	if strings.HasSuffix(clean, "j") {
		return 0, false
	}
	if i, err := strconv.ParseInt(clean, 0, 64); err == nil {
		return float64(i), true
	}
	if f, err := strconv.ParseFloat(clean, 64); err == nil {
		return f, true
	}
	return 0, false
}

func isSnakeCase(name string) bool {
	for _, r := range name {
		if !unicode.IsLower(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}

func isUpperCase(name string) bool {
	for _, r := range name {
		if unicode.IsLetter(r) && !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

func isPascalCase(name string) bool {
	trimmed := strings.TrimLeft(name, "_")
	first, _ := utf8.DecodeRuneInString(trimmed)
	return unicode.IsUpper(first) && !strings.Contains(trimmed, "_")
}
