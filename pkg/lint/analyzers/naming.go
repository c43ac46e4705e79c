package analyzers

import (
	"fmt"
	"slices"
	"strings"

	"github.com/yaklabco/codelint/pkg/config"
	"github.com/yaklabco/codelint/pkg/lint"
	"github.com/yaklabco/codelint/pkg/syntax"
)

//nolint:gochecknoglobals // Fixed word lists.
var (
	genericNames = []string{
		"data", "result", "info", "value", "item", "obj", "object",
		"stuff", "things", "content", "output", "input", "temp",
		"variable", "param", "args", "opts", "options",
		"err", "val", "elem", "arr", "str", "num", "bool",
	}

	genericFunctionNames = []string{
		"handle", "process", "execute", "run", "do", "perform",
		"action", "handler", "callback", "fn", "func",
	}

	shortNameAllowed     = []string{"i", "j", "k", "x", "y", "z", "_", "$", "a", "b"}
	loopShortNameAllowed = []string{"i", "j", "k", "x", "y"}

	booleanWords = []string{
		"active", "visible", "enabled", "disabled", "ready", "loading",
		"valid", "invalid", "allowed", "blocked", "open", "closed",
		"true", "false", "undefined", "null", "empty",
	}

	booleanPrefixes = []string{"is", "has", "can", "should", "will", "are"}
)

// minNameLength is the shortest name accepted outside the allow-lists.
const minNameLength = 3

// bindingKind says where a name was bound; it selects messages and lists.
type bindingKind int

const (
	bindVariable bindingKind = iota
	bindFunction
	bindParameter
	bindLoop
)

func (k bindingKind) label() string {
	switch k {
	case bindFunction:
		return "Function"
	case bindParameter:
		return "Parameter"
	case bindLoop:
		return "Loop variable"
	default:
		return "Variable"
	}
}

// NamingAnalyzer reports identifiers that are generic, too short, or read
// like booleans without a boolean prefix.
type NamingAnalyzer struct {
	lint.BaseAnalyzer
}

// NewNamingAnalyzer creates the naming analyzer.
func NewNamingAnalyzer() *NamingAnalyzer {
	return &NamingAnalyzer{
		BaseAnalyzer: lint.NewBaseAnalyzer("naming",
			lint.RuleInfo{
				ID:          "no-generic-name",
				Category:    lint.CategoryCodeQuality,
				Severity:    config.SeveritySuggestion,
				Description: "Variable, parameter or loop variable has a generic name",
			},
			lint.RuleInfo{
				ID:          "no-generic-function-name",
				Category:    lint.CategoryCodeQuality,
				Severity:    config.SeveritySuggestion,
				Description: "Function has a generic name",
			},
			lint.RuleInfo{
				ID:          "no-short-name",
				Category:    lint.CategoryCodeQuality,
				Severity:    config.SeveritySuggestion,
				Description: "Name is shorter than three characters",
			},
			lint.RuleInfo{
				ID:          "boolean-prefix",
				Category:    lint.CategoryCodeQuality,
				Severity:    config.SeveritySuggestion,
				Description: "Boolean-like name lacks an is/has/can/should prefix",
			},
		),
	}
}

// Analyze implements lint.Analyzer.
func (a *NamingAnalyzer) Analyze(file *lint.File) []lint.Issue {
	var issues []lint.Issue

	check := func(name *syntax.Node, kind bindingKind) {
		issues = append(issues, a.checkName(file, name, kind)...)
	}

	_ = syntax.Walk(file.Root(), func(n *syntax.Node) error {
		switch {
		case n.Kind() == kindDeclarator:
			if name := syntax.Field(n, "name"); syntax.IsKind(name, kindIdentifier) {
				if inForInit(n) {
					check(name, bindLoop)
				} else {
					check(name, bindVariable)
				}
			}

		case n.Kind() == kindForIn:
			if left := syntax.Field(n, "left"); syntax.IsKind(left, kindIdentifier) {
				check(left, bindLoop)
			}

		case isFunction(n):
			if syntax.IsKind(n, kindFunctionDecl, kindGeneratorDecl) {
				if name := syntax.Field(n, "name"); name != nil {
					check(name, bindFunction)
				}
			}
			for _, p := range parameters(n) {
				if name := parameterName(p); name != nil {
					check(name, bindParameter)
				}
			}
		}
		return nil
	})

	return issues
}

// checkName runs the generic, short and boolean checks against one binding.
func (a *NamingAnalyzer) checkName(file *lint.File, node *syntax.Node, kind bindingKind) []lint.Issue {
	name := file.Text(node)
	lower := strings.ToLower(name)
	var issues []lint.Issue

	switch kind {
	case bindFunction:
		if slices.Contains(genericFunctionNames, lower) {
			issues = append(issues, lint.NewIssue(file, node, a.Rule("no-generic-function-name"),
				fmt.Sprintf("Function '%s' has a generic name. Use a more descriptive name that describes its function", name)).Build())
		}
	case bindLoop:
		if slices.Contains(genericNames, lower) {
			issues = append(issues, lint.NewIssue(file, node, a.Rule("no-generic-name"),
				fmt.Sprintf("Loop variable '%s' has a generic name", name)).Build())
		}
	case bindParameter:
		if slices.Contains(genericNames, lower) {
			issues = append(issues, lint.NewIssue(file, node, a.Rule("no-generic-name"),
				fmt.Sprintf("Parameter '%s' has a generic name. Use a more descriptive name", name)).Build())
		}
	default:
		if slices.Contains(genericNames, lower) {
			issues = append(issues, lint.NewIssue(file, node, a.Rule("no-generic-name"),
				fmt.Sprintf("Variable '%s' has a generic name. Use a more descriptive name that indicates its purpose", name)).Build())
		}
	}

	if isTooShort(name, kind) {
		issues = append(issues, lint.NewIssue(file, node, a.Rule("no-short-name"),
			fmt.Sprintf("%s '%s' name is too short. Use at least 3 characters (except for loop counters)", kind.label(), name)).Build())
	}

	if looksBoolean(lower) {
		issues = append(issues, lint.NewIssue(file, node, a.Rule("boolean-prefix"),
			fmt.Sprintf("Boolean %s '%s' should be prefixed with is/has/can/should", strings.ToLower(kind.label()), name)).Build())
	}

	return issues
}

func isTooShort(name string, kind bindingKind) bool {
	if len(name) >= minNameLength {
		return false
	}
	if kind == bindLoop {
		return !slices.Contains(loopShortNameAllowed, name)
	}
	return !slices.Contains(shortNameAllowed, name)
}

// looksBoolean reports whether a lowercased name is a boolean word without
// a boolean prefix.
func looksBoolean(lower string) bool {
	for _, prefix := range booleanPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return false
		}
	}
	return slices.Contains(booleanWords, lower)
}

// inForInit reports whether a declarator is part of a for loop initializer.
func inForInit(declarator *syntax.Node) bool {
	decl := declarator.Parent()
	if !syntax.IsKind(decl, kindLexicalDecl, kindVariableDecl) {
		return false
	}
	loop := decl.Parent()
	if !syntax.IsKind(loop, kindFor) {
		return false
	}
	init := syntax.Field(loop, "initializer")
	return init != nil && init.Id() == decl.Id()
}
