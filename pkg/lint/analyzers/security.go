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
	secretMarkers  = []string{"password", "secret", "token", "apikey"}
	consoleMethods = []string{"log", "debug", "info", "warn", "error"}
)

// SecurityAnalyzer reports calls and assignments that commonly lead to code
// injection, XSS or leaked credentials.
type SecurityAnalyzer struct {
	lint.BaseAnalyzer
}

func securityRule(id, description string) lint.RuleInfo {
	return lint.RuleInfo{
		ID:          id,
		Category:    lint.CategorySecurity,
		Severity:    config.SeverityWarning,
		Description: description,
	}
}

// NewSecurityAnalyzer creates the security analyzer.
func NewSecurityAnalyzer() *SecurityAnalyzer {
	return &SecurityAnalyzer{
		BaseAnalyzer: lint.NewBaseAnalyzer("security",
			securityRule("no-hardcoded-secrets", "Credential-like variable initialized with a string literal"),
			securityRule("no-eval", "Use of eval()"),
			securityRule("no-alert", "Use of alert()"),
			securityRule("no-new-func", "Use of the Function constructor"),
			securityRule("no-setTimeout-string", "setTimeout called with a string"),
			securityRule("no-setInterval-string", "setInterval called with a string"),
			securityRule("no-document-write", "Use of document.write()"),
			securityRule("no-inner-html", "Assignment to innerHTML"),
			securityRule("no-outer-html", "Assignment to outerHTML"),
			securityRule("no-console", "Console logging left in code"),
		),
	}
}

// Analyze implements lint.Analyzer.
func (a *SecurityAnalyzer) Analyze(file *lint.File) []lint.Issue {
	var issues []lint.Issue
	add := func(n *syntax.Node, rule, msg string) {
		issues = append(issues, lint.NewIssue(file, n, a.Rule(rule), msg).Build())
	}

	_ = syntax.Walk(file.Root(), func(n *syntax.Node) error {
		switch n.Kind() {
		case kindDeclarator:
			name := syntax.Field(n, "name")
			if syntax.IsKind(name, kindIdentifier) && isSecretName(file.Text(name)) &&
				isStringLiteral(syntax.Field(n, "value")) {
				add(n, "no-hardcoded-secrets", fmt.Sprintf(
					"Possible hardcoded password or secret in variable '%s'", file.Text(name)))
			}

		case kindCall:
			a.call(file, n, add)

		case kindNew:
			if ctor := syntax.Field(n, "constructor"); syntax.IsKind(ctor, kindIdentifier) && file.Text(ctor) == "Function" {
				add(n, "no-new-func",
					"Avoid the Function constructor; it behaves like eval() and is a security risk")
			}

		case "assignment_expression", "augmented_assignment_expression":
			_, property := memberParts(file, syntax.Field(n, "left"))
			switch property {
			case "innerHTML":
				add(n, "no-inner-html",
					"Assigning innerHTML can lead to XSS. Consider textContent or DOM methods")
			case "outerHTML":
				add(n, "no-outer-html",
					"Assigning outerHTML can lead to XSS. Consider DOM methods")
			}

		}
		return nil
	})

	return issues
}

func (a *SecurityAnalyzer) call(file *lint.File, n *syntax.Node, add func(*syntax.Node, string, string)) {
	fn, args := callee(n)

	if syntax.IsKind(fn, kindIdentifier) {
		switch name := file.Text(fn); name {
		case "eval":
			add(fn, "no-eval", "Avoid eval(); it is a security risk and hurts performance")
		case "alert":
			add(fn, "no-alert", "Avoid alert(); use a custom UI for notifications")
		case "Function":
			add(fn, "no-new-func", "Avoid the Function constructor; it behaves like eval() and is a security risk")
		case "setTimeout", "setInterval":
			if isStringLiteral(firstArgument(args)) {
				add(n, "no-"+name+"-string", fmt.Sprintf(
					"Avoid calling %s with a string argument; pass a function reference", name))
			}
		}
		return
	}

	object, method := memberParts(file, fn)
	if !syntax.IsKind(object, kindIdentifier) {
		return
	}
	switch file.Text(object) {
	case "document":
		if method == "write" {
			add(n, "no-document-write", "Avoid document.write(); it can overwrite the whole document")
		}
	case "console":
		if slices.Contains(consoleMethods, method) {
			add(fn, "no-console", fmt.Sprintf("Remove console.%s() before deploying to production", method))
		}
	}
}

func isSecretName(name string) bool {
	lower := strings.ToLower(name)
	for _, marker := range secretMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
