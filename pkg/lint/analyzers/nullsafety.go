package analyzers

import (
	"fmt"
	"slices"
	"strings"

	"github.com/yaklabco/codelint/pkg/config"
	"github.com/yaklabco/codelint/pkg/lint"
	"github.com/yaklabco/codelint/pkg/syntax"
)

//nolint:gochecknoglobals // Fixed method list.
var arrayMethods = []string{"map", "filter", "reduce", "forEach", "find", "some", "every"}

// NullSafetyAnalyzer reports property and element accesses that would throw
// on null or undefined and are not guarded by optional chaining.
type NullSafetyAnalyzer struct {
	lint.BaseAnalyzer
}

// NewNullSafetyAnalyzer creates the null-safety analyzer.
func NewNullSafetyAnalyzer() *NullSafetyAnalyzer {
	return &NullSafetyAnalyzer{
		BaseAnalyzer: lint.NewBaseAnalyzer("null-safety",
			lint.RuleInfo{
				ID:          "no-unsafe-member-access",
				Category:    lint.CategoryCodeQuality,
				Severity:    config.SeverityWarning,
				Description: "Chained property access without a null check",
			},
			lint.RuleInfo{
				ID:          "no-unsafe-array-access",
				Category:    lint.CategoryCodeQuality,
				Severity:    config.SeveritySuggestion,
				Description: "Indexing an array-like value without a length check",
			},
			lint.RuleInfo{
				ID:          "no-unsafe-array-method",
				Category:    lint.CategoryCodeQuality,
				Severity:    config.SeverityWarning,
				Description: "Array method called on a value that may be null or undefined",
			},
			lint.RuleInfo{
				ID:          "no-unsafe-destructuring",
				Category:    lint.CategoryCodeQuality,
				Severity:    config.SeveritySuggestion,
				Description: "Destructuring binds values without defaults",
			},
		),
	}
}

// Analyze implements lint.Analyzer.
func (a *NullSafetyAnalyzer) Analyze(file *lint.File) []lint.Issue {
	var issues []lint.Issue
	add := func(n *syntax.Node, rule, msg string) {
		issues = append(issues, lint.NewIssue(file, n, a.Rule(rule), msg).Build())
	}

	_ = syntax.Walk(file.Root(), func(n *syntax.Node) error {
		switch n.Kind() {
		case kindDeclarator:
			if msg := unsafeDestructuring(syntax.Field(n, "name")); msg != "" {
				add(n, "no-unsafe-destructuring", msg)
			}

		case kindMember:
			object := syntax.Field(n, "object")
			if syntax.IsKind(object, kindMember) && !chainIsOptional(n) {
				add(n, "no-unsafe-member-access",
					"Chained property access without a null check. Consider optional chaining (?.) or validating the data first")
			}

		case kindSubscript:
			object := syntax.Field(n, "object")
			if syntax.IsKind(object, kindIdentifier) && !hasOptionalChain(n) && isArrayLikeName(file.Text(object)) {
				add(n, "no-unsafe-array-access",
					"Direct array access without a length check. Consider checking that the index exists first")
			}

		case kindCall:
			fn, _ := callee(n)
			object, method := memberParts(file, fn)
			if syntax.IsKind(object, kindIdentifier) && slices.Contains(arrayMethods, method) &&
				!hasOptionalChain(n) && !hasOptionalChain(fn) {
				add(n, "no-unsafe-array-method", fmt.Sprintf(
					"Calling %s on a value that may be null or undefined. Add a null check first", method))
			}
		}
		return nil
	})

	return issues
}

// isArrayLikeName reports whether an identifier reads like a collection.
func isArrayLikeName(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "array") ||
		strings.Contains(lower, "arr") ||
		strings.HasSuffix(lower, "s")
}

// unsafeDestructuring returns a message when a destructuring pattern binds
// at least one bare name without a default, or "" otherwise.
func unsafeDestructuring(pattern *syntax.Node) string {
	switch {
	case syntax.IsKind(pattern, kindObjectPattern):
		for _, p := range statements(pattern) {
			switch p.Kind() {
			case "shorthand_property_identifier_pattern":
				return "Destructuring without default values. Use: const { prop = defaultValue } = obj"
			case "pair_pattern":
				if syntax.IsKind(syntax.Field(p, "value"), kindIdentifier) {
					return "Destructuring without default values. Use: const { prop = defaultValue } = obj"
				}
			}
		}
	case syntax.IsKind(pattern, kindArrayPattern):
		for _, p := range statements(pattern) {
			if p.Kind() == kindIdentifier {
				return "Array destructuring without default values. Use: const [first = defaultValue] = array"
			}
		}
	}
	return ""
}
