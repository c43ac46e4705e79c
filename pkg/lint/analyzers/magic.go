package analyzers

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/yaklabco/codelint/pkg/config"
	"github.com/yaklabco/codelint/pkg/lint"
	"github.com/yaklabco/codelint/pkg/syntax"
)

//nolint:gochecknoglobals // Fixed allow-list.
var allowedNumbers = map[float64]bool{
	0: true, 1: true,
	2: true, 4: true, 8: true, 16: true, 32: true, 64: true,
	128: true, 256: true, 512: true, 1024: true,
	10: true, 100: true, 1000: true,
}

// trackedStringLength is the length above which string literals are
// counted for repetition.
const trackedStringLength = 5

// MagicLiteralAnalyzer reports unexplained numeric literals and long inline
// strings that would read better as named constants.
type MagicLiteralAnalyzer struct {
	lint.BaseAnalyzer

	maxStringLength int
}

// NewMagicLiteralAnalyzer creates the magic-literal analyzer.
func NewMagicLiteralAnalyzer(thresholds config.Thresholds) *MagicLiteralAnalyzer {
	return &MagicLiteralAnalyzer{
		BaseAnalyzer: lint.NewBaseAnalyzer("magic-literal",
			lint.RuleInfo{
				ID:          "no-magic-numbers",
				Category:    lint.CategoryCodeQuality,
				Severity:    config.SeveritySuggestion,
				Description: "Numeric literal outside the allowed set",
			},
			lint.RuleInfo{
				ID:          "no-long-hardcoded-string",
				Category:    lint.CategoryCodeQuality,
				Severity:    config.SeveritySuggestion,
				Description: "Long string literal written inline",
			},
		),
		maxStringLength: thresholds.WithDefaults().MaxStringLength,
	}
}

// Analyze implements lint.Analyzer.
func (a *MagicLiteralAnalyzer) Analyze(file *lint.File) []lint.Issue {
	frequency := make(map[string]int)
	for _, s := range syntax.FindByKind(file.Root(), kindString) {
		if value := stringValue(file, s); utf8.RuneCountInString(value) > trackedStringLength {
			frequency[value]++
		}
	}

	var issues []lint.Issue
	_ = syntax.Walk(file.Root(), func(n *syntax.Node) error {
		switch n.Kind() {
		case "unary_expression":
			arg := syntax.Field(n, "argument")
			if operator(file, n) != "-" || !syntax.IsKind(arg, kindNumber) {
				return nil
			}
			if issue, ok := a.number(file, n, "-"+file.Text(arg)); ok {
				issues = append(issues, issue)
			}
			return syntax.SkipChildren

		case kindNumber:
			if syntax.IsKind(n.Parent(), "literal_type") {
				return nil
			}
			if issue, ok := a.number(file, n, file.Text(n)); ok {
				issues = append(issues, issue)
			}

		case kindString:
			value := stringValue(file, n)
			length := utf8.RuneCountInString(value)
			if length <= a.maxStringLength {
				return nil
			}
			msg := fmt.Sprintf("Hardcoded string is too long (%d characters). Consider using a constant", length)
			if count := frequency[value]; count > 1 {
				msg += fmt.Sprintf("; it appears %d times in this file", count)
			}
			issues = append(issues, lint.NewIssue(file, n, a.Rule("no-long-hardcoded-string"), msg).Build())
		}
		return nil
	})

	return issues
}

// number judges one numeric literal by its magnitude. A negated literal keeps
// its sign in the message and span only.
func (a *MagicLiteralAnalyzer) number(file *lint.File, n *syntax.Node, text string) (lint.Issue, bool) {
	value, ok := parseDecimal(text)
	if !ok || allowedNumbers[math.Abs(value)] {
		return lint.Issue{}, false
	}
	return lint.NewIssue(file, n, a.Rule("no-magic-numbers"),
		fmt.Sprintf("Magic number %s found. Use a named constant instead", text)).Build(), true
}

// parseDecimal parses a decimal numeric literal. Hex, binary and octal
// literals are rejected since their radix already documents intent.
func parseDecimal(text string) (float64, bool) {
	digits := strings.TrimPrefix(text, "-")
	lower := strings.ToLower(digits)
	if strings.HasPrefix(lower, "0x") || strings.HasPrefix(lower, "0b") || strings.HasPrefix(lower, "0o") {
		return 0, false
	}
	if len(lower) > 1 && lower[0] == '0' && lower[1] >= '0' && lower[1] <= '9' {
		return 0, false
	}

	clean := strings.TrimSuffix(strings.ReplaceAll(text, "_", ""), "n")
	value, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
