package analysis

import (
	"cmp"
	"slices"
	"time"

	"github.com/yaklabco/codelint/pkg/lint"
	"github.com/yaklabco/codelint/pkg/runner"
)

// ReportVersion is the current report format version.
const ReportVersion = "1.0.0"

// groups holds temporary state during analysis.
type groups struct {
	files      map[string]*FileStats
	rules      map[string]*RuleStats
	categories map[lint.Category]*CategoryStats

	fileRules     map[string]map[string]bool
	ruleFiles     map[string]map[string]bool
	categoryRules map[lint.Category]map[string]bool
}

func newGroups() *groups {
	return &groups{
		files:         make(map[string]*FileStats),
		rules:         make(map[string]*RuleStats),
		categories:    make(map[lint.Category]*CategoryStats),
		fileRules:     make(map[string]map[string]bool),
		ruleFiles:     make(map[string]map[string]bool),
		categoryRules: make(map[lint.Category]map[string]bool),
	}
}

func (g *groups) add(issue lint.Issue) {
	fs, ok := g.files[issue.FilePath]
	if !ok {
		fs = &FileStats{Path: issue.FilePath}
		g.files[issue.FilePath] = fs
		g.fileRules[issue.FilePath] = make(map[string]bool)
	}
	fs.add(issue.Severity)
	g.fileRules[issue.FilePath][issue.Rule] = true

	rs, ok := g.rules[issue.Rule]
	if !ok {
		rs = &RuleStats{Rule: issue.Rule, Category: issue.Category}
		g.rules[issue.Rule] = rs
		g.ruleFiles[issue.Rule] = make(map[string]bool)
	}
	rs.add(issue.Severity)
	g.ruleFiles[issue.Rule][issue.FilePath] = true

	cs, ok := g.categories[issue.Category]
	if !ok {
		cs = &CategoryStats{Category: issue.Category}
		g.categories[issue.Category] = cs
		g.categoryRules[issue.Category] = make(map[string]bool)
	}
	cs.add(issue.Severity)
	g.categoryRules[issue.Category][issue.Rule] = true
}

// Analyze transforms a runner.Result into a Report in a single pass over
// its issues.
func Analyze(result *runner.Result, opts Options) *Report {
	report := &Report{
		Version:   ReportVersion,
		Timestamp: time.Now(),
		Files:     []lint.FileAnalysis{},
	}

	if result == nil {
		return report
	}

	g := newGroups()

	for _, outcome := range result.Files {
		report.Totals.Files++
		if outcome.Error != nil {
			report.Totals.FilesFailed++
			report.Failures = append(report.Failures, Failure{
				Path:  outcome.Display,
				Error: outcome.Error.Error(),
			})
		}
	}

	for _, fa := range result.Analysis.Files {
		report.Files = append(report.Files, fa)
		if fa.HasIssues() {
			report.Totals.FilesWithIssues++
		}
		for _, issue := range fa.Issues {
			report.Totals.add(issue.Severity)
			g.add(issue)
			if opts.IncludeIssues {
				report.Issues = append(report.Issues, issue)
			}
		}
	}
	report.Summary = result.Analysis.Summary

	if opts.IncludeByFile {
		report.ByFile = g.byFile(opts)
	}
	if opts.IncludeByRule {
		report.ByRule = g.byRule(opts)
	}
	if opts.IncludeByCategory {
		report.ByCategory = g.byCategory(opts)
	}

	return report
}

func (g *groups) byFile(opts Options) []FileStats {
	out := make([]FileStats, 0, len(g.files))
	for path, fs := range g.files {
		fs.Rules = sortedKeys(g.fileRules[path])
		out = append(out, *fs)
	}
	sortStats(out, opts, func(fs FileStats) (string, Counts) { return fs.Path, fs.Counts })
	return out
}

func (g *groups) byRule(opts Options) []RuleStats {
	out := make([]RuleStats, 0, len(g.rules))
	for rule, rs := range g.rules {
		rs.Files = sortedKeys(g.ruleFiles[rule])
		out = append(out, *rs)
	}
	sortStats(out, opts, func(rs RuleStats) (string, Counts) { return rs.Rule, rs.Counts })
	return out
}

func (g *groups) byCategory(opts Options) []CategoryStats {
	out := make([]CategoryStats, 0, len(g.categories))
	for category, cs := range g.categories {
		cs.Rules = sortedKeys(g.categoryRules[category])
		out = append(out, *cs)
	}
	sortStats(out, opts, func(cs CategoryStats) (string, Counts) { return string(cs.Category), cs.Counts })
	return out
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// sortStats orders a grouped view. Ties always fall back to the name so the
// output does not depend on map iteration.
func sortStats[T any](items []T, opts Options, key func(T) (string, Counts)) {
	slices.SortFunc(items, func(left, right T) int {
		leftName, lc := key(left)
		rightName, rc := key(right)

		var result int
		switch opts.SortBy {
		case SortByAlpha:
			// Alphabetical sorting is always ascending (A-Z)
		case SortBySeverity:
			result = cmp.Compare(rc.Errors, lc.Errors)
			if result == 0 {
				result = cmp.Compare(rc.Warnings, lc.Warnings)
			}
			if result == 0 {
				result = cmp.Compare(rc.Issues, lc.Issues)
			}
		default: // SortByCount
			result = cmp.Compare(lc.Issues, rc.Issues)
			if opts.SortDesc {
				result = -result
			}
		}

		if result == 0 {
			result = cmp.Compare(leftName, rightName)
		}
		return result
	})
}
