package lint

// BaseAnalyzer provides Name, Rules and rule lookup for analyzers.
// Embed it in analyzer implementations and add Analyze.
//
// Fields are unexported to avoid stutter and name collisions with interface methods.
type BaseAnalyzer struct {
	name  string
	rules []RuleInfo
}

// NewBaseAnalyzer creates a BaseAnalyzer with the given name and rules.
func NewBaseAnalyzer(name string, rules ...RuleInfo) BaseAnalyzer {
	return BaseAnalyzer{name: name, rules: rules}
}

// Name returns the analyzer name.
func (b *BaseAnalyzer) Name() string {
	return b.name
}

// Rules returns a copy of the rule metadata.
func (b *BaseAnalyzer) Rules() []RuleInfo {
	out := make([]RuleInfo, len(b.rules))
	copy(out, b.rules)
	return out
}

// Rule returns the metadata for id. It panics on an unknown id, which is a
// programming error in the analyzer.
func (b *BaseAnalyzer) Rule(id string) RuleInfo {
	for _, r := range b.rules {
		if r.ID == id {
			return r
		}
	}
	panic("lint: analyzer " + b.name + " has no rule " + id)
}
