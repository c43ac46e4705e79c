package lint

import (
	"errors"
	"fmt"
	"sync"
)

// ErrDuplicateAnalyzer is returned when an analyzer name is registered twice.
var ErrDuplicateAnalyzer = errors.New("duplicate analyzer")

// RuleRef is rule metadata qualified by the analyzer that emits it.
// The same rule ID may be emitted by more than one analyzer.
type RuleRef struct {
	RuleInfo

	Analyzer string
}

// Registry holds analyzers in registration order.
// Registration order is the order issues appear in for a file.
type Registry struct {
	mu     sync.RWMutex
	order  []Analyzer
	byName map[string]Analyzer
}

// NewRegistry creates an empty analyzer registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]Analyzer),
	}
}

// Register appends an analyzer. It fails if the name is already taken.
func (r *Registry) Register(a Analyzer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := a.Name()
	if _, exists := r.byName[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateAnalyzer, name)
	}
	r.byName[name] = a
	r.order = append(r.order, a)
	return nil
}

// MustRegister is like Register but panics on error.
// It is intended for init-time registration of built-in analyzers.
func (r *Registry) MustRegister(a Analyzer) {
	if err := r.Register(a); err != nil {
		panic(err)
	}
}

// Get retrieves an analyzer by name.
func (r *Registry) Get(name string) (Analyzer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.byName[name]
	return a, ok
}

// All returns the analyzers in registration order.
func (r *Registry) All() []Analyzer {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Analyzer, len(r.order))
	copy(result, r.order)
	return result
}

// Names returns analyzer names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]string, 0, len(r.order))
	for _, a := range r.order {
		result = append(result, a.Name())
	}
	return result
}

// Rules flattens the rule metadata of all analyzers, in registration order.
func (r *Registry) Rules() []RuleRef {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []RuleRef
	for _, a := range r.order {
		for _, info := range a.Rules() {
			result = append(result, RuleRef{RuleInfo: info, Analyzer: a.Name()})
		}
	}
	return result
}

// HasRule reports whether any analyzer emits the rule id.
func (r *Registry) HasRule(id string) bool {
	for _, ref := range r.Rules() {
		if ref.ID == id {
			return true
		}
	}
	return false
}

// Known reports whether key names an analyzer or a rule.
func (r *Registry) Known(key string) bool {
	if _, ok := r.Get(key); ok {
		return true
	}
	return r.HasRule(key)
}

// Len returns the number of registered analyzers.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// DefaultRegistry is the global registry for built-in analyzers.
// The analyzers package populates it during init().
//
//nolint:gochecknoglobals // Global registry is intentional for analyzer registration
var DefaultRegistry = NewRegistry()
