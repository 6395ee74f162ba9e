package diagnostic

import (
	"sort"
	"sync"
)

// CheckFunc inspects a parsed input and returns findings. opt is the rule's
// value from Options (true when it was only switched on).
type CheckFunc[T any] func(in T, opt any) []Diagnostic

// RuleDef is a data-driven lint rule definition. Rules are stateless; all
// context comes through the Check parameters.
type RuleDef[T any] struct {
	ID          string
	Description string
	Severity    Severity
	// AlwaysOn rules run regardless of Options (syntax errors)
	AlwaysOn bool
	Check    CheckFunc[T]
}

// Registry holds the rules of one linter
type Registry[T any] struct {
	mu    sync.RWMutex
	rules map[string]RuleDef[T]
}

// NewRegistry creates an empty registry
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{rules: map[string]RuleDef[T]{}}
}

// Register adds a rule. Call this from init() functions.
func (r *Registry[T]) Register(def RuleDef[T]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if def.Severity == "" {
		def.Severity = SeverityError
	}
	r.rules[def.ID] = def
}

// Get returns a rule by id
func (r *Registry[T]) Get(id string) (RuleDef[T], bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.rules[id]
	return def, ok
}

// All returns every rule ordered by id
func (r *Registry[T]) All() []RuleDef[T] {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]RuleDef[T], 0, len(r.rules))
	for _, def := range r.rules {
		out = append(out, def)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Run executes every enabled rule against in. Option keys without a
// registered rule are ignored.
func (r *Registry[T]) Run(in T, opts Options) []Diagnostic {
	var out []Diagnostic
	for _, def := range r.All() {
		if !def.AlwaysOn && !opts.Enabled(def.ID) {
			continue
		}
		opt := opts.Value(def.ID)
		if opt == nil {
			opt = true
		}
		for _, d := range def.Check(in, opt) {
			d.Rule = def.ID
			if d.Severity == "" {
				d.Severity = def.Severity
			}
			out = append(out, d)
		}
	}
	Sort(out)
	return out
}
