package validator

import (
	"voltaic-hq/faraday/pkg/network"
)

// Category groups validators for bulk selection. The set of categories is
// open but curated; all built-in validators belong to CategoryCore.
type Category string

const (
	// CategoryCore contains the reference-integrity validators every model
	// should pass.
	CategoryCore Category = "core"
	// CategoryExtended contains optional, stricter validators.
	CategoryExtended Category = "extended"
)

// Validator is a named, categorized unit of validation logic. A validator
// belongs to exactly one category and its name must be stable across
// versions, since include/exclude filters address validators by name.
type Validator interface {
	// Name returns the unique validator identifier.
	Name() string

	// Category returns the category the validator belongs to.
	Category() Category

	// Check inspects the network and returns its findings. Check must be a
	// pure, deterministic function of the network and must not mutate it.
	Check(n *network.Network) ([]Issue, error)
}

// Registry is a catalog of validators, keyed by name and grouped by
// category. Registration order is preserved so that full runs execute
// validators in a reproducible order.
//
// A Registry has process lifetime semantics: validators are registered
// during initialization and never removed. Registration must complete
// before the first run; the Registry is not synchronized for concurrent
// mutation.
type Registry struct {
	byName map[string]Validator
	order  []string
}

// NewRegistry creates an empty Registry. Tests use this to build isolated
// registries without the built-in validators.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Validator)}
}

// NewDefaultRegistry creates a Registry pre-populated with the built-in
// reference-integrity validators, in their canonical order.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.MustRegister(NewCableNodeReference())
	r.MustRegister(NewLinkNodeReference())
	r.MustRegister(NewTransformerNodeReference())
	return r
}

// Register adds a validator under its name. It returns a DuplicateNameError
// if the name is already taken; the Registry is unchanged on failure.
func (r *Registry) Register(v Validator) error {
	name := v.Name()
	if _, exists := r.byName[name]; exists {
		return &DuplicateNameError{Name: name}
	}
	r.byName[name] = v
	r.order = append(r.order, name)
	return nil
}

// MustRegister registers a validator and panics on failure. Intended for
// registering built-ins at initialization.
func (r *Registry) MustRegister(v Validator) {
	if err := r.Register(v); err != nil {
		panic(err)
	}
}

// Lookup returns the validator registered under name.
func (r *Registry) Lookup(name string) (Validator, bool) {
	v, ok := r.byName[name]
	return v, ok
}

// ByCategory returns the names of all validators in the given category, in
// registration order. The result is empty, not an error, for a category
// with no validators.
func (r *Registry) ByCategory(c Category) []string {
	var names []string
	for _, name := range r.order {
		if r.byName[name].Category() == c {
			names = append(names, name)
		}
	}
	return names
}

// All returns every registered validator, in registration order.
func (r *Registry) All() []Validator {
	out := make([]Validator, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.byName[name])
	}
	return out
}

// Len returns the number of registered validators.
func (r *Registry) Len() int { return len(r.order) }
