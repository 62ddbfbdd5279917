package tools

import (
	"errors"
	"fmt"
	"sync"
)

// ErrUnknownTool is returned by Lookup for an id with no descriptor.
var ErrUnknownTool = errors.New("unknown tool")

// Descriptor is the display metadata of a tool plus the form that implements it.
type Descriptor struct {
	ID          string
	Name        string
	Description string
	Icon        string // iconify class, e.g. "lucide--palette"
	Color       string // theme color token
	Form        Invocation
}

// Registry is an immutable, ordered set of tool descriptors.
type Registry struct {
	ordered []Descriptor
	byID    map[string]Descriptor
}

// NewRegistry builds a registry, rejecting empty or duplicate ids and missing forms.
func NewRegistry(descriptors ...Descriptor) (*Registry, error) {
	r := &Registry{
		ordered: make([]Descriptor, 0, len(descriptors)),
		byID:    make(map[string]Descriptor, len(descriptors)),
	}
	for _, d := range descriptors {
		if d.ID == "" {
			return nil, errors.New("tool descriptor has empty id")
		}
		if d.Form == nil {
			return nil, fmt.Errorf("tool %q has no form", d.ID)
		}
		if _, dup := r.byID[d.ID]; dup {
			return nil, fmt.Errorf("duplicate tool id %q", d.ID)
		}
		r.byID[d.ID] = d
		r.ordered = append(r.ordered, d)
	}
	return r, nil
}

// Lookup returns the descriptor for id.
func (r *Registry) Lookup(id string) (Descriptor, error) {
	d, ok := r.byID[id]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %q", ErrUnknownTool, id)
	}
	return d, nil
}

// MustLookup is Lookup for ids known at compile time. A miss is a
// configuration error and panics.
func (r *Registry) MustLookup(id string) Descriptor {
	d, err := r.Lookup(id)
	if err != nil {
		panic(err)
	}
	return d
}

// Has reports whether id is registered.
func (r *Registry) Has(id string) bool {
	_, ok := r.byID[id]
	return ok
}

// All returns the descriptors in display order.
func (r *Registry) All() []Descriptor {
	return append([]Descriptor(nil), r.ordered...)
}

// Len returns the number of tools.
func (r *Registry) Len() int { return len(r.ordered) }

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the registry of the twelve built-in tools.
func Default() *Registry {
	defaultOnce.Do(func() {
		r, err := NewRegistry(catalog()...)
		if err != nil {
			panic(fmt.Sprintf("tools: invalid catalog: %v", err))
		}
		defaultRegistry = r
	})
	return defaultRegistry
}
