package marker

import (
	"slices"
	"strings"
)

// Registry is a read-only set of recognised marker identities.
// It is safe for concurrent use.
type Registry struct {
	ids   map[Identity]struct{}
	order []Identity
}

// Defaults returns the built-in marker identities.
func Defaults() []Identity {
	return []Identity{Prerelease, Alpha, Experimental, Preview}
}

// Default returns a registry with the built-in markers.
func Default() *Registry {
	r, _ := New(Defaults()...)
	return r
}

// New creates a registry from the given identities.
// Duplicates are collapsed; the first occurrence keeps its position.
func New(ids ...Identity) (*Registry, error) {
	r := &Registry{ids: make(map[Identity]struct{}, len(ids))}

	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		if _, ok := r.ids[id]; ok {
			continue
		}
		r.ids[id] = struct{}{}
		r.order = append(r.order, id)
	}

	return r, nil
}

// Parse parses a comma-separated list of marker identities.
// An empty string yields the default registry.
func Parse(s string) (*Registry, error) {
	if strings.TrimSpace(s) == "" {
		return Default(), nil
	}

	var ids []Identity

	for part := range strings.SplitSeq(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		ids = append(ids, Identity(part))
	}

	return New(ids...)
}

// IsMarker reports whether id is registered. Matching is exact.
func (r *Registry) IsMarker(id Identity) bool {
	if r == nil {
		return false
	}
	_, ok := r.ids[id]
	return ok
}

// Find returns the first annotation whose marker is registered.
// Order follows anns, not the registry.
func (r *Registry) Find(anns []Annotation) (Annotation, bool) {
	for _, a := range anns {
		if r.IsMarker(a.Marker) {
			return a, true
		}
	}
	return Annotation{}, false
}

// Filter returns the registered annotations of anns, in order.
func (r *Registry) Filter(anns []Annotation) []Annotation {
	var out []Annotation
	for _, a := range anns {
		if r.IsMarker(a.Marker) {
			out = append(out, a)
		}
	}
	return out
}

// Identities returns the registered identities in registration order.
func (r *Registry) Identities() []Identity {
	if r == nil {
		return nil
	}
	return slices.Clone(r.order)
}

// Len returns the number of registered identities.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.order)
}
