// Package scope decides whether a declaration is already in a prerelease
// context.
package scope

import (
	"github.com/peteraritchie/prerelease/internal/decl"
	"github.com/peteraritchie/prerelease/internal/marker"
)

// Context describes where a prerelease marker was found.
type Context struct {
	Annotation marker.Annotation
	Kind       decl.Kind // declaration that carries the marker
	Parent     bool      // found on the parent rather than the start
}

// Classify looks for a registered marker on the declaration, then on its
// parent. The walk stops after the parent. A type declaration without
// annotations of its own takes those of its package.
// Parameters start at their function.
func Classify(v *decl.View, reg *marker.Registry) (Context, bool) {
	if v == nil {
		return Context{}, false
	}

	if v.Kind() == decl.KindParam {
		parent, err := v.Parent()
		if err != nil {
			return Context{}, false
		}
		v = parent
	}

	if ann, ok := find(v, reg); ok {
		return Context{Annotation: ann, Kind: v.Kind()}, true
	}

	parent, err := v.Parent()
	if err != nil {
		return Context{}, false
	}
	if ann, ok := find(parent, reg); ok {
		return Context{Annotation: ann, Kind: parent.Kind(), Parent: true}, true
	}

	return Context{}, false
}

// InPrerelease reports whether v is in a prerelease context.
func InPrerelease(v *decl.View, reg *marker.Registry) bool {
	_, ok := Classify(v, reg)
	return ok
}

func find(v *decl.View, reg *marker.Registry) (marker.Annotation, bool) {
	anns := v.Annotations()
	if v.Kind() == decl.KindType && len(anns) == 0 {
		anns = v.PackageView().Annotations()
	}
	return reg.Find(anns)
}
