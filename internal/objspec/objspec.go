// Package objspec provides object specification parsing and matching.
package objspec

import (
	"go/token"
	"go/types"
	"strings"

	"github.com/peteraritchie/prerelease/internal/typeutil"
)

// Spec holds parsed components of an object specification.
// Format: "pkg/path.Name" or "pkg/path.Type.Member".
type Spec struct {
	PkgPath  string
	TypeName string // empty for package-level objects
	Name     string
}

// Parse splits "pkg/path.Name" or "pkg/path.Type.Member". Only the last
// path element is split on dots, and the part before the member counts as a
// type only when it is exported, so "gopkg.in/yaml.v3.Node" names a
// package-level object.
func Parse(s string) Spec {
	dir, elem := "", s
	if i := strings.LastIndex(s, "/"); i >= 0 {
		dir, elem = s[:i+1], s[i+1:]
	}

	parts := strings.Split(elem, ".")
	n := len(parts)

	switch {
	case n == 1:
		return Spec{Name: s}
	case n >= 3 && token.IsExported(parts[n-2]):
		return Spec{
			PkgPath:  dir + strings.Join(parts[:n-2], "."),
			TypeName: parts[n-2],
			Name:     parts[n-1],
		}
	default:
		return Spec{
			PkgPath: dir + strings.Join(parts[:n-1], "."),
			Name:    parts[n-1],
		}
	}
}

// ParseList parses a comma-separated list of specifications.
func ParseList(s string) []Spec {
	var specs []Spec

	for part := range strings.SplitSeq(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		specs = append(specs, Parse(part))
	}

	return specs
}

// Valid reports whether the spec names a package and an object.
func (s Spec) Valid() bool {
	return s.PkgPath != "" && s.Name != ""
}

// FullName returns the specification in its string form.
func (s Spec) FullName() string {
	if s.TypeName != "" {
		return s.PkgPath + "." + s.TypeName + "." + s.Name
	}

	return s.PkgPath + "." + s.Name
}

// Matches checks if obj matches this specification.
// Methods and struct fields match "pkg/path.Type.Member"; everything else
// matches "pkg/path.Name".
func (s Spec) Matches(obj types.Object) bool {
	if obj == nil || obj.Name() != s.Name {
		return false
	}

	pkg := obj.Pkg()
	if pkg == nil || pkg.Path() != s.PkgPath {
		return false
	}

	owner := typeutil.Owner(obj)
	if s.TypeName == "" {
		return owner == nil
	}

	return owner != nil && owner.Name() == s.TypeName
}
