package annotation

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"

	"github.com/peteraritchie/prerelease/internal/marker"
	"github.com/peteraritchie/prerelease/internal/objspec"
)

// FactImporter imports facts exported by dependencies.
type FactImporter interface {
	ImportObjectFact(obj types.Object, fact analysis.Fact) bool
	ImportPackageFact(pkg *types.Package, fact analysis.Fact) bool
}

// PassFacts adapts an *analysis.Pass to FactImporter. The pass exposes its
// importers as function fields, not methods.
type PassFacts struct {
	Pass *analysis.Pass
}

// ImportObjectFact forwards to the pass.
func (p PassFacts) ImportObjectFact(obj types.Object, fact analysis.Fact) bool {
	return p.Pass.ImportObjectFact(obj, fact)
}

// ImportPackageFact forwards to the pass.
func (p PassFacts) ImportPackageFact(pkg *types.Package, fact analysis.Fact) bool {
	return p.Pass.ImportPackageFact(pkg, fact)
}

// ExternalObject marks an object of a package that carries no directives.
type ExternalObject struct {
	Spec       objspec.Spec
	Annotation marker.Annotation
}

// ExternalPackage marks every declaration of a package.
type ExternalPackage struct {
	Path       string
	Annotation marker.Annotation
}

// External holds markers supplied through configuration.
type External struct {
	Objects  []ExternalObject
	Packages []ExternalPackage
}

// Lookup answers type and annotation queries for one package.
type Lookup struct {
	pkg      *types.Package
	info     *types.Info
	index    *Index
	facts    FactImporter
	external External
}

// NewLookup creates a Lookup. facts may be nil when no dependency facts are
// available.
func NewLookup(pkg *types.Package, info *types.Info, ix *Index, facts FactImporter, external External) *Lookup {
	return &Lookup{
		pkg:      pkg,
		info:     info,
		index:    ix,
		facts:    facts,
		external: external,
	}
}

// Package returns the package under analysis.
func (l *Lookup) Package() *types.Package {
	return l.pkg
}

// TypeOf returns the type of e, or nil.
func (l *Lookup) TypeOf(e ast.Expr) types.Type {
	return l.info.TypeOf(e)
}

// ObjectOf returns the object id denotes, or nil.
func (l *Lookup) ObjectOf(id *ast.Ident) types.Object {
	return l.info.ObjectOf(id)
}

// Selection returns the selection recorded for sel, or nil for qualified
// identifiers.
func (l *Lookup) Selection(sel *ast.SelectorExpr) *types.Selection {
	return l.info.Selections[sel]
}

// Annotations returns the annotations attached to obj: declared ones for
// objects of this package, imported facts for others, then external markers.
func (l *Lookup) Annotations(obj types.Object) []marker.Annotation {
	if obj == nil {
		return nil
	}
	obj = origin(obj)

	var anns []marker.Annotation
	switch {
	case obj.Pkg() == l.pkg:
		anns = append(anns, l.index.Of(obj)...)
	case l.facts != nil && obj.Pkg() != nil:
		var fact ObjectFact
		if l.facts.ImportObjectFact(obj, &fact) {
			anns = append(anns, fact.Annotations...)
		}
	}

	for _, ext := range l.external.Objects {
		if ext.Spec.Matches(obj) {
			anns = append(anns, ext.Annotation)
		}
	}

	return anns
}

// PackageAnnotations returns the annotations of pkg.
func (l *Lookup) PackageAnnotations(pkg *types.Package) []marker.Annotation {
	if pkg == nil {
		return nil
	}

	var anns []marker.Annotation
	switch {
	case pkg == l.pkg:
		anns = append(anns, l.index.Package()...)
	case l.facts != nil:
		var fact PackageFact
		if l.facts.ImportPackageFact(pkg, &fact) {
			anns = append(anns, fact.Annotations...)
		}
	}

	for _, ext := range l.external.Packages {
		if ext.Path == pkg.Path() {
			anns = append(anns, ext.Annotation)
		}
	}

	return anns
}
