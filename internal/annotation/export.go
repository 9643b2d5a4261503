package annotation

import (
	"go/types"

	"golang.org/x/tools/go/analysis"

	"github.com/peteraritchie/prerelease/internal/marker"
)

// Export exports facts for annotated objects visible to other packages,
// and a package fact for the package annotations. Only registered markers
// are exported.
func Export(pass *analysis.Pass, ix *Index, reg *marker.Registry) {
	if anns := reg.Filter(ix.Package()); len(anns) > 0 {
		pass.ExportPackageFact(&PackageFact{Annotations: anns})
	}

	for obj, anns := range ix.All() {
		if obj.Pkg() != pass.Pkg || !exportable(obj) {
			continue
		}
		if anns := reg.Filter(anns); len(anns) > 0 {
			pass.ExportObjectFact(obj, &ObjectFact{Annotations: anns})
		}
	}
}

// exportable reports whether obj can be referenced from another package:
// package-level objects, methods and struct fields.
func exportable(obj types.Object) bool {
	if obj.Parent() == obj.Pkg().Scope() {
		return true
	}

	switch o := obj.(type) {
	case *types.Func:
		return o.Signature().Recv() != nil
	case *types.Var:
		return o.IsField()
	}

	return false
}
