package annotation

import (
	"go/ast"
	"go/token"
	"go/types"
	"iter"
	"maps"

	"github.com/peteraritchie/prerelease/internal/directive"
	"github.com/peteraritchie/prerelease/internal/marker"
	"github.com/peteraritchie/prerelease/internal/typeutil"
)

// Index holds the annotations declared in the package under analysis.
type Index struct {
	objects map[types.Object][]marker.Annotation
	pkg     []marker.Annotation
}

// Build indexes the directives of every declaration in files.
// Package annotations come from the package doc comment of each file, in
// file order.
func Build(fset *token.FileSet, files []*ast.File, info *types.Info) *Index {
	ix := &Index{objects: make(map[types.Object][]marker.Annotation)}

	for _, file := range files {
		ix.pkg = append(ix.pkg, directive.ParseGroup(file.Doc)...)
		lines := directive.BuildLineIndex(fset, file)

		ast.Inspect(file, func(n ast.Node) bool {
			switch n := n.(type) {
			case *ast.GenDecl:
				ix.genDecl(info, n)

			case *ast.FuncDecl:
				ix.define(info, n.Name, directive.ParseGroup(n.Doc))

			case *ast.StructType:
				for _, field := range n.Fields.List {
					anns := directive.ParseGroup(field.Doc, field.Comment)
					if len(field.Names) == 0 {
						ix.define(info, typeutil.EmbeddedName(field.Type), anns)
					}
					for _, name := range field.Names {
						ix.define(info, name, anns)
					}
				}

			case *ast.InterfaceType:
				for _, method := range n.Methods.List {
					anns := directive.ParseGroup(method.Doc, method.Comment)
					for _, name := range method.Names {
						ix.define(info, name, anns)
					}
				}

			case *ast.AssignStmt:
				if n.Tok != token.DEFINE {
					break
				}
				anns := lines.At(fset.Position(n.Pos()).Line)
				for _, lhs := range n.Lhs {
					if id, ok := lhs.(*ast.Ident); ok {
						ix.define(info, id, anns)
					}
				}
			}

			return true
		})
	}

	return ix
}

func (ix *Index) genDecl(info *types.Info, d *ast.GenDecl) {
	// The doc of an ungrouped declaration belongs to its only spec.
	var declDoc *ast.CommentGroup
	if !d.Lparen.IsValid() {
		declDoc = d.Doc
	}

	for _, spec := range d.Specs {
		switch s := spec.(type) {
		case *ast.TypeSpec:
			ix.define(info, s.Name, directive.ParseGroup(declDoc, s.Doc, s.Comment))

		case *ast.ValueSpec:
			anns := directive.ParseGroup(declDoc, s.Doc, s.Comment)
			for _, name := range s.Names {
				ix.define(info, name, anns)
			}
		}
	}
}

func (ix *Index) define(info *types.Info, id *ast.Ident, anns []marker.Annotation) {
	if id == nil || len(anns) == 0 {
		return
	}

	obj := info.Defs[id]
	if obj == nil {
		return
	}

	ix.objects[obj] = append(ix.objects[obj], anns...)
}

// Of returns the annotations declared on obj.
func (ix *Index) Of(obj types.Object) []marker.Annotation {
	if ix == nil || obj == nil {
		return nil
	}
	return ix.objects[origin(obj)]
}

// Package returns the annotations of the package itself.
func (ix *Index) Package() []marker.Annotation {
	if ix == nil {
		return nil
	}
	return ix.pkg
}

// All iterates over every annotated object.
func (ix *Index) All() iter.Seq2[types.Object, []marker.Annotation] {
	if ix == nil {
		return maps.All(map[types.Object][]marker.Annotation(nil))
	}
	return maps.All(ix.objects)
}

// Len returns the number of annotated objects.
func (ix *Index) Len() int {
	if ix == nil {
		return 0
	}
	return len(ix.objects)
}

// origin maps members of generic instantiations back to their declaration.
func origin(obj types.Object) types.Object {
	switch o := obj.(type) {
	case *types.Func:
		return o.Origin()
	case *types.Var:
		return o.Origin()
	}
	return obj
}
