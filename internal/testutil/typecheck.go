package testutil

import (
	"fmt"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"testing"
)

// Package is a parsed and type-checked package.
type Package struct {
	Fset  *token.FileSet
	Files []*ast.File
	Pkg   *types.Package
	Info  *types.Info
}

// Check parses and type-checks srcs as the files of package path.
// Imports resolve against the standard library sources.
func Check(t testing.TB, path string, srcs ...string) *Package {
	t.Helper()

	fset := token.NewFileSet()
	files := make([]*ast.File, 0, len(srcs))
	for i, src := range srcs {
		f, err := parser.ParseFile(fset, fmt.Sprintf("file%d.go", i), src, parser.ParseComments)
		if err != nil {
			t.Fatalf("parse: %v", err)
		}
		files = append(files, f)
	}

	info := &types.Info{
		Types:      make(map[ast.Expr]types.TypeAndValue),
		Defs:       make(map[*ast.Ident]types.Object),
		Uses:       make(map[*ast.Ident]types.Object),
		Implicits:  make(map[ast.Node]types.Object),
		Selections: make(map[*ast.SelectorExpr]*types.Selection),
	}

	conf := types.Config{Importer: importer.ForCompiler(fset, "source", nil)}
	pkg, err := conf.Check(path, fset, files, info)
	if err != nil {
		t.Fatalf("type-check: %v", err)
	}

	return &Package{Fset: fset, Files: files, Pkg: pkg, Info: info}
}

// Lookup returns the package-level object called name.
func (p *Package) Lookup(t testing.TB, name string) types.Object {
	t.Helper()

	obj := p.Pkg.Scope().Lookup(name)
	if obj == nil {
		t.Fatalf("%s not declared in %s", name, p.Pkg.Path())
	}
	return obj
}

// Def returns the object defined by the first identifier called name.
func (p *Package) Def(t testing.TB, name string) types.Object {
	t.Helper()

	for _, f := range p.Files {
		var found types.Object
		ast.Inspect(f, func(n ast.Node) bool {
			if found != nil {
				return false
			}
			if id, ok := n.(*ast.Ident); ok && id.Name == name {
				found = p.Info.Defs[id]
			}
			return true
		})
		if found != nil {
			return found
		}
	}

	t.Fatalf("no definition of %s", name)
	return nil
}
