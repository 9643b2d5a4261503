// Package usage resolves variable initializers to what they construct or
// reference.
package usage

import (
	"go/ast"
	"go/token"
	"go/types"

	"github.com/peteraritchie/prerelease/internal/marker"
)

// Oracle answers the semantic questions the resolver needs.
type Oracle interface {
	TypeOf(e ast.Expr) types.Type
	ObjectOf(id *ast.Ident) types.Object
	Selection(sel *ast.SelectorExpr) *types.Selection
	Annotations(obj types.Object) []marker.Annotation
}

// Kind classifies an initializer.
type Kind int

const (
	None     Kind = iota // nothing to check
	Creation             // T{}, &T{}, new(T)
	Member               // pkg.Func, T.Method, v.Field, pkg.Var, calls of those
)

// Usage is a resolved initializer.
type Usage struct {
	Kind Kind

	// Type is the constructed type of a Creation.
	Type types.Type

	// Object and Annotations describe the referenced Member. Annotations
	// are the member's own, not those of its type.
	Object      types.Object
	Annotations []marker.Annotation
}

// Resolve classifies expr.
func Resolve(o Oracle, expr ast.Expr) Usage {
	if expr == nil {
		return Usage{}
	}

	switch e := ast.Unparen(expr).(type) {
	case *ast.CompositeLit:
		return creation(o.TypeOf(e))

	case *ast.UnaryExpr:
		if lit, ok := ast.Unparen(e.X).(*ast.CompositeLit); ok && e.Op == token.AND {
			return creation(o.TypeOf(lit))
		}

	case *ast.CallExpr:
		if isNew(o, e) {
			return creation(o.TypeOf(e.Args[0]))
		}
		return member(o, callee(e.Fun))

	case *ast.SelectorExpr, *ast.Ident:
		return member(o, e)
	}

	return Usage{}
}

func creation(t types.Type) Usage {
	if t == nil {
		return Usage{}
	}
	return Usage{Kind: Creation, Type: t}
}

func member(o Oracle, expr ast.Expr) Usage {
	var obj types.Object

	switch e := expr.(type) {
	case *ast.SelectorExpr:
		if sel := o.Selection(e); sel != nil {
			obj = sel.Obj()
		} else {
			obj = o.ObjectOf(e.Sel)
		}
	case *ast.Ident:
		obj = o.ObjectOf(e)
	}

	switch obj.(type) {
	case *types.Func, *types.Var, *types.Const:
		return Usage{Kind: Member, Object: obj, Annotations: o.Annotations(obj)}
	}

	return Usage{}
}

// callee strips parentheses and explicit instantiation from a call target.
func callee(fun ast.Expr) ast.Expr {
	fun = ast.Unparen(fun)
	switch f := fun.(type) {
	case *ast.IndexExpr:
		return ast.Unparen(f.X)
	case *ast.IndexListExpr:
		return ast.Unparen(f.X)
	}
	return fun
}

func isNew(o Oracle, call *ast.CallExpr) bool {
	id, ok := ast.Unparen(call.Fun).(*ast.Ident)
	if !ok || len(call.Args) != 1 {
		return false
	}
	b, ok := o.ObjectOf(id).(*types.Builtin)
	return ok && b.Name() == "new"
}
