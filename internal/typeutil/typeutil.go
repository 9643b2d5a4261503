package typeutil

import (
	"go/ast"
	"go/types"
)

// UnwrapPointer returns the element type if t is a pointer, otherwise returns t.
func UnwrapPointer(t types.Type) types.Type {
	if ptr, ok := types.Unalias(t).(*types.Pointer); ok {
		return ptr.Elem()
	}

	return t
}

// TypeNameOf returns the declared type name behind t.
// Pointers and aliases are unwrapped and generic instantiations resolve to
// their origin. Returns nil for unnamed and basic types.
func TypeNameOf(t types.Type) *types.TypeName {
	if t == nil {
		return nil
	}

	t = types.Unalias(UnwrapPointer(t))

	if named, ok := t.(*types.Named); ok {
		return named.Origin().Obj()
	}

	return nil
}

// Owner returns the type name a method or struct field belongs to.
// Fields of unnamed or function-local struct types have no owner.
func Owner(obj types.Object) *types.TypeName {
	switch obj := obj.(type) {
	case *types.Func:
		sig, ok := obj.Type().(*types.Signature)
		if !ok || sig.Recv() == nil {
			return nil
		}
		recv := types.Unalias(UnwrapPointer(sig.Recv().Type()))
		switch recv := recv.(type) {
		case *types.Named:
			return recv.Origin().Obj()
		case *types.Interface:
			return interfaceOwner(obj)
		}

	case *types.Var:
		if !obj.IsField() {
			return nil
		}
		return fieldOwner(obj)
	}

	return nil
}

func fieldOwner(field *types.Var) *types.TypeName {
	return scanPackage(field.Pkg(), func(named *types.Named) bool {
		st, ok := named.Underlying().(*types.Struct)
		if !ok {
			return false
		}
		for f := range st.Fields() {
			if f == field {
				return true
			}
		}
		return false
	})
}

func interfaceOwner(method *types.Func) *types.TypeName {
	return scanPackage(method.Pkg(), func(named *types.Named) bool {
		iface, ok := named.Underlying().(*types.Interface)
		if !ok {
			return false
		}
		for m := range iface.ExplicitMethods() {
			if m == method {
				return true
			}
		}
		return false
	})
}

func scanPackage(pkg *types.Package, match func(*types.Named) bool) *types.TypeName {
	if pkg == nil {
		return nil
	}

	scope := pkg.Scope()
	for _, name := range scope.Names() {
		tn, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || tn.IsAlias() {
			continue
		}
		named, ok := tn.Type().(*types.Named)
		if !ok {
			continue
		}
		if match(named) {
			return tn
		}
	}

	return nil
}

// QualifiedName renders obj as "pkg/path.Name" or "pkg/path.Type.Member".
func QualifiedName(obj types.Object) string {
	if obj == nil {
		return ""
	}

	name := obj.Name()
	if owner := Owner(obj); owner != nil {
		name = owner.Name() + "." + name
	}

	if obj.Pkg() == nil {
		return name
	}

	return obj.Pkg().Path() + "." + name
}

// TypeString renders the declared type behind t by its qualified name,
// falling back to the type checker's notation for unnamed types.
func TypeString(t types.Type) string {
	if tn := TypeNameOf(t); tn != nil {
		return QualifiedName(tn)
	}

	return types.TypeString(t, nil)
}

// EmbeddedName returns the identifier an embedded field is named after:
// T, *T, pkg.T, T[A] and *pkg.T[A, B] all yield T.
func EmbeddedName(expr ast.Expr) *ast.Ident {
	for {
		switch e := expr.(type) {
		case *ast.Ident:
			return e
		case *ast.StarExpr:
			expr = e.X
		case *ast.SelectorExpr:
			return e.Sel
		case *ast.IndexExpr:
			expr = e.X
		case *ast.IndexListExpr:
			expr = e.X
		case *ast.ParenExpr:
			expr = e.X
		default:
			return nil
		}
	}
}
