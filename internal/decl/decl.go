// Package decl normalizes declarations into a uniform View.
package decl

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"

	"github.com/peteraritchie/prerelease/internal/marker"
	"github.com/peteraritchie/prerelease/internal/typeutil"
)

var (
	// ErrUnsupportedDeclaration is returned when a View is requested for a
	// node that is not one of the supported declaration shapes.
	ErrUnsupportedDeclaration = errors.New("unsupported declaration")

	// ErrNoIdentifier is returned when a declaration does not declare
	// exactly one name.
	ErrNoIdentifier = errors.New("declaration does not declare exactly one name")

	// ErrNoParent is returned by Parent for package views.
	ErrNoParent = errors.New("declaration has no parent")
)

// Oracle answers the semantic questions a View needs.
type Oracle interface {
	Package() *types.Package
	TypeOf(e ast.Expr) types.Type
	ObjectOf(id *ast.Ident) types.Object
	Annotations(obj types.Object) []marker.Annotation
	PackageAnnotations(pkg *types.Package) []marker.Annotation
}

// Kind is the shape of a declaration.
type Kind int

const (
	KindField   Kind = iota + 1 // struct field
	KindVar                     // package-level var or const
	KindFunc                    // function, method or interface method
	KindParam                   // function parameter
	KindLocal                   // variable declared in a function body
	KindType                    // type declaration, only as a parent
	KindPackage                 // package, only as a parent
)

func (k Kind) String() string {
	switch k {
	case KindField:
		return "field"
	case KindVar:
		return "var"
	case KindFunc:
		return "func"
	case KindParam:
		return "param"
	case KindLocal:
		return "local"
	case KindType:
		return "type"
	case KindPackage:
		return "package"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// View is a read-only projection of one declaration.
// Views are cheap and are built per evaluation; nothing is cached.
type View struct {
	kind   Kind
	oracle Oracle

	// stack holds the node and its ancestors, outermost first.
	// Empty for views built from type objects and for packages.
	stack []ast.Node

	name *ast.Ident      // parameter name
	tn   *types.TypeName // type views
	pkg  *types.Package  // package views
}

// New builds a View over the last node of stack. stack must hold the node
// and its ancestors, outermost first, as produced by inspector.WithStack.
func New(o Oracle, stack []ast.Node) (*View, error) {
	if len(stack) == 0 {
		return nil, fmt.Errorf("%w: empty stack", ErrUnsupportedDeclaration)
	}

	v := &View{oracle: o, stack: stack}

	switch n := stack[len(stack)-1].(type) {
	case *ast.Field:
		switch container := ancestor(stack, 2).(type) {
		case *ast.StructType:
			v.kind = KindField
		case *ast.FuncType:
			if ancestor(stack, 1) != container.Params {
				return nil, fmt.Errorf("%w: %T outside parameter list", ErrUnsupportedDeclaration, n)
			}
			v.kind = KindParam
			if len(n.Names) == 1 {
				v.name = n.Names[0]
			}
		case *ast.InterfaceType:
			if _, ok := n.Type.(*ast.FuncType); !ok || len(n.Names) != 1 {
				return nil, fmt.Errorf("%w: embedded %T in interface", ErrUnsupportedDeclaration, n)
			}
			v.kind = KindFunc
		default:
			return nil, fmt.Errorf("%w: %T in %T", ErrUnsupportedDeclaration, n, container)
		}

	case *ast.ValueSpec:
		v.kind = KindVar
		if inFunction(stack) {
			v.kind = KindLocal
		}

	case *ast.AssignStmt:
		if n.Tok != token.DEFINE {
			return nil, fmt.Errorf("%w: %T with %s", ErrUnsupportedDeclaration, n, n.Tok)
		}
		v.kind = KindLocal

	case *ast.FuncDecl:
		v.kind = KindFunc

	case *ast.TypeSpec:
		v.kind = KindType
		tn, _ := o.ObjectOf(n.Name).(*types.TypeName)
		v.tn = tn

	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedDeclaration, n)
	}

	return v, nil
}

// NewParam builds a parameter View for one name of a multi-name parameter
// field such as "a, b *lib.Client". stack must end with the *ast.Field.
func NewParam(o Oracle, stack []ast.Node, name *ast.Ident) (*View, error) {
	v, err := New(o, stack)
	if err != nil {
		return nil, err
	}
	if v.kind != KindParam {
		return nil, fmt.Errorf("%w: %s is not a parameter", ErrUnsupportedDeclaration, v.kind)
	}

	v.name = name
	return v, nil
}

// NewType builds a View over a declared type.
func NewType(o Oracle, tn *types.TypeName) *View {
	return &View{kind: KindType, oracle: o, tn: tn}
}

// NewPackage builds a View over a package.
func NewPackage(o Oracle, pkg *types.Package) *View {
	return &View{kind: KindPackage, oracle: o, pkg: pkg}
}

// Kind returns the declaration shape.
func (v *View) Kind() Kind {
	return v.kind
}

// Node returns the declaration node, or nil for type object and package views.
func (v *View) Node() ast.Node {
	if len(v.stack) == 0 {
		return nil
	}
	return v.stack[len(v.stack)-1]
}

// Stack returns the node and its ancestors.
func (v *View) Stack() []ast.Node {
	return v.stack
}

// Identifier returns the single name the declaration declares.
// Embedded struct fields are named after their type.
func (v *View) Identifier() (*ast.Ident, error) {
	var id *ast.Ident

	switch v.kind {
	case KindField:
		f := v.Node().(*ast.Field)
		switch len(f.Names) {
		case 0:
			id = typeutil.EmbeddedName(f.Type)
		case 1:
			id = f.Names[0]
		}

	case KindVar, KindLocal:
		switch n := v.Node().(type) {
		case *ast.ValueSpec:
			if len(n.Names) == 1 {
				id = n.Names[0]
			}
		case *ast.AssignStmt:
			if len(n.Lhs) == 1 {
				id, _ = n.Lhs[0].(*ast.Ident)
			}
		}

	case KindFunc:
		switch n := v.Node().(type) {
		case *ast.FuncDecl:
			id = n.Name
		case *ast.Field:
			id = n.Names[0]
		}

	case KindParam:
		id = v.name

	case KindType:
		if spec, ok := v.Node().(*ast.TypeSpec); ok {
			id = spec.Name
		}
	}

	if id == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoIdentifier, v.kind)
	}
	return id, nil
}

// Object returns the object the declaration defines, or nil.
func (v *View) Object() types.Object {
	switch v.kind {
	case KindType:
		if v.tn != nil {
			return v.tn
		}
	case KindPackage:
		return nil
	}

	id, err := v.Identifier()
	if err != nil {
		return nil
	}
	return v.oracle.ObjectOf(id)
}

// DeclaredType returns the type of the declaration: the variable, field or
// parameter type, or the first result of a function. Returns nil when the
// type is unknown.
func (v *View) DeclaredType() types.Type {
	switch v.kind {
	case KindField:
		return v.oracle.TypeOf(v.Node().(*ast.Field).Type)

	case KindParam:
		t := v.Node().(*ast.Field).Type
		if ell, ok := t.(*ast.Ellipsis); ok {
			t = ell.Elt
		}
		return v.oracle.TypeOf(t)

	case KindVar, KindLocal:
		if spec, ok := v.Node().(*ast.ValueSpec); ok && spec.Type != nil {
			return v.oracle.TypeOf(spec.Type)
		}
		if obj := v.Object(); obj != nil {
			return obj.Type()
		}

	case KindFunc:
		if results := v.Results(); len(results) > 0 {
			return results[0]
		}

	case KindType:
		if v.tn != nil {
			return v.tn.Type()
		}
	}

	return nil
}

// Results returns the result types of a function view.
func (v *View) Results() []types.Type {
	sig := v.signature()
	if sig == nil || sig.Results == nil {
		return nil
	}

	var out []types.Type
	for _, field := range sig.Results.List {
		t := v.oracle.TypeOf(field.Type)
		n := max(len(field.Names), 1)
		for range n {
			out = append(out, t)
		}
	}
	return out
}

// Initializer returns the single initializer of a variable declaration.
func (v *View) Initializer() ast.Expr {
	switch n := v.Node().(type) {
	case *ast.ValueSpec:
		if len(n.Names) == 1 && len(n.Values) == 1 {
			return n.Values[0]
		}
	case *ast.AssignStmt:
		if len(n.Lhs) == 1 && len(n.Rhs) == 1 {
			return n.Rhs[0]
		}
	}
	return nil
}

// Annotations returns the annotations attached directly to the declaration.
func (v *View) Annotations() []marker.Annotation {
	if v.kind == KindPackage {
		return v.oracle.PackageAnnotations(v.pkg)
	}
	return v.oracle.Annotations(v.Object())
}

// Package returns the package the declaration belongs to.
func (v *View) Package() *types.Package {
	switch {
	case v.pkg != nil:
		return v.pkg
	case v.tn != nil && v.tn.Pkg() != nil:
		return v.tn.Pkg()
	}
	return v.oracle.Package()
}

// PackageView returns a View over the package the declaration belongs to.
func (v *View) PackageView() *View {
	return NewPackage(v.oracle, v.Package())
}

// Label names the declaration kind in diagnostics.
func (v *View) Label() string {
	switch v.kind {
	case KindField:
		return "Field"
	case KindVar, KindLocal:
		return "Variable"
	case KindParam:
		return "Parameter"
	case KindFunc:
		switch n := v.Node().(type) {
		case *ast.FuncDecl:
			if n.Recv != nil {
				return "Method"
			}
		case *ast.Field:
			return "Method"
		}
		return "Function"
	case KindType:
		return "Type"
	case KindPackage:
		return "Package"
	}
	return v.kind.String()
}

// Parent returns a new View over the enclosing declaration:
//
//	field        → enclosing type, else enclosing function, else package
//	var          → package
//	local        → enclosing function, else enclosing package-level var
//	param        → enclosing function
//	method       → receiver type
//	iface method → enclosing type
//	func         → package
//	type         → enclosing function for local types, else package
//	package      → ErrNoParent
func (v *View) Parent() (*View, error) {
	switch v.kind {
	case KindField:
		if i := enclosingDeclIndex(v.stack); i >= 0 {
			return New(v.oracle, v.stack[:i+1])
		}

	case KindLocal:
		if i := enclosingFuncIndex(v.stack); i >= 0 {
			return New(v.oracle, v.stack[:i+1])
		}
		// A function literal in a package-level initializer.
		for i := len(v.stack) - 2; i >= 0; i-- {
			if _, ok := v.stack[i].(*ast.ValueSpec); ok {
				return New(v.oracle, v.stack[:i+1])
			}
		}

	case KindParam:
		if i := enclosingFuncIndex(v.stack); i >= 0 {
			return New(v.oracle, v.stack[:i+1])
		}

	case KindFunc:
		if tn := v.receiver(); tn != nil {
			return NewType(v.oracle, tn), nil
		}
		if _, ok := v.Node().(*ast.Field); ok {
			if i := enclosingDeclIndex(v.stack); i >= 0 {
				return New(v.oracle, v.stack[:i+1])
			}
		}

	case KindType:
		if i := enclosingFuncIndex(v.stack); i >= 0 {
			return New(v.oracle, v.stack[:i+1])
		}
		if v.tn != nil && v.tn.Pkg() != nil {
			return NewPackage(v.oracle, v.tn.Pkg()), nil
		}

	case KindPackage:
		return nil, ErrNoParent
	}

	return NewPackage(v.oracle, v.Package()), nil
}

// receiver returns the base type name of a method receiver.
func (v *View) receiver() *types.TypeName {
	fd, ok := v.Node().(*ast.FuncDecl)
	if !ok || fd.Recv == nil || len(fd.Recv.List) != 1 {
		return nil
	}
	return typeutil.TypeNameOf(v.oracle.TypeOf(fd.Recv.List[0].Type))
}

// signature returns the function type of a function or interface method.
func (v *View) signature() *ast.FuncType {
	if v.kind != KindFunc {
		return nil
	}
	switch n := v.Node().(type) {
	case *ast.FuncDecl:
		return n.Type
	case *ast.Field:
		ft, _ := n.Type.(*ast.FuncType)
		return ft
	}
	return nil
}

// ancestor returns the node depth levels above the last node of stack.
func ancestor(stack []ast.Node, depth int) ast.Node {
	i := len(stack) - 1 - depth
	if i < 0 {
		return nil
	}
	return stack[i]
}

func inFunction(stack []ast.Node) bool {
	for _, n := range stack[:len(stack)-1] {
		switch n.(type) {
		case *ast.FuncDecl, *ast.FuncLit:
			return true
		}
	}
	return false
}

// enclosingDeclIndex finds the nearest TypeSpec or FuncDecl above the last node.
func enclosingDeclIndex(stack []ast.Node) int {
	for i := len(stack) - 2; i >= 0; i-- {
		switch stack[i].(type) {
		case *ast.TypeSpec, *ast.FuncDecl:
			return i
		}
	}
	return -1
}

// enclosingFuncIndex finds the nearest FuncDecl above the last node.
// Function literals belong to the declaration that contains them.
func enclosingFuncIndex(stack []ast.Node) int {
	for i := len(stack) - 2; i >= 0; i-- {
		if _, ok := stack[i].(*ast.FuncDecl); ok {
			return i
		}
	}
	return -1
}
