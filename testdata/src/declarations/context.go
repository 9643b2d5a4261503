package declarations

import (
	"github.com/acme/cloud/alpha"
)

// ===== PRERELEASE CONTEXT =====

// [GOOD]: Prerelease variable
//
// A marked declaration may use prerelease APIs.
//
//prerelease:Alpha
var alphaClient alpha.Client // want alphaClient:`annotated\(prerelease:Alpha\)`

// [GOOD]: Field of a prerelease type
//
// Fields look at their enclosing type.
//
//prerelease:Preview
type Wrapper struct { // want Wrapper:`annotated\(prerelease:Preview\)`
	c alpha.Client
}

// [GOOD]: Method of a prerelease type
//
// Methods look at their receiver type.
func (w *Wrapper) Inner() alpha.Client {
	return w.c
}

// [GOOD]: Prerelease function
//
// Results, locals and parameters all look at the function.
//
//prerelease:Experimental "new connection flow"
func experimental(c alpha.Client) alpha.Client { // want experimental:`annotated\(prerelease:Experimental\)`
	local := c
	return local
}

// [GOOD]: Marked local
func annotatedLocal() {
	//prerelease:Alpha
	c := alpha.Client{}
	_ = c
}

// [GOOD]: Closure in a prerelease variable
//
// Locals of an initializer look at the variable.
//
//prerelease:Alpha
var alphaHandler = func() { // want alphaHandler:`annotated\(prerelease:Alpha\)`
	c := alpha.Client{}
	_ = c
}

// [GOOD]: Interface method of a prerelease type
//
//prerelease:Preview
type PreviewSource interface { // want PreviewSource:`annotated\(prerelease:Preview\)`
	Next() alpha.Client
}

// [GOOD]: Marked field
type Partial struct {
	//prerelease:Alpha
	c alpha.Client // want c:`annotated\(prerelease:Alpha\)`
	d alpha.Options
}

// ===== CONTEXT LIMITS =====

// [BAD]: Unmarked field next to a marked one
type Mixed struct {
	//prerelease:Alpha
	c alpha.Client // want c:`annotated\(prerelease:Alpha\)`
	d alpha.Client // want `Field name 'd' instantiates prerelease type 'github.com/acme/cloud/alpha.Client'`
}

// [BAD]: Locals look one level up only
//
// The method is not marked, so its marked receiver type is never consulted.
func (w *Wrapper) rebuild() {
	c := alpha.Client{} // want `Variable name 'c' instantiates prerelease type 'github.com/acme/cloud/alpha.Client'`
	w.c = c
}

// [BAD]: Unregistered directive
//
// Directives outside the marker set do not create a prerelease context.
//
//other:Alpha
var notAMarker alpha.Client // want `Variable name 'notAMarker' instantiates prerelease type 'github.com/acme/cloud/alpha.Client'`

// [BAD]: Trailing directive on the line above
//
// A directive after code belongs to that code.
func trailingDirective() {
	a := 1 //prerelease:Alpha
	b := alpha.Client{} // want `Variable name 'b' instantiates prerelease type 'github.com/acme/cloud/alpha.Client'`
	_, _ = a, b
}
