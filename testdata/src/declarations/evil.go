package declarations

import (
	"github.com/acme/cloud/alpha"
)

// ===== ADVERSARIAL PATTERNS =====

// [BAD]: Embedded prerelease type
//
// An embedded field is named after its type.
type Embeds struct {
	alpha.Client // want `Field name 'Client' instantiates prerelease type 'github.com/acme/cloud/alpha.Client'`
}

// [BAD]: Embedded pointer to a prerelease type
type EmbedsPointer struct {
	*alpha.Client // want `Field name 'Client' instantiates prerelease type 'github.com/acme/cloud/alpha.Client'`
}

type clientAlias = alpha.Client

// [BAD]: Alias of a prerelease type
//
// Aliases resolve to the aliased declaration.
var aliased clientAlias // want `Variable name 'aliased' instantiates prerelease type 'github.com/acme/cloud/alpha.Client'`

// [BAD]: Grouped declarations
//
// Each spec of a group is its own declaration.
var (
	grouped1 alpha.Client // want `Variable name 'grouped1' instantiates prerelease type 'github.com/acme/cloud/alpha.Client'`
	grouped2 alpha.Options
)

// [BAD]: Local inside a closure
//
// Function literals belong to the enclosing function.
func insideClosure() {
	run := func() {
		c := alpha.Client{} // want `Variable name 'c' instantiates prerelease type 'github.com/acme/cloud/alpha.Client'`
		_ = c
	}
	run()
}

// [BAD]: Parenthesized composite literal
var parens any = (&alpha.Client{}) // want `Variable name 'parens' instantiates prerelease type 'github.com/acme/cloud/alpha.Client'`

// ===== LIMITATIONS =====

// [LIMITATION]: Multiple names in one spec
//
// Declarations without exactly one name are skipped.
var multi1, multi2 alpha.Client

// [LIMITATION]: Multiple names in one assignment
func multiAssign() {
	a, b := alpha.Client{}, alpha.Client{}
	_, _ = a, b
}

// [LIMITATION]: Composite types
//
// Only named types are checked; slices, maps and channels are not unwrapped.
var clients []alpha.Client

// [LIMITATION]: Unnamed parameter
func unnamedParam(alpha.Client) {}

// [LIMITATION]: Plain assignment
//
// Only declarations are checked.
func plainAssign() {
	var x any
	x = alpha.Client{}
	_ = x
}

// [LIMITATION]: Interface method parameters
//
// Only the results of interface methods are checked.
type Sink interface {
	Put(c alpha.Client)
}
