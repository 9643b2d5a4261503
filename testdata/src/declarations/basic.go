// Package declarations contains test fixtures for the prerelease checker.
// This file covers basic/daily patterns - fields, variables, results, locals, parameters.
// See context.go for prerelease contexts, ignore.go for ignore directives and
// evil.go for adversarial tests.
package declarations

import (
	"github.com/acme/cloud/alpha"
)

// ===== SHOULD REPORT =====

// [BAD]: Struct field of a prerelease type
//
// Fields report the marked type they hold, through pointers too.
type Holder struct {
	c alpha.Client  // want `Field name 'c' instantiates prerelease type 'github.com/acme/cloud/alpha.Client'`
	p *alpha.Client // want `Field name 'p' instantiates prerelease type 'github.com/acme/cloud/alpha.Client'`
	o alpha.Options
}

// [BAD]: Package variable of a prerelease type
//
// The declared type is checked first.
var client alpha.Client // want `Variable name 'client' instantiates prerelease type 'github.com/acme/cloud/alpha.Client'`

// [BAD]: Package variable constructed by a prerelease function
//
// The declared type wins over the member that produced it.
var made = alpha.NewClient() // want `Variable name 'made' instantiates prerelease type 'github.com/acme/cloud/alpha.Client'`

// [BAD]: Creation hidden behind an interface
//
// The declared type is unnamed, so the constructed type is checked.
var anyClient any = alpha.Client{} // want `Variable name 'anyClient' instantiates prerelease type 'github.com/acme/cloud/alpha.Client'`

// [BAD]: new of a prerelease type
var anyNew any = new(alpha.Client) // want `Variable name 'anyNew' instantiates prerelease type 'github.com/acme/cloud/alpha.Client'`

// [BAD]: Prerelease variable
var retries = alpha.DefaultRetries // want `Variable name 'retries' uses prerelease member 'github.com/acme/cloud/alpha.DefaultRetries'`

// [BAD]: Prerelease constant
var version = alpha.Version // want `Variable name 'version' uses prerelease member 'github.com/acme/cloud/alpha.Version'`

// [BAD]: Call of a prerelease function returning a stable type
var conn = alpha.Connect() // want `Variable name 'conn' uses prerelease member 'github.com/acme/cloud/alpha.Connect'`

// [BAD]: Generic prerelease type
//
// Instantiations are reported under their generic declaration.
var box alpha.Box[int] // want `Variable name 'box' instantiates prerelease type 'github.com/acme/cloud/alpha.Box'`

// [BAD]: Function returning a prerelease type
func openClient() *alpha.Client { // want `Method name 'openClient' returns prerelease type 'github.com/acme/cloud/alpha.Client'`
	return nil
}

// [BAD]: Method returning a prerelease type
func (h *Holder) Current() alpha.Client { // want `Method name 'Current' returns prerelease type 'github.com/acme/cloud/alpha.Client'`
	return h.c
}

// [BAD]: Second result is prerelease
func pairResults() (*alpha.Options, *alpha.Client) { // want `Method name 'pairResults' returns prerelease type 'github.com/acme/cloud/alpha.Client'`
	return nil, nil
}

// [BAD]: Only the first prerelease result is reported
func twoResults() (alpha.Client, alpha.Box[string]) { // want `Method name 'twoResults' returns prerelease type 'github.com/acme/cloud/alpha.Client'`
	return alpha.Client{}, alpha.Box[string]{}
}

// [BAD]: Local created from a composite literal
func localComposite() {
	c := alpha.Client{} // want `Variable name 'c' instantiates prerelease type 'github.com/acme/cloud/alpha.Client'`
	_ = c
}

// [BAD]: Local var declaration
func localVarSpec() {
	var c alpha.Client // want `Variable name 'c' instantiates prerelease type 'github.com/acme/cloud/alpha.Client'`
	_ = c
}

// [BAD]: Local reading a prerelease variable
func localMember() {
	n := alpha.DefaultRetries // want `Variable name 'n' uses prerelease member 'github.com/acme/cloud/alpha.DefaultRetries'`
	_ = n
}

// [BAD]: Local calling a prerelease method
func localMethodCall() {
	opts := alpha.Options{}
	t := opts.Tune() // want `Variable name 't' uses prerelease member 'github.com/acme/cloud/alpha.Options.Tune'`
	_ = t
}

// [BAD]: Only the first prerelease local is reported
func firstLocalOnly() {
	a := alpha.Client{} // want `Variable name 'a' instantiates prerelease type 'github.com/acme/cloud/alpha.Client'`
	b := alpha.Client{}
	_, _ = a, b
}

// [BAD]: Parameter of a prerelease type
func takesClient(c *alpha.Client) { // want `Parameter name 'c' instantiates prerelease type 'github.com/acme/cloud/alpha.Client'`
	_ = c
}

// [BAD]: Only the first prerelease parameter is reported
func firstParamOnly(a, b alpha.Client) { // want `Parameter name 'a' instantiates prerelease type 'github.com/acme/cloud/alpha.Client'`
}

// [BAD]: Variadic parameter
func variadic(cs ...alpha.Client) { // want `Parameter name 'cs' instantiates prerelease type 'github.com/acme/cloud/alpha.Client'`
}

// [BAD]: Results, locals and parameters are independent
//
// Each phase reports its own first finding.
func allPhases(in alpha.Client) alpha.Client { // want `Method name 'allPhases' returns prerelease type 'github.com/acme/cloud/alpha.Client'` `Parameter name 'in' instantiates prerelease type 'github.com/acme/cloud/alpha.Client'`
	out := in // want `Variable name 'out' instantiates prerelease type 'github.com/acme/cloud/alpha.Client'`
	return out
}

// [BAD]: Interface method returning a prerelease type
//
// Interface methods are declarations of their interface.
type Source interface {
	Next() (*alpha.Client, error) // want `Method name 'Next' returns prerelease type 'github.com/acme/cloud/alpha.Client'`
	Close() error
}

// [BAD]: Local in a closure of a package variable
var handler = func() {
	c := alpha.Client{} // want `Variable name 'c' instantiates prerelease type 'github.com/acme/cloud/alpha.Client'`
	_ = c
}

// ===== SHOULD NOT REPORT =====

// [GOOD]: Stable types and members
var stable = alpha.Stable()

// [GOOD]: Stable field of a prerelease type
//
// Reading a field is not a member use unless the field is marked.
var addr = client.Addr

// [GOOD]: Function with stable signature and body
func stableFunc(o *alpha.Options) int {
	r := o.Retries
	return r
}
