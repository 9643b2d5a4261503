package declarations

import (
	"github.com/acme/cloud/alpha"
)

// ===== IGNORE DIRECTIVES =====

// [GOOD]: Ignore directive - previous line
//
//prerelease:ignore
var ignored alpha.Client

// [GOOD]: Ignore directive - same line
var ignoredSameLine alpha.Client //prerelease:ignore

// [GOOD]: Ignore directive - code-specific with reason
//
//prerelease:ignore EA0101 - tracked in the migration plan
var ignoredByCode = alpha.DefaultRetries

// [GOOD]: Ignore directive - parameter
func ignoredParam(c alpha.Client) { //prerelease:ignore EA0100
}

// [GOOD]: Ignore directive - return type
func ignoredResult() *alpha.Client { //prerelease:ignore EA0103
	return nil
}

// [BAD]: Ignore directive - unused code-specific
//
// Ignoring an unrelated code does not suppress other diagnostics.
func wrongCode() {
	//prerelease:ignore EA0101 // want `unused prerelease:ignore directive for code\(s\): EA0101`
	c := alpha.Client{} // want `Variable name 'c' instantiates prerelease type 'github.com/acme/cloud/alpha.Client'`
	_ = c
}

// [BAD]: Ignore directive - completely unused
//
// An ignore directive that doesn't suppress any diagnostic is reported as unused.
func nothingToIgnore() {
	//prerelease:ignore // want `unused prerelease:ignore directive`
	o := alpha.Options{}
	_ = o
}
