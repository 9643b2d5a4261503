// Package prereleasepkg is a prerelease package using prerelease APIs. // want package:`package\(prerelease:Alpha\)`
//
//prerelease:Alpha
package prereleasepkg

import (
	"github.com/acme/cloud/alpha"
)

// ===== SHOULD NOT REPORT =====

// [GOOD]: Package variable in a prerelease package
var client alpha.Client

// [GOOD]: Field of an unmarked type in a prerelease package
//
// Unmarked types take the marker of their package.
type Holder struct {
	c alpha.Client
}

// [GOOD]: Method of an unmarked type in a prerelease package
func (h Holder) Get() alpha.Client {
	return h.c
}

// [GOOD]: Function in a prerelease package
func Open(c alpha.Client) *alpha.Client {
	return &c
}

// ===== LIMITATIONS =====

// [LIMITATION]: Locals look one level up only
//
// The enclosing function is not marked and the package is two levels up.
func build() {
	c := alpha.Client{} // want `Variable name 'c' instantiates prerelease type 'github.com/acme/cloud/alpha.Client'`
	_ = c
}
