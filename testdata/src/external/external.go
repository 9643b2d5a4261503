// Package external contains test fixtures for APIs marked through configuration.
// The test runs with -external=strings.Builder,strings.ToUpper and
// -external-packages=text/tabwriter.
package external

import (
	"strings"
	"text/tabwriter"
)

// ===== SHOULD REPORT =====

// [BAD]: External type
var sb strings.Builder // want `Variable name 'sb' instantiates prerelease type 'strings.Builder'`

// [BAD]: External function
var upper = strings.ToUpper("x") // want `Variable name 'upper' uses prerelease member 'strings.ToUpper'`

// [BAD]: Type of an external package
var tw tabwriter.Writer // want `Variable name 'tw' instantiates type 'text/tabwriter.Writer' in prerelease package`

// [BAD]: Function returning an external type
func newBuilder() *strings.Builder { // want `Method name 'newBuilder' returns prerelease type 'strings.Builder'`
	return nil
}

// ===== SHOULD NOT REPORT =====

// [GOOD]: Unlisted function
var lower = strings.ToLower("X")

// [GOOD]: Unlisted type
var reader strings.Reader
