// Package custommarkers contains test fixtures for a custom marker set.
// The test runs with -markers=acme:Beta.
package custommarkers

import (
	"github.com/acme/cloud/beta"
)

// ===== SHOULD REPORT =====

// [BAD]: Type with a custom marker
var feed beta.Feed // want `Variable name 'feed' instantiates prerelease type 'github.com/acme/cloud/beta.Feed'`

// [BAD]: Function with a custom marker
var polled = beta.Poll() // want `Variable name 'polled' uses prerelease member 'github.com/acme/cloud/beta.Poll'`

// [BAD]: Default markers no longer create a context
//
//prerelease:Alpha
var stillReported beta.Feed // want `Variable name 'stillReported' instantiates prerelease type 'github.com/acme/cloud/beta.Feed'`

// ===== SHOULD NOT REPORT =====

// [GOOD]: Default markers are not registered
var legacy beta.Legacy

// [GOOD]: Custom marker context
//
//acme:Beta
var exempt beta.Feed // want exempt:`annotated\(acme:Beta\)`
