// Package disable contains test fixtures for disabled diagnostic codes.
// The test runs with -disable=EA0101,EA0103.
package disable

import (
	"github.com/acme/cloud/alpha"
)

// [GOOD]: Member use is disabled
var retries = alpha.DefaultRetries

// [GOOD]: Return type is disabled
func open() *alpha.Client {
	return nil
}

// [BAD]: Other codes are still reported
var client alpha.Client // want `Variable name 'client' instantiates prerelease type 'github.com/acme/cloud/alpha.Client'`

// [BAD]: Ignoring a disabled code
//
// A disabled code is never reported, so the directive can never be used.
//
//prerelease:ignore EA0101 // want `unused prerelease:ignore directive for code\(s\): EA0101`
var again = alpha.DefaultRetries
