// Package directive provides directive parsing for prerelease.
//
// # Overview
//
// Go has no attributes, so prerelease markers are written as comment
// directives, in the same style as //go:build or //nolint:
//
//	//<namespace>:<Name> [message]
//
// The built-in markers live in the "prerelease" namespace:
//
//	//prerelease:Prerelease
//	//prerelease:Alpha "until the v2 API settles"
//	//prerelease:Experimental
//	//prerelease:Preview
//
// Any other namespace can be registered through the -markers flag.
//
// # Placement
//
// A marker applies to the declaration whose doc comment holds it:
//
//	//prerelease:Alpha
//	type Client struct {
//	    //prerelease:Preview
//	    Retries int
//	}
//
// A marker in the package doc comment (the comment right above the
// package clause) marks the whole package:
//
//	// Package v2 is the next generation API.
//	//
//	//prerelease:Preview
//	package v2
//
// Short variable declarations have no doc comment; for those the directive
// is read from the previous line or the end of the same line:
//
//	//prerelease:Experimental
//	c := NewCache()
//
// # Ignore Directive
//
// Suppresses diagnostics for the next line or same line:
//
//	//prerelease:ignore
//	var c = v2.NewClient() // No warning
//
//	var c = v2.NewClient() //prerelease:ignore EA0101 - migrating next sprint
//
// See [ignore] package for details.
package directive
