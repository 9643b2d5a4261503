// Package ignore provides //prerelease:ignore directive parsing.
//
// # Overview
//
// The ignore directive suppresses prerelease diagnostics for specific
// lines or specific diagnostic codes.
//
// # Directive Placement
//
// The directive can appear on the line before or the same line:
//
//	//prerelease:ignore
//	var c = v2.NewClient()  // Warning suppressed
//
//	var c = v2.NewClient()  //prerelease:ignore  // Also works
//
// # Code-Specific Ignores
//
// Specify codes to ignore only specific diagnostics:
//
//	//prerelease:ignore EA0101
//	var r = v2.DefaultRetries  // Only member use ignored
//
//	//prerelease:ignore EA0100,EA0102 - tracked in the migration plan
//	func open(c *v2.Client) {}
//
// # Valid Codes
//
//	┌────────┬──────────────────────────────────────────────┐
//	│ Code   │ Description                                  │
//	├────────┼──────────────────────────────────────────────┤
//	│ EA0100 │ declaration uses a prerelease type           │
//	│ EA0101 │ initializer uses a prerelease member         │
//	│ EA0102 │ declaration uses a type of a prerelease pkg  │
//	│ EA0103 │ function returns a prerelease type           │
//	│ EA0104 │ function returns a type of a prerelease pkg  │
//	└────────┴──────────────────────────────────────────────┘
//
// # Unused Ignore Detection
//
// The package tracks which ignore directives are used and reports
// unused ones as warnings:
//
//	//prerelease:ignore  // Warning: unused ignore directive
//	var n int            // No warning to suppress
package ignore
