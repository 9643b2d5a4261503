// Package prerelease provides a go/analysis based analyzer that reports
// uses of prerelease APIs from code that is not itself prerelease.
//
// # Markers
//
// An API is prerelease when its declaration, or the package doc comment
// of its package, carries a marker directive:
//
//	// Client talks to the v2 backend.
//	//
//	//prerelease:Alpha "until v2"
//	type Client struct{}
//
// The default markers are prerelease:Prerelease, prerelease:Alpha,
// prerelease:Experimental and prerelease:Preview. The -markers flag
// replaces the set. APIs of modules you do not own can be marked with
// -external and -external-packages.
//
// # Architecture Overview
//
//	                    +------------------+
//	                    |   analyzer.go    |  Entry point, facts
//	                    +--------+---------+
//	                             |
//	          +------------------+------------------+
//	          |                                     |
//	 +--------v---------+                 +---------v--------+
//	 | annotation.Index |  directives     |  checker.Checker |  rules
//	 | annotation.Lookup|  and facts      +---------+--------+
//	 +------------------+                           |
//	                             +------------------+------------------+
//	                             |                  |                  |
//	                      +------v-----+     +------v-----+     +------v-----+
//	                      |    decl    |     |   scope    |     |   usage    |
//	                      +------------+     +------------+     +------------+
//
// # Execution Flow
//
//  1. [config.Load] merges defaults, the -config file, PRERELEASE_*
//     environment variables and flags
//  2. [annotation.Build] indexes the directives of the package and
//     [annotation.Export] shares them with importers as facts
//  3. [checker.Checker.Run] walks fields, package variables, functions and
//     interface methods;
//     each one is wrapped in a [decl.View]
//  4. [scope.Classify] exempts declarations that are prerelease themselves
//  5. Findings that survive //prerelease:ignore and -disable are reported
//     with their code as the category
//
// # Diagnostic Codes
//
//	EA0100  declaration instantiates a prerelease type
//	EA0101  initializer uses a prerelease member
//	EA0102  declaration instantiates a type of a prerelease package
//	EA0103  function returns a prerelease type
//	EA0104  function returns a type of a prerelease package
package prerelease
