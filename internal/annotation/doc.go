// Package annotation collects marker directives into per-object
// annotations and shares them across packages as analysis facts.
//
// # Sources
//
// Annotations of an object come from, in order:
//
//  1. Directives on its declaration when it belongs to the package under
//     analysis ([Build]).
//  2. An [ObjectFact] exported by the analysis of its own package.
//  3. External markers from configuration ([External]).
//
// Package annotations come from package doc comments, a [PackageFact], or
// an [ExternalPackage] entry.
//
// # Placement
//
//	//prerelease:Alpha
//	type Client struct {          // type: doc comment
//	    Retries int //prerelease:Preview    // field: trailing comment
//	}
//
//	func f() {
//	    //prerelease:Experimental
//	    c := newClient()          // short variable: line before or same line
//	}
//
// # Generic Code
//
// Methods and fields of instantiated generic types are mapped back to
// their origin before lookup, so annotating the generic declaration covers
// every instantiation.
package annotation
