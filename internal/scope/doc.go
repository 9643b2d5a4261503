// Package scope decides whether a declaration site is itself prerelease.
//
// # Overview
//
// Code that is already marked prerelease may use other prerelease APIs
// freely. [Classify] checks the declaration and exactly one enclosing
// declaration for a registered marker:
//
//	//prerelease:Alpha
//	type Client struct {
//	    conn *v2.Conn    // exempt: the enclosing type is marked
//	}
//
//	//prerelease:Preview
//	func open() *v2.Conn { // exempt: the function itself is marked
//	    ...
//	}
//
// # Enclosing Declarations
//
//	struct field    → type, or function for fields of unnamed structs
//	package var     → package
//	local variable  → function
//	parameter       → function (the walk starts there)
//	method          → receiver type
//	function, type  → package
//
// # Package Markers
//
// A type declaration without annotations of its own inherits the markers
// of its package doc comment, at either level of the walk. Other
// declarations see package markers only when their parent is the package:
//
//	//prerelease:Preview
//	package preview
//
//	type Client struct {
//	    conn *v2.Conn    // exempt: Client inherits the package marker
//	}
//
//	func open() {
//	    var c *v2.Conn   // reported: open is not marked
//	}
//
// # Depth
//
// The walk never goes beyond the parent, so a local variable in an
// unmarked method of a marked type is still reported.
package scope
