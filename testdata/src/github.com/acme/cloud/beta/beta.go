// Package beta marks its APIs with a custom directive.
package beta

// Feed streams events.
//
//acme:Beta
type Feed struct{}

// Legacy uses the default marker set.
//
//prerelease:Alpha
type Legacy struct{}

// Poll is a custom-marked function.
//
//acme:Beta
func Poll() int { return 0 }
