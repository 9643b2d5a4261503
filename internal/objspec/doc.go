// Package objspec parses object specifications from configuration and
// matches them against [types.Object] values.
//
// # Specification Format
//
//	pkg/path.Name           # package-level type, func, var or const
//	pkg/path.Type.Member    # method or struct field
//
// Examples:
//
//	github.com/acme/sdk/v2.Client
//	github.com/acme/sdk/v2.Client.Stream
//	gopkg.in/yaml.v3.Node.Encode
//
// # Parsing Heuristic
//
// Go type names are usually exported, so a second-to-last component
// starting with an uppercase letter is taken as a type name. Dots inside
// the last path element (yaml.v3) never start a type name.
//
// # Matching
//
// [Spec.Matches] compares the package path and name, then requires the
// owner from [typeutil.Owner] to agree with TypeName: a spec without a type
// name only matches objects without an owner.
package objspec
