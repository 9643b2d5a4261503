// Package typeutil provides type helpers shared by the declaration facade
// and the checker.
//
// # Type Names
//
// [TypeNameOf] resolves the declared type behind a [types.Type]:
//
//	*lib.Client        → lib.Client
//	lib.Alias          → the aliased named type
//	lib.Box[int]       → lib.Box (the generic origin)
//	[]lib.Client, int  → nil
//
// Only one pointer level is unwrapped, matching how a declaration of type
// *T is considered a use of T.
//
// # Qualified Names
//
// [QualifiedName] renders objects the way diagnostics print them:
//
//	example.com/lib.Client           type
//	example.com/lib.NewClient        function
//	example.com/lib.Client.Do        method
//	example.com/lib.Options.Retries  struct field
//
// [Owner] finds the type a method or field belongs to. Fields are matched
// by scanning the package scope, so fields of function-local or unnamed
// struct types render without an owner.
package typeutil
