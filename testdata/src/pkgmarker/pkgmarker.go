// Package pkgmarker contains test fixtures for packages marked as a whole.
package pkgmarker

import (
	"github.com/acme/cloud/preview"
)

// ===== SHOULD REPORT =====

// [BAD]: Variable of a type in a prerelease package
var settings preview.Settings // want `Variable name 'settings' instantiates type 'github.com/acme/cloud/preview.Settings' in prerelease package`

// [BAD]: Marked type in a prerelease package
//
// The type's own marker is reported before its package marker.
var beta preview.Beta // want `Variable name 'beta' instantiates prerelease type 'github.com/acme/cloud/preview.Beta'`

// [BAD]: Field of a type in a prerelease package
type Config struct {
	s preview.Settings // want `Field name 's' instantiates type 'github.com/acme/cloud/preview.Settings' in prerelease package`
}

// [BAD]: Function returning a type of a prerelease package
func loadSettings() *preview.Settings { // want `Method name 'loadSettings' returns type 'github.com/acme/cloud/preview.Settings' in prerelease package`
	return nil
}

// [BAD]: Local created from a prerelease package
func localSettings() {
	s := &preview.Settings{} // want `Variable name 's' instantiates type 'github.com/acme/cloud/preview.Settings' in prerelease package`
	_ = s
}

// ===== SHOULD NOT REPORT =====

// [GOOD]: Unmarked member of a prerelease package
//
// Member use only looks at the member itself.
var level = preview.Level

// [GOOD]: Prerelease function using a prerelease package
//
//prerelease:Preview
func previewOnly() preview.Settings { // want previewOnly:`annotated\(prerelease:Preview\)`
	return preview.Settings{}
}
