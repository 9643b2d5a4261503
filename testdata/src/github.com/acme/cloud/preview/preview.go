// Package preview is a stub SDK that is prerelease as a whole.
//
//prerelease:Preview "feedback welcome"
package preview

// Settings holds connection settings.
type Settings struct {
	Endpoint string
}

// Beta carries its own marker.
//
//prerelease:Alpha
type Beta struct{}

// Level is unmarked.
var Level = 1
