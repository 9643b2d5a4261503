// Package marker holds the set of directive names that flag an API as prerelease.
package marker

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Identity is the fully qualified name of a marker directive.
// Format: "namespace:Name" (e.g., "prerelease:Alpha").
type Identity string

// Default marker identities.
const (
	Prerelease   Identity = "prerelease:Prerelease"
	Alpha        Identity = "prerelease:Alpha"
	Experimental Identity = "prerelease:Experimental"
	Preview      Identity = "prerelease:Preview"
)

// Reserved is the directive name used for ignore comments; it can never be a marker.
const Reserved Identity = "prerelease:ignore"

// ErrInvalidIdentity is returned when a marker identity is malformed.
var ErrInvalidIdentity = errors.New("invalid marker identity")

// Namespace returns the part before the colon.
func (id Identity) Namespace() string {
	ns, _, _ := strings.Cut(string(id), ":")
	return ns
}

// Name returns the part after the colon.
func (id Identity) Name() string {
	_, name, _ := strings.Cut(string(id), ":")
	return name
}

// Validate checks the "namespace:Name" shape.
func (id Identity) Validate() error {
	ns, name, ok := strings.Cut(string(id), ":")
	if !ok || ns == "" || name == "" {
		return fmt.Errorf("%w: %q: want namespace:Name", ErrInvalidIdentity, id)
	}
	if !isWord(ns) || !isWord(name) {
		return fmt.Errorf("%w: %q: unexpected character", ErrInvalidIdentity, id)
	}
	if id == Reserved {
		return fmt.Errorf("%w: %q is reserved", ErrInvalidIdentity, id)
	}
	return nil
}

// isWord reports whether s only holds letters, digits, '_', '-' or '.'.
func isWord(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-' || r == '.' {
			continue
		}
		return false
	}
	return true
}

// Annotation is a directive attached to a declaration.
type Annotation struct {
	Marker  Identity
	Message string // optional payload, empty when absent
}
