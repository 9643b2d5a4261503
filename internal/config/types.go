// Package config loads analyzer configuration from defaults, a YAML file,
// PRERELEASE_* environment variables and flags.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/peteraritchie/prerelease/internal/annotation"
	"github.com/peteraritchie/prerelease/internal/marker"
	"github.com/peteraritchie/prerelease/internal/objspec"
	"github.com/peteraritchie/prerelease/internal/rule"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the analyzer configuration.
type Config struct {
	// Markers are the recognized marker identities, e.g. prerelease:Alpha.
	Markers []string `koanf:"markers"`

	// Disable lists diagnostic codes that are never reported.
	Disable []string `koanf:"disable"`

	// External marks APIs of packages that carry no directives.
	External ExternalConfig `koanf:"external"`

	Debug bool `koanf:"debug"`
}

// ExternalConfig holds configured markers.
type ExternalConfig struct {
	Objects  []ExternalObject  `koanf:"objects"`
	Packages []ExternalPackage `koanf:"packages"`
}

// ExternalObject marks one object: "pkg/path.Name" or "pkg/path.Type.Member".
type ExternalObject struct {
	Name    string `koanf:"name"`
	Marker  string `koanf:"marker"`
	Message string `koanf:"message"`
}

// ExternalPackage marks a whole package.
type ExternalPackage struct {
	Path    string `koanf:"path"`
	Marker  string `koanf:"marker"`
	Message string `koanf:"message"`
}

// ApplyDefaults normalizes list values and fills in unset ones. External
// entries without a marker get the first recognized marker.
func (c *Config) ApplyDefaults() {
	if c == nil {
		return
	}

	// Lists from the environment and flags arrive as one comma-separated
	// element.
	c.Markers = splitAll(c.Markers)
	c.Disable = splitAll(c.Disable)

	if len(c.Markers) == 0 {
		for _, id := range marker.Defaults() {
			c.Markers = append(c.Markers, string(id))
		}
	}

	fallback := c.Markers[0]
	for i := range c.External.Objects {
		if c.External.Objects[i].Marker == "" {
			c.External.Objects[i].Marker = fallback
		}
	}
	for i := range c.External.Packages {
		if c.External.Packages[i].Marker == "" {
			c.External.Packages[i].Marker = fallback
		}
	}
}

// Validate checks markers, codes and external entries.
func (c *Config) Validate() error {
	reg, err := c.Registry()
	if err != nil {
		return err
	}
	if _, err := c.DisabledCodes(); err != nil {
		return err
	}

	for _, o := range c.External.Objects {
		if !objspec.Parse(o.Name).Valid() {
			return fmt.Errorf("%w: external object %q: want pkg/path.Name or pkg/path.Type.Member", ErrInvalidConfig, o.Name)
		}
		if !reg.IsMarker(marker.Identity(o.Marker)) {
			return fmt.Errorf("%w: external object %q: marker %q is not recognized", ErrInvalidConfig, o.Name, o.Marker)
		}
	}
	for _, p := range c.External.Packages {
		if p.Path == "" || strings.ContainsAny(p.Path, " \t") {
			return fmt.Errorf("%w: external package %q", ErrInvalidConfig, p.Path)
		}
		if !reg.IsMarker(marker.Identity(p.Marker)) {
			return fmt.Errorf("%w: external package %q: marker %q is not recognized", ErrInvalidConfig, p.Path, p.Marker)
		}
	}

	return nil
}

// Registry builds the marker registry.
func (c *Config) Registry() (*marker.Registry, error) {
	ids := make([]marker.Identity, 0, len(c.Markers))
	for _, m := range splitAll(c.Markers) {
		ids = append(ids, marker.Identity(m))
	}
	if len(ids) == 0 {
		return marker.Default(), nil
	}

	reg, err := marker.New(ids...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return reg, nil
}

// DisabledCodes returns the set of disabled diagnostic codes.
func (c *Config) DisabledCodes() (map[rule.Code]bool, error) {
	codes, err := rule.ParseCodes(strings.Join(c.Disable, ","))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	disabled := make(map[rule.Code]bool, len(codes))
	for _, code := range codes {
		disabled[code] = true
	}
	return disabled, nil
}

// ExternalMarkers converts the external entries for the annotation lookup.
func (c *Config) ExternalMarkers() annotation.External {
	var ext annotation.External

	for _, o := range c.External.Objects {
		ext.Objects = append(ext.Objects, annotation.ExternalObject{
			Spec:       objspec.Parse(o.Name),
			Annotation: marker.Annotation{Marker: marker.Identity(o.Marker), Message: o.Message},
		})
	}
	for _, p := range c.External.Packages {
		ext.Packages = append(ext.Packages, annotation.ExternalPackage{
			Path:       p.Path,
			Annotation: marker.Annotation{Marker: marker.Identity(p.Marker), Message: p.Message},
		})
	}

	return ext
}

// Logger returns a debug text logger on w when Debug is set, and a
// discarding logger otherwise.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	if c == nil || !c.Debug {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// splitAll splits every element on commas and drops empty parts.
func splitAll(values []string) []string {
	var out []string
	for _, v := range values {
		out = append(out, splitList(v)...)
	}
	return out
}
