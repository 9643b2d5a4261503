package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/peteraritchie/prerelease/internal/objspec"
)

// EnvPrefix is the prefix of configuration environment variables.
const EnvPrefix = "PRERELEASE_"

// envKeys are the keys that can be set from the environment.
var envKeys = map[string]bool{
	"markers": true,
	"disable": true,
	"debug":   true,
}

// Flags holds raw flag values. Empty strings and false mean "not set".
type Flags struct {
	Config           string // YAML file path
	Markers          string // comma-separated marker identities
	Disable          string // comma-separated codes
	External         string // comma-separated object specs
	ExternalPackages string // comma-separated package paths
	Debug            bool
}

// Load builds the configuration. Later sources override earlier ones:
//
//  1. defaults
//  2. the YAML file named by flags.Config
//  3. PRERELEASE_MARKERS, PRERELEASE_DISABLE, PRERELEASE_DEBUG
//  4. flags that were set
//
// External objects and packages given by flags are added to those from
// the file.
func Load(flags Flags) (*Config, error) {
	k := koanf.New(".")

	// 1. Load defaults
	if err := k.Load(confmap.Provider(map[string]any{
		"markers": []string{},
		"disable": []string{},
		"debug":   false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Load config file
	if flags.Config != "" {
		if err := k.Load(file.Provider(flags.Config), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", flags.Config, err)
		}
	}

	// 3. Load environment variables
	// Transform: PRERELEASE_DISABLE -> disable
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		if !envKeys[key] {
			return ""
		}
		return key
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Load flags that were set
	set := make(map[string]any)
	if flags.Markers != "" {
		set["markers"] = flags.Markers
	}
	if flags.Disable != "" {
		set["disable"] = flags.Disable
	}
	if flags.Debug {
		set["debug"] = true
	}
	if err := k.Load(confmap.Provider(set, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load flags: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	for _, spec := range objspec.ParseList(flags.External) {
		cfg.External.Objects = append(cfg.External.Objects, ExternalObject{Name: spec.FullName()})
	}
	for _, path := range splitList(flags.ExternalPackages) {
		cfg.External.Packages = append(cfg.External.Packages, ExternalPackage{Path: path})
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func splitList(s string) []string {
	var out []string
	for part := range strings.SplitSeq(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
