package app

import (
	"errors"

	"github.com/fel4-build/fel4-config/internal/manifest"
)

// Config holds everything an App instance needs to run.
type Config struct {
	// ManifestPath locates the fel4.toml to resolve. Unused when
	// Exemplar is set.
	ManifestPath string

	// Profile is the canonical name of the build profile to resolve for.
	Profile string

	// EnforceWhitelist turns on the recognized-property check during
	// resolution.
	EnforceWhitelist bool

	// ProjectDir is the project root the kernel sources hang off of.
	ProjectDir string

	// RequestedTarget, when non-empty, asks for a full CMake build plan
	// for that target; it must match the manifest's resolved target.
	// When empty the app prints the resolved properties instead.
	RequestedTarget string

	// Exemplar prints the default manifest and exits.
	Exemplar bool

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config. Validation here covers only what the flag
// layer cannot express; manifest-level validation belongs to the parser.
func NewConfig(cfg Config) (*Config, error) {
	if !cfg.Exemplar && cfg.ManifestPath == "" {
		return nil, errors.New("ManifestPath is a required configuration field and cannot be empty")
	}
	if _, ok := manifest.ParseProfile(cfg.Profile); !ok && !cfg.Exemplar {
		return nil, manifest.InvalidValueOptionError{
			Property: "profile",
			Allowed:  manifest.ProfileNames(),
			Actual:   cfg.Profile,
		}
	}
	return &cfg, nil
}
