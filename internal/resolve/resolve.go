package resolve

import (
	"context"
	"sort"

	"github.com/fel4-build/fel4-config/internal/ctxlog"
	"github.com/fel4-build/fel4-config/internal/manifest"
)

// Config is the result of a successful resolution: the concrete build
// configuration for one target/platform/profile triple, with one flat,
// duplicate-free property map.
type Config struct {
	ArtifactPath    string
	TargetSpecsPath string
	Target          manifest.Target
	Platform        manifest.Platform
	Profile         manifest.Profile
	Properties      map[string]manifest.FlatValue
}

// Options selects resolution policy. The zero value is the default policy:
// whitelist enforcement off.
type Options struct {
	// EnforceWhitelist requires every resolved property name to be in
	// KnownProperties. The check runs only after the full merge has
	// succeeded, so an unrecognized name never masks a duplicate.
	EnforceWhitelist bool
}

// Resolve flattens the manifest's overlays for its selected target and
// platform and the requested build profile.
func Resolve(ctx context.Context, full *manifest.FullManifest, profile manifest.Profile, opts Options) (*Config, error) {
	target, ok := full.Targets[full.SelectedTarget]
	if !ok {
		// Declared as selected in [fel4] but never configured.
		return nil, manifest.MissingTableError{Table: full.SelectedTarget.Name()}
	}

	properties := make(map[string]manifest.FlatValue)
	if err := addProperties(properties, target.DirectProperties); err != nil {
		return nil, err
	}

	profileProperties, ok := target.ProfileProperties[profile]
	if !ok {
		return nil, manifest.MissingTableError{
			Table: full.SelectedTarget.Name() + "." + profile.Name(),
		}
	}
	if err := addProperties(properties, profileProperties); err != nil {
		return nil, err
	}

	platformProperties, ok := target.PlatformProperties[full.SelectedPlatform]
	if !ok {
		return nil, manifest.MissingTableError{
			Table: full.SelectedTarget.Name() + "." + full.SelectedPlatform.Name(),
		}
	}
	if err := addProperties(properties, platformProperties); err != nil {
		return nil, err
	}

	if opts.EnforceWhitelist {
		if err := checkWhitelist(properties); err != nil {
			return nil, err
		}
	}

	ctxlog.FromContext(ctx).Debug("Merged overlay groups.",
		"direct", len(target.DirectProperties),
		"profile", len(profileProperties),
		"platform", len(platformProperties),
		"total", len(properties),
	)

	return &Config{
		ArtifactPath:    full.ArtifactPath,
		TargetSpecsPath: full.TargetSpecsPath,
		Target:          full.SelectedTarget,
		Platform:        full.SelectedPlatform,
		Profile:         profile,
		Properties:      properties,
	}, nil
}

// addProperties inserts one overlay group into the accumulating map. Any
// name already present, from whichever group, fails immediately.
func addProperties(into map[string]manifest.FlatValue, source []manifest.FlatProperty) error {
	for _, p := range source {
		if _, exists := into[p.Name]; exists {
			return manifest.DuplicatePropertyError{Name: p.Name}
		}
		into[p.Name] = p.Value
	}
	return nil
}

// checkWhitelist reports the lexicographically first unrecognized name so
// the failure is stable across runs.
func checkWhitelist(properties map[string]manifest.FlatValue) error {
	names := make([]string, 0, len(properties))
	for name := range properties {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if _, ok := KnownProperties[name]; !ok {
			return manifest.NonWhitelistPropertyError{Name: name}
		}
	}
	return nil
}
