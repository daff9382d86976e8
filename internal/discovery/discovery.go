// Package discovery reads the fel4 manifest location and the requested
// build profile from the environment the outer build driver exports. The
// two variables are independent: a caller may have the manifest path from
// elsewhere and still want the driver's profile, or the reverse.
package discovery

import (
	"fmt"
	"os"

	"github.com/fel4-build/fel4-config/internal/manifest"
)

// The environment variables a build driver may export.
const (
	ManifestPathVar = "FEL4_MANIFEST_PATH"
	ProfileVar      = "PROFILE"
)

// MissingEnvVarError reports a required environment variable that is unset.
type MissingEnvVarError struct {
	Name string
}

func (e MissingEnvVarError) Error() string {
	return fmt.Sprintf("required environment variable %s was absent", e.Name)
}

// InvalidBuildProfileError reports a PROFILE value outside the supported
// build profile set.
type InvalidBuildProfileError struct {
	Value string
}

func (e InvalidBuildProfileError) Error() string {
	return fmt.Sprintf("the %s environment variable had a value %s that is not a recognized build profile",
		ProfileVar, e.Value)
}

// ManifestPathFromEnv reads the manifest location from the environment.
// Absence is an error: there is no sensible default path to fall back to.
func ManifestPathFromEnv() (string, error) {
	path, ok := os.LookupEnv(ManifestPathVar)
	if !ok {
		return "", MissingEnvVarError{Name: ManifestPathVar}
	}
	return path, nil
}

// ProfileFromEnv reads the requested build profile from the environment.
// The second return is false when the variable is unset; that is not an
// error, callers apply their own default. A set but unrecognized value is
// an error.
func ProfileFromEnv() (manifest.Profile, bool, error) {
	raw, ok := os.LookupEnv(ProfileVar)
	if !ok {
		return 0, false, nil
	}
	profile, ok := manifest.ParseProfile(raw)
	if !ok {
		return 0, false, InvalidBuildProfileError{Value: raw}
	}
	return profile, true, nil
}
