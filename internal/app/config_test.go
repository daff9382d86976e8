package app_test

import (
	"testing"

	"github.com/fel4-build/fel4-config/internal/app"
	"github.com/fel4-build/fel4-config/internal/manifest"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_RequiresManifestPath(t *testing.T) {
	t.Parallel()

	_, err := app.NewConfig(app.Config{Profile: "debug"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "ManifestPath")
}

func TestNewConfig_RejectsUnknownProfile(t *testing.T) {
	t.Parallel()

	_, err := app.NewConfig(app.Config{ManifestPath: "fel4.toml", Profile: "bench"})
	require.Equal(t, manifest.InvalidValueOptionError{
		Property: "profile",
		Allowed:  manifest.ProfileNames(),
		Actual:   "bench",
	}, err)
}

func TestNewConfig_ExemplarNeedsNoManifest(t *testing.T) {
	t.Parallel()

	config, err := app.NewConfig(app.Config{Exemplar: true})
	require.NoError(t, err)
	require.True(t, config.Exemplar)
}
