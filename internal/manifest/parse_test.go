package manifest_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/fel4-build/fel4-config/internal/manifest"
	"github.com/stretchr/testify/require"
)

const validHeader = `[fel4]
target = "x86_64-sel4-fel4"
platform = "pc99"
artifact-path = "artifacts/path/nested"
target-specs-path = "where/are/rust/targets"
`

func TestLoad_BogusFileUnreadable(t *testing.T) {
	t.Parallel()

	_, err := manifest.Load(context.Background(), filepath.Join("path", "to", "nowhere"))
	require.ErrorIs(t, err, manifest.ErrFileRead)
}

func TestParse_NonTOMLUnparseable(t *testing.T) {
	t.Parallel()

	_, err := manifest.Parse(context.Background(), "<hey>not toml</hey>")
	require.ErrorIs(t, err, manifest.ErrTOMLParse)
}

func TestParse_MissingFel4Table(t *testing.T) {
	t.Parallel()

	_, err := manifest.Parse(context.Background(), `just = true
some = "unrelated property"
`)
	require.Equal(t, manifest.MissingTableError{Table: "fel4"}, err)
}

func TestParse_Fel4MissingTarget(t *testing.T) {
	t.Parallel()

	_, err := manifest.Parse(context.Background(), `[fel4]
wrong_properties = true
`)
	require.Equal(t, manifest.MissingRequiredPropertyError{Table: "fel4", Property: "target"}, err)
}

func TestParse_Fel4InvalidTarget(t *testing.T) {
	t.Parallel()

	_, err := manifest.Parse(context.Background(), `[fel4]
target = "wrong"
`)
	require.Equal(t, manifest.InvalidValueOptionError{
		Property: "target",
		Allowed:  manifest.TargetNames(),
		Actual:   "wrong",
	}, err)
}

func TestParse_Fel4MissingPlatform(t *testing.T) {
	t.Parallel()

	_, err := manifest.Parse(context.Background(), `[fel4]
target = "x86_64-sel4-fel4"
`)
	require.Equal(t, manifest.MissingRequiredPropertyError{Table: "fel4", Property: "platform"}, err)
}

func TestParse_Fel4InvalidPlatform(t *testing.T) {
	t.Parallel()

	_, err := manifest.Parse(context.Background(), `[fel4]
target = "x86_64-sel4-fel4"
platform = "wrong"
`)
	require.Equal(t, manifest.InvalidValueOptionError{
		Property: "platform",
		Allowed:  manifest.PlatformNames(),
		Actual:   "wrong",
	}, err)
}

func TestParse_Fel4MissingArtifactPath(t *testing.T) {
	t.Parallel()

	_, err := manifest.Parse(context.Background(), `[fel4]
target = "x86_64-sel4-fel4"
platform = "pc99"
`)
	require.Equal(t, manifest.MissingRequiredPropertyError{Table: "fel4", Property: "artifact-path"}, err)
}

func TestParse_Fel4MissingTargetSpecsPath(t *testing.T) {
	t.Parallel()

	_, err := manifest.Parse(context.Background(), `[fel4]
target = "x86_64-sel4-fel4"
platform = "pc99"
artifact-path = "artifacts/path/nested"
`)
	require.Equal(t, manifest.MissingRequiredPropertyError{Table: "fel4", Property: "target-specs-path"}, err)
}

func TestParse_EmptyStringSameAsAbsent(t *testing.T) {
	t.Parallel()

	_, err := manifest.Parse(context.Background(), `[fel4]
target = "x86_64-sel4-fel4"
platform = "pc99"
artifact-path = ""
target-specs-path = "where/are/rust/targets"
`)
	require.Equal(t, manifest.MissingRequiredPropertyError{Table: "fel4", Property: "artifact-path"}, err)
}

func TestParse_WrongTypeArtifactPath(t *testing.T) {
	t.Parallel()

	_, err := manifest.Parse(context.Background(), `[fel4]
target = "x86_64-sel4-fel4"
platform = "pc99"
artifact-path = true
target-specs-path = "where/are/rust/targets"
`)
	require.Equal(t, manifest.NonStringPropertyError{Property: "artifact-path"}, err)
}

func TestParse_WrongTypeTargetSpecsPath(t *testing.T) {
	t.Parallel()

	_, err := manifest.Parse(context.Background(), `[fel4]
target = "x86_64-sel4-fel4"
platform = "pc99"
artifact-path = "somewhere"
target-specs-path = true
`)
	require.Equal(t, manifest.NonStringPropertyError{Property: "target-specs-path"}, err)
}

func TestParse_WrongTypeTarget(t *testing.T) {
	t.Parallel()

	_, err := manifest.Parse(context.Background(), `[fel4]
target = 42
`)
	require.Equal(t, manifest.NonStringPropertyError{Property: "target"}, err)
}

func TestParse_UnexpectedStructureInFel4(t *testing.T) {
	t.Parallel()

	_, err := manifest.Parse(context.Background(), validHeader+`[fel4.custom]
SomeProp = "hello"
`)
	require.Equal(t, manifest.UnexpectedStructureError{Path: "fel4.custom"}, err)
}

func TestParse_UnexpectedStructureInTarget(t *testing.T) {
	t.Parallel()

	_, err := manifest.Parse(context.Background(), validHeader+`[x86_64-sel4-fel4]
SomeProp = "hello"
[x86_64-sel4-fel4.custom]
NestedProp = true
`)
	require.Equal(t, manifest.UnexpectedStructureError{Path: "x86_64-sel4-fel4.custom"}, err)
}

func TestParse_UnexpectedArrayInTarget(t *testing.T) {
	t.Parallel()

	_, err := manifest.Parse(context.Background(), validHeader+`[x86_64-sel4-fel4]
SomeProp = [1, 2, 3]
`)
	require.Equal(t, manifest.UnexpectedStructureError{Path: "x86_64-sel4-fel4.SomeProp"}, err)
}

func TestParse_UnexpectedStructureInTargetPlatform(t *testing.T) {
	t.Parallel()

	_, err := manifest.Parse(context.Background(), validHeader+`[x86_64-sel4-fel4]
SomeProp = "hello"
[x86_64-sel4-fel4.pc99]
SomethingPlatformy = true
[x86_64-sel4-fel4.pc99.custom]
DeepNesting = true
`)
	require.Equal(t, manifest.UnexpectedStructureError{Path: "x86_64-sel4-fel4.pc99.custom"}, err)
}

func TestParse_UnexpectedStructureInTargetBuildProfile(t *testing.T) {
	t.Parallel()

	_, err := manifest.Parse(context.Background(), validHeader+`[x86_64-sel4-fel4]
SomeProp = "hello"
[x86_64-sel4-fel4.debug]
KernelPrinting = true
[x86_64-sel4-fel4.debug.custom]
DeepNesting = true
`)
	require.Equal(t, manifest.UnexpectedStructureError{Path: "x86_64-sel4-fel4.debug.custom"}, err)
}

func TestParse_HeaderErrorTakesPrecedenceOverTargetError(t *testing.T) {
	t.Parallel()

	// The header is multiply invalid together with the target table; the
	// header failure must fire first.
	_, err := manifest.Parse(context.Background(), `[fel4]
target = "x86_64-sel4-fel4"
platform = "wrong"
artifact-path = "artifacts"
target-specs-path = "targets"
[x86_64-sel4-fel4.custom]
NestedProp = true
`)
	require.Equal(t, manifest.InvalidValueOptionError{
		Property: "platform",
		Allowed:  manifest.PlatformNames(),
		Actual:   "wrong",
	}, err)
}

func TestParse_UnconfiguredTargetsAreAbsentNotErrors(t *testing.T) {
	t.Parallel()

	full, err := manifest.Parse(context.Background(), validHeader)
	require.NoError(t, err)
	require.Empty(t, full.Targets)
	require.Equal(t, manifest.TargetX8664Sel4Fel4, full.SelectedTarget)
	require.Equal(t, manifest.PlatformPC99, full.SelectedPlatform)
	require.Equal(t, "artifacts/path/nested", full.ArtifactPath)
	require.Equal(t, "where/are/rust/targets", full.TargetSpecsPath)
}

func TestParse_ExtractsAllThreeOverlayGroups(t *testing.T) {
	t.Parallel()

	full, err := manifest.Parse(context.Background(), manifest.Exemplar)
	require.NoError(t, err)
	require.Len(t, full.Targets, 2)

	x86 := full.Targets[manifest.TargetX8664Sel4Fel4]
	require.NotNil(t, x86)
	require.Equal(t, manifest.TargetX8664Sel4Fel4, x86.Identity)

	require.Contains(t, x86.DirectProperties, manifest.FlatProperty{
		Name:  "KernelArch",
		Value: manifest.StringValue("x86"),
	})
	require.Contains(t, x86.DirectProperties, manifest.FlatProperty{
		Name:  "BuildWithCommonSimulationSettings",
		Value: manifest.BooleanValue(true),
	})
	require.Contains(t, x86.DirectProperties, manifest.FlatProperty{
		Name:  "KernelNumDomains",
		Value: manifest.IntegerValue(1),
	})

	require.Contains(t, x86.ProfileProperties[manifest.ProfileDebug], manifest.FlatProperty{
		Name:  "KernelDebugBuild",
		Value: manifest.BooleanValue(true),
	})
	require.Contains(t, x86.ProfileProperties[manifest.ProfileRelease], manifest.FlatProperty{
		Name:  "KernelDebugBuild",
		Value: manifest.BooleanValue(false),
	})
	require.Contains(t, x86.PlatformProperties[manifest.PlatformPC99], manifest.FlatProperty{
		Name:  "KernelX86MicroArch",
		Value: manifest.StringValue("nehalem"),
	})

	// Declared-but-empty axis subtables are present with zero properties.
	require.Contains(t, x86.PlatformProperties, manifest.PlatformSabre)
	require.Empty(t, x86.PlatformProperties[manifest.PlatformSabre])

	arm := full.Targets[manifest.TargetArmSel4Fel4]
	require.NotNil(t, arm)
	require.Contains(t, arm.DirectProperties, manifest.FlatProperty{
		Name:  "KernelArmSel4Arch",
		Value: manifest.StringValue("aarch32"),
	})
}

func TestParse_AxisSubtableNamesNeverLeakIntoDirectProperties(t *testing.T) {
	t.Parallel()

	full, err := manifest.Parse(context.Background(), manifest.Exemplar)
	require.NoError(t, err)
	for _, p := range full.Targets[manifest.TargetX8664Sel4Fel4].DirectProperties {
		_, isPlatform := manifest.ParsePlatform(p.Name)
		_, isProfile := manifest.ParseProfile(p.Name)
		require.False(t, isPlatform || isProfile,
			"direct property %q collides with an axis subtable name", p.Name)
	}
}

func TestParse_Deterministic(t *testing.T) {
	t.Parallel()

	first, err := manifest.Parse(context.Background(), manifest.Exemplar)
	require.NoError(t, err)
	second, err := manifest.Parse(context.Background(), manifest.Exemplar)
	require.NoError(t, err)
	require.Equal(t, first, second)
}
