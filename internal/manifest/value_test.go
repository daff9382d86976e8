package manifest_test

import (
	"context"
	"testing"

	"github.com/fel4-build/fel4-config/internal/manifest"
	"github.com/stretchr/testify/require"
)

// scalarManifest declares one property of every representable value kind.
const scalarManifest = validHeader + `[x86_64-sel4-fel4]
KernelOptimisation = "-O2"
KernelNumDomains = 1
KernelTimeSlice = 2.5
KernelPrinting = true
BuildStamp = 2018-05-01T12:30:00Z
[x86_64-sel4-fel4.debug]
[x86_64-sel4-fel4.pc99]
`

func TestParse_AllScalarKinds(t *testing.T) {
	t.Parallel()

	full, err := manifest.Parse(context.Background(), scalarManifest)
	require.NoError(t, err)

	direct := full.Targets[manifest.TargetX8664Sel4Fel4].DirectProperties
	byName := make(map[string]manifest.FlatValue, len(direct))
	for _, p := range direct {
		byName[p.Name] = p.Value
	}

	require.Equal(t, manifest.StringValue("-O2"), byName["KernelOptimisation"])
	require.Equal(t, manifest.IntegerValue(1), byName["KernelNumDomains"])
	require.Equal(t, manifest.FloatValue(2.5), byName["KernelTimeSlice"])
	require.Equal(t, manifest.BooleanValue(true), byName["KernelPrinting"])
	require.Equal(t, manifest.DatetimeValue("2018-05-01T12:30:00Z"), byName["BuildStamp"])
}

func TestParse_DatetimeKeepsSourceSpelling(t *testing.T) {
	t.Parallel()

	// TOML permits several spellings time.Time normalizes away: a space
	// instead of 'T', local forms, trailing fraction digits. The parsed
	// value must carry the document's own text in every overlay group.
	full, err := manifest.Parse(context.Background(), validHeader+`[x86_64-sel4-fel4]
BuildStamp = 2018-05-01 12:30:00+02:00
[x86_64-sel4-fel4.debug]
Cutoff = 12:30:00
ReleaseDay = 2018-05-01
[x86_64-sel4-fel4.pc99]
LocalStamp = 2018-05-01T12:30:00.450
`)
	require.NoError(t, err)

	target := full.Targets[manifest.TargetX8664Sel4Fel4]
	require.Equal(t, []manifest.FlatProperty{
		{Name: "BuildStamp", Value: manifest.DatetimeValue("2018-05-01 12:30:00+02:00")},
	}, target.DirectProperties)
	require.Equal(t, []manifest.FlatProperty{
		{Name: "Cutoff", Value: manifest.DatetimeValue("12:30:00")},
		{Name: "ReleaseDay", Value: manifest.DatetimeValue("2018-05-01")},
	}, target.ProfileProperties[manifest.ProfileDebug])
	require.Equal(t, []manifest.FlatProperty{
		{Name: "LocalStamp", Value: manifest.DatetimeValue("2018-05-01T12:30:00.450")},
	}, target.PlatformProperties[manifest.PlatformPC99])
}

func TestFlatValue_Text(t *testing.T) {
	t.Parallel()

	cases := []struct {
		value manifest.FlatValue
		want  string
	}{
		{manifest.StringValue("x86"), "x86"},
		{manifest.IntegerValue(-7), "-7"},
		{manifest.FloatValue(2.5), "2.5"},
		{manifest.BooleanValue(true), "true"},
		{manifest.BooleanValue(false), "false"},
		{manifest.DatetimeValue("2018-05-01T12:30:00Z"), "2018-05-01T12:30:00Z"},
	}
	for _, c := range cases {
		require.Equal(t, c.want, c.value.Text())
	}
}

func TestParse_DirectPropertyOrderIsSortedByName(t *testing.T) {
	t.Parallel()

	full, err := manifest.Parse(context.Background(), validHeader+`[x86_64-sel4-fel4]
Zeta = 1
Alpha = 2
Mid = 3
`)
	require.NoError(t, err)

	direct := full.Targets[manifest.TargetX8664Sel4Fel4].DirectProperties
	names := make([]string, 0, len(direct))
	for _, p := range direct {
		names = append(names, p.Name)
	}
	require.Equal(t, []string{"Alpha", "Mid", "Zeta"}, names)
}
