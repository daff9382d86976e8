package manifest

// Header is the parsed [fel4] table: the manifest's mandatory output paths
// and its default target/platform selection.
type Header struct {
	ArtifactPath     string
	TargetSpecsPath  string
	SelectedTarget   Target
	SelectedPlatform Platform
}

// FullTarget is everything a manifest declares for one supported target.
// The three property groups are extracted independently and never merged at
// parse time; a name may legally repeat across groups until resolution.
type FullTarget struct {
	Identity Target

	// DirectProperties are declared immediately under the target table,
	// excluding the recognized profile/platform subtable names.
	DirectProperties []FlatProperty

	// ProfileProperties holds the overlay declared under each
	// [<target>.<profile>] subtable. A profile with a declared-but-empty
	// subtable is present with a zero-length slice; an undeclared profile
	// is absent from the map. The resolver relies on that distinction.
	ProfileProperties map[Profile][]FlatProperty

	// PlatformProperties is the platform-axis analogue of
	// ProfileProperties.
	PlatformProperties map[Platform][]FlatProperty
}

// FullManifest is the whole parsed document, prior to resolution. It is
// immutable once parsed; any number of resolutions may consume it
// concurrently.
type FullManifest struct {
	ArtifactPath     string
	TargetSpecsPath  string
	SelectedTarget   Target
	SelectedPlatform Platform

	// Targets maps every target that has a table in the document to its
	// parsed content. A supported target without a table is simply absent.
	Targets map[Target]*FullTarget
}
