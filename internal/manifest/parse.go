package manifest

import (
	"context"
	"os"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/fel4-build/fel4-config/internal/ctxlog"
)

// Load reads a fel4.toml manifest from disk and parses it. Any read failure
// collapses to ErrFileRead; the path is the caller's to report.
func Load(ctx context.Context, path string) (*FullManifest, error) {
	ctxlog.FromContext(ctx).Debug("Reading manifest file.", "path", path)
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, ErrFileRead
	}
	return Parse(ctx, string(raw))
}

// Parse parses the complete contents of a fel4.toml manifest. Parsing is
// total and deterministic: the same document text always yields the same
// manifest or the same error, regardless of map iteration order.
func Parse(ctx context.Context, text string) (*FullManifest, error) {
	var tree map[string]any
	if err := toml.Unmarshal([]byte(text), &tree); err != nil {
		return nil, ErrTOMLParse
	}
	full, err := fromTree(tree)
	if err != nil {
		return nil, err
	}
	restoreDatetimeTexts(full, datetimeTexts([]byte(text)))
	ctxlog.FromContext(ctx).Debug("Manifest parsed.",
		"selected_target", full.SelectedTarget,
		"selected_platform", full.SelectedPlatform,
		"configured_targets", len(full.Targets),
	)
	return full, nil
}

// fromTree walks the decoded TOML tree: header first, then one pass per
// supported target in enumeration order.
func fromTree(tree map[string]any) (*FullManifest, error) {
	header, err := parseHeader(tree)
	if err != nil {
		return nil, err
	}

	// The only substructures a target table may contain are subtables
	// named after a platform or build profile.
	approved := make(map[string]struct{})
	for _, name := range PlatformNames() {
		approved[name] = struct{}{}
	}
	for _, name := range ProfileNames() {
		approved[name] = struct{}{}
	}

	targets := make(map[Target]*FullTarget)
	for _, target := range Targets() {
		table, ok := tree[target.Name()].(map[string]any)
		if !ok {
			// A supported target without a table is not an error;
			// it is simply not configured.
			continue
		}
		full, err := parseTarget(target, table, approved)
		if err != nil {
			return nil, err
		}
		targets[target] = full
	}

	return &FullManifest{
		ArtifactPath:     header.ArtifactPath,
		TargetSpecsPath:  header.TargetSpecsPath,
		SelectedTarget:   header.SelectedTarget,
		SelectedPlatform: header.SelectedPlatform,
		Targets:          targets,
	}, nil
}

// parseHeader validates and extracts the mandatory [fel4] table.
func parseHeader(tree map[string]any) (Header, error) {
	table, ok := tree["fel4"].(map[string]any)
	if !ok {
		return Header{}, MissingTableError{Table: "fel4"}
	}
	if key, found := firstDisallowedStructure(table, nil); found {
		return Header{}, UnexpectedStructureError{Path: "fel4." + key}
	}

	rawTarget, err := requiredString(table, "fel4", "target")
	if err != nil {
		return Header{}, err
	}
	target, ok := ParseTarget(rawTarget)
	if !ok {
		return Header{}, InvalidValueOptionError{
			Property: "target",
			Allowed:  TargetNames(),
			Actual:   rawTarget,
		}
	}

	rawPlatform, err := requiredString(table, "fel4", "platform")
	if err != nil {
		return Header{}, err
	}
	platform, ok := ParsePlatform(rawPlatform)
	if !ok {
		return Header{}, InvalidValueOptionError{
			Property: "platform",
			Allowed:  PlatformNames(),
			Actual:   rawPlatform,
		}
	}

	artifactPath, err := requiredString(table, "fel4", "artifact-path")
	if err != nil {
		return Header{}, err
	}
	targetSpecsPath, err := requiredString(table, "fel4", "target-specs-path")
	if err != nil {
		return Header{}, err
	}

	return Header{
		ArtifactPath:     artifactPath,
		TargetSpecsPath:  targetSpecsPath,
		SelectedTarget:   target,
		SelectedPlatform: platform,
	}, nil
}

// parseTarget extracts the three independent property groups from one
// target table.
func parseTarget(target Target, table map[string]any, approved map[string]struct{}) (*FullTarget, error) {
	if key, found := firstDisallowedStructure(table, approved); found {
		return nil, UnexpectedStructureError{Path: target.Name() + "." + key}
	}

	profileProperties := make(map[Profile][]FlatProperty)
	for _, profile := range Profiles() {
		sub, ok := table[profile.Name()].(map[string]any)
		if !ok {
			continue
		}
		properties, badKey, ok := extractFlatProperties(sub, false)
		if !ok {
			return nil, UnexpectedStructureError{
				Path: target.Name() + "." + profile.Name() + "." + badKey,
			}
		}
		profileProperties[profile] = properties
	}

	platformProperties := make(map[Platform][]FlatProperty)
	for _, platform := range Platforms() {
		sub, ok := table[platform.Name()].(map[string]any)
		if !ok {
			continue
		}
		properties, badKey, ok := extractFlatProperties(sub, false)
		if !ok {
			return nil, UnexpectedStructureError{
				Path: target.Name() + "." + platform.Name() + "." + badKey,
			}
		}
		platformProperties[platform] = properties
	}

	// Direct properties: everything left on the target table once the
	// recognized axis subtables are set aside.
	direct := make(map[string]any, len(table))
	for key, value := range table {
		if _, ok := approved[key]; ok {
			continue
		}
		direct[key] = value
	}
	directProperties, badKey, ok := extractFlatProperties(direct, true)
	if !ok {
		return nil, UnexpectedStructureError{Path: target.Name() + "." + badKey}
	}

	return &FullTarget{
		Identity:           target,
		DirectProperties:   directProperties,
		ProfileProperties:  profileProperties,
		PlatformProperties: platformProperties,
	}, nil
}

// extractFlatProperties maps every scalar leaf in the table to a
// FlatProperty, in sorted key order. On a nested table or array it either
// skips the key (tolerateStructures, used only for the direct-property scan
// of a target table, where axis subtables are legitimate neighbors) or stops
// and reports the offending key.
func extractFlatProperties(table map[string]any, tolerateStructures bool) ([]FlatProperty, string, bool) {
	properties := make([]FlatProperty, 0, len(table))
	for _, name := range sortedKeys(table) {
		value, flat := flatValueOf(table[name])
		if !flat {
			if tolerateStructures {
				continue
			}
			return nil, name, false
		}
		properties = append(properties, FlatProperty{Name: name, Value: value})
	}
	return properties, "", true
}

// firstDisallowedStructure scans the table in sorted key order for a nested
// table or array whose key is not in the approved set. A nil approved set
// allows no substructure at all.
func firstDisallowedStructure(table map[string]any, approved map[string]struct{}) (string, bool) {
	for _, key := range sortedKeys(table) {
		if _, flat := flatValueOf(table[key]); flat {
			continue
		}
		if _, ok := approved[key]; ok {
			continue
		}
		return key, true
	}
	return "", false
}

// requiredString fetches a mandatory string property. Absent and empty are
// the same failure; present with another type is its own failure.
func requiredString(table map[string]any, tableName, property string) (string, error) {
	raw, ok := table[property]
	if !ok {
		return "", MissingRequiredPropertyError{Table: tableName, Property: property}
	}
	s, ok := raw.(string)
	if !ok {
		return "", NonStringPropertyError{Property: property}
	}
	if s == "" {
		return "", MissingRequiredPropertyError{Table: tableName, Property: property}
	}
	return s, nil
}

func sortedKeys(table map[string]any) []string {
	keys := make([]string, 0, len(table))
	for key := range table {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
