package manifest

// Target is one of the Rust build targets a fel4 project can be built for.
// The canonical name doubles as the target's top-level table key in the
// manifest. Adding a target means adding a constant, a name, a list entry,
// and a parse arm; the compiler flags every switch that needs updating.
type Target int

const (
	TargetX8664Sel4Fel4 Target = iota
	TargetArmSel4Fel4
)

const (
	targetNameX8664Sel4Fel4 = "x86_64-sel4-fel4"
	targetNameArmSel4Fel4   = "arm-sel4-fel4"
)

// Name returns the canonical string form of the target.
func (t Target) Name() string {
	switch t {
	case TargetX8664Sel4Fel4:
		return targetNameX8664Sel4Fel4
	case TargetArmSel4Fel4:
		return targetNameArmSel4Fel4
	}
	return ""
}

func (t Target) String() string { return t.Name() }

// Targets returns every supported target in declaration order. The order is
// load-bearing: the parser iterates it so results never depend on document
// or map iteration order.
func Targets() []Target {
	return []Target{TargetX8664Sel4Fel4, TargetArmSel4Fel4}
}

// TargetNames returns the canonical names of every supported target.
func TargetNames() []string {
	names := make([]string, 0, len(Targets()))
	for _, t := range Targets() {
		names = append(names, t.Name())
	}
	return names
}

// ParseTarget maps a canonical name back to its Target. The second return
// is false for any string outside the supported set.
func ParseTarget(s string) (Target, bool) {
	switch s {
	case targetNameX8664Sel4Fel4:
		return TargetX8664Sel4Fel4, true
	case targetNameArmSel4Fel4:
		return TargetArmSel4Fel4, true
	}
	return 0, false
}

// Platform is one of the hardware platforms a target can be deployed on.
type Platform int

const (
	PlatformPC99 Platform = iota
	PlatformSabre
)

const (
	platformNamePC99  = "pc99"
	platformNameSabre = "sabre"
)

// Name returns the canonical string form of the platform.
func (p Platform) Name() string {
	switch p {
	case PlatformPC99:
		return platformNamePC99
	case PlatformSabre:
		return platformNameSabre
	}
	return ""
}

func (p Platform) String() string { return p.Name() }

// Platforms returns every supported platform in declaration order.
func Platforms() []Platform {
	return []Platform{PlatformPC99, PlatformSabre}
}

// PlatformNames returns the canonical names of every supported platform.
func PlatformNames() []string {
	names := make([]string, 0, len(Platforms()))
	for _, p := range Platforms() {
		names = append(names, p.Name())
	}
	return names
}

// ParsePlatform maps a canonical name back to its Platform.
func ParsePlatform(s string) (Platform, bool) {
	switch s {
	case platformNamePC99:
		return PlatformPC99, true
	case platformNameSabre:
		return PlatformSabre, true
	}
	return 0, false
}

// Profile is a build profile: the optimization/debug flavor of a build.
type Profile int

const (
	ProfileDebug Profile = iota
	ProfileRelease
)

const (
	profileNameDebug   = "debug"
	profileNameRelease = "release"
)

// Name returns the canonical string form of the profile.
func (p Profile) Name() string {
	switch p {
	case ProfileDebug:
		return profileNameDebug
	case ProfileRelease:
		return profileNameRelease
	}
	return ""
}

func (p Profile) String() string { return p.Name() }

// Profiles returns every supported build profile in declaration order.
func Profiles() []Profile {
	return []Profile{ProfileDebug, ProfileRelease}
}

// ProfileNames returns the canonical names of every supported build profile.
func ProfileNames() []string {
	names := make([]string, 0, len(Profiles()))
	for _, p := range Profiles() {
		names = append(names, p.Name())
	}
	return names
}

// ParseProfile maps a canonical name back to its Profile.
func ParseProfile(s string) (Profile, bool) {
	switch s {
	case profileNameDebug:
		return ProfileDebug, true
	case profileNameRelease:
		return ProfileRelease, true
	}
	return 0, false
}
