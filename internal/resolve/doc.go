// Package resolve flattens a parsed fel4 manifest into the single concrete
// property set for one (target, platform, profile) triple.
//
// The merge pulls from three independent overlay groups in a fixed order:
// the selected target's direct properties, then its overlay for the
// requested build profile, then its overlay for the manifest's selected
// platform. A property name arriving twice is a hard error, never a
// silent override, and an overlay that was never declared in the manifest
// is distinguished from one declared empty. Resolution never mutates the
// manifest, so resolutions for different profiles may run concurrently
// against one parse.
package resolve
