// Package manifest defines the typed model of a fel4.toml manifest and the
// parser that turns raw TOML into it.
//
// A manifest declares a [fel4] header table selecting a build target and
// platform, plus one optional table per supported target carrying that
// target's property overlays: properties set directly on the target, and
// properties set under per-build-profile and per-platform subtables. The
// parser validates the document's structure strictly and extracts the three
// overlay groups independently; merging them into one flat property set is
// the job of the resolve package.
package manifest
