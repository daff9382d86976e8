package manifest

import (
	"errors"
	"fmt"
)

// The closed set of things that can go wrong while reading, parsing, or
// resolving fel4 configuration data. Errors are plain comparable values so
// callers can match on them rather than string-scrape; messages are stable
// and surfaced verbatim by build drivers.
var (
	// ErrFileRead reports that the manifest file could not be read.
	ErrFileRead = errors.New("unable to read the fel4 manifest file")

	// ErrTOMLParse reports that the manifest file is not valid TOML.
	ErrTOMLParse = errors.New("the fel4 manifest file is unparseable as toml")
)

// MissingTableError reports a required table that is absent. The resolver
// also uses it for a selected target that was never configured and for a
// profile or platform overlay that was never declared, with the dotted
// "<target>.<axis>" path as the table name.
type MissingTableError struct {
	Table string
}

func (e MissingTableError) Error() string {
	return fmt.Sprintf("the fel4 manifest file is missing the %s table", e.Table)
}

// UnexpectedStructureError reports a nested table or array at a location
// where only scalar properties are allowed. Path is the full dotted path of
// the offending key, e.g. "x86_64-sel4-fel4.custom".
type UnexpectedStructureError struct {
	Path string
}

func (e UnexpectedStructureError) Error() string {
	return fmt.Sprintf("the fel4 manifest file contained an unexpected table or array %s", e.Path)
}

// MissingRequiredPropertyError reports a required property that is absent
// or empty within a given table.
type MissingRequiredPropertyError struct {
	Table    string
	Property string
}

func (e MissingRequiredPropertyError) Error() string {
	return fmt.Sprintf("the [%s] table requires the %s property, but it is absent", e.Table, e.Property)
}

// NonStringPropertyError reports a property that must be a string but is
// present with some other type.
type NonStringPropertyError struct {
	Property string
}

func (e NonStringPropertyError) Error() string {
	return fmt.Sprintf("the %s property should be specified as a string, but is not", e.Property)
}

// InvalidValueOptionError reports a property whose value is outside its
// fixed set of allowed options.
type InvalidValueOptionError struct {
	Property string
	Allowed  []string
	Actual   string
}

func (e InvalidValueOptionError) Error() string {
	return fmt.Sprintf("the %s property should be one of %v, but is instead %s", e.Property, e.Allowed, e.Actual)
}

// DuplicatePropertyError reports a property name contributed by more than
// one overlay group during resolution. Cross-axis collision is always a hard
// error; there is no last-write-wins.
type DuplicatePropertyError struct {
	Name string
}

func (e DuplicatePropertyError) Error() string {
	return fmt.Sprintf("the fel4 manifest had a duplicate property %s when resolved to a canonical set", e.Name)
}

// NonWhitelistPropertyError reports a resolved property whose name is not in
// the fixed set of recognized property names. Raised only when whitelist
// enforcement is enabled, and only after the merge itself has succeeded.
type NonWhitelistPropertyError struct {
	Name string
}

func (e NonWhitelistPropertyError) Error() string {
	return fmt.Sprintf("the fel4 manifest had an unrecognized property %s", e.Name)
}
