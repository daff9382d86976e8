// Package cmake projects a resolved fel4 configuration into the definition
// list for the seL4 kernel's CMake build. The projection is one-to-one:
// every resolved property becomes exactly one definition, with no merge
// logic of its own.
package cmake

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/fel4-build/fel4-config/internal/manifest"
	"github.com/fel4-build/fel4-config/internal/resolve"
)

// Definition is one -D entry handed to the external build configurator.
// Booleans carry an explicit BOOL type with ON/OFF values; every other
// value kind is passed as plain string text.
type Definition struct {
	Name  string
	Type  string // "" or "BOOL"
	Value string
}

// Flag renders the definition as a cmake command-line argument.
func (d Definition) Flag() string {
	if d.Type != "" {
		return fmt.Sprintf("-D%s:%s=%s", d.Name, d.Type, d.Value)
	}
	return fmt.Sprintf("-D%s=%s", d.Name, d.Value)
}

// Build is a fully planned kernel build configuration.
type Build struct {
	// KernelPath is the seL4 kernel source directory,
	// <projectDir>/deps/seL4_kernel by convention.
	KernelPath string

	// Generator is the cmake generator to drive the build with.
	Generator string

	Definitions []Definition
}

// TargetMismatchError reports a build driver asking for a target other than
// the one the manifest resolved to.
type TargetMismatchError struct {
	Requested string
	Declared  string
}

func (e TargetMismatchError) Error() string {
	return fmt.Sprintf("the build is for the %s target, but the fel4 manifest declares the target to be %s",
		e.Requested, e.Declared)
}

// MissingEnvVarError reports a required environment variable that is unset.
type MissingEnvVarError struct {
	Name string
}

func (e MissingEnvVarError) Error() string {
	return fmt.Sprintf("missing the required %s environment variable", e.Name)
}

// Configure plans a seL4 kernel CMake build from a resolved configuration.
// requestedTarget is the target the outer build driver is building for; it
// must match the manifest's resolved target.
func Configure(cfg *resolve.Config, projectDir, requestedTarget string) (*Build, error) {
	if requestedTarget != cfg.Target.Name() {
		return nil, TargetMismatchError{
			Requested: requestedTarget,
			Declared:  cfg.Target.Name(),
		}
	}
	kernelPath := filepath.Join(projectDir, "deps", "seL4_kernel")

	definitions := []Definition{
		// CMAKE_TOOLCHAIN_FILE is resolved immediately by cmake, so it
		// must precede everything else.
		{Name: "CMAKE_TOOLCHAIN_FILE", Value: filepath.Join(kernelPath, "gcc.cmake")},
		{Name: "KERNEL_PATH", Value: kernelPath},
	}
	definitions = append(definitions, propertyDefinitions(cfg.Properties)...)

	// The seL4-CMake inferred cross toolchain has no hardware floating
	// point support, so the arm target names its own prefix.
	if cfg.Target == manifest.TargetArmSel4Fel4 {
		definitions = append(definitions, Definition{
			Name:  "CROSS_COMPILER_PREFIX",
			Value: "arm-linux-gnueabihf-",
		})
	}

	// seL4 owns the compiler flags; clear them so the driver cannot
	// auto-populate.
	definitions = append(definitions,
		Definition{Name: "CMAKE_C_FLAGS", Value: ""},
		Definition{Name: "CMAKE_CXX_FLAGS", Value: ""},
	)

	return &Build{
		KernelPath:  kernelPath,
		Generator:   "Ninja",
		Definitions: definitions,
	}, nil
}

// ConfigureFromEnv is Configure with the project directory and requested
// target taken from the CARGO_MANIFEST_DIR and TARGET environment variables
// the outer cargo-driven build exports.
func ConfigureFromEnv(cfg *resolve.Config) (*Build, error) {
	projectDir, ok := os.LookupEnv("CARGO_MANIFEST_DIR")
	if !ok {
		return nil, MissingEnvVarError{Name: "CARGO_MANIFEST_DIR"}
	}
	requestedTarget, ok := os.LookupEnv("TARGET")
	if !ok {
		return nil, MissingEnvVarError{Name: "TARGET"}
	}
	return Configure(cfg, projectDir, requestedTarget)
}

// propertyDefinitions renders the resolved property map in sorted name
// order, so a plan is reproducible for a given configuration.
func propertyDefinitions(properties map[string]manifest.FlatValue) []Definition {
	names := make([]string, 0, len(properties))
	for name := range properties {
		names = append(names, name)
	}
	sort.Strings(names)

	definitions := make([]Definition, 0, len(names))
	for _, name := range names {
		definitions = append(definitions, definitionFor(name, properties[name]))
	}
	return definitions
}

func definitionFor(name string, value manifest.FlatValue) Definition {
	if b, ok := value.(manifest.BooleanValue); ok {
		state := "OFF"
		if b {
			state = "ON"
		}
		return Definition{Name: name, Type: "BOOL", Value: state}
	}
	return Definition{Name: name, Value: value.Text()}
}
