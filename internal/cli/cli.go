package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/fel4-build/fel4-config/internal/app"
	"github.com/fel4-build/fel4-config/internal/discovery"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated
// app.Config, a boolean indicating the program should exit cleanly, or an
// ExitError. Each flag falls back to the environment independently: the
// manifest path to FEL4_MANIFEST_PATH, the profile to PROFILE and then to
// "debug".
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("fel4-config", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
fel4-config - Resolve a fel4.toml manifest into one concrete build configuration.

Usage:
  fel4-config [options]

Options:
`)
		flagSet.PrintDefaults()
	}

	manifestFlag := flagSet.String("manifest", "", "Path to the fel4.toml manifest. Falls back to $FEL4_MANIFEST_PATH.")
	mFlag := flagSet.String("m", "", "Path to the fel4.toml manifest (shorthand).")
	profileFlag := flagSet.String("profile", "", "Build profile to resolve: 'debug' or 'release'. Falls back to $PROFILE.")
	whitelistFlag := flagSet.Bool("enforce-whitelist", false, "Reject resolved properties outside the recognized seL4 set.")
	projectDirFlag := flagSet.String("project-dir", ".", "Project root containing deps/seL4_kernel.")
	targetFlag := flagSet.String("target", "", "Requested build target; when set, emits the full cmake plan for it.")
	exemplarFlag := flagSet.Bool("exemplar", false, "Print the exemplar fel4.toml and exit.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}
	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	manifestPath := *manifestFlag
	if manifestPath == "" {
		manifestPath = *mFlag
	}
	profile := *profileFlag

	// An exemplar request touches neither the filesystem nor the
	// environment; everything else falls back per setting.
	if !*exemplarFlag {
		if manifestPath == "" {
			path, err := discovery.ManifestPathFromEnv()
			if err != nil {
				return nil, false, &ExitError{Code: 2, Message: err.Error()}
			}
			manifestPath = path
		}
		if profile == "" {
			envProfile, ok, err := discovery.ProfileFromEnv()
			if err != nil {
				return nil, false, &ExitError{Code: 2, Message: err.Error()}
			}
			if ok {
				profile = envProfile.Name()
			}
		}
	}
	if profile == "" {
		profile = "debug"
	}

	config, err := app.NewConfig(app.Config{
		ManifestPath:     manifestPath,
		Profile:          profile,
		EnforceWhitelist: *whitelistFlag,
		ProjectDir:       *projectDirFlag,
		RequestedTarget:  *targetFlag,
		Exemplar:         *exemplarFlag,
		LogFormat:        logFormat,
		LogLevel:         logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return config, false, nil
}
