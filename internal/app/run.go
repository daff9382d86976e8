package app

import (
	"context"
	"fmt"
	"sort"

	"github.com/fel4-build/fel4-config/internal/cmake"
	"github.com/fel4-build/fel4-config/internal/ctxlog"
	"github.com/fel4-build/fel4-config/internal/manifest"
	"github.com/fel4-build/fel4-config/internal/resolve"
)

// Run executes the load → resolve → generate → emit pipeline. Any failure
// is returned unwrapped so the caller can surface the error message
// verbatim; there is no partial output on failure.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.config.Exemplar {
		fmt.Fprint(a.outW, manifest.Exemplar)
		return nil
	}

	// Validated by NewConfig.
	profile, _ := manifest.ParseProfile(a.config.Profile)

	full, err := manifest.Load(ctx, a.config.ManifestPath)
	if err != nil {
		return err
	}

	cfg, err := resolve.Resolve(ctx, full, profile, resolve.Options{
		EnforceWhitelist: a.config.EnforceWhitelist,
	})
	if err != nil {
		return err
	}
	a.logger.Info("Configuration resolved.",
		"target", cfg.Target,
		"platform", cfg.Platform,
		"profile", cfg.Profile,
		"properties", len(cfg.Properties),
	)

	if a.config.RequestedTarget == "" {
		a.printProperties(cfg)
		return nil
	}

	build, err := cmake.Configure(cfg, a.config.ProjectDir, a.config.RequestedTarget)
	if err != nil {
		return err
	}
	a.logger.Debug("CMake build planned.",
		"kernel_path", build.KernelPath,
		"generator", build.Generator,
		"definitions", len(build.Definitions),
	)
	for _, d := range build.Definitions {
		fmt.Fprintln(a.outW, d.Flag())
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// printProperties emits the flat property map in sorted name order.
func (a *App) printProperties(cfg *resolve.Config) {
	names := make([]string, 0, len(cfg.Properties))
	for name := range cfg.Properties {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(a.outW, "%s = %s\n", name, cfg.Properties[name].Text())
	}
}
