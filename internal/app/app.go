package app

import (
	"io"
	"log/slog"
)

// App encapsulates the application's configuration, logger, and output
// streams for one invocation.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
}

// NewApp constructs the application. Resolved output (properties or cmake
// flags) goes to outW; logs go to logW so the two streams never interleave.
func NewApp(outW, logW io.Writer, config *Config) *App {
	logger := newLogger(config.LogLevel, config.LogFormat, logW)
	logger.Debug("Logger configured successfully.")
	return &App{
		outW:   outW,
		logger: logger,
		config: config,
	}
}
