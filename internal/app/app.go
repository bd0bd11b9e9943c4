package app

import (
	"io"
	"log/slog"
)

// App encapsulates the tool's dependencies, configuration, and lifecycle.
type App struct {
	inR    io.Reader
	outW   io.Writer
	logW   io.Writer
	logger *slog.Logger
	config *Config
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App with its own isolated logger writing to logW; results
// go to outW and "-check -" input comes from inR.
func NewApp(inR io.Reader, outW, logW io.Writer, config *Config) *App {
	logger := newLogger(config, logW)
	logger.Debug("Logger configured successfully.")
	return &App{
		inR:    inR,
		outW:   outW,
		logW:   logW,
		logger: logger,
		config: config,
	}
}
