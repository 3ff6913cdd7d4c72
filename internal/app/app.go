package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/primespectgo/internal/config"
	"github.com/vk/primespectgo/internal/ctxlog"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	model  *config.Model
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and a validated
// analysis model. Reports are written to outW, logs to logW.
func NewApp(outW, logW io.Writer, appConfig *Config, loader config.Loader) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	var model *config.Model
	if appConfig.AnalysisPath == "" {
		model = config.NewReferenceModel()
		logger.Debug("No analysis path configured, using the built-in reference analysis.", "bound", config.DefaultBound)
	} else {
		loaded, err := loader.Load(ctx, appConfig.AnalysisPath)
		if err != nil {
			// A failure to load config is a fatal startup error.
			panic(fmt.Errorf("failed to load configuration: %w", err))
		}
		model = loaded
		logger.Debug("Analysis definitions loaded and translated into unified model.")
	}

	if err := model.Validate(); err != nil {
		// Invalid analysis values cannot be recovered from at runtime.
		panic(fmt.Errorf("invalid analysis configuration: %w", err))
	}
	logger.Debug("Analysis model validation passed.", "analyses", len(model.Analyses))

	return &App{
		outW:   outW,
		logger: logger,
		config: appConfig,
		model:  model,
	}
}

// Model returns the application's analysis model. This is primarily for testing.
func (a *App) Model() *config.Model {
	return a.model
}
