package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/featmatrix/internal/config"
	"github.com/vk/featmatrix/internal/ctxlog"
	"github.com/vk/featmatrix/internal/report"
	"github.com/vk/featmatrix/internal/toolexec"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	manifest *config.Manifest
	runner   toolexec.Runner
	report   *report.Report
}

// NewApp is the constructor for the main application. It builds an isolated
// logger and loads the manifest through the provided loader. A nil runner
// defaults to the real subprocess runner; tests inject a fake.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader, runner toolexec.Runner) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	manifest, err := loader.Load(ctx, appConfig.ManifestPath)
	if err != nil {
		// A failure to load the manifest is a fatal startup error.
		panic(fmt.Errorf("failed to load manifest: %w", err))
	}
	logger.Debug("Manifest loaded.", "project", manifest.Project, "features", len(manifest.Features))

	if runner == nil {
		runner = toolexec.NewExecRunner(outW, os.Stderr)
	}

	return &App{
		outW:     outW,
		logger:   logger,
		manifest: manifest,
		runner:   runner,
		report:   report.New(),
	}
}

// Report returns the aggregated sweep outcomes. The entrypoint uses it to
// derive the process exit code; it is also convenient for testing.
func (a *App) Report() *report.Report {
	return a.report
}
