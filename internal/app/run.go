package app

import (
	"context"
	"fmt"

	"github.com/vk/featmatrix/internal/ctxlog"
	"github.com/vk/featmatrix/internal/executor"
	"github.com/vk/featmatrix/internal/matrix"
)

// Run executes the main application logic based on the provided configuration.
func (a *App) Run(ctx context.Context, appConfig *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	configs := matrix.Enumerate(a.manifest.Features)
	a.logger.Info("Configurations enumerated.",
		"project", a.manifest.Project,
		"features", len(a.manifest.Features),
		"configurations", len(configs))

	a.logger.Info("🚀 Starting sweep...", "tool", a.manifest.Tool, "workers", appConfig.WorkerCount)
	exec := executor.New(a.manifest.Tool, appConfig.Commands, a.runner, a.report, appConfig.WorkerCount, a.outW)
	if err := exec.Run(ctx, configs); err != nil {
		return fmt.Errorf("sweep did not complete: %w", err)
	}
	a.logger.Info("🏁 Sweep finished.")

	fmt.Fprint(a.outW, a.report.Summary())
	if failures := a.report.Failures(); len(failures) > 0 {
		a.logger.Warn("Some configurations failed.", "failed", len(failures))
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
