package executor

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/vk/featmatrix/internal/ctxlog"
	"github.com/vk/featmatrix/internal/matrix"
	"github.com/vk/featmatrix/internal/report"
)

// configState tracks the per-configuration abort machine.
type configState int

const (
	running configState = iota
	aborted
)

// worker drains the jobs channel, driving one configuration at a time.
func (e *Executor) worker(ctx context.Context, jobs <-chan matrix.Config, wg *sync.WaitGroup, workerID int) {
	defer wg.Done()
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Worker started.", "workerID", workerID)

	for cfg := range jobs {
		e.runConfig(ctx, cfg)
	}
	logger.Debug("Worker finished.", "workerID", workerID)
}

// runConfig drives the command sequence for one configuration. The first
// failing invocation flips the state to aborted, which curtails the
// remaining commands of this configuration; other configurations are
// unaffected.
func (e *Executor) runConfig(ctx context.Context, cfg matrix.Config) {
	logger := ctxlog.FromContext(ctx).With("config", cfg.String())
	logger.Debug("Starting configuration.")

	state := running
	outcome := report.Outcome{Config: cfg}
	for _, cmd := range e.commands {
		if state == aborted {
			break
		}

		args := cmd.Args(cfg)
		fmt.Fprintf(e.outW, ">> %s %s\n", e.tool, strings.Join(args, " "))

		if err := e.runner.Run(ctx, e.tool, args); err != nil {
			logger.Error("Invocation failed.", "command", cmd.String(), "error", err)
			state = aborted
			outcome.Failed = true
			outcome.Command = cmd
		}
	}

	if e.recorder != nil {
		e.recorder.Record(outcome)
	}
	if state == running {
		logger.Debug("Configuration passed.")
	}
}
