// Package executor drives the verification sweep. Every configuration from
// the enumerator runs the command sequence against the external tool, with
// failures isolated to the configuration they occurred in: the first
// nonzero exit aborts the remaining commands of that configuration only,
// and the sweep over the other configurations always completes.
package executor

import (
	"context"
	"io"
	"sync"

	"github.com/vk/featmatrix/internal/ctxlog"
	"github.com/vk/featmatrix/internal/matrix"
	"github.com/vk/featmatrix/internal/report"
	"github.com/vk/featmatrix/internal/toolexec"
)

// Executor runs the (configuration x command) matrix.
type Executor struct {
	tool     string
	commands []matrix.Command
	runner   toolexec.Runner
	recorder report.Recorder
	workers  int
	outW     io.Writer
}

// New creates an executor. workers is the number of configurations driven
// concurrently; 1 reproduces a strictly sequential sweep. recorder may be
// nil when no aggregation is wanted.
func New(tool string, commands []matrix.Command, runner toolexec.Runner, recorder report.Recorder, workers int, outW io.Writer) *Executor {
	if workers < 1 {
		workers = 1
	}
	return &Executor{
		tool:     tool,
		commands: commands,
		runner:   runner,
		recorder: recorder,
		workers:  workers,
		outW:     outW,
	}
}

// Run sweeps all configurations in enumeration order. It returns an error
// only when the sweep itself could not complete (context cancelled);
// individual invocation failures never abort the sweep.
func (e *Executor) Run(ctx context.Context, configs []matrix.Config) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Executor starting sweep.", "configurations", len(configs), "workers", e.workers)

	jobs := make(chan matrix.Config)
	var wg sync.WaitGroup
	wg.Add(e.workers)
	for i := 0; i < e.workers; i++ {
		go e.worker(ctx, jobs, &wg, i)
	}

	var dispatchErr error
	for _, cfg := range configs {
		select {
		case jobs <- cfg:
		case <-ctx.Done():
			dispatchErr = ctx.Err()
		}
		if dispatchErr != nil {
			break
		}
	}
	close(jobs)
	wg.Wait()

	logger.Debug("Executor finished sweep.")
	return dispatchErr
}
