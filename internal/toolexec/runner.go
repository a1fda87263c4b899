// Package toolexec spawns the external build tool and reports its exit
// status. It is the program's only process boundary: argv in, exit status
// out. The child's stdout and stderr pass through untouched; nothing in the
// output is interpreted.
package toolexec

import (
	"context"
	"io"
	"os/exec"
)

// Runner executes one external tool invocation and blocks until it exits.
// A nil error means exit status zero; any nonzero exit (or a failure to
// start the process at all) comes back as a non-nil error.
type Runner interface {
	Run(ctx context.Context, name string, args []string) error
}

// ExecRunner runs invocations with os/exec, argv-style without a shell.
// The child inherits the parent's environment; Dir overrides the working
// directory when set.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
	Dir    string
}

// NewExecRunner creates a runner wiring child output to the given writers.
func NewExecRunner(stdout, stderr io.Writer) *ExecRunner {
	return &ExecRunner{Stdout: stdout, Stderr: stderr}
}

// Run implements Runner.
func (r *ExecRunner) Run(ctx context.Context, name string, args []string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	cmd.Dir = r.Dir
	return cmd.Run()
}
