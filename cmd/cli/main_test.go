package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/featmatrix/internal/cli"
	"github.com/vk/featmatrix/internal/testutil"
)

func TestRun_PanicRecovery(t *testing.T) {
	t.Parallel()

	// A manifest with a syntax error panics inside app.NewApp; run must
	// recover it into a plain error.
	path := testutil.WriteManifest(t, `
		project "broken" {
			features = [
	`)
	out := &bytes.Buffer{}

	err := run(out, []string{path})
	require.Error(t, err)
	require.Contains(t, err.Error(), "application startup panicked")
	require.Contains(t, err.Error(), "failed to parse")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(out, []string{"-h"})
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "expected help text to be printed")
}

func TestRun_EndToEndCleanSweep(t *testing.T) {
	t.Parallel()

	// `true` ignores its arguments and exits zero, standing in for a build
	// tool whose every invocation succeeds.
	path := testutil.WriteManifest(t, `
		project "demo" {
			tool     = "true"
			features = ["a"]
		}
	`)
	out := &bytes.Buffer{}

	err := run(out, []string{"-log-level", "error", "-commands", "check", path})
	require.NoError(t, err)
	require.Contains(t, out.String(), ">> true check --all-targets --all-features")
	require.Contains(t, out.String(), ">> true check --all-targets --no-default-features --features a")
	require.Contains(t, out.String(), "3/3 configurations passed")
}

func TestRun_EndToEndFailureExitCode(t *testing.T) {
	t.Parallel()

	// `false` exits nonzero, so every configuration fails its first command
	// and the run maps to exit code 1.
	path := testutil.WriteManifest(t, `
		project "demo" {
			tool     = "false"
			features = ["a"]
		}
	`)
	out := &bytes.Buffer{}

	err := run(out, []string{"-log-level", "error", path})
	require.Error(t, err)
	exitErr, ok := err.(*cli.ExitError)
	require.True(t, ok, "expected an ExitError, got %T", err)
	require.Equal(t, 1, exitErr.Code)
	require.Contains(t, out.String(), "0/3 configurations passed")
}
