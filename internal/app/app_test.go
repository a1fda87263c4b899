package app

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/featmatrix/internal/config"
	"github.com/vk/featmatrix/internal/matrix"
	"github.com/vk/featmatrix/internal/testutil"
)

// stubLoader returns a fixed manifest, bypassing the filesystem.
type stubLoader struct {
	manifest *config.Manifest
	err      error
}

func (l stubLoader) Load(context.Context, string) (*config.Manifest, error) {
	return l.manifest, l.err
}

func newTestConfig(t *testing.T) *Config {
	t.Helper()
	appConfig, err := NewConfig(Config{
		ManifestPath: "unused.hcl",
		LogFormat:    "text",
		LogLevel:     "error",
		WorkerCount:  1,
	})
	require.NoError(t, err)
	return appConfig
}

func TestAppRun_CleanSweep(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	loader := stubLoader{manifest: &config.Manifest{
		Project:  "demo",
		Tool:     "cargo",
		Features: []string{"a"},
	}}
	runner := testutil.NewFakeRunner(nil)

	appConfig := newTestConfig(t)
	a := NewApp(out, appConfig, loader, runner)
	require.NoError(t, a.Run(context.Background(), appConfig))

	// 3 configurations x 4 commands.
	require.Len(t, runner.Invocations(), 12)
	require.False(t, a.Report().HasFailures())
	require.Contains(t, out.String(), ">> cargo check --all-targets --all-features")
	require.Contains(t, out.String(), "3/3 configurations passed")
}

func TestAppRun_FailuresInSummary(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	loader := stubLoader{manifest: &config.Manifest{
		Project:  "demo",
		Tool:     "cargo",
		Features: []string{"a"},
	}}
	runner := testutil.NewFakeRunner(func(_ string, args []string) bool {
		return args[0] == "build"
	})

	appConfig := newTestConfig(t)
	a := NewApp(out, appConfig, loader, runner)
	require.NoError(t, a.Run(context.Background(), appConfig))

	require.True(t, a.Report().HasFailures())
	require.Len(t, a.Report().Failures(), 3)
	require.Contains(t, out.String(), "0/3 configurations passed")
	// check and clippy ran, build failed, test never started: 3 per configuration.
	require.Len(t, runner.Invocations(), 9)
}

func TestNewApp_PanicsOnLoadError(t *testing.T) {
	t.Parallel()

	loader := stubLoader{err: errors.New("boom")}
	require.Panics(t, func() {
		NewApp(&bytes.Buffer{}, newTestConfig(t), loader, testutil.NewFakeRunner(nil))
	})
}

func TestNewConfig_Validation(t *testing.T) {
	t.Parallel()

	_, err := NewConfig(Config{WorkerCount: 1})
	require.Error(t, err)

	_, err = NewConfig(Config{ManifestPath: "m.hcl", WorkerCount: 0})
	require.Error(t, err)

	cfg, err := NewConfig(Config{ManifestPath: "m.hcl", WorkerCount: 1})
	require.NoError(t, err)
	require.Equal(t, matrix.Commands(), cfg.Commands, "empty command list defaults to the full sequence")
}
