package testutil

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/featmatrix/internal/ctxlog"
)

// Context returns a context carrying a discard logger, so packages that
// require a logger via ctxlog can run quietly in tests.
func Context() context.Context {
	return ctxlog.WithLogger(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// WriteManifest writes an HCL manifest into a fresh temp dir and returns the
// file's path.
func WriteManifest(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "main.hcl")
	err := os.WriteFile(path, []byte(contents), 0o600)
	require.NoError(t, err, "failed to write test manifest")
	return path
}
