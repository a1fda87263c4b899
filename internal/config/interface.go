package config

import "context"

// Loader is the interface for a format-specific manifest loader.
type Loader interface {
	// Load reads the manifest reachable from path, which may be a single
	// file or a directory, and translates it into the format-agnostic model.
	Load(ctx context.Context, path string) (*Manifest, error)
}
