package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/featmatrix/internal/config"
	"github.com/vk/featmatrix/internal/ctxlog"
	"github.com/vk/featmatrix/internal/fsutil"
	"github.com/vk/featmatrix/internal/schema"
)

// manifestExtension is the file suffix searched for when the manifest path
// is a directory.
const manifestExtension = ".hcl"

// Loader is the HCL-backed implementation of config.Loader.
type Loader struct{}

// NewLoader creates a new HCL manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load implements config.Loader. The path may be a single manifest file or
// a directory searched recursively; exactly one project block must result.
func (l *Loader) Load(ctx context.Context, path string) (*config.Manifest, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading manifest.", "path", path)

	files, err := fsutil.FindManifests(path, manifestExtension)
	if err != nil {
		return nil, err
	}

	parser := hclparse.NewParser()
	var projects []*schema.Project
	for _, name := range files {
		hclFile, diags := parser.ParseHCLFile(name)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse %s: %w", name, diags)
		}

		var file schema.File
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &file); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode %s: %w", name, diags)
		}
		projects = append(projects, file.Projects...)
	}

	if len(projects) == 0 {
		return nil, fmt.Errorf("no project block found under %s", path)
	}
	if len(projects) > 1 {
		return nil, fmt.Errorf("expected exactly one project block under %s, found %d", path, len(projects))
	}

	manifest, err := l.translateProject(projects[0])
	if err != nil {
		return nil, err
	}
	logger.Debug("Manifest loaded and translated into unified model.",
		"project", manifest.Project, "tool", manifest.Tool, "features", len(manifest.Features))
	return manifest, nil
}
