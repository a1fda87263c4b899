package schema

import "github.com/hashicorp/hcl/v2"

// Project represents a `project` block from a user's manifest file. The
// features attribute stays an unevaluated expression here; the loader
// evaluates and validates it during translation.
type Project struct {
	Name     string         `hcl:"name,label"`
	Tool     string         `hcl:"tool,optional"`
	Features hcl.Expression `hcl:"features"`
}

// File represents the top-level structure of a manifest file.
type File struct {
	Projects []*Project `hcl:"project,block"`
	Body     hcl.Body   `hcl:",remain"`
}
