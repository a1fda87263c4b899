package config

// DefaultTool is the external build tool used when a manifest does not name
// one explicitly.
const DefaultTool = "cargo"

// Manifest is the format-agnostic representation of a project's
// verification manifest: the static inputs of a sweep.
type Manifest struct {
	// Project is the label of the manifest's project block.
	Project string
	// Tool is the external build tool binary to invoke.
	Tool string
	// Features is the ordered list of optional build features. Order matters
	// only for enumeration order, never for semantics. Names are distinct
	// and non-empty; an empty list is valid.
	Features []string
}
