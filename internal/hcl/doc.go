// Package hcl implements the HCL-backed manifest loader. It parses manifest
// files, decodes `project` blocks against the schema package, and translates
// the result into the format-agnostic config model.
package hcl
