// Package config defines the format-agnostic manifest model for the
// application, along with the Loader interface for reading it from a
// concrete format. The `config.Manifest` is the single source of truth for
// the matrix and executor packages; the HCL implementation lives in a
// separate package.
package config
