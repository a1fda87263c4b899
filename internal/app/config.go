package app

import (
	"errors"

	"github.com/vk/featmatrix/internal/matrix"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ManifestPath string

	// Commands is the verification sequence to run per configuration.
	// Empty selects the full canonical sequence.
	Commands []matrix.Command

	LogFormat   string
	LogLevel    string
	WorkerCount int
}

// NewConfig validates and normalizes a Config.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ManifestPath == "" {
		return nil, errors.New("ManifestPath is a required configuration field and cannot be empty")
	}
	if cfg.WorkerCount < 1 {
		return nil, errors.New("WorkerCount must be at least 1")
	}
	if len(cfg.Commands) == 0 {
		cfg.Commands = matrix.Commands()
	}
	return &cfg, nil
}
