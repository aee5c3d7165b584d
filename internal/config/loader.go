package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// LoadSnake loads the Snake configuration from the embedded defaults.
// Settings are fixed at build time; there is no user override path.
func LoadSnake() (SnakeConfig, error) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		return DefaultSnakeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes and validates a Snake configuration document.
// Fields missing from the document keep their default values.
func Parse(data []byte) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse snake settings: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
