package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			Width:  40,
			Height: 20,
		},
		Snake: PlayerConfig{
			InitialLength: 3,
		},
		Timing: TimingConfig{
			BaseIntervalH: 160,
			BaseIntervalV: 160,
			PollInterval:  16,
		},
		Difficulty: SpeedCurve{
			FoodPerLevel:    3,
			PercentPerLevel: 5,
			MinInterval:     40,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
