// Package config provides the snake game's compile-time settings. Values are
// embedded YAML parsed at startup, with a hard-coded fallback.
package config

import "fmt"

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Board      BoardConfig  `yaml:"board"`
	Snake      PlayerConfig `yaml:"snake"`
	Timing     TimingConfig `yaml:"timing"`
	Difficulty SpeedCurve   `yaml:"difficulty"`
}

// BoardConfig defines the grid dimensions, border ring included.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig defines the snake at the start of a game.
type PlayerConfig struct {
	InitialLength int `yaml:"initial_length"`
}

// TimingConfig defines the loop timing in milliseconds.
type TimingConfig struct {
	BaseIntervalH int `yaml:"base_interval_h_ms"` // Tick interval while moving Left/Right
	BaseIntervalV int `yaml:"base_interval_v_ms"` // Tick interval while moving Up/Down
	PollInterval  int `yaml:"poll_interval_ms"`   // Sleep between input polls
}

// SpeedCurve defines how the tick interval shrinks as food is eaten.
type SpeedCurve struct {
	FoodPerLevel    int `yaml:"food_per_level"`    // Food items eaten per difficulty level
	PercentPerLevel int `yaml:"percent_per_level"` // Interval reduction per level, in percent of base
	MinInterval     int `yaml:"min_interval_ms"`   // Floor for both axes
}

// Validate checks that the settings describe a playable game.
func (c SnakeConfig) Validate() error {
	if c.Board.Width < 3 || c.Board.Height < 3 {
		return fmt.Errorf("config: board %dx%d has no interior", c.Board.Width, c.Board.Height)
	}
	if c.Snake.InitialLength < 1 {
		return fmt.Errorf("config: initial_length must be positive, got %d", c.Snake.InitialLength)
	}

	// The snake starts centred and extends left from the head
	headX, headY := c.Board.Width/2, c.Board.Height/2
	tailX := headX - (c.Snake.InitialLength - 1)
	if tailX < 1 || headX > c.Board.Width-2 || headY < 1 || headY > c.Board.Height-2 {
		return fmt.Errorf("config: snake of length %d does not fit a %dx%d board",
			c.Snake.InitialLength, c.Board.Width, c.Board.Height)
	}

	if c.Timing.BaseIntervalH <= 0 || c.Timing.BaseIntervalV <= 0 {
		return fmt.Errorf("config: base intervals must be positive, got %d/%d",
			c.Timing.BaseIntervalH, c.Timing.BaseIntervalV)
	}
	if c.Timing.PollInterval <= 0 {
		return fmt.Errorf("config: poll_interval_ms must be positive, got %d", c.Timing.PollInterval)
	}
	if c.Difficulty.FoodPerLevel <= 0 {
		return fmt.Errorf("config: food_per_level must be positive, got %d", c.Difficulty.FoodPerLevel)
	}
	if c.Difficulty.MinInterval <= 0 {
		return fmt.Errorf("config: min_interval_ms must be positive, got %d", c.Difficulty.MinInterval)
	}
	return nil
}
