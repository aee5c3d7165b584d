package config

import (
	"strings"
	"testing"
)

func TestLoadSnakeMatchesDefaults(t *testing.T) {
	cfg, err := LoadSnake()
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}

	if cfg != DefaultSnakeConfig() {
		t.Errorf("Embedded YAML and DefaultSnakeConfig() disagree:\n%+v\n%+v", cfg, DefaultSnakeConfig())
	}
}

func TestDefaultSnakeConfigValid(t *testing.T) {
	if err := DefaultSnakeConfig().Validate(); err != nil {
		t.Errorf("DefaultSnakeConfig() should be valid, got %v", err)
	}
}

func TestParsePartialDocument(t *testing.T) {
	cfg, err := Parse([]byte("board:\n  width: 30\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if cfg.Board.Width != 30 {
		t.Errorf("Board.Width = %d, expected 30", cfg.Board.Width)
	}
	if cfg.Board.Height != 20 {
		t.Errorf("Board.Height should keep default 20, got %d", cfg.Board.Height)
	}
	if cfg.Timing.BaseIntervalH != 160 {
		t.Errorf("Timing.BaseIntervalH should keep default 160, got %d", cfg.Timing.BaseIntervalH)
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("board: [unterminated"))
	if err == nil {
		t.Fatal("Parse() should fail on malformed YAML")
	}
	if !strings.HasPrefix(err.Error(), "config:") {
		t.Errorf("Error should carry the package prefix, got %q", err.Error())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *SnakeConfig)
		valid  bool
	}{
		{"defaults", func(c *SnakeConfig) {}, true},
		{"board without interior", func(c *SnakeConfig) { c.Board.Width = 2 }, false},
		{"zero length snake", func(c *SnakeConfig) { c.Snake.InitialLength = 0 }, false},
		{"snake wider than half the board", func(c *SnakeConfig) { c.Snake.InitialLength = 21 }, false},
		{"longest fitting snake", func(c *SnakeConfig) { c.Snake.InitialLength = 20 }, true},
		{"zero horizontal interval", func(c *SnakeConfig) { c.Timing.BaseIntervalH = 0 }, false},
		{"negative vertical interval", func(c *SnakeConfig) { c.Timing.BaseIntervalV = -1 }, false},
		{"zero poll interval", func(c *SnakeConfig) { c.Timing.PollInterval = 0 }, false},
		{"zero food per level", func(c *SnakeConfig) { c.Difficulty.FoodPerLevel = 0 }, false},
		{"zero floor", func(c *SnakeConfig) { c.Difficulty.MinInterval = 0 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err == nil) != tc.valid {
				t.Errorf("Validate() = %v, expected valid=%v", err, tc.valid)
			}
		})
	}
}
