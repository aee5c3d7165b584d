package core

// RuntimeConfig contains per-run options passed to the game at start.
// Gameplay constants live in the config package; this only carries what
// changes between runs of the same binary.
type RuntimeConfig struct {
	Seed int64 // RNG seed for food placement (0 = derive from current time)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Seed: 0, // 0 means use current time in platform layer
	}
}
