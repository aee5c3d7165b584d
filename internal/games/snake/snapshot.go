package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// GameStateType represents the current game state.
type GameStateType string

const (
	StateRunning  GameStateType = "running"
	StateGameOver GameStateType = "game_over"
	StateWin      GameStateType = "win"
	StateQuit     GameStateType = "quit"
)

// Snapshot captures the complete game state for determinism testing and logging.
type Snapshot struct {
	Tick      uint64
	Level     int
	Score     int
	FoodEaten int // Food eaten since the last speed-up
	SnakeLen  int
	HeadX     int
	HeadY     int
	Dir       core.Direction
	Pending   core.Direction
	FoodX     int
	FoodY     int
	IntervalH int
	IntervalV int
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StateRunning
	switch {
	case g.won:
		state = StateWin
	case g.quit:
		state = StateQuit
	case g.gameOver:
		state = StateGameOver
	}

	head := g.snake[0]

	return Snapshot{
		Tick:      g.tick,
		Level:     g.level,
		Score:     g.score,
		FoodEaten: g.foodSinceSpeedup,
		SnakeLen:  len(g.snake),
		HeadX:     head.X,
		HeadY:     head.Y,
		Dir:       g.direction,
		Pending:   g.pendingDir,
		FoodX:     g.food.X,
		FoodY:     g.food.Y,
		IntervalH: g.intervalH,
		IntervalV: g.intervalV,
		State:     state,
	}
}
