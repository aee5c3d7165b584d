// Package snake implements the Snake game state: the snake movement state
// machine, collision and food logic, the difficulty controller and the grid
// model rebuilt every tick. It performs no I/O; the platform layer drives it.
package snake

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Game holds the complete state of one Snake game.
type Game struct {
	cfg  config.SnakeConfig
	rng  *rand.Rand
	tick uint64

	// Frames: current is rebuilt every tick, previous is the last drawn frame
	current  *core.Grid
	previous *core.Grid

	// Snake state
	snake      []core.Position // Head at index 0
	direction  core.Direction
	pendingDir core.Direction // Buffered direction for next move
	dirLocked  bool           // A direction change was accepted this tick

	food      core.Position
	score     int
	prevScore int // Score shown on the status line

	// Speed state
	baseIntervalH    int
	baseIntervalV    int
	intervalH        int
	intervalV        int
	foodSinceSpeedup int
	level            int

	// Game state flags
	gameOver bool
	won      bool
	quit     bool
}

// New creates a game with the given settings and seed, ready to play.
func New(cfg config.SnakeConfig, seed int64) *Game {
	g := &Game{
		cfg:      cfg,
		current:  core.NewGrid(cfg.Board.Width, cfg.Board.Height),
		previous: core.NewGrid(cfg.Board.Width, cfg.Board.Height),
	}
	g.Reset(seed)
	return g
}

// Reset initializes/restarts the game.
func (g *Game) Reset(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
	g.tick = 0
	g.score = 0
	g.prevScore = 0
	g.gameOver = false
	g.won = false
	g.quit = false
	g.foodSinceSpeedup = 0
	g.level = 1

	g.baseIntervalH = g.cfg.Timing.BaseIntervalH
	g.baseIntervalV = g.cfg.Timing.BaseIntervalV
	g.intervalH = g.baseIntervalH
	g.intervalV = g.baseIntervalV

	g.current.Clear()
	g.previous.Clear()

	g.initSnake()
	g.PlaceFood()
	g.Rebuild()
}

// initSnake centres the snake horizontally, head on the right, moving right.
func (g *Game) initSnake() {
	capacity := g.cfg.Board.Width * g.cfg.Board.Height
	g.snake = make([]core.Position, g.cfg.Snake.InitialLength, capacity)

	midX := g.cfg.Board.Width / 2
	midY := g.cfg.Board.Height / 2
	for i := range g.snake {
		g.snake[i] = core.Position{X: midX - i, Y: midY}
	}

	g.direction = core.DirRight
	g.pendingDir = core.DirRight
	g.dirLocked = false
}

// SetPendingDirection buffers a direction change for the next move.
// At most one change is accepted per tick and never the reverse of the
// active direction. Rejected requests are ignored silently; the result only
// reports whether the request was taken.
func (g *Game) SetPendingDirection(d core.Direction) bool {
	if g.dirLocked {
		return false
	}
	// Same direction is a no-op and leaves the tick unlocked
	if d == g.direction || d == g.direction.Opposite() {
		return false
	}
	g.pendingDir = d
	g.dirLocked = true
	return true
}

// Advance moves the snake one cell and reports whether it ate the food.
// Collision is not checked here; see CheckCollision.
func (g *Game) Advance() bool {
	g.tick++

	// Apply buffered direction
	g.direction = g.pendingDir
	g.dirLocked = false

	tail := g.snake[len(g.snake)-1]

	// Shift the body toward the head
	for i := len(g.snake) - 1; i > 0; i-- {
		g.snake[i] = g.snake[i-1]
	}
	g.snake[0] = g.snake[0].Step(g.direction)

	if g.snake[0] != g.food {
		return false
	}

	if len(g.snake) == cap(g.snake) {
		panic(fmt.Sprintf("snake: length %d exceeds grid capacity", len(g.snake)+1))
	}
	g.snake = append(g.snake, tail)
	g.score++
	return true
}

// Crash ends the game after a collision.
func (g *Game) Crash() {
	g.gameOver = true
}

// Quit ends the game at the player's request.
func (g *Game) Quit() {
	g.quit = true
	g.gameOver = true
}

// TickInterval returns the milliseconds between moves along the axis of
// the active direction.
func (g *Game) TickInterval() int {
	if g.direction.Horizontal() {
		return g.intervalH
	}
	return g.intervalV
}

// Intervals returns the current horizontal and vertical tick intervals.
func (g *Game) Intervals() (h, v int) {
	return g.intervalH, g.intervalV
}

// Config returns the settings the game was created with.
func (g *Game) Config() config.SnakeConfig {
	return g.cfg
}

// Width returns the grid width.
func (g *Game) Width() int {
	return g.cfg.Board.Width
}

// Height returns the grid height.
func (g *Game) Height() int {
	return g.cfg.Board.Height
}

// Current returns the frame built by the last Rebuild.
func (g *Game) Current() *core.Grid {
	return g.current
}

// Previous returns the last frame drawn to the terminal.
func (g *Game) Previous() *core.Grid {
	return g.previous
}

// CommitFrame records the current frame and score as drawn.
// The renderer calls it after every render.
func (g *Game) CommitFrame() {
	g.previous.CopyFrom(g.current)
	g.prevScore = g.score
}

// ScoreChanged reports whether the score differs from the one last drawn.
func (g *Game) ScoreChanged() bool {
	return g.score != g.prevScore
}

// Snake returns a copy of the snake segments, head first.
func (g *Game) Snake() []core.Position {
	out := make([]core.Position, len(g.snake))
	copy(out, g.snake)
	return out
}

// Head returns the head position.
func (g *Game) Head() core.Position {
	return g.snake[0]
}

// Len returns the snake length.
func (g *Game) Len() int {
	return len(g.snake)
}

// Direction returns the active direction.
func (g *Game) Direction() core.Direction {
	return g.direction
}

// PendingDirection returns the direction applied on the next move.
func (g *Game) PendingDirection() core.Direction {
	return g.pendingDir
}

// Food returns the food position.
func (g *Game) Food() core.Position {
	return g.food
}

// Score returns the number of food items eaten.
func (g *Game) Score() int {
	return g.score
}

// Level returns the difficulty level, starting at 1.
func (g *Game) Level() int {
	return g.level
}

// Tick returns the number of moves made so far.
func (g *Game) Tick() uint64 {
	return g.tick
}

// GameOver reports whether the game has reached its terminal state.
func (g *Game) GameOver() bool {
	return g.gameOver
}

// Won reports whether the game ended with the board full.
func (g *Game) Won() bool {
	return g.won
}

// QuitRequested reports whether the player ended the game.
func (g *Game) QuitRequested() bool {
	return g.quit
}

// isSnakeAt checks if the snake occupies the given point.
func (g *Game) isSnakeAt(p core.Position) bool {
	for _, seg := range g.snake {
		if seg == p {
			return true
		}
	}
	return false
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Tick: %d, Score: %d, Level: %d\n", g.tick, g.score, g.level))
	b.WriteString(fmt.Sprintf("Snake len: %d, Direction: %s, Pending: %s\n", len(g.snake), g.direction, g.pendingDir))
	b.WriteString(fmt.Sprintf("Head: (%d, %d), Food: (%d, %d)\n", g.snake[0].X, g.snake[0].Y, g.food.X, g.food.Y))
	b.WriteString(fmt.Sprintf("Intervals: %d/%d ms\n", g.intervalH, g.intervalV))
	b.WriteString(fmt.Sprintf("GameOver: %v, Won: %v, Quit: %v\n", g.gameOver, g.won, g.quit))
	return b.String()
}
