package tui

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Summary screen lines, one per row from the top.
const (
	summaryTitle  = "Game Over!"
	summaryScore  = "Final Score: %d"
	summaryLevel  = "Difficulty Level: %d"
	summaryPrompt = "Press any key to exit..."
)

// Loop runs one game on a terminal: input, timed movement and rendering.
type Loop struct {
	term     Terminal
	clock    Clock
	game     *snake.Game
	renderer *Renderer
	keymap   *KeyMapper
	logger   *log.Logger

	pollMs   uint32
	lastMove uint64
}

// NewLoop creates a loop driving game on term with the given clock.
func NewLoop(term Terminal, clock Clock, game *snake.Game, logger *log.Logger) *Loop {
	return &Loop{
		term:     term,
		clock:    clock,
		game:     game,
		renderer: NewRenderer(term),
		keymap:   NewKeyMapper(),
		logger:   logger,
		pollMs:   uint32(game.Config().Timing.PollInterval),
	}
}

// Run plays until the game ends, then shows the summary and waits for a key.
func (l *Loop) Run() error {
	if err := l.Play(); err != nil {
		return err
	}
	return l.ShowSummary()
}

// Play runs the game loop until the game is over.
func (l *Loop) Play() error {
	g := l.game
	if err := l.renderer.Render(g, true); err != nil {
		return err
	}
	l.lastMove = l.clock.NowMs()
	l.logger.Debug("game started", "width", g.Width(), "height", g.Height(), "food", g.Food())

	for !g.GameOver() {
		if l.handleInput() {
			break
		}

		now := l.clock.NowMs()
		if now-l.lastMove >= uint64(g.TickInterval()) {
			if err := l.step(); err != nil {
				return err
			}
			l.lastMove = now
		}

		l.clock.SleepMs(l.pollMs)
	}

	l.logger.Info("game over",
		"score", g.Score(),
		"level", g.Level(),
		"ticks", g.Tick(),
		"won", g.Won(),
		"quit", g.QuitRequested(),
	)
	l.logger.Debug("final state", "snapshot", g.Snapshot())
	return nil
}

// handleInput consumes at most one key. It reports whether the player quit.
func (l *Loop) handleInput() bool {
	if !l.term.PollKey() {
		return false
	}
	key := l.term.ReadKey()
	action := l.keymap.MapKey(key)

	if dir, ok := action.Direction(); ok {
		if l.game.SetPendingDirection(dir) {
			l.logger.Debug("direction buffered", "dir", dir, "tick", l.game.Tick())
		}
		return false
	}

	switch action {
	case core.ActionQuit:
		l.game.Quit()
		return true
	case core.ActionNone:
		if key != 0 {
			l.logger.Debug("key ignored", "key", fmt.Sprintf("%#02x", key))
		}
	}
	return false
}

// step performs one movement tick and draws the result.
func (l *Loop) step() error {
	g := l.game
	level := g.Level()

	if g.Advance() {
		g.OnFoodEaten()
		if !g.PlaceFood() {
			l.logger.Info("board full", "score", g.Score())
		}
		l.logger.Debug("food eaten", "score", g.Score(), "len", g.Len(), "food", g.Food())
		if g.Level() != level {
			h, v := g.Intervals()
			l.logger.Info("speed up", "level", g.Level(), "interval_h", h, "interval_v", v)
		}
	}

	g.Rebuild()
	if g.CheckCollision() {
		g.Crash()
		l.logger.Debug("collision", "head", g.Head(), "tick", g.Tick(), "state", g.DebugState())
	}

	return l.renderer.Render(g, false)
}

// ShowSummary clears the screen, prints the final score and level and
// waits for any key.
func (l *Loop) ShowSummary() error {
	lines := []string{
		summaryTitle,
		fmt.Sprintf(summaryScore, l.game.Score()),
		fmt.Sprintf(summaryLevel, l.game.Level()),
		summaryPrompt,
	}

	l.term.ClearScreen()
	for row, line := range lines {
		l.term.MoveCursor(row, 0)
		l.term.WriteString(line)
	}
	if err := l.term.Flush(); err != nil {
		return fmt.Errorf("tui: cannot draw summary: %w", err)
	}

	for !l.term.PollKey() {
		l.clock.SleepMs(l.pollMs)
	}
	l.term.ReadKey()
	return nil
}
