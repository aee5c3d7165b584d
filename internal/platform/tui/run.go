package tui

import (
	"errors"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Run plays one game of Snake on the process terminal. The terminal is
// restored before Run returns, including when the game panics.
func Run(cfg config.SnakeConfig, rc core.RuntimeConfig, logger *log.Logger) (err error) {
	seed := rc.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	console, err := Open()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := console.Close(); cerr != nil {
			logger.Error("terminal restore failed", "error", cerr)
			err = errors.Join(err, cerr)
		}
	}()

	logger.Info("starting snake", "seed", seed, "width", cfg.Board.Width, "height", cfg.Board.Height)

	game := snake.New(cfg, seed)
	loop := NewLoop(console, NewSystemClock(), game, logger)
	if err := loop.Run(); err != nil {
		logger.Error("game loop failed", "error", err)
		return err
	}

	logger.Info("finished", "score", game.Score(), "level", game.Level())
	return nil
}
