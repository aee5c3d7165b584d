package tui

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

const (
	statusFormat = "Score: %d | Level: %d         "
	instructions = "Controls: W/^ (Up), A/< (Left), S/v (Down), D/> (Right), Q (Quit)"
)

// Terminal rows used by the layout. The board occupies rows
// boardTop..boardTop+height-1 and the instructions follow it.
const (
	statusRow = 0
	boardTop  = 1
)

// Renderer draws a game onto a Terminal, writing only what changed since
// the last frame.
type Renderer struct {
	term Terminal
}

// NewRenderer creates a renderer drawing on term.
func NewRenderer(term Terminal) *Renderer {
	return &Renderer{term: term}
}

// Render draws the game. With forceFull every cell, the status line and the
// instructions are written; otherwise only cells that differ from the
// previous frame, plus the status line when the score moved.
// The drawn frame is committed, so rendering twice without a state change
// writes nothing the second time.
func (r *Renderer) Render(g *snake.Game, forceFull bool) error {
	if forceFull || g.ScoreChanged() {
		r.drawStatus(g)
	}

	if forceFull {
		r.drawFull(g)
		r.term.MoveCursor(boardTop+g.Height(), 0)
		r.term.WriteString(instructions)
	} else {
		r.drawDiff(g)
	}

	g.CommitFrame()

	if err := r.term.Flush(); err != nil {
		return fmt.Errorf("tui: cannot flush frame: %w", err)
	}
	return nil
}

func (r *Renderer) drawStatus(g *snake.Game) {
	r.term.MoveCursor(statusRow, 0)
	r.term.WriteString(fmt.Sprintf(statusFormat, g.Score(), g.Level()))
}

// drawFull writes every cell row by row.
func (r *Renderer) drawFull(g *snake.Game) {
	cur := g.Current()
	for y, ny := 0, cur.Height(); y < ny; y++ {
		r.term.MoveCursor(boardTop+y, 0)
		for x, nx := 0, cur.Width(); x < nx; x++ {
			cell := cur.Get(core.Position{X: x, Y: y})
			r.term.WriteCell(cell.Rune(), cell.Color())
		}
	}
}

// drawDiff writes each changed cell after positioning the cursor on it.
func (r *Renderer) drawDiff(g *snake.Game) {
	cur, prev := g.Current(), g.Previous()
	for y, ny := 0, cur.Height(); y < ny; y++ {
		for x, nx := 0, cur.Width(); x < nx; x++ {
			p := core.Position{X: x, Y: y}
			cell := cur.Get(p)
			if cell == prev.Get(p) {
				continue
			}
			r.term.MoveCursor(boardTop+y, x)
			r.term.WriteCell(cell.Rune(), cell.Color())
		}
	}
}
