package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Rebuild redraws the current frame from the game state. The frame it
// replaces is first copied into the previous grid.
func (g *Game) Rebuild() {
	g.previous.CopyFrom(g.current)

	g.current.Clear()
	g.current.DrawBorder(core.CellWall)

	// Segments on the border ring leave the wall intact
	interior := g.current.Interior()
	for i, seg := range g.snake {
		if !interior.Contains(seg) {
			continue
		}
		if i == 0 {
			g.current.Set(seg, core.CellSnakeHead)
		} else {
			g.current.Set(seg, core.CellSnakeBody)
		}
	}

	// On a full board the food sits under the head; keep the head visible
	if !g.won {
		g.current.Set(g.food, core.CellFood)
	}
}
