package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// CheckCollision reports whether the head touches the border ring or any
// other segment of the snake.
func (g *Game) CheckCollision() bool {
	head := g.snake[0]

	if !g.current.Interior().Contains(head) {
		return true
	}

	// Self collision, skipping the head itself
	for i := 1; i < len(g.snake); i++ {
		if g.snake[i] == head {
			return true
		}
	}
	return false
}

// PlaceFood moves the food to a uniformly random interior cell not covered
// by the snake. When no such cell exists the board is full: the food stays
// where it is, the game is marked won and ends. Returns false in that case.
func (g *Game) PlaceFood() bool {
	interior := g.current.Interior()

	// Mark occupied cells once so the scan stays linear in board area
	occupied := make([]bool, g.cfg.Board.Width*g.cfg.Board.Height)
	for _, seg := range g.snake {
		if g.current.Bounds().Contains(seg) {
			occupied[seg.Y*g.cfg.Board.Width+seg.X] = true
		}
	}

	emptyCells := make([]core.Position, 0, interior.Area())
	for y := interior.Y; y < interior.Bottom(); y++ {
		for x := interior.X; x < interior.Right(); x++ {
			if !occupied[y*g.cfg.Board.Width+x] {
				emptyCells = append(emptyCells, core.Position{X: x, Y: y})
			}
		}
	}

	if len(emptyCells) == 0 {
		g.won = true
		g.gameOver = true
		return false
	}

	g.food = emptyCells[g.rng.Intn(len(emptyCells))]
	return true
}
