package core

import (
	"strings"
)

// Cell is the content of one grid square.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellSnakeHead
	CellSnakeBody
	CellFood
	CellWall
)

// Rune returns the glyph drawn for the cell.
func (c Cell) Rune() rune {
	switch c {
	case CellSnakeHead:
		return '@'
	case CellSnakeBody:
		return 'o'
	case CellFood:
		return '*'
	case CellWall:
		return '#'
	default:
		return ' '
	}
}

// Color returns the style category used to draw the cell.
// Head and body share one category.
func (c Cell) Color() Color {
	switch c {
	case CellWall:
		return ColorRed
	case CellFood:
		return ColorGreen
	case CellSnakeHead, CellSnakeBody:
		return ColorYellow
	default:
		return ColorDefault
	}
}

func (c Cell) String() string {
	switch c {
	case CellEmpty:
		return "empty"
	case CellSnakeHead:
		return "head"
	case CellSnakeBody:
		return "body"
	case CellFood:
		return "food"
	case CellWall:
		return "wall"
	default:
		return "unknown"
	}
}

// Grid is a fixed-size 2D buffer of cells describing one rendered frame.
// Dimensions never change after creation.
type Grid struct {
	width  int
	height int
	cells  [][]Cell
}

// NewGrid creates a new grid with the given dimensions, filled with CellEmpty.
func NewGrid(width, height int) *Grid {
	g := &Grid{
		width:  width,
		height: height,
	}
	g.cells = make([][]Cell, height)
	for y := range g.cells {
		g.cells[y] = make([]Cell, width)
	}
	return g
}

// Width returns the grid width in cells.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the grid height in cells.
func (g *Grid) Height() int {
	return g.height
}

// Bounds returns the rectangle covered by the grid.
func (g *Grid) Bounds() Rect {
	return NewRect(0, 0, g.width, g.height)
}

// Interior returns the rectangle inside the one-cell border ring.
func (g *Grid) Interior() Rect {
	return NewRect(1, 1, g.width-2, g.height-2)
}

// Clear fills the entire grid with CellEmpty.
func (g *Grid) Clear() {
	g.Fill(CellEmpty)
}

// Fill fills the entire grid with the given cell.
func (g *Grid) Fill(c Cell) {
	for y := range g.cells {
		for x := range g.cells[y] {
			g.cells[y][x] = c
		}
	}
}

// Set places a cell at the given position.
// Out-of-bounds coordinates are silently ignored.
func (g *Grid) Set(p Position, c Cell) {
	if p.X < 0 || p.X >= g.width || p.Y < 0 || p.Y >= g.height {
		return
	}
	g.cells[p.Y][p.X] = c
}

// Get returns the cell at the given position.
// Returns CellEmpty for out-of-bounds coordinates.
func (g *Grid) Get(p Position) Cell {
	if p.X < 0 || p.X >= g.width || p.Y < 0 || p.Y >= g.height {
		return CellEmpty
	}
	return g.cells[p.Y][p.X]
}

// DrawHLine draws a horizontal line from (x, y) with the given length.
func (g *Grid) DrawHLine(x, y, length int, c Cell) {
	for i := 0; i < length; i++ {
		g.Set(Position{X: x + i, Y: y}, c)
	}
}

// DrawVLine draws a vertical line from (x, y) with the given length.
func (g *Grid) DrawVLine(x, y, length int, c Cell) {
	for i := 0; i < length; i++ {
		g.Set(Position{X: x, Y: y + i}, c)
	}
}

// DrawBorder stamps the outermost ring of the grid with the given cell.
func (g *Grid) DrawBorder(c Cell) {
	g.DrawHLine(0, 0, g.width, c)
	g.DrawHLine(0, g.height-1, g.width, c)
	g.DrawVLine(0, 0, g.height, c)
	g.DrawVLine(g.width-1, 0, g.height, c)
}

// CopyFrom overwrites this grid with the overlapping area of src.
func (g *Grid) CopyFrom(src *Grid) {
	copyW := Min(g.width, src.width)
	copyH := Min(g.height, src.height)
	for y := 0; y < copyH; y++ {
		copy(g.cells[y][:copyW], src.cells[y][:copyW])
	}
}

// Equal reports whether both grids have identical dimensions and cells.
func (g *Grid) Equal(other *Grid) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}
	for y := range g.cells {
		for x := range g.cells[y] {
			if g.cells[y][x] != other.cells[y][x] {
				return false
			}
		}
	}
	return true
}

// Count returns how many cells hold the given value.
func (g *Grid) Count(c Cell) int {
	n := 0
	for y := range g.cells {
		for x := range g.cells[y] {
			if g.cells[y][x] == c {
				n++
			}
		}
	}
	return n
}

// String converts the grid to its glyphs, one line per row.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.width*g.height + g.height)

	for y := 0; y < g.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(g.Row(y))
	}
	return sb.String()
}

// Row returns the glyphs of the specified row.
func (g *Grid) Row(y int) string {
	if y < 0 || y >= g.height {
		return strings.Repeat(" ", g.width)
	}
	var sb strings.Builder
	for _, c := range g.cells[y] {
		sb.WriteRune(c.Rune())
	}
	return sb.String()
}
