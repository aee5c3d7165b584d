package core

// Color represents a foreground color category for a grid cell.
// The platform layer maps each category to a terminal style.
type Color uint8

// Predefined color categories for game elements.
const (
	ColorDefault Color = iota // Empty cells and plain text
	ColorRed                  // Walls
	ColorGreen                // Food
	ColorYellow               // Snake head and body
)

// String returns a human-readable name for the color.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	default:
		return "unknown"
	}
}
