package valueobjects

// Position is a 2D layout coordinate for the rendering widget.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NewPosition creates a position
func NewPosition(x, y float64) Position {
	return Position{X: x, Y: y}
}

// Equals compares two positions
func (p Position) Equals(other Position) bool {
	return p.X == other.X && p.Y == other.Y
}
