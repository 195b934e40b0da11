package shared

import "fmt"

// Position is an immutable grid coordinate
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// NewPosition creates a position
func NewPosition(x, y int) Position {
	return Position{X: x, Y: y}
}

// Add returns p + other
func (p Position) Add(other Position) Position {
	return Position{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns p - other
func (p Position) Sub(other Position) Position {
	return Position{X: p.X - other.X, Y: p.Y - other.Y}
}

// Step returns the neighbouring position in the given heading
func (p Position) Step(d Direction) Position {
	return p.Add(d.Offset())
}

// ManhattanDistance returns |dx| + |dy|
func (p Position) ManhattanDistance(other Position) int {
	return abs(p.X-other.X) + abs(p.Y-other.Y)
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
