package shared

// Direction is a cardinal heading on the grid, or None when unset
type Direction int

const (
	DirectionUp Direction = iota
	DirectionRight
	DirectionDown
	DirectionLeft
	DirectionNone
)

// MainDirections lists the four cardinal headings in clockwise order
var MainDirections = []Direction{DirectionUp, DirectionRight, DirectionDown, DirectionLeft}

// AllDirections is MainDirections plus None
var AllDirections = []Direction{DirectionUp, DirectionRight, DirectionDown, DirectionLeft, DirectionNone}

var directionNames = map[Direction]string{
	DirectionUp:    "UP",
	DirectionRight: "RIGHT",
	DirectionDown:  "DOWN",
	DirectionLeft:  "LEFT",
	DirectionNone:  "NONE",
}

func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsCardinal reports whether d is one of the four real headings
func (d Direction) IsCardinal() bool {
	return d >= DirectionUp && d <= DirectionLeft
}

// Offset returns the grid delta of one step in this heading (y grows downward)
func (d Direction) Offset() Position {
	switch d {
	case DirectionUp:
		return Position{X: 0, Y: -1}
	case DirectionRight:
		return Position{X: 1, Y: 0}
	case DirectionDown:
		return Position{X: 0, Y: 1}
	case DirectionLeft:
		return Position{X: -1, Y: 0}
	}
	return Position{}
}

// CostTo returns the number of quarter turns needed to face target.
//
// Identical headings cost 0, adjacent headings 1, opposite headings 2.
// Turning from or to None is free: an unset heading never pays a turn.
func (d Direction) CostTo(target Direction) int {
	if d == target || !d.IsCardinal() || !target.IsCardinal() {
		return 0
	}
	if (int(target)-int(d)+4)%4 == 2 {
		return 2
	}
	return 1
}

// TurnToReach returns the quarter turn (Left or Right) that brings d closer
// to target, or None if already aligned or either heading is unset.
// Reversals turn Left.
func (d Direction) TurnToReach(target Direction) Direction {
	if d == target || !d.IsCardinal() || !target.IsCardinal() {
		return DirectionNone
	}
	if (int(target)-int(d)+4)%4 == 1 {
		return DirectionRight
	}
	return DirectionLeft
}

// Rotate applies a single Left or Right quarter turn. Any other turn is a no-op.
func (d Direction) Rotate(turn Direction) Direction {
	if !d.IsCardinal() {
		return d
	}
	switch turn {
	case DirectionRight:
		return Direction((int(d) + 1) % 4)
	case DirectionLeft:
		return Direction((int(d) + 3) % 4)
	}
	return d
}

// Opposite returns the reversed heading; None stays None
func (d Direction) Opposite() Direction {
	if !d.IsCardinal() {
		return d
	}
	return Direction((int(d) + 2) % 4)
}
