package world

import (
	"fmt"
	"strings"

	"github.com/andrescamacho/waldolaw-go/internal/domain/shared"
)

// Cell holds the items occupying one grid position, in insertion order.
// Index 0 is the primary occupant.
type Cell struct {
	Items []*Item
}

// Primary returns the first occupant or nil
func (c *Cell) Primary() *Item {
	if len(c.Items) == 0 {
		return nil
	}
	return c.Items[0]
}

// Find returns the first occupant of the given type or nil
func (c *Cell) Find(itemType ItemType) *Item {
	for _, it := range c.Items {
		if it.Type == itemType {
			return it
		}
	}
	return nil
}

func (c *Cell) remove(item *Item) bool {
	for i, it := range c.Items {
		if it == item {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return true
		}
	}
	return false
}

// Neighbour is an adjacent cell together with the heading of the move into it
type Neighbour struct {
	Position shared.Position
	Heading  shared.Direction
}

// Level is a fixed N×N grid stored as a flat cell array
type Level struct {
	size  int
	cells []Cell
}

// NewLevel creates an empty size×size level
func NewLevel(size int) *Level {
	return &Level{
		size:  size,
		cells: make([]Cell, size*size),
	}
}

// Size returns N
func (l *Level) Size() int {
	return l.size
}

// CellCount returns N*N
func (l *Level) CellCount() int {
	return len(l.cells)
}

// InBounds reports whether pos lies on the grid
func (l *Level) InBounds(pos shared.Position) bool {
	return pos.X >= 0 && pos.Y >= 0 && pos.X < l.size && pos.Y < l.size
}

// Index returns the flat cell id of pos
func (l *Level) Index(pos shared.Position) int {
	return pos.Y*l.size + pos.X
}

// PositionOf is the inverse of Index
func (l *Level) PositionOf(index int) shared.Position {
	return shared.Position{X: index % l.size, Y: index / l.size}
}

// Cell returns the cell at pos
func (l *Level) Cell(pos shared.Position) *Cell {
	return &l.cells[l.Index(pos)]
}

// ItemAt returns the primary occupant of pos or nil
func (l *Level) ItemAt(pos shared.Position) *Item {
	return l.Cell(pos).Primary()
}

// Place appends item to the cell at its own position
func (l *Level) Place(item *Item) error {
	if !l.InBounds(item.Position) {
		return fmt.Errorf("item %s outside %dx%d level", item, l.size, l.size)
	}
	cell := l.Cell(item.Position)
	cell.Items = append(cell.Items, item)
	return nil
}

// Insert places item in its cell at index, clamped to the cell length
func (l *Level) Insert(item *Item, index int) error {
	if !l.InBounds(item.Position) {
		return fmt.Errorf("item %s outside %dx%d level", item, l.size, l.size)
	}
	cell := l.Cell(item.Position)
	if index < 0 || index > len(cell.Items) {
		index = len(cell.Items)
	}
	cell.Items = append(cell.Items, nil)
	copy(cell.Items[index+1:], cell.Items[index:])
	cell.Items[index] = item
	return nil
}

// IndexIn returns the position of item within its cell, or -1
func (l *Level) IndexIn(item *Item) int {
	if !l.InBounds(item.Position) {
		return -1
	}
	for i, it := range l.Cell(item.Position).Items {
		if it == item {
			return i
		}
	}
	return -1
}

// Remove takes item out of its cell
func (l *Level) Remove(item *Item) bool {
	if !l.InBounds(item.Position) {
		return false
	}
	return l.Cell(item.Position).remove(item)
}

// Move relocates item to newPos, appending it behind existing occupants
func (l *Level) Move(item *Item, newPos shared.Position) error {
	if !l.InBounds(newPos) {
		return fmt.Errorf("cannot move %s to %s: outside level", item.Name, newPos)
	}
	if !l.Cell(item.Position).remove(item) {
		return fmt.Errorf("cannot move %s: not found at %s", item.Name, item.Position)
	}
	item.Position = newPos
	cell := l.Cell(newPos)
	cell.Items = append(cell.Items, item)
	return nil
}

// Neighbours returns the in-bounds 4-neighbourhood of pos
func (l *Level) Neighbours(pos shared.Position) []Neighbour {
	result := make([]Neighbour, 0, 4)
	for _, d := range shared.MainDirections {
		next := pos.Step(d)
		if l.InBounds(next) {
			result = append(result, Neighbour{Position: next, Heading: d})
		}
	}
	return result
}

// IsPassable reports whether a ship may enter pos
func (l *Level) IsPassable(pos shared.Position) bool {
	if !l.InBounds(pos) {
		return false
	}
	for _, it := range l.Cell(pos).Items {
		if it.Type.Blocks() {
			return false
		}
	}
	return true
}

var cellGlyphs = map[ItemType]byte{
	ItemTypeWaldo:     'W',
	ItemTypeBase:      'B',
	ItemTypePlanet:    'P',
	ItemTypeSatellite: 'S',
	ItemTypeAsteroid:  'A',
	ItemTypeTurbo:     'T',
}

// Render draws the level one row per line, ship shown as its heading
func (l *Level) Render() string {
	var sb strings.Builder
	for y := 0; y < l.size; y++ {
		for x := 0; x < l.size; x++ {
			cell := l.Cell(shared.Position{X: x, Y: y})
			switch {
			case cell.Find(ItemTypeShip) != nil:
				sb.WriteByte(headingGlyph(cell.Find(ItemTypeShip).Heading))
			case cell.Primary() == nil:
				sb.WriteByte('.')
			default:
				if g, ok := cellGlyphs[cell.Primary().Type]; ok {
					sb.WriteByte(g)
				} else {
					sb.WriteByte('?')
				}
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func headingGlyph(d shared.Direction) byte {
	switch d {
	case shared.DirectionUp:
		return '^'
	case shared.DirectionRight:
		return '>'
	case shared.DirectionDown:
		return 'v'
	case shared.DirectionLeft:
		return '<'
	}
	return '*'
}
