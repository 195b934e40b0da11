package world

import (
	"fmt"

	"github.com/andrescamacho/waldolaw-go/internal/domain/shared"
)

// ItemType classifies what occupies a cell
type ItemType int

const (
	ItemTypeEmpty ItemType = iota
	ItemTypeWaldo
	ItemTypeBase
	ItemTypeShip
	ItemTypePlanet
	ItemTypeSatellite
	ItemTypeAsteroid
	ItemTypeTurbo
)

var itemTypeNames = map[ItemType]string{
	ItemTypeEmpty:     "EMPTY",
	ItemTypeWaldo:     "WALDO",
	ItemTypeBase:      "BASE",
	ItemTypeShip:      "SHIP",
	ItemTypePlanet:    "PLANET",
	ItemTypeSatellite: "SATELLITE",
	ItemTypeAsteroid:  "ASTEROID",
	ItemTypeTurbo:     "TURBO",
}

func (t ItemType) String() string {
	if name, ok := itemTypeNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// ParseItemType maps a type name (as rendered by String) back to its ItemType
func ParseItemType(name string) (ItemType, error) {
	for t, n := range itemTypeNames {
		if n == name {
			return t, nil
		}
	}
	return ItemTypeEmpty, fmt.Errorf("unknown item type %q", name)
}

// Blocks reports whether items of this type make their cell impassable
func (t ItemType) Blocks() bool {
	return t == ItemTypeSatellite || t == ItemTypeAsteroid
}

// Item is anything placed on the grid. Fuel is the extractable amount for a
// Planet and the tank level for the Ship; Heading and Speed only matter for
// the Ship. Items are mutated during simulation, so hypothetical runs must
// work on a Game snapshot.
type Item struct {
	Name     string
	Type     ItemType
	Position shared.Position
	Fuel     int
	Heading  shared.Direction
	Speed    int
}

// NewItem creates an item facing Up at speed 1
func NewItem(name string, itemType ItemType, position shared.Position, fuel int) *Item {
	return &Item{
		Name:     name,
		Type:     itemType,
		Position: position,
		Fuel:     fuel,
		Heading:  shared.DirectionUp,
		Speed:    1,
	}
}

// Clone returns an independent copy
func (i *Item) Clone() *Item {
	c := *i
	return &c
}

// IsTarget reports whether the item is a point of interest for route search
func (i *Item) IsTarget() bool {
	switch i.Type {
	case ItemTypeBase, ItemTypeWaldo, ItemTypeTurbo:
		return true
	case ItemTypePlanet:
		return i.Fuel > 0
	}
	return false
}

func (i *Item) String() string {
	return fmt.Sprintf("%s%s", i.Name, i.Position)
}
