package world

import (
	"fmt"

	"github.com/andrescamacho/waldolaw-go/internal/domain/shared"
)

// Game aggregates the level, the item registry and the global ship caps
//
// Invariants:
// - exactly one Waldo, one Base and one Ship are registered
// - every item lies on the level
// - Level cells and Items reference the same *Item values
type Game struct {
	level    *Level
	items    []*Item
	waldo    *Item
	base     *Item
	ship     *Item
	maxFuel  int
	maxSpeed int
}

// NewGame builds a game and places every item on a fresh level.
// A missing or duplicated Waldo/Base/Ship is reported as *shared.MalformedWorldError.
func NewGame(size int, items []*Item, maxFuel, maxSpeed int) (*Game, error) {
	if size <= 0 {
		return nil, shared.NewMalformedWorldError(fmt.Sprintf("level size must be positive, got %d", size))
	}

	g := &Game{
		level:    NewLevel(size),
		items:    items,
		maxFuel:  maxFuel,
		maxSpeed: maxSpeed,
	}

	for _, item := range items {
		if item == nil {
			return nil, shared.NewMalformedWorldError("nil item in registry")
		}
		if err := g.assignSingleton(item); err != nil {
			return nil, err
		}
		if err := g.level.Place(item); err != nil {
			return nil, shared.NewMalformedWorldError(err.Error())
		}
	}

	if g.waldo == nil {
		return nil, shared.NewMalformedWorldError("items should contain a WALDO entry")
	}
	if g.base == nil {
		return nil, shared.NewMalformedWorldError("items should contain a BASE entry")
	}
	if g.ship == nil {
		return nil, shared.NewMalformedWorldError("items should contain a SHIP entry")
	}

	return g, nil
}

func (g *Game) assignSingleton(item *Item) error {
	var slot **Item
	switch item.Type {
	case ItemTypeWaldo:
		slot = &g.waldo
	case ItemTypeBase:
		slot = &g.base
	case ItemTypeShip:
		slot = &g.ship
	default:
		return nil
	}
	if *slot != nil {
		return shared.NewMalformedWorldError(fmt.Sprintf("duplicate %s entry: %s and %s", item.Type, (*slot).Name, item.Name))
	}
	*slot = item
	return nil
}

// Getters

func (g *Game) Level() *Level {
	return g.level
}

func (g *Game) Items() []*Item {
	return g.items
}

func (g *Game) Waldo() *Item {
	return g.waldo
}

func (g *Game) Base() *Item {
	return g.base
}

func (g *Game) Ship() *Item {
	return g.ship
}

func (g *Game) MaxFuel() int {
	return g.maxFuel
}

func (g *Game) MaxSpeed() int {
	return g.maxSpeed
}

// Targets returns the points of interest for route search in registry order:
// Base, Waldo, fuel-bearing Planets and Turbo pads. Items sharing a cell with
// an earlier target are skipped.
func (g *Game) Targets() []*Item {
	seen := make(map[shared.Position]bool)
	var targets []*Item
	for _, item := range g.items {
		if !item.IsTarget() || seen[item.Position] {
			continue
		}
		seen[item.Position] = true
		targets = append(targets, item)
	}
	return targets
}

// TargetAt returns the target item at pos, or nil
func (g *Game) TargetAt(pos shared.Position) *Item {
	for _, it := range g.level.Cell(pos).Items {
		if it.IsTarget() {
			return it
		}
	}
	return nil
}

// Snapshot returns a deep copy: every item is cloned and the level is rebuilt
// with the same per-cell ordering, so mutations never leak between copies.
func (g *Game) Snapshot() *Game {
	clones := make(map[*Item]*Item, len(g.items))
	items := make([]*Item, len(g.items))
	for i, item := range g.items {
		c := item.Clone()
		clones[item] = c
		items[i] = c
	}

	level := NewLevel(g.level.size)
	for idx := range g.level.cells {
		src := g.level.cells[idx].Items
		if len(src) == 0 {
			continue
		}
		dst := make([]*Item, 0, len(src))
		for _, it := range src {
			if c, ok := clones[it]; ok {
				dst = append(dst, c)
			} else {
				dst = append(dst, it.Clone())
			}
		}
		level.cells[idx].Items = dst
	}

	return &Game{
		level:    level,
		items:    items,
		waldo:    clones[g.waldo],
		base:     clones[g.base],
		ship:     clones[g.ship],
		maxFuel:  g.maxFuel,
		maxSpeed: g.maxSpeed,
	}
}
