package routing

import (
	"fmt"
	"strings"

	"github.com/andrescamacho/waldolaw-go/internal/domain/shared"
	"github.com/andrescamacho/waldolaw-go/internal/domain/world"
)

// Path is a persistent route through targets, rooted at Base.
//
// Every Extend returns a new Path that points at its parent; nothing is ever
// mutated after construction, so search branches share prefixes freely.
//
// Fuel found at a planet is credited lazily: fuelLastFound is what the ship
// can tank at the last node and is added to shipFuel on the next extension.
// shipFuel may go negative, which marks the path invalid.
type Path struct {
	parent  *Path
	node    *world.Item
	segment []shared.Direction

	steps         int
	facing        shared.Direction
	shipFuel      int
	fuelLastFound int
	fuelSpent     int
	fuelTanked    int
	speed         int
	hasWaldo      bool
	depth         int

	// withdrawn and turbos are shared with the parent until this extension
	// changes them
	withdrawn map[shared.Position]int
	turbos    map[shared.Position]bool

	maxFuel  int
	maxSpeed int
}

// NewRootPath creates the zero-step path at Base with the ship's current state
func NewRootPath(game *world.Game) *Path {
	ship := game.Ship()
	return &Path{
		node:      game.Base(),
		facing:    ship.Heading,
		shipFuel:  ship.Fuel,
		speed:     ship.Speed,
		hasWaldo:  game.Base().Type == world.ItemTypeWaldo,
		withdrawn: map[shared.Position]int{},
		turbos:    map[shared.Position]bool{},
		maxFuel:   game.MaxFuel(),
		maxSpeed:  game.MaxSpeed(),
	}
}

// Extend returns a new path that continues along route to route.Target.
// Fuel burned is priced at the speed held when leaving the current node.
func (p *Path) Extend(route TargetRoute) *Path {
	target := route.Target
	addedSteps := p.stepsAlong(route.Steps)
	spent := shared.FuelCost(addedSteps, p.speed)

	arrivalFuel := min(p.shipFuel+p.fuelLastFound, p.maxFuel) - spent

	next := &Path{
		parent:     p,
		node:       target,
		segment:    route.Steps,
		steps:      p.steps + addedSteps,
		facing:     p.facing,
		shipFuel:   arrivalFuel,
		fuelSpent:  p.fuelSpent + spent,
		fuelTanked: p.fuelTanked + p.fuelLastFound,
		speed:      p.speed,
		hasWaldo:   p.hasWaldo || target.Type == world.ItemTypeWaldo,
		depth:      p.depth + 1,
		withdrawn:  p.withdrawn,
		turbos:     p.turbos,
		maxFuel:    p.maxFuel,
		maxSpeed:   p.maxSpeed,
	}
	if len(route.Steps) > 0 {
		next.facing = route.Steps[len(route.Steps)-1]
	}

	switch target.Type {
	case world.ItemTypePlanet:
		already := p.withdrawn[target.Position]
		available := target.Fuel - already
		headroom := p.maxFuel - arrivalFuel
		tank := max(0, min(available, headroom))
		next.fuelLastFound = tank
		next.withdrawn = copyWithdrawn(p.withdrawn)
		next.withdrawn[target.Position] = already + tank
	case world.ItemTypeTurbo:
		if !p.turbos[target.Position] {
			next.speed = min(p.speed+1, p.maxSpeed)
			next.turbos = copyTurbos(p.turbos)
			next.turbos[target.Position] = true
		}
	}

	return next
}

// stepsAlong counts forward moves plus the quarter turns needed to follow
// headings starting from the current facing
func (p *Path) stepsAlong(headings []shared.Direction) int {
	total := 0
	last := p.facing
	for _, h := range headings {
		total += 1 + last.CostTo(h)
		last = h
	}
	return total
}

// IsValid reports whether projected fuel stays within [0, maxFuel] once the
// fuel found at the last node is credited
func (p *Path) IsValid() bool {
	return p.shipFuel >= 0 && p.shipFuel+p.fuelLastFound <= p.maxFuel
}

// IsComplete reports a valid path that visited Waldo and ended at Base
func (p *Path) IsComplete() bool {
	return p.node.Type == world.ItemTypeBase && p.hasWaldo && p.IsValid()
}

// Getters

func (p *Path) Parent() *Path {
	return p.parent
}

func (p *Path) Last() *world.Item {
	return p.node
}

func (p *Path) Segment() []shared.Direction {
	return p.segment
}

func (p *Path) Steps() int {
	return p.steps
}

func (p *Path) Facing() shared.Direction {
	return p.facing
}

func (p *Path) ShipFuel() int {
	return p.shipFuel
}

func (p *Path) FuelLastFound() int {
	return p.fuelLastFound
}

func (p *Path) Speed() int {
	return p.speed
}

func (p *Path) HasWaldo() bool {
	return p.hasWaldo
}

func (p *Path) Depth() int {
	return p.depth
}

// Withdrawn returns the planet fuel this path has claimed at pos
func (p *Path) Withdrawn(pos shared.Position) int {
	return p.withdrawn[pos]
}

// FuelBalance returns total fuel tanked minus total fuel spent
func (p *Path) FuelBalance() int {
	return p.fuelTanked - p.fuelSpent
}

// Chain returns the paths from the root to p, root first
func (p *Path) Chain() []*Path {
	chain := make([]*Path, p.depth+1)
	for cur := p; cur != nil; cur = cur.parent {
		chain[cur.depth] = cur
	}
	return chain
}

// Nodes returns the visited targets from Base onward
func (p *Path) Nodes() []*world.Item {
	chain := p.Chain()
	nodes := make([]*world.Item, len(chain))
	for i, c := range chain {
		nodes[i] = c.node
	}
	return nodes
}

// Leg is one target-to-target hop of a path
type Leg struct {
	From  *world.Item
	To    *world.Item
	Steps []shared.Direction
}

// Legs returns the hops of the path in order
func (p *Path) Legs() []Leg {
	chain := p.Chain()
	legs := make([]Leg, 0, len(chain)-1)
	for i := 1; i < len(chain); i++ {
		legs = append(legs, Leg{From: chain[i-1].node, To: chain[i].node, Steps: chain[i].segment})
	}
	return legs
}

// StepList returns every move heading of the path, concatenated
func (p *Path) StepList() []shared.Direction {
	var all []shared.Direction
	for _, leg := range p.Legs() {
		all = append(all, leg.Steps...)
	}
	return all
}

// Contains reports whether the path visits pos
func (p *Path) Contains(pos shared.Position) bool {
	for cur := p; cur != nil; cur = cur.parent {
		if cur.node.Position == pos {
			return true
		}
	}
	return false
}

func (p *Path) String() string {
	names := make([]string, 0, p.depth+1)
	for _, n := range p.Nodes() {
		names = append(names, n.String())
	}
	return fmt.Sprintf("%s | FΔ=%d, F=%d, S=%d", strings.Join(names, " - "), p.FuelBalance(), p.shipFuel, p.steps)
}

func copyWithdrawn(src map[shared.Position]int) map[shared.Position]int {
	dst := make(map[shared.Position]int, len(src)+1)
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func copyTurbos(src map[shared.Position]bool) map[shared.Position]bool {
	dst := make(map[shared.Position]bool, len(src)+1)
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
