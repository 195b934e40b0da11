package routing

import (
	"container/heap"
	"sort"

	"github.com/andrescamacho/waldolaw-go/internal/domain/shared"
	"github.com/andrescamacho/waldolaw-go/internal/domain/world"
)

// TargetRoute is the cheapest heading-aware route from one target to another.
// Steps holds the heading of every forward move; Cost counts moves plus
// quarter turns, including the turn out of the departure heading.
// An empty Steps means the target is unreachable.
type TargetRoute struct {
	Target *world.Item
	Steps  []shared.Direction
	Cost   int
}

// Reachable reports whether a route exists
func (r TargetRoute) Reachable() bool {
	return len(r.Steps) > 0
}

// Moves returns the number of forward moves
func (r TargetRoute) Moves() int {
	return len(r.Steps)
}

type routeKey struct {
	pos     shared.Position
	heading shared.Direction
}

// StrictStore holds, per (origin target, departure heading), the routes to
// every other target ordered by ascending cost. Read-only once built.
type StrictStore struct {
	routes map[routeKey][]TargetRoute
}

// Routes returns the ordered routes leaving pos while facing heading
func (s *StrictStore) Routes(pos shared.Position, heading shared.Direction) []TargetRoute {
	return s.routes[routeKey{pos: pos, heading: heading}]
}

// RouteTo returns the route from pos (facing heading) to dest
func (s *StrictStore) RouteTo(pos shared.Position, heading shared.Direction, dest shared.Position) (TargetRoute, bool) {
	for _, r := range s.Routes(pos, heading) {
		if r.Target.Position == dest {
			return r, true
		}
	}
	return TargetRoute{}, false
}

// HeuristicStore holds plain step distances from Waldo and from Base through
// every passable cell. Turns are ignored, so the values never overestimate.
type HeuristicStore struct {
	level     *world.Level
	fromWaldo []int
	fromBase  []int
}

// ToWaldo returns the step distance between pos and Waldo, -1 if unreachable
func (h *HeuristicStore) ToWaldo(pos shared.Position) int {
	return h.fromWaldo[h.level.Index(pos)]
}

// ToBase returns the step distance between pos and Base, -1 if unreachable
func (h *HeuristicStore) ToBase(pos shared.Position) int {
	return h.fromBase[h.level.Index(pos)]
}

// DistanceOracle precomputes inter-target routes for a game
type DistanceOracle struct {
	game      *world.Game
	targets   []*world.Item
	isTarget  []bool
	strict    *StrictStore
	heuristic *HeuristicStore
}

// NewDistanceOracle computes both oracle products for the game's targets
func NewDistanceOracle(game *world.Game) *DistanceOracle {
	level := game.Level()
	o := &DistanceOracle{
		game:     game,
		targets:  game.Targets(),
		isTarget: make([]bool, level.CellCount()),
	}
	for _, t := range o.targets {
		o.isTarget[level.Index(t.Position)] = true
	}
	o.strict = o.buildStrictStore()
	o.heuristic = &HeuristicStore{
		level:     level,
		fromWaldo: stepDistances(level, game.Waldo().Position),
		fromBase:  stepDistances(level, game.Base().Position),
	}
	return o
}

// Targets returns the points of interest the oracle was built over
func (o *DistanceOracle) Targets() []*world.Item {
	return o.targets
}

// Strict returns the heading-aware route store
func (o *DistanceOracle) Strict() *StrictStore {
	return o.strict
}

// Heuristic returns the scalar distance store
func (o *DistanceOracle) Heuristic() *HeuristicStore {
	return o.heuristic
}

func (o *DistanceOracle) buildStrictStore() *StrictStore {
	store := &StrictStore{routes: make(map[routeKey][]TargetRoute)}
	level := o.game.Level()
	arena := newScratch(level.CellCount())

	order := make(map[*world.Item]int, len(o.targets))
	for i, t := range o.targets {
		order[t] = i
	}

	for _, origin := range o.targets {
		for _, heading := range shared.AllDirections {
			arena.reset()
			o.expand(arena, origin.Position, heading)

			routes := make([]TargetRoute, 0, len(o.targets)-1)
			for _, other := range o.targets {
				if other == origin {
					continue
				}
				routes = append(routes, arena.routeTo(level, other))
			}
			sort.SliceStable(routes, func(i, j int) bool {
				a, b := routes[i], routes[j]
				if a.Reachable() != b.Reachable() {
					return a.Reachable()
				}
				if a.Cost != b.Cost {
					return a.Cost < b.Cost
				}
				if a.Moves() != b.Moves() {
					return a.Moves() < b.Moves()
				}
				return order[a.Target] < order[b.Target]
			})
			store.routes[routeKey{pos: origin.Position, heading: heading}] = routes
		}
	}
	return store
}

// expand runs a cheapest-first search over (cell, heading) states outward
// from origin. Entering a cell costs one step plus the quarter turns from the
// previous heading. Other target cells are recorded but not expanded.
func (o *DistanceOracle) expand(arena *scratch, origin shared.Position, heading shared.Direction) {
	level := o.game.Level()
	originIdx := level.Index(origin)
	start := stateID(originIdx, heading)
	arena.dist[start] = 0

	frontier := &stateQueue{}
	heap.Push(frontier, stateEntry{state: start, cost: 0})

	for frontier.Len() > 0 {
		cur := heap.Pop(frontier).(stateEntry)
		if cur.cost > arena.dist[cur.state] {
			continue
		}
		cellIdx, curHeading := decodeState(cur.state)
		if cellIdx != originIdx && o.isTarget[cellIdx] {
			continue
		}

		for _, nb := range level.Neighbours(level.PositionOf(cellIdx)) {
			if !level.IsPassable(nb.Position) {
				continue
			}
			next := stateID(level.Index(nb.Position), nb.Heading)
			cost := cur.cost + 1 + curHeading.CostTo(nb.Heading)
			if arena.dist[next] < 0 || cost < arena.dist[next] {
				arena.dist[next] = cost
				arena.prev[next] = cur.state
				heap.Push(frontier, stateEntry{state: next, cost: cost})
			}
		}
	}
}

// stepDistances is a plain breadth-first step count from origin
func stepDistances(level *world.Level, origin shared.Position) []int {
	dist := make([]int, level.CellCount())
	for i := range dist {
		dist[i] = -1
	}
	dist[level.Index(origin)] = 0
	queue := []shared.Position{origin}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		d := dist[level.Index(cur)]
		for _, nb := range level.Neighbours(cur) {
			idx := level.Index(nb.Position)
			if dist[idx] >= 0 || !level.IsPassable(nb.Position) {
				continue
			}
			dist[idx] = d + 1
			queue = append(queue, nb.Position)
		}
	}
	return dist
}
