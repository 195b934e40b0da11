package routing

import (
	"container/heap"
	"context"

	"github.com/andrescamacho/waldolaw-go/internal/domain/shared"
	"github.com/andrescamacho/waldolaw-go/internal/domain/world"
)

// SearchResult is everything route assembly produced before it stopped
type SearchResult struct {
	// Complete holds complete paths in discovery order. After a hard stop the
	// last entry may be the in-progress path, returned as a best effort.
	Complete    []*Path
	Explored    int
	HardStopped bool
}

// Found reports whether at least one candidate was produced
func (r *SearchResult) Found() bool {
	return len(r.Complete) > 0
}

// RouteSearch runs best-first search over the target graph
type RouteSearch struct {
	game   *world.Game
	oracle *DistanceOracle
	soft   shared.Deadline
	hard   shared.Deadline
}

// NewRouteSearch creates a search bound to an oracle built for game
func NewRouteSearch(game *world.Game, oracle *DistanceOracle, soft, hard shared.Deadline) *RouteSearch {
	return &RouteSearch{
		game:   game,
		oracle: oracle,
		soft:   soft,
		hard:   hard,
	}
}

// Heuristic estimates the remaining steps of p: to Waldo then Base if Waldo
// is still pending, otherwise straight to Base. Unreachable legs count as 0.
func (s *RouteSearch) Heuristic(p *Path) int {
	h := s.oracle.Heuristic()
	pos := p.Last().Position
	if pos == s.game.Base().Position && p.HasWaldo() {
		return 0
	}
	if p.HasWaldo() {
		return max(0, h.ToBase(pos))
	}
	return max(0, h.ToWaldo(pos)) + max(0, h.ToWaldo(s.game.Base().Position))
}

// Run assembles complete, fuel-feasible paths.
//
// The queue is drained while no complete path exists or the soft deadline
// has not passed. The hard deadline is checked after every valid extension,
// so even a budget spent before the search began yields that extension as a
// best-effort candidate. A context cancelled before expansion returns nothing.
func (s *RouteSearch) Run(ctx context.Context) *SearchResult {
	result := &SearchResult{}
	strict := s.oracle.Strict()
	basePos := s.game.Base().Position

	frontier := &pathQueue{}
	heap.Push(frontier, &pathEntry{path: NewRootPath(s.game), priority: 0})

	for frontier.Len() > 0 && (len(result.Complete) == 0 || !s.soft.Passed()) {
		if ctx.Err() != nil {
			result.HardStopped = true
			return result
		}
		current := heap.Pop(frontier).(*pathEntry).path

		for _, route := range strict.Routes(current.Last().Position, current.Facing()) {
			if !current.HasWaldo() && route.Target.Position == basePos {
				continue
			}
			if !route.Reachable() {
				continue
			}

			next := current.Extend(route)
			if !next.IsValid() {
				// routes are ordered by cost, so every farther target is out of fuel range too
				break
			}

			if next.IsComplete() {
				result.Complete = append(result.Complete, next)
			} else {
				result.Explored++
				heap.Push(frontier, &pathEntry{path: next, priority: next.Steps() + s.Heuristic(next)})
			}

			if s.hard.Passed() || ctx.Err() != nil {
				if !next.IsComplete() {
					result.Complete = append(result.Complete, next)
				}
				result.HardStopped = true
				return result
			}
		}
	}
	return result
}

type pathEntry struct {
	path     *Path
	priority int
	seq      int
}

// pathQueue is a min-heap of partial paths by f = steps + heuristic.
// Ties keep insertion order.
type pathQueue struct {
	entries []*pathEntry
	pushed  int
}

func (q *pathQueue) Len() int { return len(q.entries) }

func (q *pathQueue) Less(i, j int) bool {
	a, b := q.entries[i], q.entries[j]
	if a.priority != b.priority {
		return a.priority < b.priority
	}
	return a.seq < b.seq
}

func (q *pathQueue) Swap(i, j int) { q.entries[i], q.entries[j] = q.entries[j], q.entries[i] }

func (q *pathQueue) Push(x interface{}) {
	e := x.(*pathEntry)
	e.seq = q.pushed
	q.pushed++
	q.entries = append(q.entries, e)
}

func (q *pathQueue) Pop() interface{} {
	old := q.entries
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	q.entries = old[:n-1]
	return item
}
