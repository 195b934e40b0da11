package routing

import (
	"github.com/andrescamacho/waldolaw-go/internal/domain/shared"
	"github.com/andrescamacho/waldolaw-go/internal/domain/world"
)

const headingsPerCell = 5

func stateID(cellIdx int, heading shared.Direction) int {
	return cellIdx*headingsPerCell + int(heading)
}

func decodeState(state int) (int, shared.Direction) {
	return state / headingsPerCell, shared.Direction(state % headingsPerCell)
}

// scratch is the reusable per-run search buffer, indexed by state id.
// It is owned by one oracle build and reset before every expansion.
type scratch struct {
	dist []int
	prev []int
}

func newScratch(cells int) *scratch {
	s := &scratch{
		dist: make([]int, cells*headingsPerCell),
		prev: make([]int, cells*headingsPerCell),
	}
	s.reset()
	return s
}

func (s *scratch) reset() {
	for i := range s.dist {
		s.dist[i] = -1
		s.prev[i] = -1
	}
}

// routeTo picks the cheapest arrival heading at target and rebuilds its steps
func (s *scratch) routeTo(level *world.Level, target *world.Item) TargetRoute {
	cellIdx := level.Index(target.Position)
	best := -1
	for _, h := range shared.MainDirections {
		st := stateID(cellIdx, h)
		if s.dist[st] < 0 {
			continue
		}
		if best < 0 || s.dist[st] < s.dist[best] {
			best = st
		}
	}
	if best < 0 {
		return TargetRoute{Target: target}
	}

	var steps []shared.Direction
	for st := best; s.prev[st] >= 0; st = s.prev[st] {
		_, h := decodeState(st)
		steps = append(steps, h)
	}
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
	return TargetRoute{Target: target, Steps: steps, Cost: s.dist[best]}
}

type stateEntry struct {
	state int
	cost  int
}

// stateQueue is a min-heap of search states by cost
type stateQueue []stateEntry

func (q stateQueue) Len() int { return len(q) }

func (q stateQueue) Less(i, j int) bool {
	if q[i].cost != q[j].cost {
		return q[i].cost < q[j].cost
	}
	return q[i].state < q[j].state
}

func (q stateQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *stateQueue) Push(x interface{}) {
	*q = append(*q, x.(stateEntry))
}

func (q *stateQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
