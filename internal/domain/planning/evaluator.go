package planning

import (
	"context"

	"github.com/andrescamacho/waldolaw-go/internal/domain/routing"
	"github.com/andrescamacho/waldolaw-go/internal/domain/shared"
	"github.com/andrescamacho/waldolaw-go/internal/domain/simulation"
	"github.com/andrescamacho/waldolaw-go/internal/domain/world"
)

// Evaluation is one candidate path replayed and fuel-allocated
type Evaluation struct {
	Path       *routing.Path
	Commands   *simulation.Commands
	ElapsedMs  int
	Score      float64
	Allocation simulation.Allocation
	Feasible   bool
}

// EvaluationResult holds the winner and the fallback of an evaluation run
type EvaluationResult struct {
	Best      *Evaluation
	Fallback  *Evaluation
	Evaluated int
	Skipped   int
	TimedOut  bool
}

// Chosen returns the best feasible evaluation, or the fallback when none was
// feasible. Nil only if no candidate could be replayed at all.
func (r *EvaluationResult) Chosen() *Evaluation {
	if r.Best != nil {
		return r.Best
	}
	return r.Fallback
}

// Evaluator turns candidate paths into scored command lists
type Evaluator struct {
	game      *world.Game
	tag       string
	minDockMs int
	deadline  shared.Deadline
}

// NewEvaluator creates an evaluator; game is never mutated, each candidate
// runs on its own snapshot
func NewEvaluator(game *world.Game, tag string, minDockMs int, deadline shared.Deadline) *Evaluator {
	return &Evaluator{
		game:      game,
		tag:       tag,
		minDockMs: minDockMs,
		deadline:  deadline,
	}
}

// Score is the command count plus elapsed seconds
func Score(commands *simulation.Commands, elapsedMs int) float64 {
	return float64(commands.Count()) + shared.MillisToSeconds(elapsedMs)
}

// Evaluate scores candidates in discovery order. The first candidate that
// replays becomes the fallback whatever its fuel balance; the lowest-scoring
// feasible complete path wins. Once a fallback exists the deadline and ctx
// stop the loop.
func (e *Evaluator) Evaluate(ctx context.Context, candidates []*routing.Path) *EvaluationResult {
	result := &EvaluationResult{}

	for _, path := range candidates {
		if result.Fallback != nil && (e.deadline.Passed() || ctx.Err() != nil) {
			result.TimedOut = true
			break
		}

		eval, ok := e.evaluateOne(path)
		if !ok {
			result.Skipped++
			continue
		}
		result.Evaluated++

		if result.Fallback == nil {
			result.Fallback = eval
		}
		if eval.Feasible && (result.Best == nil || eval.Score < result.Best.Score) {
			result.Best = eval
		}
	}
	return result
}

func (e *Evaluator) evaluateOne(path *routing.Path) (*Evaluation, bool) {
	sim := simulation.NewSimulator(e.game.Snapshot())
	if err := sim.ReplayPath(path, e.minDockMs); err != nil {
		return nil, false
	}

	allocation := simulation.AllocateFuel(sim, e.game.MaxFuel(), e.minDockMs)
	if !allocation.Feasible() {
		simulation.EnsureMinimumDwell(sim, e.minDockMs)
	}

	commands, elapsed := sim.GenerateCommands(e.tag)
	return &Evaluation{
		Path:       path,
		Commands:   commands,
		ElapsedMs:  elapsed,
		Score:      Score(commands, elapsed),
		Allocation: allocation,
		Feasible:   allocation.Feasible() && path.IsComplete(),
	}, true
}
