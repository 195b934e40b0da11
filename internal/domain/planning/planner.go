package planning

import (
	"context"
	"time"

	"github.com/andrescamacho/waldolaw-go/internal/domain/routing"
	"github.com/andrescamacho/waldolaw-go/internal/domain/shared"
	"github.com/andrescamacho/waldolaw-go/internal/domain/simulation"
	"github.com/andrescamacho/waldolaw-go/internal/domain/world"
)

// Settings configures a Planner
type Settings struct {
	ShipName  string
	MinDockMs int
	Soft      time.Duration
	Hard      time.Duration
	Evaluate  time.Duration
	Clock     shared.Clock
}

// DefaultSettings mirrors the configuration defaults
func DefaultSettings() Settings {
	return Settings{
		ShipName:  "MATE",
		MinDockMs: 500,
		Soft:      3600 * time.Millisecond,
		Hard:      3700 * time.Millisecond,
		Evaluate:  3800 * time.Millisecond,
		Clock:     shared.NewRealClock(),
	}
}

// Plan is the outcome of one planning run
type Plan struct {
	Commands    *simulation.Commands
	ElapsedMs   int
	Score       float64
	Feasible    bool
	Candidates  int
	Explored    int
	Evaluated   int
	HardStopped bool
	Timings     Timings
}

// Timings records how long each planning phase took
type Timings struct {
	Oracle     time.Duration
	Search     time.Duration
	Evaluate   time.Duration
	// SinceStart is measured from the run start, so it includes loading
	SinceStart time.Duration
}

// Total sums the phases
func (t Timings) Total() time.Duration {
	return t.Oracle + t.Search + t.Evaluate
}

// Planner runs oracle, search and evaluation against a game
type Planner struct {
	settings Settings
}

// NewPlanner creates a planner
func NewPlanner(settings Settings) *Planner {
	if settings.Clock == nil {
		settings.Clock = shared.NewRealClock()
	}
	return &Planner{settings: settings}
}

// Settings returns the planner configuration
func (p *Planner) Settings() Settings {
	return p.settings
}

// Plan computes commands for game. Deadlines are measured from start, which
// callers set to the moment the run began (process start for the CLI).
//
// Planning never fails: with no candidate path the plan holds only the NAME
// tag and is marked infeasible.
func (p *Planner) Plan(ctx context.Context, game *world.Game, start time.Time) *Plan {
	clock := p.settings.Clock
	budget := shared.Budget{
		Clock:    clock,
		Start:    start,
		Soft:     p.settings.Soft,
		Hard:     p.settings.Hard,
		Evaluate: p.settings.Evaluate,
	}
	plan := &Plan{}

	phase := clock.Now()
	oracle := routing.NewDistanceOracle(game)
	plan.Timings.Oracle = clock.Now().Sub(phase)

	phase = clock.Now()
	search := routing.NewRouteSearch(game, oracle, budget.SoftDeadline(), budget.HardDeadline())
	found := search.Run(ctx)
	plan.Timings.Search = clock.Now().Sub(phase)
	plan.Candidates = len(found.Complete)
	plan.Explored = found.Explored
	plan.HardStopped = found.HardStopped

	phase = clock.Now()
	evaluator := NewEvaluator(game, p.settings.ShipName, p.settings.MinDockMs, budget.EvaluateDeadline())
	evaluated := evaluator.Evaluate(ctx, found.Complete)
	plan.Timings.Evaluate = clock.Now().Sub(phase)
	plan.Evaluated = evaluated.Evaluated
	plan.Timings.SinceStart = budget.Elapsed()

	chosen := evaluated.Chosen()
	if chosen == nil {
		plan.Commands = simulation.NewCommands()
		plan.Commands.AddName(p.settings.ShipName)
		return plan
	}

	plan.Commands = chosen.Commands
	plan.ElapsedMs = chosen.ElapsedMs
	plan.Score = chosen.Score
	plan.Feasible = chosen.Feasible
	return plan
}
