package steps

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/andrescamacho/waldolaw-go/internal/domain/planning"
	"github.com/andrescamacho/waldolaw-go/internal/domain/shared"
	"github.com/andrescamacho/waldolaw-go/internal/domain/simulation"
	"github.com/andrescamacho/waldolaw-go/internal/domain/world"
	"github.com/andrescamacho/waldolaw-go/test/helpers"
	"github.com/cucumber/godog"
)

// routePlanningContext is shared with the puzzle steps, which hand over the
// game they built so the same plan assertions apply
type routePlanningContext struct {
	fixture    helpers.GameFixture
	game       *world.Game
	settings   planning.Settings
	clock      *shared.MockClock
	plan       *planning.Plan
	cancelPlan bool
}

var sharedRoutePlanning *routePlanningContext

func (rpc *routePlanningContext) reset() {
	rpc.fixture = helpers.GameFixture{}
	rpc.game = nil
	rpc.clock = shared.NewMockClock(time.Time{})
	rpc.settings = planning.DefaultSettings()
	rpc.settings.Clock = rpc.clock
	rpc.plan = nil
	rpc.cancelPlan = false
}

// Given steps

func (rpc *routePlanningContext) theRefuelSector() error {
	rpc.fixture = helpers.RefuelSector()
	return nil
}

func (rpc *routePlanningContext) anOpenSector(heading string, fuel int) error {
	dir, err := parseDirection(heading)
	if err != nil {
		return err
	}
	rpc.fixture = helpers.OpenSector(dir, fuel)
	return nil
}

func (rpc *routePlanningContext) asteroidsAt(table *godog.Table) error {
	for i, row := range table.Rows {
		if i == 0 {
			continue // Skip header
		}
		x, err := strconv.Atoi(getCellValueFromTable(table, row, "x"))
		if err != nil {
			return fmt.Errorf("row %d: invalid x: %w", i, err)
		}
		y, err := strconv.Atoi(getCellValueFromTable(table, row, "y"))
		if err != nil {
			return fmt.Errorf("row %d: invalid y: %w", i, err)
		}
		rpc.fixture.Items = append(rpc.fixture.Items, helpers.ItemFixture{
			Name: fmt.Sprintf("ASTEROID_%d", i),
			Type: world.ItemTypeAsteroid,
			X:    x,
			Y:    y,
		})
	}
	return nil
}

func (rpc *routePlanningContext) theShipIsNamed(name string) error {
	rpc.settings.ShipName = name
	return nil
}

func (rpc *routePlanningContext) planningIsCancelled() error {
	rpc.cancelPlan = true
	return nil
}

// When steps

func (rpc *routePlanningContext) iPlanARoute() error {
	if rpc.game == nil {
		game, err := rpc.fixture.TryBuild()
		if err != nil {
			return fmt.Errorf("failed to build sector: %w", err)
		}
		rpc.game = game
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if rpc.cancelPlan {
		cancel()
	}

	rpc.plan = planning.NewPlanner(rpc.settings).Plan(ctx, rpc.game, rpc.clock.Now())
	return nil
}

// Then steps

func (rpc *routePlanningContext) thePlanShouldBeFeasible() error {
	if !rpc.plan.Feasible {
		return fmt.Errorf("expected a feasible plan, got %v", rpc.plan.Commands.Lines())
	}
	return nil
}

func (rpc *routePlanningContext) thePlanShouldNotBeFeasible() error {
	if rpc.plan.Feasible {
		return fmt.Errorf("expected an infeasible plan, got %v", rpc.plan.Commands.Lines())
	}
	return nil
}

func (rpc *routePlanningContext) thePlanShouldContainTheCommands(table *godog.Table) error {
	expected := columnValues(table, "command")
	got := rpc.plan.Commands.Lines()
	if len(expected) != len(got) {
		return fmt.Errorf("expected %d lines, got %d: %v", len(expected), len(got), got)
	}
	for i := range expected {
		if expected[i] != got[i] {
			return fmt.Errorf("line %d: expected '%s', got '%s'", i+1, expected[i], got[i])
		}
	}
	return nil
}

func (rpc *routePlanningContext) theFirstCommandShouldBe(expected string) error {
	lines := rpc.plan.Commands.Lines()
	if len(lines) == 0 || lines[0] != expected {
		return fmt.Errorf("expected first command '%s', got %v", expected, lines)
	}
	return nil
}

func (rpc *routePlanningContext) thePlanShouldCountCommands(expected int) error {
	if got := rpc.plan.Commands.Count(); got != expected {
		return fmt.Errorf("expected %d counted commands, got %d", expected, got)
	}
	return nil
}

func (rpc *routePlanningContext) thePlanShouldDockTimes(expected int) error {
	if got := len(rpc.plan.Commands.OfType(simulation.CommandTypeDock)); got != expected {
		return fmt.Errorf("expected %d docks, got %d", expected, got)
	}
	return nil
}

func (rpc *routePlanningContext) everyDockShouldLastAtLeast(minMs int) error {
	for _, line := range rpc.plan.Commands.Lines() {
		if !strings.HasPrefix(line, "DOCK ") {
			continue
		}
		ms, err := strconv.Atoi(strings.TrimPrefix(line, "DOCK "))
		if err != nil {
			return fmt.Errorf("malformed dock line '%s': %w", line, err)
		}
		if ms < minMs {
			return fmt.Errorf("dock of %d ms is shorter than %d ms", ms, minMs)
		}
	}
	return nil
}

func (rpc *routePlanningContext) thePlanShouldTake(expected int) error {
	if rpc.plan.ElapsedMs != expected {
		return fmt.Errorf("expected %d ms, got %d", expected, rpc.plan.ElapsedMs)
	}
	return nil
}

func (rpc *routePlanningContext) thePlanScoreShouldBe(expected float64) error {
	if diff := rpc.plan.Score - expected; diff > 1e-9 || diff < -1e-9 {
		return fmt.Errorf("expected score %.3f, got %.3f", expected, rpc.plan.Score)
	}
	return nil
}

func (rpc *routePlanningContext) thePlanShouldBeHardStopped() error {
	if !rpc.plan.HardStopped {
		return fmt.Errorf("expected the search to be hard stopped")
	}
	return nil
}

func (rpc *routePlanningContext) theShipShouldStillBeAtBaseWithFuel(fuel int) error {
	ship := rpc.game.Ship()
	if ship.Position != rpc.game.Base().Position {
		return fmt.Errorf("expected ship at base %s, got %s", rpc.game.Base().Position, ship.Position)
	}
	if ship.Fuel != fuel {
		return fmt.Errorf("expected ship fuel %d, got %d", fuel, ship.Fuel)
	}
	return nil
}

func InitializeRoutePlanningScenario(ctx *godog.ScenarioContext) {
	rpc := &routePlanningContext{}
	sharedRoutePlanning = rpc

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		rpc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^the refuel sector$`, rpc.theRefuelSector)
	ctx.Step(`^an open sector with the ship facing ([A-Z]+) and (\d+) fuel$`, rpc.anOpenSector)
	ctx.Step(`^asteroids at:$`, rpc.asteroidsAt)
	ctx.Step(`^the ship is named "([^"]*)"$`, rpc.theShipIsNamed)
	ctx.Step(`^planning is cancelled before it starts$`, rpc.planningIsCancelled)

	// When steps
	ctx.Step(`^I plan a route$`, rpc.iPlanARoute)

	// Then steps
	ctx.Step(`^the plan should be feasible$`, rpc.thePlanShouldBeFeasible)
	ctx.Step(`^the plan should not be feasible$`, rpc.thePlanShouldNotBeFeasible)
	ctx.Step(`^the plan should contain the commands:$`, rpc.thePlanShouldContainTheCommands)
	ctx.Step(`^the first command should be "([^"]*)"$`, rpc.theFirstCommandShouldBe)
	ctx.Step(`^the plan should count (\d+) commands$`, rpc.thePlanShouldCountCommands)
	ctx.Step(`^the plan should dock (\d+) times?$`, rpc.thePlanShouldDockTimes)
	ctx.Step(`^every dock should last at least (\d+) ms$`, rpc.everyDockShouldLastAtLeast)
	ctx.Step(`^the plan should take (\d+) ms$`, rpc.thePlanShouldTake)
	ctx.Step(`^the plan score should be (\d+(?:\.\d+)?)$`, rpc.thePlanScoreShouldBe)
	ctx.Step(`^the search should be hard stopped$`, rpc.thePlanShouldBeHardStopped)
	ctx.Step(`^the ship should still be at base with (\d+) fuel$`, rpc.theShipShouldStillBeAtBaseWithFuel)
}
