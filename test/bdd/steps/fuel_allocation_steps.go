package steps

import (
	"context"
	"fmt"

	"github.com/andrescamacho/waldolaw-go/internal/domain/shared"
	"github.com/andrescamacho/waldolaw-go/internal/domain/simulation"
	"github.com/andrescamacho/waldolaw-go/internal/domain/world"
	"github.com/andrescamacho/waldolaw-go/test/helpers"
	"github.com/cucumber/godog"
)

type fuelAllocationContext struct {
	maxFuel    int
	sim        *simulation.Simulator
	planet     *world.Item
	allocation simulation.Allocation
	simErr     error
}

func (fac *fuelAllocationContext) reset() {
	fac.maxFuel = 0
	fac.sim = nil
	fac.planet = nil
	fac.allocation = simulation.Allocation{}
	fac.simErr = nil
}

// Given steps

func (fac *fuelAllocationContext) aCorridorSector(shipFuel, maxFuel, planetFuel int) error {
	fixture := helpers.GameFixture{
		Size:     8,
		MaxFuel:  maxFuel,
		MaxSpeed: 1,
		Ship:     helpers.ShipFixture{X: 0, Y: 0, Fuel: shipFuel, Heading: shared.DirectionRight, Speed: 1},
		Items: []helpers.ItemFixture{
			{Name: "WALDO_7", Type: world.ItemTypeWaldo, X: 7, Y: 7},
			{Name: "PLANET_a", Type: world.ItemTypePlanet, X: 1, Y: 0, Fuel: planetFuel},
		},
	}
	game, err := fixture.TryBuild()
	if err != nil {
		return fmt.Errorf("failed to build corridor sector: %w", err)
	}

	fac.maxFuel = maxFuel
	fac.sim = simulation.NewSimulator(game)
	fac.planet = game.Level().Cell(shared.NewPosition(1, 0)).Find(world.ItemTypePlanet)
	return nil
}

func (fac *fuelAllocationContext) theShipDocksAtThePlanetAndFliesOn(minDwell, extraSteps int) error {
	if err := fac.sim.Forward(); err != nil {
		return err
	}
	if err := fac.sim.Dock(minDwell); err != nil {
		return err
	}
	for i := 0; i < extraSteps; i++ {
		if err := fac.sim.Forward(); err != nil {
			return err
		}
	}
	return nil
}

// When steps

func (fac *fuelAllocationContext) fuelIsAllocated(minDwell int) error {
	fac.allocation = simulation.AllocateFuel(fac.sim, fac.maxFuel, minDwell)
	return nil
}

func (fac *fuelAllocationContext) theShipTriesToDockAwayFromThePlanet() error {
	fac.simErr = fac.sim.Dock(500)
	return nil
}

// Then steps

func (fac *fuelAllocationContext) theAllocationOutcomeShouldBe(expected string) error {
	if got := fac.allocation.Outcome.String(); got != expected {
		return fmt.Errorf("expected outcome '%s', got '%s'", expected, got)
	}
	return nil
}

func (fac *fuelAllocationContext) theDeficitShouldBe(expected int) error {
	if fac.allocation.Deficit != expected {
		return fmt.Errorf("expected deficit %d, got %d", expected, fac.allocation.Deficit)
	}
	return nil
}

func (fac *fuelAllocationContext) theDockShouldLast(expected int) error {
	docks := fac.sim.Docks()
	if len(docks) != 1 {
		return fmt.Errorf("expected 1 dock, got %d", len(docks))
	}
	if docks[0].DurationMs() != expected {
		return fmt.Errorf("expected dock of %d ms, got %d", expected, docks[0].DurationMs())
	}
	return nil
}

func (fac *fuelAllocationContext) theDockShouldTransfer(expected int) error {
	if got := fac.sim.Docks()[0].Transferred(); got != expected {
		return fmt.Errorf("expected %d fuel transferred, got %d", expected, got)
	}
	return nil
}

func (fac *fuelAllocationContext) thePlanetShouldHoldFuel(expected int) error {
	if fac.planet.Fuel != expected {
		return fmt.Errorf("expected planet to hold %d fuel, got %d", expected, fac.planet.Fuel)
	}
	return nil
}

func (fac *fuelAllocationContext) theFinalFuelShouldBe(expected int) error {
	if fac.allocation.FinalFuel != expected {
		return fmt.Errorf("expected final fuel %d, got %d", expected, fac.allocation.FinalFuel)
	}
	return nil
}

func (fac *fuelAllocationContext) dockingShouldBeRejected() error {
	if fac.simErr == nil {
		return fmt.Errorf("expected docking to fail, but it succeeded")
	}
	return nil
}

func InitializeFuelAllocationScenario(ctx *godog.ScenarioContext) {
	fac := &fuelAllocationContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		fac.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^a corridor sector with ship fuel (\d+), tank capacity (\d+) and a planet holding (\d+) fuel$`, fac.aCorridorSector)
	ctx.Step(`^the ship docks at the planet for (\d+) ms and flies (\d+) more cells?$`, fac.theShipDocksAtThePlanetAndFliesOn)

	// When steps
	ctx.Step(`^fuel is allocated with a minimum dwell of (\d+) ms$`, fac.fuelIsAllocated)
	ctx.Step(`^the ship tries to dock away from the planet$`, fac.theShipTriesToDockAwayFromThePlanet)

	// Then steps
	ctx.Step(`^the allocation outcome should be "([^"]*)"$`, fac.theAllocationOutcomeShouldBe)
	ctx.Step(`^the fuel deficit should be (\d+)$`, fac.theDeficitShouldBe)
	ctx.Step(`^the dock should last (\d+) ms$`, fac.theDockShouldLast)
	ctx.Step(`^the dock should transfer (\d+) fuel$`, fac.theDockShouldTransfer)
	ctx.Step(`^the planet should hold (\d+) fuel$`, fac.thePlanetShouldHoldFuel)
	ctx.Step(`^the final fuel should be (-?\d+)$`, fac.theFinalFuelShouldBe)
	ctx.Step(`^docking should be rejected$`, fac.dockingShouldBeRejected)
}
