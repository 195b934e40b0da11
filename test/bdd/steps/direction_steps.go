package steps

import (
	"context"
	"fmt"
	"strconv"

	"github.com/andrescamacho/waldolaw-go/internal/domain/shared"
	"github.com/cucumber/godog"
)

type directionContext struct {
	heading  shared.Direction
	turnCost int
	turns    []shared.Direction
}

func (dc *directionContext) reset() {
	dc.heading = shared.DirectionNone
	dc.turnCost = 0
	dc.turns = nil
}

// Given steps

func (dc *directionContext) aShipHeading(name string) error {
	heading, err := parseDirection(name)
	if err != nil {
		return err
	}
	dc.heading = heading
	return nil
}

// When steps

func (dc *directionContext) iComputeTheTurnCostTo(name string) error {
	target, err := parseDirection(name)
	if err != nil {
		return err
	}
	dc.turnCost = dc.heading.CostTo(target)
	return nil
}

func (dc *directionContext) theShipTurnsUntilItFaces(name string) error {
	target, err := parseDirection(name)
	if err != nil {
		return err
	}
	dc.turns = nil
	for i := 0; i < 4; i++ {
		turn := dc.heading.TurnToReach(target)
		if turn == shared.DirectionNone {
			return nil
		}
		dc.turns = append(dc.turns, turn)
		dc.heading = dc.heading.Rotate(turn)
	}
	return fmt.Errorf("ship never reached %s", target)
}

// Then steps

func (dc *directionContext) theTurnCostShouldBe(expected int) error {
	if dc.turnCost != expected {
		return fmt.Errorf("expected turn cost %d, got %d", expected, dc.turnCost)
	}
	return nil
}

func (dc *directionContext) theShipShouldHaveTurnedTimes(expected int) error {
	if len(dc.turns) != expected {
		return fmt.Errorf("expected %d turns, got %d (%v)", expected, len(dc.turns), dc.turns)
	}
	return nil
}

func (dc *directionContext) everyTurnShouldBe(name string) error {
	expected, err := parseDirection(name)
	if err != nil {
		return err
	}
	for i, turn := range dc.turns {
		if turn != expected {
			return fmt.Errorf("turn %d: expected %s, got %s", i+1, expected, turn)
		}
	}
	return nil
}

func (dc *directionContext) theTurnCostsShouldBe(table *godog.Table) error {
	for i, row := range table.Rows {
		if i == 0 {
			continue // Skip header
		}
		from, err := parseDirection(getCellValueFromTable(table, row, "from"))
		if err != nil {
			return err
		}
		to, err := parseDirection(getCellValueFromTable(table, row, "to"))
		if err != nil {
			return err
		}
		expected, err := strconv.Atoi(getCellValueFromTable(table, row, "cost"))
		if err != nil {
			return fmt.Errorf("row %d: invalid cost: %w", i, err)
		}
		if got := from.CostTo(to); got != expected {
			return fmt.Errorf("%s -> %s: expected cost %d, got %d", from, to, expected, got)
		}
	}
	return nil
}

func InitializeDirectionScenario(ctx *godog.ScenarioContext) {
	dc := &directionContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		dc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^a ship heading ([A-Z]+)$`, dc.aShipHeading)

	// When steps
	ctx.Step(`^I compute the turn cost to ([A-Z]+)$`, dc.iComputeTheTurnCostTo)
	ctx.Step(`^the ship turns until it faces ([A-Z]+)$`, dc.theShipTurnsUntilItFaces)

	// Then steps
	ctx.Step(`^the turn cost should be (\d+)$`, dc.theTurnCostShouldBe)
	ctx.Step(`^the ship should have turned (\d+) times?$`, dc.theShipShouldHaveTurnedTimes)
	ctx.Step(`^every turn should be ([A-Z]+)$`, dc.everyTurnShouldBe)
	ctx.Step(`^the turn costs should be:$`, dc.theTurnCostsShouldBe)
}
