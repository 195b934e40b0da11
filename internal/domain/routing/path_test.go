package routing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/waldolaw-go/internal/domain/routing"
	"github.com/andrescamacho/waldolaw-go/internal/domain/shared"
	"github.com/andrescamacho/waldolaw-go/internal/domain/world"
	"github.com/andrescamacho/waldolaw-go/test/helpers"
)

func extendTo(t *testing.T, oracle *routing.DistanceOracle, p *routing.Path, dest shared.Position) *routing.Path {
	t.Helper()
	route, ok := oracle.Strict().RouteTo(p.Last().Position, p.Facing(), dest)
	require.True(t, ok, "no route from %s to %s", p.Last(), dest)
	return p.Extend(route)
}

func TestPath_RootStartsAtBase(t *testing.T) {
	game := helpers.RefuelSector().Build(t)

	root := routing.NewRootPath(game)

	assert.Equal(t, game.Base(), root.Last())
	assert.Equal(t, 10000, root.ShipFuel())
	assert.Equal(t, shared.DirectionUp, root.Facing())
	assert.False(t, root.HasWaldo())
	assert.False(t, root.IsComplete())
	assert.Empty(t, root.Legs())
}

func TestPath_RefuelRouteAccounting(t *testing.T) {
	// Arrange
	game := helpers.RefuelSector().Build(t)
	oracle := routing.NewDistanceOracle(game)
	planet := game.Level().Cell(shared.NewPosition(2, 4)).Find(world.ItemTypePlanet)

	// Act
	toPlanet := extendTo(t, oracle, routing.NewRootPath(game), planet.Position)
	toWaldo := extendTo(t, oracle, toPlanet, game.Waldo().Position)
	backToPlanet := extendTo(t, oracle, toWaldo, planet.Position)
	home := extendTo(t, oracle, backToPlanet, game.Base().Position)

	// Assert
	assert.Equal(t, 6000, toPlanet.ShipFuel())
	assert.Equal(t, 4000, toPlanet.FuelLastFound(), "tank is capped by headroom")
	assert.Equal(t, 4000, toPlanet.Withdrawn(planet.Position))

	assert.Equal(t, 6000, toWaldo.ShipFuel())
	assert.True(t, toWaldo.HasWaldo())

	assert.Equal(t, 1000, backToPlanet.ShipFuel())
	assert.Equal(t, 6000, backToPlanet.FuelLastFound(), "only the unclaimed remainder is available")
	assert.Equal(t, 10000, backToPlanet.Withdrawn(planet.Position))

	assert.Equal(t, 3000, home.ShipFuel())
	assert.Equal(t, 17, home.Steps())
	assert.True(t, home.IsComplete())
	assert.Equal(t, 4, home.Depth())
	assert.Len(t, home.Legs(), 4)
	assert.Equal(t, -7000, home.FuelBalance())
	assert.Len(t, home.StepList(), 12)

	// parents are never mutated
	assert.Equal(t, 0, toPlanet.Withdrawn(shared.NewPosition(1, 2)))
	assert.Equal(t, 4000, toWaldo.Withdrawn(planet.Position))
}

func TestPath_SiblingBranchesClaimPlanetFuelIndependently(t *testing.T) {
	// Arrange: both branches share the base -> planet prefix
	game := helpers.RefuelSector().Build(t)
	oracle := routing.NewDistanceOracle(game)
	planet := game.Level().Cell(shared.NewPosition(2, 4)).Find(world.ItemTypePlanet)
	toPlanet := extendTo(t, oracle, routing.NewRootPath(game), planet.Position)

	// Act
	viaWaldo := extendTo(t, oracle, extendTo(t, oracle, toPlanet, game.Waldo().Position), planet.Position)
	viaBase := extendTo(t, oracle, extendTo(t, oracle, toPlanet, game.Base().Position), planet.Position)
	viaWaldoAgain := extendTo(t, oracle, extendTo(t, oracle, toPlanet, game.Waldo().Position), planet.Position)

	// Assert
	for _, branch := range []*routing.Path{viaWaldo, viaBase} {
		withdrawn := branch.Withdrawn(planet.Position)
		assert.LessOrEqual(t, withdrawn, planet.Fuel)
		assert.Equal(t, 4000+branch.FuelLastFound(), withdrawn)
	}
	assert.Equal(t, 10000, viaWaldo.Withdrawn(planet.Position))
	assert.Equal(t, viaWaldo.Withdrawn(planet.Position), viaWaldoAgain.Withdrawn(planet.Position))
	assert.Equal(t, viaWaldo.FuelLastFound(), viaWaldoAgain.FuelLastFound())
	assert.Equal(t, 4000, toPlanet.Withdrawn(planet.Position))
}

func TestPath_DirectRouteRunsDry(t *testing.T) {
	// Arrange
	game := helpers.RefuelSector().Build(t)
	oracle := routing.NewDistanceOracle(game)

	// Act
	toWaldo := extendTo(t, oracle, routing.NewRootPath(game), game.Waldo().Position)

	// Assert
	assert.Equal(t, 3000, toWaldo.ShipFuel())
	assert.True(t, toWaldo.IsValid())

	route, ok := oracle.Strict().RouteTo(toWaldo.Last().Position, toWaldo.Facing(), game.Base().Position)
	require.True(t, ok)
	home := toWaldo.Extend(route)
	assert.False(t, home.IsValid())
	assert.False(t, home.IsComplete())
}

func TestPath_TurboRaisesSpeedOnce(t *testing.T) {
	// Arrange
	fixture := helpers.OpenSector(shared.DirectionRight, 100000)
	fixture.Items = append(fixture.Items, helpers.ItemFixture{Name: "SPEED_1", Type: world.ItemTypeTurbo, X: 2, Y: 0})
	game := fixture.Build(t)
	oracle := routing.NewDistanceOracle(game)

	// Act
	toTurbo := extendTo(t, oracle, routing.NewRootPath(game), shared.NewPosition(2, 0))

	// Assert
	assert.Equal(t, 2, toTurbo.Speed())
	assert.Equal(t, 100000-shared.FuelCost(2, 1), toTurbo.ShipFuel())

	toWaldo := extendTo(t, oracle, toTurbo, game.Waldo().Position)
	back := extendTo(t, oracle, toWaldo, shared.NewPosition(2, 0))
	assert.Equal(t, 2, back.Speed(), "a used turbo does not apply twice")
}
