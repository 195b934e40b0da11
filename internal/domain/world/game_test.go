package world_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/waldolaw-go/internal/domain/shared"
	"github.com/andrescamacho/waldolaw-go/internal/domain/world"
	"github.com/andrescamacho/waldolaw-go/test/helpers"
)

func TestNewGame_RegistersSingletons(t *testing.T) {
	// Act
	game := helpers.RefuelSector().Build(t)

	// Assert
	require.NotNil(t, game.Waldo())
	assert.Equal(t, shared.NewPosition(1, 2), game.Waldo().Position)
	assert.Equal(t, shared.NewPosition(3, 6), game.Base().Position)
	assert.Equal(t, game.Base().Position, game.Ship().Position)
	assert.Len(t, game.Items(), 8)
	assert.Equal(t, 7, game.Level().Size())
}

func TestNewGame_RejectsMissingWaldo(t *testing.T) {
	// Arrange
	fixture := helpers.OpenSector(shared.DirectionUp, 1000)
	fixture.Items = nil

	// Act
	_, err := fixture.TryBuild()

	// Assert
	var malformed *shared.MalformedWorldError
	require.ErrorAs(t, err, &malformed)
	assert.Contains(t, err.Error(), "WALDO")
}

func TestNewGame_RejectsDuplicateWaldo(t *testing.T) {
	// Arrange
	fixture := helpers.OpenSector(shared.DirectionUp, 1000)
	fixture.Items = append(fixture.Items, helpers.ItemFixture{Name: "WALDO_2", Type: world.ItemTypeWaldo, X: 2, Y: 2})

	// Act
	_, err := fixture.TryBuild()

	// Assert
	var malformed *shared.MalformedWorldError
	require.ErrorAs(t, err, &malformed)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestNewGame_RejectsItemOffGrid(t *testing.T) {
	// Arrange
	fixture := helpers.OpenSector(shared.DirectionUp, 1000)
	fixture.Items = append(fixture.Items, helpers.ItemFixture{Name: "PLANET_x", Type: world.ItemTypePlanet, X: 9, Y: 0, Fuel: 10})

	// Act
	_, err := fixture.TryBuild()

	// Assert
	var malformed *shared.MalformedWorldError
	assert.ErrorAs(t, err, &malformed)
}

func TestGame_TargetsSkipShipAndObstacles(t *testing.T) {
	// Arrange
	fixture := helpers.RefuelSector()
	fixture.Items = append(fixture.Items,
		helpers.ItemFixture{Name: "PLANET_dry", Type: world.ItemTypePlanet, X: 5, Y: 5, Fuel: 0},
		helpers.ItemFixture{Name: "SPEED_1", Type: world.ItemTypeTurbo, X: 5, Y: 1},
	)
	game := fixture.Build(t)

	// Act
	targets := game.Targets()

	// Assert
	names := make([]string, len(targets))
	for i, target := range targets {
		names[i] = target.Name
	}
	assert.ElementsMatch(t, []string{"WALDO_23", "PLANET_f2", "SPEED_1", "BASE"}, names)
	assert.Equal(t, game.Base(), game.TargetAt(game.Ship().Position))
}

func TestGame_SnapshotIsIndependent(t *testing.T) {
	// Arrange
	game := helpers.RefuelSector().Build(t)
	snapshot := game.Snapshot()

	// Act
	ship := snapshot.Ship()
	require.NoError(t, snapshot.Level().Move(ship, shared.NewPosition(3, 5)))
	ship.Fuel = 1
	snapshot.Level().Cell(shared.NewPosition(2, 4)).Find(world.ItemTypePlanet).Fuel = 0

	// Assert
	assert.Equal(t, shared.NewPosition(3, 6), game.Ship().Position)
	assert.Equal(t, 10000, game.Ship().Fuel)
	assert.Equal(t, 10000, game.Level().Cell(shared.NewPosition(2, 4)).Find(world.ItemTypePlanet).Fuel)
	assert.Nil(t, game.Level().Cell(shared.NewPosition(3, 5)).Find(world.ItemTypeShip))
	assert.Same(t, snapshot.Ship(), snapshot.Level().Cell(shared.NewPosition(3, 5)).Find(world.ItemTypeShip))
}

func TestItemType_Blocks(t *testing.T) {
	assert.True(t, world.ItemTypeSatellite.Blocks())
	assert.True(t, world.ItemTypeAsteroid.Blocks())
	assert.False(t, world.ItemTypePlanet.Blocks())
	assert.False(t, world.ItemTypeTurbo.Blocks())
	assert.False(t, world.ItemTypeWaldo.Blocks())
}

func TestParseItemType(t *testing.T) {
	itemType, err := world.ParseItemType("TURBO")
	require.NoError(t, err)
	assert.Equal(t, world.ItemTypeTurbo, itemType)

	_, err = world.ParseItemType("COMET")
	assert.Error(t, err)
}
