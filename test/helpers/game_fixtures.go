package helpers

import (
	"testing"

	"github.com/andrescamacho/waldolaw-go/internal/domain/shared"
	"github.com/andrescamacho/waldolaw-go/internal/domain/world"
)

// ItemFixture places one item on a test sector
type ItemFixture struct {
	Name string
	Type world.ItemType
	X, Y int
	Fuel int
}

// ShipFixture is the ship's starting state. Base is placed under the ship.
type ShipFixture struct {
	X, Y    int
	Fuel    int
	Heading shared.Direction
	Speed   int
}

// GameFixture describes a complete test sector
type GameFixture struct {
	Size     int
	MaxFuel  int
	MaxSpeed int
	Ship     ShipFixture
	Items    []ItemFixture
}

// WithCornerSatellites adds satellites in the four corners
func (f GameFixture) WithCornerSatellites() GameFixture {
	n := f.Size - 1
	f.Items = append(append([]ItemFixture(nil), f.Items...),
		ItemFixture{Name: "SAT_0", Type: world.ItemTypeSatellite, X: 0, Y: 0},
		ItemFixture{Name: "SAT_1", Type: world.ItemTypeSatellite, X: n, Y: 0},
		ItemFixture{Name: "SAT_2", Type: world.ItemTypeSatellite, X: 0, Y: n},
		ItemFixture{Name: "SAT_3", Type: world.ItemTypeSatellite, X: n, Y: n},
	)
	return f
}

// Build creates the game, failing the test on a malformed fixture
func (f GameFixture) Build(t testing.TB) *world.Game {
	t.Helper()
	game, err := f.TryBuild()
	if err != nil {
		t.Fatalf("failed to build game fixture: %v", err)
	}
	return game
}

// TryBuild creates the game and returns construction errors
func (f GameFixture) TryBuild() (*world.Game, error) {
	items := make([]*world.Item, 0, len(f.Items)+2)
	for _, it := range f.Items {
		items = append(items, world.NewItem(it.Name, it.Type, shared.NewPosition(it.X, it.Y), it.Fuel))
	}

	home := shared.NewPosition(f.Ship.X, f.Ship.Y)
	ship := world.NewItem("SHIP", world.ItemTypeShip, home, f.Ship.Fuel)
	ship.Heading = f.Ship.Heading
	if f.Ship.Speed > 0 {
		ship.Speed = f.Ship.Speed
	}
	items = append(items, world.NewItem("BASE", world.ItemTypeBase, home, 0), ship)

	return world.NewGame(f.Size, items, f.MaxFuel, f.MaxSpeed)
}

// RefuelSector is a 7x7 sector where Waldo is only reachable by refuelling
// at the planet on the way out and again on the way back.
//
//	S . . . . . S
//	. . . . . . .
//	. W . . . . .
//	. . . . . . .
//	. . P . . . .
//	. . . . . . .
//	S . . ^ . . S
func RefuelSector() GameFixture {
	return GameFixture{
		Size:     7,
		MaxFuel:  10000,
		MaxSpeed: 6,
		Ship:     ShipFixture{X: 3, Y: 6, Fuel: 10000, Heading: shared.DirectionUp, Speed: 1},
		Items: []ItemFixture{
			{Name: "WALDO_23", Type: world.ItemTypeWaldo, X: 1, Y: 2},
			{Name: "PLANET_f2", Type: world.ItemTypePlanet, X: 2, Y: 4, Fuel: 10000},
		},
	}.WithCornerSatellites()
}

// RefuelSectorCommands is the optimal plan for RefuelSector
var RefuelSectorCommands = []string{
	"NAME MATE",
	"FORWARD 2",
	"TURN LEFT",
	"FORWARD 1",
	"DOCK 4000",
	"FORWARD 1",
	"TURN RIGHT",
	"FORWARD 2",
	"TURN RIGHT",
	"FORWARD 1",
	"TURN RIGHT",
	"FORWARD 2",
	"DOCK 3000",
	"FORWARD 2",
	"TURN LEFT",
	"FORWARD 1",
}

// OpenSector is an obstacle-free 5x5 sector with Base in the top-left corner
// and Waldo in the bottom-right corner
func OpenSector(heading shared.Direction, fuel int) GameFixture {
	return GameFixture{
		Size:     5,
		MaxFuel:  100000,
		MaxSpeed: 6,
		Ship:     ShipFixture{X: 0, Y: 0, Fuel: fuel, Heading: heading, Speed: 1},
		Items: []ItemFixture{
			{Name: "WALDO_44", Type: world.ItemTypeWaldo, X: 4, Y: 4},
		},
	}
}
