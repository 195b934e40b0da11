package puzzle

import (
	"context"
	"fmt"
	"strings"

	"github.com/andrescamacho/waldolaw-go/internal/application/common"
	"github.com/andrescamacho/waldolaw-go/internal/domain/shared"
	"github.com/andrescamacho/waldolaw-go/internal/domain/world"
)

const (
	satellite0 = "SAT_0"
	satellite1 = "SAT_1"
	satellite2 = "SAT_2"
	satellite3 = "SAT_3"
)

var namePrefixes = map[string]world.ItemType{
	"WALDO":    world.ItemTypeWaldo,
	"PLANET":   world.ItemTypePlanet,
	"SPEED":    world.ItemTypeTurbo,
	"SAT":      world.ItemTypeSatellite,
	"ASTEROID": world.ItemTypeAsteroid,
}

// GameBuilder turns a puzzle document into a Game.
//
// Items are located from their distances to SAT_0 at (0,0) and SAT_2 at
// (0,N-1). The four satellites sit in the corners and Base and Ship share
// ((N-1)/2, N-1).
type GameBuilder struct {
	logger common.PlanLogger
}

// NewGameBuilder creates a builder; logger may be nil
func NewGameBuilder(logger common.PlanLogger) *GameBuilder {
	if logger == nil {
		logger = common.LoggerFromContext(context.Background())
	}
	return &GameBuilder{logger: logger}
}

// Build creates the game described by input
func (b *GameBuilder) Build(input *Input) (*world.Game, error) {
	n := input.MapSize
	items := make([]*world.Item, 0, len(input.Items)+6)

	for _, in := range input.Items {
		sat0, err := satelliteDistance(in, satellite0)
		if err != nil {
			return nil, err
		}
		sat2, err := satelliteDistance(in, satellite2)
		if err != nil {
			return nil, err
		}
		pos, err := Trilaterate(sat0, sat2, n)
		if err != nil {
			return nil, fmt.Errorf("item %s: %w", in.Name, err)
		}

		itemType, ok := ItemTypeFromName(in.Name)
		if !ok {
			b.logger.Log(common.LevelWarn, "could not parse item type from name", map[string]interface{}{
				"name": in.Name,
			})
		}
		items = append(items, world.NewItem(in.Name, itemType, pos, in.Fuel))
	}

	items = append(items,
		world.NewItem(satellite0, world.ItemTypeSatellite, shared.NewPosition(0, 0), 0),
		world.NewItem(satellite1, world.ItemTypeSatellite, shared.NewPosition(n-1, 0), 0),
		world.NewItem(satellite2, world.ItemTypeSatellite, shared.NewPosition(0, n-1), 0),
		world.NewItem(satellite3, world.ItemTypeSatellite, shared.NewPosition(n-1, n-1), 0),
	)

	home := shared.NewPosition((n-1)/2, n-1)
	ship := world.NewItem("SHIP", world.ItemTypeShip, home, input.Fuel)
	ship.Speed = input.Speed
	items = append(items, world.NewItem("BASE", world.ItemTypeBase, home, 0), ship)

	game, err := world.NewGame(n, items, input.MaxFuel, input.MaxSpeed)
	if err != nil {
		return nil, fmt.Errorf("failed to build game: %w", err)
	}
	return game, nil
}

// Trilaterate finds the cell whose Manhattan distances to (0,0) and (0,n-1)
// are sat0 and sat2
func Trilaterate(sat0, sat2, n int) (shared.Position, error) {
	for x := 0; x <= sat0; x++ {
		y := sat0 - x
		if sat2-x == n-1-y {
			return shared.NewPosition(x, y), nil
		}
	}
	return shared.Position{}, shared.NewValidationError("distances",
		fmt.Sprintf("no cell matches mapsize %d, %s=%d, %s=%d", n, satellite0, sat0, satellite2, sat2))
}

// ItemTypeFromName reads the item type from the name prefix before the first
// underscore, e.g. "PLANET_f2". Unknown prefixes give ItemTypeEmpty, false.
func ItemTypeFromName(name string) (world.ItemType, bool) {
	prefix, _, _ := strings.Cut(strings.TrimSpace(name), "_")
	itemType, ok := namePrefixes[strings.ToUpper(strings.TrimSpace(prefix))]
	if !ok {
		return world.ItemTypeEmpty, false
	}
	return itemType, true
}

func satelliteDistance(item ItemInput, satellite string) (int, error) {
	for _, d := range item.Distances {
		if d.SatelliteName == satellite {
			return d.Distance, nil
		}
	}
	return 0, shared.NewValidationError("distances", fmt.Sprintf("item %s is missing %s", item.Name, satellite))
}
