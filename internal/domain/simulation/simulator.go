package simulation

import (
	"fmt"

	"github.com/andrescamacho/waldolaw-go/internal/domain/routing"
	"github.com/andrescamacho/waldolaw-go/internal/domain/shared"
	"github.com/andrescamacho/waldolaw-go/internal/domain/world"
)

// SimCommand is one atomic, undoable ship action. The set of implementations
// is closed: forward, turn and dock.
type SimCommand interface {
	Type() CommandType
	Do() error
	Undo()
	Emit() []Command
	TimeCost() int
}

// Simulator replays ship actions against a Game it owns exclusively.
// Callers hand it a snapshot, never the real game.
type Simulator struct {
	game     *world.Game
	commands []SimCommand
}

// NewSimulator creates a simulator over game
func NewSimulator(game *world.Game) *Simulator {
	return &Simulator{game: game}
}

// Game returns the simulated game
func (s *Simulator) Game() *world.Game {
	return s.game
}

func (s *Simulator) run(cmd SimCommand) error {
	if err := cmd.Do(); err != nil {
		return err
	}
	s.commands = append(s.commands, cmd)
	return nil
}

// Forward moves the ship one cell along its heading
func (s *Simulator) Forward() error {
	return s.run(&forwardCommand{game: s.game})
}

// Turn rotates the ship to face heading
func (s *Simulator) Turn(heading shared.Direction) error {
	return s.run(&turnCommand{game: s.game, target: heading})
}

// Dock stays on the current planet for durationMs
func (s *Simulator) Dock(durationMs int) error {
	return s.run(&DockCommand{game: s.game, durationMs: durationMs})
}

// MoveTo turns toward an adjacent cell and enters it
func (s *Simulator) MoveTo(pos shared.Position) error {
	ship := s.game.Ship()
	if ship.Position.ManhattanDistance(pos) != 1 {
		return fmt.Errorf("cannot move from %s to %s: not adjacent", ship.Position, pos)
	}
	var heading shared.Direction
	for _, d := range shared.MainDirections {
		if ship.Position.Step(d) == pos {
			heading = d
		}
	}
	if heading != ship.Heading {
		if err := s.Turn(heading); err != nil {
			return err
		}
	}
	return s.Forward()
}

// UndoLast reverts and drops the most recent command
func (s *Simulator) UndoLast() bool {
	if len(s.commands) == 0 {
		return false
	}
	last := s.commands[len(s.commands)-1]
	last.Undo()
	s.commands = s.commands[:len(s.commands)-1]
	return true
}

// Commands returns the executed commands in order
func (s *Simulator) Commands() []SimCommand {
	return s.commands
}

// Docks returns the dock commands in visitation order
func (s *Simulator) Docks() []*DockCommand {
	var docks []*DockCommand
	for _, cmd := range s.commands {
		if d, ok := cmd.(*DockCommand); ok {
			docks = append(docks, d)
		}
	}
	return docks
}

// ElapsedMs sums the time cost of every executed command
func (s *Simulator) ElapsedMs() int {
	total := 0
	for _, cmd := range s.commands {
		total += cmd.TimeCost()
	}
	return total
}

// GenerateCommands renders the command log prefixed with a NAME tag and
// returns it with the total elapsed milliseconds
func (s *Simulator) GenerateCommands(tag string) (*Commands, int) {
	out := NewCommands()
	out.AddName(tag)
	for _, cmd := range s.commands {
		for _, c := range cmd.Emit() {
			out.Add(c)
		}
	}
	return out, s.ElapsedMs()
}

// ReplayPath drives the ship along path. Before leaving any planet node the
// ship docks provisionally for minDockMs; the fuel allocator fixes real
// durations afterwards.
func (s *Simulator) ReplayPath(path *routing.Path, minDockMs int) error {
	ship := s.game.Ship()
	for _, leg := range path.Legs() {
		if ship.Position != leg.From.Position {
			return fmt.Errorf("ship at %s but leg starts at %s", ship.Position, leg.From)
		}
		if leg.From.Type == world.ItemTypePlanet {
			if err := s.Dock(minDockMs); err != nil {
				return err
			}
		}
		for _, heading := range leg.Steps {
			if heading != ship.Heading {
				if err := s.Turn(heading); err != nil {
					return err
				}
			}
			if err := s.Forward(); err != nil {
				return err
			}
		}
	}
	return nil
}

type forwardCommand struct {
	game       *world.Game
	from       shared.Position
	speed      int
	fuelSpent  int
	turbo      *world.Item
	turboIndex int
}

func (c *forwardCommand) Type() CommandType { return CommandTypeForward }

func (c *forwardCommand) Do() error {
	ship := c.game.Ship()
	level := c.game.Level()
	target := ship.Position.Step(ship.Heading)
	if !level.IsPassable(target) {
		return fmt.Errorf("cannot move forward from %s facing %s: %s is blocked", ship.Position, ship.Heading, target)
	}

	c.from = ship.Position
	c.speed = ship.Speed
	c.fuelSpent = shared.FuelCost(1, ship.Speed)
	if err := level.Move(ship, target); err != nil {
		return err
	}
	ship.Fuel -= c.fuelSpent

	if turbo := level.Cell(target).Find(world.ItemTypeTurbo); turbo != nil && ship.Speed < c.game.MaxSpeed() {
		c.turbo = turbo
		c.turboIndex = level.IndexIn(turbo)
		level.Remove(turbo)
		ship.Speed++
	}
	return nil
}

func (c *forwardCommand) Undo() {
	ship := c.game.Ship()
	level := c.game.Level()
	_ = level.Move(ship, c.from)
	ship.Fuel += c.fuelSpent
	ship.Speed = c.speed
	if c.turbo != nil {
		_ = level.Insert(c.turbo, c.turboIndex)
		c.turbo = nil
	}
}

func (c *forwardCommand) Emit() []Command {
	return []Command{NewForward(1)}
}

func (c *forwardCommand) TimeCost() int {
	return shared.TimeCost(1, c.speed)
}

type turnCommand struct {
	game      *world.Game
	target    shared.Direction
	original  shared.Direction
	turn      shared.Direction
	turns     int
	speed     int
	fuelSpent int
}

func (c *turnCommand) Type() CommandType { return CommandTypeTurn }

func (c *turnCommand) Do() error {
	if !c.target.IsCardinal() {
		return fmt.Errorf("cannot turn to %s", c.target)
	}
	ship := c.game.Ship()
	c.original = ship.Heading
	c.speed = ship.Speed
	c.turns = ship.Heading.CostTo(c.target)
	c.turn = ship.Heading.TurnToReach(c.target)
	c.fuelSpent = shared.FuelCost(c.turns, ship.Speed)
	ship.Heading = c.target
	ship.Fuel -= c.fuelSpent
	return nil
}

func (c *turnCommand) Undo() {
	ship := c.game.Ship()
	ship.Heading = c.original
	ship.Fuel += c.fuelSpent
}

func (c *turnCommand) Emit() []Command {
	out := make([]Command, 0, c.turns)
	for i := 0; i < c.turns; i++ {
		out = append(out, NewTurn(c.turn))
	}
	return out
}

func (c *turnCommand) TimeCost() int {
	return shared.TimeCost(c.turns, c.speed)
}

// DockCommand transfers fuel from the planet under the ship, one unit per ms
type DockCommand struct {
	game              *world.Game
	planet            *world.Item
	durationMs        int
	transferred       int
	applied           bool
	shipFuelOnArrival int
}

func (c *DockCommand) Type() CommandType { return CommandTypeDock }

func (c *DockCommand) Do() error {
	ship := c.game.Ship()
	planet := c.game.Level().Cell(ship.Position).Find(world.ItemTypePlanet)
	if planet == nil {
		return fmt.Errorf("cannot dock at %s: no planet", ship.Position)
	}
	c.planet = planet
	c.shipFuelOnArrival = ship.Fuel
	c.apply(max(0, min(c.durationMs, planet.Fuel)))
	return nil
}

func (c *DockCommand) Undo() {
	if !c.applied {
		return
	}
	ship := c.game.Ship()
	c.planet.Fuel += c.transferred
	ship.Fuel -= c.transferred
	c.transferred = 0
	c.applied = false
}

// PostAlterDuration rewrites this dock in place: the emitted duration becomes
// durationMs and exactly fuel units move from planet to ship. Commands
// executed after the dock are not replayed.
func (c *DockCommand) PostAlterDuration(durationMs, fuel int) {
	c.Undo()
	c.durationMs = durationMs
	c.apply(fuel)
}

func (c *DockCommand) apply(fuel int) {
	c.planet.Fuel -= fuel
	c.game.Ship().Fuel += fuel
	c.transferred = fuel
	c.applied = true
}

func (c *DockCommand) Emit() []Command {
	return []Command{NewDock(c.durationMs)}
}

func (c *DockCommand) TimeCost() int {
	return c.durationMs
}

// Getters

func (c *DockCommand) Planet() *world.Item {
	return c.planet
}

func (c *DockCommand) DurationMs() int {
	return c.durationMs
}

func (c *DockCommand) Transferred() int {
	return c.transferred
}

// ShipFuelOnArrival is the tank level recorded when the dock first ran
func (c *DockCommand) ShipFuelOnArrival() int {
	return c.shipFuelOnArrival
}
