package simulation

import (
	"fmt"

	"github.com/andrescamacho/waldolaw-go/internal/domain/shared"
)

// CommandType discriminates output commands
type CommandType int

const (
	CommandTypeNone CommandType = iota
	CommandTypeForward
	CommandTypeTurn
	CommandTypeDock
	CommandTypeName
)

func (t CommandType) String() string {
	switch t {
	case CommandTypeForward:
		return "FORWARD"
	case CommandTypeTurn:
		return "TURN"
	case CommandTypeDock:
		return "DOCK"
	case CommandTypeName:
		return "NAME"
	}
	return "NONE"
}

// Command is one line of ship output
type Command struct {
	Type       CommandType
	Steps      int
	Turn       shared.Direction
	DurationMs int
	Tag        string
}

// NewForward creates a FORWARD command
func NewForward(steps int) Command {
	return Command{Type: CommandTypeForward, Steps: steps}
}

// NewTurn creates a TURN command; only Left and Right are meaningful
func NewTurn(turn shared.Direction) Command {
	return Command{Type: CommandTypeTurn, Turn: turn}
}

// NewDock creates a DOCK command
func NewDock(durationMs int) Command {
	return Command{Type: CommandTypeDock, DurationMs: durationMs}
}

// NewName creates a NAME command
func NewName(tag string) Command {
	return Command{Type: CommandTypeName, Tag: tag}
}

// Line renders the command in its textual output form
func (c Command) Line() string {
	switch c.Type {
	case CommandTypeForward:
		return fmt.Sprintf("FORWARD %d", c.Steps)
	case CommandTypeTurn:
		return fmt.Sprintf("TURN %s", c.Turn)
	case CommandTypeDock:
		return fmt.Sprintf("DOCK %d", c.DurationMs)
	case CommandTypeName:
		return fmt.Sprintf("NAME %s", c.Tag)
	}
	return ""
}

func (c Command) String() string {
	return c.Line()
}

// Commands is an ordered command list. Consecutive FORWARD commands are
// merged into a single run-length FORWARD as they are added.
type Commands struct {
	list  []Command
	count int
}

// NewCommands creates an empty list
func NewCommands() *Commands {
	return &Commands{}
}

// Add appends a command, coalescing it into a preceding FORWARD if possible
func (c *Commands) Add(cmd Command) {
	if cmd.Type == CommandTypeForward && len(c.list) > 0 {
		last := &c.list[len(c.list)-1]
		if last.Type == CommandTypeForward {
			last.Steps += cmd.Steps
			return
		}
	}
	c.list = append(c.list, cmd)
	if cmd.Type != CommandTypeName {
		c.count++
	}
}

// AddName appends a NAME tag
func (c *Commands) AddName(tag string) {
	c.Add(NewName(tag))
}

// Count returns the number of commands excluding NAME
func (c *Commands) Count() int {
	return c.count
}

// List returns a copy of the commands
func (c *Commands) List() []Command {
	out := make([]Command, len(c.list))
	copy(out, c.list)
	return out
}

// Lines renders every command
func (c *Commands) Lines() []string {
	lines := make([]string, len(c.list))
	for i, cmd := range c.list {
		lines[i] = cmd.Line()
	}
	return lines
}

// OfType returns the commands of the given type, in order
func (c *Commands) OfType(t CommandType) []Command {
	var out []Command
	for _, cmd := range c.list {
		if cmd.Type == t {
			out = append(out, cmd)
		}
	}
	return out
}
