package engine

import (
	"github.com/nathoo/fablecore/engine/entities"
	"github.com/nathoo/fablecore/types"
)

// Command is a single player action resolved from input. Invoke either
// fully applies the action or, on any precondition failure, returns an
// Error reaction with zero mutation.
type Command interface {
	Invoke(g *Game) types.Reaction
}

// Unactionable is the fallback command when no interpreter matched the
// input. It mutates nothing.
type Unactionable struct {
	Input string
}

// Invoke reports that the input was not actionable.
func (c *Unactionable) Invoke(g *Game) types.Reaction {
	return types.Reaction{Result: types.None, Description: "That doesn't make sense here."}
}

// reply is a pre-resolved reaction, used when an interpreter discovers at
// resolution time that a command cannot be built (missing entity, unknown
// direction). It mutates nothing.
type reply struct {
	reaction types.Reaction
}

func errorReply(description string) *reply {
	return &reply{reaction: types.Reaction{Result: types.Error, Description: description}}
}

func (c *reply) Invoke(g *Game) types.Reaction {
	return c.reaction
}

// customCommand runs a per-entity command registered on an examinable.
type customCommand struct {
	command *entities.CustomCommand
}

func (c *customCommand) Invoke(g *Game) types.Reaction {
	return c.command.Callback()
}
