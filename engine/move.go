package engine

import (
	"fmt"

	"github.com/nathoo/fablecore/engine/world"
	"github.com/nathoo/fablecore/types"
)

// Move walks the player one room in a direction.
type Move struct {
	Direction world.Direction
}

// Invoke validates the exit and performs the move. Locked exits, missing
// exits, and empty destination cells all fail with no mutation.
func (c *Move) Invoke(g *Game) types.Reaction {
	region := g.Overworld().CurrentRegion()
	if region == nil || region.CurrentRoom() == nil {
		return types.Reaction{Result: types.Error, Description: "You are nowhere."}
	}

	room := region.CurrentRoom()
	exit, ok := room.Exit(c.Direction)
	if !ok {
		return types.Reaction{Result: types.Error, Description: fmt.Sprintf("You can't go %s.", c.Direction)}
	}
	if exit.IsLocked() {
		return types.Reaction{Result: types.Error, Description: fmt.Sprintf("The way %s is locked.", c.Direction)}
	}
	if !region.Move(c.Direction) {
		return types.Reaction{Result: types.Error, Description: fmt.Sprintf("You can't go %s.", c.Direction)}
	}

	return types.Reaction{Result: types.OK, Description: fmt.Sprintf("You head %s.", c.Direction)}
}
