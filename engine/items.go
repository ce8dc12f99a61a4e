package engine

import (
	"fmt"
	"strings"

	"github.com/nathoo/fablecore/engine/entities"
	"github.com/nathoo/fablecore/types"
)

// Take moves an item from the current room into the player's inventory.
type Take struct {
	Item *entities.Item
}

// Invoke validates presence and takeability before mutating either
// container.
func (c *Take) Invoke(g *Game) types.Reaction {
	if c.Item == nil {
		return types.Reaction{Result: types.Error, Description: "Take what?"}
	}
	room := g.CurrentRoom()
	if room == nil || !room.ContainsItem(c.Item) {
		return types.Reaction{Result: types.Error, Description: fmt.Sprintf("There is no %s here.", c.Item.Identifier().Name())}
	}
	if !c.Item.IsTakeable() {
		return types.Reaction{Result: types.Error, Description: fmt.Sprintf("The %s can't be taken.", c.Item.Identifier().Name())}
	}

	room.RemoveItem(c.Item)
	g.Player().AddItem(c.Item)
	return types.Reaction{Result: types.OK, Description: fmt.Sprintf("You take the %s.", c.Item.Identifier().Name())}
}

// TakeAll moves every visible takeable item in the room into the player's
// inventory.
type TakeAll struct{}

// Invoke fails with no mutation when there is nothing to take.
func (c *TakeAll) Invoke(g *Game) types.Reaction {
	room := g.CurrentRoom()
	if room == nil {
		return types.Reaction{Result: types.Error, Description: "There is nothing here to take."}
	}

	var takeable []*entities.Item
	for _, item := range room.Items() {
		if item.IsPlayerVisible() && item.IsTakeable() {
			takeable = append(takeable, item)
		}
	}
	if len(takeable) == 0 {
		return types.Reaction{Result: types.Error, Description: "There is nothing here to take."}
	}

	var names []string
	for _, item := range takeable {
		room.RemoveItem(item)
		g.Player().AddItem(item)
		names = append(names, item.Identifier().Name())
	}
	return types.Reaction{Result: types.OK, Description: "You take: " + strings.Join(names, ", ") + "."}
}

// Drop moves an item from the player's inventory into the current room.
type Drop struct {
	Item *entities.Item
}

// Invoke validates possession before mutating either container.
func (c *Drop) Invoke(g *Game) types.Reaction {
	if c.Item == nil {
		return types.Reaction{Result: types.Error, Description: "Drop what?"}
	}
	if !g.Player().HasItem(c.Item) {
		return types.Reaction{Result: types.Error, Description: fmt.Sprintf("You don't have the %s.", c.Item.Identifier().Name())}
	}
	room := g.CurrentRoom()
	if room == nil {
		return types.Reaction{Result: types.Error, Description: "There is nowhere to drop it."}
	}

	g.Player().RemoveItem(c.Item)
	room.AddItem(c.Item)
	return types.Reaction{Result: types.OK, Description: fmt.Sprintf("You drop the %s.", c.Item.Identifier().Name())}
}

// Inventory lists what the player is carrying.
type Inventory struct{}

// Invoke produces its own narration; nothing mutates.
func (c *Inventory) Invoke(g *Game) types.Reaction {
	items := g.Player().Items()
	var names []string
	for _, item := range items {
		if item.IsPlayerVisible() {
			names = append(names, item.Identifier().Name())
		}
	}
	if len(names) == 0 {
		return types.Reaction{Result: types.Internal, Description: "You are carrying nothing."}
	}
	return types.Reaction{Result: types.Internal, Description: "You are carrying: " + strings.Join(names, ", ") + "."}
}

// Examine resolves an examination of an object, or of the current room
// when no target is given.
type Examine struct {
	Target *entities.Examinable
}

// Invoke produces its own narration; nothing mutates.
func (c *Examine) Invoke(g *Game) types.Reaction {
	if c.Target == nil {
		return types.Reaction{Result: types.Internal, Description: strings.Join(DescribeRoom(g), "\n")}
	}
	result := c.Target.Examine()
	return types.Reaction{Result: types.Internal, Description: result.Description}
}
