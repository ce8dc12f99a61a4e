package engine

import (
	"fmt"

	"github.com/nathoo/fablecore/engine/entities"
	"github.com/nathoo/fablecore/types"
)

// InteractionTarget is anything an item can be applied to. Implemented by
// *entities.Item and *entities.Character (and so by the player and NPCs).
type InteractionTarget interface {
	Interact(item *entities.Item) entities.InteractionResult
}

// UseOn applies an item to a target. The target's interaction resolver
// decides what happens; the returned effect tag tells this command which
// structural change to perform.
type UseOn struct {
	Item   *entities.Item
	Target InteractionTarget
}

// Invoke validates reach, resolves the interaction, and performs the
// container mutation the effect tag prescribes.
func (c *UseOn) Invoke(g *Game) types.Reaction {
	if c.Item == nil {
		return types.Reaction{Result: types.Error, Description: "Use what?"}
	}
	if c.Target == nil {
		return types.Reaction{Result: types.Error, Description: "Use it on what?"}
	}

	room := g.CurrentRoom()
	inReach := g.Player().HasItem(c.Item) || (room != nil && room.ContainsItem(c.Item))
	if !inReach {
		return types.Reaction{Result: types.Error, Description: fmt.Sprintf("You don't have the %s.", c.Item.Identifier().Name())}
	}

	result := c.Target.Interact(c.Item)
	switch result.Effect {
	case entities.NoEffect:
		return types.Reaction{Result: types.None, Description: result.Description}

	case entities.FatalEffect:
		g.Player().Kill()
		return types.Reaction{Result: types.Fatal, Description: result.Description}

	case entities.ItemMorphed:
		// The resolver already morphed the item in place; holders keep
		// their references.
		return types.Reaction{Result: types.OK, Description: result.Description}

	case entities.ItemUsedUp:
		used := result.Item
		if used == nil {
			used = c.Item
		}
		g.RemoveItemFromWorld(used)
		return types.Reaction{Result: types.OK, Description: result.Description}

	case entities.TargetUsedUp:
		if room != nil {
			switch target := c.Target.(type) {
			case *entities.Item:
				room.RemoveItem(target)
			case *entities.NonPlayableCharacter:
				room.RemoveCharacter(target)
			}
		}
		return types.Reaction{Result: types.OK, Description: result.Description}

	case entities.SelfContained:
		return types.Reaction{Result: types.Internal, Description: result.Description}

	default:
		return types.Reaction{Result: types.Error, Description: "Nothing happens."}
	}
}
