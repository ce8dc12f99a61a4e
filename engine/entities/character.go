package entities

import (
	"fmt"

	"github.com/nathoo/fablecore/engine/conversation"
)

// Character is an examinable being with an inventory, a monotonic alive
// flag, and an interaction resolver. It is the shared base of the player
// and of non-playable characters.
type Character struct {
	Examinable
	alive       bool
	items       []*Item
	interaction InteractionCallback
}

func newCharacter(name, description string) Character {
	return Character{
		Examinable: *NewExaminable(name, description),
		alive:      true,
	}
}

// IsAlive reports whether the character is alive. Characters start alive.
func (c *Character) IsAlive() bool {
	return c.alive
}

// Kill marks the character dead. Death is monotonic: there is no revive.
func (c *Character) Kill() {
	c.alive = false
}

// Items returns the character's inventory.
func (c *Character) Items() []*Item {
	return c.items
}

// AddItem puts an item into the character's inventory.
func (c *Character) AddItem(item *Item) {
	c.items = append(c.items, item)
}

// RemoveItem takes an item out of the inventory. It reports whether the
// item was held.
func (c *Character) RemoveItem(item *Item) bool {
	for idx, held := range c.items {
		if held == item {
			c.items = append(c.items[:idx], c.items[idx+1:]...)
			return true
		}
	}
	return false
}

// HasItem reports whether the character holds the item.
func (c *Character) HasItem(item *Item) bool {
	for _, held := range c.items {
		if held == item {
			return true
		}
	}
	return false
}

// FindItem looks up a player-visible inventory item by name.
func (c *Character) FindItem(name string) (*Item, bool) {
	for _, held := range c.items {
		if held.IsPlayerVisible() && held.Identifier().Matches(name) {
			return held, true
		}
	}
	return nil, false
}

// Give transfers an item to another character. The transfer is atomic:
// unless the giver currently holds the item, neither inventory changes.
func (c *Character) Give(item *Item, other *Character) bool {
	if !c.RemoveItem(item) {
		return false
	}
	other.AddItem(item)
	return true
}

// SetInteraction replaces the interaction resolver. A nil callback
// restores the default (no effect).
func (c *Character) SetInteraction(cb InteractionCallback) {
	c.interaction = cb
}

// Interact resolves the application of an item to this character.
func (c *Character) Interact(item *Item) InteractionResult {
	if c.interaction != nil {
		return c.interaction(item)
	}
	return InteractionResult{
		Effect:      NoEffect,
		Item:        item,
		Description: fmt.Sprintf("The %s has no effect on %s.", item.Identifier().Name(), c.Identifier().Name()),
	}
}

// PlayableCharacter is the player.
type PlayableCharacter struct {
	Character
}

// NewPlayableCharacter creates the player, optionally with starting items.
func NewPlayableCharacter(name, description string, items ...*Item) *PlayableCharacter {
	p := &PlayableCharacter{Character: newCharacter(name, description)}
	p.items = append(p.items, items...)
	return p
}

// NonPlayableCharacter is a character the player may talk to.
type NonPlayableCharacter struct {
	Character
	Conversation *conversation.Conversation
}

// NewNonPlayableCharacter creates an NPC with no conversation attached.
func NewNonPlayableCharacter(name, description string) *NonPlayableCharacter {
	return &NonPlayableCharacter{Character: newCharacter(name, description)}
}
