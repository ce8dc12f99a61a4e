package entities

import "fmt"

// Item is an examinable object that may be takeable and that resolves
// interactions when another item is applied to it.
type Item struct {
	Examinable
	takeable    bool
	interaction InteractionCallback
}

// NewItem creates a player-visible item. The takeable flag is fixed for
// the item's lifetime; only Morph may change it.
func NewItem(name, description string, takeable bool) *Item {
	return &Item{
		Examinable: *NewExaminable(name, description),
		takeable:   takeable,
	}
}

// IsTakeable reports whether the item can be picked up.
func (i *Item) IsTakeable() bool {
	return i.takeable
}

// SetInteraction replaces the interaction resolver. A nil callback
// restores the default (no effect).
func (i *Item) SetInteraction(cb InteractionCallback) {
	i.interaction = cb
}

// Interact resolves the application of another item to this item.
func (i *Item) Interact(item *Item) InteractionResult {
	if i.interaction != nil {
		return i.interaction(item)
	}
	return InteractionResult{
		Effect:      NoEffect,
		Item:        item,
		Description: fmt.Sprintf("The %s has no effect on the %s.", item.Identifier().Name(), i.Identifier().Name()),
	}
}

// Morph replaces this item's identifier, description, visibility, and
// takeable flag with other's, in place. The item keeps its identity, so
// rooms and inventories that hold it observe the new guise without being
// touched.
func (i *Item) Morph(other *Item) {
	i.identifier = other.identifier
	i.description = other.description
	i.visible = other.visible
	i.takeable = other.takeable
}
