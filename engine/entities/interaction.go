package entities

// InteractionEffect tags the structural consequence of applying an item to
// another object. The tag is a contract for the command layer, which
// performs the corresponding container mutation; the resolver itself only
// decides semantics.
type InteractionEffect int

const (
	// NoEffect: nothing happened.
	NoEffect InteractionEffect = iota
	// FatalEffect: the initiating character dies.
	FatalEffect
	// ItemMorphed: the resolver already morphed an item in place.
	ItemMorphed
	// ItemUsedUp: the used item is removed from whichever container holds it.
	ItemUsedUp
	// TargetUsedUp: the target is removed from its containing room.
	TargetUsedUp
	// SelfContained: the resolver performed all needed mutation and narration.
	SelfContained
)

// String returns the effect name for traces and test failures.
func (e InteractionEffect) String() string {
	switch e {
	case NoEffect:
		return "no effect"
	case FatalEffect:
		return "fatal"
	case ItemMorphed:
		return "item morphed"
	case ItemUsedUp:
		return "item used up"
	case TargetUsedUp:
		return "target used up"
	case SelfContained:
		return "self contained"
	default:
		return "unknown"
	}
}

// InteractionResult is the outcome of applying an item to an object.
type InteractionResult struct {
	Effect      InteractionEffect
	Item        *Item
	Description string
}

// InteractionCallback resolves the application of an item to the object it
// is attached to. Substituting the callback is how authors encode puzzle
// logic without subclassing any engine type.
type InteractionCallback func(item *Item) InteractionResult
