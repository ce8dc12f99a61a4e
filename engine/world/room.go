package world

import "github.com/nathoo/fablecore/engine/entities"

// Coordinate is a room's position within a region.
type Coordinate struct {
	Column int
	Row    int
	Floor  int
}

// Shifted returns the adjacent coordinate one unit in the given direction.
func (c Coordinate) Shifted(d Direction) Coordinate {
	dc, dr, df := d.Offset()
	return Coordinate{Column: c.Column + dc, Row: c.Row + dr, Floor: c.Floor + df}
}

// Room is a location in a region: a described space with at most one exit
// per direction, plus the items and characters currently in it.
type Room struct {
	identifier  entities.Identifier
	description *entities.Description
	exits       map[Direction]*Exit
	items       []*entities.Item
	characters  []*entities.NonPlayableCharacter
	coordinate  Coordinate
	visited     bool
	enteredFrom *Direction
}

// NewRoom creates a room with the given exits. A later exit in the same
// direction replaces an earlier one.
func NewRoom(name, description string, exits ...*Exit) *Room {
	r := &Room{
		identifier:  entities.NewIdentifier(name),
		description: entities.NewDescription(description),
		exits:       map[Direction]*Exit{},
	}
	for _, e := range exits {
		r.AddExit(e)
	}
	return r
}

// Identifier returns the room's name.
func (r *Room) Identifier() entities.Identifier {
	return r.identifier
}

// Description returns the room's display text.
func (r *Room) Description() *entities.Description {
	return r.description
}

// SetDescription replaces the room's display text.
func (r *Room) SetDescription(d *entities.Description) {
	r.description = d
}

// AddExit declares an exit, replacing any existing exit in its direction.
func (r *Room) AddExit(e *Exit) {
	r.exits[e.Direction()] = e
}

// Exit returns the exit in the given direction, if declared.
func (r *Room) Exit(d Direction) (*Exit, bool) {
	e, ok := r.exits[d]
	return e, ok
}

// HasExit reports whether an exit is declared in the given direction.
func (r *Room) HasExit(d Direction) bool {
	_, ok := r.exits[d]
	return ok
}

// Exits returns the declared exits in stable direction order.
func (r *Room) Exits() []*Exit {
	var exits []*Exit
	for _, d := range Directions {
		if e, ok := r.exits[d]; ok {
			exits = append(exits, e)
		}
	}
	return exits
}

// Items returns everything currently in the room.
func (r *Room) Items() []*entities.Item {
	return r.items
}

// AddItem puts an item in the room.
func (r *Room) AddItem(item *entities.Item) {
	r.items = append(r.items, item)
}

// RemoveItem takes an item out of the room. It reports whether the item
// was present.
func (r *Room) RemoveItem(item *entities.Item) bool {
	for idx, held := range r.items {
		if held == item {
			r.items = append(r.items[:idx], r.items[idx+1:]...)
			return true
		}
	}
	return false
}

// ContainsItem reports whether the item is in the room.
func (r *Room) ContainsItem(item *entities.Item) bool {
	for _, held := range r.items {
		if held == item {
			return true
		}
	}
	return false
}

// FindItem looks up a player-visible item in the room by name.
func (r *Room) FindItem(name string) (*entities.Item, bool) {
	for _, item := range r.items {
		if item.IsPlayerVisible() && item.Identifier().Matches(name) {
			return item, true
		}
	}
	return nil, false
}

// Characters returns the characters currently in the room.
func (r *Room) Characters() []*entities.NonPlayableCharacter {
	return r.characters
}

// AddCharacter puts a character in the room.
func (r *Room) AddCharacter(c *entities.NonPlayableCharacter) {
	r.characters = append(r.characters, c)
}

// RemoveCharacter takes a character out of the room. It reports whether
// the character was present.
func (r *Room) RemoveCharacter(c *entities.NonPlayableCharacter) bool {
	for idx, present := range r.characters {
		if present == c {
			r.characters = append(r.characters[:idx], r.characters[idx+1:]...)
			return true
		}
	}
	return false
}

// FindCharacter looks up a player-visible character in the room by name.
func (r *Room) FindCharacter(name string) (*entities.NonPlayableCharacter, bool) {
	for _, c := range r.characters {
		if c.IsPlayerVisible() && c.Identifier().Matches(name) {
			return c, true
		}
	}
	return nil, false
}

// Coordinate returns the room's normalized position within its region.
func (r *Room) Coordinate() Coordinate {
	return r.coordinate
}

// HasBeenVisited reports whether the player has ever been in the room.
// Visits are monotonic.
func (r *Room) HasBeenVisited() bool {
	return r.visited
}

// EnteredFrom returns the direction the player last arrived from, if any.
func (r *Room) EnteredFrom() (Direction, bool) {
	if r.enteredFrom == nil {
		return North, false
	}
	return *r.enteredFrom, true
}

// Visit marks the room visited without recording an arrival direction.
// Used for start rooms.
func (r *Room) Visit() {
	r.visited = true
}

// MovedInto marks the room visited and records the arrival direction.
func (r *Room) MovedInto(from Direction) {
	r.visited = true
	r.enteredFrom = &from
}
