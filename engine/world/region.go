package world

import (
	"fmt"

	"github.com/nathoo/fablecore/engine/entities"
)

// Region is a set of rooms keyed by unique coordinate, plus the room the
// player is currently in.
type Region struct {
	identifier  entities.Identifier
	description *entities.Description
	rooms       map[Coordinate]*Room
	current     *Room
}

// NewRegion creates an empty region.
func NewRegion(name, description string) *Region {
	return &Region{
		identifier:  entities.NewIdentifier(name),
		description: entities.NewDescription(description),
		rooms:       map[Coordinate]*Room{},
	}
}

// Identifier returns the region's name.
func (g *Region) Identifier() entities.Identifier {
	return g.identifier
}

// Description returns the region's display text.
func (g *Region) Description() *entities.Description {
	return g.description
}

// AddRoom places a room at a coordinate. No two rooms may share a
// coordinate; a collision is a construction defect.
func (g *Region) AddRoom(room *Room, c Coordinate) error {
	if occupant, ok := g.rooms[c]; ok {
		return fmt.Errorf("region %q: rooms %q and %q collide at %d,%d,%d",
			g.identifier.Name(), occupant.Identifier().Name(), room.Identifier().Name(),
			c.Column, c.Row, c.Floor)
	}
	room.coordinate = c
	g.rooms[c] = room
	return nil
}

// RoomAt returns the room at a coordinate, if any.
func (g *Region) RoomAt(c Coordinate) (*Room, bool) {
	room, ok := g.rooms[c]
	return room, ok
}

// Rooms returns every room in the region, in no particular order.
func (g *Region) Rooms() []*Room {
	rooms := make([]*Room, 0, len(g.rooms))
	for _, room := range g.rooms {
		rooms = append(rooms, room)
	}
	return rooms
}

// FindRoom looks up a room by name.
func (g *Region) FindRoom(name string) (*Room, bool) {
	for _, room := range g.rooms {
		if room.Identifier().Matches(name) {
			return room, true
		}
	}
	return nil, false
}

// CurrentRoom returns the room the player is in, or nil before a start
// room has been set.
func (g *Region) CurrentRoom() *Room {
	return g.current
}

// SetStart makes room the current room and marks it visited with no
// arrival direction. The room must already be in the region.
func (g *Region) SetStart(room *Room) error {
	if g.rooms[room.Coordinate()] != room {
		return fmt.Errorf("region %q: start room %q is not in the region",
			g.identifier.Name(), room.Identifier().Name())
	}
	g.current = room
	room.Visit()
	return nil
}

// Bounds returns the minimum and maximum coordinates over all rooms.
func (g *Region) Bounds() (min, max Coordinate) {
	first := true
	for c := range g.rooms {
		if first {
			min, max = c, c
			first = false
			continue
		}
		min.Column = minInt(min.Column, c.Column)
		min.Row = minInt(min.Row, c.Row)
		min.Floor = minInt(min.Floor, c.Floor)
		max.Column = maxInt(max.Column, c.Column)
		max.Row = maxInt(max.Row, c.Row)
		max.Floor = maxInt(max.Floor, c.Floor)
	}
	return min, max
}

// Move attempts to move the player one room in the given direction. It
// fails closed: unless the current room has an unlocked exit that way and
// a room exists at the adjacent coordinate, nothing changes. On success
// the destination is marked visited and records the inverse direction as
// its arrival side.
func (g *Region) Move(d Direction) bool {
	if g.current == nil {
		return false
	}
	exit, ok := g.current.Exit(d)
	if !ok || exit.IsLocked() {
		return false
	}
	next, ok := g.rooms[g.current.Coordinate().Shifted(d)]
	if !ok {
		return false
	}
	g.current = next
	next.MovedInto(d.Inverse())
	return true
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
