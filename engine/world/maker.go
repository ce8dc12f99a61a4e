package world

import "fmt"

// RegionMaker assembles a region from sparse, possibly negative
// coordinate→room assignments. Make normalizes the assignments into a
// dense non-negative bounding box, links adjacent exits, and sets the
// start room.
type RegionMaker struct {
	name        string
	description string
	assignments []assignment
}

type assignment struct {
	c    Coordinate
	room *Room
}

// NewRegionMaker creates a maker for a region with the given name and
// description.
func NewRegionMaker(name, description string) *RegionMaker {
	return &RegionMaker{name: name, description: description}
}

// Place assigns a room to a raw coordinate. A later assignment at the
// same coordinate replaces the earlier one.
func (m *RegionMaker) Place(column, row, floor int, room *Room) {
	c := Coordinate{Column: column, Row: row, Floor: floor}
	for i, a := range m.assignments {
		if a.c == c {
			m.assignments[i].room = room
			return
		}
	}
	m.assignments = append(m.assignments, assignment{c: c, room: room})
}

// Make builds the region, starting in the first-placed room.
func (m *RegionMaker) Make() (*Region, error) {
	if len(m.assignments) == 0 {
		return nil, fmt.Errorf("region %q: no rooms placed", m.name)
	}
	first := m.assignments[0].c
	return m.MakeAt(first.Column, first.Row, first.Floor)
}

// MakeAt builds the region, starting in the room placed at the given raw
// coordinate.
func (m *RegionMaker) MakeAt(column, row, floor int) (*Region, error) {
	if len(m.assignments) == 0 {
		return nil, fmt.Errorf("region %q: no rooms placed", m.name)
	}

	start := Coordinate{Column: column, Row: row, Floor: floor}
	var startRoom *Room
	for _, a := range m.assignments {
		if a.c == start {
			startRoom = a.room
		}
	}
	if startRoom == nil {
		return nil, fmt.Errorf("region %q: no room placed at start %d,%d,%d",
			m.name, column, row, floor)
	}

	offset := m.offset()
	region := NewRegion(m.name, m.description)
	for _, a := range m.assignments {
		normalized := Coordinate{
			Column: a.c.Column + offset.Column,
			Row:    a.c.Row + offset.Row,
			Floor:  a.c.Floor + offset.Floor,
		}
		if err := region.AddRoom(a.room, normalized); err != nil {
			return nil, err
		}
	}

	linkExits(region)
	if err := checkExits(region); err != nil {
		return nil, err
	}

	if err := region.SetStart(startRoom); err != nil {
		return nil, err
	}
	return region, nil
}

// offset computes the translation that anchors the sparse assignment set
// at the origin, so every normalized coordinate is non-negative.
func (m *RegionMaker) offset() Coordinate {
	min := m.assignments[0].c
	for _, a := range m.assignments[1:] {
		min.Column = minInt(min.Column, a.c.Column)
		min.Row = minInt(min.Row, a.c.Row)
		min.Floor = minInt(min.Floor, a.c.Floor)
	}
	return Coordinate{Column: -min.Column, Row: -min.Row, Floor: -min.Floor}
}

// linkExits synthesizes the inverse side of each declared exit. When a
// room declares an exit toward an adjacent room that declares no exit
// back, the adjacent room gains one with the same lock state. A room that
// declares its own exit in the inverse direction keeps it, so one-way and
// asymmetrically locked passages stay as authored.
func linkExits(region *Region) {
	for _, room := range region.Rooms() {
		for _, d := range Directions {
			exit, ok := room.Exit(d)
			if !ok {
				continue
			}
			adjacent, ok := region.RoomAt(room.Coordinate().Shifted(d))
			if !ok {
				continue
			}
			if adjacent.HasExit(d.Inverse()) {
				continue
			}
			inverse := NewExit(d.Inverse())
			if exit.IsLocked() {
				inverse.Lock()
			}
			adjacent.AddExit(inverse)
		}
	}
}

// checkExits rejects exits that lead to empty cells. A dangling exit is a
// construction defect, not a gameplay condition.
func checkExits(region *Region) error {
	for _, room := range region.Rooms() {
		for _, exit := range room.Exits() {
			target := room.Coordinate().Shifted(exit.Direction())
			if _, ok := region.RoomAt(target); !ok {
				return fmt.Errorf("region %q: room %q has a %s exit leading nowhere",
					region.Identifier().Name(), room.Identifier().Name(), exit.Direction())
			}
		}
	}
	return nil
}
