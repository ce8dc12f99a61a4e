// Package world implements the spatial world graph: lockable exits, rooms
// on 3-D integer coordinates, regions, overworlds, and the makers that
// assemble sparse coordinate assignments into a linked graph.
package world

// Direction is one of the fixed compass and vertical directions.
type Direction int

const (
	North Direction = iota
	South
	East
	West
	Up
	Down
)

// Directions lists every direction in a stable order.
var Directions = [...]Direction{North, South, East, West, Up, Down}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// Inverse returns the opposite direction.
func (d Direction) Inverse() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	case Up:
		return Down
	case Down:
		return Up
	default:
		return d
	}
}

// Offset returns the unit coordinate offset for the direction:
// north is +row, east is +column, up is +floor.
func (d Direction) Offset() (column, row, floor int) {
	switch d {
	case North:
		return 0, 1, 0
	case South:
		return 0, -1, 0
	case East:
		return 1, 0, 0
	case West:
		return -1, 0, 0
	case Up:
		return 0, 0, 1
	case Down:
		return 0, 0, -1
	default:
		return 0, 0, 0
	}
}

// ParseDirection converts a direction name or single-letter shorthand.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "north", "n":
		return North, true
	case "south", "s":
		return South, true
	case "east", "e":
		return East, true
	case "west", "w":
		return West, true
	case "up", "u":
		return Up, true
	case "down", "d":
		return Down, true
	default:
		return North, false
	}
}
