package engine

import (
	"fmt"
	"strings"

	"github.com/nathoo/fablecore/engine/world"
)

// DescribeRoom produces the standard room overview for hosts and for the
// bare Examine command: description, visible occupants, and exits. It
// reads world state only.
func DescribeRoom(g *Game) []string {
	room := g.CurrentRoom()
	if room == nil {
		return []string{"You are somewhere unknown."}
	}

	var output []string
	output = append(output, room.Identifier().Name())
	if text := room.Description().Text(); text != "" {
		output = append(output, text)
	}

	var names []string
	for _, item := range room.Items() {
		if item.IsPlayerVisible() {
			names = append(names, item.Identifier().Name())
		}
	}
	for _, npc := range room.Characters() {
		if npc.IsPlayerVisible() {
			names = append(names, npc.Identifier().Name())
		}
	}
	if len(names) > 0 {
		output = append(output, "You see: "+strings.Join(names, ", ")+".")
	}

	var dirs []string
	for _, exit := range room.Exits() {
		dir := exit.Direction().String()
		if exit.IsLocked() {
			dir += " (locked)"
		}
		dirs = append(dirs, dir)
	}
	if len(dirs) > 0 {
		output = append(output, "Exits: "+strings.Join(dirs, ", ")+".")
	}

	return output
}

// DrawRegionMap renders the current floor of a region as a character
// grid. Only visited rooms are drawn; the player's room is marked.
// North is at the top.
func DrawRegionMap(region *world.Region) string {
	current := region.CurrentRoom()
	if current == nil {
		return "You haven't been anywhere yet."
	}

	min, max := region.Bounds()
	floor := current.Coordinate().Floor

	var b strings.Builder
	fmt.Fprintf(&b, "%s", region.Identifier().Name())
	if min.Floor != max.Floor {
		fmt.Fprintf(&b, " (floor %d)", floor)
	}

	for row := max.Row; row >= min.Row; row-- {
		b.WriteByte('\n')
		for column := min.Column; column <= max.Column; column++ {
			room, ok := region.RoomAt(world.Coordinate{Column: column, Row: row, Floor: floor})
			switch {
			case !ok || !room.HasBeenVisited():
				b.WriteString("   ")
			case room == current:
				b.WriteString("[@]")
			default:
				b.WriteString("[ ]")
			}
		}
	}
	return b.String()
}
