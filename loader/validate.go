package loader

import "fmt"

// validate checks cross-references in the collected definitions. A game
// that fails validation never builds — authoring defects surface at load
// time, not as gameplay reactions.
func validate(d *defs) error {
	if d.game.title == "" {
		return fmt.Errorf("game: missing title (declare Game { title = ... })")
	}
	if len(d.regions) == 0 {
		return fmt.Errorf("game %q: no regions declared", d.game.title)
	}

	regions := map[string]bool{}
	for _, r := range d.regions {
		if regions[r.id] {
			return fmt.Errorf("region %q: declared twice", r.id)
		}
		regions[r.id] = true
	}

	rooms := map[string]bool{}
	coords := map[string]map[[3]int]string{}
	startPerRegion := map[string]string{}
	roomCount := map[string]int{}
	for _, room := range d.rooms {
		if rooms[room.id] {
			return fmt.Errorf("room %q: declared twice", room.id)
		}
		rooms[room.id] = true
		if room.region == "" {
			return fmt.Errorf("room %q: missing region", room.id)
		}
		if !regions[room.region] {
			return fmt.Errorf("room %q: unknown region %q", room.id, room.region)
		}
		roomCount[room.region]++
		if coords[room.region] == nil {
			coords[room.region] = map[[3]int]string{}
		}
		key := [3]int{room.column, room.row, room.floor}
		if other, ok := coords[room.region][key]; ok {
			return fmt.Errorf("room %q: coordinate %d,%d,%d already used by room %q",
				room.id, room.column, room.row, room.floor, other)
		}
		coords[room.region][key] = room.id
		if room.start {
			if other, ok := startPerRegion[room.region]; ok {
				return fmt.Errorf("region %q: rooms %q and %q both flagged start", room.region, other, room.id)
			}
			startPerRegion[room.region] = room.id
		}
		for _, exit := range room.exits {
			if !validDirection(exit.direction) {
				return fmt.Errorf("room %q: unknown exit direction %q", room.id, exit.direction)
			}
		}
	}
	for _, r := range d.regions {
		if roomCount[r.id] == 0 {
			return fmt.Errorf("region %q: no rooms", r.id)
		}
	}

	items := map[string]bool{}
	for _, item := range d.items {
		if items[item.id] {
			return fmt.Errorf("item %q: declared twice", item.id)
		}
		items[item.id] = true
		if item.room != "" && !rooms[item.room] {
			return fmt.Errorf("item %q: unknown room %q", item.id, item.room)
		}
	}

	npcs := map[string]bool{}
	for _, npc := range d.npcs {
		if npcs[npc.id] {
			return fmt.Errorf("npc %q: declared twice", npc.id)
		}
		npcs[npc.id] = true
		if npc.room != "" && !rooms[npc.room] {
			return fmt.Errorf("npc %q: unknown room %q", npc.id, npc.room)
		}
		for _, itemID := range npc.items {
			if !items[itemID] {
				return fmt.Errorf("npc %q: unknown item %q", npc.id, itemID)
			}
		}
		for i, p := range npc.conversation {
			if p.line == "" {
				return fmt.Errorf("npc %q: conversation paragraph %d has no line", npc.id, i+1)
			}
		}
	}

	for _, itemID := range d.game.player.items {
		if !items[itemID] {
			return fmt.Errorf("player: unknown item %q", itemID)
		}
	}

	for _, item := range d.items {
		if err := validateInteractions("item", item.id, item.interactions, items, true); err != nil {
			return err
		}
		if err := validateActions("item", item.id, item.commands, items, rooms, npcs); err != nil {
			return err
		}
	}
	for _, npc := range d.npcs {
		if err := validateInteractions("npc", npc.id, npc.interactions, items, false); err != nil {
			return err
		}
		if err := validateActions("npc", npc.id, npc.commands, items, rooms, npcs); err != nil {
			return err
		}
		for _, p := range npc.conversation {
			if p.action == nil {
				continue
			}
			if err := validateAction("npc", npc.id, *p.action, items, rooms, npcs); err != nil {
				return err
			}
		}
	}

	if d.completion != nil {
		if err := validateCondition("completion", d.completion.when, items, rooms); err != nil {
			return err
		}
	}
	if d.death != nil {
		if err := validateCondition("death", d.death.when, items, rooms); err != nil {
			return err
		}
	}

	return nil
}

func validateInteractions(kind, id string, interactions []rawInteraction, items map[string]bool, canMorph bool) error {
	for _, ix := range interactions {
		if ix.item == "" {
			return fmt.Errorf("%s %q: interaction missing item", kind, id)
		}
		if !items[ix.item] {
			return fmt.Errorf("%s %q: interaction references unknown item %q", kind, id, ix.item)
		}
		switch ix.effect {
		case "", "none", "fatal", "consume", "destroy", "script":
		case "morph":
			if !canMorph {
				return fmt.Errorf("%s %q: morph interactions apply to items only", kind, id)
			}
			if ix.into == nil || ix.into.name == "" {
				return fmt.Errorf("%s %q: morph interaction missing into", kind, id)
			}
		default:
			return fmt.Errorf("%s %q: unknown interaction effect %q", kind, id, ix.effect)
		}
	}
	return nil
}

func validateActions(kind, id string, commands []rawCommand, items, rooms, npcs map[string]bool) error {
	for _, c := range commands {
		if c.name == "" {
			return fmt.Errorf("%s %q: custom command missing name", kind, id)
		}
		if err := validateAction(kind, id, c.action, items, rooms, npcs); err != nil {
			return err
		}
	}
	return nil
}

func validateAction(kind, id string, a rawAction, items, rooms, npcs map[string]bool) error {
	for _, ref := range []*rawExitRef{a.unlock, a.lock} {
		if ref == nil {
			continue
		}
		if !rooms[ref.room] {
			return fmt.Errorf("%s %q: action references unknown room %q", kind, id, ref.room)
		}
		if !validDirection(ref.direction) {
			return fmt.Errorf("%s %q: action references unknown direction %q", kind, id, ref.direction)
		}
	}
	for _, name := range []string{a.reveal, a.hide} {
		if name != "" && !items[name] && !npcs[name] {
			return fmt.Errorf("%s %q: action references unknown entity %q", kind, id, name)
		}
	}
	if a.give != "" && !items[a.give] {
		return fmt.Errorf("%s %q: action gives unknown item %q", kind, id, a.give)
	}
	return nil
}

func validateCondition(owner string, c *rawCondition, items, rooms map[string]bool) error {
	if c == nil {
		return nil
	}
	if c.playerHas != "" && !items[c.playerHas] {
		return fmt.Errorf("%s: condition references unknown item %q", owner, c.playerHas)
	}
	if c.inRoom != "" && !rooms[c.inRoom] {
		return fmt.Errorf("%s: condition references unknown room %q", owner, c.inRoom)
	}
	if c.visited != "" && !rooms[c.visited] {
		return fmt.Errorf("%s: condition references unknown room %q", owner, c.visited)
	}
	return nil
}

func validDirection(s string) bool {
	switch s {
	case "north", "south", "east", "west", "up", "down":
		return true
	default:
		return false
	}
}
