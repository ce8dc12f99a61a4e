package loader

import (
	lua "github.com/yuin/gopher-lua"
)

// registerAPI registers the Lua authoring constructors as globals. The
// curried constructors (Room "id" { ... }) follow the declaration style
// of the content files.
func registerAPI(L *lua.LState, coll *collector) {
	// Game { title = "...", player = { ... } }
	L.SetGlobal("Game", L.NewFunction(func(L *lua.LState) int {
		tbl := L.CheckTable(1)
		coll.defs.game = decodeGame(tbl)
		return 0
	}))

	// Region "id" { description = "..." }
	L.SetGlobal("Region", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.defs.regions = append(coll.defs.regions, rawRegion{
				id:          id,
				description: getString(tbl, "description"),
			})
			return 0
		}))
		return 1
	}))

	// Room "id" { region = "...", x = 0, y = 0, z = 0, exits = { ... } }
	L.SetGlobal("Room", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.defs.rooms = append(coll.defs.rooms, decodeRoom(id, tbl))
			return 0
		}))
		return 1
	}))

	// Item "id" { room = "...", takeable = true, interactions = { ... } }
	L.SetGlobal("Item", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.defs.items = append(coll.defs.items, decodeItem(id, tbl))
			return 0
		}))
		return 1
	}))

	// NPC "id" { room = "...", conversation = { ... } }
	L.SetGlobal("NPC", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.defs.npcs = append(coll.defs.npcs, decodeNPC(id, tbl))
			return 0
		}))
		return 1
	}))

	// Completion { when = { has_item = "gem" }, title = "...", text = "..." }
	L.SetGlobal("Completion", L.NewFunction(func(L *lua.LState) int {
		tbl := L.CheckTable(1)
		e := decodeEnd(tbl)
		coll.defs.completion = &e
		return 0
	}))

	// Death { title = "...", text = "..." }
	L.SetGlobal("Death", L.NewFunction(func(L *lua.LState) int {
		tbl := L.CheckTable(1)
		e := decodeEnd(tbl)
		coll.defs.death = &e
		return 0
	}))
}

func decodeGame(tbl *lua.LTable) rawGame {
	g := rawGame{
		title:       getString(tbl, "title"),
		author:      getString(tbl, "author"),
		version:     getString(tbl, "version"),
		description: getString(tbl, "description"),
	}
	if player := getTable(tbl, "player"); player != nil {
		g.player = rawPlayer{
			name:        getString(player, "name"),
			description: getString(player, "description"),
			items:       stringList(getTable(player, "items")),
		}
	}
	if g.player.name == "" {
		g.player.name = "Player"
	}
	return g
}

func decodeRoom(id string, tbl *lua.LTable) rawRoom {
	room := rawRoom{
		id:          id,
		region:      getString(tbl, "region"),
		column:      getInt(tbl, "x"),
		row:         getInt(tbl, "y"),
		floor:       getInt(tbl, "z"),
		start:       getBool(tbl, "start", false),
		description: decodeDescription(tbl),
	}
	if exits := getTable(tbl, "exits"); exits != nil {
		exits.ForEach(func(_, v lua.LValue) {
			switch e := v.(type) {
			case lua.LString:
				room.exits = append(room.exits, rawExit{direction: string(e)})
			case *lua.LTable:
				room.exits = append(room.exits, rawExit{
					direction: getString(e, "direction"),
					locked:    getBool(e, "locked", false),
				})
			}
		})
	}
	return room
}

func decodeItem(id string, tbl *lua.LTable) rawItem {
	return rawItem{
		id:           id,
		room:         getString(tbl, "room"),
		description:  decodeDescription(tbl),
		takeable:     getBool(tbl, "takeable", false),
		visible:      getBool(tbl, "visible", true),
		commands:     decodeCommands(getTable(tbl, "commands")),
		interactions: decodeInteractions(getTable(tbl, "interactions")),
	}
}

func decodeNPC(id string, tbl *lua.LTable) rawNPC {
	npc := rawNPC{
		id:           id,
		room:         getString(tbl, "room"),
		description:  decodeDescription(tbl),
		visible:      getBool(tbl, "visible", true),
		items:        stringList(getTable(tbl, "items")),
		interactions: decodeInteractions(getTable(tbl, "interactions")),
		commands:     decodeCommands(getTable(tbl, "commands")),
	}
	if conv := getTable(tbl, "conversation"); conv != nil {
		conv.ForEach(func(_, v lua.LValue) {
			if p, ok := v.(*lua.LTable); ok {
				npc.conversation = append(npc.conversation, decodeParagraph(p))
			}
		})
	}
	return npc
}

// decodeDescription reads either description = "text" or
// description = { text = "...", otherwise = "...", when = { ... } }.
func decodeDescription(tbl *lua.LTable) rawDescription {
	v := tbl.RawGetString("description")
	switch d := v.(type) {
	case lua.LString:
		return rawDescription{text: string(d)}
	case *lua.LTable:
		return rawDescription{
			text:      getString(d, "text"),
			otherwise: getString(d, "otherwise"),
			when:      decodeCondition(getTable(d, "when")),
		}
	default:
		return rawDescription{}
	}
}

func decodeCondition(tbl *lua.LTable) *rawCondition {
	if tbl == nil {
		return nil
	}
	return &rawCondition{
		playerHas: getString(tbl, "has_item"),
		inRoom:    getString(tbl, "in_room"),
		visited:   getString(tbl, "visited"),
	}
}

func decodeAction(tbl *lua.LTable) *rawAction {
	if tbl == nil {
		return nil
	}
	a := &rawAction{
		say:    getString(tbl, "say"),
		reveal: getString(tbl, "reveal"),
		hide:   getString(tbl, "hide"),
		give:   getString(tbl, "give"),
	}
	if unlock := getTable(tbl, "unlock"); unlock != nil {
		a.unlock = &rawExitRef{room: getString(unlock, "room"), direction: getString(unlock, "direction")}
	}
	if lock := getTable(tbl, "lock"); lock != nil {
		a.lock = &rawExitRef{room: getString(lock, "room"), direction: getString(lock, "direction")}
	}
	return a
}

func decodeCommands(tbl *lua.LTable) []rawCommand {
	if tbl == nil {
		return nil
	}
	var commands []rawCommand
	tbl.ForEach(func(_, v lua.LValue) {
		if c, ok := v.(*lua.LTable); ok {
			cmd := rawCommand{
				name: getString(c, "name"),
				help: getString(c, "help"),
			}
			if a := decodeAction(c); a != nil {
				cmd.action = *a
			}
			commands = append(commands, cmd)
		}
	})
	return commands
}

func decodeInteractions(tbl *lua.LTable) []rawInteraction {
	if tbl == nil {
		return nil
	}
	var interactions []rawInteraction
	tbl.ForEach(func(_, v lua.LValue) {
		if i, ok := v.(*lua.LTable); ok {
			ix := rawInteraction{
				item:   getString(i, "item"),
				effect: getString(i, "effect"),
				text:   getString(i, "text"),
				action: decodeAction(getTable(i, "action")),
			}
			if into := getTable(i, "into"); into != nil {
				ix.into = &rawGuise{
					name:        getString(into, "name"),
					description: getString(into, "description"),
					takeable:    getBool(into, "takeable", false),
					visible:     getBool(into, "visible", true),
				}
			}
			interactions = append(interactions, ix)
		}
	})
	return interactions
}

func decodeParagraph(tbl *lua.LTable) rawParagraph {
	p := rawParagraph{
		line:   getString(tbl, "line"),
		delta:  getInt(tbl, "delta"),
		action: decodeAction(getTable(tbl, "action")),
	}
	if responses := getTable(tbl, "responses"); responses != nil {
		responses.ForEach(func(_, v lua.LValue) {
			if r, ok := v.(*lua.LTable); ok {
				p.responses = append(p.responses, rawResponse{
					line:  getString(r, "line"),
					delta: getInt(r, "delta"),
				})
			}
		})
	}
	return p
}

func decodeEnd(tbl *lua.LTable) rawEnd {
	return rawEnd{
		title: getString(tbl, "title"),
		text:  getString(tbl, "text"),
		when:  decodeCondition(getTable(tbl, "when")),
	}
}

func stringList(tbl *lua.LTable) []string {
	if tbl == nil {
		return nil
	}
	var list []string
	tbl.ForEach(func(_, v lua.LValue) {
		if s, ok := v.(lua.LString); ok {
			list = append(list, string(s))
		}
	})
	return list
}

// getString returns a string field from a Lua table, or "" if missing.
func getString(tbl *lua.LTable, key string) string {
	if s, ok := tbl.RawGetString(key).(lua.LString); ok {
		return string(s)
	}
	return ""
}

// getBool returns a bool field from a Lua table, or the default if
// missing.
func getBool(tbl *lua.LTable, key string, def bool) bool {
	if b, ok := tbl.RawGetString(key).(lua.LBool); ok {
		return bool(b)
	}
	return def
}

// getInt returns an int field from a Lua table, or 0 if missing.
func getInt(tbl *lua.LTable, key string) int {
	if n, ok := tbl.RawGetString(key).(lua.LNumber); ok {
		return int(n)
	}
	return 0
}

// getTable returns a table field from a Lua table, or nil if missing.
func getTable(tbl *lua.LTable, key string) *lua.LTable {
	if t, ok := tbl.RawGetString(key).(*lua.LTable); ok {
		return t
	}
	return nil
}
