package loader

import (
	"fmt"

	"github.com/nathoo/fablecore/engine"
	"github.com/nathoo/fablecore/engine/conversation"
	"github.com/nathoo/fablecore/engine/entities"
	"github.com/nathoo/fablecore/engine/world"
	"github.com/nathoo/fablecore/types"
)

// Blueprint holds validated game definitions. Build compiles them into a
// fresh Game; every call produces an independent session.
type Blueprint struct {
	defs defs
}

// Info returns the authored game metadata.
func (b *Blueprint) Info() engine.Info {
	return engine.Info{
		Title:       b.defs.game.title,
		Author:      b.defs.game.author,
		Description: b.defs.game.description,
	}
}

// build carries the registries compilation closures capture.
type build struct {
	defs      *defs
	items     map[string]*entities.Item
	npcs      map[string]*entities.NonPlayableCharacter
	rooms     map[string]*world.Room
	player    *entities.PlayableCharacter
	overworld *world.Overworld
}

// Build compiles the definitions into a playable Game.
func (b *Blueprint) Build() (*engine.Game, error) {
	ctx := &build{
		defs:  &b.defs,
		items: map[string]*entities.Item{},
		npcs:  map[string]*entities.NonPlayableCharacter{},
		rooms: map[string]*world.Room{},
	}

	// Entities first: rooms and resolvers refer to them by name.
	for _, raw := range b.defs.items {
		ctx.items[raw.id] = entities.NewItem(raw.id, raw.description.text, raw.takeable)
		if !raw.visible {
			ctx.items[raw.id].SetPlayerVisible(false)
		}
	}
	for _, raw := range b.defs.npcs {
		npc := entities.NewNonPlayableCharacter(raw.id, raw.description.text)
		if !raw.visible {
			npc.SetPlayerVisible(false)
		}
		for _, itemID := range raw.items {
			npc.AddItem(ctx.items[itemID])
		}
		ctx.npcs[raw.id] = npc
	}

	// Rooms into region makers, in declaration order.
	makers := map[string]*world.RegionMaker{}
	starts := map[string]rawRoom{}
	om := world.NewOverworldMaker()
	for _, raw := range b.defs.regions {
		maker := world.NewRegionMaker(raw.id, raw.description)
		makers[raw.id] = maker
		om.Add(maker)
	}
	for _, raw := range b.defs.rooms {
		room := world.NewRoom(raw.id, raw.description.text, compileExits(raw.exits)...)
		ctx.rooms[raw.id] = room
		makers[raw.region].Place(raw.column, raw.row, raw.floor, room)
		if raw.start {
			starts[raw.region] = raw
		}
	}

	// Populate rooms.
	for _, raw := range b.defs.items {
		if raw.room != "" {
			ctx.rooms[raw.room].AddItem(ctx.items[raw.id])
		}
	}
	for _, raw := range b.defs.npcs {
		if raw.room != "" {
			ctx.rooms[raw.room].AddCharacter(ctx.npcs[raw.id])
		}
	}

	// Assemble the overworld, honoring flagged start rooms.
	overworld, err := makeOverworld(om, makers, starts, b.defs.regions)
	if err != nil {
		return nil, err
	}
	ctx.overworld = overworld

	// The player.
	playerDef := b.defs.game.player
	var held []*entities.Item
	for _, itemID := range playerDef.items {
		held = append(held, ctx.items[itemID])
	}
	ctx.player = entities.NewPlayableCharacter(playerDef.name, playerDef.description, held...)

	// Resolvers, conditional descriptions, and conversations close over
	// the registries, so they attach last.
	for _, raw := range b.defs.items {
		item := ctx.items[raw.id]
		if d := ctx.compileDescription(raw.description); d != nil {
			item.SetDescription(d)
		}
		if len(raw.interactions) > 0 {
			item.SetInteraction(ctx.compileInteractions(raw.interactions, item))
		}
		ctx.attachCommands(&item.Examinable, raw.commands)
	}
	for _, raw := range b.defs.npcs {
		npc := ctx.npcs[raw.id]
		if d := ctx.compileDescription(raw.description); d != nil {
			npc.SetDescription(d)
		}
		if len(raw.interactions) > 0 {
			npc.SetInteraction(ctx.compileInteractions(raw.interactions, nil))
		}
		ctx.attachCommands(&npc.Examinable, raw.commands)
		if len(raw.conversation) > 0 {
			npc.Conversation = ctx.compileConversation(raw.conversation)
		}
	}
	for _, raw := range b.defs.rooms {
		if d := ctx.compileDescription(raw.description); d != nil {
			ctx.rooms[raw.id].SetDescription(d)
		}
	}

	game := engine.NewGame(b.Info(), ctx.player, overworld)
	if b.defs.completion != nil {
		game.SetCompletionCheck(ctx.compileEndCheck(*b.defs.completion, false))
	}
	death := rawEnd{title: "You have died", text: "Your story ends here."}
	if b.defs.death != nil {
		death = *b.defs.death
	}
	game.SetDeathCheck(ctx.compileEndCheck(death, true))

	return game, nil
}

// makeOverworld builds every region, using MakeAt for regions with a
// flagged start room. The first declared region is current.
func makeOverworld(om *world.OverworldMaker, makers map[string]*world.RegionMaker,
	starts map[string]rawRoom, regions []rawRegion) (*world.Overworld, error) {

	built := make([]*world.Region, 0, len(regions))
	for _, raw := range regions {
		maker := makers[raw.id]
		var region *world.Region
		var err error
		if start, ok := starts[raw.id]; ok {
			region, err = maker.MakeAt(start.column, start.row, start.floor)
		} else {
			region, err = maker.Make()
		}
		if err != nil {
			return nil, err
		}
		built = append(built, region)
	}
	return world.NewOverworld(built...), nil
}

func compileExits(raws []rawExit) []*world.Exit {
	var exits []*world.Exit
	for _, raw := range raws {
		direction, _ := world.ParseDirection(raw.direction)
		if raw.locked {
			exits = append(exits, world.NewLockedExit(direction))
		} else {
			exits = append(exits, world.NewExit(direction))
		}
	}
	return exits
}

// compileDescription returns a conditional description, or nil when the
// plain text set at construction already covers it.
func (ctx *build) compileDescription(raw rawDescription) *entities.Description {
	if raw.when == nil {
		return nil
	}
	return entities.NewConditionalDescription(raw.text, raw.otherwise, ctx.compileCondition(*raw.when))
}

// compileCondition compiles a conjunction of predicates into a closure.
func (ctx *build) compileCondition(raw rawCondition) func() bool {
	return func() bool {
		if raw.playerHas != "" {
			item, ok := ctx.items[raw.playerHas]
			if !ok || !ctx.player.HasItem(item) {
				return false
			}
		}
		if raw.inRoom != "" {
			if ctx.overworld.CurrentRoom() != ctx.rooms[raw.inRoom] {
				return false
			}
		}
		if raw.visited != "" {
			room, ok := ctx.rooms[raw.visited]
			if !ok || !room.HasBeenVisited() {
				return false
			}
		}
		return true
	}
}

// applyAction performs an authored action bundle and returns its text.
func (ctx *build) applyAction(raw rawAction) string {
	if raw.unlock != nil {
		if exit, ok := ctx.findExit(*raw.unlock); ok {
			exit.Unlock()
		}
	}
	if raw.lock != nil {
		if exit, ok := ctx.findExit(*raw.lock); ok {
			exit.Lock()
		}
	}
	if raw.reveal != "" {
		ctx.setVisible(raw.reveal, true)
	}
	if raw.hide != "" {
		ctx.setVisible(raw.hide, false)
	}
	if raw.give != "" {
		if item, ok := ctx.items[raw.give]; ok {
			ctx.player.AddItem(item)
		}
	}
	return raw.say
}

func (ctx *build) findExit(ref rawExitRef) (*world.Exit, bool) {
	room, ok := ctx.rooms[ref.room]
	if !ok {
		return nil, false
	}
	direction, ok := world.ParseDirection(ref.direction)
	if !ok {
		return nil, false
	}
	return room.Exit(direction)
}

func (ctx *build) setVisible(name string, visible bool) {
	if item, ok := ctx.items[name]; ok {
		item.SetPlayerVisible(visible)
		return
	}
	if npc, ok := ctx.npcs[name]; ok {
		npc.SetPlayerVisible(visible)
	}
}

// attachCommands compiles custom verbs onto an examinable.
func (ctx *build) attachCommands(e *entities.Examinable, raws []rawCommand) {
	for _, raw := range raws {
		action := raw.action
		e.AddCommand(&entities.CustomCommand{
			Help:    types.CommandHelp{Command: raw.name, Description: raw.help},
			Visible: true,
			Callback: func() types.Reaction {
				text := ctx.applyAction(action)
				if text == "" {
					text = "Done."
				}
				return types.Reaction{Result: types.Internal, Description: text}
			},
		})
	}
}

// compileInteractions builds the interaction resolver for a target. The
// self item is the morph receiver; it is nil for characters.
func (ctx *build) compileInteractions(raws []rawInteraction, self *entities.Item) entities.InteractionCallback {
	return func(item *entities.Item) entities.InteractionResult {
		for _, raw := range raws {
			if !item.Identifier().Matches(raw.item) {
				continue
			}
			switch raw.effect {
			case "fatal":
				return entities.InteractionResult{Effect: entities.FatalEffect, Item: item, Description: raw.text}
			case "morph":
				guise := entities.NewItem(raw.into.name, raw.into.description, raw.into.takeable)
				guise.SetPlayerVisible(raw.into.visible)
				self.Morph(guise)
				return entities.InteractionResult{Effect: entities.ItemMorphed, Item: self, Description: raw.text}
			case "consume":
				return entities.InteractionResult{Effect: entities.ItemUsedUp, Item: item, Description: raw.text}
			case "destroy":
				return entities.InteractionResult{Effect: entities.TargetUsedUp, Item: item, Description: raw.text}
			case "script":
				text := raw.text
				if raw.action != nil {
					if say := ctx.applyAction(*raw.action); text == "" {
						text = say
					}
				}
				return entities.InteractionResult{Effect: entities.SelfContained, Item: item, Description: text}
			default:
				return entities.InteractionResult{Effect: entities.NoEffect, Item: item, Description: raw.text}
			}
		}
		return entities.InteractionResult{
			Effect:      entities.NoEffect,
			Item:        item,
			Description: fmt.Sprintf("The %s has no effect.", item.Identifier().Name()),
		}
	}
}

// compileConversation builds the paragraph sequence for an NPC.
func (ctx *build) compileConversation(raws []rawParagraph) *conversation.Conversation {
	paragraphs := make([]*conversation.Paragraph, 0, len(raws))
	for _, raw := range raws {
		p := &conversation.Paragraph{
			Line:  raw.line,
			Delta: raw.delta,
		}
		if raw.action != nil {
			action := *raw.action
			p.Action = func(conversation.Game) {
				ctx.applyAction(action)
			}
		}
		for _, r := range raw.responses {
			p.Responses = append(p.Responses, &conversation.Response{Line: r.line, Delta: r.delta})
		}
		paragraphs = append(paragraphs, p)
	}
	return conversation.New(paragraphs...)
}

// compileEndCheck builds a completion or death predicate. A death check
// with no authored condition fires when the player is dead.
func (ctx *build) compileEndCheck(raw rawEnd, defaultDeath bool) engine.EndCheck {
	var condition func() bool
	if raw.when != nil {
		condition = ctx.compileCondition(*raw.when)
	}
	return func(g *engine.Game) (types.EndState, bool) {
		fired := false
		if condition != nil {
			fired = condition()
		} else if defaultDeath {
			fired = !g.Player().IsAlive()
		}
		if !fired {
			return types.EndState{}, false
		}
		return types.EndState{Title: raw.title, Description: raw.text}, true
	}
}
