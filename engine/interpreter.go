package engine

import (
	"fmt"
	"strconv"

	"github.com/nathoo/fablecore/engine/entities"
	"github.com/nathoo/fablecore/engine/parser"
	"github.com/nathoo/fablecore/engine/world"
	"github.com/nathoo/fablecore/types"
)

// SubInterpreter attempts to turn a parsed intent into a command. The
// chain asks each sub-interpreter in order; the first match wins.
type SubInterpreter interface {
	Interpret(intent types.Intent, g *Game) (Command, bool)
	Help(g *Game) []types.CommandHelp
}

// Interpreter is the chain of sub-interpreters: global commands, then
// movement, then room and inventory interaction, then the commands of the
// active conversation.
type Interpreter struct {
	subs []SubInterpreter
}

// NewInterpreter creates the default chain.
func NewInterpreter() *Interpreter {
	return &Interpreter{
		subs: []SubInterpreter{
			&GlobalInterpreter{},
			&MovementInterpreter{},
			&InteractionInterpreter{},
			&ConversationInterpreter{},
		},
	}
}

// Interpret resolves raw input to a command. Input nothing in the chain
// understands yields the Unactionable fallback.
func (i *Interpreter) Interpret(input string, g *Game) Command {
	intent := parser.Parse(input)
	if intent.Verb == "" {
		return &Unactionable{Input: input}
	}
	for _, sub := range i.subs {
		if cmd, ok := sub.Interpret(intent, g); ok {
			return cmd
		}
	}
	return &Unactionable{Input: input}
}

// Help collects contextual help from the whole chain.
func (i *Interpreter) Help(g *Game) []types.CommandHelp {
	var help []types.CommandHelp
	for _, sub := range i.subs {
		help = append(help, sub.Help(g)...)
	}
	return help
}

// GlobalInterpreter handles the commands available everywhere.
type GlobalInterpreter struct{}

// Interpret matches the global verbs.
func (s *GlobalInterpreter) Interpret(intent types.Intent, g *Game) (Command, bool) {
	switch intent.Verb {
	case "about":
		return &About{}, true
	case "help":
		return &Help{}, true
	case "map":
		return &Map{}, true
	case "exit":
		return &Exit{}, true
	case "new":
		return &New{}, true
	default:
		return nil, false
	}
}

// Help lists the global commands.
func (s *GlobalInterpreter) Help(g *Game) []types.CommandHelp {
	return []types.CommandHelp{
		{Command: "about", Description: "About this game"},
		{Command: "help", Description: "Show this help"},
		{Command: "map", Description: "Show the region map"},
		{Command: "new", Description: "Start a new game"},
		{Command: "exit", Description: "Leave the game"},
	}
}

// MovementInterpreter handles "go <direction>" and bare directions.
type MovementInterpreter struct{}

// Interpret matches movement.
func (s *MovementInterpreter) Interpret(intent types.Intent, g *Game) (Command, bool) {
	if intent.Verb != "go" {
		return nil, false
	}
	if intent.Object == "" {
		return errorReply("Go where?"), true
	}
	direction, ok := world.ParseDirection(intent.Object)
	if !ok {
		return errorReply(fmt.Sprintf("%q is not a direction.", intent.Object)), true
	}
	return &Move{Direction: direction}, true
}

// Help lists movement commands.
func (s *MovementInterpreter) Help(g *Game) []types.CommandHelp {
	return []types.CommandHelp{
		{Command: "north/south/east/west", Description: "Move on the compass"},
		{Command: "up/down", Description: "Move between floors"},
	}
}

// InteractionInterpreter handles room and inventory interaction: take,
// drop, examine, use, talk, and the custom commands of nearby objects.
type InteractionInterpreter struct{}

// Interpret matches interaction verbs and custom commands.
func (s *InteractionInterpreter) Interpret(intent types.Intent, g *Game) (Command, bool) {
	room := g.CurrentRoom()

	switch intent.Verb {
	case "take":
		if intent.Object == "" {
			return errorReply("Take what?"), true
		}
		if intent.Object == "all" {
			return &TakeAll{}, true
		}
		if room == nil {
			return errorReply("There is nothing here to take."), true
		}
		item, ok := room.FindItem(intent.Object)
		if !ok {
			return errorReply(fmt.Sprintf("There is no %s here.", intent.Object)), true
		}
		return &Take{Item: item}, true

	case "drop":
		if intent.Object == "" {
			return errorReply("Drop what?"), true
		}
		item, ok := g.Player().FindItem(intent.Object)
		if !ok {
			return errorReply(fmt.Sprintf("You don't have the %s.", intent.Object)), true
		}
		return &Drop{Item: item}, true

	case "inventory":
		return &Inventory{}, true

	case "examine":
		if intent.Object == "" {
			return &Examine{}, true
		}
		if target, ok := s.findExaminable(intent.Object, g); ok {
			return &Examine{Target: target}, true
		}
		return errorReply(fmt.Sprintf("You don't see a %s here.", intent.Object)), true

	case "use":
		if intent.Object == "" {
			return errorReply("Use what?"), true
		}
		item, ok := g.Player().FindItem(intent.Object)
		if !ok && room != nil {
			item, ok = room.FindItem(intent.Object)
		}
		if !ok {
			return errorReply(fmt.Sprintf("You don't have the %s.", intent.Object)), true
		}
		if intent.Target == "" {
			return errorReply(fmt.Sprintf("Use the %s on what?", item.Identifier().Name())), true
		}
		target, ok := g.FindInteractionTarget(intent.Target)
		if !ok {
			return errorReply(fmt.Sprintf("You don't see a %s here.", intent.Target)), true
		}
		return &UseOn{Item: item, Target: target}, true

	case "talk":
		if g.ActiveConverser() != nil {
			return errorReply("You are already talking to someone."), true
		}
		return s.interpretTalk(intent, g)
	}

	// Custom commands attached to the room's objects or inventory items.
	if custom, ok := s.findCustomCommand(intent.Verb, g); ok {
		return custom, true
	}

	return nil, false
}

// interpretTalk resolves the converser, defaulting to the only talkable
// character present.
func (s *InteractionInterpreter) interpretTalk(intent types.Intent, g *Game) (Command, bool) {
	room := g.CurrentRoom()
	if room == nil {
		return errorReply("There is no one to talk to."), true
	}
	if intent.Object != "" {
		npc, ok := room.FindCharacter(intent.Object)
		if !ok {
			return errorReply(fmt.Sprintf("There is no %s here.", intent.Object)), true
		}
		return &Talk{Converser: npc}, true
	}

	var candidates []*entities.NonPlayableCharacter
	for _, npc := range room.Characters() {
		if npc.IsPlayerVisible() && npc.IsAlive() && npc.Conversation != nil {
			candidates = append(candidates, npc)
		}
	}
	switch len(candidates) {
	case 0:
		return errorReply("There is no one to talk to."), true
	case 1:
		return &Talk{Converser: candidates[0]}, true
	default:
		return errorReply("Talk to whom?"), true
	}
}

// findExaminable resolves a name to an examinable capability: inventory,
// room items, room characters, or the player.
func (s *InteractionInterpreter) findExaminable(name string, g *Game) (*entities.Examinable, bool) {
	if item, ok := g.Player().FindItem(name); ok {
		return &item.Examinable, true
	}
	if room := g.CurrentRoom(); room != nil {
		if item, ok := room.FindItem(name); ok {
			return &item.Examinable, true
		}
		if npc, ok := room.FindCharacter(name); ok {
			return &npc.Examinable, true
		}
	}
	if g.Player().Identifier().Matches(name) || name == "me" {
		return &g.Player().Examinable, true
	}
	return nil, false
}

// findCustomCommand matches a verb against the visible custom commands of
// the player's items and the room's occupants.
func (s *InteractionInterpreter) findCustomCommand(verb string, g *Game) (Command, bool) {
	for _, e := range s.nearbyExaminables(g) {
		if custom, ok := e.FindCommand(verb); ok {
			return &customCommand{command: custom}, true
		}
	}
	return nil, false
}

// nearbyExaminables gathers the examinables whose custom commands are in
// scope: inventory items, then room items and characters.
func (s *InteractionInterpreter) nearbyExaminables(g *Game) []*entities.Examinable {
	var result []*entities.Examinable
	for _, item := range g.Player().Items() {
		result = append(result, &item.Examinable)
	}
	if room := g.CurrentRoom(); room != nil {
		for _, item := range room.Items() {
			if item.IsPlayerVisible() {
				result = append(result, &item.Examinable)
			}
		}
		for _, npc := range room.Characters() {
			if npc.IsPlayerVisible() {
				result = append(result, &npc.Examinable)
			}
		}
	}
	return result
}

// Help lists interaction commands plus any visible custom commands in
// scope.
func (s *InteractionInterpreter) Help(g *Game) []types.CommandHelp {
	help := []types.CommandHelp{
		{Command: "take <item>", Description: "Pick up an item (take all for everything)"},
		{Command: "drop <item>", Description: "Put down an item"},
		{Command: "examine <thing>", Description: "Look closely at something"},
		{Command: "use <item> on <thing>", Description: "Apply an item to something"},
		{Command: "talk to <character>", Description: "Start a conversation"},
		{Command: "inventory", Description: "List what you carry"},
	}
	for _, e := range s.nearbyExaminables(g) {
		for _, c := range e.Commands() {
			if c.Visible {
				help = append(help, c.Help)
			}
		}
	}
	return help
}

// ConversationInterpreter handles the commands of the active
// conversation: next, a numbered response, and end.
type ConversationInterpreter struct{}

// Interpret matches conversation flow commands. It matches nothing when
// no conversation is active.
func (s *ConversationInterpreter) Interpret(intent types.Intent, g *Game) (Command, bool) {
	npc := g.ActiveConverser()
	if npc == nil {
		return nil, false
	}

	switch intent.Verb {
	case "next":
		return &Next{}, true
	case "end":
		return &End{}, true
	case "respond":
		return s.interpretChoice(intent.Object, npc), true
	}

	if _, err := strconv.Atoi(intent.Verb); err == nil {
		return s.interpretChoice(intent.Verb, npc), true
	}
	return nil, false
}

// interpretChoice resolves a 1-based response number against the current
// paragraph.
func (s *ConversationInterpreter) interpretChoice(raw string, npc *entities.NonPlayableCharacter) Command {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return errorReply("Respond with a choice number.")
	}
	p := npc.Conversation.CurrentParagraph()
	if p == nil || len(p.Responses) == 0 {
		return errorReply("There is nothing to respond to.")
	}
	if n < 1 || n > len(p.Responses) {
		return errorReply("That is not one of the choices.")
	}
	return &Respond{Response: p.Responses[n-1]}
}

// Help lists conversation commands while a conversation is active.
func (s *ConversationInterpreter) Help(g *Game) []types.CommandHelp {
	if g.ActiveConverser() == nil {
		return nil
	}
	return []types.CommandHelp{
		{Command: "next", Description: "Continue the conversation"},
		{Command: "1, 2, ...", Description: "Choose a response"},
		{Command: "end", Description: "End the conversation"},
	}
}
