// Package engine provides the Game orchestrator that wires the
// interpreter chain, the command set, and the end-of-game predicates into
// a single synchronous request/response loop: one input line in, one
// Reaction out.
package engine

import (
	"github.com/nathoo/fablecore/engine/entities"
	"github.com/nathoo/fablecore/engine/world"
	"github.com/nathoo/fablecore/types"
)

// EndCheck inspects the game and reports whether the session should end,
// and with what narrative.
type EndCheck func(g *Game) (types.EndState, bool)

// Info holds game metadata shown by the About command.
type Info struct {
	Title       string
	Author      string
	Description string
}

// Game owns the overworld, the player, the active conversation (if any),
// and the pluggable end-of-game predicates. A Game instance is owned by a
// single session; nothing in it is safe to share.
type Game struct {
	info      Info
	overworld *world.Overworld
	player    *entities.PlayableCharacter
	converser *entities.NonPlayableCharacter

	interpreter *Interpreter

	completionCheck EndCheck
	deathCheck      EndCheck

	over         bool
	end          types.EndState
	hasEnd       bool
	newRequested bool
}

// NewGame creates a game over the given player and overworld, with the
// default interpreter chain and no end checks.
func NewGame(info Info, player *entities.PlayableCharacter, overworld *world.Overworld) *Game {
	return &Game{
		info:        info,
		overworld:   overworld,
		player:      player,
		interpreter: NewInterpreter(),
	}
}

// Info returns the game metadata.
func (g *Game) Info() Info {
	return g.info
}

// Player returns the playable character.
func (g *Game) Player() *entities.PlayableCharacter {
	return g.player
}

// Overworld returns the world graph.
func (g *Game) Overworld() *world.Overworld {
	return g.overworld
}

// CurrentRoom returns the room the player is in, or nil.
func (g *Game) CurrentRoom() *world.Room {
	return g.overworld.CurrentRoom()
}

// Interpreter returns the interpreter chain, for contextual help.
func (g *Game) Interpreter() *Interpreter {
	return g.interpreter
}

// SetCompletionCheck installs the predicate that detects a won game.
func (g *Game) SetCompletionCheck(check EndCheck) {
	g.completionCheck = check
}

// SetDeathCheck installs the predicate that detects a lost game.
func (g *Game) SetDeathCheck(check EndCheck) {
	g.deathCheck = check
}

// ActiveConverser returns the character the player is talking to, or nil.
func (g *Game) ActiveConverser() *entities.NonPlayableCharacter {
	return g.converser
}

// StartConversation makes npc the active converser. It fails when another
// conversation is already active.
func (g *Game) StartConversation(npc *entities.NonPlayableCharacter) bool {
	if g.converser != nil {
		return false
	}
	g.converser = npc
	return true
}

// EndConversation detaches the active conversation, if any. Idempotent.
func (g *Game) EndConversation() {
	g.converser = nil
}

// HasEnded reports whether the session is over. Once over, Execute
// accepts no further gameplay input.
func (g *Game) HasEnded() bool {
	return g.over
}

// EndState returns the narrative the session ended with, if a predicate
// supplied one.
func (g *Game) EndState() (types.EndState, bool) {
	return g.end, g.hasEnd
}

// RequestNew flags that the player asked for a fresh game. Hosts observe
// the flag and rebuild the session.
func (g *Game) RequestNew() {
	g.newRequested = true
}

// NewRequested reports whether the player asked for a fresh game.
func (g *Game) NewRequested() bool {
	return g.newRequested
}

// Execute resolves one line of input to a command, invokes it, and
// evaluates the end-of-game predicates when the command could have
// changed win or death state. Internal reactions count: self-contained
// item interactions, custom commands, and conversation actions all
// mutate behind an Internal result. Only Error (zero mutation) and
// None (nothing matched) skip the predicates. It returns the command's
// Reaction.
func (g *Game) Execute(input string) types.Reaction {
	if g.over {
		return types.Reaction{Result: types.Internal, Description: "The story has ended."}
	}

	cmd := g.interpreter.Interpret(input, g)
	reaction := cmd.Invoke(g)

	if reaction.Result == types.Fatal {
		g.over = true
	}
	if reaction.Result != types.Error && reaction.Result != types.None {
		g.checkEnd()
	}
	return reaction
}

// checkEnd evaluates completion before death; the first predicate to fire
// ends the session with its narrative.
func (g *Game) checkEnd() {
	if g.completionCheck != nil {
		if end, ok := g.completionCheck(g); ok {
			g.over = true
			g.end = end
			g.hasEnd = true
			return
		}
	}
	if g.deathCheck != nil {
		if end, ok := g.deathCheck(g); ok {
			g.over = true
			g.end = end
			g.hasEnd = true
		}
	}
}

// FindInteractionTarget resolves a name to something an item can be used
// on: a visible item or character in the current room, an inventory item,
// or the player themselves.
func (g *Game) FindInteractionTarget(name string) (InteractionTarget, bool) {
	if room := g.CurrentRoom(); room != nil {
		if item, ok := room.FindItem(name); ok {
			return item, true
		}
		if npc, ok := room.FindCharacter(name); ok {
			return npc, true
		}
	}
	if item, ok := g.player.FindItem(name); ok {
		return item, true
	}
	if g.player.Identifier().Matches(name) || entities.NewIdentifier("me").Matches(name) {
		return g.player, true
	}
	return nil, false
}

// RemoveItemFromWorld removes an item from whichever container currently
// holds it: the player's inventory or the current room. It reports
// whether the item was found.
func (g *Game) RemoveItemFromWorld(item *entities.Item) bool {
	if g.player.RemoveItem(item) {
		return true
	}
	if room := g.CurrentRoom(); room != nil {
		return room.RemoveItem(item)
	}
	return false
}
