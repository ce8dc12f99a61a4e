package engine

import (
	"strings"

	"github.com/nathoo/fablecore/engine/conversation"
	"github.com/nathoo/fablecore/engine/entities"
	"github.com/nathoo/fablecore/types"
)

// Next advances the active conversation.
type Next struct{}

// Invoke advances the conversation; a paragraph awaiting a response
// blocks until one is chosen.
func (c *Next) Invoke(g *Game) types.Reaction {
	npc := g.ActiveConverser()
	if npc == nil {
		return types.Reaction{Result: types.Error, Description: "You are not talking to anyone."}
	}
	reaction := npc.Conversation.Next(g)
	return finishTransition(g, npc, reaction)
}

// Respond chooses one of the current paragraph's responses.
type Respond struct {
	Response *conversation.Response
}

// Invoke logs the player's line and transitions by the response's delta.
func (c *Respond) Invoke(g *Game) types.Reaction {
	npc := g.ActiveConverser()
	if npc == nil {
		return types.Reaction{Result: types.Error, Description: "You are not talking to anyone."}
	}
	if c.Response == nil {
		return types.Reaction{Result: types.Error, Description: "That is not one of the choices."}
	}
	reaction := npc.Conversation.Respond(c.Response, g)
	return finishTransition(g, npc, reaction)
}

// End leaves the active conversation.
type End struct{}

// Invoke detaches the conversation without advancing it.
func (c *End) Invoke(g *Game) types.Reaction {
	if g.ActiveConverser() == nil {
		return types.Reaction{Result: types.Error, Description: "You are not talking to anyone."}
	}
	g.EndConversation()
	return types.Reaction{Result: types.Internal, Description: "You end the conversation."}
}

// finishTransition detaches a conversation that just ended and prefixes
// newly spoken dialogue with the speaker's name.
func finishTransition(g *Game, npc *entities.NonPlayableCharacter, reaction types.Reaction) types.Reaction {
	if reaction.Result == types.Error {
		return reaction
	}
	if npc.Conversation.HasEnded() {
		g.EndConversation()
	}
	if p := npc.Conversation.CurrentParagraph(); p != nil && strings.HasPrefix(reaction.Description, p.Line) {
		reaction.Description = speakerPrefix(npc.Identifier().Name(), reaction.Description)
	}
	return reaction
}
