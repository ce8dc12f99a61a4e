package engine

import (
	"fmt"

	"github.com/nathoo/fablecore/engine/entities"
	"github.com/nathoo/fablecore/types"
)

// Talk starts a conversation with a character in the room.
type Talk struct {
	Converser *entities.NonPlayableCharacter
}

// Invoke validates the converser and plays the opening paragraph.
// Starting a second conversation while one is active is rejected.
func (c *Talk) Invoke(g *Game) types.Reaction {
	if g.ActiveConverser() != nil {
		return types.Reaction{Result: types.Error, Description: "You are already talking to someone."}
	}
	if c.Converser == nil {
		return types.Reaction{Result: types.Error, Description: "There is no one to talk to."}
	}
	name := c.Converser.Identifier().Name()
	if !c.Converser.IsAlive() {
		return types.Reaction{Result: types.Error, Description: fmt.Sprintf("%s is dead.", name)}
	}
	if c.Converser.Conversation == nil {
		return types.Reaction{Result: types.Error, Description: fmt.Sprintf("%s has nothing to say.", name)}
	}

	g.StartConversation(c.Converser)
	reaction := c.Converser.Conversation.Next(g)
	return finishTransition(g, c.Converser, reaction)
}

// speakerPrefix prefixes dialogue with the speaker's name.
func speakerPrefix(name, line string) string {
	if line == "" {
		return line
	}
	return name + ": " + line
}
