package engine

import (
	"fmt"
	"strings"

	"github.com/nathoo/fablecore/types"
)

// About shows the game metadata.
type About struct{}

// Invoke produces its own narration; nothing mutates.
func (c *About) Invoke(g *Game) types.Reaction {
	info := g.Info()
	var b strings.Builder
	b.WriteString(info.Title)
	if info.Author != "" {
		fmt.Fprintf(&b, "\nby %s", info.Author)
	}
	if info.Description != "" {
		b.WriteString("\n\n")
		b.WriteString(info.Description)
	}
	return types.Reaction{Result: types.Internal, Description: b.String()}
}

// Help lists the commands currently available.
type Help struct{}

// Invoke renders the interpreter chain's contextual help.
func (c *Help) Invoke(g *Game) types.Reaction {
	var b strings.Builder
	b.WriteString("Commands:")
	for _, h := range g.Interpreter().Help(g) {
		fmt.Fprintf(&b, "\n  %-18s %s", h.Command, h.Description)
	}
	return types.Reaction{Result: types.Internal, Description: b.String()}
}

// Map draws the visited portion of the current region.
type Map struct{}

// Invoke produces its own narration; nothing mutates.
func (c *Map) Invoke(g *Game) types.Reaction {
	region := g.Overworld().CurrentRegion()
	if region == nil {
		return types.Reaction{Result: types.Error, Description: "There is no map to show."}
	}
	return types.Reaction{Result: types.Internal, Description: DrawRegionMap(region)}
}

// Exit ends the session at the player's request.
type Exit struct{}

// Invoke returns the session-ending reaction.
func (c *Exit) Invoke(g *Game) types.Reaction {
	return types.Reaction{Result: types.Fatal, Description: "Goodbye."}
}

// New asks the host to rebuild the session from scratch.
type New struct{}

// Invoke flags the request; the host observes it and swaps the game.
func (c *New) Invoke(g *Game) types.Reaction {
	g.RequestNew()
	return types.Reaction{Result: types.Internal, Description: "Starting a new game."}
}
