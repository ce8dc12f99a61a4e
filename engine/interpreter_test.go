package engine

import (
	"strings"
	"testing"

	"github.com/nathoo/fablecore/engine/entities"
	"github.com/nathoo/fablecore/types"
)

func TestAboutShowsMetadata(t *testing.T) {
	w := newTestGame(t)

	reaction := w.game.Execute("about")
	if reaction.Result != types.Internal {
		t.Fatalf("about = %+v", reaction)
	}
	for _, want := range []string{"Meadow Tales", "A. Nonymous", "A short stroll."} {
		if !strings.Contains(reaction.Description, want) {
			t.Errorf("about output missing %q:\n%s", want, reaction.Description)
		}
	}
}

func TestHelpIsContextual(t *testing.T) {
	w := newTestGame(t)

	reaction := w.game.Execute("help")
	if reaction.Result != types.Internal {
		t.Fatalf("help = %+v", reaction)
	}
	if !strings.Contains(reaction.Description, "take <item>") {
		t.Errorf("help should list interaction commands:\n%s", reaction.Description)
	}
	if strings.Contains(reaction.Description, "Continue the conversation") {
		t.Error("conversation commands must not be listed outside a conversation")
	}

	w.game.Execute("go east")
	w.game.Execute("talk to farmer")
	reaction = w.game.Execute("help")
	if !strings.Contains(reaction.Description, "Continue the conversation") {
		t.Errorf("help during a conversation should list its commands:\n%s", reaction.Description)
	}
}

func TestHelpListsNearbyCustomCommands(t *testing.T) {
	w := newTestGame(t)
	w.rock.AddCommand(&entities.CustomCommand{
		Help:    types.CommandHelp{Command: "push", Description: "Push the rock"},
		Visible: true,
		Callback: func() types.Reaction {
			return types.Reaction{Result: types.Internal, Description: "It won't budge."}
		},
	})

	reaction := w.game.Execute("help")
	if !strings.Contains(reaction.Description, "Push the rock") {
		t.Errorf("help should list custom commands in scope:\n%s", reaction.Description)
	}

	w.game.Execute("go east")
	reaction = w.game.Execute("help")
	if strings.Contains(reaction.Description, "Push the rock") {
		t.Error("custom commands out of scope must not be listed")
	}
}

func TestCustomCommandDispatch(t *testing.T) {
	w := newTestGame(t)
	pushed := false
	w.rock.AddCommand(&entities.CustomCommand{
		Help:    types.CommandHelp{Command: "push", Description: "Push the rock"},
		Visible: true,
		Callback: func() types.Reaction {
			pushed = true
			return types.Reaction{Result: types.Internal, Description: "It shifts an inch."}
		},
	})

	reaction := w.game.Execute("push")
	if reaction.Result != types.Internal || reaction.Description != "It shifts an inch." {
		t.Fatalf("push = %+v", reaction)
	}
	if !pushed {
		t.Error("the callback should have run")
	}

	// Out of the rock's room, the verb means nothing.
	w.game.Execute("go east")
	reaction = w.game.Execute("push")
	if reaction.Result != types.None {
		t.Errorf("push out of scope = %+v, want the fallback", reaction)
	}
}

func TestCustomCommandTriggersEndChecks(t *testing.T) {
	w := newTestGame(t)
	w.rock.AddCommand(&entities.CustomCommand{
		Help:    types.CommandHelp{Command: "smash", Description: "Smash the rock"},
		Visible: true,
		Callback: func() types.Reaction {
			w.game.Player().Kill()
			return types.Reaction{Result: types.Internal, Description: "It lands on your foot."}
		},
	})
	w.game.SetDeathCheck(func(g *Game) (types.EndState, bool) {
		return types.EndState{Title: "Flattened"}, !g.Player().IsAlive()
	})

	reaction := w.game.Execute("smash")
	if reaction.Result != types.Internal {
		t.Fatalf("smash = %+v", reaction)
	}
	if !w.game.HasEnded() {
		t.Fatal("the callback killed the player; the death check should have ended the game")
	}
	end, ok := w.game.EndState()
	if !ok || end.Title != "Flattened" {
		t.Errorf("end state = %+v, %v", end, ok)
	}
}

func TestHiddenCustomCommandNotDispatchable(t *testing.T) {
	w := newTestGame(t)
	w.rock.AddCommand(&entities.CustomCommand{
		Help:    types.CommandHelp{Command: "tip"},
		Visible: false,
		Callback: func() types.Reaction {
			return types.Reaction{Result: types.Internal, Description: "Secret."}
		},
	})

	reaction := w.game.Execute("tip")
	if reaction.Result != types.None {
		t.Errorf("hidden command = %+v, want the fallback", reaction)
	}
}

func TestMovementInterpreterRejectsNonDirections(t *testing.T) {
	w := newTestGame(t)

	reaction := w.game.Execute("go sideways")
	if reaction.Result != types.Error || !strings.Contains(reaction.Description, "not a direction") {
		t.Errorf("go sideways = %+v", reaction)
	}
}

func TestBareDirectionMoves(t *testing.T) {
	w := newTestGame(t)

	reaction := w.game.Execute("e")
	if reaction.Result != types.OK || w.game.CurrentRoom() != w.barn {
		t.Errorf("bare e = %+v", reaction)
	}
}

func TestMapCommand(t *testing.T) {
	w := newTestGame(t)

	reaction := w.game.Execute("map")
	if reaction.Result != types.Internal || !strings.Contains(reaction.Description, "[@]") {
		t.Errorf("map = %+v", reaction)
	}
}

func TestNumbersOnlyMatterInConversation(t *testing.T) {
	w := newTestGame(t)

	reaction := w.game.Execute("1")
	if reaction.Result != types.None {
		t.Errorf("a bare number outside a conversation = %+v, want the fallback", reaction)
	}
}
