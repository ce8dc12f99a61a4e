package engine

import (
	"strings"
	"testing"

	"github.com/nathoo/fablecore/engine/entities"
	"github.com/nathoo/fablecore/types"
)

func TestTakeAndDrop(t *testing.T) {
	w := newTestGame(t)

	reaction := w.game.Execute("take stick")
	if reaction.Result != types.OK {
		t.Fatalf("take stick = %+v", reaction)
	}
	if !w.game.Player().HasItem(w.stick) || w.field.ContainsItem(w.stick) {
		t.Error("the stick should have moved into the inventory")
	}

	reaction = w.game.Execute("drop stick")
	if reaction.Result != types.OK {
		t.Fatalf("drop stick = %+v", reaction)
	}
	if w.game.Player().HasItem(w.stick) || !w.field.ContainsItem(w.stick) {
		t.Error("the stick should have moved back into the room")
	}
}

func TestTakeRejectsFixedItem(t *testing.T) {
	w := newTestGame(t)

	reaction := w.game.Execute("take rock")
	if reaction.Result != types.Error {
		t.Fatalf("take rock = %+v, want Error", reaction)
	}
	if !strings.Contains(reaction.Description, "can't be taken") {
		t.Errorf("take rock description = %q", reaction.Description)
	}
	if w.game.Player().HasItem(w.rock) || !w.field.ContainsItem(w.rock) {
		t.Error("a failed take must not move the item")
	}
}

func TestTakeUnknownItem(t *testing.T) {
	w := newTestGame(t)

	reaction := w.game.Execute("take halberd")
	if reaction.Result != types.Error {
		t.Errorf("take halberd = %+v, want Error", reaction)
	}
}

func TestTakeAll(t *testing.T) {
	w := newTestGame(t)
	hidden := entities.NewItem("coin", "A dull coin.", true)
	hidden.SetPlayerVisible(false)
	w.field.AddItem(hidden)

	reaction := w.game.Execute("take all")
	if reaction.Result != types.OK {
		t.Fatalf("take all = %+v", reaction)
	}
	if !w.game.Player().HasItem(w.stick) {
		t.Error("the takeable stick should be taken")
	}
	if w.game.Player().HasItem(w.rock) || !w.field.ContainsItem(w.rock) {
		t.Error("the fixed rock must stay")
	}
	if w.game.Player().HasItem(hidden) {
		t.Error("invisible items must not be taken")
	}

	// Nothing left that qualifies.
	reaction = w.game.Execute("take all")
	if reaction.Result != types.Error {
		t.Errorf("second take all = %+v, want Error", reaction)
	}
}

func TestDropRejectsUnheldItem(t *testing.T) {
	w := newTestGame(t)

	reaction := w.game.Execute("drop stick")
	if reaction.Result != types.Error {
		t.Errorf("drop stick = %+v, want Error", reaction)
	}
	if !w.field.ContainsItem(w.stick) {
		t.Error("a failed drop must not move the item")
	}
}

func TestInventoryListing(t *testing.T) {
	w := newTestGame(t)

	reaction := w.game.Execute("inventory")
	if reaction.Result != types.Internal || !strings.Contains(reaction.Description, "match") {
		t.Errorf("inventory = %+v", reaction)
	}

	w.game.Player().RemoveItem(w.match)
	reaction = w.game.Execute("inventory")
	if reaction.Description != "You are carrying nothing." {
		t.Errorf("empty inventory = %q", reaction.Description)
	}
}

func TestExamineTargets(t *testing.T) {
	w := newTestGame(t)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"room item", "examine rock", "A heavy rock."},
		{"inventory item", "x match", "A single match."},
		{"the player", "examine me", "Just you."},
		{"bare examine describes the room", "look", "Grass to the horizon."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reaction := w.game.Execute(tt.input)
			if reaction.Result != types.Internal {
				t.Fatalf("%q = %+v", tt.input, reaction)
			}
			if !strings.Contains(reaction.Description, tt.want) {
				t.Errorf("%q = %q, want it to mention %q", tt.input, reaction.Description, tt.want)
			}
		})
	}

	reaction := w.game.Execute("examine ghost")
	if reaction.Result != types.Error {
		t.Errorf("examine ghost = %+v, want Error", reaction)
	}
}
