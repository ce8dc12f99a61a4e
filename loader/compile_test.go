package loader

import (
	"strings"
	"testing"

	"github.com/nathoo/fablecore/types"
)

const forge = `
Game {
    title = "Forge",
    player = { name = "Smith", items = { "ore", "bellows", "poison" } },
}

Region "smithy" { description = "" }

Room "floor" {
    region = "smithy",
    x = 0, y = 0, z = 0,
    start = true,
    description = "Soot everywhere.",
    exits = { { direction = "east", locked = true } },
}

Room "store" {
    region = "smithy",
    x = 1, y = 0, z = 0,
    description = "Crates and shelves.",
}

Item "anvil" {
    room = "floor",
    description = "A scarred anvil.",
    interactions = {
        { item = "ore", effect = "morph", text = "You hammer the ore flat.",
          into = { name = "blade", description = "A rough blade.", takeable = true } },
        { item = "bellows", effect = "consume", text = "The bellows split." },
        { item = "poison", effect = "fatal", text = "The fumes overwhelm you." },
    },
}

Item "ore" { description = "A lump of ore.", takeable = true }
Item "bellows" { description = "Cracked bellows.", takeable = true }
Item "poison" { description = "A vial of something vile.", takeable = true }
Item "key" { description = "A storeroom key.", takeable = true, visible = false }

Item "sign" {
    room = "floor",
    description = {
        text = "The sign reads OPEN.",
        otherwise = "The sign reads CLOSED.",
        when = { has_item = "key" },
    },
    commands = {
        { name = "flip", help = "Flip the sign",
          reveal = "key", give = "key",
          unlock = { room = "floor", direction = "east" },
          say = "The sign swings around. Something clatters down." },
    },
}
`

func buildForge(t *testing.T) *gameHandle {
	t.Helper()
	bp, err := LoadString(forge)
	if err != nil {
		t.Fatalf("LoadString: %v", err)
	}
	game, err := bp.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return &gameHandle{t: t, game: game}
}

type gameHandle struct {
	t    *testing.T
	game interface {
		Execute(string) types.Reaction
		HasEnded() bool
	}
}

func (h *gameHandle) run(input string) types.Reaction {
	h.t.Helper()
	return h.game.Execute(input)
}

func TestCompiledMorphInteraction(t *testing.T) {
	h := buildForge(t)

	reaction := h.run("use ore on anvil")
	if reaction.Result != types.OK || reaction.Description != "You hammer the ore flat." {
		t.Fatalf("morph = %+v", reaction)
	}
	// The held item now answers to its new guise.
	if inv := h.run("inventory"); !strings.Contains(inv.Description, "blade") {
		t.Errorf("inventory = %q, want it to list the blade", inv.Description)
	}
	if x := h.run("x blade"); !strings.Contains(x.Description, "A rough blade.") {
		t.Errorf("examine blade = %q", x.Description)
	}
}

func TestCompiledConsumeInteraction(t *testing.T) {
	h := buildForge(t)

	reaction := h.run("use bellows on anvil")
	if reaction.Result != types.OK {
		t.Fatalf("consume = %+v", reaction)
	}
	if inv := h.run("inventory"); strings.Contains(inv.Description, "bellows") {
		t.Errorf("inventory = %q, the bellows should be gone", inv.Description)
	}
}

func TestCompiledFatalInteraction(t *testing.T) {
	h := buildForge(t)

	reaction := h.run("use poison on anvil")
	if reaction.Result != types.Fatal {
		t.Fatalf("fatal = %+v", reaction)
	}
	if !h.game.HasEnded() {
		t.Error("the default death check should end the game")
	}
}

func TestCompiledDefaultInteractionFallthrough(t *testing.T) {
	h := buildForge(t)

	reaction := h.run("use ore on sign")
	if reaction.Result != types.None {
		t.Errorf("unmatched interaction = %+v, want None", reaction)
	}
}

func TestCompiledCustomCommandActionBundle(t *testing.T) {
	h := buildForge(t)

	// The way east starts locked and the key is hidden.
	if reaction := h.run("go east"); reaction.Result != types.Error {
		t.Fatalf("go east before flipping = %+v", reaction)
	}

	reaction := h.run("flip")
	if reaction.Result != types.Internal || !strings.Contains(reaction.Description, "swings around") {
		t.Fatalf("flip = %+v", reaction)
	}

	// give + reveal put the key in the inventory, visible.
	if inv := h.run("inventory"); !strings.Contains(inv.Description, "key") {
		t.Errorf("inventory = %q, want the key", inv.Description)
	}
	// unlock opened the way.
	if reaction := h.run("go east"); reaction.Result != types.OK {
		t.Errorf("go east after flipping = %+v", reaction)
	}
}

func TestCompiledConditionalDescription(t *testing.T) {
	h := buildForge(t)

	if x := h.run("x sign"); !strings.Contains(x.Description, "CLOSED") {
		t.Errorf("sign before the key = %q", x.Description)
	}
	h.run("flip")
	if x := h.run("x sign"); !strings.Contains(x.Description, "OPEN") {
		t.Errorf("sign after the key = %q", x.Description)
	}
}
