package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nathoo/fablecore/types"
)

const orchard = `
Game {
    title = "Orchard",
    author = "A. Nonymous",
    description = "A tiny orchard.",
    player = { name = "Picker", description = "You.", items = { "basket" } },
}

Region "orchard" { description = "Rows of apple trees." }

Room "gate" {
    region = "orchard",
    x = 0, y = 0, z = 0,
    start = true,
    description = "The orchard gate.",
    exits = { "north" },
}

Room "grove" {
    region = "orchard",
    x = 0, y = 1, z = 0,
    description = "Under the boughs.",
}

Item "basket" { description = "A wicker basket.", takeable = true }

Item "apple" {
    room = "grove",
    description = "A red apple.",
    takeable = true,
}

NPC "keeper" {
    room = "grove",
    description = "The orchard keeper.",
    conversation = {
        { line = "Welcome." },
        { line = "Take an apple, why don't you." },
    },
}

Completion { when = { has_item = "apple" }, title = "Harvested", text = "One is plenty." }
`

func TestLoadStringBuildsPlayableGame(t *testing.T) {
	bp, err := LoadString(orchard)
	if err != nil {
		t.Fatalf("LoadString: %v", err)
	}

	info := bp.Info()
	if info.Title != "Orchard" || info.Author != "A. Nonymous" {
		t.Errorf("Info() = %+v", info)
	}

	game, err := bp.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	room := game.CurrentRoom()
	if room == nil || !room.Identifier().Matches("gate") {
		t.Fatalf("start room = %v, want the flagged start", room)
	}
	if game.Player().Identifier().Name() != "Picker" {
		t.Errorf("player name = %q", game.Player().Identifier().Name())
	}
	if _, ok := game.Player().FindItem("basket"); !ok {
		t.Error("the player should start with the basket")
	}

	if reaction := game.Execute("go north"); reaction.Result != types.OK {
		t.Fatalf("go north = %+v", reaction)
	}

	reaction := game.Execute("talk to keeper")
	if reaction.Result != types.Internal || !strings.Contains(reaction.Description, "Welcome.") {
		t.Errorf("talk = %+v", reaction)
	}
	game.Execute("end")

	if reaction := game.Execute("take apple"); reaction.Result != types.OK {
		t.Fatalf("take apple = %+v", reaction)
	}
	if !game.HasEnded() {
		t.Fatal("taking the apple should complete the game")
	}
	end, ok := game.EndState()
	if !ok || end.Title != "Harvested" {
		t.Errorf("end state = %+v, %v", end, ok)
	}
}

func TestBuildProducesIndependentSessions(t *testing.T) {
	bp, err := LoadString(orchard)
	if err != nil {
		t.Fatalf("LoadString: %v", err)
	}

	first, err := bp.Build()
	if err != nil {
		t.Fatalf("first Build: %v", err)
	}
	second, err := bp.Build()
	if err != nil {
		t.Fatalf("second Build: %v", err)
	}

	first.Execute("go north")
	first.Execute("take apple")

	if second.CurrentRoom().Identifier().Matches("grove") {
		t.Error("playing one session must not move the other")
	}
	if _, ok := second.Player().FindItem("apple"); ok {
		t.Error("playing one session must not fill the other's inventory")
	}
	if second.HasEnded() {
		t.Error("the fresh session must not be over")
	}
}

func TestLoadReadsDirectoryGameFirst(t *testing.T) {
	dir := t.TempDir()
	// aaa.lua sorts before game.lua but relies on Game being declared.
	files := map[string]string{
		"game.lua": `
Game { title = "Split", player = { name = "Player" } }
Region "only" { description = "" }
`,
		"aaa.lua": `
Room "cell" { region = "only", x = 0, y = 0, z = 0, start = true, description = "A cell." }
`,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	bp, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if bp.Info().Title != "Split" {
		t.Errorf("title = %q", bp.Info().Title)
	}
}

func TestLoadRejectsEmptyDirectory(t *testing.T) {
	if _, err := Load(t.TempDir()); err == nil {
		t.Error("a directory without .lua files should fail")
	}
}

func TestSandboxBlocksEscapes(t *testing.T) {
	for _, snippet := range []string{
		`dofile("other.lua")`,
		`loadstring("return 1")`,
		`local f = io.open("x")`,
		`os.exit(1)`,
	} {
		if _, err := LoadString(snippet); err == nil {
			t.Errorf("%q should fail in the sandbox", snippet)
		}
	}
}

func TestValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "missing title",
			content: `Game { author = "x" }`,
			want:    "missing title",
		},
		{
			name:    "no regions",
			content: `Game { title = "T" }`,
			want:    "no regions",
		},
		{
			name: "room in unknown region",
			content: `
Game { title = "T" }
Region "a" { description = "" }
Room "r" { region = "b", x = 0, y = 0, z = 0, description = "" }
`,
			want: `unknown region "b"`,
		},
		{
			name: "coordinate collision",
			content: `
Game { title = "T" }
Region "a" { description = "" }
Room "r1" { region = "a", x = 1, y = 2, z = 0, description = "" }
Room "r2" { region = "a", x = 1, y = 2, z = 0, description = "" }
`,
			want: "already used",
		},
		{
			name: "two start rooms",
			content: `
Game { title = "T" }
Region "a" { description = "" }
Room "r1" { region = "a", x = 0, y = 0, z = 0, start = true, description = "" }
Room "r2" { region = "a", x = 1, y = 0, z = 0, start = true, description = "" }
`,
			want: "both flagged start",
		},
		{
			name: "bad exit direction",
			content: `
Game { title = "T" }
Region "a" { description = "" }
Room "r" { region = "a", x = 0, y = 0, z = 0, description = "", exits = { "northeast" } }
`,
			want: `unknown exit direction "northeast"`,
		},
		{
			name: "item in unknown room",
			content: `
Game { title = "T" }
Region "a" { description = "" }
Room "r" { region = "a", x = 0, y = 0, z = 0, description = "" }
Item "gem" { room = "vault", description = "" }
`,
			want: `unknown room "vault"`,
		},
		{
			name: "player holds unknown item",
			content: `
Game { title = "T", player = { items = { "sword" } } }
Region "a" { description = "" }
Room "r" { region = "a", x = 0, y = 0, z = 0, description = "" }
`,
			want: `unknown item "sword"`,
		},
		{
			name: "morph without guise",
			content: `
Game { title = "T" }
Region "a" { description = "" }
Room "r" { region = "a", x = 0, y = 0, z = 0, description = "" }
Item "ore" { room = "r", description = "", interactions = { { item = "ore", effect = "morph" } } }
`,
			want: "missing into",
		},
		{
			name: "unknown interaction effect",
			content: `
Game { title = "T" }
Region "a" { description = "" }
Room "r" { region = "a", x = 0, y = 0, z = 0, description = "" }
Item "ore" { room = "r", description = "", interactions = { { item = "ore", effect = "explode" } } }
`,
			want: `unknown interaction effect "explode"`,
		},
		{
			name: "empty conversation line",
			content: `
Game { title = "T" }
Region "a" { description = "" }
Room "r" { region = "a", x = 0, y = 0, z = 0, description = "" }
NPC "bob" { room = "r", description = "", conversation = { { delta = 1 } } }
`,
			want: "has no line",
		},
		{
			name: "completion references unknown item",
			content: `
Game { title = "T" }
Region "a" { description = "" }
Room "r" { region = "a", x = 0, y = 0, z = 0, description = "" }
Completion { when = { has_item = "crown" }, title = "Done" }
`,
			want: `unknown item "crown"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadString(tt.content)
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}
