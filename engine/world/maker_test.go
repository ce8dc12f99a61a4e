package world

import (
	"strings"
	"testing"
)

func TestMakeNormalizesNegativeCoordinates(t *testing.T) {
	m := NewRegionMaker("Caves", "Damp caves.")
	center := NewRoom("Center", "", NewExit(West), NewExit(Down))
	west := NewRoom("West Nook", "")
	below := NewRoom("Undercroft", "")
	m.Place(0, 0, 0, center)
	m.Place(-1, 0, 0, west)
	m.Place(0, 0, -1, below)

	region, err := m.Make()
	if err != nil {
		t.Fatalf("Make: %v", err)
	}

	min, max := region.Bounds()
	if (min != Coordinate{}) {
		t.Errorf("min bound = %+v, want the origin", min)
	}
	if (max != Coordinate{Column: 1, Row: 0, Floor: 1}) {
		t.Errorf("max bound = %+v", max)
	}

	// Relative positions survive the translation.
	if got, ok := region.RoomAt(Coordinate{Column: 1, Row: 0, Floor: 1}); !ok || got != center {
		t.Error("center should sit at the translated coordinate")
	}
	if got, ok := region.RoomAt(Coordinate{Column: 0, Row: 0, Floor: 1}); !ok || got != west {
		t.Error("west room should stay one column west of center")
	}
	if region.CurrentRoom() != center {
		t.Error("the first-placed room should be the start")
	}
}

func TestPlaceReplacesAtSameCoordinate(t *testing.T) {
	m := NewRegionMaker("Plaza", "")
	m.Place(0, 0, 0, NewRoom("Draft", ""))
	final := NewRoom("Final", "")
	m.Place(0, 0, 0, final)

	region, err := m.Make()
	if err != nil {
		t.Fatalf("Make: %v", err)
	}
	if got, ok := region.FindRoom("Final"); !ok || got != final {
		t.Error("the later placement should win")
	}
	if _, ok := region.FindRoom("Draft"); ok {
		t.Error("the replaced room must not be in the region")
	}
}

func TestMakeLinksInverseExits(t *testing.T) {
	m := NewRegionMaker("Pair", "")
	a := NewRoom("A", "", NewExit(East))
	b := NewRoom("B", "")
	m.Place(0, 0, 0, a)
	m.Place(1, 0, 0, b)

	region, err := m.Make()
	if err != nil {
		t.Fatalf("Make: %v", err)
	}

	exit, ok := b.Exit(West)
	if !ok {
		t.Fatal("B should have gained a west exit")
	}
	if exit.IsLocked() {
		t.Error("the synthesized exit should copy the unlocked state")
	}

	// The pair is walkable both ways.
	if !region.Move(East) || region.CurrentRoom() != b {
		t.Fatal("moving east into B should succeed")
	}
	from, ok := b.EnteredFrom()
	if !ok || from != West {
		t.Errorf("B entered from %v, want West", from)
	}
	if !region.Move(West) || region.CurrentRoom() != a {
		t.Error("moving back west into A should succeed")
	}
}

func TestMakeCopiesLockStateToSynthesizedExit(t *testing.T) {
	m := NewRegionMaker("Gate", "")
	a := NewRoom("A", "", NewLockedExit(North))
	b := NewRoom("B", "")
	m.Place(0, 0, 0, a)
	m.Place(0, 1, 0, b)

	if _, err := m.Make(); err != nil {
		t.Fatalf("Make: %v", err)
	}

	exit, ok := b.Exit(South)
	if !ok {
		t.Fatal("B should have gained a south exit")
	}
	if !exit.IsLocked() {
		t.Error("the synthesized exit should copy the locked state")
	}
}

func TestMakeKeepsAuthoredAsymmetry(t *testing.T) {
	m := NewRegionMaker("Cliff", "")
	top := NewRoom("Top", "", NewExit(East))
	ledge := NewRoom("Ledge", "", NewLockedExit(West))
	m.Place(0, 0, 0, top)
	m.Place(1, 0, 0, ledge)

	region, err := m.Make()
	if err != nil {
		t.Fatalf("Make: %v", err)
	}

	// The ledge's own locked exit is kept, not overwritten.
	back, _ := ledge.Exit(West)
	if !back.IsLocked() {
		t.Error("the authored locked exit must survive linking")
	}
	if !region.Move(East) {
		t.Fatal("the open way in should work")
	}
	if region.Move(West) {
		t.Error("the locked way back must not work")
	}
}

func TestMakeRejectsDanglingExit(t *testing.T) {
	m := NewRegionMaker("Void", "")
	m.Place(0, 0, 0, NewRoom("Edge", "", NewExit(North)))

	_, err := m.Make()
	if err == nil {
		t.Fatal("an exit into an empty cell should fail construction")
	}
	if !strings.Contains(err.Error(), "north exit leading nowhere") {
		t.Errorf("error should name the dangling exit: %v", err)
	}
}

func TestMakeAtRequiresRoomAtStart(t *testing.T) {
	m := NewRegionMaker("Sparse", "")
	m.Place(0, 0, 0, NewRoom("Lone", ""))

	if _, err := m.MakeAt(5, 5, 0); err == nil {
		t.Error("MakeAt should fail when no room sits at the start coordinate")
	}
	region, err := m.MakeAt(0, 0, 0)
	if err != nil {
		t.Fatalf("MakeAt: %v", err)
	}
	if region.CurrentRoom() == nil {
		t.Error("the start room should be current")
	}
}

func TestMakeEmptyRegionFails(t *testing.T) {
	if _, err := NewRegionMaker("Empty", "").Make(); err == nil {
		t.Error("an empty maker should fail")
	}
}

func TestOverworldMaker(t *testing.T) {
	first := NewRegionMaker("First", "")
	first.Place(0, 0, 0, NewRoom("One", ""))
	second := NewRegionMaker("Second", "")
	second.Place(0, 0, 0, NewRoom("Two", ""))

	om := NewOverworldMaker(first)
	om.Add(second)

	o, err := om.Make()
	if err != nil {
		t.Fatalf("Make: %v", err)
	}
	if len(o.Regions()) != 2 {
		t.Fatalf("overworld has %d regions, want 2", len(o.Regions()))
	}
	if o.CurrentRegion().Identifier().Name() != "First" {
		t.Error("the first region should start current")
	}
}
