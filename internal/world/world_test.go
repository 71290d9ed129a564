package world

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/critters/internal/core"
	"github.com/vovakirdan/critters/internal/critter"
)

func TestNewRejectsSecondWorld(t *testing.T) {
	w := newTestWorld(t, 4, 4, 1, testFactory{})

	if _, err := New(DefaultOptions(4, 4)); !errors.Is(err, ErrDuplicateWorld) {
		t.Fatalf("second New() error = %v, expected ErrDuplicateWorld", err)
	}

	w.Close()
	w.Close() // idempotent

	again, err := New(DefaultOptions(4, 4))
	if err != nil {
		t.Fatalf("New() after Close failed: %v", err)
	}
	again.Close()
}

func TestNewValidatesOptions(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"zero width", DefaultOptions(0, 5)},
		{"negative height", DefaultOptions(5, -1)},
		{"hop advantage above one", Options{Width: 2, Height: 2, HopAdvantage: 1.5}},
		{"negative hop advantage", Options{Width: 2, Height: 2, HopAdvantage: -0.1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, err := New(tc.opts)
			if err == nil {
				w.Close()
				t.Fatal("expected error")
			}
		})
	}
}

func TestAddPopulation(t *testing.T) {
	w := newTestWorld(t, 10, 10, 42, testFactory{"X": script()})

	if err := w.Add(5, "X"); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}

	counts := w.Counts()
	if len(counts) != 1 || counts[0] != (SpeciesCount{Species: "X", Count: 5}) {
		t.Errorf("Counts() = %v, expected [{X 5}]", counts)
	}
	if w.Size() != 5 {
		t.Errorf("Size() = %d, expected 5", w.Size())
	}
	if err := w.CheckInvariants(); err != nil {
		t.Error(err)
	}

	// Every critter has a distinct cell
	seen := map[core.Coord]bool{}
	for _, c := range w.Critters() {
		if seen[c.Pos] {
			t.Errorf("two critters at %v", c.Pos)
		}
		seen[c.Pos] = true
	}
}

func TestInfectionRoundTrip(t *testing.T) {
	w := newTestWorld(t, 10, 10, 42, testFactory{"X": script(), "Y": script()})

	if err := w.Add(5, "X"); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}
	target := w.Critters()[0]

	// A detached attacker that hopped last turn skips the strike-order roll
	attacker := &record{species: "Y", pos: target.Pos.Step(core.North), facing: core.South}
	result, err := w.infect(attacker, target.Pos, true, map[ID]struct{}{})
	if err != nil {
		t.Fatalf("infect() failed: %v", err)
	}
	if result != infectSucceeded {
		t.Fatalf("infect() = %v, expected success", result)
	}

	counts := countsOf(w)
	if counts["X"] != 4 || counts["Y"] != 1 {
		t.Errorf("Counts() = %v, expected X:4 Y:1", counts)
	}
	if w.Size() != 5 {
		t.Errorf("Size() = %d, expected 5", w.Size())
	}

	converted, ok := w.At(target.Pos)
	if !ok {
		t.Fatal("infected cell is empty")
	}
	if converted.Species != "Y" || converted.Facing != target.Facing || converted.ID == target.ID {
		t.Errorf("converted = %+v, expected Y with facing %v and a new ID", converted, target.Facing)
	}
	if _, alive := w.Lookup(target.ID); alive {
		t.Error("victim ID should be retired")
	}
	if err := w.CheckInvariants(); err != nil {
		t.Error(err)
	}
}

func TestAddCapacityExceeded(t *testing.T) {
	w := newTestWorld(t, 2, 2, 1, testFactory{"X": script()})

	if err := w.Add(5, "X"); !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("Add(5) error = %v, expected ErrCapacityExceeded", err)
	}
	if w.Size() != 0 || len(w.Counts()) != 0 {
		t.Error("failed Add must leave the world unchanged")
	}

	if err := w.Add(3, "X"); err != nil {
		t.Fatalf("Add(3) failed: %v", err)
	}
	if err := w.Add(2, "X"); !errors.Is(err, ErrCapacityExceeded) {
		t.Errorf("Add(2) error = %v, expected ErrCapacityExceeded", err)
	}
	if err := w.Add(1, "X"); err != nil {
		t.Fatalf("Add(1) filling the last cell failed: %v", err)
	}
	if countsOf(w)["X"] != 4 {
		t.Errorf("count = %d, expected 4", countsOf(w)["X"])
	}
}

func TestAddConstructionFailure(t *testing.T) {
	built := 0
	f := critter.FactoryFunc(func(species string) (critter.Critter, error) {
		built++
		if built > 2 {
			return nil, errors.New("out of clay")
		}
		return &scripted{}, nil
	})
	w := newTestWorld(t, 4, 4, 1, f)

	err := w.Add(3, "X")
	var ce *critter.ConstructionError
	if !errors.As(err, &ce) || ce.Species != "X" {
		t.Fatalf("Add() error = %v, expected ConstructionError for X", err)
	}
	if w.Size() != 0 || len(w.Counts()) != 0 {
		t.Error("failed construction must leave the world unchanged")
	}
}

func TestSpawnErrors(t *testing.T) {
	w := newTestWorld(t, 2, 1, 1, testFactory{"X": script()})

	if _, err := w.Spawn("X", core.C(2, 0), core.North); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("out of bounds error = %v", err)
	}
	mustSpawn(t, w, "X", 0, 0, core.North)
	if _, err := w.Spawn("X", core.C(0, 0), core.North); !errors.Is(err, ErrOccupied) {
		t.Errorf("occupied error = %v", err)
	}
	if _, err := w.Spawn("Nope", core.C(1, 0), core.North); err == nil {
		t.Error("unknown species should fail to spawn")
	}
	if w.Size() != 1 {
		t.Errorf("Size() = %d, expected 1", w.Size())
	}
}

func TestZeroCountSpeciesStaysListed(t *testing.T) {
	w := newTestWorld(t, 3, 1, 1, testFactory{"X": script(), "Y": script()})

	target := mustSpawn(t, w, "X", 1, 0, core.North)
	attacker := &record{species: "Y", pos: core.C(0, 0), facing: core.East}
	if _, err := w.infect(attacker, core.C(1, 0), true, map[ID]struct{}{}); err != nil {
		t.Fatal(err)
	}
	if _, alive := w.Lookup(target); alive {
		t.Fatal("target should have been replaced")
	}

	counts := w.Counts()
	if len(counts) != 2 || counts[0] != (SpeciesCount{"X", 0}) || counts[1] != (SpeciesCount{"Y", 1}) {
		t.Errorf("Counts() = %v, expected [{X 0} {Y 1}]", counts)
	}
}

func TestRefreshDisplayIdempotent(t *testing.T) {
	w := newTestWorld(t, 5, 5, 3, testFactory{"X": script(core.ActionRight), "Y": script(core.ActionHop)})
	if err := w.Add(4, "X"); err != nil {
		t.Fatal(err)
	}
	if err := w.Add(4, "Y"); err != nil {
		t.Fatal(err)
	}
	mustAdvance(t, w)
	mustAdvance(t, w)

	w.RefreshDisplay()
	first := w.Critters()
	w.RefreshDisplay()
	second := w.Critters()

	if len(first) != len(second) {
		t.Fatalf("critter count changed: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("refresh changed %+v to %+v", first[i], second[i])
		}
	}
	// Display reflects two decisions per critter
	for _, c := range second {
		if c.Display != "2" || c.Color != core.ColorCyan {
			t.Errorf("critter %d display = %q color = %v", c.ID, c.Display, c.Color)
		}
	}
}

func TestAppearanceDebugView(t *testing.T) {
	w := newTestWorld(t, 3, 3, 1, testFactory{"X": script()})
	id := mustSpawn(t, w, "X", 1, 1, core.West)

	if got := w.Appearance(id); got != "0" {
		t.Errorf("Appearance() = %q, expected the display string", got)
	}
	w.ToggleDebug()
	if !w.Debug() {
		t.Fatal("Debug() should be on")
	}
	if got := w.Appearance(id); got != "<" {
		t.Errorf("debug Appearance() = %q, expected <", got)
	}
	w.ToggleDebug()
	if got := w.Appearance(id); got != "0" {
		t.Errorf("Appearance() after toggling back = %q", got)
	}
}

func TestCrittersOrderedByPosition(t *testing.T) {
	w := newTestWorld(t, 3, 3, 1, testFactory{"X": script()})
	mustSpawn(t, w, "X", 2, 2, core.North)
	mustSpawn(t, w, "X", 0, 1, core.North)
	mustSpawn(t, w, "X", 1, 0, core.North)
	mustSpawn(t, w, "X", 0, 0, core.North)

	want := []core.Coord{core.C(0, 0), core.C(1, 0), core.C(0, 1), core.C(2, 2)}
	got := w.Critters()
	for i, c := range got {
		if c.Pos != want[i] {
			t.Errorf("Critters()[%d].Pos = %v, expected %v", i, c.Pos, want[i])
		}
	}
}

func TestDefaultFactoryUsesRegistry(t *testing.T) {
	opts := DefaultOptions(3, 3)
	opts.Rand = rand.New(rand.NewSource(1))
	w, err := New(opts)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	// Nothing is registered in this test binary
	var ce *critter.ConstructionError
	if err := w.Add(1, "Bear"); !errors.As(err, &ce) {
		t.Errorf("Add(Bear) error = %v, expected ConstructionError", err)
	}
}
