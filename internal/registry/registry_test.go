package registry

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/critters/internal/core"
	"github.com/vovakirdan/critters/internal/critter"
)

type stub struct{ flag bool }

func (stub) Decide(critter.Perception) core.Action { return core.ActionNone }
func (stub) Color() core.Color                     { return core.ColorDefault }
func (s stub) String() string {
	if s.flag {
		return "T"
	}
	return "F"
}

func newStub() critter.Critter { return stub{} }

func TestRegisterAndList(t *testing.T) {
	r := New()
	r.Register(critter.Descriptor{Name: "Zebra", New: newStub})
	r.Register(critter.Descriptor{Name: "Ant", New: newStub})

	list := r.List()
	if len(list) != 2 {
		t.Fatalf("List() returned %d species, expected 2", len(list))
	}
	if list[0].Name != "Ant" || list[1].Name != "Zebra" {
		t.Errorf("List() not sorted by name: %+v", list)
	}
	if !r.Exists("Ant") || r.Exists("Bee") {
		t.Error("Exists() gave wrong answers")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	r := New()
	r.Register(critter.Descriptor{Name: "Ant", New: newStub})

	defer func() {
		if recover() == nil {
			t.Error("Register should panic on duplicate name")
		}
	}()
	r.Register(critter.Descriptor{Name: "Ant", New: newStub})
}

func TestRegisterInvalidPanics(t *testing.T) {
	r := New()
	defer func() {
		if recover() == nil {
			t.Error("Register should panic on descriptor without constructor")
		}
	}()
	r.Register(critter.Descriptor{Name: "Ghost"})
}

func TestFactoryConstruct(t *testing.T) {
	r := New()
	r.Register(critter.Descriptor{Name: "Ant", New: newStub})
	f := r.Factory(rand.New(rand.NewSource(1)))

	c, err := f.Construct("Ant")
	if err != nil {
		t.Fatalf("Construct(Ant) failed: %v", err)
	}
	if c.String() != "F" {
		t.Errorf("Construct(Ant) built %q, expected F", c.String())
	}
}

func TestFactoryUnknownSpecies(t *testing.T) {
	f := New().Factory(rand.New(rand.NewSource(1)))

	_, err := f.Construct("Ghost")
	var ce *critter.ConstructionError
	if !errors.As(err, &ce) {
		t.Fatalf("expected ConstructionError, got %v", err)
	}
	if !errors.Is(err, ErrUnknownSpecies) {
		t.Errorf("expected ErrUnknownSpecies, got %v", err)
	}
}

func TestFactoryConstructorPanic(t *testing.T) {
	r := New()
	r.Register(critter.Descriptor{Name: "Bomb", New: func() critter.Critter { panic("kaboom") }})
	f := r.Factory(rand.New(rand.NewSource(1)))

	_, err := f.Construct("Bomb")
	var ce *critter.ConstructionError
	if !errors.As(err, &ce) || ce.Species != "Bomb" {
		t.Fatalf("expected ConstructionError for Bomb, got %v", err)
	}
}

func TestFactoryConstructorNil(t *testing.T) {
	r := New()
	r.Register(critter.Descriptor{Name: "Void", New: func() critter.Critter { return nil }})
	f := r.Factory(rand.New(rand.NewSource(1)))

	if _, err := f.Construct("Void"); err == nil {
		t.Error("Construct should fail when the constructor returns nil")
	}
}

func TestFactoryCoinFlip(t *testing.T) {
	r := New()
	r.Register(critter.Descriptor{
		Name:        "Coin",
		Mode:        critter.ModeCoinFlip,
		NewWithFlag: func(flag bool) critter.Critter { return stub{flag: flag} },
	})
	f := r.Factory(rand.New(rand.NewSource(7)))

	seen := map[string]int{}
	for i := 0; i < 200; i++ {
		c, err := f.Construct("Coin")
		if err != nil {
			t.Fatalf("Construct(Coin) failed: %v", err)
		}
		seen[c.String()]++
	}

	// Both sides should come up with a fair coin over 200 flips
	if seen["T"] == 0 || seen["F"] == 0 {
		t.Errorf("coin flip never varied: %v", seen)
	}
}
