package world

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/critters/internal/core"
	"github.com/vovakirdan/critters/internal/critter"
)

// scripted replays a fixed list of moves, then repeats the last one.
type scripted struct {
	moves    []core.Action
	decided  int
	lastSeen critter.Perception
}

func (s *scripted) Decide(info critter.Perception) core.Action {
	s.lastSeen = info
	if len(s.moves) == 0 {
		return core.ActionNone
	}
	i := s.decided
	if i >= len(s.moves) {
		i = len(s.moves) - 1
	}
	s.decided++
	return s.moves[i]
}

func (s *scripted) Color() core.Color { return core.ColorCyan }

// String reports how many decisions the critter has made.
func (s *scripted) String() string {
	return string(rune('0' + s.decided%10))
}

// hunter infects anything in front, hops into space, otherwise turns.
type hunter struct{}

func (hunter) Decide(info critter.Perception) core.Action {
	switch info.Front() {
	case core.NeighborOther:
		return core.ActionInfect
	case core.NeighborEmpty:
		return core.ActionHop
	case core.NeighborSame:
		return core.ActionRight
	default:
		return core.ActionLeft
	}
}

func (hunter) Color() core.Color { return core.ColorRed }
func (hunter) String() string    { return "H" }

// testFactory builds critters from per-species constructors.
type testFactory map[string]func() critter.Critter

func (f testFactory) Construct(species string) (critter.Critter, error) {
	ctor, ok := f[species]
	if !ok {
		return nil, errors.New("no such species")
	}
	return ctor(), nil
}

func script(moves ...core.Action) func() critter.Critter {
	return func() critter.Critter { return &scripted{moves: moves} }
}

func newTestWorld(t *testing.T, w, h int, seed int64, factory critter.Factory) *World {
	t.Helper()
	opts := DefaultOptions(w, h)
	opts.Rand = rand.New(rand.NewSource(seed))
	opts.Factory = factory
	world, err := New(opts)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	t.Cleanup(world.Close)
	return world
}

func mustSpawn(t *testing.T, w *World, species string, x, y int, facing core.Direction) ID {
	t.Helper()
	id, err := w.Spawn(species, core.C(x, y), facing)
	if err != nil {
		t.Fatalf("Spawn(%s, %d, %d) failed: %v", species, x, y, err)
	}
	return id
}

func mustAdvance(t *testing.T, w *World) {
	t.Helper()
	if err := w.Advance(); err != nil {
		t.Fatalf("Advance() failed: %v", err)
	}
	if err := w.CheckInvariants(); err != nil {
		t.Fatalf("invariants broken after turn %d: %v", w.Turn(), err)
	}
}

// fixedOrder makes the turn order follow ids; IDs not listed keep their
// relative order after the listed ones.
func fixedOrder(ids ...ID) func([]ID) {
	return func(order []ID) {
		rank := make(map[ID]int, len(ids))
		for i, id := range ids {
			rank[id] = i + 1
		}
		out := make([]ID, 0, len(order))
		for _, id := range ids {
			for _, o := range order {
				if o == id {
					out = append(out, o)
				}
			}
		}
		for _, o := range order {
			if rank[o] == 0 {
				out = append(out, o)
			}
		}
		copy(order, out)
	}
}

func countsOf(w *World) map[string]int {
	out := make(map[string]int)
	for _, sc := range w.Counts() {
		out[sc.Species] = sc.Count
	}
	return out
}
