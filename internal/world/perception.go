package world

import (
	"github.com/vovakirdan/critters/internal/core"
	"github.com/vovakirdan/critters/internal/critter"
)

// Slots in clockwise order starting at the observer's facing.
const (
	slotFront = iota
	slotRight
	slotBack
	slotLeft
)

// perception is an immutable snapshot of a critter's surroundings.
// It goes stale as soon as other critters move and must not be kept
// past the turn it was built in.
type perception struct {
	facing    core.Direction
	neighbors [4]core.Neighbor
	threats   [4]bool
}

var _ critter.Perception = perception{}

func (p perception) Front() core.Neighbor      { return p.neighbors[slotFront] }
func (p perception) Right() core.Neighbor      { return p.neighbors[slotRight] }
func (p perception) Back() core.Neighbor       { return p.neighbors[slotBack] }
func (p perception) Left() core.Neighbor       { return p.neighbors[slotLeft] }
func (p perception) FrontThreat() bool         { return p.threats[slotFront] }
func (p perception) RightThreat() bool         { return p.threats[slotRight] }
func (p perception) BackThreat() bool          { return p.threats[slotBack] }
func (p perception) LeftThreat() bool          { return p.threats[slotLeft] }
func (p perception) Direction() core.Direction { return p.facing }

// perceive builds the perception for rec from the current board.
func (w *World) perceive(rec *record) perception {
	p := perception{facing: rec.facing}
	d := rec.facing
	for i := 0; i < 4; i++ {
		at := rec.pos.Step(d)
		p.neighbors[i] = w.classify(at, rec.species)
		if p.neighbors[i] == core.NeighborOther {
			other := w.mustRecordAt(at)
			// The neighbor threatens when it faces back along d.
			p.threats[i] = d == other.facing.Rotate().Rotate()
		}
		d = d.Rotate()
	}
	return p
}

func (w *World) classify(at core.Coord, species string) core.Neighbor {
	if !w.board.InBounds(at) {
		return core.NeighborWall
	}
	id, ok := w.board.Occupant(at)
	if !ok {
		return core.NeighborEmpty
	}
	if w.mustLookup(id).species == species {
		return core.NeighborSame
	}
	return core.NeighborOther
}
