// Package crittertest provides helpers for testing species strategies
// without a world.
package crittertest

import (
	"github.com/vovakirdan/critters/internal/core"
	"github.com/vovakirdan/critters/internal/critter"
)

// Perception is a fixed critter.Perception built field by field.
// The zero value sees walls on every side and faces north.
type Perception struct {
	Facing core.Direction

	FrontN, BackN, LeftN, RightN core.Neighbor

	FrontT, BackT, LeftT, RightT bool
}

var _ critter.Perception = Perception{}

// Open returns a perception surrounded by empty cells.
func Open(facing core.Direction) Perception {
	return Perception{
		Facing: facing,
		FrontN: core.NeighborEmpty,
		BackN:  core.NeighborEmpty,
		LeftN:  core.NeighborEmpty,
		RightN: core.NeighborEmpty,
	}
}

// WithFront returns a copy with the front neighbor replaced.
func (p Perception) WithFront(n core.Neighbor) Perception {
	p.FrontN = n
	return p
}

func (p Perception) Front() core.Neighbor      { return p.FrontN }
func (p Perception) Back() core.Neighbor       { return p.BackN }
func (p Perception) Left() core.Neighbor       { return p.LeftN }
func (p Perception) Right() core.Neighbor      { return p.RightN }
func (p Perception) FrontThreat() bool         { return p.FrontT }
func (p Perception) BackThreat() bool          { return p.BackT }
func (p Perception) LeftThreat() bool          { return p.LeftT }
func (p Perception) RightThreat() bool         { return p.RightT }
func (p Perception) Direction() core.Direction { return p.Facing }
