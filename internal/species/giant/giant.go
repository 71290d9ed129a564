// Package giant implements the giant species, which chants as it walks.
package giant

import (
	"github.com/vovakirdan/critters/internal/core"
	"github.com/vovakirdan/critters/internal/critter"
	"github.com/vovakirdan/critters/internal/registry"
)

const Name = "Giant"

// Each word is shown for wordSpan moves before moving to the next.
const wordSpan = 6

var chant = [...]string{"fee", "fie", "foe", "fum"}

type Giant struct {
	moves int
}

func New() *Giant {
	return &Giant{}
}

func (g *Giant) Decide(info critter.Perception) core.Action {
	g.moves++
	switch info.Front() {
	case core.NeighborOther:
		return core.ActionInfect
	case core.NeighborEmpty:
		return core.ActionHop
	default:
		return core.ActionRight
	}
}

func (g *Giant) Color() core.Color {
	return core.ColorGray
}

func (g *Giant) String() string {
	return chant[(g.moves/wordSpan)%len(chant)]
}

func init() {
	registry.Register(critter.Descriptor{
		Name:        Name,
		Description: "Walks straight, turns right at obstacles, chants fee-fie-foe-fum",
		New:         func() critter.Critter { return New() },
	})
}
