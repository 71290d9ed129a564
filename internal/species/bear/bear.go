// Package bear implements the bear species. Each bear is built as either a
// polar bear or a grizzly by a coin flip at construction time.
package bear

import (
	"github.com/vovakirdan/critters/internal/core"
	"github.com/vovakirdan/critters/internal/critter"
	"github.com/vovakirdan/critters/internal/registry"
)

// Name is the registered species name.
const Name = "Bear"

// Bear alternates between two glyphs every move.
type Bear struct {
	polar bool
	moves int
}

// New creates a bear. Polar bears are white, grizzlies brown.
func New(polar bool) *Bear {
	return &Bear{polar: polar}
}

// Decide infects anything hostile ahead, walks into free space and
// otherwise turns left.
func (b *Bear) Decide(info critter.Perception) core.Action {
	b.moves++
	switch info.Front() {
	case core.NeighborOther:
		return core.ActionInfect
	case core.NeighborEmpty:
		return core.ActionHop
	default:
		return core.ActionLeft
	}
}

func (b *Bear) Color() core.Color {
	if b.polar {
		return core.ColorWhite
	}
	return core.ColorOrange
}

func (b *Bear) String() string {
	if b.moves%2 == 0 {
		return "/"
	}
	return "\\"
}

// Polar reports which kind of bear this is.
func (b *Bear) Polar() bool {
	return b.polar
}

func init() {
	registry.Register(critter.Descriptor{
		Name:        Name,
		Description: "Walks straight, turns left at obstacles, coin-flip polar or grizzly",
		Mode:        critter.ModeCoinFlip,
		NewWithFlag: func(polar bool) critter.Critter { return New(polar) },
	})
}
