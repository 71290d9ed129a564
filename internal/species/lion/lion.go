// Package lion implements the lion species.
package lion

import (
	"github.com/vovakirdan/critters/internal/core"
	"github.com/vovakirdan/critters/internal/critter"
	"github.com/vovakirdan/critters/internal/registry"
)

const Name = "Lion"

// colorCycle is the order lions change coat, once every three moves.
var colorCycle = [...]core.Color{core.ColorRed, core.ColorGreen, core.ColorBlue}

// Lion hunts along walls and cycles its color.
type Lion struct {
	moves int
}

func New() *Lion {
	return &Lion{}
}

func (l *Lion) Decide(info critter.Perception) core.Action {
	l.moves++
	switch {
	case info.Front() == core.NeighborOther:
		return core.ActionInfect
	case info.Front() == core.NeighborWall || info.Right() == core.NeighborWall:
		return core.ActionLeft
	case info.Front() == core.NeighborSame:
		return core.ActionRight
	default:
		return core.ActionHop
	}
}

func (l *Lion) Color() core.Color {
	return colorCycle[(l.moves/3)%len(colorCycle)]
}

func (l *Lion) String() string {
	return "L"
}

func init() {
	registry.Register(critter.Descriptor{
		Name:        Name,
		Description: "Follows walls counter-clockwise, cycles red, green and blue",
		New:         func() critter.Critter { return New() },
	})
}
