// Package flytrap implements the flytrap, a rooted species that spins in
// place and snaps at anything that wanders in front of it.
package flytrap

import (
	"github.com/vovakirdan/critters/internal/core"
	"github.com/vovakirdan/critters/internal/critter"
	"github.com/vovakirdan/critters/internal/registry"
)

const Name = "FlyTrap"

type FlyTrap struct{}

func New() FlyTrap {
	return FlyTrap{}
}

func (FlyTrap) Decide(info critter.Perception) core.Action {
	if info.Front() == core.NeighborOther {
		return core.ActionInfect
	}
	return core.ActionLeft
}

func (FlyTrap) Color() core.Color { return core.ColorRed }
func (FlyTrap) String() string    { return "T" }

func init() {
	registry.Register(critter.Descriptor{
		Name:        Name,
		Description: "Never moves, spins left and infects whatever is in front",
		New:         func() critter.Critter { return New() },
	})
}
