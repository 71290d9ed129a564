// Package stone implements the stone species. A stone never moves but
// tries to infect whatever stands in front of it.
package stone

import (
	"github.com/vovakirdan/critters/internal/core"
	"github.com/vovakirdan/critters/internal/critter"
	"github.com/vovakirdan/critters/internal/registry"
)

const Name = "Stone"

type Stone struct{}

func New() Stone {
	return Stone{}
}

func (Stone) Decide(critter.Perception) core.Action { return core.ActionInfect }
func (Stone) Color() core.Color                     { return core.ColorGray }
func (Stone) String() string                        { return "S" }

func init() {
	registry.Register(critter.Descriptor{
		Name:        Name,
		Description: "Stays put and infects whatever is in front",
		New:         func() critter.Critter { return New() },
	})
}
