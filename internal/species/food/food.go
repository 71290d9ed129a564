// Package food implements the food species. Food never moves and never
// fights; it only exists to be infected.
package food

import (
	"github.com/vovakirdan/critters/internal/core"
	"github.com/vovakirdan/critters/internal/critter"
	"github.com/vovakirdan/critters/internal/registry"
)

const Name = "Food"

type Food struct{}

func New() Food {
	return Food{}
}

func (Food) Decide(critter.Perception) core.Action { return core.ActionNone }
func (Food) Color() core.Color                     { return core.ColorGreen }
func (Food) String() string                        { return "." }

func init() {
	registry.Register(critter.Descriptor{
		Name:        Name,
		Description: "Sits still and waits to be eaten",
		New:         func() critter.Critter { return New() },
	})
}
