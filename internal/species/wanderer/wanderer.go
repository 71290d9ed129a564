// Package wanderer implements a skittish species that reads the threat
// flags: it runs from attackers and only fights what it can strike first.
package wanderer

import (
	"github.com/vovakirdan/critters/internal/core"
	"github.com/vovakirdan/critters/internal/critter"
	"github.com/vovakirdan/critters/internal/registry"
)

const Name = "Wanderer"

// Wanderer remembers whether its last move was a hop, which decides
// whether it wins the strike order against a neighbor.
type Wanderer struct {
	hopped  bool
	fleeing bool
}

func New() *Wanderer {
	return &Wanderer{}
}

func (w *Wanderer) Decide(info critter.Perception) core.Action {
	action := w.choose(info)
	w.hopped = action == core.ActionHop
	return action
}

func (w *Wanderer) choose(info critter.Perception) core.Action {
	w.fleeing = false
	switch info.Front() {
	case core.NeighborOther:
		if w.hopped || !info.FrontThreat() {
			return core.ActionInfect
		}
		// Facing an attacker without the hop advantage
		if turn, ok := openSide(info); ok {
			return turn
		}
		return core.ActionInfect
	case core.NeighborEmpty:
		w.fleeing = info.BackThreat() || info.LeftThreat() || info.RightThreat()
		return core.ActionHop
	}
	if turn, ok := openSide(info); ok {
		return turn
	}
	return core.ActionRight
}

func openSide(info critter.Perception) (core.Action, bool) {
	switch {
	case info.Left() == core.NeighborEmpty:
		return core.ActionLeft, true
	case info.Right() == core.NeighborEmpty:
		return core.ActionRight, true
	}
	return core.ActionNone, false
}

func (w *Wanderer) Color() core.Color {
	if w.hopped {
		return core.ColorBrightYellow
	}
	return core.ColorYellow
}

func (w *Wanderer) String() string {
	if w.fleeing {
		return "!"
	}
	return "W"
}

func init() {
	registry.Register(critter.Descriptor{
		Name:        Name,
		Description: "Runs from threats, strikes first when it can, turns toward open space",
		New:         func() critter.Critter { return New() },
	})
}
