// Package critter defines the contracts between the simulation engine and the
// species it hosts: the decision/reporting interface each species implements,
// the read-only perception handed to it, and the factory used to build new
// instances by species name.
package critter

import (
	"github.com/vovakirdan/critters/internal/core"
)

// Critter is the capability interface every species implements.
// The engine depends only on this interface; species identity is carried
// separately as a name so same/other checks never inspect concrete types.
type Critter interface {
	// Decide returns the move for this turn. It must be a pure function of
	// the perception and the critter's own encapsulated state, and must not
	// reach the board or other critters.
	Decide(info Perception) core.Action

	// Color reports the display color. Called once per turn after combat.
	Color() core.Color

	// String reports the display string. Called once per turn after combat.
	String() string
}

// Perception is the read-only view of a critter's four neighbors.
// Left and right are relative to the critter's current facing.
type Perception interface {
	Front() core.Neighbor
	Back() core.Neighbor
	Left() core.Neighbor
	Right() core.Neighbor

	// Threat flags are true when the neighbor on that side is of another
	// species and faces back toward the observer.
	FrontThreat() bool
	BackThreat() bool
	LeftThreat() bool
	RightThreat() bool

	// Direction is the observer's own facing.
	Direction() core.Direction
}
