package core

// Action is the move a critter returns from its decision function.
type Action int

const (
	ActionNone   Action = iota // Stay put
	ActionLeft                 // Rotate counter-clockwise
	ActionRight                // Rotate clockwise
	ActionHop                  // Move one cell forward if it is empty
	ActionInfect               // Convert the critter in front
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "NONE"
	case ActionLeft:
		return "LEFT"
	case ActionRight:
		return "RIGHT"
	case ActionHop:
		return "HOP"
	case ActionInfect:
		return "INFECT"
	default:
		return "UNKNOWN"
	}
}

// Neighbor classifies the cell adjacent to a critter.
type Neighbor int

const (
	NeighborWall  Neighbor = iota // Outside the board
	NeighborEmpty                 // In bounds, unoccupied
	NeighborSame                  // Occupied by the same species
	NeighborOther                 // Occupied by a different species
)

// String returns the upper-case neighbor name.
func (n Neighbor) String() string {
	switch n {
	case NeighborWall:
		return "WALL"
	case NeighborEmpty:
		return "EMPTY"
	case NeighborSame:
		return "SAME"
	case NeighborOther:
		return "OTHER"
	default:
		return "UNKNOWN"
	}
}
