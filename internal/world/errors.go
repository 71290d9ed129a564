package world

import "errors"

var (
	// ErrCapacityExceeded is returned when more critters are requested than
	// there are empty cells. Callers may react; the world is unchanged.
	ErrCapacityExceeded = errors.New("world: capacity exceeded")

	// ErrDuplicateWorld is returned by New while another world is open.
	ErrDuplicateWorld = errors.New("world: only one world allowed")

	// ErrWorldBroken is returned by Advance after a turn was aborted.
	// The world state is undefined from then on.
	ErrWorldBroken = errors.New("world: broken by an aborted turn")

	// ErrOutOfBounds is returned for placements outside the board.
	ErrOutOfBounds = errors.New("world: position out of bounds")

	// ErrOccupied is returned for placements onto an occupied cell.
	ErrOccupied = errors.New("world: cell occupied")
)
