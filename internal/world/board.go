package world

import (
	"fmt"

	"github.com/vovakirdan/critters/internal/core"
)

// ID is the stable handle of a live critter. IDs are never reused;
// zero means "no critter".
type ID uint64

// Board is the fixed W×H grid. Each cell holds at most one critter ID.
// Cells are stored in row-major order: index = y*W + x.
type Board struct {
	w, h     int
	cells    []ID
	occupied int
}

// NewBoard creates an empty board with the given dimensions.
func NewBoard(w, h int) *Board {
	return &Board{
		w:     w,
		h:     h,
		cells: make([]ID, w*h),
	}
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.w
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.h
}

// Cells returns the total number of cells.
func (b *Board) Cells() int {
	return b.w * b.h
}

// Occupied returns the number of non-empty cells.
func (b *Board) Occupied() int {
	return b.occupied
}

// InBounds reports whether c lies on the board. Perception treats every
// out-of-bounds cell as a wall.
func (b *Board) InBounds(c core.Coord) bool {
	return c.X >= 0 && c.X < b.w && c.Y >= 0 && c.Y < b.h
}

func (b *Board) index(c core.Coord) int {
	if !b.InBounds(c) {
		panic(fmt.Sprintf("world: board access out of bounds at %v on %dx%d", c, b.w, b.h))
	}
	return c.Y*b.w + c.X
}

// Occupant returns the critter at c, if any. Panics if c is out of bounds.
func (b *Board) Occupant(c core.Coord) (ID, bool) {
	id := b.cells[b.index(c)]
	return id, id != 0
}

// Place puts id into the empty cell c. Panics if c is out of bounds,
// already occupied, or id is zero.
func (b *Board) Place(id ID, c core.Coord) {
	i := b.index(c)
	if id == 0 {
		panic("world: placing the zero ID")
	}
	if b.cells[i] != 0 {
		panic(fmt.Sprintf("world: placing %d onto %v occupied by %d", id, c, b.cells[i]))
	}
	b.cells[i] = id
	b.occupied++
}

// Vacate empties cell c. Vacating an empty cell is a no-op.
// Panics if c is out of bounds.
func (b *Board) Vacate(c core.Coord) {
	i := b.index(c)
	if b.cells[i] != 0 {
		b.cells[i] = 0
		b.occupied--
	}
}
