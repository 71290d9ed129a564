// Package core provides the fundamental value types shared by the simulation
// engine, the species strategies and the display layer. It has no external
// dependencies so that critter logic stays pure and testable.
package core

import (
	"fmt"
	"strings"
)

// Coord is a cell position on the board.
// X increases to the right, Y increases downward (screen coordinates).
type Coord struct {
	X, Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Step returns the neighboring coordinate one cell in the given direction.
func (c Coord) Step(d Direction) Coord {
	dx, dy := d.Delta()
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Direction is a compass facing. The values follow the clockwise cycle
// North -> East -> South -> West, so rotation is arithmetic modulo 4.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists all facings in clockwise order starting at North.
var Directions = [4]Direction{North, East, South, West}

// String returns the upper-case compass name.
func (d Direction) String() string {
	switch d {
	case North:
		return "NORTH"
	case East:
		return "EAST"
	case South:
		return "SOUTH"
	case West:
		return "WEST"
	default:
		return "UNKNOWN"
	}
}

// Rotate returns the direction one clockwise step from d.
func (d Direction) Rotate() Direction {
	return (d + 1) % 4
}

// RotateLeft returns the direction one counter-clockwise step from d
// (three clockwise steps).
func (d Direction) RotateLeft() Direction {
	return d.Rotate().Rotate().Rotate()
}

// Opposite returns the direction two rotations away.
func (d Direction) Opposite() Direction {
	return d.Rotate().Rotate()
}

// Delta returns the (dx, dy) offset of one step in this direction.
// North decreases Y, South increases Y.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// Arrow returns the single-character glyph used by the debug view.
func (d Direction) Arrow() string {
	switch d {
	case North:
		return "^"
	case East:
		return ">"
	case South:
		return "v"
	default:
		return "<"
	}
}

// ParseDirection parses a compass name (case-insensitive, full or initial).
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "NORTH", "N":
		return North, true
	case "EAST", "E":
		return East, true
	case "SOUTH", "S":
		return South, true
	case "WEST", "W":
		return West, true
	default:
		return North, false
	}
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
