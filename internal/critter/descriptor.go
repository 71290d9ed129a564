package critter

import (
	"fmt"
)

// Mode selects how a Descriptor builds new instances.
type Mode int

const (
	// ModeDefault calls the no-argument constructor.
	ModeDefault Mode = iota
	// ModeCoinFlip calls the boolean-seeded constructor with a fair coin.
	ModeCoinFlip
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeDefault:
		return "default"
	case ModeCoinFlip:
		return "coin-flip"
	default:
		return "unknown"
	}
}

// Descriptor describes a species and how to construct it.
// Exactly one constructor is used, chosen by Mode.
type Descriptor struct {
	Name        string // Species name, also used for population counts
	Description string // One-line summary for listings

	Mode        Mode
	New         func() Critter          // ModeDefault
	NewWithFlag func(flag bool) Critter // ModeCoinFlip
}

// Validate reports whether the descriptor carries a usable constructor.
func (d Descriptor) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("critter: descriptor has no name")
	}
	switch d.Mode {
	case ModeDefault:
		if d.New == nil {
			return fmt.Errorf("critter: species %q: mode %s without New", d.Name, d.Mode)
		}
	case ModeCoinFlip:
		if d.NewWithFlag == nil {
			return fmt.Errorf("critter: species %q: mode %s without NewWithFlag", d.Name, d.Mode)
		}
	default:
		return fmt.Errorf("critter: species %q: unknown construction mode %d", d.Name, d.Mode)
	}
	return nil
}

// Factory builds new critter instances by species name.
// The engine calls it for initial population and for infection.
type Factory interface {
	Construct(species string) (Critter, error)
}

// FactoryFunc adapts a plain function to the Factory interface.
type FactoryFunc func(species string) (Critter, error)

// Construct calls f(species).
func (f FactoryFunc) Construct(species string) (Critter, error) {
	return f(species)
}

// ConstructionError reports that a species could not be instantiated,
// either because its descriptor lacks a usable constructor or because the
// constructor itself failed.
type ConstructionError struct {
	Species string
	Err     error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("critter: cannot construct %q: %v", e.Species, e.Err)
}

func (e *ConstructionError) Unwrap() error {
	return e.Err
}
