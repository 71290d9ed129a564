// Package config provides YAML-based world configuration: board size,
// starting populations, fixed placements and playback speed.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/critters/internal/core"
)

// WorldConfig contains everything needed to set up and run a world.
type WorldConfig struct {
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	Seed         int64   `yaml:"seed"`          // 0 = random based on time
	HopAdvantage float64 `yaml:"hop_advantage"` // Chance a standing attacker is repelled
	TickRate     int     `yaml:"tick_rate"`     // Turns per second in the viewer
	Turns        int     `yaml:"turns"`         // Turns for headless runs

	Populations []Population `yaml:"populations"`
	Placements  []Placement  `yaml:"placements"`
}

// Population places Count critters of a species at random cells.
type Population struct {
	Species string `yaml:"species"`
	Count   int    `yaml:"count"`
}

// Placement puts a single critter at a fixed cell.
type Placement struct {
	Species string `yaml:"species"`
	X       int    `yaml:"x"`
	Y       int    `yaml:"y"`
	Facing  string `yaml:"facing"` // north, east, south or west
}

// Direction parses the placement facing. An empty facing means north.
func (p Placement) Direction() (core.Direction, error) {
	if p.Facing == "" {
		return core.North, nil
	}
	d, ok := core.ParseDirection(p.Facing)
	if !ok {
		return core.North, fmt.Errorf("unknown facing %q", p.Facing)
	}
	return d, nil
}

// Total returns the number of critters the config places.
func (c WorldConfig) Total() int {
	n := len(c.Placements)
	for _, p := range c.Populations {
		n += p.Count
	}
	return n
}

// Validate checks the config for values no world can be built from.
// All problems are reported together.
func (c WorldConfig) Validate() error {
	var errs []error

	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("board size %dx%d must be positive", c.Width, c.Height))
	}
	if c.HopAdvantage < 0 || c.HopAdvantage > 1 {
		errs = append(errs, fmt.Errorf("hop_advantage %v outside [0, 1]", c.HopAdvantage))
	}
	if c.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick_rate %d must be positive", c.TickRate))
	}
	if c.Turns < 0 {
		errs = append(errs, fmt.Errorf("turns %d must not be negative", c.Turns))
	}

	for i, p := range c.Populations {
		if p.Species == "" {
			errs = append(errs, fmt.Errorf("populations[%d]: missing species", i))
		}
		if p.Count < 0 {
			errs = append(errs, fmt.Errorf("populations[%d]: negative count %d for %s", i, p.Count, p.Species))
		}
	}

	taken := make(map[core.Coord]int)
	for i, p := range c.Placements {
		if p.Species == "" {
			errs = append(errs, fmt.Errorf("placements[%d]: missing species", i))
		}
		if _, err := p.Direction(); err != nil {
			errs = append(errs, fmt.Errorf("placements[%d]: %w", i, err))
		}
		at := core.C(p.X, p.Y)
		if p.X < 0 || p.X >= c.Width || p.Y < 0 || p.Y >= c.Height {
			errs = append(errs, fmt.Errorf("placements[%d]: %v outside %dx%d board", i, at, c.Width, c.Height))
		}
		if prev, dup := taken[at]; dup {
			errs = append(errs, fmt.Errorf("placements[%d]: %v already used by placements[%d]", i, at, prev))
		}
		taken[at] = i
	}

	if c.Width > 0 && c.Height > 0 && c.Total() > c.Width*c.Height {
		errs = append(errs, fmt.Errorf("%d critters do not fit on a %dx%d board", c.Total(), c.Width, c.Height))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
