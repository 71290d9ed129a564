package config

import (
	"fmt"
	"sort"
)

// Preset names a ready-made scenario that replaces the populations of a
// config while keeping its board size and speed.
type Preset string

const (
	PresetClassic Preset = "classic"
	PresetDuel    Preset = "duel"
	PresetGarden  Preset = "garden"
	PresetSiege   Preset = "siege"
)

// presetShares lists each preset's species with their share of the board
// in percent.
var presetShares = map[Preset][]struct {
	species string
	percent int
}{
	PresetClassic: {
		{"Bear", 1}, {"FlyTrap", 1}, {"Food", 1}, {"Giant", 1}, {"Lion", 1}, {"Wanderer", 1},
	},
	PresetDuel: {
		{"Bear", 5}, {"Lion", 5},
	},
	PresetGarden: {
		{"FlyTrap", 2}, {"Food", 15}, {"Wanderer", 3},
	},
	PresetSiege: {
		{"Giant", 4}, {"Stone", 6},
	},
}

var presetDescriptions = map[Preset]string{
	PresetClassic: "Every built-in species, evenly matched",
	PresetDuel:    "Bears against lions",
	PresetGarden:  "Flytraps and wanderers in a field of food",
	PresetSiege:   "Stones dug in against roaming giants",
}

// Description returns a one-line summary of the preset.
func (p Preset) Description() string {
	return presetDescriptions[p]
}

// Presets returns the known preset names, sorted.
func Presets() []Preset {
	out := make([]Preset, 0, len(presetShares))
	for p := range presetShares {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ApplyPreset replaces cfg's populations with the preset's, scaled to the
// board. Every listed species gets at least one critter. Fixed placements
// are dropped.
func ApplyPreset(cfg *WorldConfig, preset Preset) error {
	shares, ok := presetShares[preset]
	if !ok {
		return fmt.Errorf("config: unknown preset %q", preset)
	}

	cells := cfg.Width * cfg.Height
	cfg.Placements = nil
	cfg.Populations = make([]Population, 0, len(shares))
	for _, s := range shares {
		count := cells * s.percent / 100
		if count < 1 {
			count = 1
		}
		cfg.Populations = append(cfg.Populations, Population{Species: s.species, Count: count})
	}
	return nil
}
