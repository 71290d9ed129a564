package config

import (
	_ "embed"
)

//go:embed defaults/world.yaml
var defaultWorldYAML []byte

// DefaultWorldConfig returns the built-in world configuration.
func DefaultWorldConfig() WorldConfig {
	return WorldConfig{
		Width:        60,
		Height:       40,
		HopAdvantage: 0.2,
		TickRate:     10,
		Turns:        1000,
		Populations: []Population{
			{Species: "Bear", Count: 25},
			{Species: "Lion", Count: 25},
			{Species: "Giant", Count: 25},
			{Species: "FlyTrap", Count: 25},
			{Species: "Food", Count: 25},
			{Species: "Wanderer", Count: 25},
		},
	}
}
