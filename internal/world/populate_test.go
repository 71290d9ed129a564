package world

import (
	"errors"
	"testing"

	"github.com/vovakirdan/critters/internal/config"
	"github.com/vovakirdan/critters/internal/core"
)

func TestPopulate(t *testing.T) {
	w := newTestWorld(t, 6, 6, 5, testFactory{"X": script(), "Y": script()})

	cfg := config.WorldConfig{
		Width:  6,
		Height: 6,
		Placements: []config.Placement{
			{Species: "Y", X: 2, Y: 3, Facing: "east"},
			{Species: "X", X: 0, Y: 0},
		},
		Populations: []config.Population{{Species: "X", Count: 4}, {Species: "Y", Count: 0}},
	}
	if err := w.Populate(cfg); err != nil {
		t.Fatalf("Populate() failed: %v", err)
	}

	placed, ok := w.At(core.C(2, 3))
	if !ok || placed.Species != "Y" || placed.Facing != core.East {
		t.Errorf("At(2,3) = %+v, expected Y facing EAST", placed)
	}
	if corner, ok := w.At(core.C(0, 0)); !ok || corner.Facing != core.North {
		t.Errorf("At(0,0) = %+v, expected X facing NORTH", corner)
	}

	counts := countsOf(w)
	if counts["X"] != 5 || counts["Y"] != 1 {
		t.Errorf("counts = %v, expected X:5 Y:1", counts)
	}
	if err := w.CheckInvariants(); err != nil {
		t.Error(err)
	}
}

func TestPopulateErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.WorldConfig
		want error
	}{
		{
			name: "placement off board",
			cfg:  config.WorldConfig{Placements: []config.Placement{{Species: "X", X: 9, Y: 0}}},
			want: ErrOutOfBounds,
		},
		{
			name: "placement collision",
			cfg: config.WorldConfig{Placements: []config.Placement{
				{Species: "X", X: 1, Y: 1}, {Species: "X", X: 1, Y: 1},
			}},
			want: ErrOccupied,
		},
		{
			name: "too many critters",
			cfg:  config.WorldConfig{Populations: []config.Population{{Species: "X", Count: 10}}},
			want: ErrCapacityExceeded,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld(t, 3, 3, 1, testFactory{"X": script()})
			if err := w.Populate(tc.cfg); !errors.Is(err, tc.want) {
				t.Errorf("Populate() error = %v, expected %v", err, tc.want)
			}
		})
	}
}
