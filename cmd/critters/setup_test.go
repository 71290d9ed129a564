package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/critters/internal/config"
	"github.com/vovakirdan/critters/internal/world"
)

func TestWorldFlagsApply(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, cfg config.WorldConfig)
	}{
		{
			name: "no flags keeps config",
			args: nil,
			check: func(t *testing.T, cfg config.WorldConfig) {
				if cfg.Width != 60 || cfg.Turns != 1000 || cfg.TickRate != 10 {
					t.Errorf("config changed: %+v", cfg)
				}
			},
		},
		{
			name: "explicit zero is still an override",
			args: []string{"--turns", "0"},
			check: func(t *testing.T, cfg config.WorldConfig) {
				if cfg.Turns != 0 {
					t.Errorf("Turns = %d, expected 0", cfg.Turns)
				}
			},
		},
		{
			name: "size and speed",
			args: []string{"--width", "20", "--height", "10", "--fps", "30"},
			check: func(t *testing.T, cfg config.WorldConfig) {
				if cfg.Width != 20 || cfg.Height != 10 || cfg.TickRate != 30 {
					t.Errorf("got %dx%d at %d/s", cfg.Width, cfg.Height, cfg.TickRate)
				}
			},
		},
		{
			name: "preset scales to the overridden board",
			args: []string{"--width", "10", "--height", "10", "--preset", "duel"},
			check: func(t *testing.T, cfg config.WorldConfig) {
				if len(cfg.Populations) != 2 || cfg.Populations[0].Count != 5 {
					t.Errorf("Populations = %v, expected two species of 5", cfg.Populations)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var f worldFlags
			cmd := &cobra.Command{Use: "test"}
			f.register(cmd)
			if err := cmd.ParseFlags(tc.args); err != nil {
				t.Fatalf("ParseFlags() failed: %v", err)
			}

			cfg := config.DefaultWorldConfig()
			if err := f.apply(cmd, &cfg); err != nil {
				t.Fatalf("apply() failed: %v", err)
			}
			tc.check(t, cfg)
		})
	}
}

func TestWorldFlagsUnknownPreset(t *testing.T) {
	var f worldFlags
	cmd := &cobra.Command{Use: "test"}
	f.register(cmd)
	if err := cmd.ParseFlags([]string{"--preset", "chaos"}); err != nil {
		t.Fatal(err)
	}
	cfg := config.DefaultWorldConfig()
	if err := f.apply(cmd, &cfg); err == nil {
		t.Error("unknown preset should fail")
	}
}

func TestCheckSpecies(t *testing.T) {
	known := func(name string) bool { return name == "Bear" || name == "Lion" }

	ok := config.WorldConfig{Populations: []config.Population{{Species: "Bear", Count: 1}}}
	if err := checkSpecies(ok, known); err != nil {
		t.Errorf("checkSpecies() = %v", err)
	}

	bad := config.WorldConfig{
		Populations: []config.Population{{Species: "Bear", Count: 1}},
		Placements:  []config.Placement{{Species: "Dragon"}},
	}
	err := checkSpecies(bad, known)
	if err == nil || !strings.Contains(err.Error(), "Dragon") {
		t.Errorf("checkSpecies() = %v, expected Dragon to be reported", err)
	}
}

func TestBuildWorldAndRecord(t *testing.T) {
	cfg := config.WorldConfig{
		Width:        8,
		Height:       8,
		Seed:         3,
		HopAdvantage: 0.2,
		TickRate:     10,
		Populations: []config.Population{
			{Species: "Bear", Count: 5},
			{Species: "Food", Count: 5},
		},
	}

	w, err := buildWorld(cfg, newLogger(&bytes.Buffer{}, 0))
	if err != nil {
		t.Fatalf("buildWorld() failed: %v", err)
	}
	defer w.Close()

	initial := w.Counts()
	for i := 0; i < 20; i++ {
		if err := w.Advance(); err != nil {
			t.Fatal(err)
		}
	}

	rec := runRecord(cfg, initial, w)
	if rec.Turns != 20 || rec.Seed != 3 || rec.Width != 8 {
		t.Errorf("record = %+v", rec)
	}
	if rec.Survivors() != 10 {
		t.Errorf("Survivors() = %d, expected 10", rec.Survivors())
	}
	for _, p := range rec.Populations {
		if p.Initial != 5 {
			t.Errorf("%s initial = %d, expected 5", p.Species, p.Initial)
		}
	}

	var out bytes.Buffer
	printPopulations(&out, rec)
	if !strings.Contains(out.String(), "Bear") || !strings.Contains(out.String(), "Start") {
		t.Errorf("printPopulations() = %q", out.String())
	}
}

func TestBuildWorldRejectsOvercrowding(t *testing.T) {
	cfg := config.WorldConfig{
		Width: 2, Height: 2, Seed: 1, TickRate: 1,
		Populations: []config.Population{{Species: "Food", Count: 5}},
	}
	if w, err := buildWorld(cfg, newLogger(&bytes.Buffer{}, 0)); err == nil {
		w.Close()
		t.Fatal("expected capacity error")
	}

	// The failed build released the world
	w, err := world.New(world.DefaultOptions(2, 2))
	if err != nil {
		t.Fatalf("world.New() after failed build: %v", err)
	}
	w.Close()
}

func TestScenarioConfig(t *testing.T) {
	base := config.DefaultWorldConfig()
	base.Placements = []config.Placement{{Species: "Stone", X: 0, Y: 0}}

	cfg, err := scenarioConfig(base, config.PresetDuel, 7)
	if err != nil {
		t.Fatalf("scenarioConfig() failed: %v", err)
	}
	if cfg.Seed != 7 {
		t.Errorf("Seed = %d, want 7", cfg.Seed)
	}
	if len(cfg.Placements) != 0 {
		t.Error("preset should drop placements")
	}
	if len(base.Placements) != 1 || len(base.Populations) != len(config.DefaultWorldConfig().Populations) {
		t.Error("base config must not be modified")
	}

	cfg, err = scenarioConfig(base, "", 0)
	if err != nil {
		t.Fatalf("scenarioConfig() failed: %v", err)
	}
	if cfg.Seed == 0 {
		t.Error("a zero seed should be replaced")
	}
	if len(cfg.Placements) != 1 {
		t.Error("configured world should keep its placements")
	}

	if _, err := scenarioConfig(base, config.Preset("nope"), 1); err == nil {
		t.Error("unknown preset should fail")
	}
}
