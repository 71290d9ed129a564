package main

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/critters/internal/config"
	"github.com/vovakirdan/critters/internal/registry"
	"github.com/vovakirdan/critters/internal/storage"
	"github.com/vovakirdan/critters/internal/world"
)

func newLogger(w io.Writer, level log.Level) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "critters",
	})
	l.SetLevel(level)
	return l
}

// worldFlags are the per-command overrides for the loaded config.
type worldFlags struct {
	width  int
	height int
	turns  int
	fps    int
	preset string
}

func (f *worldFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.width, "width", 0, "Board width (overrides config)")
	cmd.Flags().IntVar(&f.height, "height", 0, "Board height (overrides config)")
	cmd.Flags().IntVar(&f.turns, "turns", 0, "Number of turns (overrides config)")
	cmd.Flags().IntVar(&f.fps, "fps", 0, "Turns per second in the viewer (overrides config)")
	cmd.Flags().StringVar(&f.preset, "preset", "", fmt.Sprintf("Scenario preset: %v", config.Presets()))
}

// apply copies every flag the user set onto cfg. Board size is applied
// before the preset so presets scale to the requested board.
func (f *worldFlags) apply(cmd *cobra.Command, cfg *config.WorldConfig) error {
	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Width = f.width
	}
	if flags.Changed("height") {
		cfg.Height = f.height
	}
	if f.preset != "" {
		if err := config.ApplyPreset(cfg, config.Preset(f.preset)); err != nil {
			return err
		}
	}
	if flags.Changed("turns") {
		cfg.Turns = f.turns
	}
	if flags.Changed("fps") {
		cfg.TickRate = f.fps
	}
	return nil
}

// loadWorldConfig loads the config file, applies flag overrides, resolves
// the seed and validates the result.
func loadWorldConfig(cmd *cobra.Command, f *worldFlags) (config.WorldConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if err := f.apply(cmd, &cfg); err != nil {
		return cfg, err
	}

	if flagSeed != 0 {
		cfg.Seed = flagSeed
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	if err := checkSpecies(cfg, registry.Exists); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// checkSpecies reports the first species name in cfg that is not registered.
func checkSpecies(cfg config.WorldConfig, known func(string) bool) error {
	for _, p := range cfg.Placements {
		if !known(p.Species) {
			return fmt.Errorf("unknown species %q (run 'critters species' to list them)", p.Species)
		}
	}
	for _, p := range cfg.Populations {
		if !known(p.Species) {
			return fmt.Errorf("unknown species %q (run 'critters species' to list them)", p.Species)
		}
	}
	return nil
}

// buildWorld creates and populates a world from cfg. The caller must Close it.
func buildWorld(cfg config.WorldConfig, l *log.Logger) (*world.World, error) {
	w, err := world.New(world.Options{
		Width:        cfg.Width,
		Height:       cfg.Height,
		HopAdvantage: cfg.HopAdvantage,
		Rand:         rand.New(rand.NewSource(cfg.Seed)),
		Logger:       l,
	})
	if err != nil {
		return nil, err
	}
	if err := w.Populate(cfg); err != nil {
		w.Close()
		return nil, err
	}
	return w, nil
}

// runRecord summarizes a finished world for the history store.
func runRecord(cfg config.WorldConfig, initial []world.SpeciesCount, w *world.World) storage.RunRecord {
	rec := storage.RunRecord{
		Seed:   cfg.Seed,
		Width:  w.Width(),
		Height: w.Height(),
		Turns:  w.Turn(),
	}

	start := make(map[string]int, len(initial))
	for _, sc := range initial {
		start[sc.Species] = sc.Count
	}
	for _, sc := range w.Counts() {
		rec.Populations = append(rec.Populations, storage.PopulationEntry{
			Species: sc.Species,
			Initial: start[sc.Species],
			Final:   sc.Count,
		})
	}
	return rec
}

// saveRun records a run in the history database. Failures are logged and
// otherwise ignored; the run itself already completed.
func saveRun(rec storage.RunRecord) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run history", "db", flagDBPath, "error", err)
		return
	}
	defer store.Close()

	id, err := store.SaveRun(rec)
	if err != nil {
		logger.Warn("could not record run", "error", err)
		return
	}
	logger.Info("run recorded", "id", id, "winner", rec.Winner())
}

// printPopulations writes a start/end table of every species.
func printPopulations(out io.Writer, rec storage.RunRecord) {
	maxNameLen := len("Species")
	for _, p := range rec.Populations {
		if len(p.Species) > maxNameLen {
			maxNameLen = len(p.Species)
		}
	}

	fmt.Fprintf(out, "  %-*s  %6s  %6s\n", maxNameLen, "Species", "Start", "End")
	fmt.Fprintf(out, "  %-*s  %6s  %6s\n", maxNameLen, "-------", "-----", "---")
	for _, p := range rec.Populations {
		fmt.Fprintf(out, "  %-*s  %6d  %6d\n", maxNameLen, p.Species, p.Initial, p.Final)
	}

	fmt.Fprintln(out)
	if winner := rec.Winner(); winner != "" {
		fmt.Fprintf(out, "Leader after %d turns: %s\n", rec.Turns, winner)
	} else {
		fmt.Fprintf(out, "No single leader after %d turns.\n", rec.Turns)
	}
}
