package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/critters/internal/config"
	"github.com/vovakirdan/critters/internal/core"
	"github.com/vovakirdan/critters/internal/platform/tui"
	"github.com/vovakirdan/critters/internal/storage"
)

var menuFlags worldFlags

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a scenario from a menu and watch it",
	Long: `Start critters in interactive menu mode.

Pick the configured world or one of the presets to open the viewer.
When you quit the viewer the run is recorded and you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Watch the scenario
  Tab          - Run history (Esc returns here)
  Q            - Quit

Examples:
  critters menu
  critters menu --width 40 --height 20 --fps 30`,
	Run: runMenu,
}

func init() {
	menuFlags.register(menuCmd)
}

func runMenu(cmd *cobra.Command, _ []string) {
	base, err := loadWorldConfig(cmd, &menuFlags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rc := core.DefaultConfig()
	rc.TickRate = base.TickRate
	rc.Seed = flagSeed
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}

	for {
		result, err := tui.RunMenu(rc)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		rc = result.Config

		if result.Quit {
			break
		}

		if result.WantsHistory {
			goBack, hErr := showHistory(rc)
			if hErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", hErr)
			}
			if goBack {
				continue
			}
			break
		}

		cfg, err := scenarioConfig(base, result.Item.Preset, rc.Seed)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		if err := watchScenario(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}
}

// scenarioConfig derives the world for one menu pick. Without a fixed
// seed every pick gets a fresh one.
func scenarioConfig(base config.WorldConfig, preset config.Preset, seed int64) (config.WorldConfig, error) {
	cfg := base
	cfg.Populations = append([]config.Population(nil), base.Populations...)
	cfg.Placements = append([]config.Placement(nil), base.Placements...)

	if preset != "" {
		if err := config.ApplyPreset(&cfg, preset); err != nil {
			return cfg, err
		}
	}
	cfg.Seed = seed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// watchScenario runs the viewer on cfg until the user quits and records
// the run.
func watchScenario(cfg config.WorldConfig) error {
	w, err := buildWorld(cfg, log.New(io.Discard))
	if err != nil {
		return err
	}
	defer w.Close()

	initial := w.Counts()
	runErr := tui.RunViewer(w, tui.ViewerOptions{TickRate: cfg.TickRate})
	if w.Err() == nil && w.Turn() > 0 {
		saveRun(runRecord(cfg, initial, w))
	}
	return runErr
}

func showHistory(rc core.RuntimeConfig) (bool, error) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return true, fmt.Errorf("opening run history: %w", err)
	}
	defer store.Close()
	return tui.RunHistory(store, rc.ScreenW, rc.ScreenH)
}
