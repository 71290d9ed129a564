package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/critters/internal/platform/tui"
)

var (
	watchFlags        worldFlags
	flagPaused        bool
	flagLogFile       string
	flagWatchNoRecord bool
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch a world evolve",
	Long: `Open the terminal viewer and advance the world once per tick.

Controls:
  Space/P   - Pause and resume
  N         - Step one turn while paused
  D         - Toggle facing arrows
  +/-       - Faster/slower
  Ctrl+S    - Save a text screenshot
  ?         - More keys
  Q/Esc     - Quit

The viewer runs until you quit, or until --turns is reached when given.
The run is recorded in the history database when you quit.

Examples:
  critters watch
  critters watch --preset garden --fps 20
  critters watch --width 40 --height 20 --turns 300
  critters watch --log-file ./critters.log --log-level debug`,
	Run: runWatch,
}

func init() {
	watchFlags.register(watchCmd)
	watchCmd.Flags().BoolVar(&flagPaused, "paused", false, "Start paused")
	watchCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file while the viewer owns the terminal")
	watchCmd.Flags().BoolVar(&flagWatchNoRecord, "no-record", false, "Do not record the run in the history database")
}

func runWatch(cmd *cobra.Command, args []string) {
	cfg, err := loadWorldConfig(cmd, &watchFlags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The viewer owns the terminal, so logs go to a file or nowhere
	viewLogger := log.New(io.Discard)
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		viewLogger = newLogger(f, logger.GetLevel())
	}

	// Warn when the board will not fit; the viewer still runs
	if tw, th, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if cfg.Width+2+30 > tw || cfg.Height+4 > th {
			fmt.Fprintf(os.Stderr, "Warning: %dx%d board may not fit a %dx%d terminal\n",
				cfg.Width, cfg.Height, tw, th)
		}
	}

	w, err := buildWorld(cfg, viewLogger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating world: %v\n", err)
		os.Exit(1)
	}
	defer w.Close()

	initial := w.Counts()

	// Only an explicit --turns limits the viewer
	maxTurns := 0
	if cmd.Flags().Changed("turns") {
		maxTurns = cfg.Turns
	}

	runErr := tui.RunViewer(w, tui.ViewerOptions{
		TickRate: cfg.TickRate,
		MaxTurns: maxTurns,
		Paused:   flagPaused,
		Logger:   viewLogger,
	})

	rec := runRecord(cfg, initial, w)
	if !flagWatchNoRecord && w.Err() == nil && w.Turn() > 0 {
		saveRun(rec)
	}

	fmt.Printf("Seed %d, %dx%d board, %d turns\n\n", cfg.Seed, cfg.Width, cfg.Height, w.Turn())
	printPopulations(os.Stdout, rec)

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
