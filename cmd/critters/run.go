package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var (
	runFlags        worldFlags
	flagEvery       int
	flagRunNoRecord bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a world headless",
	Long: `Run a world for a fixed number of turns without the viewer, then print
the starting and final population of every species. The run is recorded in
the history database unless --no-record is given.

Examples:
  critters run
  critters run --turns 2000 --seed 7
  critters run --preset siege --width 30 --height 20
  critters run --every 100 --config ./my-world.yaml`,
	Run: runRun,
}

func init() {
	runFlags.register(runCmd)
	runCmd.Flags().IntVar(&flagEvery, "every", 0, "Print populations every N turns (0 = only at the end)")
	runCmd.Flags().BoolVar(&flagRunNoRecord, "no-record", false, "Do not record the run in the history database")
}

func runRun(cmd *cobra.Command, args []string) {
	cfg, err := loadWorldConfig(cmd, &runFlags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	w, err := buildWorld(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating world: %v\n", err)
		os.Exit(1)
	}
	defer w.Close()

	initial := w.Counts()
	logger.Info("run starting", "seed", cfg.Seed, "board", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height),
		"critters", w.Size(), "turns", cfg.Turns)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	out := cmd.OutOrStdout()
	for w.Turn() < cfg.Turns {
		if ctx.Err() != nil {
			logger.Warn("interrupted", "turn", w.Turn())
			break
		}
		if err := w.Advance(); err != nil {
			fmt.Fprintf(os.Stderr, "Error at turn %d: %v\n", w.Turn()+1, err)
			break
		}
		if flagEvery > 0 && w.Turn()%flagEvery == 0 && w.Turn() < cfg.Turns {
			fmt.Fprintf(out, "Turn %d:", w.Turn())
			for _, sc := range w.Counts() {
				fmt.Fprintf(out, " %s=%d", sc.Species, sc.Count)
			}
			fmt.Fprintln(out)
		}
	}

	rec := runRecord(cfg, initial, w)
	fmt.Fprintf(out, "Seed %d, %dx%d board, %d turns\n\n", cfg.Seed, cfg.Width, cfg.Height, w.Turn())
	printPopulations(out, rec)

	if !flagRunNoRecord && w.Err() == nil {
		saveRun(rec)
	}
	if w.Err() != nil {
		os.Exit(1)
	}
}
