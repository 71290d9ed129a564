package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/critters/internal/platform/tui"
	"github.com/vovakirdan/critters/internal/storage"
)

var (
	flagInteractive bool
	flagBySpecies   bool
	flagLimit       int
	flagClear       bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded runs",
	Long: `Display recently recorded runs, or per-species records across all runs.

Examples:
  critters history
  critters history --species
  critters history -i
  critters history --clear`,
	Run: runHistory,
}

func init() {
	historyCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse history in an interactive table")
	historyCmd.Flags().BoolVar(&flagBySpecies, "species", false, "Show per-species records instead of runs")
	historyCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of runs to show")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs")
}

func runHistory(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Run history cleared.")
		return
	}

	if flagInteractive {
		width, height := 100, 30 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if _, err := tui.RunHistory(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if flagBySpecies {
		printSpeciesStats(store)
		return
	}
	printRuns(store)
}

func printRuns(store *storage.Store) {
	runs, err := store.RecentRuns(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Recent runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Finish 'critters run' or 'critters watch' to record one!")
		return
	}

	fmt.Printf("  %-5s  %-16s  %-20s  %-9s  %6s  %-12s  %s\n", "ID", "Date", "Seed", "Board", "Turns", "Winner", "Alive")
	fmt.Printf("  %-5s  %-16s  %-20s  %-9s  %6s  %-12s  %s\n", "--", "----", "----", "-----", "-----", "------", "-----")
	for _, r := range runs {
		winner := r.Winner()
		if winner == "" {
			winner = "-"
		}
		fmt.Printf("  %-5d  %-16s  %-20d  %-9s  %6d  %-12s  %d\n",
			r.ID,
			r.CreatedAt.Format("2006-01-02 15:04"),
			r.Seed,
			fmt.Sprintf("%dx%d", r.Width, r.Height),
			r.Turns,
			winner,
			r.Survivors(),
		)
	}
}

func printSpeciesStats(store *storage.Store) {
	stats, err := store.AllSpeciesStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving species records: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Species records")
	fmt.Println()

	if len(stats) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Printf("  %-14s  %5s  %5s  %6s  %8s\n", "Species", "Runs", "Wins", "Best", "Avg")
	fmt.Printf("  %-14s  %5s  %5s  %6s  %8s\n", "-------", "----", "----", "----", "---")
	for _, st := range stats {
		fmt.Printf("  %-14s  %5d  %5d  %6d  %8.1f\n", st.Species, st.Runs, st.Wins, st.BestFinal, st.AvgFinal)
	}
}
