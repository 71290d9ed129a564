package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/critters/internal/critter"
	"github.com/vovakirdan/critters/internal/registry"
)

var speciesCmd = &cobra.Command{
	Use:   "species",
	Short: "List all available species",
	Long:  `Shows every species registered with the simulator.`,
	Run:   runSpecies,
}

func runSpecies(cmd *cobra.Command, args []string) {
	species := registry.List()

	if len(species) == 0 {
		fmt.Println("No species available.")
		return
	}

	fmt.Println("Available species:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := len("Name")
	for _, s := range species {
		if len(s.Name) > maxNameLen {
			maxNameLen = len(s.Name)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Description")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "-----------")

	for _, s := range species {
		desc := s.Description
		if s.Mode == critter.ModeCoinFlip {
			desc += " (" + s.Mode.String() + ")"
		}
		fmt.Printf("  %-*s  %s\n", maxNameLen, s.Name, desc)
	}

	fmt.Println()
	fmt.Println("Use species names under 'populations' in a world config.")
}
