package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-hero/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List game modes",
	Long:  `Shows every registered game mode.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	modes := registry.List()
	if len(modes) == 0 {
		fmt.Println("No modes available.")
		return
	}

	idWidth := 2 // "ID" header
	for _, m := range modes {
		idWidth = max(idWidth, len(m.ID))
	}

	fmt.Printf("  %-*s  %s\n", idWidth, "ID", "Description")
	fmt.Printf("  %-*s  %s\n", idWidth, "--", "-----------")
	for _, m := range modes {
		fmt.Printf("  %-*s  %s\n", idWidth, m.ID, m.Description)
	}

	fmt.Println()
	fmt.Println("Run 'flappyhero play <id>' to play.")
}
