package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/antonia-04/Joc-Sortari-portofoliu-IAC/internal/algorithm"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available algorithms",
	Long:  `Shows a list of all sorting algorithms available for training.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	algorithms := algorithm.List()

	if len(algorithms) == 0 {
		fmt.Println("No algorithms available.")
		return
	}

	fmt.Println("Available algorithms:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, d := range algorithms {
		if len(d.ID) > maxIDLen {
			maxIDLen = len(d.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Name")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "----")

	// Print algorithms
	for _, d := range algorithms {
		fmt.Printf("  %-*s  %s\n", maxIDLen, d.ID, d.Name)
	}

	fmt.Println()
	fmt.Println("Run 'sortari play <id>' to start training.")
}
