package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/antonia-04/Joc-Sortari-portofoliu-IAC/internal/algorithm"
	"github.com/antonia-04/Joc-Sortari-portofoliu-IAC/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats [algorithm]",
	Short: "Show recorded results",
	Long: `Display recent results for the specified algorithm, or a summary
across all algorithms when no algorithm is given.

Examples:
  sortari stats
  sortari stats bubble`,
	Args: cobra.MaximumNArgs(1),
	Run:  runStats,
}

func runStats(cmd *cobra.Command, args []string) {
	// Open result storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		printSummary(store)
		return
	}

	algorithmID := args[0]

	// Check if algorithm exists
	if !algorithm.Exists(algorithmID) {
		fmt.Fprintf(os.Stderr, "Error: unknown algorithm %q\n", algorithmID)
		fmt.Fprintln(os.Stderr, "Run 'sortari list' to see available algorithms.")
		os.Exit(1)
	}

	desc, err := algorithm.Lookup(algorithmID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	results, err := store.RecentResults(algorithmID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Recent Results - %s\n", desc.Name)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'sortari play %s' to record the first one!\n", algorithmID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-6s  %-6s  %-6s  %-6s  %s\n", "#", "Eff%", "Moves", "Wrong", "Time", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-6s  %-6s  %s\n", "-", "----", "-----", "-----", "----", "----")

	// Print results
	for i, entry := range results {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		timeStr := fmt.Sprintf("%d:%02d", entry.DurationSecs/60, entry.DurationSecs%60)
		fmt.Printf("  %-4d  %-6d  %-6d  %-6d  %-6s  %s\n",
			i+1, entry.Efficiency, entry.TotalMoves, entry.IncorrectMoves, timeStr, dateStr)
	}

	fmt.Println()
	best, err := store.BestEfficiency(algorithmID)
	if err == nil && best > 0 {
		fmt.Printf("Best efficiency: %d%%\n", best)
	}
}

// printSummary prints per-algorithm aggregates across all recorded games.
func printSummary(store *storage.Store) {
	all, err := store.GetAllAlgorithmStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Results Summary")
	fmt.Println()

	if len(all) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Play 'sortari play' to record the first one!")
		return
	}

	fmt.Printf("  %-12s  %-6s  %-6s  %-6s  %s\n", "Algorithm", "Games", "Best%", "Avg%", "Fastest")
	fmt.Printf("  %-12s  %-6s  %-6s  %-6s  %s\n", "---------", "-----", "-----", "----", "-------")

	// Iterate in registry order for stable output
	for _, d := range algorithm.List() {
		st, ok := all[d.ID]
		if !ok {
			continue
		}
		fastest := fmt.Sprintf("%d:%02d", st.BestDuration/60, st.BestDuration%60)
		fmt.Printf("  %-12s  %-6d  %-6d  %-6.0f  %s\n",
			d.ID, st.GamesCount, st.BestEfficiency, st.AvgEfficiency, fastest)
	}
}
