// sortari is a terminal trainer for classic sorting algorithms.
//
// A game deals a short random sequence; the player swaps elements the
// way the chosen algorithm would, and the trainer checks every move
// against the algorithm's canonical swap order.
//
// Usage:
//
//	sortari list               - List available algorithms
//	sortari play [algorithm]   - Start a training game
//	sortari menu               - Interactive algorithm picker
//	sortari serve              - Start SSH server for remote play
//	sortari stats [algorithm]  - Show recorded results
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible sequences
//	--db <path>     - Set database path (default: ~/.sortari/results.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sortari",
	Short: "Sortari - Practice sorting algorithms in your terminal",
	Long: `Sortari is a terminal trainer for classic sorting algorithms.
Pick an algorithm, get a random sequence, and perform the swaps the
algorithm would perform. Every move is checked and scored.

Available commands:
  list     - Show all available algorithms
  play     - Start a training game directly
  menu     - Interactive algorithm picker menu
  serve    - Start SSH server for remote play
  stats    - View recorded results

Examples:
  sortari list
  sortari play bubble
  sortari play --difficulty hard
  sortari menu
  sortari serve --ssh :2222
  sortari stats bubble`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.sortari/results.db", "Path to results database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
}
