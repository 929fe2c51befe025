package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/antonia-04/Joc-Sortari-portofoliu-IAC/internal/platform/tui"
	"github.com/antonia-04/Joc-Sortari-portofoliu-IAC/internal/session"
	"github.com/antonia-04/Joc-Sortari-portofoliu-IAC/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the trainer with an algorithm picker menu",
	Long: `Start the trainer in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to start training.
After a game ends you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Start training
  Tab          - Result history
  Q            - Quit

Examples:
  sortari menu
  sortari menu --difficulty easy
  sortari menu --db ./results.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runMenu(_ *cobra.Command, _ []string) {
	seqCfg, err := loadSequenceConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Open result storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		store = nil
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(width, height)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		if menuResult.Quit {
			break
		}

		if menuResult.WantsHistory {
			goBack, histErr := tui.RunHistory(store, width, height)
			if histErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", histErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from history
		}

		game := session.New(session.Options{
			Seed:     flagSeed,
			Sequence: seqCfg,
		})

		backToMenu, runErr := tui.RunTrainer(game, store, menuResult.AlgorithmID, width, height)
		if runErr != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
			break
		}
		if !backToMenu {
			break
		}

		// Loop back to menu
	}

	// Cleanup
	if store != nil {
		store.Close()
	}
}
