package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/antonia-04/Joc-Sortari-portofoliu-IAC/internal/algorithm"
	"github.com/antonia-04/Joc-Sortari-portofoliu-IAC/internal/config"
	"github.com/antonia-04/Joc-Sortari-portofoliu-IAC/internal/platform/tui"
	"github.com/antonia-04/Joc-Sortari-portofoliu-IAC/internal/session"
	"github.com/antonia-04/Joc-Sortari-portofoliu-IAC/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [algorithm]",
	Short: "Start a training game",
	Long: `Start a training game for the given algorithm. With no argument
an algorithm is picked at random.

Controls:
  Left/Right  - Move cursor
  Space/Enter - Select element (two selections swap)
  C           - Check whether the sequence is sorted
  N           - New game
  I           - Toggle algorithm rules
  Esc/B       - Back to menu
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - 5 elements from 1-10
  normal - 5-7 elements from 1-20
  hard   - 8-10 elements from 1-30

Examples:
  sortari play bubble
  sortari play selection --difficulty easy
  sortari play --difficulty hard
  sortari play insertion --config ./my-sortari.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

// loadSequenceConfig resolves the sequence settings from the config
// file and the difficulty flag. The preset wins over the file.
func loadSequenceConfig() (config.SequenceConfig, error) {
	cfg, err := config.LoadTrainer(flagConfig)
	if err != nil {
		return config.SequenceConfig{}, err
	}
	if flagDifficulty != "" {
		config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty))
	}
	return cfg.Sequence, nil
}

func runPlay(cmd *cobra.Command, args []string) {
	algorithmID := ""
	if len(args) > 0 {
		algorithmID = args[0]
	}

	// Check if algorithm exists
	if algorithmID != "" && !algorithm.Exists(algorithmID) {
		fmt.Fprintf(os.Stderr, "Error: unknown algorithm %q\n", algorithmID)
		fmt.Fprintln(os.Stderr, "Run 'sortari list' to see available algorithms.")
		os.Exit(1)
	}

	seqCfg, err := loadSequenceConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open result storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}

	game := session.New(session.Options{
		Seed:     flagSeed,
		Sequence: seqCfg,
	})

	_, runErr := tui.RunTrainer(game, store, algorithmID, width, height)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
