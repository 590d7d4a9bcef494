package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hangman/internal/config"
	"github.com/vovakirdan/tui-hangman/internal/game"
	"github.com/vovakirdan/tui-hangman/internal/platform/tui"
)

var (
	flagPool       string
	flagDifficulty string
	flagWordsDir   string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a solo session",
	Long: `Start a solo hangman session.

Controls:
  a-z, -     - Guess a letter
  1/2/3      - Activate a power-up
  Esc        - Quit
  N/R        - Next word / restart (after a round ends)

Difficulty options:
  normal - 6 lives
  hard   - 4 lives
  expert - 3 lives

Word pools:
  global    - General vocabulary with dictionary clues
  countries - Country names with region clues
  any       - Both pools combined

Examples:
  hangman play
  hangman play --pool countries
  hangman play --difficulty expert
  hangman play --words-dir ./my-words`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPool, "pool", "", "Word pool: global, countries, any")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: normal, hard, expert")
	playCmd.Flags().StringVar(&flagWordsDir, "words-dir", "", "Directory with words.txt / countries.txt overrides")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	config.ApplyPreset(&cfg.Game, preset)

	pool := flagPool
	if pool == "" {
		pool = cfg.Game.Pool
	}

	logger := newLogger()
	source := newWordSource(cfg, flagWordsDir, logger)
	store := openStore(cfg)
	remote := newBackendClient(cfg, logger)

	session, err := game.NewSession(game.Config{
		Mode:             game.ModeSolo,
		Lives:            cfg.Game.Lives,
		Pool:             pool,
		Difficulty:       string(preset),
		MultiplierWindow: time.Duration(cfg.Game.MultiplierSeconds) * time.Second,
		Seed:             flagSeed,
	}, source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	executor := tui.NewExecutor(store, remote, logger)
	runErr := tui.RunPlay(session, executor)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
