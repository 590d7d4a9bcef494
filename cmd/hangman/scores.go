package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-hangman/internal/platform/tui"
	"github.com/vovakirdan/tui-hangman/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the scoreboard",
	Long: `Display the scoreboard in an interactive table.

Tab switches between the top scores and the most recent games.

Examples:
  hangman scores
  hangman scores --db ./scores.db`,
	Run: runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	store, err := storage.Open(dbPath(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	// Get terminal size
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunScoreboard(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
