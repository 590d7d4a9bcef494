package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hangman/internal/game"
	"github.com/vovakirdan/tui-hangman/internal/platform/tui"
)

var (
	flagPlayers   string
	flagMultiPool string
)

var multiCmd = &cobra.Command{
	Use:   "multi",
	Short: "Play local pass-the-keyboard multiplayer",
	Long: `Start a local multiplayer session. Players share one keyboard
and take turns; a wrong guess passes the turn to the next player,
and the player who completes the word wins the round.

There are no lives, scores or power-ups in this mode.

Examples:
  hangman multi --players alice,bob
  hangman multi --players alice,bob,carol --pool countries`,
	Run: runMulti,
}

func init() {
	multiCmd.Flags().StringVar(&flagPlayers, "players", "", "Comma-separated player names (at least two)")
	multiCmd.Flags().StringVar(&flagMultiPool, "pool", "", "Word pool: global, countries, any")
}

func runMulti(cmd *cobra.Command, args []string) {
	var players []string
	for _, p := range strings.Split(flagPlayers, ",") {
		if p = strings.TrimSpace(p); p != "" {
			players = append(players, p)
		}
	}
	if len(players) < 2 {
		fmt.Fprintln(os.Stderr, "Error: multiplayer needs at least two --players")
		os.Exit(1)
	}

	cfg := loadConfig()
	pool := flagMultiPool
	if pool == "" {
		pool = cfg.Game.Pool
	}

	logger := newLogger()
	source := newWordSource(cfg, "", logger)

	session, err := game.NewSession(game.Config{
		Mode:    game.ModeMultiplayer,
		Players: players,
		Pool:    pool,
		Seed:    flagSeed,
	}, source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Multiplayer rounds persist nothing, so no store or remote client.
	executor := tui.NewExecutor(nil, nil, logger)
	if err := tui.RunPlay(session, executor); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
