// hangman is a TUI word-guessing game for the terminal.
//
// Usage:
//
//	hangman play                 - Play a solo session
//	hangman multi --players a,b  - Pass-the-keyboard multiplayer
//	hangman scores               - Show the scoreboard
//	hangman stats                - Show aggregate statistics
//	hangman achievements         - List achievements and unlock status
//	hangman serve                - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>  - Custom config YAML
//	--db <path>      - Scores database path (default: from config)
//	--seed <value>   - RNG seed for reproducible power-up drops
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
	flagSeed   int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hangman",
	Short: "Hangman - Guess words in your terminal",
	Long: `Hangman is a terminal word-guessing game with scoring, streaks,
power-ups and achievements.

Available commands:
  play          - Play a solo session
  multi         - Local pass-the-keyboard multiplayer
  scores        - View the scoreboard
  stats         - View aggregate statistics
  achievements  - List achievements and unlock status
  serve         - Start SSH server for remote play

Examples:
  hangman play
  hangman play --pool countries --difficulty hard
  hangman multi --players alice,bob
  hangman scores
  hangman serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (overrides config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(multiCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(achievementsCmd)
	rootCmd.AddCommand(serveCmd)
}
