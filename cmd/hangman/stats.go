package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hangman/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate play statistics",
	Long: `Display aggregate statistics over all recorded games.

Examples:
  hangman stats
  hangman stats --db ./scores.db`,
	Run: runStats,
}

func runStats(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	store, err := storage.Open(dbPath(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	stats, err := store.GetStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	label := lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)

	fmt.Println(title.Render("STATISTICS"))
	fmt.Println()

	if stats.GamesPlayed == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Play 'hangman play' and win a round to get on the board!")
		return
	}

	fmt.Printf("  %s %d\n", label.Render("Games played"), stats.GamesPlayed)
	fmt.Printf("  %s %d\n", label.Render("High score"), stats.HighScore)
	fmt.Printf("  %s %.1f\n", label.Render("Average score"), stats.AvgScore)
	fmt.Printf("  %s %d\n", label.Render("Total score"), stats.TotalScore)
	fmt.Printf("  %s %d\n", label.Render("Best streak"), stats.BestStreak)
	fmt.Printf("  %s %s\n", label.Render("Last played"), stats.LastPlayed.Format("2006-01-02 15:04"))
}
