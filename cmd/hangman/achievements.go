package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hangman/internal/game"
	"github.com/vovakirdan/tui-hangman/internal/storage"
)

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "List achievements and their unlock status",
	Long: `List every achievement with its title, description and whether
it has been unlocked.

Examples:
  hangman achievements
  hangman achievements --db ./scores.db`,
	Run: runAchievements,
}

func runAchievements(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	unlocked := make(map[string]bool)
	if store, err := storage.Open(dbPath(cfg)); err == nil {
		if entries, listErr := store.Achievements(); listErr == nil {
			for _, e := range entries {
				unlocked[e.AchievementID] = true
			}
		}
		store.Close()
	}

	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	done := lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	pending := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	all := game.AllAchievements()
	count := 0

	fmt.Println(title.Render("ACHIEVEMENTS"))
	fmt.Println()

	for _, id := range all {
		marker := pending.Render("[ ]")
		name := pending.Render(id.Title())
		if unlocked[string(id)] {
			marker = done.Render("[x]")
			name = done.Render(id.Title())
			count++
		}
		fmt.Printf("  %s %s\n", marker, name)
		fmt.Printf("      %s\n", pending.Render(id.Description()))
	}

	fmt.Println()
	fmt.Printf("Unlocked %d of %d\n", count, len(all))
}
