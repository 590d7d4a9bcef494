package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	clueStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("245"))

	maskStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	livesStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	scoreStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("228"))

	multiplierStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("213"))

	correctStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	wrongStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")).
			Strikethrough(true)

	powerUpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("111"))

	powerUpDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	toastStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	winStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42"))

	loseStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("203"))

	activePlayerStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("229"))

	playerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 3)
)
