// Package tui provides the Bubble Tea integration for the hangman
// platform. It handles the terminal UI loop, input mapping, and the
// session flow for local and SSH play.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// CountdownMsg is sent once per second while the score multiplier is
// active, to refresh the countdown and detect expiry.
type CountdownMsg time.Time

// ToastExpireMsg clears the notification line. The ID guards against a
// stale timer wiping a newer toast.
type ToastExpireMsg struct {
	ID int
}

const toastDuration = 3 * time.Second

// countdownCmd returns a command that ticks the multiplier countdown.
func countdownCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return CountdownMsg(t)
	})
}

// toastCmd returns a command that expires the toast with the given ID.
func toastCmd(id int) tea.Cmd {
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return ToastExpireMsg{ID: id}
	})
}
