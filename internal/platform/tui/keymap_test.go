package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-hangman/internal/game"
)

func keyMsg(s string) tea.KeyMsg {
	if len([]rune(s)) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key    string
		action Action
		r      rune
	}{
		{"a", ActionGuess, 'a'},
		{"z", ActionGuess, 'z'},
		{"q", ActionGuess, 'q'}, // "q" guesses during play
		{"-", ActionGuess, '-'},
		{"1", ActionPowerDouble, 0},
		{"2", ActionPowerReveal, 0},
		{"3", ActionPowerLife, 0},
		{"esc", ActionQuit, 0},
		{"ctrl+c", ActionQuit, 0},
		{"7", ActionNone, 0},
		{" ", ActionNone, 0},
	}

	for _, tt := range tests {
		action, r := km.MapKey(keyMsg(tt.key))
		if action != tt.action {
			t.Errorf("MapKey(%q) action = %v, want %v", tt.key, action, tt.action)
		}
		if r != tt.r {
			t.Errorf("MapKey(%q) rune = %q, want %q", tt.key, r, tt.r)
		}
	}
}

func TestMapFinishedKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key    string
		action Action
	}{
		{"q", ActionQuit},
		{"esc", ActionQuit},
		{"ctrl+c", ActionQuit},
		{"n", ActionNextWord},
		{"enter", ActionNextWord},
		{"r", ActionRestart},
		{"a", ActionNone},
	}

	for _, tt := range tests {
		if got := km.MapFinishedKey(keyMsg(tt.key)); got != tt.action {
			t.Errorf("MapFinishedKey(%q) = %v, want %v", tt.key, got, tt.action)
		}
	}
}

func TestPowerUpFor(t *testing.T) {
	tests := []struct {
		action Action
		kind   game.PowerUp
		ok     bool
	}{
		{ActionPowerDouble, game.PowerDoublePoints, true},
		{ActionPowerReveal, game.PowerRevealLetter, true},
		{ActionPowerLife, game.PowerExtraLife, true},
		{ActionGuess, 0, false},
		{ActionNone, 0, false},
	}

	for _, tt := range tests {
		kind, ok := PowerUpFor(tt.action)
		if ok != tt.ok || kind != tt.kind {
			t.Errorf("PowerUpFor(%v) = %v, %v, want %v, %v", tt.action, kind, ok, tt.kind, tt.ok)
		}
	}
}
