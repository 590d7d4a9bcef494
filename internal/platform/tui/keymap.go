package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-hangman/internal/game"
)

// Action is a high-level input derived from a key press.
type Action int

const (
	ActionNone Action = iota
	ActionGuess
	ActionPowerDouble
	ActionPowerReveal
	ActionPowerLife
	ActionNextWord
	ActionRestart
	ActionQuit
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action. For ActionGuess the
// returned rune is the guessed character.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (Action, rune) {
	key := msg.String()

	switch key {
	case "ctrl+c", "esc":
		return ActionQuit, 0
	case "1":
		return ActionPowerDouble, 0
	case "2":
		return ActionPowerReveal, 0
	case "3":
		return ActionPowerLife, 0
	}

	// Single printable characters are guess candidates. The session
	// validates them; invalid ones are simply ignored here.
	runes := []rune(key)
	if len(runes) == 1 && game.IsGuessable(runes[0]) {
		return ActionGuess, runes[0]
	}

	return ActionNone, 0
}

// MapFinishedKey translates keys on the round-over screen.
// "q" only quits here, so it stays guessable during play.
func (km *KeyMapper) MapFinishedKey(msg tea.KeyMsg) Action {
	switch msg.String() {
	case "ctrl+c", "esc", "q":
		return ActionQuit
	case "n", "enter":
		return ActionNextWord
	case "r":
		return ActionRestart
	}
	return ActionNone
}

// PowerUpFor maps a power-up action to the engine kind.
func PowerUpFor(a Action) (game.PowerUp, bool) {
	switch a {
	case ActionPowerDouble:
		return game.PowerDoublePoints, true
	case ActionPowerReveal:
		return game.PowerRevealLetter, true
	case ActionPowerLife:
		return game.PowerExtraLife, true
	default:
		return 0, false
	}
}
