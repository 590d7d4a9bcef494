package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-hangman/internal/game"
)

// View renders the current session state.
func (m PlayModel) View() string {
	if m.quitting {
		return ""
	}
	if m.fetching {
		return "\n  " + m.spinner.View() + " picking a word...\n"
	}
	if m.session.Round == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(titleStyle.Render("HANGMAN"))
	b.WriteString("\n\n")

	b.WriteString("  ")
	b.WriteString(clueStyle.Render("clue: " + m.session.Round.Meaning))
	b.WriteString("\n\n")

	b.WriteString("  ")
	b.WriteString(maskStyle.Render(spacedMask(m.session.Round.Mask())))
	b.WriteString("\n\n")

	if m.session.Mode() == game.ModeSolo {
		b.WriteString(m.renderSoloStatus())
	} else {
		b.WriteString(m.renderPlayers())
	}

	b.WriteString(m.renderGuessed())

	if m.session.Mode() == game.ModeSolo {
		b.WriteString(m.renderPowerUps())
	}

	for _, toast := range m.toasts {
		b.WriteString("  ")
		b.WriteString(toastStyle.Render(toast))
		b.WriteString("\n")
	}

	if m.session.Phase == game.PhaseFinished {
		b.WriteString(m.renderFinished())
	} else {
		b.WriteString("\n  ")
		if m.session.Mode() == game.ModeSolo {
			b.WriteString(helpStyle.Render("type letters to guess • 1/2/3 power-ups • esc quit"))
		} else {
			b.WriteString(helpStyle.Render("type letters to guess • esc quit"))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (m PlayModel) renderSoloStatus() string {
	solo := m.session.Solo
	hearts := strings.Repeat("♥", solo.Lives) +
		strings.Repeat("♡", max(0, m.session.MaxLives()-solo.Lives))

	line := fmt.Sprintf("%s  %s  %s",
		livesStyle.Render(hearts),
		scoreStyle.Render(fmt.Sprintf("score %d", solo.Score)),
		scoreStyle.Render(fmt.Sprintf("streak %d", solo.Streak)),
	)
	if remaining := m.session.MultiplierRemaining(); remaining > 0 {
		line += "  " + multiplierStyle.Render(fmt.Sprintf("x2 %ds", int(remaining.Seconds())))
	}
	return "  " + line + "\n\n"
}

func (m PlayModel) renderPlayers() string {
	var b strings.Builder
	for i, name := range m.session.Turns.Players {
		b.WriteString("  ")
		if i == m.session.Turns.Current {
			b.WriteString(activePlayerStyle.Render("▶ " + name))
		} else {
			b.WriteString(playerStyle.Render("  " + name))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}

func (m PlayModel) renderGuessed() string {
	guessed := m.session.Round.GuessedLetters()
	if len(guessed) == 0 {
		return ""
	}
	parts := make([]string, len(guessed))
	for i, g := range guessed {
		s := string(g.Letter)
		if g.Correct {
			parts[i] = correctStyle.Render(s)
		} else {
			parts[i] = wrongStyle.Render(s)
		}
	}
	return "  " + helpStyle.Render("guessed: ") + strings.Join(parts, " ") + "\n\n"
}

func (m PlayModel) renderPowerUps() string {
	var parts []string
	for i, p := range game.AllPowerUps() {
		label := fmt.Sprintf("[%d] %s", i+1, p)
		if m.session.Solo.Available[p] {
			parts = append(parts, powerUpStyle.Render(label))
		} else {
			parts = append(parts, powerUpDimStyle.Render(label))
		}
	}
	return "  " + strings.Join(parts, "  ") + "\n\n"
}

func (m PlayModel) renderFinished() string {
	var lines []string

	if m.session.Mode() == game.ModeMultiplayer {
		lines = append(lines, winStyle.Render(m.session.Turns.Winner+" wins!"))
	} else if m.session.RoundWon {
		lines = append(lines, winStyle.Render("You got it!"))
	} else {
		lines = append(lines, loseStyle.Render("Out of lives!"))
	}

	lines = append(lines, "")
	lines = append(lines, maskStyle.Render(m.session.Round.Display))
	lines = append(lines, clueStyle.Render(m.session.Round.Meaning))

	if m.session.Mode() == game.ModeSolo {
		lines = append(lines, "")
		lines = append(lines, scoreStyle.Render(fmt.Sprintf("score %d • streak %d", m.session.Solo.Score, m.session.Solo.Streak)))
		lines = append(lines, "")
		lines = append(lines, helpStyle.Render("n next word • r restart • q quit"))
	} else {
		lines = append(lines, "")
		lines = append(lines, helpStyle.Render("r rematch • q quit"))
	}

	box := boxStyle.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
	return "\n" + lipgloss.NewStyle().MarginLeft(2).Render(box) + "\n"
}

// spacedMask widens the mask for readability, keeping word boundaries.
func spacedMask(mask string) string {
	var b strings.Builder
	for i, r := range mask {
		if i > 0 {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}
