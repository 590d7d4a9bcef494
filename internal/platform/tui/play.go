package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-hangman/internal/game"
)

// roundReadyMsg signals that a round fetch finished and the session
// moved to Playing.
type roundReadyMsg struct {
	toasts []string
}

// PlayModel is the Bubble Tea model for a hangman session, solo or
// local multiplayer.
type PlayModel struct {
	session  *game.Session
	executor *Executor
	keys     *KeyMapper
	spinner  spinner.Model

	fetching bool
	counting bool
	toasts   []string
	toastID  int
	width    int
	height   int
	quitting bool
}

// NewPlayModel creates a play model for the given session.
func NewPlayModel(session *game.Session, executor *Executor) PlayModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))

	return PlayModel{
		session:  session,
		executor: executor,
		keys:     NewKeyMapper(),
		spinner:  sp,
		fetching: true,
	}
}

// Init starts the first round.
func (m PlayModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.startRoundCmd())
}

// startRoundCmd fetches a word off the UI loop. The session is not
// touched again until the message lands.
func (m PlayModel) startRoundCmd() tea.Cmd {
	s := m.session
	return func() tea.Msg {
		intents, err := s.StartRound(context.Background())
		if err != nil {
			return roundReadyMsg{toasts: []string{err.Error()}}
		}
		return roundReadyMsg{toasts: m.executor.Execute(intents)}
	}
}

func (m PlayModel) nextWordCmd() tea.Cmd {
	s := m.session
	return func() tea.Msg {
		intents, err := s.NextWord(context.Background())
		if err != nil {
			return roundReadyMsg{toasts: []string{err.Error()}}
		}
		return roundReadyMsg{toasts: m.executor.Execute(intents)}
	}
}

// Update handles messages and updates the model state.
func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case roundReadyMsg:
		m.fetching = false
		cmd := m.showToasts(msg.toasts)
		return m, cmd

	case CountdownMsg:
		if m.session.MultiplierRemaining() > 0 {
			return m, countdownCmd()
		}
		m.session.ExpireMultiplier()
		m.counting = false
		return m, nil

	case ToastExpireMsg:
		if msg.ID == m.toastID {
			m.toasts = nil
		}
		return m, nil

	case spinner.TickMsg:
		if !m.fetching {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m PlayModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.fetching {
		if msg.String() == "ctrl+c" || msg.String() == "esc" {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	if m.session.Phase == game.PhaseFinished {
		return m.handleFinishedKey(msg)
	}

	action, r := m.keys.MapKey(msg)
	switch action {
	case ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case ActionGuess:
		_, intents, err := m.session.Guess(r)
		if err != nil {
			return m, nil
		}
		cmd := m.showToasts(m.executor.Execute(intents))
		return m, cmd

	case ActionPowerDouble, ActionPowerReveal, ActionPowerLife:
		kind, _ := PowerUpFor(action)
		intents, err := m.session.ActivatePowerUp(kind)
		if err != nil {
			return m, nil
		}
		cmd := m.showToasts(m.executor.Execute(intents))
		if kind == game.PowerDoublePoints {
			arm := m.armCountdown()
			return m, tea.Batch(cmd, arm)
		}
		return m, cmd
	}

	return m, nil
}

func (m PlayModel) handleFinishedKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapFinishedKey(msg) {
	case ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case ActionNextWord:
		if m.session.Mode() != game.ModeSolo {
			return m, nil
		}
		m.fetching = true
		m.toasts = nil
		return m, tea.Batch(m.spinner.Tick, m.nextWordCmd())

	case ActionRestart:
		m.session.Reset()
		m.fetching = true
		m.toasts = nil
		return m, tea.Batch(m.spinner.Tick, m.startRoundCmd())
	}
	return m, nil
}

// armCountdown starts the multiplier tick chain. One chain per model:
// while a chain is live it re-ticks itself, so arming a second one
// would double up the messages.
func (m *PlayModel) armCountdown() tea.Cmd {
	if m.counting {
		return nil
	}
	m.counting = true
	return countdownCmd()
}

// showToasts displays notification lines and arms their expiry timer.
func (m *PlayModel) showToasts(toasts []string) tea.Cmd {
	if len(toasts) == 0 {
		return nil
	}
	m.toasts = toasts
	m.toastID++
	return toastCmd(m.toastID)
}

// RunPlay starts the Bubble Tea program for a session.
func RunPlay(session *game.Session, executor *Executor) error {
	p := tea.NewProgram(
		NewPlayModel(session, executor),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
