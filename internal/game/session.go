package game

import (
	"context"
	"math/rand"
	"time"
)

// Mode selects between a solo session and a local multiplayer session.
type Mode int

const (
	ModeSolo Mode = iota
	ModeMultiplayer
)

func (m Mode) String() string {
	if m == ModeMultiplayer {
		return "multiplayer"
	}
	return "solo"
}

// Phase is the session lifecycle state.
type Phase int

const (
	PhaseSetup Phase = iota
	PhasePlaying
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "setup"
	case PhasePlaying:
		return "playing"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// WordSource supplies the word for a round. Implementations may hit the
// network; the session treats any error as recoverable and substitutes
// the built-in fallback word.
type WordSource interface {
	FetchRound(ctx context.Context, pool string) (RoundWord, error)
}

// Config configures a session. Zero values fall back to defaults, so
// Config{} is a playable solo session.
type Config struct {
	Mode       Mode
	Players    []string // Multiplayer only, at least two
	Lives      int      // Solo starting lives (default 6)
	Pool       string   // Word pool selector passed to the source
	Difficulty string   // Recorded with persisted scores

	MultiplierWindow time.Duration    // DoublePoints duration (default 30s)
	Seed             int64            // RNG seed (0 = time-based)
	Now              func() time.Time // Clock (default time.Now)
}

// SoloState is the cumulative solo bookkeeping. It survives nextWord
// transitions and is cleared only by a full reset.
type SoloState struct {
	Lives          int
	Score          int
	Streak         int
	PerfectStreak  int
	WordsCompleted int
	Multiplier     Multiplier
	Available      map[PowerUp]bool
	Used           map[PowerUp]int
	Unlocked       map[Achievement]bool

	minLives int // Lowest life count reached this round
}

// Session is the top-level state machine. All transitions are
// synchronous and all-or-nothing: an event either rejects without
// mutation or applies completely and returns the side-effect intents
// it produced. Sessions are not safe for concurrent use; callers
// serialize events (one logical thread per session).
type Session struct {
	cfg    Config
	rng    *rand.Rand
	now    func() time.Time
	source WordSource

	Phase    Phase
	Round    *Round
	Solo     SoloState
	Turns    *TurnTracker
	RoundWon bool
}

// NewSession creates a session in the Setup phase. A nil source is
// allowed; every round then uses the fallback word.
func NewSession(cfg Config, source WordSource) (*Session, error) {
	if cfg.Lives <= 0 {
		cfg.Lives = DefaultLives
	}
	if cfg.MultiplierWindow <= 0 {
		cfg.MultiplierWindow = MultiplierWindow
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Seed == 0 {
		cfg.Seed = cfg.Now().UnixNano()
	}

	s := &Session{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(cfg.Seed)),
		now:    cfg.Now,
		source: source,
	}

	if cfg.Mode == ModeMultiplayer {
		turns, err := NewTurnTracker(cfg.Players)
		if err != nil {
			return nil, err
		}
		s.Turns = turns
	} else {
		s.Solo = freshSolo(cfg.Lives)
	}

	return s, nil
}

func freshSolo(lives int) SoloState {
	return SoloState{
		Lives:      lives,
		Multiplier: Multiplier{Value: 1},
		Available:  make(map[PowerUp]bool),
		Used:       make(map[PowerUp]int),
		Unlocked:   make(map[Achievement]bool),
		minLives:   lives,
	}
}

// Mode returns the session mode.
func (s *Session) Mode() Mode { return s.cfg.Mode }

// Difficulty returns the difficulty label recorded with scores.
func (s *Session) Difficulty() string { return s.cfg.Difficulty }

// MaxLives returns the configured starting life count.
func (s *Session) MaxLives() int { return s.cfg.Lives }

// StartRound fetches a word and moves the session to Playing. Only
// valid from Setup. If the word source fails (or is nil) the fixed
// fallback word is used and a warning intent is emitted, so a session
// is never blocked on the adapter.
func (s *Session) StartRound(ctx context.Context) ([]Intent, error) {
	if s.Phase != PhaseSetup {
		return nil, ErrNotPlaying
	}
	return s.beginRound(ctx), nil
}

func (s *Session) beginRound(ctx context.Context) []Intent {
	var intents []Intent

	rw := FallbackRound()
	if s.source != nil {
		fetched, err := s.source.FetchRound(ctx, s.cfg.Pool)
		if err != nil {
			intents = append(intents, WarningIntent{
				Message: "word lookup failed, using a built-in word",
			})
		} else {
			rw = fetched
		}
	}

	s.Round = NewRound(rw)
	s.RoundWon = false

	if s.cfg.Mode == ModeSolo {
		s.Solo.Lives = s.cfg.Lives
		s.Solo.minLives = s.Solo.Lives
		s.Solo.Available[randomPowerUp(s.rng)] = true
	}

	s.Phase = PhasePlaying
	return intents
}

// Guess resolves a single guessed character. Repeats are silent no-ops
// (outcome Ignored, nil error). Guesses outside the Playing phase or
// with an invalid character are rejected without mutation.
func (s *Session) Guess(letter rune) (Outcome, []Intent, error) {
	if s.Phase != PhasePlaying {
		return Outcome{}, nil, ErrNotPlaying
	}
	if !IsGuessable(letter) {
		return Outcome{}, nil, ErrInvalidGuess
	}

	outcome := s.Round.ApplyGuess(letter)
	if outcome.Kind == OutcomeIgnored {
		return outcome, nil, nil
	}

	if s.cfg.Mode == ModeMultiplayer {
		return outcome, nil, s.applyMultiplayerGuess(outcome)
	}

	intents := s.applySoloGuess(outcome)
	return outcome, intents, nil
}

func (s *Session) applyMultiplayerGuess(outcome Outcome) error {
	if outcome.Kind == OutcomeCorrect && s.Round.Solved() {
		s.Turns.MarkWinner()
		s.RoundWon = true
		s.Phase = PhaseFinished
		return nil
	}
	s.Turns.Record(outcome)
	return nil
}

func (s *Session) applySoloGuess(outcome Outcome) []Intent {
	switch outcome.Kind {
	case OutcomeWrong:
		s.Solo.Lives--
		if s.Solo.Lives < s.Solo.minLives {
			s.Solo.minLives = s.Solo.Lives
		}
		if s.Solo.Lives <= 0 {
			s.Round.RevealAll()
			return s.finishSolo(false, 1)
		}
		return nil

	case OutcomeCorrect:
		mult := s.multiplierValue()
		s.Solo.Score += GuessPoints(outcome.Matches, mult)
		if s.Round.Solved() {
			return s.finishSolo(true, mult)
		}
		return nil
	}
	return nil
}

// finishSolo ends the round, applies win bonuses, evaluates
// achievements, and emits the round's intents. The multiplier value is
// passed in so the solve bonus uses the same factor as the guess that
// caused the solve.
func (s *Session) finishSolo(won bool, mult int) []Intent {
	prevStreak := s.Solo.Streak

	if won {
		s.Solo.Score += SolveBonus(s.Solo.Lives, mult)
		if s.Round.Perfect() {
			s.Solo.Score += PerfectBonus
			s.Solo.PerfectStreak++
		} else {
			s.Solo.PerfectStreak = 0
		}
		s.Solo.Streak++
		s.Solo.WordsCompleted++
		if reward, ok := randomMissingPowerUp(s.rng, s.Solo.Available); ok {
			s.Solo.Available[reward] = true
		}
	} else {
		s.Solo.Streak = 0
		s.Solo.PerfectStreak = 0
	}

	s.RoundWon = won
	s.Phase = PhaseFinished

	stats := RoundStats{
		Won:            won,
		PerfectRound:   s.Round.Perfect(),
		PrevStreak:     prevStreak,
		Streak:         s.Solo.Streak,
		PerfectStreak:  s.Solo.PerfectStreak,
		Score:          s.Solo.Score,
		LivesLeft:      s.Solo.Lives,
		MaxLives:       s.cfg.Lives,
		MinLivesSeen:   s.Solo.minLives,
		WordsCompleted: s.Solo.WordsCompleted,
		PowerUpsUsed:   s.Solo.Used,
	}

	var intents []Intent
	for _, id := range EvaluateAchievements(stats, s.Solo.Unlocked) {
		s.Solo.Unlocked[id] = true
		intents = append(intents, UnlockAchievementIntent{ID: id})
	}
	if won {
		intents = append(intents, PersistScoreIntent{
			Score:      s.Solo.Score,
			Streak:     s.Solo.Streak,
			Word:       s.Round.Target,
			Difficulty: s.cfg.Difficulty,
		})
	}
	return intents
}

// ActivatePowerUp consumes the given power-up and applies its effect.
// Consumption and effect are atomic: a rejected activation changes
// nothing. Multiplayer sessions hold no power-ups.
func (s *Session) ActivatePowerUp(kind PowerUp) ([]Intent, error) {
	if s.Phase != PhasePlaying {
		return nil, ErrNotPlaying
	}
	if s.cfg.Mode != ModeSolo {
		return nil, ErrWrongMode
	}
	if !s.Solo.Available[kind] {
		return nil, ErrPowerUpUnavailable
	}

	delete(s.Solo.Available, kind)
	s.Solo.Used[kind]++

	switch kind {
	case PowerDoublePoints:
		s.Solo.Multiplier = Multiplier{
			Value:     2,
			ExpiresAt: s.now().Add(s.cfg.MultiplierWindow),
		}
	case PowerExtraLife:
		s.Solo.Lives++
	case PowerRevealLetter:
		s.Round.RevealLowest()
		if s.Round.Solved() {
			// The reveal finished the word: award the solve bonus but
			// no letter points, since no guess was made.
			return s.finishSolo(true, s.multiplierValue()), nil
		}
	}
	return nil, nil
}

// multiplierValue returns the effective multiplier and lazily
// normalizes expired state, so a stale x2 can never leak into scoring.
func (s *Session) multiplierValue() int {
	v := s.Solo.Multiplier.ValueAt(s.now())
	if v == 1 && s.Solo.Multiplier.Value == 2 {
		s.Solo.Multiplier = Multiplier{Value: 1}
	}
	return v
}

// ExpireMultiplier reverts the scoring multiplier if its window has
// elapsed. Called by the platform's timer; firing against a session
// whose multiplier was already reset (or re-armed) is a safe no-op.
func (s *Session) ExpireMultiplier() {
	if s.cfg.Mode != ModeSolo {
		return
	}
	s.multiplierValue()
}

// MultiplierRemaining reports how long the x2 window has left, or zero
// when inactive.
func (s *Session) MultiplierRemaining() time.Duration {
	if s.cfg.Mode != ModeSolo || s.Solo.Multiplier.Value != 2 {
		return 0
	}
	d := s.Solo.Multiplier.ExpiresAt.Sub(s.now())
	if d < 0 {
		return 0
	}
	return d
}

// NextWord starts the next round from a finished solo round, keeping
// the cumulative score, streaks, achievements and power-ups.
func (s *Session) NextWord(ctx context.Context) ([]Intent, error) {
	if s.cfg.Mode != ModeSolo {
		return nil, ErrWrongMode
	}
	if s.Phase != PhaseFinished {
		return nil, ErrNotFinished
	}
	return s.beginRound(ctx), nil
}

// Reset clears all session and round state back to Setup. Unlike
// NextWord this drops score, streaks and held power-ups. The caller
// must also cancel any pending multiplier timer it armed.
func (s *Session) Reset() {
	s.Phase = PhaseSetup
	s.Round = nil
	s.RoundWon = false
	if s.cfg.Mode == ModeMultiplayer {
		s.Turns, _ = NewTurnTracker(s.cfg.Players)
		return
	}
	s.Solo = freshSolo(s.cfg.Lives)
}
