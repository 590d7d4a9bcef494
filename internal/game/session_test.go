package game

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fixedSource struct {
	words []RoundWord
	calls int
}

func (f *fixedSource) FetchRound(ctx context.Context, pool string) (RoundWord, error) {
	rw := f.words[f.calls%len(f.words)]
	f.calls++
	return rw, nil
}

type failingSource struct{}

func (failingSource) FetchRound(ctx context.Context, pool string) (RoundWord, error) {
	return RoundWord{}, errors.New("source offline")
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newSoloSession(t *testing.T, cfg Config, source WordSource) *Session {
	t.Helper()
	if cfg.Seed == 0 {
		cfg.Seed = 7
	}
	s, err := NewSession(cfg, source)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if _, err := s.StartRound(context.Background()); err != nil {
		t.Fatalf("StartRound: %v", err)
	}
	return s
}

func TestSoloPerfectWin(t *testing.T) {
	src := &fixedSource{words: []RoundWord{{Word: "cat", Meaning: "a small pet"}}}
	s := newSoloSession(t, Config{}, src)

	var intents []Intent
	for _, c := range "cat" {
		out, in, err := s.Guess(c)
		if err != nil {
			t.Fatalf("guess %q: %v", c, err)
		}
		if out.Kind != OutcomeCorrect {
			t.Fatalf("guess %q: outcome %v", c, out.Kind)
		}
		intents = append(intents, in...)
	}

	// 3 letters x 10, solve bonus 6 lives x 20, perfect bonus 100.
	if s.Solo.Score != 250 {
		t.Errorf("score = %d, want 250", s.Solo.Score)
	}
	if s.Solo.Streak != 1 || s.Solo.PerfectStreak != 1 {
		t.Errorf("streak/perfect = %d/%d, want 1/1", s.Solo.Streak, s.Solo.PerfectStreak)
	}
	if s.Phase != PhaseFinished || !s.RoundWon {
		t.Errorf("phase %v won %v, want finished win", s.Phase, s.RoundWon)
	}

	var sawFirstWin, sawPersist bool
	for _, in := range intents {
		switch v := in.(type) {
		case UnlockAchievementIntent:
			if v.ID == AchFirstWin {
				sawFirstWin = true
			}
		case PersistScoreIntent:
			sawPersist = true
			if v.Score != 250 || v.Word != "cat" {
				t.Errorf("persist intent %+v", v)
			}
		}
	}
	if !sawFirstWin {
		t.Error("first-win unlock not emitted")
	}
	if !sawPersist {
		t.Error("persist-score intent not emitted")
	}
}

func TestSoloLossRevealsAndResets(t *testing.T) {
	src := &fixedSource{words: []RoundWord{{Word: "dog"}}}
	s := newSoloSession(t, Config{}, src)
	s.Solo.Streak = 4 // pretend a prior run

	var intents []Intent
	for _, c := range "bcefhi" {
		_, in, err := s.Guess(c)
		if err != nil {
			t.Fatalf("guess %q: %v", c, err)
		}
		intents = append(intents, in...)
	}

	if s.Solo.Lives != 0 {
		t.Errorf("lives = %d, want 0", s.Solo.Lives)
	}
	if s.Phase != PhaseFinished || s.RoundWon {
		t.Errorf("phase %v won %v, want finished loss", s.Phase, s.RoundWon)
	}
	if !s.Round.Solved() {
		t.Error("word not fully revealed on loss")
	}
	if s.Solo.Streak != 0 || s.Solo.PerfectStreak != 0 {
		t.Errorf("streaks not reset: %d/%d", s.Solo.Streak, s.Solo.PerfectStreak)
	}
	for _, in := range intents {
		if _, ok := in.(PersistScoreIntent); ok {
			t.Error("persist intent emitted on a loss")
		}
	}
}

func TestFallbackWordOnSourceFailure(t *testing.T) {
	s, err := NewSession(Config{Seed: 7}, failingSource{})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	intents, err := s.StartRound(context.Background())
	if err != nil {
		t.Fatalf("StartRound: %v", err)
	}

	if s.Round.Target != "hello" {
		t.Errorf("target %q, want fallback %q", s.Round.Target, "hello")
	}
	if len(intents) != 1 {
		t.Fatalf("got %d intents, want one warning", len(intents))
	}
	if _, ok := intents[0].(WarningIntent); !ok {
		t.Errorf("intent %T, want WarningIntent", intents[0])
	}
}

func TestDefaultSeedUsesInjectedClock(t *testing.T) {
	// Without an explicit seed the session derives one from the
	// injected clock, so two sessions sharing a clock behave
	// identically, starting power-up grant included.
	clock := &fakeClock{t: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}

	a, err := NewSession(Config{Now: clock.Now}, nil)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	b, err := NewSession(Config{Now: clock.Now}, nil)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	a.StartRound(context.Background())
	b.StartRound(context.Background())

	if len(a.Solo.Available) != 1 {
		t.Fatalf("starting grants = %d, want 1", len(a.Solo.Available))
	}
	for k := range a.Solo.Available {
		if !b.Solo.Available[k] {
			t.Errorf("sessions with identical clocks diverged: %v vs %v",
				a.Solo.Available, b.Solo.Available)
		}
	}
}

func TestGuessRejections(t *testing.T) {
	s, err := NewSession(Config{Seed: 7}, nil)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	if _, _, err := s.Guess('a'); err != ErrNotPlaying {
		t.Errorf("guess before start: err = %v, want ErrNotPlaying", err)
	}

	s.StartRound(context.Background())
	if _, _, err := s.Guess('7'); err != ErrInvalidGuess {
		t.Errorf("digit guess: err = %v, want ErrInvalidGuess", err)
	}
	if _, _, err := s.Guess('A'); err != ErrInvalidGuess {
		t.Errorf("uppercase guess: err = %v, want ErrInvalidGuess", err)
	}

	score := s.Solo.Score
	s.Guess('l')
	out, _, err := s.Guess('l')
	if err != nil || out.Kind != OutcomeIgnored {
		t.Errorf("repeat guess: %v/%v, want ignored no-op", out.Kind, err)
	}
	if s.Solo.Score != score+20 {
		t.Errorf("score = %d, repeat must not double-count", s.Solo.Score)
	}
}

func TestDoublePointsExpiry(t *testing.T) {
	clock := &fakeClock{t: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)}
	src := &fixedSource{words: []RoundWord{{Word: "banana"}}}
	s := newSoloSession(t, Config{Now: clock.Now}, src)

	s.Solo.Available[PowerDoublePoints] = true
	if _, err := s.ActivatePowerUp(PowerDoublePoints); err != nil {
		t.Fatalf("activate: %v", err)
	}

	// 3 matches x 10 x 2 while the window is open.
	s.Guess('a')
	if s.Solo.Score != 60 {
		t.Errorf("score = %d during window, want 60", s.Solo.Score)
	}
	if s.MultiplierRemaining() != 30*time.Second {
		t.Errorf("remaining = %v, want 30s", s.MultiplierRemaining())
	}

	clock.Advance(31 * time.Second)
	s.ExpireMultiplier()
	if s.Solo.Multiplier.Value != 1 {
		t.Errorf("multiplier still %d after expiry", s.Solo.Multiplier.Value)
	}

	// 2 matches x 10 x 1 after expiry.
	s.Guess('n')
	if s.Solo.Score != 80 {
		t.Errorf("score = %d after expiry, want 80", s.Solo.Score)
	}
}

func TestDoublePointsLazyExpiry(t *testing.T) {
	// Even if the platform timer never fires, a guess after the window
	// must score at x1.
	clock := &fakeClock{t: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)}
	src := &fixedSource{words: []RoundWord{{Word: "banana"}}}
	s := newSoloSession(t, Config{Now: clock.Now}, src)

	s.Solo.Available[PowerDoublePoints] = true
	s.ActivatePowerUp(PowerDoublePoints)
	clock.Advance(time.Minute)

	s.Guess('a')
	if s.Solo.Score != 30 {
		t.Errorf("score = %d, want 30 at x1", s.Solo.Score)
	}
}

func TestExtraLife(t *testing.T) {
	src := &fixedSource{words: []RoundWord{{Word: "cat"}}}
	s := newSoloSession(t, Config{}, src)

	s.Guess('z') // lives 5
	s.Solo.Available[PowerExtraLife] = true
	if _, err := s.ActivatePowerUp(PowerExtraLife); err != nil {
		t.Fatalf("activate: %v", err)
	}
	if s.Solo.Lives != 6 {
		t.Errorf("lives = %d, want 6", s.Solo.Lives)
	}
	if s.Solo.Used[PowerExtraLife] != 1 {
		t.Errorf("used count = %d, want 1", s.Solo.Used[PowerExtraLife])
	}
}

func TestRevealLetterCompletesWord(t *testing.T) {
	src := &fixedSource{words: []RoundWord{{Word: "ab"}}}
	s := newSoloSession(t, Config{}, src)

	s.Guess('a')
	s.Solo.Available[PowerRevealLetter] = true
	intents, err := s.ActivatePowerUp(PowerRevealLetter)
	if err != nil {
		t.Fatalf("activate: %v", err)
	}

	if s.Phase != PhaseFinished || !s.RoundWon {
		t.Fatalf("phase %v won %v, want finished win", s.Phase, s.RoundWon)
	}
	// 10 for the 'a' guess, solve bonus 6 x 20, perfect bonus 100. The
	// revealed letter itself scores nothing.
	if s.Solo.Score != 230 {
		t.Errorf("score = %d, want 230", s.Solo.Score)
	}
	var sawPersist bool
	for _, in := range intents {
		if _, ok := in.(PersistScoreIntent); ok {
			sawPersist = true
		}
	}
	if !sawPersist {
		t.Error("persist intent not emitted for reveal-completed win")
	}
}

func TestActivatePowerUpRejections(t *testing.T) {
	src := &fixedSource{words: []RoundWord{{Word: "cat"}}}
	s := newSoloSession(t, Config{}, src)

	s.Solo.Available = map[PowerUp]bool{}
	if _, err := s.ActivatePowerUp(PowerDoublePoints); err != ErrPowerUpUnavailable {
		t.Errorf("unheld power-up: err = %v, want ErrPowerUpUnavailable", err)
	}
	if s.Solo.Used[PowerDoublePoints] != 0 {
		t.Error("rejected activation still counted as used")
	}

	m, err := NewSession(Config{Mode: ModeMultiplayer, Players: []string{"ada", "bob"}, Seed: 7}, src)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	m.StartRound(context.Background())
	if _, err := m.ActivatePowerUp(PowerDoublePoints); err != ErrWrongMode {
		t.Errorf("multiplayer activation: err = %v, want ErrWrongMode", err)
	}
}

func TestNextWordPreservesProgress(t *testing.T) {
	src := &fixedSource{words: []RoundWord{{Word: "cat"}, {Word: "dog"}}}
	s := newSoloSession(t, Config{}, src)

	s.Guess('z') // one wrong, lives 5
	for _, c := range "cat" {
		s.Guess(c)
	}
	// 30 letter points plus solve bonus 5 x 20, no perfect bonus.
	if s.Solo.Score != 130 {
		t.Fatalf("score = %d, want 130", s.Solo.Score)
	}

	if _, err := s.NextWord(context.Background()); err != nil {
		t.Fatalf("NextWord: %v", err)
	}
	if s.Phase != PhasePlaying {
		t.Errorf("phase %v, want playing", s.Phase)
	}
	if s.Round.Target != "dog" {
		t.Errorf("target %q, want %q", s.Round.Target, "dog")
	}
	if s.Solo.Score != 130 || s.Solo.Streak != 1 {
		t.Errorf("progress dropped: score %d streak %d", s.Solo.Score, s.Solo.Streak)
	}
	if s.Solo.Lives != 6 {
		t.Errorf("lives = %d, want full reset to 6", s.Solo.Lives)
	}
}

func TestNextWordOnlyWhenFinished(t *testing.T) {
	src := &fixedSource{words: []RoundWord{{Word: "cat"}}}
	s := newSoloSession(t, Config{}, src)

	if _, err := s.NextWord(context.Background()); err != ErrNotFinished {
		t.Errorf("mid-round NextWord: err = %v, want ErrNotFinished", err)
	}
}

func TestMultiplayerSession(t *testing.T) {
	src := &fixedSource{words: []RoundWord{{Word: "hi"}}}
	s, err := NewSession(Config{Mode: ModeMultiplayer, Players: []string{"ada", "bob"}, Seed: 7}, src)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	s.StartRound(context.Background())

	s.Guess('x') // ada wrong, bob's turn
	if s.Turns.Active() != "bob" {
		t.Errorf("active = %q, want bob", s.Turns.Active())
	}

	s.Guess('h') // bob correct, keeps the turn
	if s.Turns.Active() != "bob" {
		t.Errorf("active after correct = %q, want bob", s.Turns.Active())
	}

	s.Guess('i') // bob solves
	if s.Phase != PhaseFinished || !s.RoundWon {
		t.Errorf("phase %v won %v, want finished win", s.Phase, s.RoundWon)
	}
	if s.Turns.Winner != "bob" {
		t.Errorf("winner = %q, want bob", s.Turns.Winner)
	}

	if _, err := s.NextWord(context.Background()); err != ErrWrongMode {
		t.Errorf("multiplayer NextWord: err = %v, want ErrWrongMode", err)
	}
}

func TestResetClearsEverything(t *testing.T) {
	src := &fixedSource{words: []RoundWord{{Word: "cat"}}}
	s := newSoloSession(t, Config{}, src)
	for _, c := range "cat" {
		s.Guess(c)
	}

	s.Reset()
	if s.Phase != PhaseSetup || s.Round != nil {
		t.Errorf("phase %v round %v after reset", s.Phase, s.Round)
	}
	if s.Solo.Score != 0 || s.Solo.Streak != 0 || len(s.Solo.Available) != 0 {
		t.Errorf("solo state survived reset: %+v", s.Solo)
	}
}
