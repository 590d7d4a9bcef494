// Package game implements the hangman session engine: round state,
// guess resolution, scoring, power-ups, turn rotation for local
// multiplayer, and achievement evaluation. The engine is pure state
// machinery: it performs no I/O and reports side effects as intents
// for the platform layer to execute.
package game

import (
	"strings"
	"unicode"
)

// OutcomeKind classifies the result of a single guess.
type OutcomeKind int

const (
	// OutcomeIgnored means the guess was a repeat and changed nothing.
	OutcomeIgnored OutcomeKind = iota
	// OutcomeWrong means the letter does not appear in the target word.
	OutcomeWrong
	// OutcomeCorrect means the letter revealed one or more positions.
	OutcomeCorrect
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeWrong:
		return "wrong"
	case OutcomeCorrect:
		return "correct"
	default:
		return "unknown"
	}
}

// Outcome is the result of applying a guess to a round.
type Outcome struct {
	Kind    OutcomeKind
	Matches int // Number of positions revealed (correct guesses only)
}

// RoundWord is what the word source supplies for a round: the guessable
// token, a display form preserving capitals/spaces/punctuation, and a
// short meaning shown as the clue.
type RoundWord struct {
	Word    string
	Display string
	Meaning string
}

// FallbackRound is the built-in word used when the word source fails,
// so a session can always start.
func FallbackRound() RoundWord {
	return RoundWord{Word: "hello", Display: "hello", Meaning: "a greeting"}
}

// Round holds the state of a single word-guessing episode.
// Target contains only guessable characters (lowercase letters and
// hyphens); Display may additionally contain spaces, capitals and
// punctuation. Revealed is index-aligned with Target.
type Round struct {
	Target   string
	Display  string
	Meaning  string
	Revealed []bool
	Guessed  map[rune]bool // letter -> was it correct
	Wrong    int           // wrong guesses this round
}

// NewRound creates a round for the given word. An empty display falls
// back to the word itself.
func NewRound(rw RoundWord) *Round {
	word := strings.ToLower(rw.Word)
	display := rw.Display
	if display == "" {
		display = word
	}
	return &Round{
		Target:   word,
		Display:  display,
		Meaning:  rw.Meaning,
		Revealed: make([]bool, len(word)),
		Guessed:  make(map[rune]bool),
	}
}

// IsGuessable reports whether r is a character a player may guess.
func IsGuessable(r rune) bool {
	return (r >= 'a' && r <= 'z') || r == '-'
}

// ApplyGuess resolves a single guessed character. Repeated guesses are
// idempotent no-ops. The caller is responsible for validating the
// character and for all life/score/turn bookkeeping.
func (r *Round) ApplyGuess(letter rune) Outcome {
	if _, seen := r.Guessed[letter]; seen {
		return Outcome{Kind: OutcomeIgnored}
	}

	matches := 0
	for i, c := range r.Target {
		if c == letter {
			r.Revealed[i] = true
			matches++
		}
	}

	if matches == 0 {
		r.Guessed[letter] = false
		r.Wrong++
		return Outcome{Kind: OutcomeWrong}
	}

	r.Guessed[letter] = true
	return Outcome{Kind: OutcomeCorrect, Matches: matches}
}

// Solved reports whether every position has been revealed.
func (r *Round) Solved() bool {
	for _, v := range r.Revealed {
		if !v {
			return false
		}
	}
	return true
}

// Perfect reports whether the round has no wrong guesses so far.
func (r *Round) Perfect() bool {
	return r.Wrong == 0
}

// RevealAll exposes the full word (used when a round is lost).
func (r *Round) RevealAll() {
	for i := range r.Revealed {
		r.Revealed[i] = true
	}
}

// RevealLowest reveals the lowest-index unrevealed position and returns
// its index, or -1 if the word is already fully revealed.
func (r *Round) RevealLowest() int {
	for i := range r.Revealed {
		if !r.Revealed[i] {
			r.Revealed[i] = true
			return i
		}
	}
	return -1
}

// Mask renders the display form with unrevealed letters replaced by
// '_'. Non-guessable characters (spaces, apostrophes) pass through
// verbatim; display letters consume target positions in order, which
// keeps the mask aligned with Revealed. Accented display letters
// ("Côte") consume the position of their stripped form in the target
// ("cote"). A display hyphen consumes a position only when the target
// kept it, since country targets drop hyphens while word targets keep
// them.
func (r *Round) Mask() string {
	var b strings.Builder
	ti := 0
	for _, c := range r.Display {
		consumes := false
		if ti < len(r.Revealed) {
			if unicode.IsLetter(c) {
				consumes = true
			} else if c == '-' && r.Target[ti] == '-' {
				consumes = true
			}
		}
		if !consumes {
			b.WriteRune(c)
			continue
		}
		if r.Revealed[ti] {
			b.WriteRune(c)
		} else {
			b.WriteRune('_')
		}
		ti++
	}
	return b.String()
}

// GuessedLetters returns the guessed characters in sorted order along
// with whether each was correct.
func (r *Round) GuessedLetters() []GuessRecord {
	out := make([]GuessRecord, 0, len(r.Guessed))
	for c := 'a'; c <= 'z'; c++ {
		if correct, ok := r.Guessed[c]; ok {
			out = append(out, GuessRecord{Letter: c, Correct: correct})
		}
	}
	if correct, ok := r.Guessed['-']; ok {
		out = append(out, GuessRecord{Letter: '-', Correct: correct})
	}
	return out
}

// GuessRecord pairs a guessed character with its outcome.
type GuessRecord struct {
	Letter  rune
	Correct bool
}
