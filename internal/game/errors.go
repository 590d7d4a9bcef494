package game

import "errors"

// Engine errors. All of them are local and non-fatal: a rejected event
// leaves the session state untouched.
var (
	// ErrNotPlaying rejects guesses and power-up activations outside
	// the Playing phase.
	ErrNotPlaying = errors.New("game: session is not playing")

	// ErrInvalidGuess rejects anything that is not a single lowercase
	// letter or hyphen.
	ErrInvalidGuess = errors.New("game: guess must be a lowercase letter or hyphen")

	// ErrPowerUpUnavailable rejects activation of a power-up the
	// player does not hold.
	ErrPowerUpUnavailable = errors.New("game: power-up not available")

	// ErrWrongMode rejects solo-only events in multiplayer and vice
	// versa.
	ErrWrongMode = errors.New("game: event not valid in this mode")

	// ErrNotFinished rejects nextWord before the round has ended.
	ErrNotFinished = errors.New("game: round is not finished")

	// ErrTooFewPlayers rejects multiplayer sessions with fewer than
	// two players.
	ErrTooFewPlayers = errors.New("game: multiplayer needs at least two players")
)
