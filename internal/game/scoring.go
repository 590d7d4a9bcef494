package game

import "time"

// Scoring constants. Points are awarded per revealed position, the
// solve bonus scales with remaining lives, and a flawless round earns
// a flat perfect bonus on top.
const (
	LetterPoints      = 10
	SolveBonusPerLife = 20
	PerfectBonus      = 100

	// DefaultLives is the solo starting life count.
	DefaultLives = 6

	// MultiplierWindow is how long DoublePoints stays active.
	MultiplierWindow = 30 * time.Second
)

// Multiplier is the temporary scoring factor. Value is 1 or 2; a value
// of 2 is only honored until ExpiresAt (wall clock), after which the
// multiplier reads as 1 regardless of pending timers.
type Multiplier struct {
	Value     int
	ExpiresAt time.Time
}

// ValueAt returns the effective multiplier at the given instant.
func (m Multiplier) ValueAt(now time.Time) int {
	if m.Value == 2 && now.Before(m.ExpiresAt) {
		return 2
	}
	return 1
}

// GuessPoints is the score delta for a correct guess revealing
// matches positions under the given multiplier.
func GuessPoints(matches, multiplier int) int {
	return LetterPoints * matches * multiplier
}

// SolveBonus is the one-time bonus awarded when the last position is
// revealed, scaled by lives remaining and the multiplier.
func SolveBonus(livesRemaining, multiplier int) int {
	return SolveBonusPerLife * livesRemaining * multiplier
}
