package game

import "math/rand"

// PowerUp identifies a single-use modifier a solo player can activate
// during a round. Multiplayer sessions never hold power-ups.
type PowerUp int

const (
	PowerDoublePoints PowerUp = iota // 2x scoring for a 30s window
	PowerRevealLetter                // Reveal the lowest unrevealed position
	PowerExtraLife                   // +1 life, uncapped
	powerUpCount                     // Sentinel for counting kinds
)

// ID returns the stable identifier used for persistence.
func (p PowerUp) ID() string {
	switch p {
	case PowerDoublePoints:
		return "doublePoints"
	case PowerRevealLetter:
		return "revealLetter"
	case PowerExtraLife:
		return "extraLife"
	default:
		return "unknown"
	}
}

// String returns the display name.
func (p PowerUp) String() string {
	switch p {
	case PowerDoublePoints:
		return "Double Points"
	case PowerRevealLetter:
		return "Reveal Letter"
	case PowerExtraLife:
		return "Extra Life"
	default:
		return "?"
	}
}

// AllPowerUps lists every kind in declaration order.
func AllPowerUps() []PowerUp {
	return []PowerUp{PowerDoublePoints, PowerRevealLetter, PowerExtraLife}
}

// randomPowerUp picks one kind uniformly at random.
func randomPowerUp(rng *rand.Rand) PowerUp {
	return PowerUp(rng.Intn(int(powerUpCount)))
}

// randomMissingPowerUp picks uniformly among the kinds not currently
// held. Returns false if the player already holds all kinds.
func randomMissingPowerUp(rng *rand.Rand, held map[PowerUp]bool) (PowerUp, bool) {
	var missing []PowerUp
	for _, p := range AllPowerUps() {
		if !held[p] {
			missing = append(missing, p)
		}
	}
	if len(missing) == 0 {
		return 0, false
	}
	return missing[rng.Intn(len(missing))], true
}
