package game

import (
	"math/rand"
	"testing"
)

func TestRandomMissingPowerUp(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	held := map[PowerUp]bool{PowerDoublePoints: true, PowerExtraLife: true}
	p, ok := randomMissingPowerUp(rng, held)
	if !ok || p != PowerRevealLetter {
		t.Errorf("got %v/%v, want reveal letter", p, ok)
	}

	for _, k := range AllPowerUps() {
		held[k] = true
	}
	if _, ok := randomMissingPowerUp(rng, held); ok {
		t.Error("full hand should yield no reward")
	}
}

func TestRandomPowerUpInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		p := randomPowerUp(rng)
		if p < PowerDoublePoints || p >= powerUpCount {
			t.Fatalf("out-of-range power-up %d", p)
		}
	}
}

func TestPowerUpIDsStable(t *testing.T) {
	want := map[PowerUp]string{
		PowerDoublePoints: "doublePoints",
		PowerRevealLetter: "revealLetter",
		PowerExtraLife:    "extraLife",
	}
	for p, id := range want {
		if p.ID() != id {
			t.Errorf("%v.ID() = %q, want %q", p, p.ID(), id)
		}
	}
}
