package game

import (
	"testing"
	"time"
)

func TestGuessPoints(t *testing.T) {
	cases := []struct {
		matches, multiplier, want int
	}{
		{1, 1, 10},
		{2, 1, 20},
		{2, 2, 40},
		{3, 2, 60},
	}
	for _, c := range cases {
		if got := GuessPoints(c.matches, c.multiplier); got != c.want {
			t.Errorf("GuessPoints(%d, %d) = %d, want %d", c.matches, c.multiplier, got, c.want)
		}
	}
}

func TestSolveBonus(t *testing.T) {
	if got := SolveBonus(4, 1); got != 80 {
		t.Errorf("SolveBonus(4, 1) = %d, want 80", got)
	}
	if got := SolveBonus(6, 2); got != 240 {
		t.Errorf("SolveBonus(6, 2) = %d, want 240", got)
	}
}

func TestMultiplierValueAt(t *testing.T) {
	base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	m := Multiplier{Value: 2, ExpiresAt: base.Add(30 * time.Second)}

	if got := m.ValueAt(base); got != 2 {
		t.Errorf("value at activation = %d, want 2", got)
	}
	if got := m.ValueAt(base.Add(29 * time.Second)); got != 2 {
		t.Errorf("value just before expiry = %d, want 2", got)
	}
	if got := m.ValueAt(base.Add(30 * time.Second)); got != 1 {
		t.Errorf("value at expiry = %d, want 1", got)
	}

	idle := Multiplier{Value: 1}
	if got := idle.ValueAt(base); got != 1 {
		t.Errorf("idle multiplier = %d, want 1", got)
	}
}
