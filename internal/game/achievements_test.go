package game

import "testing"

func containsAchievement(ids []Achievement, want Achievement) bool {
	for _, id := range ids {
		if id == want {
			return true
		}
	}
	return false
}

func TestEvaluateAchievementsFirstWin(t *testing.T) {
	stats := RoundStats{
		Won:            true,
		PrevStreak:     0,
		Streak:         1,
		Score:          250,
		LivesLeft:      6,
		MaxLives:       6,
		MinLivesSeen:   6,
		WordsCompleted: 1,
	}
	ids := EvaluateAchievements(stats, map[Achievement]bool{})
	if !containsAchievement(ids, AchFirstWin) {
		t.Errorf("first win not unlocked, got %v", ids)
	}
	if !containsAchievement(ids, AchSpeedster) {
		t.Errorf("speedster not unlocked on full-lives win, got %v", ids)
	}
}

func TestEvaluateAchievementsIdempotent(t *testing.T) {
	stats := RoundStats{Won: true, Streak: 1, Score: 600, LivesLeft: 3, MaxLives: 6, MinLivesSeen: 3}
	unlocked := map[Achievement]bool{}

	first := EvaluateAchievements(stats, unlocked)
	for _, id := range first {
		unlocked[id] = true
	}
	if again := EvaluateAchievements(stats, unlocked); len(again) != 0 {
		t.Errorf("re-evaluation unlocked %v, want nothing", again)
	}
}

func TestEvaluateAchievementsThresholds(t *testing.T) {
	cases := []struct {
		name  string
		stats RoundStats
		want  Achievement
	}{
		{"streak five", RoundStats{Won: true, Streak: 5}, AchStreak5},
		{"streak ten", RoundStats{Won: true, Streak: 10}, AchStreak10},
		{"perfect streak three", RoundStats{Won: true, PerfectRound: true, PerfectStreak: 3}, AchPerfectStreak3},
		{"high score", RoundStats{Won: true, Score: 500}, AchHighScore},
		{"mega score", RoundStats{Won: true, Score: 1000}, AchMegaScore},
		{"survivor", RoundStats{Won: true, LivesLeft: 1, MaxLives: 6, MinLivesSeen: 1}, AchSurvivor},
		{"wordsmith", RoundStats{Won: true, WordsCompleted: 25}, AchWordsmith},
		{"scholar", RoundStats{Won: true, WordsCompleted: 100}, AchScholar},
	}
	for _, c := range cases {
		ids := EvaluateAchievements(c.stats, map[Achievement]bool{})
		if !containsAchievement(ids, c.want) {
			t.Errorf("%s: %v missing from %v", c.name, c.want, ids)
		}
	}
}

func TestEvaluateAchievementsPowerUpCounts(t *testing.T) {
	used := map[PowerUp]int{
		PowerDoublePoints: 5,
		PowerRevealLetter: 10,
		PowerExtraLife:    2,
	}
	stats := RoundStats{Won: true, PowerUpsUsed: used}
	ids := EvaluateAchievements(stats, map[Achievement]bool{})

	if !containsAchievement(ids, AchPowerMaster) {
		t.Errorf("power master not unlocked at 17 total uses")
	}
	if !containsAchievement(ids, AchMultiplierMania) {
		t.Errorf("multiplier mania not unlocked at 5 double-points uses")
	}
	if !containsAchievement(ids, AchDetective) {
		t.Errorf("detective not unlocked at 10 reveals")
	}
}

func TestEvaluateAchievementsComeback(t *testing.T) {
	// Dropped to one life mid-round, then won. An extra life regained
	// afterwards does not erase having been at the brink.
	stats := RoundStats{Won: true, LivesLeft: 3, MaxLives: 6, MinLivesSeen: 1}
	ids := EvaluateAchievements(stats, map[Achievement]bool{})
	if !containsAchievement(ids, AchComeback) {
		t.Errorf("comeback not unlocked, got %v", ids)
	}

	lost := RoundStats{Won: false, MinLivesSeen: 0}
	if ids := EvaluateAchievements(lost, map[Achievement]bool{}); containsAchievement(ids, AchComeback) {
		t.Error("comeback unlocked on a lost round")
	}
}

func TestEvaluateAchievementsLossUnlocksNothingWinGated(t *testing.T) {
	stats := RoundStats{Won: false, Score: 1200, WordsCompleted: 120}
	ids := EvaluateAchievements(stats, map[Achievement]bool{})
	// Score and words thresholds are not win-gated; win-only ones must
	// stay locked.
	for _, id := range ids {
		switch id {
		case AchFirstWin, AchPerfectGame, AchSpeedster, AchSurvivor, AchComeback:
			t.Errorf("win-gated achievement %v unlocked on a loss", id)
		}
	}
}

func TestAchievementTitles(t *testing.T) {
	for _, id := range AllAchievements() {
		if id.Title() == "" {
			t.Errorf("achievement %q has no title", id)
		}
		if id.Description() == "" {
			t.Errorf("achievement %q has no description", id)
		}
	}
	if n := AchievementCount(); n != 17 {
		t.Errorf("achievement count = %d, want 17", n)
	}
}
