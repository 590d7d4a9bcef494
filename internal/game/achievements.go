package game

// Achievement is a permanently unlockable milestone identifier. The
// identifiers are stable strings shared with the persistence layer.
type Achievement string

const (
	AchFirstWin         Achievement = "firstWin"
	AchPerfectGame      Achievement = "perfectGame"
	AchStreak5          Achievement = "streak5"
	AchStreak10         Achievement = "streak10"
	AchPerfectStreak3   Achievement = "perfectStreak3"
	AchPerfectStreak5   Achievement = "perfectStreak5"
	AchPerfectStreak10  Achievement = "perfectStreak10"
	AchHighScore        Achievement = "highScore"
	AchMegaScore        Achievement = "megaScore"
	AchSpeedster        Achievement = "speedster"
	AchSurvivor         Achievement = "survivor"
	AchPowerMaster      Achievement = "powerMaster"
	AchWordsmith        Achievement = "wordsmith"
	AchScholar          Achievement = "scholar"
	AchMultiplierMania  Achievement = "multiplierMania"
	AchDetective        Achievement = "detective"
	AchComeback         Achievement = "comeback"
)

// Title returns a short display name for an achievement.
func (a Achievement) Title() string {
	if t, ok := achievementTitles[a]; ok {
		return t
	}
	return string(a)
}

// Description returns a one-line explanation of how to unlock an
// achievement.
func (a Achievement) Description() string {
	return achievementDescriptions[a]
}

var achievementDescriptions = map[Achievement]string{
	AchFirstWin:        "Win your first round",
	AchPerfectGame:     "Win a round without a single wrong guess",
	AchStreak5:         "Win 5 rounds in a row",
	AchStreak10:        "Win 10 rounds in a row",
	AchPerfectStreak3:  "Win 3 perfect rounds in a row",
	AchPerfectStreak5:  "Win 5 perfect rounds in a row",
	AchPerfectStreak10: "Win 10 perfect rounds in a row",
	AchHighScore:       "Reach a session score of 500",
	AchMegaScore:       "Reach a session score of 1000",
	AchSpeedster:       "Win a round with all lives intact",
	AchSurvivor:        "Win a round with a single life left",
	AchPowerMaster:     "Use 10 power-ups in one session",
	AchWordsmith:       "Complete 25 words in one session",
	AchScholar:         "Complete 100 words in one session",
	AchMultiplierMania: "Use double points 5 times in one session",
	AchDetective:       "Use reveal letter 10 times in one session",
	AchComeback:        "Win a round after dropping to your last life",
}

var achievementTitles = map[Achievement]string{
	AchFirstWin:        "First Win",
	AchPerfectGame:     "Perfect Game",
	AchStreak5:         "On a Roll",
	AchStreak10:        "Unstoppable",
	AchPerfectStreak3:  "Flawless x3",
	AchPerfectStreak5:  "Flawless x5",
	AchPerfectStreak10: "Flawless x10",
	AchHighScore:       "High Scorer",
	AchMegaScore:       "Mega Scorer",
	AchSpeedster:       "Speedster",
	AchSurvivor:        "Survivor",
	AchPowerMaster:     "Power Master",
	AchWordsmith:       "Wordsmith",
	AchScholar:         "Scholar",
	AchMultiplierMania: "Multiplier Mania",
	AchDetective:       "Detective",
	AchComeback:        "Comeback",
}

// RoundStats is a snapshot of cumulative player statistics with the
// just-finished round's outcome already merged in. The achievement
// engine evaluates predicates over this snapshot only; it reads no
// other state.
type RoundStats struct {
	Won          bool
	PerfectRound bool // No wrong guesses in the round
	PrevStreak   int  // Win streak before this round
	Streak       int  // Win streak after this round
	PerfectStreak int
	Score        int // Cumulative session score
	LivesLeft    int
	MaxLives     int
	MinLivesSeen int // Lowest life count reached during the round
	WordsCompleted int
	PowerUpsUsed map[PowerUp]int
}

func (s RoundStats) totalPowerUps() int {
	total := 0
	for _, n := range s.PowerUpsUsed {
		total += n
	}
	return total
}

// achievementOrder fixes the evaluation order. The first newly
// unlocked identifier in this order is the primary notification for
// the round; all newly unlocked identifiers are persisted.
var achievementOrder = []struct {
	id   Achievement
	pred func(RoundStats) bool
}{
	{AchFirstWin, func(s RoundStats) bool { return s.Won && s.PrevStreak == 0 }},
	{AchPerfectGame, func(s RoundStats) bool { return s.Won && s.PerfectRound }},
	{AchStreak5, func(s RoundStats) bool { return s.Streak >= 5 }},
	{AchStreak10, func(s RoundStats) bool { return s.Streak >= 10 }},
	{AchPerfectStreak3, func(s RoundStats) bool { return s.PerfectStreak >= 3 }},
	{AchPerfectStreak5, func(s RoundStats) bool { return s.PerfectStreak >= 5 }},
	{AchPerfectStreak10, func(s RoundStats) bool { return s.PerfectStreak >= 10 }},
	{AchHighScore, func(s RoundStats) bool { return s.Score >= 500 }},
	{AchMegaScore, func(s RoundStats) bool { return s.Score >= 1000 }},
	{AchSpeedster, func(s RoundStats) bool { return s.Won && s.LivesLeft == s.MaxLives }},
	{AchSurvivor, func(s RoundStats) bool { return s.Won && s.LivesLeft == 1 }},
	{AchPowerMaster, func(s RoundStats) bool { return s.totalPowerUps() >= 10 }},
	{AchWordsmith, func(s RoundStats) bool { return s.WordsCompleted >= 25 }},
	{AchScholar, func(s RoundStats) bool { return s.WordsCompleted >= 100 }},
	{AchMultiplierMania, func(s RoundStats) bool { return s.PowerUpsUsed[PowerDoublePoints] >= 5 }},
	{AchDetective, func(s RoundStats) bool { return s.PowerUpsUsed[PowerRevealLetter] >= 10 }},
	// Regaining lives after dropping to one does not clear the mark:
	// winning still counts as a comeback.
	{AchComeback, func(s RoundStats) bool { return s.Won && s.MinLivesSeen <= 1 }},
}

// EvaluateAchievements returns the identifiers newly unlocked by this
// round, in fixed table order. It is pure and idempotent: identifiers
// already present in unlocked are never returned again.
func EvaluateAchievements(stats RoundStats, unlocked map[Achievement]bool) []Achievement {
	var fresh []Achievement
	for _, entry := range achievementOrder {
		if unlocked[entry.id] {
			continue
		}
		if entry.pred(stats) {
			fresh = append(fresh, entry.id)
		}
	}
	return fresh
}

// AllAchievements returns every defined achievement in display order.
func AllAchievements() []Achievement {
	out := make([]Achievement, len(achievementOrder))
	for i, entry := range achievementOrder {
		out[i] = entry.id
	}
	return out
}

// AchievementCount is the number of defined achievements.
func AchievementCount() int {
	return len(achievementOrder)
}
