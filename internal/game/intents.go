package game

// Intent is a side-effect request emitted by the session. The engine
// never performs the effect itself; the platform layer executes intents
// fire-and-forget after the transition has been applied. A failed
// intent never blocks or reverts game state.
type Intent interface {
	intent()
}

// PersistScoreIntent asks the platform to save the cumulative session
// score after a solved round.
type PersistScoreIntent struct {
	Score      int
	Streak     int
	Word       string
	Difficulty string
}

func (PersistScoreIntent) intent() {}

// UnlockAchievementIntent asks the platform to record a newly unlocked
// achievement. Intents are emitted in fixed table order; the first one
// of a round is the primary notification.
type UnlockAchievementIntent struct {
	ID Achievement
}

func (UnlockAchievementIntent) intent() {}

// WarningIntent surfaces a non-fatal problem (such as a word-source
// failure recovered via the fallback word) to the player.
type WarningIntent struct {
	Message string
}

func (WarningIntent) intent() {}
