package game

// TurnTracker rotates the active player in a local multiplayer
// session. A correct guess keeps the turn (extra turn), a wrong guess
// passes it, and solving the word freezes the index and records the
// winner. No lives or score are tracked in multiplayer.
type TurnTracker struct {
	Players []string
	Current int
	Winner  string
}

// NewTurnTracker creates a tracker for the given players. At least two
// players are required to start.
func NewTurnTracker(players []string) (*TurnTracker, error) {
	if len(players) < 2 {
		return nil, ErrTooFewPlayers
	}
	return &TurnTracker{Players: players}, nil
}

// Active returns the name of the player whose turn it is. After a win
// this is the winner (the index is frozen on solve).
func (t *TurnTracker) Active() string {
	return t.Players[t.Current]
}

// Record updates the rotation for a guess outcome. Ignored outcomes
// leave the turn unchanged.
func (t *TurnTracker) Record(o Outcome) {
	if t.Winner != "" {
		return
	}
	if o.Kind == OutcomeWrong {
		t.Current = (t.Current + 1) % len(t.Players)
	}
}

// MarkWinner freezes the rotation and names the current player the
// winner.
func (t *TurnTracker) MarkWinner() {
	t.Winner = t.Players[t.Current]
}
