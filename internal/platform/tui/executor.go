package tui

import (
	"context"

	log "github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-hangman/internal/backend"
	"github.com/vovakirdan/tui-hangman/internal/game"
	"github.com/vovakirdan/tui-hangman/internal/storage"
)

// Executor applies the side-effect intents emitted by the session:
// local persistence first, then best-effort remote sync. Failures are
// logged and never surface as game errors.
type Executor struct {
	store  *storage.Store
	remote *backend.Client
	logger *log.Logger
}

// NewExecutor builds an executor. Both store and remote may be nil.
func NewExecutor(store *storage.Store, remote *backend.Client, logger *log.Logger) *Executor {
	if logger == nil {
		logger = log.Default()
	}
	return &Executor{store: store, remote: remote, logger: logger}
}

// Execute applies the intents and returns notification lines for the
// UI, in intent order. Every unlock is recorded, but only the first
// fresh one per call becomes a toast (the primary notification of the
// round).
func (e *Executor) Execute(intents []game.Intent) []string {
	var toasts []string
	achToasted := false
	for _, in := range intents {
		switch v := in.(type) {
		case game.UnlockAchievementIntent:
			if msg := e.unlock(v.ID); msg != "" && !achToasted {
				toasts = append(toasts, msg)
				achToasted = true
			}
		case game.PersistScoreIntent:
			e.persistScore(v)
		case game.WarningIntent:
			toasts = append(toasts, v.Message)
		}
	}
	return toasts
}

func (e *Executor) unlock(id game.Achievement) string {
	fresh := true
	if e.store != nil {
		var err error
		fresh, err = e.store.UnlockAchievement(string(id))
		if err != nil {
			e.logger.Warn("could not record achievement", "id", id, "err", err)
		}
	}
	if e.remote != nil {
		go func() {
			if err := e.remote.UnlockAchievement(context.Background(), string(id)); err != nil {
				e.logger.Warn("achievement sync failed", "id", id, "err", err)
			}
		}()
	}
	if !fresh {
		return ""
	}
	return "Achievement unlocked: " + id.Title()
}

func (e *Executor) persistScore(v game.PersistScoreIntent) {
	if e.store != nil {
		if _, err := e.store.SaveScore(v.Score, v.Streak, v.Word, v.Difficulty); err != nil {
			e.logger.Warn("could not save score", "err", err)
		}
	}
	if e.remote != nil {
		go func() {
			report := backend.ScoreReport{
				Score:      v.Score,
				Streak:     v.Streak,
				Word:       v.Word,
				Difficulty: v.Difficulty,
			}
			if err := e.remote.SaveScore(context.Background(), report); err != nil {
				e.logger.Warn("score sync failed", "err", err)
			}
		}()
	}
}
