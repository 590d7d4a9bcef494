package config

import "fmt"

// DifficultyPreset selects a named rule set for a session.
type DifficultyPreset string

const (
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyExpert DifficultyPreset = "expert"
)

// ParsePreset validates a difficulty name from flags or config.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case DifficultyNormal, DifficultyHard, DifficultyExpert:
		return DifficultyPreset(s), nil
	case "":
		return DifficultyNormal, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (normal, hard, expert)", s)
	}
}

// ApplyPreset modifies the game config based on a difficulty preset.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyHard:
		cfg.Lives = 4
	case DifficultyExpert:
		cfg.Lives = 3
	default:
		cfg.Lives = 6
	}
}
