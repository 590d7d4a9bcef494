package config

import (
	_ "embed"
)

//go:embed defaults/hangman.yaml
var defaultHangmanYAML []byte

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Game: GameConfig{
			Lives:             6,
			MultiplierSeconds: 30,
			Pool:              "global",
		},
		Words: WordsConfig{
			DictionaryURL:  "https://api.dictionaryapi.dev/api/v2/entries/en",
			CountriesURL:   "https://restcountries.com/v3.1/all",
			TimeoutSeconds: 5,
		},
		Storage: StorageConfig{
			Path: "~/.hangman/hangman.db",
		},
		Backend: BackendConfig{
			TimeoutSeconds: 5,
			MaxAttempts:    3,
		},
	}
}
