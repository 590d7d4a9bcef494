// Package config provides YAML-based configuration loading and
// difficulty presets for the hangman platform.
package config

// Config is the top-level application configuration.
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Words   WordsConfig   `yaml:"words"`
	Storage StorageConfig `yaml:"storage"`
	Backend BackendConfig `yaml:"backend"`
}

// GameConfig defines the round rules.
type GameConfig struct {
	Lives             int    `yaml:"lives"`
	MultiplierSeconds int    `yaml:"multiplier_seconds"`
	Pool              string `yaml:"pool"` // global, countries, any
}

// WordsConfig defines the word source: local data directory overrides
// and the remote lookup endpoints.
type WordsConfig struct {
	DataDir        string `yaml:"data_dir"`
	DictionaryURL  string `yaml:"dictionary_url"`
	CountriesURL   string `yaml:"countries_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// StorageConfig defines the local score database.
type StorageConfig struct {
	Path string `yaml:"path"` // Supports ~ expansion
}

// BackendConfig defines the optional remote sync service. An empty URL
// disables syncing entirely.
type BackendConfig struct {
	URL            string `yaml:"url"`
	TokenFile      string `yaml:"token_file"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	MaxAttempts    int    `yaml:"max_attempts"`
}
