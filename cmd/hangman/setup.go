package main

import (
	"fmt"
	"os"
	"time"

	log "github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-hangman/internal/backend"
	"github.com/vovakirdan/tui-hangman/internal/config"
	"github.com/vovakirdan/tui-hangman/internal/storage"
	"github.com/vovakirdan/tui-hangman/internal/words"
)

// loadConfig loads the YAML config, honoring the --config flag.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load config: %v\n", err)
		cfg = config.DefaultConfig()
	}
	return cfg
}

// dbPath resolves the database path: --db flag beats config.
func dbPath(cfg config.Config) string {
	if flagDBPath != "" {
		return flagDBPath
	}
	return cfg.Storage.Path
}

// openStore opens the score database, or returns nil with a warning so
// the game still runs without persistence.
func openStore(cfg config.Config) *storage.Store {
	store, err := storage.Open(dbPath(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// newWordSource builds the word source from config, with an optional
// data directory override from the command line.
func newWordSource(cfg config.Config, dataDir string, logger *log.Logger) *words.Source {
	if dataDir == "" {
		dataDir = cfg.Words.DataDir
	}
	return words.NewSource(words.Config{
		DataDir:       dataDir,
		DictionaryURL: cfg.Words.DictionaryURL,
		CountriesURL:  cfg.Words.CountriesURL,
		Timeout:       time.Duration(cfg.Words.TimeoutSeconds) * time.Second,
		Seed:          flagSeed,
	}, logger)
}

// newBackendClient builds the remote sync client when one is
// configured. Sync is optional; any setup problem just disables it.
func newBackendClient(cfg config.Config, logger *log.Logger) *backend.Client {
	if cfg.Backend.URL == "" {
		return nil
	}
	client, err := backend.New(cfg.Backend, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: remote sync disabled: %v\n", err)
		return nil
	}
	return client
}

// newLogger builds the CLI logger. TUI commands log to stderr so log
// lines do not corrupt the alternate screen.
func newLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "hangman",
	})
}
