package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hangman/internal/game"
	"github.com/vovakirdan/tui-hangman/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagServePool   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the hangman SSH server",
	Long: `Start an SSH server that lets users connect and play solo sessions.

Each SSH connection gets a fresh session against the server's word
source. Scores are stored per-server (all users share the same
leaderboard).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.hangman/host_key

Examples:
  hangman serve                           # Listen on :23234 with auto-generated key
  hangman serve --ssh :2222               # Listen on port 2222
  hangman serve --host-key ./my_host_key  # Use specific host key
  hangman serve --pool countries          # Serve the countries pool

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagServePool, "pool", "", "Word pool: global, countries, any")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	pool := flagServePool
	if pool == "" {
		pool = cfg.Game.Pool
	}

	source := newWordSource(cfg, "", newLogger())

	serverCfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      dbPath(cfg),
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Game: game.Config{
			Mode:             game.ModeSolo,
			Lives:            cfg.Game.Lives,
			Pool:             pool,
			MultiplierWindow: time.Duration(cfg.Game.MultiplierSeconds) * time.Second,
		},
	}

	server, err := tui.NewSSHServer(serverCfg, source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting hangman SSH server on %s\n", serverCfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
