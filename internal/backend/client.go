// Package backend syncs scores and achievements to an optional remote
// service. All calls are best-effort: the game never depends on the
// backend being reachable.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/avast/retry-go/v4"
	log "github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-hangman/internal/config"
)

// ScoreReport is the payload for a finished session.
type ScoreReport struct {
	Score      int    `json:"score"`
	Streak     int    `json:"streak"`
	Word       string `json:"word"`
	Difficulty string `json:"difficulty"`
}

// Client talks to the sync service with a bearer token.
type Client struct {
	baseURL  string
	token    string
	http     *http.Client
	logger   *log.Logger
	attempts uint
}

// New builds a client from config. Returns an error if no URL is
// configured or the token is missing or expired.
func New(cfg config.BackendConfig, logger *log.Logger) (*Client, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("backend: no url configured")
	}
	token, err := LoadToken(cfg.TokenFile)
	if err != nil {
		return nil, err
	}
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	attempts := uint(cfg.MaxAttempts)
	if attempts == 0 {
		attempts = 3
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Client{
		baseURL:  cfg.URL,
		token:    token,
		http:     &http.Client{Timeout: timeout},
		logger:   logger,
		attempts: attempts,
	}, nil
}

// SaveScore posts a finished session score.
func (c *Client) SaveScore(ctx context.Context, report ScoreReport) error {
	return c.post(ctx, "/scores", report)
}

// UnlockAchievement reports a newly unlocked achievement.
func (c *Client) UnlockAchievement(ctx context.Context, achievementID string) error {
	payload := struct {
		AchievementID string `json:"achievement_id"`
	}{AchievementID: achievementID}
	return c.post(ctx, "/achievements/unlock", payload)
}

// post sends a JSON payload with bounded retries on transient errors.
func (c *Client) post(ctx context.Context, path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("backend: encode payload: %w", err)
	}

	return retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
			if err != nil {
				return retry.Unrecoverable(err)
			}
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Authorization", "Bearer "+c.token)

			resp, err := c.http.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()
			io.Copy(io.Discard, resp.Body)

			switch {
			case resp.StatusCode < 300:
				return nil
			case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
				// Auth problems won't heal with retries
				return retry.Unrecoverable(fmt.Errorf("backend: %s: status %d", path, resp.StatusCode))
			case resp.StatusCode >= 500:
				return fmt.Errorf("backend: %s: status %d", path, resp.StatusCode)
			default:
				return retry.Unrecoverable(fmt.Errorf("backend: %s: status %d", path, resp.StatusCode))
			}
		},
		retry.Context(ctx),
		retry.Attempts(c.attempts),
		retry.OnRetry(func(n uint, err error) {
			c.logger.Warn("backend request failed, retrying", "path", path, "attempt", n+1, "err", err)
		}),
	)
}
