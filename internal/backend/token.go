package backend

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenEnv overrides the token file when set.
const tokenEnv = "HANGMAN_TOKEN"

// LoadToken resolves the bearer token: the HANGMAN_TOKEN environment
// variable first, then the configured token file. Expired tokens are
// rejected here so the client never sends doomed requests.
func LoadToken(tokenFile string) (string, error) {
	token := strings.TrimSpace(os.Getenv(tokenEnv))
	if token == "" && tokenFile != "" {
		data, err := os.ReadFile(tokenFile)
		if err != nil {
			return "", fmt.Errorf("backend: read token file: %w", err)
		}
		token = strings.TrimSpace(string(data))
	}
	if token == "" {
		return "", fmt.Errorf("backend: no token (set %s or token_file)", tokenEnv)
	}
	if err := checkExpiry(token); err != nil {
		return "", err
	}
	return token, nil
}

// checkExpiry inspects the exp claim without verifying the signature.
// Verification is the server's job; we only want to skip tokens that
// are already dead.
func checkExpiry(token string) error {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return fmt.Errorf("backend: malformed token: %w", err)
	}
	exp, err := claims.GetExpirationTime()
	if err != nil {
		return fmt.Errorf("backend: bad exp claim: %w", err)
	}
	if exp != nil && exp.Before(time.Now()) {
		return fmt.Errorf("backend: token expired at %s, log in again", exp.Format(time.RFC3339))
	}
	return nil
}
