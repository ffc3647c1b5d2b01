package refresh

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/jrsteele09/go-session-service/internal/config"
)

// Generator produces opaque refresh tokens. A refresh token has no structure
// a client can inspect; it is only ever compared byte-for-byte against the
// stored value. Uniqueness is probabilistic, not enforced by the store.
type Generator struct {
	length int
}

// NewGenerator creates a refresh token generator
func NewGenerator(cfg config.TokenConfig) *Generator {
	return &Generator{
		length: cfg.GetRefreshTokenLength(),
	}
}

// Generate returns a new cryptographically random refresh token.
func (g *Generator) Generate() (string, error) {
	tokenBytes := make([]byte, g.length) // Configured length (default: 32 bytes = 256 bits)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return hex.EncodeToString(tokenBytes), nil
}
