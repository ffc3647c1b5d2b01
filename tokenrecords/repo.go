package tokenrecords

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when no record exists for a username.
	ErrNotFound = errors.New("token record not found")

	// ErrTokenMismatch is returned by Rotate when the stored refresh token is
	// empty or does not match the presented value. Under concurrent rotation
	// this is how the losing request learns its token was already consumed.
	ErrTokenMismatch = errors.New("stored refresh token mismatch")
)

// TokenRecord maps a username to its current refresh token. There is at most
// one record per username that has ever logged in. An empty RefreshToken
// means revoked, or no usable token ever issued; the row is never deleted.
type TokenRecord struct {
	Username     string    // Unique key
	RefreshToken string    // Current refresh token value, or "" when revoked
	ExpiresAt    time.Time // Absolute refresh session expiry, set at login only
}

// Repo manages server-side storage of token records. Every operation commits
// before returning; there is no separate save step and no internal retry.
type Repo interface {
	// FindByUsername returns the record for a username, or ErrNotFound.
	FindByUsername(ctx context.Context, username string) (*TokenRecord, error)

	// Upsert creates or overwrites the record for record.Username.
	Upsert(ctx context.Context, record *TokenRecord) error

	// Rotate atomically replaces the stored refresh token with next, but only
	// when the stored value is non-empty and equals current. ExpiresAt is
	// left untouched. Returns ErrTokenMismatch otherwise, so that of two
	// refreshes racing on the same token at most one succeeds.
	Rotate(ctx context.Context, username, current, next string) error
}
