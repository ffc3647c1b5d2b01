package sessions

import (
	"time"

	"github.com/jrsteele09/go-session-service/tokenrecords"
)

// State is the refresh-session state derived from a token record. It is
// never stored; the record is the single source of truth.
type State int

const (
	// StateNoSession: no record, or a record whose refresh token was cleared.
	StateNoSession State = iota
	// StateActive: a non-empty refresh token whose expiry has not passed.
	StateActive
	// StateExpired: a non-empty refresh token at or past its expiry.
	StateExpired
)

func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateExpired:
		return "expired"
	default:
		return "no-session"
	}
}

// StateOf derives the session state for a record at the given instant.
// A session counts as expired at exactly ExpiresAt.
func StateOf(record *tokenrecords.TokenRecord, now time.Time) State {
	if record == nil || record.RefreshToken == "" {
		return StateNoSession
	}
	if !record.ExpiresAt.After(now) {
		return StateExpired
	}
	return StateActive
}
