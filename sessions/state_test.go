package sessions_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jrsteele09/go-session-service/sessions"
	"github.com/jrsteele09/go-session-service/tokenrecords"
)

func TestStateOf(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		record *tokenrecords.TokenRecord
		want   sessions.State
	}{
		{
			name:   "no record",
			record: nil,
			want:   sessions.StateNoSession,
		},
		{
			name:   "revoked record",
			record: &tokenrecords.TokenRecord{Username: "alice", RefreshToken: "", ExpiresAt: now.Add(time.Hour)},
			want:   sessions.StateNoSession,
		},
		{
			name:   "active record",
			record: &tokenrecords.TokenRecord{Username: "alice", RefreshToken: "token-1", ExpiresAt: now.Add(time.Second)},
			want:   sessions.StateActive,
		},
		{
			name:   "expired at exactly the boundary",
			record: &tokenrecords.TokenRecord{Username: "alice", RefreshToken: "token-1", ExpiresAt: now},
			want:   sessions.StateExpired,
		},
		{
			name:   "expired in the past",
			record: &tokenrecords.TokenRecord{Username: "alice", RefreshToken: "token-1", ExpiresAt: now.Add(-time.Hour)},
			want:   sessions.StateExpired,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, sessions.StateOf(tc.record, now))
		})
	}
}

func TestStateString(t *testing.T) {
	require.Equal(t, "no-session", sessions.StateNoSession.String())
	require.Equal(t, "active", sessions.StateActive.String())
	require.Equal(t, "expired", sessions.StateExpired.String())
}
