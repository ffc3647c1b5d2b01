package users_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jrsteele09/go-session-service/users"
	userrepofake "github.com/jrsteele09/go-session-service/users/repofake"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := users.HashPassword("password123")
	require.NoError(t, err)
	require.NotEqual(t, "password123", hash)

	require.True(t, users.CheckPasswordHash("password123", hash))
	require.False(t, users.CheckPasswordHash("password124", hash))
}

func TestFakeIdentityProvider(t *testing.T) {
	provider := userrepofake.NewFakeIdentityProvider()
	ctx := context.Background()

	_, err := provider.FindByUsername(ctx, "alice")
	require.ErrorIs(t, err, users.ErrNotFound)

	created, err := provider.AddUser("alice", "password123", []string{"admin", "user"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	user, err := provider.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	require.True(t, provider.VerifyPassword(user, "password123"))
	require.False(t, provider.VerifyPassword(user, "nope"))

	roles, err := provider.GetRoles(ctx, user)
	require.NoError(t, err)
	require.Equal(t, []string{"admin", "user"}, roles)
}
