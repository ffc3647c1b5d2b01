package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jrsteele09/go-session-service/internal/config"
)

const validSecret = "0123456789abcdef0123456789abcdef"

func TestNewRequiresSigningSecret(t *testing.T) {
	t.Setenv("SIGNING_SECRET", "")
	_, err := config.New()
	require.Error(t, err)

	t.Setenv("SIGNING_SECRET", "too-short")
	_, err = config.New()
	require.Error(t, err)

	t.Setenv("SIGNING_SECRET", validSecret)
	_, err = config.New()
	require.NoError(t, err)
}

func TestTokenDefaults(t *testing.T) {
	t.Setenv("SIGNING_SECRET", validSecret)
	t.Setenv("TOKEN_ISSUER", "")
	t.Setenv("TOKEN_AUDIENCE", "")
	t.Setenv("ACCESS_TOKEN_TTL", "")

	c, err := config.New()
	require.NoError(t, err)

	require.Equal(t, validSecret, c.GetSigningSecret())
	require.Equal(t, "com.go-session-service", c.GetIssuer())
	require.Equal(t, "api", c.GetAudience())
	require.Equal(t, 15*time.Minute, c.GetAccessTokenExpiry())
	require.Equal(t, 7*24*time.Hour, c.GetRefreshTokenExpiry())
	require.Equal(t, 32, c.GetRefreshTokenLength())
}

func TestAccessTokenTTLParsing(t *testing.T) {
	t.Setenv("SIGNING_SECRET", validSecret)

	t.Setenv("ACCESS_TOKEN_TTL", "5m")
	c, err := config.New()
	require.NoError(t, err)
	require.Equal(t, 5*time.Minute, c.GetAccessTokenExpiry())

	// Unparseable values fall back to the default.
	t.Setenv("ACCESS_TOKEN_TTL", "soon")
	c, err = config.New()
	require.NoError(t, err)
	require.Equal(t, 15*time.Minute, c.GetAccessTokenExpiry())
}

func TestPortFormatting(t *testing.T) {
	t.Setenv("SIGNING_SECRET", validSecret)

	t.Setenv("PORT", "9090")
	c, err := config.New()
	require.NoError(t, err)
	require.Equal(t, ":9090", c.GetPort())

	t.Setenv("PORT", ":9091")
	c, err = config.New()
	require.NoError(t, err)
	require.Equal(t, ":9091", c.GetPort())
}

func TestStoreDefaults(t *testing.T) {
	t.Setenv("SIGNING_SECRET", validSecret)
	t.Setenv("STORE_BACKEND", "")

	c, err := config.New()
	require.NoError(t, err)
	require.Equal(t, config.StoreBackendMemory, c.GetStoreBackend())
	require.Equal(t, "localhost:6379", c.GetRedisAddr())
}
