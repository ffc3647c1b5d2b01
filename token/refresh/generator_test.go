package refresh_test

import (
	"encoding/hex"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jrsteele09/go-session-service/token/refresh"
)

type testConfig struct {
	length int
}

func (c testConfig) GetSigningSecret() string             { return "" }
func (c testConfig) GetIssuer() string                    { return "" }
func (c testConfig) GetAudience() string                  { return "" }
func (c testConfig) GetAccessTokenExpiry() time.Duration  { return time.Minute }
func (c testConfig) GetRefreshTokenExpiry() time.Duration { return 7 * 24 * time.Hour }
func (c testConfig) GetRefreshTokenLength() int           { return c.length }

func TestGenerate(t *testing.T) {
	generator := refresh.NewGenerator(testConfig{length: 32})

	tokenStr, err := generator.Generate()
	require.NoError(t, err)

	decoded, err := hex.DecodeString(tokenStr)
	require.NoError(t, err)
	require.Len(t, decoded, 32)
}

func TestGenerateIsUnique(t *testing.T) {
	generator := refresh.NewGenerator(testConfig{length: 32})

	seen := make(map[string]bool)
	for range 100 {
		tokenStr, err := generator.Generate()
		require.NoError(t, err)
		require.False(t, seen[tokenStr])
		seen[tokenStr] = true
	}
}

func TestGenerateConfiguredLength(t *testing.T) {
	generator := refresh.NewGenerator(testConfig{length: 48})

	tokenStr, err := generator.Generate()
	require.NoError(t, err)
	require.Len(t, tokenStr, 96) // hex doubles the byte length
}
