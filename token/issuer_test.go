package token_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/jrsteele09/go-session-service/token"
)

const (
	testSecret   = "0123456789abcdef0123456789abcdef"
	testIssuer   = "com.testissuer"
	testAudience = "api"
	testUsername = "john.doe"
)

type testTokenConfig struct {
	issuer    string
	audience  string
	accessTTL time.Duration
}

func (c testTokenConfig) GetSigningSecret() string { return testSecret }
func (c testTokenConfig) GetIssuer() string {
	if c.issuer == "" {
		return testIssuer
	}
	return c.issuer
}
func (c testTokenConfig) GetAudience() string {
	if c.audience == "" {
		return testAudience
	}
	return c.audience
}
func (c testTokenConfig) GetAccessTokenExpiry() time.Duration {
	if c.accessTTL == 0 {
		return time.Minute
	}
	return c.accessTTL
}
func (c testTokenConfig) GetRefreshTokenExpiry() time.Duration { return 7 * 24 * time.Hour }
func (c testTokenConfig) GetRefreshTokenLength() int           { return 32 }

func newTestIssuer(cfg testTokenConfig) *token.Issuer {
	return token.NewIssuer(token.NewHMACSigner(testSecret), cfg)
}

func freezeTime(t *testing.T, at time.Time) func(time.Time) {
	t.Helper()
	current := at
	prev := token.NowTimeFunc
	token.NowTimeFunc = func() time.Time { return current }
	t.Cleanup(func() { token.NowTimeFunc = prev })
	return func(next time.Time) { current = next }
}

func TestGenerateAndValidate(t *testing.T) {
	issuer := newTestIssuer(testTokenConfig{})

	claimSet := token.NewClaimSet(token.Principal{
		Username: testUsername,
		Roles:    []string{"admin", "user"},
	})

	raw, err := issuer.Generate(claimSet)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	extracted, err := issuer.ValidateAndExtract(raw, false)
	require.NoError(t, err)
	require.Equal(t, testUsername, extracted.Username)
	require.Equal(t, []string{"admin", "user"}, extracted.Roles)
	require.Equal(t, claimSet.TokenID, extracted.TokenID)

	_, err = uuid.Parse(extracted.TokenID)
	require.NoError(t, err)
}

func TestValidateExpiredToken(t *testing.T) {
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	advance := freezeTime(t, start)

	issuer := newTestIssuer(testTokenConfig{accessTTL: time.Minute})
	raw, err := issuer.Generate(token.NewClaimSet(token.Principal{Username: testUsername}))
	require.NoError(t, err)

	advance(start.Add(2 * time.Minute))

	_, err = issuer.ValidateAndExtract(raw, false)
	require.ErrorIs(t, err, token.ErrTokenExpired)

	// The refresh path may still recover the claims from a stale token.
	extracted, err := issuer.ValidateAndExtract(raw, true)
	require.NoError(t, err)
	require.Equal(t, testUsername, extracted.Username)
}

func TestValidateRejectsNoneAlgorithm(t *testing.T) {
	issuer := newTestIssuer(testTokenConfig{})

	claims := token.AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			Subject:   testUsername,
			Audience:  jwt.ClaimStrings{testAudience},
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			ID:        uuid.New().String(),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = issuer.ValidateAndExtract(unsigned, false)
	require.ErrorIs(t, err, token.ErrSignatureInvalid)

	// allowExpired must not weaken the algorithm check.
	_, err = issuer.ValidateAndExtract(unsigned, true)
	require.ErrorIs(t, err, token.ErrSignatureInvalid)
}

func TestValidateRejectsDifferentHMACAlgorithm(t *testing.T) {
	issuer := newTestIssuer(testTokenConfig{})

	claims := token.AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			Subject:   testUsername,
			Audience:  jwt.ClaimStrings{testAudience},
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS384, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = issuer.ValidateAndExtract(signed, true)
	require.ErrorIs(t, err, token.ErrSignatureInvalid)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	issuer := newTestIssuer(testTokenConfig{})
	forger := token.NewIssuer(token.NewHMACSigner("another-secret-another-secret-12"), testTokenConfig{})

	raw, err := forger.Generate(token.NewClaimSet(token.Principal{Username: testUsername}))
	require.NoError(t, err)

	_, err = issuer.ValidateAndExtract(raw, false)
	require.ErrorIs(t, err, token.ErrSignatureInvalid)

	_, err = issuer.ValidateAndExtract(raw, true)
	require.ErrorIs(t, err, token.ErrSignatureInvalid)
}

func TestValidateRejectsMalformedToken(t *testing.T) {
	issuer := newTestIssuer(testTokenConfig{})

	_, err := issuer.ValidateAndExtract("not-a-token", false)
	require.ErrorIs(t, err, token.ErrMalformedToken)

	_, err = issuer.ValidateAndExtract("", true)
	require.ErrorIs(t, err, token.ErrMalformedToken)
}

func TestValidateRejectsForeignIssuerAndAudience(t *testing.T) {
	issuer := newTestIssuer(testTokenConfig{})

	otherIssuer := newTestIssuer(testTokenConfig{issuer: "com.someone-else"})
	raw, err := otherIssuer.Generate(token.NewClaimSet(token.Principal{Username: testUsername}))
	require.NoError(t, err)
	_, err = issuer.ValidateAndExtract(raw, false)
	require.ErrorIs(t, err, token.ErrSignatureInvalid)

	otherAudience := newTestIssuer(testTokenConfig{audience: "other-api"})
	raw, err = otherAudience.Generate(token.NewClaimSet(token.Principal{Username: testUsername}))
	require.NoError(t, err)
	_, err = issuer.ValidateAndExtract(raw, true)
	require.ErrorIs(t, err, token.ErrSignatureInvalid)
}
