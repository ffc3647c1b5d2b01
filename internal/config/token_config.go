package config

import "time"

const (
	signingSecretVar  = "SIGNING_SECRET"
	tokenIssuerVar    = "TOKEN_ISSUER"
	tokenAudienceVar  = "TOKEN_AUDIENCE"
	accessTokenTTLVar = "ACCESS_TOKEN_TTL"
)

type TokenConfig interface {
	GetSigningSecret() string
	GetIssuer() string
	GetAudience() string
	GetAccessTokenExpiry() time.Duration
	GetRefreshTokenExpiry() time.Duration
	GetRefreshTokenLength() int
}

type Token struct{}

var _ TokenConfig = Token{}

func (Token) GetSigningSecret() string {
	return GetEnv(signingSecretVar, "")
}

func (Token) GetIssuer() string {
	return GetEnv(tokenIssuerVar, "com.go-session-service")
}

func (Token) GetAudience() string {
	return GetEnv(tokenAudienceVar, "api")
}

// GetAccessTokenExpiry returns the access token TTL. Access tokens are
// deliberately short-lived; refresh is the path to a longer session.
func (Token) GetAccessTokenExpiry() time.Duration {
	if d, err := time.ParseDuration(GetEnv(accessTokenTTLVar, "")); err == nil && d > 0 {
		return d
	}
	return 15 * time.Minute
}

// GetRefreshTokenExpiry returns the absolute refresh session lifetime.
// Fixed policy: rotation does not extend it.
func (Token) GetRefreshTokenExpiry() time.Duration {
	return 7 * 24 * time.Hour // 7 days
}

func (Token) GetRefreshTokenLength() int {
	return 32 // 32 bytes = 256 bits
}
