package token

import (
	stderrors "errors"
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"github.com/jrsteele09/go-session-service/internal/config"
)

// NowTimeFunc returns the current time. It can be overridden in tests.
var NowTimeFunc = time.Now

// Issuer creates and verifies signed access tokens. Issuer and audience are
// fixed by configuration at construction; the signing secret lives inside the
// Signer and is never mutated.
type Issuer struct {
	signer    Signer
	issuer    string
	audience  string
	accessTTL time.Duration
}

// NewIssuer creates an access token issuer from the process configuration.
func NewIssuer(signer Signer, cfg config.TokenConfig) *Issuer {
	return &Issuer{
		signer:    signer,
		issuer:    cfg.GetIssuer(),
		audience:  cfg.GetAudience(),
		accessTTL: cfg.GetAccessTokenExpiry(),
	}
}

// Generate mints a signed access token carrying the claim set. Two calls
// with the same claim set differ only in iat/exp and the per-issuance
// TokenID supplied by the claims builder.
func (i *Issuer) Generate(claimSet ClaimSet) (string, error) {
	now := NowTimeFunc()
	claims := AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    i.issuer,
			Subject:   claimSet.Username,
			Audience:  jwt.ClaimStrings{i.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.accessTTL)),
			ID:        claimSet.TokenID,
		},
		Roles: claimSet.Roles,
	}

	signedToken, err := i.signer.Sign(claims)
	if err != nil {
		return "", errors.Wrap(err, "[Issuer.Generate] signer.Sign")
	}
	return signedToken, nil
}

// ValidateAndExtract verifies a token and recovers its claim set. The
// signature, algorithm, issuer and audience are checked unconditionally;
// expiry is only enforced when allowExpired is false. allowExpired=true
// exists solely for the refresh path, where the caller must already hold a
// legitimately issued but stale token.
func (i *Issuer) ValidateAndExtract(rawToken string, allowExpired bool) (*ClaimSet, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{i.signer.Method().Alg()}),
		jwt.WithoutClaimsValidation(),
	)

	claims := &AccessClaims{}
	parsed, err := parser.ParseWithClaims(rawToken, claims, i.signer.VerificationKey)
	if err != nil {
		if stderrors.Is(err, jwt.ErrTokenMalformed) {
			return nil, errors.Wrap(ErrMalformedToken, err.Error())
		}
		return nil, errors.Wrap(ErrSignatureInvalid, err.Error())
	}
	if !parsed.Valid {
		return nil, ErrSignatureInvalid
	}

	if claims.Issuer != i.issuer {
		return nil, errors.Wrap(ErrSignatureInvalid, "unexpected issuer")
	}
	if !slices.Contains(claims.Audience, i.audience) {
		return nil, errors.Wrap(ErrSignatureInvalid, "unexpected audience")
	}
	if claims.IssuedAt == nil || claims.ExpiresAt == nil {
		return nil, errors.Wrap(ErrMalformedToken, "missing iat or exp claim")
	}

	if !allowExpired && NowTimeFunc().After(claims.ExpiresAt.Time) {
		return nil, ErrTokenExpired
	}

	return &ClaimSet{
		Username: claims.Subject,
		TokenID:  claims.ID,
		Roles:    claims.Roles,
	}, nil
}
