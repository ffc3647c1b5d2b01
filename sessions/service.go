package sessions

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/pkg/errors"

	"github.com/jrsteele09/go-session-service/internal/config"
	"github.com/jrsteele09/go-session-service/token"
	"github.com/jrsteele09/go-session-service/token/refresh"
	"github.com/jrsteele09/go-session-service/tokenrecords"
	"github.com/jrsteele09/go-session-service/users"
)

// TokenPair is the value returned to the caller at login and at refresh. The
// two halves have different lifetimes and are never persisted together: the
// access token is a pure bearer credential with no server-side record, the
// refresh token is the only artifact kept in the store.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Service is the login/refresh/revoke state machine over token records.
// Credential checks are delegated to the identity provider; persistence to
// the token record store. Store failures propagate wrapped, they are never
// retried or converted into denials.
type Service struct {
	identity   users.IdentityProvider
	records    tokenrecords.Repo
	issuer     *token.Issuer
	generator  *refresh.Generator
	refreshTTL time.Duration
	nowTime    func() time.Time // nowTime function (injectable for testing)
}

// ServiceOption defines a function type to modify the Service instance.
type ServiceOption func(*Service)

// WithNowTime sets the now time function (primarily for testing)
func WithNowTime(nowFunc func() time.Time) ServiceOption {
	return func(s *Service) {
		s.nowTime = nowFunc
	}
}

// NewService initializes a new session Service with required dependencies.
// Optional configuration can be provided via options (e.g., WithNowTime for
// testing).
func NewService(
	identity users.IdentityProvider,
	records tokenrecords.Repo,
	issuer *token.Issuer,
	generator *refresh.Generator,
	cfg config.TokenConfig,
	options ...ServiceOption,
) (*Service, error) {
	if identity == nil {
		return nil, errors.New("[NewService] identity provider is required")
	}
	if records == nil {
		return nil, errors.New("[NewService] token record repo is required")
	}
	if issuer == nil {
		return nil, errors.New("[NewService] token issuer is required")
	}
	if generator == nil {
		return nil, errors.New("[NewService] refresh token generator is required")
	}

	service := &Service{
		identity:   identity,
		records:    records,
		issuer:     issuer,
		generator:  generator,
		refreshTTL: cfg.GetRefreshTokenExpiry(),
		nowTime:    time.Now,
	}

	for _, opt := range options {
		opt(service)
	}

	return service, nil
}

// Login authenticates the credentials against the identity provider and
// issues a fresh token pair. Any refresh token previously stored for the
// user is unconditionally overwritten: there is a single active refresh
// session per user.
func (s *Service) Login(ctx context.Context, username, password string) (*TokenPair, error) {
	user, err := s.identity.FindByUsername(ctx, username)
	if err != nil {
		if stderrors.Is(err, users.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, errors.Wrap(err, "[Service.Login] identity.FindByUsername")
	}
	if !s.identity.VerifyPassword(user, password) {
		return nil, ErrUnauthorized
	}

	roles, err := s.identity.GetRoles(ctx, user)
	if err != nil {
		return nil, errors.Wrap(err, "[Service.Login] identity.GetRoles")
	}

	claimSet := token.NewClaimSet(token.Principal{Username: user.Username, Roles: roles})
	pair, err := s.issuePair(claimSet)
	if err != nil {
		return nil, errors.Wrap(err, "[Service.Login] issuePair")
	}

	record := &tokenrecords.TokenRecord{
		Username:     user.Username,
		RefreshToken: pair.RefreshToken,
		ExpiresAt:    s.nowTime().Add(s.refreshTTL),
	}
	if err := s.records.Upsert(ctx, record); err != nil {
		return nil, errors.Wrap(err, "[Service.Login] records.Upsert")
	}

	return pair, nil
}

// Refresh rotates a token pair. The presented access token may be expired
// but must otherwise verify: a bad signature, wrong algorithm or malformed
// token is rejected outright. The presented refresh token must exactly match
// the stored one and the refresh session must not have expired. On success
// the old refresh token is immediately unusable.
//
// The new access token is issued from the claim set recovered from the old
// one; roles are deliberately not re-fetched, so they stay as granted at the
// original login until the next full login. The stored expiry is not
// extended either: each rotation runs out the original window from login.
func (s *Service) Refresh(ctx context.Context, accessToken, refreshToken string) (*TokenPair, error) {
	claimSet, err := s.issuer.ValidateAndExtract(accessToken, true)
	if err != nil {
		return nil, ErrUnauthorized
	}

	record, err := s.records.FindByUsername(ctx, claimSet.Username)
	if err != nil {
		if stderrors.Is(err, tokenrecords.ErrNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, errors.Wrap(err, "[Service.Refresh] records.FindByUsername")
	}

	if StateOf(record, s.nowTime()) != StateActive {
		return nil, ErrInvalidRefreshToken
	}
	if record.RefreshToken != refreshToken {
		return nil, ErrInvalidRefreshToken
	}

	// Fresh TokenID per issuance; name and roles carried over unchanged.
	pair, err := s.issuePair(token.NewClaimSet(token.Principal{Username: claimSet.Username, Roles: claimSet.Roles}))
	if err != nil {
		return nil, errors.Wrap(err, "[Service.Refresh] issuePair")
	}

	if err := s.records.Rotate(ctx, claimSet.Username, refreshToken, pair.RefreshToken); err != nil {
		if stderrors.Is(err, tokenrecords.ErrTokenMismatch) {
			// A concurrent refresh already consumed the presented token.
			return nil, ErrInvalidRefreshToken
		}
		return nil, errors.Wrap(err, "[Service.Refresh] records.Rotate")
	}

	return pair, nil
}

// Revoke clears the stored refresh token for a user. The caller's identity
// must already have been established from a currently-valid access token at
// the transport boundary. Until the next login, every refresh for the user
// fails.
func (s *Service) Revoke(ctx context.Context, username string) error {
	record, err := s.records.FindByUsername(ctx, username)
	if err != nil {
		if stderrors.Is(err, tokenrecords.ErrNotFound) {
			return ErrNotFound
		}
		return errors.Wrap(err, "[Service.Revoke] records.FindByUsername")
	}

	record.RefreshToken = ""
	if err := s.records.Upsert(ctx, record); err != nil {
		return errors.Wrap(err, "[Service.Revoke] records.Upsert")
	}
	return nil
}

func (s *Service) issuePair(claimSet token.ClaimSet) (*TokenPair, error) {
	accessToken, err := s.issuer.Generate(claimSet)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.generator.Generate()
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
