package token

import "errors"

var (
	// ErrMalformedToken means the token could not be parsed at all.
	ErrMalformedToken = errors.New("malformed token")

	// ErrSignatureInvalid covers a failed signature check, an unexpected
	// signing algorithm, and issuer/audience mismatches. All of these mean
	// the token was not issued by this service.
	ErrSignatureInvalid = errors.New("token signature invalid")

	// ErrTokenExpired means the token verified but its expiry has passed and
	// the caller did not allow expired tokens.
	ErrTokenExpired = errors.New("token expired")
)
