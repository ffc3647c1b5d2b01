package sessions

import "errors"

var (
	// ErrUnauthorized covers bad credentials at login and forged, malformed
	// or wrong-algorithm access tokens at refresh. Unknown user and wrong
	// password deliberately yield this same error, so responses cannot be
	// used to enumerate usernames.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidRefreshToken means the presented refresh token does not match
	// the stored one, the session was revoked, or the refresh session expired.
	ErrInvalidRefreshToken = errors.New("invalid refresh token")

	// ErrNotFound is returned by Revoke when the user has no token record.
	ErrNotFound = errors.New("no session found")
)
