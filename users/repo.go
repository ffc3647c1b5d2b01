package users

import (
	"context"
	"errors"
)

// ErrNotFound is returned by FindByUsername when no user exists with the
// given name. Callers that need enumeration-safe behaviour must map it to the
// same denial as a failed password check.
var ErrNotFound = errors.New("user not found")

// IdentityProvider is the boundary to the external identity store. Account
// storage, password verification and role assignment live behind it; this
// service only consumes the results.
type IdentityProvider interface {
	FindByUsername(ctx context.Context, username string) (*User, error)
	VerifyPassword(user *User, password string) bool
	GetRoles(ctx context.Context, user *User) ([]string, error)
}
