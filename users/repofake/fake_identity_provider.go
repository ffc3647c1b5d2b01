package userrepofake

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/jrsteele09/go-session-service/users"
)

var _ users.IdentityProvider = (*FakeIdentityProvider)(nil)

// FakeIdentityProvider is an in-memory identity store used in tests and as
// the demo backend wired by cmd/server.
type FakeIdentityProvider struct {
	byUsername map[string]*users.User
	lock       sync.RWMutex
}

func NewFakeIdentityProvider() *FakeIdentityProvider {
	return &FakeIdentityProvider{
		byUsername: make(map[string]*users.User),
	}
}

// AddUser hashes the password and stores the user, assigning an ID when none
// is set.
func (ip *FakeIdentityProvider) AddUser(username, password string, roles []string) (*users.User, error) {
	hash, err := users.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &users.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: hash,
		Roles:        append([]string(nil), roles...),
	}

	ip.lock.Lock()
	defer ip.lock.Unlock()
	ip.byUsername[username] = user
	return user, nil
}

func (ip *FakeIdentityProvider) FindByUsername(_ context.Context, username string) (*users.User, error) {
	ip.lock.RLock()
	defer ip.lock.RUnlock()

	user, ok := ip.byUsername[username]
	if !ok {
		return nil, users.ErrNotFound
	}
	copied := *user
	copied.Roles = append([]string(nil), user.Roles...)
	return &copied, nil
}

func (ip *FakeIdentityProvider) VerifyPassword(user *users.User, password string) bool {
	if user == nil {
		return false
	}
	return users.CheckPasswordHash(password, user.PasswordHash)
}

func (ip *FakeIdentityProvider) GetRoles(_ context.Context, user *users.User) ([]string, error) {
	if user == nil {
		return nil, users.ErrNotFound
	}
	return append([]string(nil), user.Roles...), nil
}
