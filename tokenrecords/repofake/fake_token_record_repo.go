package recordrepofake

import (
	"context"
	"sync"

	"github.com/jrsteele09/go-session-service/tokenrecords"
)

var _ tokenrecords.Repo = (*FakeTokenRecordRepo)(nil)

// FakeTokenRecordRepo is an in-memory token record store. It doubles as the
// "memory" backend in cmd/server and as the store used by the session tests.
// The mutex gives Rotate the same match-then-overwrite atomicity the real
// backends provide.
type FakeTokenRecordRepo struct {
	records map[string]tokenrecords.TokenRecord
	lock    sync.RWMutex
}

func NewFakeTokenRecordRepo() *FakeTokenRecordRepo {
	return &FakeTokenRecordRepo{
		records: make(map[string]tokenrecords.TokenRecord),
	}
}

func (tr *FakeTokenRecordRepo) FindByUsername(_ context.Context, username string) (*tokenrecords.TokenRecord, error) {
	tr.lock.RLock()
	defer tr.lock.RUnlock()

	record, ok := tr.records[username]
	if !ok {
		return nil, tokenrecords.ErrNotFound
	}
	return &record, nil
}

func (tr *FakeTokenRecordRepo) Upsert(_ context.Context, record *tokenrecords.TokenRecord) error {
	tr.lock.Lock()
	defer tr.lock.Unlock()

	tr.records[record.Username] = *record
	return nil
}

func (tr *FakeTokenRecordRepo) Rotate(_ context.Context, username, current, next string) error {
	tr.lock.Lock()
	defer tr.lock.Unlock()

	record, ok := tr.records[username]
	if !ok || record.RefreshToken == "" || record.RefreshToken != current {
		return tokenrecords.ErrTokenMismatch
	}
	record.RefreshToken = next
	tr.records[username] = record
	return nil
}
