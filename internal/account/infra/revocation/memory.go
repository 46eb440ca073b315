package revocation

import (
	"context"
	"sync"
	"time"

	"github.com/klwxsrx/kahuna-console/internal/account/app/revocation"
)

type memoryList struct {
	mu      sync.Mutex
	revoked map[string]time.Time
}

func NewMemoryList() revocation.List {
	return &memoryList{revoked: make(map[string]time.Time)}
}

func (l *memoryList) Revoke(_ context.Context, tokenID string, till time.Time) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	for id, expiresAt := range l.revoked {
		if !expiresAt.After(now) {
			delete(l.revoked, id)
		}
	}

	if till.After(now) {
		l.revoked[tokenID] = till
	}
	return nil
}

func (l *memoryList) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	till, ok := l.revoked[tokenID]
	return ok && till.After(time.Now()), nil
}
