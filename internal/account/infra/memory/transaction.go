package memory

import (
	"context"
	"sync"

	"github.com/klwxsrx/kahuna-console/pkg/persistence"
)

const heldLocksContextKey contextKey = iota

type (
	contextKey int

	transaction struct {
		mu    sync.Mutex
		locks map[string]*sync.Mutex
	}
)

// NewTransaction serializes fn by lock names, the in-memory store has nothing to roll back.
func NewTransaction() persistence.Transaction {
	return &transaction{locks: make(map[string]*sync.Mutex)}
}

func (t *transaction) Execute(ctx context.Context, fn func(ctx context.Context) error, lockNames ...string) error {
	held, _ := ctx.Value(heldLocksContextKey).(map[string]struct{})
	acquired := make(map[string]struct{}, len(held)+len(lockNames))
	for name := range held {
		acquired[name] = struct{}{}
	}

	for _, name := range lockNames {
		if _, ok := acquired[name]; ok {
			continue
		}

		lock := t.lock(name)
		lock.Lock()
		defer lock.Unlock()
		acquired[name] = struct{}{}
	}

	return fn(context.WithValue(ctx, heldLocksContextKey, acquired))
}

func (t *transaction) lock(name string) *sync.Mutex {
	t.mu.Lock()
	defer t.mu.Unlock()

	lock, ok := t.locks[name]
	if !ok {
		lock = &sync.Mutex{}
		t.locks[name] = lock
	}
	return lock
}
