package storage

import (
	"context"
	"sync"

	"github.com/klwxsrx/kahuna-console/internal/session/app/auth"
)

type memoryStorage struct {
	mu    sync.Mutex
	token string
}

func NewMemoryStorage(token string) auth.TokenStorage {
	return &memoryStorage{token: token}
}

func (s *memoryStorage) Load(context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token == "" {
		return "", auth.ErrTokenNotFound
	}
	return s.token, nil
}

func (s *memoryStorage) Save(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	return nil
}

func (s *memoryStorage) Remove(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	return nil
}
