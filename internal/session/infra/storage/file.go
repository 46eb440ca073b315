package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/mitchellh/go-homedir"

	"github.com/klwxsrx/kahuna-console/internal/session/app/auth"
)

const (
	DefaultTokenFile = "~/.kahuna/auth_token"

	tokenFileMode = 0o600
	tokenDirMode  = 0o700
)

type fileStorage struct {
	path string
	mu   sync.Mutex
}

// NewFileStorage keeps the token as plain text in a single file, a leading ~ is expanded to the home dir.
func NewFileStorage(path string) (auth.TokenStorage, error) {
	if path == "" {
		path = DefaultTokenFile
	}

	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("expand token file path %s: %w", path, err)
	}

	return &fileStorage{path: expanded}, nil
}

func (s *fileStorage) Load(context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	content, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", auth.ErrTokenNotFound
	}
	if err != nil {
		return "", fmt.Errorf("read token file: %w", err)
	}

	token := strings.TrimSpace(string(content))
	if token == "" {
		return "", auth.ErrTokenNotFound
	}
	return token, nil
}

func (s *fileStorage) Save(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	err := os.MkdirAll(dir, tokenDirMode)
	if err != nil {
		return fmt.Errorf("create token dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".auth_token-*")
	if err != nil {
		return fmt.Errorf("create temp token file: %w", err)
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	err = tmp.Chmod(tokenFileMode)
	if err == nil {
		_, err = tmp.WriteString(token)
	}
	if err == nil {
		err = tmp.Sync()
	}
	closeErr := tmp.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("write temp token file: %w", err)
	}

	err = os.Rename(tmp.Name(), s.path)
	if err != nil {
		return fmt.Errorf("replace token file: %w", err)
	}
	return nil
}

func (s *fileStorage) Remove(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove token file: %w", err)
	}
	return nil
}
