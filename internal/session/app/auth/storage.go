//go:generate mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "TokenStorage=TokenStorage"
package auth

import (
	"context"
	"errors"
)

var ErrTokenNotFound = errors.New("token not found")

// TokenStorage keeps the bearer token between process runs, it is never trusted without server validation.
type TokenStorage interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Remove(ctx context.Context) error
}
