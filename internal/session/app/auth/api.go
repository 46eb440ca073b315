//go:generate mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "API=API"
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/klwxsrx/kahuna-console/internal/session/domain"
)

var (
	ErrRejected              = errors.New("rejected by auth server")
	ErrAuthServerUnavailable = errors.New("authentication server is unavailable")
	ErrInvalidResponse       = errors.New("invalid auth server response")
)

type (
	// API is the remote side of the session: POST /auth/login and GET /auth/me.
	API interface {
		Login(ctx context.Context, credentials domain.Credentials) (LoginResult, error)
		CurrentUser(ctx context.Context, token string) (domain.Session, error)
	}

	LoginResult struct {
		Token   string
		Session domain.Session
	}

	// RejectedError is a well-formed envelope whose status is not 200.
	RejectedError struct {
		Status  int
		Message string
	}
)

func (e *RejectedError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s with status %d", ErrRejected, e.Status)
	}
	return fmt.Sprintf("%s with status %d: %s", ErrRejected, e.Status, e.Message)
}

func (e *RejectedError) Unwrap() error {
	return ErrRejected
}
