package auth

import (
	"context"
	"errors"
	"slices"
)

var (
	ErrUnauthenticated  = errors.New("not authenticated")
	ErrPermissionDenied = errors.New("permission denied")
)

type (
	Provider interface {
		Authenticate(ctx context.Context, token string) (Principal, error)
	}

	Principal struct {
		ID      string
		Login   string
		Roles   []string
		TokenID string
	}
)

// HasAnyRole reports whether granted and required intersect, an empty required list is satisfied by anyone.
func HasAnyRole(granted []string, required ...string) bool {
	if len(required) == 0 {
		return true
	}

	for _, role := range required {
		if slices.Contains(granted, role) {
			return true
		}
	}
	return false
}
