package domain

import (
	"slices"

	"github.com/klwxsrx/kahuna-console/pkg/auth"
)

type (
	Credentials struct {
		Username string
		Password string
	}

	// Session is the identity confirmed by the auth server.
	Session struct {
		UserID   string
		Username string
		Email    string
		Roles    RoleSet
	}

	// RoleSet keeps roles in server order without duplicates.
	RoleSet []string
)

func NewRoleSet(roles ...string) RoleSet {
	result := make(RoleSet, 0, len(roles))
	for _, role := range roles {
		if role == "" || slices.Contains(result, role) {
			continue
		}
		result = append(result, role)
	}
	return result
}

func (s RoleSet) Contains(role string) bool {
	return slices.Contains(s, role)
}

// HasAny reports whether at least one of required is granted, no requirement always matches.
func (s RoleSet) HasAny(required ...string) bool {
	return auth.HasAnyRole(s, required...)
}
