package auth

import "context"

// CheckAnyRole verifies the principal stored in ctx, this is the server-side counterpart of
// client route role hints.
func CheckAnyRole(ctx context.Context, roles ...string) error {
	principal, ok := GetPrincipal(ctx)
	if !ok {
		return ErrUnauthenticated
	}
	if !HasAnyRole(principal.Roles, roles...) {
		return ErrPermissionDenied
	}

	return nil
}
