package auth

import "context"

const principalContextKey contextKey = iota

type contextKey int

func WithPrincipal(ctx context.Context, principal Principal) context.Context {
	return context.WithValue(ctx, principalContextKey, principal)
}

func GetPrincipal(ctx context.Context) (Principal, bool) {
	principal, ok := ctx.Value(principalContextKey).(Principal)
	return principal, ok
}

func IsAuthenticated(ctx context.Context) bool {
	_, ok := GetPrincipal(ctx)
	return ok
}
