package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/klwxsrx/kahuna-console/pkg/auth"
)

type AuthTokenProvider func(*http.Request) (string, bool)

func BearerAuthToken(r *http.Request) (string, bool) {
	header := r.Header.Get(HeaderAuthorization)
	token, ok := strings.CutPrefix(header, bearerPrefix)
	if !ok || token == "" {
		return "", false
	}
	return token, true
}

// WithAuth resolves the request principal, a rejected token leaves the request anonymous.
func WithAuth(provider auth.Provider, tokenProviders ...AuthTokenProvider) ServerOption {
	if len(tokenProviders) == 0 {
		tokenProviders = []AuthTokenProvider{BearerAuthToken}
	}

	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var ok bool
			var token string
			for _, tokenProvider := range tokenProviders {
				token, ok = tokenProvider(r)
				if ok {
					break
				}
			}
			if !ok {
				handler.ServeHTTP(w, r)
				return
			}

			principal, err := provider.Authenticate(r.Context(), token)
			if errors.Is(err, auth.ErrUnauthenticated) {
				handler.ServeHTTP(w, r)
				return
			}
			if err != nil {
				writeHandlerError(r.Context(), w, http.StatusInternalServerError, err)
				return
			}

			handler.ServeHTTP(w, r.WithContext(auth.WithPrincipal(r.Context(), principal)))
		})
	})
}

func WithAuthenticationRequirement() RouteOption {
	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !auth.IsAuthenticated(r.Context()) {
				writeHandlerError(r.Context(), w, http.StatusUnauthorized, auth.ErrUnauthenticated)
				return
			}

			handler.ServeHTTP(w, r)
		})
	}
}

func WithRoleRequirement(roles ...string) RouteOption {
	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			err := auth.CheckAnyRole(r.Context(), roles...)
			switch {
			case errors.Is(err, auth.ErrUnauthenticated):
				writeHandlerError(r.Context(), w, http.StatusUnauthorized, err)
			case errors.Is(err, auth.ErrPermissionDenied):
				writeHandlerError(r.Context(), w, http.StatusForbidden, err)
			default:
				handler.ServeHTTP(w, r)
			}
		})
	}
}
