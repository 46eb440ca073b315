package http

import (
	"net/http"

	"github.com/klwxsrx/kahuna-console/internal/account/app/service"
	"github.com/klwxsrx/kahuna-console/pkg/auth"
	pkghttp "github.com/klwxsrx/kahuna-console/pkg/http"
)

type LogoutHandler struct {
	authService service.Authentication
}

func NewLogoutHandler(authService service.Authentication) LogoutHandler {
	return LogoutHandler{authService: authService}
}

func (h LogoutHandler) Method() string {
	return http.MethodPost
}

func (h LogoutHandler) Path() string {
	return PathPrefix + "/auth/logout"
}

func (h LogoutHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	token, ok := pkghttp.BearerAuthToken(r)
	if !ok {
		return auth.ErrUnauthenticated
	}

	err := h.authService.Logout(r.Context(), token)
	if err != nil {
		return err
	}

	w.SetJSONBody(okEnvelope("logged out"))
	return nil
}
