package http

import (
	"net/http"

	"github.com/klwxsrx/kahuna-console/internal/account/app/service"
	pkghttp "github.com/klwxsrx/kahuna-console/pkg/http"
)

const PathPrefix = "/api"

type LoginHandler struct {
	authService service.Authentication
}

func NewLoginHandler(authService service.Authentication) LoginHandler {
	return LoginHandler{authService: authService}
}

func (h LoginHandler) Method() string {
	return http.MethodPost
}

func (h LoginHandler) Path() string {
	return PathPrefix + "/auth/login"
}

func (h LoginHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	in, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[CredentialsIn](), err)
	if err != nil {
		return err
	}

	result, err := h.authService.Login(r.Context(), in.Username, in.Password)
	if err != nil {
		return err
	}

	w.SetJSONBody(LoginOut{
		Envelope:  okEnvelope(""),
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
		User:      toUserOut(result.User),
	})
	return nil
}
