package http

import (
	"net/http"

	"github.com/klwxsrx/kahuna-console/internal/account/app/service"
	pkghttp "github.com/klwxsrx/kahuna-console/pkg/http"
)

type SignUpHandler struct {
	userService service.User
}

func NewSignUpHandler(userService service.User) SignUpHandler {
	return SignUpHandler{userService: userService}
}

func (h SignUpHandler) Method() string {
	return http.MethodPost
}

func (h SignUpHandler) Path() string {
	return PathPrefix + "/auth/signup"
}

func (h SignUpHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	in, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[SignUpIn](), err)
	if err != nil {
		return err
	}

	_, err = h.userService.SignUp(r.Context(), service.SignUpData{
		Username:   in.Username,
		Password:   in.Password,
		InviteCode: in.InviteCode,
	})
	if err != nil {
		return err
	}

	w.SetJSONBody(okEnvelope("registered"))
	return nil
}
