package http

import (
	"net/http"

	"github.com/klwxsrx/kahuna-console/internal/account/app/service"
	pkghttp "github.com/klwxsrx/kahuna-console/pkg/http"
)

type CurrentUserHandler struct {
	userService service.User
}

func NewCurrentUserHandler(userService service.User) CurrentUserHandler {
	return CurrentUserHandler{userService: userService}
}

func (h CurrentUserHandler) Method() string {
	return http.MethodGet
}

func (h CurrentUserHandler) Path() string {
	return PathPrefix + "/auth/me"
}

func (h CurrentUserHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	user, err := h.userService.Current(r.Context())
	if err != nil {
		return err
	}

	w.SetJSONBody(CurrentUserOut{
		Envelope: okEnvelope(""),
		UserOut:  toUserOut(user),
	})
	return nil
}
