package http

import (
	"net/http"

	"github.com/klwxsrx/kahuna-console/internal/account/app/service"
	"github.com/klwxsrx/kahuna-console/pkg/auth"
	pkghttp "github.com/klwxsrx/kahuna-console/pkg/http"
)

const internalErrorMessage = "internal server error"

func ErrorMapping() map[int][]error {
	return map[int][]error{
		http.StatusBadRequest:   {service.ErrCredentialsRequired, service.ErrInvalidInviteCode, pkghttp.ErrParsingError},
		http.StatusUnauthorized: {service.ErrInvalidCredentials, auth.ErrUnauthenticated},
		http.StatusForbidden:    {auth.ErrPermissionDenied},
		http.StatusNotFound:     {service.ErrUserNotFound},
		http.StatusConflict:     {service.ErrUserAlreadyExists},
	}
}

// ErrorBody keeps internal error details out of the response.
func ErrorBody(httpCode int, err error) any {
	message := err.Error()
	if httpCode >= http.StatusInternalServerError {
		message = internalErrorMessage
	}

	return Envelope{
		Status:  httpCode,
		Message: message,
	}
}
