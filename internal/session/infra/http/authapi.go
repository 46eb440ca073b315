package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/klwxsrx/kahuna-console/internal/session/app/auth"
	"github.com/klwxsrx/kahuna-console/internal/session/domain"
	pkghttp "github.com/klwxsrx/kahuna-console/pkg/http"
)

const (
	LoginPath       = "/auth/login"
	CurrentUserPath = "/auth/me"

	envelopeStatusOK = http.StatusOK
)

type authAPI struct {
	client pkghttp.Client
}

func NewAuthAPI(client pkghttp.Client) auth.API {
	return authAPI{client: client}
}

func (a authAPI) Login(ctx context.Context, credentials domain.Credentials) (auth.LoginResult, error) {
	resp, err := a.client.NewRequest(ctx).
		SetBody(LoginIn{
			Username: credentials.Username,
			Password: credentials.Password,
		}).
		Post(LoginPath)
	if err != nil {
		return auth.LoginResult{}, fmt.Errorf("%w: request auth.login: %w", auth.ErrAuthServerUnavailable, err)
	}

	body, err := parseEnvelope[LoginOut](resp)
	if err != nil {
		return auth.LoginResult{}, fmt.Errorf("auth.login response: %w", err)
	}
	if body.Status != envelopeStatusOK {
		return auth.LoginResult{}, &auth.RejectedError{Status: body.Status, Message: body.Message}
	}
	if body.Token == "" || body.User == nil {
		return auth.LoginResult{}, fmt.Errorf("auth.login response: %w: token or user is missing", auth.ErrInvalidResponse)
	}

	return auth.LoginResult{
		Token:   body.Token,
		Session: toSession(*body.User),
	}, nil
}

func (a authAPI) CurrentUser(ctx context.Context, token string) (domain.Session, error) {
	resp, err := a.client.NewRequest(ctx).
		SetHeader(pkghttp.HeaderAuthorization, "Bearer "+token).
		Get(CurrentUserPath)
	if err != nil {
		return domain.Session{}, fmt.Errorf("%w: request auth.me: %w", auth.ErrAuthServerUnavailable, err)
	}

	body, err := parseEnvelope[CurrentUserOut](resp)
	if err != nil {
		return domain.Session{}, fmt.Errorf("auth.me response: %w", err)
	}
	if body.Status != envelopeStatusOK {
		return domain.Session{}, &auth.RejectedError{Status: body.Status, Message: body.Message}
	}

	return toSession(body.UserOut), nil
}

// parseEnvelope reads the body whatever the HTTP status is, the envelope status is authoritative.
func parseEnvelope[T any](resp *resty.Response) (T, error) {
	body, err := pkghttp.ParseJSONResponse[T](resp)
	if err == nil {
		return body, nil
	}
	if resp.StatusCode() >= http.StatusInternalServerError {
		return body, fmt.Errorf("%w: status %d: %w", auth.ErrAuthServerUnavailable, resp.StatusCode(), err)
	}

	return body, fmt.Errorf("%w: %w", auth.ErrInvalidResponse, err)
}
