package http

import (
	"net/http"
	"time"

	"github.com/klwxsrx/kahuna-console/internal/account/app/service"
)

type (
	Envelope struct {
		Status  int    `json:"status"`
		Message string `json:"message,omitempty"`
	}

	CredentialsIn struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	SignUpIn struct {
		CredentialsIn
		InviteCode string `json:"inviteCode"`
	}

	UserOut struct {
		ID        string    `json:"id"`
		Username  string    `json:"username"`
		Roles     []string  `json:"roles"`
		CreatedAt time.Time `json:"createdAt"`
	}

	LoginOut struct {
		Envelope
		Token     string    `json:"token"`
		ExpiresAt time.Time `json:"expiresAt"`
		User      UserOut   `json:"user"`
	}

	CurrentUserOut struct {
		Envelope
		UserOut
	}

	UsersOut struct {
		Envelope
		Users []UserOut `json:"users"`
	}
)

func okEnvelope(message string) Envelope {
	return Envelope{Status: http.StatusOK, Message: message}
}

func toUserOut(user service.UserData) UserOut {
	roles := user.Roles
	if roles == nil {
		roles = []string{}
	}

	return UserOut{
		ID:        user.ID.String(),
		Username:  user.Username,
		Roles:     roles,
		CreatedAt: user.CreatedAt,
	}
}

func toUsersOut(users []service.UserData) []UserOut {
	result := make([]UserOut, 0, len(users))
	for _, user := range users {
		result = append(result, toUserOut(user))
	}
	return result
}
