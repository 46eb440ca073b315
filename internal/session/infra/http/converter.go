package http

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/klwxsrx/kahuna-console/internal/session/domain"
)

type (
	LoginIn struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	Envelope struct {
		Status  int    `json:"status"`
		Message string `json:"message,omitempty"`
	}

	LoginOut struct {
		Envelope
		Token string   `json:"token"`
		User  *UserOut `json:"user"`
	}

	CurrentUserOut struct {
		Envelope
		UserOut
	}

	UserOut struct {
		ID       UserID   `json:"id"`
		Username string   `json:"username"`
		Email    string   `json:"email,omitempty"`
		Roles    []string `json:"roles"`
	}

	// UserID accepts both string and numeric ids.
	UserID string
)

func (id *UserID) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = UserID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("user id %s is neither string nor number", data)
	}
	*id = UserID(n.String())
	return nil
}

func toSession(user UserOut) domain.Session {
	return domain.Session{
		UserID:   string(user.ID),
		Username: user.Username,
		Email:    user.Email,
		Roles:    domain.NewRoleSet(user.Roles...),
	}
}
