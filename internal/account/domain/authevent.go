package domain

import (
	"fmt"

	"github.com/google/uuid"
)

const (
	AuditTopic = "persistent://public/default/account-audit"

	EventTypeLoginSucceeded = "login_succeeded"
	EventTypeLoginFailed    = "login_failed"
	EventTypeLogout         = "logout"
	EventTypeSignUp         = "signup"
)

type (
	EventLoginSucceeded struct {
		EventID  uuid.UUID `json:"eventID"`
		UserID   UserID    `json:"userID"`
		Username string    `json:"username"`
	}

	EventLoginFailed struct {
		EventID  uuid.UUID `json:"eventID"`
		Username string    `json:"username"`
	}

	EventLogout struct {
		EventID uuid.UUID `json:"eventID"`
		UserID  UserID    `json:"userID"`
		TokenID string    `json:"tokenID"`
	}

	EventSignUp struct {
		EventID  uuid.UUID `json:"eventID"`
		UserID   UserID    `json:"userID"`
		Username string    `json:"username"`
	}
)

func (e EventLoginSucceeded) ID() uuid.UUID {
	return e.EventID
}

func (e EventLoginSucceeded) Type() string {
	return fmt.Sprintf("%s.%s", Name, EventTypeLoginSucceeded)
}

func (e EventLoginFailed) ID() uuid.UUID {
	return e.EventID
}

func (e EventLoginFailed) Type() string {
	return fmt.Sprintf("%s.%s", Name, EventTypeLoginFailed)
}

func (e EventLogout) ID() uuid.UUID {
	return e.EventID
}

func (e EventLogout) Type() string {
	return fmt.Sprintf("%s.%s", Name, EventTypeLogout)
}

func (e EventSignUp) ID() uuid.UUID {
	return e.EventID
}

func (e EventSignUp) Type() string {
	return fmt.Sprintf("%s.%s", Name, EventTypeSignUp)
}
