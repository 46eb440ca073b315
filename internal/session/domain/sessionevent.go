package domain

import "github.com/google/uuid"

const (
	EventTypeLoggedIn    = "session.logged_in"
	EventTypeLoggedOut   = "session.logged_out"
	EventTypeInvalidated = "session.invalidated"
)

type (
	EventLoggedIn struct {
		EventID  uuid.UUID
		UserID   string
		Username string
		Roles    RoleSet
	}

	EventLoggedOut struct {
		EventID uuid.UUID
		UserID  string
	}

	// EventInvalidated is raised when the server refused a stored token.
	EventInvalidated struct {
		EventID uuid.UUID
		UserID  string
	}
)

func (e EventLoggedIn) ID() uuid.UUID {
	return e.EventID
}

func (e EventLoggedIn) Type() string {
	return EventTypeLoggedIn
}

func (e EventLoggedOut) ID() uuid.UUID {
	return e.EventID
}

func (e EventLoggedOut) Type() string {
	return EventTypeLoggedOut
}

func (e EventInvalidated) ID() uuid.UUID {
	return e.EventID
}

func (e EventInvalidated) Type() string {
	return EventTypeInvalidated
}
