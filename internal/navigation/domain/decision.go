package domain

const (
	ReasonAlreadyAuthenticated = "already_authenticated"
	ReasonNoToken              = "no_token"
	ReasonNotAuthenticated     = "not_authenticated"
	ReasonRoleMismatch         = "role_mismatch"
)

// Decision is the guard verdict, an empty Redirect allows the navigation.
type Decision struct {
	Redirect string
	Reason   string
}

func Allow() Decision {
	return Decision{}
}

func RedirectTo(path, reason string) Decision {
	return Decision{Redirect: path, Reason: reason}
}

func (d Decision) IsAllowed() bool {
	return d.Redirect == ""
}
