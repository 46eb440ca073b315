//go:generate mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Issuer=Issuer"
package token

import (
	"errors"
	"time"

	"github.com/klwxsrx/kahuna-console/internal/account/domain"
)

var ErrInvalidToken = errors.New("token is invalid or expired")

type (
	Issuer interface {
		Issue(user domain.User) (Data, error)
		Parse(encoded string) (Data, error)
	}

	Data struct {
		Encoded   string
		ID        string
		UserID    domain.UserID
		Roles     []string
		ExpiresAt time.Time
	}
)
