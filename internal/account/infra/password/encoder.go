package password

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/klwxsrx/kahuna-console/internal/account/app/encoding"
)

type encoder struct {
	cost int
}

// NewEncoder hashes with bcrypt, a cost outside the bcrypt range falls back to bcrypt.DefaultCost.
func NewEncoder(cost int) encoding.PasswordEncoder {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return encoder{cost: cost}
}

func (e encoder) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), e.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (e encoder) CompareHash(passwordHash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password)) == nil
}
