//go:generate mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "UserRepository=UserRepository"
package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	Name = "account"

	RoleAdmin = "admin"
	RoleUser  = "user"
)

var ErrUserNotFound = errors.New("user not found")

type (
	User struct {
		ID           UserID
		Username     string
		PasswordHash string
		Roles        []string
		CreatedAt    time.Time
	}

	UserRepository interface {
		NextID() UserID
		Store(context.Context, *User) error
		Find(context.Context, FindUserSpecification) ([]User, error)
		FindOne(context.Context, FindUserSpecification) (*User, error)
	}

	FindUserSpecification struct {
		IDs       []UserID
		Usernames []string
	}

	UserID struct{ uuid.UUID }
)
