package service

import (
	"time"

	"github.com/klwxsrx/kahuna-console/internal/account/domain"
)

type UserData struct {
	ID        domain.UserID
	Username  string
	Roles     []string
	CreatedAt time.Time
}

func toUserData(user *domain.User) UserData {
	return UserData{
		ID:        user.ID,
		Username:  user.Username,
		Roles:     user.Roles,
		CreatedAt: user.CreatedAt,
	}
}

func toUsersData(users []domain.User) []UserData {
	result := make([]UserData, 0, len(users))
	for i := range users {
		result = append(result, toUserData(&users[i]))
	}
	return result
}

func normalizeCredentials(username, password string) (string, string, error) {
	username = normalizeUsername(username)
	if username == "" || password == "" {
		return "", "", ErrCredentialsRequired
	}
	return username, password, nil
}
