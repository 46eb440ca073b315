package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/klwxsrx/kahuna-console/internal/account/domain"
)

type userRepository struct {
	mu    sync.RWMutex
	users []domain.User
}

func NewUserRepository() domain.UserRepository {
	return &userRepository{}
}

func (r *userRepository) NextID() domain.UserID {
	return domain.UserID{UUID: uuid.New()}
}

func (r *userRepository) Store(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *user
	stored.Roles = slices.Clone(user.Roles)
	i := slices.IndexFunc(r.users, func(u domain.User) bool { return u.ID == user.ID })
	if i >= 0 {
		r.users[i] = stored
		return nil
	}

	r.users = append(r.users, stored)
	return nil
}

func (r *userRepository) Find(_ context.Context, spec domain.FindUserSpecification) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []domain.User
	for _, user := range r.users {
		if matches(user, spec) {
			user.Roles = slices.Clone(user.Roles)
			result = append(result, user)
		}
	}
	return result, nil
}

func (r *userRepository) FindOne(ctx context.Context, spec domain.FindUserSpecification) (*domain.User, error) {
	users, err := r.Find(ctx, spec)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, domain.ErrUserNotFound
	}
	return &users[0], nil
}

func matches(user domain.User, spec domain.FindUserSpecification) bool {
	if len(spec.IDs) > 0 && !slices.Contains(spec.IDs, user.ID) {
		return false
	}
	if len(spec.Usernames) > 0 && !slices.Contains(spec.Usernames, user.Username) {
		return false
	}
	return true
}
