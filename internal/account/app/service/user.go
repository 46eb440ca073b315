package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/klwxsrx/kahuna-console/internal/account/app/encoding"
	"github.com/klwxsrx/kahuna-console/internal/account/domain"
	"github.com/klwxsrx/kahuna-console/pkg/auth"
	"github.com/klwxsrx/kahuna-console/pkg/event"
	"github.com/klwxsrx/kahuna-console/pkg/persistence"
)

const updateUsersLockName = "update_users"

type (
	User interface {
		Current(context.Context) (UserData, error)
		SignUp(context.Context, SignUpData) (UserData, error)
		List(context.Context) ([]UserData, error)
		EnsureAdmin(ctx context.Context, username, password string) error
	}

	SignUpData struct {
		Username   string
		Password   string
		InviteCode string
	}

	userService struct {
		userRepo        domain.UserRepository
		passwordEncoder encoding.PasswordEncoder
		transaction     persistence.Transaction
		eventDispatcher event.Dispatcher
		inviteCode      string
	}
)

func NewUser(
	userRepo domain.UserRepository,
	passwordEncoder encoding.PasswordEncoder,
	transaction persistence.Transaction,
	eventDispatcher event.Dispatcher,
	inviteCode string,
) User {
	return &userService{
		userRepo:        userRepo,
		passwordEncoder: passwordEncoder,
		transaction:     transaction,
		eventDispatcher: eventDispatcher,
		inviteCode:      inviteCode,
	}
}

func (s *userService) Current(ctx context.Context) (UserData, error) {
	principal, ok := auth.GetPrincipal(ctx)
	if !ok {
		return UserData{}, auth.ErrUnauthenticated
	}

	id, err := uuid.Parse(principal.ID)
	if err != nil {
		return UserData{}, auth.ErrUnauthenticated
	}

	user, err := s.userRepo.FindOne(ctx, domain.FindUserSpecification{IDs: []domain.UserID{{UUID: id}}})
	if errors.Is(err, domain.ErrUserNotFound) {
		return UserData{}, ErrUserNotFound
	}
	if err != nil {
		return UserData{}, fmt.Errorf("find user by id: %w", err)
	}

	return toUserData(user), nil
}

func (s *userService) SignUp(ctx context.Context, data SignUpData) (UserData, error) {
	username, password, err := normalizeCredentials(data.Username, data.Password)
	if err != nil {
		return UserData{}, err
	}
	if data.InviteCode != s.inviteCode {
		return UserData{}, ErrInvalidInviteCode
	}

	passwordHash, err := s.passwordEncoder.HashPassword(password)
	if err != nil {
		return UserData{}, fmt.Errorf("hash password: %w", err)
	}

	var user *domain.User
	err = s.transaction.Execute(ctx, func(ctx context.Context) error {
		_, err := s.userRepo.FindOne(ctx, domain.FindUserSpecification{Usernames: []string{username}})
		if err == nil {
			return ErrUserAlreadyExists
		}
		if !errors.Is(err, domain.ErrUserNotFound) {
			return fmt.Errorf("find user by username: %w", err)
		}

		user = &domain.User{
			ID:           s.userRepo.NextID(),
			Username:     username,
			PasswordHash: passwordHash,
			Roles:        []string{domain.RoleUser},
			CreatedAt:    time.Now(),
		}
		err = s.userRepo.Store(ctx, user)
		if err != nil {
			return fmt.Errorf("store user: %w", err)
		}

		return s.eventDispatcher.Dispatch(ctx, domain.EventSignUp{
			EventID:  uuid.New(),
			UserID:   user.ID,
			Username: user.Username,
		})
	}, updateUsersLockName)
	if err != nil {
		return UserData{}, err
	}

	return toUserData(user), nil
}

func (s *userService) List(ctx context.Context) ([]UserData, error) {
	if err := auth.CheckAnyRole(ctx, domain.RoleAdmin); err != nil {
		return nil, err
	}

	users, err := s.userRepo.Find(ctx, domain.FindUserSpecification{})
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}

	return toUsersData(users), nil
}

// EnsureAdmin creates the admin account when it is missing, an existing account is left as is.
func (s *userService) EnsureAdmin(ctx context.Context, username, password string) error {
	username, password, err := normalizeCredentials(username, password)
	if err != nil {
		return err
	}

	return s.transaction.Execute(ctx, func(ctx context.Context) error {
		_, err := s.userRepo.FindOne(ctx, domain.FindUserSpecification{Usernames: []string{username}})
		if err == nil {
			return nil
		}
		if !errors.Is(err, domain.ErrUserNotFound) {
			return fmt.Errorf("find user by username: %w", err)
		}

		passwordHash, err := s.passwordEncoder.HashPassword(password)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}

		return s.userRepo.Store(ctx, &domain.User{
			ID:           s.userRepo.NextID(),
			Username:     username,
			PasswordHash: passwordHash,
			Roles:        []string{domain.RoleAdmin, domain.RoleUser},
			CreatedAt:    time.Now(),
		})
	}, updateUsersLockName)
}
