package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/klwxsrx/kahuna-console/internal/account/app/encoding"
	"github.com/klwxsrx/kahuna-console/internal/account/app/revocation"
	"github.com/klwxsrx/kahuna-console/internal/account/app/token"
	"github.com/klwxsrx/kahuna-console/internal/account/domain"
	"github.com/klwxsrx/kahuna-console/pkg/auth"
	"github.com/klwxsrx/kahuna-console/pkg/event"
)

type (
	// Authentication issues tokens and resolves them back to principals, revoked tokens are rejected.
	Authentication interface {
		auth.Provider
		Login(ctx context.Context, username, password string) (LoginResult, error)
		Logout(ctx context.Context, encodedToken string) error
	}

	LoginResult struct {
		Token     string
		ExpiresAt time.Time
		User      UserData
	}

	authenticationService struct {
		userRepo        domain.UserRepository
		tokens          token.Issuer
		revocations     revocation.List
		passwordEncoder encoding.PasswordEncoder
		eventDispatcher event.Dispatcher
	}
)

func NewAuthentication(
	userRepo domain.UserRepository,
	tokens token.Issuer,
	revocations revocation.List,
	passwordEncoder encoding.PasswordEncoder,
	eventDispatcher event.Dispatcher,
) Authentication {
	return &authenticationService{
		userRepo:        userRepo,
		tokens:          tokens,
		revocations:     revocations,
		passwordEncoder: passwordEncoder,
		eventDispatcher: eventDispatcher,
	}
}

func (s *authenticationService) Login(ctx context.Context, username, password string) (LoginResult, error) {
	username, password, err := normalizeCredentials(username, password)
	if err != nil {
		return LoginResult{}, err
	}

	user, err := s.userRepo.FindOne(ctx, domain.FindUserSpecification{Usernames: []string{username}})
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return LoginResult{}, fmt.Errorf("find user by username: %w", err)
	}
	if user == nil || !s.passwordEncoder.CompareHash(user.PasswordHash, password) {
		err = s.eventDispatcher.Dispatch(ctx, domain.EventLoginFailed{
			EventID:  uuid.New(),
			Username: username,
		})
		if err != nil {
			return LoginResult{}, fmt.Errorf("dispatch login failure: %w", err)
		}
		return LoginResult{}, ErrInvalidCredentials
	}

	tokenData, err := s.tokens.Issue(*user)
	if err != nil {
		return LoginResult{}, fmt.Errorf("issue token: %w", err)
	}

	err = s.eventDispatcher.Dispatch(ctx, domain.EventLoginSucceeded{
		EventID:  uuid.New(),
		UserID:   user.ID,
		Username: user.Username,
	})
	if err != nil {
		return LoginResult{}, fmt.Errorf("dispatch login: %w", err)
	}

	return LoginResult{
		Token:     tokenData.Encoded,
		ExpiresAt: tokenData.ExpiresAt,
		User:      toUserData(user),
	}, nil
}

func (s *authenticationService) Authenticate(ctx context.Context, encodedToken string) (auth.Principal, error) {
	tokenData, err := s.parse(ctx, encodedToken)
	if err != nil {
		return auth.Principal{}, err
	}

	user, err := s.userRepo.FindOne(ctx, domain.FindUserSpecification{IDs: []domain.UserID{tokenData.UserID}})
	if errors.Is(err, domain.ErrUserNotFound) {
		return auth.Principal{}, auth.ErrUnauthenticated
	}
	if err != nil {
		return auth.Principal{}, fmt.Errorf("find user by id: %w", err)
	}

	return auth.Principal{
		ID:      user.ID.String(),
		Login:   user.Username,
		Roles:   user.Roles,
		TokenID: tokenData.ID,
	}, nil
}

func (s *authenticationService) Logout(ctx context.Context, encodedToken string) error {
	tokenData, err := s.parse(ctx, encodedToken)
	if err != nil {
		return err
	}

	err = s.revocations.Revoke(ctx, tokenData.ID, tokenData.ExpiresAt)
	if err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}

	return s.eventDispatcher.Dispatch(ctx, domain.EventLogout{
		EventID: uuid.New(),
		UserID:  tokenData.UserID,
		TokenID: tokenData.ID,
	})
}

func (s *authenticationService) parse(ctx context.Context, encodedToken string) (token.Data, error) {
	tokenData, err := s.tokens.Parse(encodedToken)
	if errors.Is(err, token.ErrInvalidToken) {
		return token.Data{}, auth.ErrUnauthenticated
	}
	if err != nil {
		return token.Data{}, fmt.Errorf("parse token: %w", err)
	}

	revoked, err := s.revocations.IsRevoked(ctx, tokenData.ID)
	if err != nil {
		return token.Data{}, fmt.Errorf("check token revocation: %w", err)
	}
	if revoked {
		return token.Data{}, auth.ErrUnauthenticated
	}

	return tokenData, nil
}

func normalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
