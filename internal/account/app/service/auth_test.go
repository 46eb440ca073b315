package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	encodingmock "github.com/klwxsrx/kahuna-console/internal/account/app/encoding/mock"
	revocationmock "github.com/klwxsrx/kahuna-console/internal/account/app/revocation/mock"
	"github.com/klwxsrx/kahuna-console/internal/account/app/service"
	"github.com/klwxsrx/kahuna-console/internal/account/app/token"
	tokenmock "github.com/klwxsrx/kahuna-console/internal/account/app/token/mock"
	"github.com/klwxsrx/kahuna-console/internal/account/domain"
	domainmock "github.com/klwxsrx/kahuna-console/internal/account/domain/mock"
	"github.com/klwxsrx/kahuna-console/pkg/auth"
	"github.com/klwxsrx/kahuna-console/pkg/event"
	eventmock "github.com/klwxsrx/kahuna-console/pkg/event/mock"
)

type authMocks struct {
	userRepo        *domainmock.UserRepository
	tokens          *tokenmock.Issuer
	revocations     *revocationmock.List
	passwordEncoder *encodingmock.PasswordEncoder
	eventDispatcher *eventmock.Dispatcher
}

func newAuthMocks(ctrl *gomock.Controller) authMocks {
	return authMocks{
		userRepo:        domainmock.NewUserRepository(ctrl),
		tokens:          tokenmock.NewIssuer(ctrl),
		revocations:     revocationmock.NewList(ctrl),
		passwordEncoder: encodingmock.NewPasswordEncoder(ctrl),
		eventDispatcher: eventmock.NewDispatcher(ctrl),
	}
}

func (m authMocks) service() service.Authentication {
	return service.NewAuthentication(m.userRepo, m.tokens, m.revocations, m.passwordEncoder, m.eventDispatcher)
}

func newTestUser() *domain.User {
	return &domain.User{
		ID:           domain.UserID{UUID: uuid.New()},
		Username:     "pilot",
		PasswordHash: "hash",
		Roles:        []string{domain.RoleUser},
	}
}

func TestAuthentication_Login(t *testing.T) {
	user := newTestUser()
	expiresAt := time.Now().Add(time.Hour)

	tests := []struct {
		name     string
		username string
		password string
		prepare  func(m authMocks)
		expect   func(t *testing.T, result service.LoginResult, err error)
	}{
		{
			name:     "success_with_normalized_username",
			username: "  Pilot ",
			password: "secret",
			prepare: func(m authMocks) {
				m.userRepo.EXPECT().
					FindOne(gomock.Any(), domain.FindUserSpecification{Usernames: []string{"pilot"}}).
					Return(user, nil)
				m.passwordEncoder.EXPECT().CompareHash("hash", "secret").Return(true)
				m.tokens.EXPECT().Issue(*user).Return(token.Data{Encoded: "jwt", ExpiresAt: expiresAt}, nil)
				m.eventDispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, events ...event.Event) error {
						require.Len(t, events, 1)
						assert.IsType(t, domain.EventLoginSucceeded{}, events[0])
						return nil
					})
			},
			expect: func(t *testing.T, result service.LoginResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, "jwt", result.Token)
				assert.Equal(t, expiresAt, result.ExpiresAt)
				assert.Equal(t, user.ID, result.User.ID)
				assert.Equal(t, []string{domain.RoleUser}, result.User.Roles)
			},
		},
		{
			name:     "error_when_credentials_empty",
			username: " ",
			password: "secret",
			prepare:  func(authMocks) {},
			expect: func(t *testing.T, _ service.LoginResult, err error) {
				assert.ErrorIs(t, err, service.ErrCredentialsRequired)
			},
		},
		{
			name:     "error_when_user_unknown",
			username: "ghost",
			password: "secret",
			prepare: func(m authMocks) {
				m.userRepo.EXPECT().FindOne(gomock.Any(), gomock.Any()).Return(nil, domain.ErrUserNotFound)
				m.eventDispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, events ...event.Event) error {
						assert.Equal(t, domain.EventLoginFailed{EventID: events[0].ID(), Username: "ghost"}, events[0])
						return nil
					})
			},
			expect: func(t *testing.T, _ service.LoginResult, err error) {
				assert.ErrorIs(t, err, service.ErrInvalidCredentials)
			},
		},
		{
			name:     "error_when_password_wrong",
			username: "pilot",
			password: "wrong",
			prepare: func(m authMocks) {
				m.userRepo.EXPECT().FindOne(gomock.Any(), gomock.Any()).Return(user, nil)
				m.passwordEncoder.EXPECT().CompareHash("hash", "wrong").Return(false)
				m.eventDispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(nil)
			},
			expect: func(t *testing.T, _ service.LoginResult, err error) {
				assert.ErrorIs(t, err, service.ErrInvalidCredentials)
			},
		},
		{
			name:     "error_when_repo_fails",
			username: "pilot",
			password: "secret",
			prepare: func(m authMocks) {
				m.userRepo.EXPECT().FindOne(gomock.Any(), gomock.Any()).Return(nil, errors.New("unexpected"))
			},
			expect: func(t *testing.T, _ service.LoginResult, err error) {
				assert.Error(t, err)
				assert.NotErrorIs(t, err, service.ErrInvalidCredentials)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := newAuthMocks(ctrl)
			tc.prepare(m)

			result, err := m.service().Login(context.Background(), tc.username, tc.password)
			tc.expect(t, result, err)
		})
	}
}

func TestAuthentication_Authenticate(t *testing.T) {
	user := newTestUser()
	user.Roles = []string{domain.RoleAdmin, domain.RoleUser}
	tokenData := token.Data{ID: "jti", UserID: user.ID, Roles: []string{domain.RoleUser}}

	tests := []struct {
		name    string
		prepare func(m authMocks)
		expect  func(t *testing.T, principal auth.Principal, err error)
	}{
		{
			name: "success_with_fresh_roles",
			prepare: func(m authMocks) {
				m.tokens.EXPECT().Parse("jwt").Return(tokenData, nil)
				m.revocations.EXPECT().IsRevoked(gomock.Any(), "jti").Return(false, nil)
				m.userRepo.EXPECT().
					FindOne(gomock.Any(), domain.FindUserSpecification{IDs: []domain.UserID{user.ID}}).
					Return(user, nil)
			},
			expect: func(t *testing.T, principal auth.Principal, err error) {
				require.NoError(t, err)
				assert.Equal(t, auth.Principal{
					ID:      user.ID.String(),
					Login:   "pilot",
					Roles:   []string{domain.RoleAdmin, domain.RoleUser},
					TokenID: "jti",
				}, principal)
			},
		},
		{
			name: "unauthenticated_when_token_invalid",
			prepare: func(m authMocks) {
				m.tokens.EXPECT().Parse("jwt").Return(token.Data{}, token.ErrInvalidToken)
			},
			expect: func(t *testing.T, _ auth.Principal, err error) {
				assert.ErrorIs(t, err, auth.ErrUnauthenticated)
			},
		},
		{
			name: "unauthenticated_when_token_revoked",
			prepare: func(m authMocks) {
				m.tokens.EXPECT().Parse("jwt").Return(tokenData, nil)
				m.revocations.EXPECT().IsRevoked(gomock.Any(), "jti").Return(true, nil)
			},
			expect: func(t *testing.T, _ auth.Principal, err error) {
				assert.ErrorIs(t, err, auth.ErrUnauthenticated)
			},
		},
		{
			name: "unauthenticated_when_user_deleted",
			prepare: func(m authMocks) {
				m.tokens.EXPECT().Parse("jwt").Return(tokenData, nil)
				m.revocations.EXPECT().IsRevoked(gomock.Any(), "jti").Return(false, nil)
				m.userRepo.EXPECT().FindOne(gomock.Any(), gomock.Any()).Return(nil, domain.ErrUserNotFound)
			},
			expect: func(t *testing.T, _ auth.Principal, err error) {
				assert.ErrorIs(t, err, auth.ErrUnauthenticated)
			},
		},
		{
			name: "error_when_revocation_list_fails",
			prepare: func(m authMocks) {
				m.tokens.EXPECT().Parse("jwt").Return(tokenData, nil)
				m.revocations.EXPECT().IsRevoked(gomock.Any(), "jti").Return(false, errors.New("unexpected"))
			},
			expect: func(t *testing.T, _ auth.Principal, err error) {
				assert.Error(t, err)
				assert.NotErrorIs(t, err, auth.ErrUnauthenticated)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := newAuthMocks(ctrl)
			tc.prepare(m)

			principal, err := m.service().Authenticate(context.Background(), "jwt")
			tc.expect(t, principal, err)
		})
	}
}

func TestAuthentication_Logout(t *testing.T) {
	userID := domain.UserID{UUID: uuid.New()}
	expiresAt := time.Now().Add(time.Hour)

	t.Run("revokes_until_expiry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newAuthMocks(ctrl)
		m.tokens.EXPECT().Parse("jwt").Return(token.Data{ID: "jti", UserID: userID, ExpiresAt: expiresAt}, nil)
		m.revocations.EXPECT().IsRevoked(gomock.Any(), "jti").Return(false, nil)
		m.revocations.EXPECT().Revoke(gomock.Any(), "jti", expiresAt).Return(nil)
		m.eventDispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, events ...event.Event) error {
				evt, ok := events[0].(domain.EventLogout)
				require.True(t, ok)
				assert.Equal(t, userID, evt.UserID)
				assert.Equal(t, "jti", evt.TokenID)
				return nil
			})

		assert.NoError(t, m.service().Logout(context.Background(), "jwt"))
	})

	t.Run("unauthenticated_when_already_revoked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newAuthMocks(ctrl)
		m.tokens.EXPECT().Parse("jwt").Return(token.Data{ID: "jti"}, nil)
		m.revocations.EXPECT().IsRevoked(gomock.Any(), "jti").Return(true, nil)

		assert.ErrorIs(t, m.service().Logout(context.Background(), "jwt"), auth.ErrUnauthenticated)
	})
}
