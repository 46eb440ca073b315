package guard_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/klwxsrx/kahuna-console/internal/navigation/app/guard"
	navigationguardmock "github.com/klwxsrx/kahuna-console/internal/navigation/app/guard/mock"
	"github.com/klwxsrx/kahuna-console/internal/navigation/domain"
	sessiondomain "github.com/klwxsrx/kahuna-console/internal/session/domain"
	"github.com/klwxsrx/kahuna-console/pkg/log"
)

var (
	loginRoute     = domain.Route{Path: "/login", Name: "login"}
	forbiddenRoute = domain.Route{Path: "/forbidden", Name: "forbidden"}
	authCloseRoute = domain.Route{Path: "/setting/characterSetting/auth/close", Name: "characterAuthClose"}
	homeRoute      = domain.Route{Path: "/home", Name: "home", RequiresAuth: true}
	aboutRoute     = domain.Route{Path: "/about", Name: "about", RequiresAuth: false}
	adminRoute     = domain.Route{Path: "/admin/userManagement", Name: "userManagement", RequiresAuth: true, Roles: []string{"admin"}}
	settingRoute   = domain.Route{Path: "/setting/industrySetting", Name: "industrySetting", RequiresAuth: true, Roles: []string{"admin", "user"}}

	userSession = sessiondomain.Session{UserID: "1", Username: "a", Roles: sessiondomain.RoleSet{"user"}}
)

func TestGuard_Check(t *testing.T) {
	tests := []struct {
		name     string
		to       domain.Route
		from     domain.Route
		session  func(ctrl *gomock.Controller) guard.SessionState
		expected domain.Decision
	}{
		{
			name: "login_page_when_authenticated_redirects_home",
			to:   loginRoute,
			from: homeRoute,
			session: func(ctrl *gomock.Controller) guard.SessionState {
				mock := navigationguardmock.NewSessionState(ctrl)
				mock.EXPECT().IsAuthenticated().Return(true)
				return mock
			},
			expected: domain.RedirectTo("/home", domain.ReasonAlreadyAuthenticated),
		},
		{
			name: "login_page_when_anonymous_allowed",
			to:   loginRoute,
			session: func(ctrl *gomock.Controller) guard.SessionState {
				mock := navigationguardmock.NewSessionState(ctrl)
				mock.EXPECT().IsAuthenticated().Return(false)
				return mock
			},
			expected: domain.Allow(),
		},
		{
			name: "public_page_allowed_without_session_access",
			to:   forbiddenRoute,
			session: func(ctrl *gomock.Controller) guard.SessionState {
				return navigationguardmock.NewSessionState(ctrl)
			},
			expected: domain.Allow(),
		},
		{
			name: "character_auth_close_is_public",
			to:   authCloseRoute,
			session: func(ctrl *gomock.Controller) guard.SessionState {
				return navigationguardmock.NewSessionState(ctrl)
			},
			expected: domain.Allow(),
		},
		{
			name: "route_without_auth_requirement_allowed",
			to:   aboutRoute,
			session: func(ctrl *gomock.Controller) guard.SessionState {
				return navigationguardmock.NewSessionState(ctrl)
			},
			expected: domain.Allow(),
		},
		{
			name: "fast_path_after_login_skips_validation",
			to:   homeRoute,
			from: loginRoute,
			session: func(ctrl *gomock.Controller) guard.SessionState {
				mock := navigationguardmock.NewSessionState(ctrl)
				mock.EXPECT().IsAuthenticated().Return(true).AnyTimes()
				return mock
			},
			expected: domain.Allow(),
		},
		{
			name: "fast_path_still_checks_roles",
			to:   adminRoute,
			from: loginRoute,
			session: func(ctrl *gomock.Controller) guard.SessionState {
				mock := navigationguardmock.NewSessionState(ctrl)
				mock.EXPECT().IsAuthenticated().Return(true).AnyTimes()
				mock.EXPECT().Session().Return(userSession, true)
				return mock
			},
			expected: domain.RedirectTo("/forbidden", domain.ReasonRoleMismatch),
		},
		{
			name: "no_token_anywhere_redirects_login_without_validation",
			to:   homeRoute,
			from: domain.Route{},
			session: func(ctrl *gomock.Controller) guard.SessionState {
				mock := navigationguardmock.NewSessionState(ctrl)
				mock.EXPECT().IsAuthenticated().Return(false).AnyTimes()
				mock.EXPECT().HasDurableToken(gomock.Any()).Return(false)
				return mock
			},
			expected: domain.RedirectTo("/login", domain.ReasonNoToken),
		},
		{
			name: "from_login_without_session_validates",
			to:   homeRoute,
			from: loginRoute,
			session: func(ctrl *gomock.Controller) guard.SessionState {
				mock := navigationguardmock.NewSessionState(ctrl)
				mock.EXPECT().IsAuthenticated().Return(false).AnyTimes()
				mock.EXPECT().HasDurableToken(gomock.Any()).Return(true)
				mock.EXPECT().CheckAuth(gomock.Any()).Return(false)
				return mock
			},
			expected: domain.RedirectTo("/login", domain.ReasonNotAuthenticated),
		},
		{
			name: "restored_token_confirmed",
			to:   homeRoute,
			session: func(ctrl *gomock.Controller) guard.SessionState {
				mock := navigationguardmock.NewSessionState(ctrl)
				mock.EXPECT().IsAuthenticated().Return(false).AnyTimes()
				mock.EXPECT().HasDurableToken(gomock.Any()).Return(true)
				mock.EXPECT().CheckAuth(gomock.Any()).Return(true)
				return mock
			},
			expected: domain.Allow(),
		},
		{
			name: "authenticated_revalidates_without_probing_storage",
			to:   settingRoute,
			from: homeRoute,
			session: func(ctrl *gomock.Controller) guard.SessionState {
				mock := navigationguardmock.NewSessionState(ctrl)
				mock.EXPECT().IsAuthenticated().Return(true).AnyTimes()
				mock.EXPECT().CheckAuth(gomock.Any()).Return(true)
				mock.EXPECT().Session().Return(userSession, true)
				return mock
			},
			expected: domain.Allow(),
		},
		{
			name: "role_mismatch_redirects_forbidden",
			to:   adminRoute,
			from: homeRoute,
			session: func(ctrl *gomock.Controller) guard.SessionState {
				mock := navigationguardmock.NewSessionState(ctrl)
				mock.EXPECT().IsAuthenticated().Return(true).AnyTimes()
				mock.EXPECT().CheckAuth(gomock.Any()).Return(true)
				mock.EXPECT().Session().Return(userSession, true)
				return mock
			},
			expected: domain.RedirectTo("/forbidden", domain.ReasonRoleMismatch),
		},
		{
			name: "validation_failure_redirects_login",
			to:   adminRoute,
			from: homeRoute,
			session: func(ctrl *gomock.Controller) guard.SessionState {
				mock := navigationguardmock.NewSessionState(ctrl)
				mock.EXPECT().IsAuthenticated().Return(true).AnyTimes()
				mock.EXPECT().CheckAuth(gomock.Any()).Return(false)
				return mock
			},
			expected: domain.RedirectTo("/login", domain.ReasonNotAuthenticated),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			g := guard.NewGuard(guard.DefaultConfig(), tt.session(ctrl), log.NewStub())

			decision := g.Check(context.Background(), tt.to, tt.from)

			assert.Equal(t, tt.expected, decision)
		})
	}
}
