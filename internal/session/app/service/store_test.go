package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/klwxsrx/kahuna-console/internal/session/app/auth"
	sessionauthmock "github.com/klwxsrx/kahuna-console/internal/session/app/auth/mock"
	"github.com/klwxsrx/kahuna-console/internal/session/app/service"
	"github.com/klwxsrx/kahuna-console/internal/session/domain"
	"github.com/klwxsrx/kahuna-console/pkg/event"
	"github.com/klwxsrx/kahuna-console/pkg/log"
	pkgtime "github.com/klwxsrx/kahuna-console/pkg/time"
)

var (
	testCredentials = domain.Credentials{Username: "a", Password: "p"}
	testSession     = domain.Session{UserID: "1", Username: "a", Roles: domain.RoleSet{"user"}}
)

type eventRecorder struct {
	mu     sync.Mutex
	events []string
}

func (r *eventRecorder) dispatcher() event.Dispatcher {
	record := func(_ context.Context, evt event.Event) error {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.events = append(r.events, evt.Type())
		return nil
	}
	return event.NewDispatcher(map[string][]event.Handler{
		domain.EventTypeLoggedIn:    {record},
		domain.EventTypeLoggedOut:   {record},
		domain.EventTypeInvalidated: {record},
	})
}

func (r *eventRecorder) recorded() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.events...)
}

type storeFixture struct {
	api     *sessionauthmock.API
	storage *sessionauthmock.TokenStorage
	events  *eventRecorder
	clock   pkgtime.AdjustableClock
	store   service.Store
	ctx     context.Context
}

func newStoreFixture(t *testing.T) *storeFixture {
	ctrl := gomock.NewController(t)
	f := &storeFixture{
		api:     sessionauthmock.NewAPI(ctrl),
		storage: sessionauthmock.NewTokenStorage(ctrl),
		events:  &eventRecorder{},
		clock:   pkgtime.NewAdjustableClock(),
	}
	f.ctx = f.clock.Set(context.Background(), time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	f.store = service.NewStore(
		f.api,
		f.storage,
		f.events.dispatcher(),
		log.NewStub(),
		service.WithClock(f.clock),
		service.WithValidationTTL(service.DefaultValidationTTL),
	)
	return f
}

func (f *storeFixture) restore(token string) {
	f.storage.EXPECT().Load(gomock.Any()).Return(token, nil)
	f.store.Restore(f.ctx)
}

func (f *storeFixture) login(t *testing.T) {
	f.api.EXPECT().Login(gomock.Any(), testCredentials).Return(auth.LoginResult{Token: "T1", Session: testSession}, nil)
	f.storage.EXPECT().Save(gomock.Any(), "T1").Return(nil)
	require.NoError(t, f.store.Login(f.ctx, testCredentials))
}

func TestStore_Login_Succeeds(t *testing.T) {
	f := newStoreFixture(t)

	f.login(t)

	token, ok := f.store.Token()
	assert.True(t, ok)
	assert.Equal(t, "T1", token)
	session, ok := f.store.Session()
	assert.True(t, ok)
	assert.Equal(t, domain.RoleSet{"user"}, session.Roles)
	assert.True(t, f.store.IsAuthenticated())
	assert.False(t, f.store.IsLoading())

	snapshot := f.store.Snapshot()
	require.NotNil(t, snapshot.LastCheckedAt)
	assert.Equal(t, f.clock.Now(f.ctx), *snapshot.LastCheckedAt)
	assert.True(t, snapshot.LastResult)
	assert.Equal(t, []string{domain.EventTypeLoggedIn}, f.events.recorded())

	assert.True(t, f.store.CheckAuth(f.ctx), "primed cache must not call the server")
}

func TestStore_Login_Fails(t *testing.T) {
	tests := []struct {
		name            string
		apiErr          error
		expectedMessage string
		expectedErr     error
	}{
		{
			name:            "rejected_with_message",
			apiErr:          &auth.RejectedError{Status: 401, Message: "invalid username or password"},
			expectedMessage: "invalid username or password",
			expectedErr:     service.ErrLoginRejected,
		},
		{
			name:            "rejected_without_message",
			apiErr:          &auth.RejectedError{Status: 500},
			expectedMessage: "login failed",
			expectedErr:     auth.ErrRejected,
		},
		{
			name:            "invalid_response",
			apiErr:          auth.ErrInvalidResponse,
			expectedMessage: "login failed",
			expectedErr:     service.ErrLoginRejected,
		},
		{
			name:            "server_unavailable",
			apiErr:          auth.ErrAuthServerUnavailable,
			expectedMessage: "authentication server is unavailable",
			expectedErr:     auth.ErrAuthServerUnavailable,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newStoreFixture(t)
			f.login(t)

			f.api.EXPECT().Login(gomock.Any(), gomock.Any()).Return(auth.LoginResult{}, tt.apiErr)
			err := f.store.Login(f.ctx, domain.Credentials{Username: "b", Password: "x"})

			assert.ErrorIs(t, err, tt.expectedErr)
			assert.Equal(t, tt.expectedMessage, f.store.LastError())
			token, _ := f.store.Token()
			assert.Equal(t, "T1", token, "prior state must be untouched")
			assert.True(t, f.store.IsAuthenticated())
			assert.Equal(t, []string{domain.EventTypeLoggedIn}, f.events.recorded())

			f.store.ClearError()
			assert.Empty(t, f.store.LastError())
			assert.True(t, f.store.IsAuthenticated())
		})
	}
}

func TestStore_Login_SaveFailureDoesNotFail(t *testing.T) {
	f := newStoreFixture(t)
	f.api.EXPECT().Login(gomock.Any(), testCredentials).Return(auth.LoginResult{Token: "T1", Session: testSession}, nil)
	f.storage.EXPECT().Save(gomock.Any(), "T1").Return(errors.New("disk full"))

	require.NoError(t, f.store.Login(f.ctx, testCredentials))
	assert.True(t, f.store.IsAuthenticated())
}

func TestStore_Login_ReportsLoading(t *testing.T) {
	f := newStoreFixture(t)
	started := make(chan struct{})
	release := make(chan struct{})
	f.api.EXPECT().Login(gomock.Any(), testCredentials).DoAndReturn(
		func(context.Context, domain.Credentials) (auth.LoginResult, error) {
			close(started)
			<-release
			return auth.LoginResult{}, &auth.RejectedError{Status: 401}
		},
	)

	done := make(chan error)
	go func() {
		done <- f.store.Login(f.ctx, testCredentials)
	}()

	<-started
	assert.True(t, f.store.IsLoading())
	close(release)
	assert.Error(t, <-done)
	assert.False(t, f.store.IsLoading())
}

func TestStore_Logout(t *testing.T) {
	f := newStoreFixture(t)
	f.login(t)
	f.storage.EXPECT().Remove(gomock.Any()).Return(nil).Times(2)

	f.store.Logout(f.ctx)
	f.store.Logout(f.ctx)

	_, hasToken := f.store.Token()
	_, hasSession := f.store.Session()
	assert.False(t, hasToken)
	assert.False(t, hasSession)
	assert.False(t, f.store.IsAuthenticated())
	assert.Nil(t, f.store.Snapshot().LastCheckedAt)
	assert.Equal(t, []string{domain.EventTypeLoggedIn, domain.EventTypeLoggedOut}, f.events.recorded())

	assert.False(t, f.store.CheckAuth(f.ctx), "no token means no server call")
}

func TestStore_CheckAuth_WithoutToken(t *testing.T) {
	f := newStoreFixture(t)
	f.storage.EXPECT().Load(gomock.Any()).Return("", auth.ErrTokenNotFound)
	f.store.Restore(f.ctx)

	assert.False(t, f.store.CheckAuth(f.ctx))
}

func TestStore_CheckAuth_CachesWithinWindow(t *testing.T) {
	f := newStoreFixture(t)
	f.restore("T0")
	assert.False(t, f.store.IsAuthenticated(), "restored token alone is not a session")

	f.api.EXPECT().CurrentUser(gomock.Any(), "T0").Return(testSession, nil).Times(1)
	assert.True(t, f.store.CheckAuth(f.ctx))
	assert.True(t, f.store.CheckAuth(f.clock.Advance(f.ctx, service.DefaultValidationTTL-time.Second)))

	f.api.EXPECT().CurrentUser(gomock.Any(), "T0").Return(testSession, nil).Times(1)
	assert.True(t, f.store.CheckAuth(f.clock.Advance(f.ctx, service.DefaultValidationTTL)))

	session, ok := f.store.Session()
	assert.True(t, ok)
	assert.Empty(t, session.Email)
}

func TestStore_CheckAuth_Invalidates(t *testing.T) {
	tests := []struct {
		name   string
		apiErr error
	}{
		{name: "rejected_envelope", apiErr: &auth.RejectedError{Status: 401}},
		{name: "transport_failure", apiErr: auth.ErrAuthServerUnavailable},
		{name: "parse_failure", apiErr: auth.ErrInvalidResponse},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newStoreFixture(t)
			f.restore("T0")
			f.api.EXPECT().CurrentUser(gomock.Any(), "T0").Return(domain.Session{}, tt.apiErr)
			f.storage.EXPECT().Remove(gomock.Any()).Return(nil)

			assert.False(t, f.store.CheckAuth(f.ctx))

			snapshot := f.store.Snapshot()
			assert.Empty(t, snapshot.Token)
			assert.Nil(t, snapshot.Session)
			require.NotNil(t, snapshot.LastCheckedAt)
			assert.False(t, snapshot.LastResult)
			assert.Equal(t, []string{domain.EventTypeInvalidated}, f.events.recorded())

			assert.False(t, f.store.CheckAuth(f.ctx))
		})
	}
}

func TestStore_CheckAuth_SharesInFlightValidation(t *testing.T) {
	const callers = 10
	f := newStoreFixture(t)
	f.restore("T0")

	release := make(chan struct{})
	f.api.EXPECT().CurrentUser(gomock.Any(), "T0").DoAndReturn(
		func(context.Context, string) (domain.Session, error) {
			<-release
			return testSession, nil
		},
	).Times(1)

	var wg sync.WaitGroup
	results := make(chan bool, callers)
	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- f.store.CheckAuth(f.ctx)
		}()
	}

	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()
	close(results)

	for result := range results {
		assert.True(t, result)
	}
}

func TestStore_CheckAuth_DropsResultAfterLogout(t *testing.T) {
	f := newStoreFixture(t)
	f.restore("T0")

	started := make(chan struct{})
	release := make(chan struct{})
	f.api.EXPECT().CurrentUser(gomock.Any(), "T0").DoAndReturn(
		func(context.Context, string) (domain.Session, error) {
			close(started)
			<-release
			return testSession, nil
		},
	)
	f.storage.EXPECT().Remove(gomock.Any()).Return(nil)

	done := make(chan bool)
	go func() {
		done <- f.store.CheckAuth(f.ctx)
	}()

	<-started
	f.store.Logout(f.ctx)
	close(release)

	assert.False(t, <-done)
	assert.False(t, f.store.IsAuthenticated())
	_, hasSession := f.store.Session()
	assert.False(t, hasSession)
}

func TestStore_CheckAuth_CallerCancellation(t *testing.T) {
	f := newStoreFixture(t)
	f.restore("T0")

	started := make(chan struct{})
	release := make(chan struct{})
	f.api.EXPECT().CurrentUser(gomock.Any(), "T0").DoAndReturn(
		func(context.Context, string) (domain.Session, error) {
			close(started)
			<-release
			return testSession, nil
		},
	)

	ctx, cancel := context.WithCancel(f.ctx)
	done := make(chan bool)
	go func() {
		done <- f.store.CheckAuth(ctx)
	}()

	<-started
	cancel()
	assert.False(t, <-done)
	token, _ := f.store.Token()
	assert.Equal(t, "T0", token, "cancelled caller must not mutate state")

	close(release)
	assert.Eventually(t, f.store.IsAuthenticated, time.Second, 10*time.Millisecond)
}

func TestStore_Restore_IgnoresStorageFailure(t *testing.T) {
	f := newStoreFixture(t)
	f.storage.EXPECT().Load(gomock.Any()).Return("", errors.New("permission denied"))

	f.store.Restore(f.ctx)

	_, ok := f.store.Token()
	assert.False(t, ok)
}

func TestStore_HasDurableToken(t *testing.T) {
	f := newStoreFixture(t)
	f.storage.EXPECT().Load(gomock.Any()).Return("T0", nil)
	assert.True(t, f.store.HasDurableToken(f.ctx))

	f.storage.EXPECT().Load(gomock.Any()).Return("", auth.ErrTokenNotFound)
	assert.False(t, f.store.HasDurableToken(f.ctx))
}
