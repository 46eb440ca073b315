package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/klwxsrx/kahuna-console/internal/session/app/auth"
	"github.com/klwxsrx/kahuna-console/internal/session/domain"
	"github.com/klwxsrx/kahuna-console/pkg/event"
	"github.com/klwxsrx/kahuna-console/pkg/log"
	pkgtime "github.com/klwxsrx/kahuna-console/pkg/time"
)

const (
	DefaultValidationTTL = 30 * time.Second

	defaultLoginErrorMessage = "login failed"
)

var ErrLoginRejected = errors.New("login rejected")

type (
	// Store is the single authority on whether the console is logged in and as whom.
	Store interface {
		Restore(ctx context.Context)
		Login(ctx context.Context, credentials domain.Credentials) error
		Logout(ctx context.Context)
		CheckAuth(ctx context.Context) bool
		ClearError()

		IsAuthenticated() bool
		HasDurableToken(ctx context.Context) bool
		Token() (string, bool)
		Session() (domain.Session, bool)
		LastError() string
		IsLoading() bool
		Snapshot() Snapshot
	}

	StoreOption func(*store)

	Snapshot struct {
		Token         string
		Session       *domain.Session
		Authenticated bool
		Loading       bool
		LastError     string
		LastCheckedAt *time.Time
		LastResult    bool
	}

	validationCache struct {
		checkedAt *time.Time
		result    bool
	}

	store struct {
		api        auth.API
		storage    auth.TokenStorage
		dispatcher event.Dispatcher
		clock      pkgtime.Clock
		logger     log.Logger
		ttl        time.Duration

		validations singleflight.Group

		mu         sync.Mutex
		token      string
		session    *domain.Session
		cache      validationCache
		lastError  string
		logins     int
		generation uint64
	}
)

func WithValidationTTL(ttl time.Duration) StoreOption {
	return func(s *store) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

func WithClock(clock pkgtime.Clock) StoreOption {
	return func(s *store) {
		s.clock = clock
	}
}

func NewStore(
	api auth.API,
	storage auth.TokenStorage,
	dispatcher event.Dispatcher,
	logger log.Logger,
	opts ...StoreOption,
) Store {
	s := &store{
		api:        api,
		storage:    storage,
		dispatcher: dispatcher,
		clock:      pkgtime.NewClock(),
		logger:     logger,
		ttl:        DefaultValidationTTL,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Restore seeds the in-memory token from durable storage, the restored token is not trusted until CheckAuth.
func (s *store) Restore(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token != "" {
		return
	}

	token, err := s.storage.Load(ctx)
	if errors.Is(err, auth.ErrTokenNotFound) {
		return
	}
	if err != nil {
		s.logger.WithError(err).Warn(ctx, "failed to restore session token")
		return
	}

	s.generation++
	s.token = token
	s.session = nil
	s.cache = validationCache{}
}

func (s *store) Login(ctx context.Context, credentials domain.Credentials) error {
	s.mu.Lock()
	s.logins++
	s.lastError = ""
	s.mu.Unlock()

	result, err := s.api.Login(ctx, credentials)

	s.mu.Lock()
	s.logins--
	if err != nil {
		s.lastError = loginErrorMessage(err)
		s.mu.Unlock()

		s.logger.WithError(err).Info(ctx, "login failed")
		return loginError(err)
	}

	now := s.clock.Now(ctx)
	session := result.Session
	s.generation++
	s.token = result.Token
	s.session = &session
	s.cache = validationCache{checkedAt: &now, result: true}

	err = s.storage.Save(ctx, result.Token)
	if err != nil {
		s.logger.WithError(err).Warn(ctx, "failed to persist session token")
	}
	s.mu.Unlock()

	s.dispatch(ctx, domain.EventLoggedIn{
		EventID:  uuid.New(),
		UserID:   session.UserID,
		Username: session.Username,
		Roles:    session.Roles,
	})
	return nil
}

func (s *store) Logout(ctx context.Context) {
	s.mu.Lock()
	userID, changed := s.resetLocked(ctx)
	s.mu.Unlock()

	if changed {
		s.dispatch(ctx, domain.EventLoggedOut{
			EventID: uuid.New(),
			UserID:  userID,
		})
	}
}

// CheckAuth confirms the token with the server at most once per validation window,
// concurrent callers share a single remote call.
func (s *store) CheckAuth(ctx context.Context) bool {
	s.mu.Lock()
	if s.token == "" {
		s.mu.Unlock()
		return false
	}
	if s.isCacheValidLocked(ctx) {
		s.mu.Unlock()
		return true
	}
	token, generation := s.token, s.generation
	s.mu.Unlock()

	validationCtx := context.WithoutCancel(ctx)
	resultChan := s.validations.DoChan(strconv.FormatUint(generation, 10), func() (any, error) {
		return s.validate(validationCtx, token, generation), nil
	})

	select {
	case result := <-resultChan:
		authenticated, _ := result.Val.(bool)
		return authenticated
	case <-ctx.Done():
		return false
	}
}

func (s *store) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastError = ""
}

func (s *store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.isAuthenticatedLocked()
}

func (s *store) HasDurableToken(ctx context.Context) bool {
	token, err := s.storage.Load(ctx)
	if errors.Is(err, auth.ErrTokenNotFound) {
		return false
	}
	if err != nil {
		s.logger.WithError(err).Warn(ctx, "failed to read session token")
		return false
	}

	return token != ""
}

func (s *store) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.token, s.token != ""
}

func (s *store) Session() (domain.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return domain.Session{}, false
	}
	return *s.session, true
}

func (s *store) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lastError
}

func (s *store) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.logins > 0
}

func (s *store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := Snapshot{
		Token:         s.token,
		Authenticated: s.isAuthenticatedLocked(),
		Loading:       s.logins > 0,
		LastError:     s.lastError,
		LastResult:    s.cache.result,
	}
	if s.session != nil {
		session := *s.session
		snapshot.Session = &session
	}
	if s.cache.checkedAt != nil {
		checkedAt := *s.cache.checkedAt
		snapshot.LastCheckedAt = &checkedAt
	}

	return snapshot
}

func (s *store) validate(ctx context.Context, token string, generation uint64) bool {
	s.mu.Lock()
	if s.generation != generation {
		authenticated := s.isAuthenticatedLocked()
		s.mu.Unlock()
		return authenticated
	}
	if s.isCacheValidLocked(ctx) {
		s.mu.Unlock()
		return true
	}
	s.mu.Unlock()

	session, err := s.api.CurrentUser(ctx, token)

	s.mu.Lock()
	if s.generation != generation {
		authenticated := s.isAuthenticatedLocked()
		s.mu.Unlock()

		s.logger.Debug(ctx, "session changed during validation, result dropped")
		return authenticated
	}

	now := s.clock.Now(ctx)
	if err == nil {
		s.session = &session
		s.cache = validationCache{checkedAt: &now, result: true}
		s.mu.Unlock()
		return true
	}

	userID, _ := s.resetLocked(ctx)
	s.cache = validationCache{checkedAt: &now, result: false}
	s.mu.Unlock()

	s.logger.WithError(err).Info(ctx, "session token was not confirmed")
	s.dispatch(ctx, domain.EventInvalidated{
		EventID: uuid.New(),
		UserID:  userID,
	})
	return false
}

func (s *store) resetLocked(ctx context.Context) (userID string, changed bool) {
	changed = s.token != "" || s.session != nil
	if s.session != nil {
		userID = s.session.UserID
	}

	s.generation++
	s.token = ""
	s.session = nil
	s.cache = validationCache{}

	err := s.storage.Remove(ctx)
	if err != nil {
		s.logger.WithError(err).Warn(ctx, "failed to remove session token")
	}

	return userID, changed
}

func (s *store) isAuthenticatedLocked() bool {
	return s.token != "" && s.session != nil
}

func (s *store) isCacheValidLocked(ctx context.Context) bool {
	return s.cache.checkedAt != nil &&
		s.clock.Now(ctx).Sub(*s.cache.checkedAt) < s.ttl &&
		s.session != nil &&
		s.cache.result
}

func (s *store) dispatch(ctx context.Context, evt event.Event) {
	err := s.dispatcher.Dispatch(ctx, evt)
	if err != nil {
		s.logger.WithError(err).Error(ctx, "failed to dispatch session event")
	}
}

func loginErrorMessage(err error) string {
	var rejected *auth.RejectedError
	if errors.As(err, &rejected) && rejected.Message != "" {
		return rejected.Message
	}
	if errors.Is(err, auth.ErrAuthServerUnavailable) {
		return auth.ErrAuthServerUnavailable.Error()
	}

	return defaultLoginErrorMessage
}

func loginError(err error) error {
	if errors.Is(err, auth.ErrAuthServerUnavailable) {
		return fmt.Errorf("login: %w", err)
	}

	return fmt.Errorf("%w: %w", ErrLoginRejected, err)
}
