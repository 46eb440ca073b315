package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode"

	"github.com/gorilla/mux"
)

const (
	DefaultServerAddress = ":8080"

	defaultReadTimeout       = 10 * time.Second
	defaultReadHeaderTimeout = 5 * time.Second
)

type (
	ServerOption     func(*server)
	ServerMiddleware func(http.Handler) http.Handler

	// RouteOption wraps a single registered handler.
	RouteOption = ServerMiddleware
)

type HandlerRegistry interface {
	Register(handler Handler, opts ...RouteOption)
}

type Server interface {
	http.Handler
	HandlerRegistry
	Listener(context.Context) error
}

type server struct {
	srv    *http.Server
	router *mux.Router

	errorMapping []errorMapping
	errorBody    ErrorBodyFunc
}

func NewServer(address string, opts ...ServerOption) Server {
	router := mux.NewRouter()
	s := &server{
		srv: &http.Server{
			Addr:              address,
			Handler:           router,
			ReadTimeout:       defaultReadTimeout,
			ReadHeaderTimeout: defaultReadHeaderTimeout,
		},
		router: router,
	}

	router.Use(s.withHandlerMetadata)
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func WithMW(mw ServerMiddleware) ServerOption {
	return func(s *server) {
		s.router.Use(mux.MiddlewareFunc(mw))
	}
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *server) Listener(ctx context.Context) error {
	shutdown := func() error {
		err := s.srv.Shutdown(context.Background())
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}

	serverDoneChan := make(chan error, 1)
	go func() {
		err := s.srv.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		serverDoneChan <- err
	}()

	var err error
	select {
	case err = <-serverDoneChan:
	case <-ctx.Done():
		err = shutdown()
	}
	if err != nil {
		return fmt.Errorf("http listener %s: %w", s.srv.Addr, err)
	}

	return nil
}

func (s *server) Register(handler Handler, opts ...RouteOption) {
	var httpHandler http.Handler = httpHandlerWrapper(handler.Handle)
	for i := len(opts) - 1; i >= 0; i-- {
		httpHandler = opts[i](httpHandler)
	}

	s.router.
		Name(getRouteName(handler.Method(), handler.Path())).
		Methods(handler.Method()).
		Path(handler.Path()).
		Handler(httpHandler)
}

func getRouteName(method, path string) string {
	path = strings.Map(func(r rune) rune {
		if unicode.Is(unicode.Latin, r) || unicode.IsDigit(r) {
			return r
		}

		if r == '{' || r == '}' {
			return -1
		}

		return '_'
	}, strings.Trim(path, "/"))
	return fmt.Sprintf("%s_%s", strings.ToUpper(method), path)
}
