package router

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/klwxsrx/kahuna-console/internal/navigation/app/guard"
	"github.com/klwxsrx/kahuna-console/internal/navigation/domain"
	"github.com/klwxsrx/kahuna-console/pkg/log"
)

const maxRedirects = 8

var (
	ErrRouteNotFound = errors.New("route not found")
	ErrRedirectLoop  = errors.New("too many redirects")
)

type (
	Router interface {
		Navigate(ctx context.Context, path string) (domain.Route, error)
		Redirect(ctx context.Context, path string) error
		Current() domain.Route
	}

	router struct {
		routes *domain.RouteTable
		guard  guard.Guard
		logger log.Logger

		navigationMutex sync.Mutex

		mu        sync.Mutex
		current   domain.Route
		forcedSeq uint64
	}
)

func NewRouter(routes *domain.RouteTable, g guard.Guard, logger log.Logger) Router {
	return &router{
		routes: routes,
		guard:  g,
		logger: logger,
	}
}

// Navigate runs navigations one at a time, following guard redirects. A forced Redirect issued
// while the navigation is in flight wins and its route is returned.
func (r *router) Navigate(ctx context.Context, path string) (domain.Route, error) {
	r.navigationMutex.Lock()
	defer r.navigationMutex.Unlock()

	r.mu.Lock()
	from, seq := r.current, r.forcedSeq
	r.mu.Unlock()

	target := path
	for hops := 0; ; hops++ {
		if hops > maxRedirects {
			return domain.Route{}, fmt.Errorf("%w: navigation to %s", ErrRedirectLoop, path)
		}
		if err := ctx.Err(); err != nil {
			return domain.Route{}, err
		}

		to, ok := r.routes.Find(target)
		if !ok {
			return domain.Route{}, fmt.Errorf("%w: %s", ErrRouteNotFound, target)
		}
		if to.IsRedirect() {
			target = to.RedirectTo
			continue
		}

		decision := r.guard.Check(ctx, to, from)
		if !decision.IsAllowed() {
			target = decision.Redirect
			continue
		}

		return r.land(ctx, to, seq), nil
	}
}

func (r *router) land(ctx context.Context, to domain.Route, seq uint64) domain.Route {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.forcedSeq != seq {
		r.logger.WithField("path", to.Path).Debug(ctx, "navigation superseded by forced redirect")
		return r.current
	}

	r.current = to
	return to
}

// Redirect moves to path bypassing the guard, the targets are public pages.
func (r *router) Redirect(ctx context.Context, path string) error {
	to, ok := r.routes.Find(path)
	if !ok {
		return fmt.Errorf("%w: %s", ErrRouteNotFound, path)
	}

	r.mu.Lock()
	r.current = to
	r.forcedSeq++
	r.mu.Unlock()

	r.logger.WithField("path", to.Path).Info(ctx, "forced redirect")
	return nil
}

func (r *router) Current() domain.Route {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.current
}
