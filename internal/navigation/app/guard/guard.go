//go:generate mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "SessionState=SessionState"
package guard

import (
	"context"
	"slices"

	"github.com/klwxsrx/kahuna-console/internal/navigation/domain"
	sessiondomain "github.com/klwxsrx/kahuna-console/internal/session/domain"
	"github.com/klwxsrx/kahuna-console/pkg/log"
)

const (
	DefaultLoginPath     = "/login"
	DefaultHomePath      = "/home"
	DefaultForbiddenPath = "/forbidden"
)

type (
	Guard interface {
		Check(ctx context.Context, to, from domain.Route) domain.Decision
	}

	// SessionState is the part of the session store the guard consults.
	SessionState interface {
		IsAuthenticated() bool
		HasDurableToken(ctx context.Context) bool
		CheckAuth(ctx context.Context) bool
		Session() (sessiondomain.Session, bool)
	}

	Config struct {
		LoginPath     string
		HomePath      string
		ForbiddenPath string
		PublicPaths   []string
	}

	guard struct {
		config  Config
		session SessionState
		logger  log.Logger
	}
)

func DefaultConfig() Config {
	return Config{
		LoginPath:     DefaultLoginPath,
		HomePath:      DefaultHomePath,
		ForbiddenPath: DefaultForbiddenPath,
		PublicPaths: []string{
			DefaultLoginPath,
			DefaultForbiddenPath,
			"/setting/characterSetting/auth/close",
		},
	}
}

func NewGuard(config Config, session SessionState, logger log.Logger) Guard {
	return &guard{
		config:  config,
		session: session,
		logger:  logger,
	}
}

func (g *guard) Check(ctx context.Context, to, from domain.Route) domain.Decision {
	decision := g.check(ctx, to, from)
	if !decision.IsAllowed() {
		g.logger.With(log.Fields{
			"to":       to.Path,
			"from":     from.Path,
			"redirect": decision.Redirect,
			"reason":   decision.Reason,
		}).Debug(ctx, "navigation redirected")
	}

	return decision
}

func (g *guard) check(ctx context.Context, to, from domain.Route) domain.Decision {
	if to.Path == g.config.LoginPath && g.session.IsAuthenticated() {
		return domain.RedirectTo(g.config.HomePath, domain.ReasonAlreadyAuthenticated)
	}

	if slices.Contains(g.config.PublicPaths, to.Path) || !to.RequiresAuth {
		return domain.Allow()
	}

	justLoggedIn := from.Path == g.config.LoginPath && g.session.IsAuthenticated()
	if !justLoggedIn {
		if !g.session.IsAuthenticated() && !g.session.HasDurableToken(ctx) {
			return domain.RedirectTo(g.config.LoginPath, domain.ReasonNoToken)
		}

		if !g.session.CheckAuth(ctx) {
			return domain.RedirectTo(g.config.LoginPath, domain.ReasonNotAuthenticated)
		}
	}

	if len(to.Roles) > 0 {
		session, ok := g.session.Session()
		if !ok || !session.Roles.HasAny(to.Roles...) {
			return domain.RedirectTo(g.config.ForbiddenPath, domain.ReasonRoleMismatch)
		}
	}

	return domain.Allow()
}
