package console

import (
	"context"
	"net/http"
	"os"

	"github.com/go-resty/resty/v2"

	"github.com/klwxsrx/kahuna-console/internal/navigation/app/guard"
	"github.com/klwxsrx/kahuna-console/internal/navigation/app/router"
	"github.com/klwxsrx/kahuna-console/internal/navigation/domain"
	"github.com/klwxsrx/kahuna-console/internal/session"
	"github.com/klwxsrx/kahuna-console/internal/session/app/service"
	sessionhttp "github.com/klwxsrx/kahuna-console/internal/session/infra/http"
	"github.com/klwxsrx/kahuna-console/pkg/event"
	pkghttp "github.com/klwxsrx/kahuna-console/pkg/http"
	"github.com/klwxsrx/kahuna-console/pkg/lazy"
	"github.com/klwxsrx/kahuna-console/pkg/log"
)

const apiDestinationName = "kahuna"

type DependencyContainer struct {
	Logger     lazy.Loader[log.Logger]
	APIClient  lazy.Loader[pkghttp.Client]
	Store      lazy.Loader[service.Store]
	RouteTable lazy.Loader[*domain.RouteTable]
	Router     lazy.Loader[router.Router]
}

func NewDependencyContainer(config Config) *DependencyContainer {
	logger := loggerProvider(config)
	eventDispatcher := eventDispatcherProvider(logger)

	// the client reads the token from the store and reports 401/403 to the store and the router,
	// both are resolved on the first request only
	var (
		sessionContainer session.DependencyContainer
		rtr              lazy.Loader[router.Router]
	)
	store := lazy.New(func() (service.Store, error) {
		return sessionContainer.Store.Load()
	})
	apiClient := apiClientProvider(config, store, lazy.New(func() (router.Router, error) {
		return rtr.Load()
	}), logger)

	sessionContainer = session.NewDependencyContainer(
		session.Config{
			TokenFile:     config.TokenFile,
			Ephemeral:     config.Ephemeral,
			ValidationTTL: config.ValidationTTL,
		},
		apiClient,
		eventDispatcher,
		logger,
	)

	routeTable := routeTableProvider()
	rtr = routerProvider(routeTable, guardProvider(store, logger), logger)

	return &DependencyContainer{
		Logger:     logger,
		APIClient:  apiClient,
		Store:      store,
		RouteTable: routeTable,
		Router:     rtr,
	}
}

func loggerProvider(config Config) lazy.Loader[log.Logger] {
	return lazy.New(func() (log.Logger, error) {
		return log.New(config.LogLevel, log.WithOutput(os.Stderr)), nil
	})
}

func eventDispatcherProvider(logger lazy.Loader[log.Logger]) lazy.Loader[event.Dispatcher] {
	return lazy.New(func() (event.Dispatcher, error) {
		return event.NewDispatcher(sessionEventHandlers(logger.MustLoad())), nil
	})
}

func apiClientProvider(
	config Config,
	store lazy.Loader[service.Store],
	rtr lazy.Loader[router.Router],
	logger lazy.Loader[log.Logger],
) lazy.Loader[pkghttp.Client] {
	return lazy.New(func() (pkghttp.Client, error) {
		l := logger.MustLoad()
		redirect := func(ctx context.Context, path string) {
			err := rtr.MustLoad().Redirect(ctx, path)
			if err != nil {
				l.WithError(err).Error(ctx, "failed to redirect")
			}
		}

		return pkghttp.NewClient(
			pkghttp.WithClientDestination(apiDestinationName, config.APIURL),
			pkghttp.WithTimeout(config.HTTPTimeout),
			pkghttp.WithRequestID(pkghttp.DefaultRequestIDHeader),
			pkghttp.WithBearerToken(func(context.Context) (string, bool) {
				return store.MustLoad().Token()
			}),
			pkghttp.WithStatusHandler(http.StatusUnauthorized, func(ctx context.Context, _ *resty.Response) {
				store.MustLoad().Logout(ctx)
				redirect(ctx, guard.DefaultLoginPath)
			}, sessionhttp.LoginPath),
			pkghttp.WithStatusHandler(http.StatusForbidden, func(ctx context.Context, _ *resty.Response) {
				redirect(ctx, guard.DefaultForbiddenPath)
			}),
			pkghttp.WithRequestLogging(l, log.LevelDebug, log.LevelWarn),
		), nil
	})
}

func routeTableProvider() lazy.Loader[*domain.RouteTable] {
	return lazy.New(NewRouteTable)
}

func guardProvider(
	store lazy.Loader[service.Store],
	logger lazy.Loader[log.Logger],
) lazy.Loader[guard.Guard] {
	return lazy.New(func() (guard.Guard, error) {
		return guard.NewGuard(guard.DefaultConfig(), store.MustLoad(), logger.MustLoad()), nil
	})
}

func routerProvider(
	routeTable lazy.Loader[*domain.RouteTable],
	g lazy.Loader[guard.Guard],
	logger lazy.Loader[log.Logger],
) lazy.Loader[router.Router] {
	return lazy.New(func() (router.Router, error) {
		return router.NewRouter(routeTable.MustLoad(), g.MustLoad(), logger.MustLoad()), nil
	})
}
