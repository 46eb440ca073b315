package session

import (
	"time"

	"github.com/klwxsrx/kahuna-console/internal/session/app/auth"
	"github.com/klwxsrx/kahuna-console/internal/session/app/service"
	"github.com/klwxsrx/kahuna-console/internal/session/infra/http"
	"github.com/klwxsrx/kahuna-console/internal/session/infra/storage"
	"github.com/klwxsrx/kahuna-console/pkg/event"
	pkghttp "github.com/klwxsrx/kahuna-console/pkg/http"
	"github.com/klwxsrx/kahuna-console/pkg/lazy"
	"github.com/klwxsrx/kahuna-console/pkg/log"
)

type (
	Config struct {
		TokenFile     string
		Ephemeral     bool
		ValidationTTL time.Duration
	}

	DependencyContainer struct {
		Store        lazy.Loader[service.Store]
		TokenStorage lazy.Loader[auth.TokenStorage]
	}
)

func NewDependencyContainer(
	config Config,
	apiClient lazy.Loader[pkghttp.Client],
	eventDispatcher lazy.Loader[event.Dispatcher],
	logger lazy.Loader[log.Logger],
) DependencyContainer {
	authAPI := authAPIProvider(apiClient)
	tokenStorage := tokenStorageProvider(config)

	return DependencyContainer{
		Store:        storeProvider(config, authAPI, tokenStorage, eventDispatcher, logger),
		TokenStorage: tokenStorage,
	}
}

func authAPIProvider(apiClient lazy.Loader[pkghttp.Client]) lazy.Loader[auth.API] {
	return lazy.New(func() (auth.API, error) {
		return http.NewAuthAPI(apiClient.MustLoad()), nil
	})
}

func tokenStorageProvider(config Config) lazy.Loader[auth.TokenStorage] {
	return lazy.New(func() (auth.TokenStorage, error) {
		if config.Ephemeral {
			return storage.NewMemoryStorage(""), nil
		}
		return storage.NewFileStorage(config.TokenFile)
	})
}

func storeProvider(
	config Config,
	authAPI lazy.Loader[auth.API],
	tokenStorage lazy.Loader[auth.TokenStorage],
	eventDispatcher lazy.Loader[event.Dispatcher],
	logger lazy.Loader[log.Logger],
) lazy.Loader[service.Store] {
	return lazy.New(func() (service.Store, error) {
		return service.NewStore(
			authAPI.MustLoad(),
			tokenStorage.MustLoad(),
			eventDispatcher.MustLoad(),
			logger.MustLoad(),
			service.WithValidationTTL(config.ValidationTTL),
		), nil
	})
}
