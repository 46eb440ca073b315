package account

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	sqlaccount "github.com/klwxsrx/kahuna-console/data/sql/account"
	"github.com/klwxsrx/kahuna-console/internal/account/app/encoding"
	"github.com/klwxsrx/kahuna-console/internal/account/app/revocation"
	"github.com/klwxsrx/kahuna-console/internal/account/app/service"
	"github.com/klwxsrx/kahuna-console/internal/account/app/token"
	"github.com/klwxsrx/kahuna-console/internal/account/domain"
	"github.com/klwxsrx/kahuna-console/internal/account/infra/audit"
	"github.com/klwxsrx/kahuna-console/internal/account/infra/http"
	"github.com/klwxsrx/kahuna-console/internal/account/infra/memory"
	"github.com/klwxsrx/kahuna-console/internal/account/infra/password"
	infrarevocation "github.com/klwxsrx/kahuna-console/internal/account/infra/revocation"
	infrasql "github.com/klwxsrx/kahuna-console/internal/account/infra/sql"
	infratoken "github.com/klwxsrx/kahuna-console/internal/account/infra/token"
	"github.com/klwxsrx/kahuna-console/internal/pkg/cmd"
	"github.com/klwxsrx/kahuna-console/pkg/event"
	pkghttp "github.com/klwxsrx/kahuna-console/pkg/http"
	"github.com/klwxsrx/kahuna-console/pkg/lazy"
	"github.com/klwxsrx/kahuna-console/pkg/log"
	"github.com/klwxsrx/kahuna-console/pkg/persistence"
	"github.com/klwxsrx/kahuna-console/pkg/pulsar"
	"github.com/klwxsrx/kahuna-console/pkg/sql"
)

type DependencyContainer struct {
	AuthService lazy.Loader[service.Authentication]
	UserService lazy.Loader[service.User]

	config Config

	loginHandler       lazy.Loader[http.LoginHandler]
	logoutHandler      lazy.Loader[http.LogoutHandler]
	currentUserHandler lazy.Loader[http.CurrentUserHandler]
	signUpHandler      lazy.Loader[http.SignUpHandler]
	listUsersHandler   lazy.Loader[http.ListUsersHandler]
}

// NewDependencyContainer picks the storage for every optional infrastructure piece,
// a nil database, redis client or pulsar connection falls back to the in-memory or logging variant.
func NewDependencyContainer(
	config Config,
	infra *cmd.InfrastructureContainer,
) DependencyContainer {
	eventDispatcher := eventDispatcherProvider(infra.Pulsar, infra.Logger)

	userRepo := userRepoProvider(infra.DB, infra.DBMigrations)
	transaction := transactionProvider(infra.DB)
	passwordEncoder := passwordEncoderProvider(config)
	tokenIssuer := tokenIssuerProvider(config)
	revocations := revocationListProvider(infra.Redis)

	authService := authServiceProvider(userRepo, tokenIssuer, revocations, passwordEncoder, eventDispatcher)
	userService := userServiceProvider(config, userRepo, passwordEncoder, transaction, eventDispatcher)

	return DependencyContainer{
		AuthService: authService,
		UserService: userService,
		config:      config,
		loginHandler: lazy.New(func() (http.LoginHandler, error) {
			return http.NewLoginHandler(authService.MustLoad()), nil
		}),
		logoutHandler: lazy.New(func() (http.LogoutHandler, error) {
			return http.NewLogoutHandler(authService.MustLoad()), nil
		}),
		currentUserHandler: lazy.New(func() (http.CurrentUserHandler, error) {
			return http.NewCurrentUserHandler(userService.MustLoad()), nil
		}),
		signUpHandler: lazy.New(func() (http.SignUpHandler, error) {
			return http.NewSignUpHandler(userService.MustLoad()), nil
		}),
		listUsersHandler: lazy.New(func() (http.ListUsersHandler, error) {
			return http.NewListUsersHandler(userService.MustLoad()), nil
		}),
	}
}

func (c *DependencyContainer) HTTPServerOptions() []pkghttp.ServerOption {
	return []pkghttp.ServerOption{
		pkghttp.WithErrorMapping(http.ErrorMapping()),
		pkghttp.WithErrorBody(http.ErrorBody),
		pkghttp.WithAuth(c.AuthService.MustLoad()),
	}
}

func (c *DependencyContainer) MustRegisterHTTPHandlers(registry pkghttp.HandlerRegistry) {
	registry.Register(c.loginHandler.MustLoad())
	registry.Register(c.logoutHandler.MustLoad())
	registry.Register(c.signUpHandler.MustLoad())
	registry.Register(c.currentUserHandler.MustLoad(), pkghttp.WithAuthenticationRequirement())
	registry.Register(
		c.listUsersHandler.MustLoad(),
		pkghttp.WithAuthenticationRequirement(),
		pkghttp.WithRoleRequirement(domain.RoleAdmin),
	)
}

func (c *DependencyContainer) MustSeedAdmin(ctx context.Context) {
	if c.config.AdminPassword == "" {
		return
	}

	err := c.UserService.MustLoad().EnsureAdmin(ctx, c.config.AdminUsername, c.config.AdminPassword)
	if err != nil {
		panic(fmt.Errorf("seed %s admin: %w", domain.Name, err))
	}
}

func eventDispatcherProvider(
	conn lazy.Loader[pulsar.Connection],
	logger lazy.Loader[log.Logger],
) lazy.Loader[event.Dispatcher] {
	return lazy.New(func() (event.Dispatcher, error) {
		l := logger.MustLoad().WithField("domain", domain.Name)
		if c := conn.MustLoad(); c != nil {
			return event.NewDispatcher(audit.Handlers(audit.NewPulsarHandler(c.Producer(), domain.AuditTopic, l))), nil
		}

		return event.NewDispatcher(audit.Handlers(audit.NewLogHandler(l))), nil
	})
}

func userRepoProvider(
	db lazy.Loader[sql.Database],
	dbMigrations lazy.Loader[cmd.SQLMigrations],
) lazy.Loader[domain.UserRepository] {
	return lazy.New(func() (domain.UserRepository, error) {
		database := db.MustLoad()
		if database == nil {
			return memory.NewUserRepository(), nil
		}

		dbMigrations.MustLoad().MustRegister(sqlaccount.Migrations)
		return infrasql.NewUserRepository(sql.NewTransactionalClient(database)), nil
	})
}

func transactionProvider(db lazy.Loader[sql.Database]) lazy.Loader[persistence.Transaction] {
	return lazy.New(func() (persistence.Transaction, error) {
		database := db.MustLoad()
		if database == nil {
			return memory.NewTransaction(), nil
		}

		return sql.NewTransaction(database, domain.Name), nil
	})
}

func passwordEncoderProvider(config Config) lazy.Loader[encoding.PasswordEncoder] {
	return lazy.New(func() (encoding.PasswordEncoder, error) {
		return password.NewEncoder(config.BcryptCost), nil
	})
}

func tokenIssuerProvider(config Config) lazy.Loader[token.Issuer] {
	return lazy.New(func() (token.Issuer, error) {
		return infratoken.NewJWTIssuer(infratoken.Config{
			Secret: config.JWTSecret,
			TTL:    config.TokenTTL,
			Issuer: defaultTokenIssuer,
		})
	})
}

func revocationListProvider(client lazy.Loader[*redis.Client]) lazy.Loader[revocation.List] {
	return lazy.New(func() (revocation.List, error) {
		if c := client.MustLoad(); c != nil {
			return infrarevocation.NewRedisList(c), nil
		}

		return infrarevocation.NewMemoryList(), nil
	})
}

func authServiceProvider(
	userRepo lazy.Loader[domain.UserRepository],
	tokenIssuer lazy.Loader[token.Issuer],
	revocations lazy.Loader[revocation.List],
	passwordEncoder lazy.Loader[encoding.PasswordEncoder],
	eventDispatcher lazy.Loader[event.Dispatcher],
) lazy.Loader[service.Authentication] {
	return lazy.New(func() (service.Authentication, error) {
		return service.NewAuthentication(
			userRepo.MustLoad(),
			tokenIssuer.MustLoad(),
			revocations.MustLoad(),
			passwordEncoder.MustLoad(),
			eventDispatcher.MustLoad(),
		), nil
	})
}

func userServiceProvider(
	config Config,
	userRepo lazy.Loader[domain.UserRepository],
	passwordEncoder lazy.Loader[encoding.PasswordEncoder],
	transaction lazy.Loader[persistence.Transaction],
	eventDispatcher lazy.Loader[event.Dispatcher],
) lazy.Loader[service.User] {
	return lazy.New(func() (service.User, error) {
		return service.NewUser(
			userRepo.MustLoad(),
			passwordEncoder.MustLoad(),
			transaction.MustLoad(),
			eventDispatcher.MustLoad(),
			config.InviteCode,
		), nil
	})
}
