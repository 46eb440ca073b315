package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/klwxsrx/kahuna-console/pkg/cmd"
	"github.com/klwxsrx/kahuna-console/pkg/env"
	"github.com/klwxsrx/kahuna-console/pkg/http"
	"github.com/klwxsrx/kahuna-console/pkg/lazy"
	"github.com/klwxsrx/kahuna-console/pkg/log"
	"github.com/klwxsrx/kahuna-console/pkg/pulsar"
	pkgredis "github.com/klwxsrx/kahuna-console/pkg/redis"
	"github.com/klwxsrx/kahuna-console/pkg/sql"
)

const (
	EnvLogLevel      = "LOG_LEVEL"
	EnvServerAddress = "DEV_SERVER_ADDRESS"
	EnvSQLAddress    = "SQL_ADDRESS"
	EnvRedisURL      = "REDIS_URL"
	EnvPulsarAddress = "PULSAR_ADDRESS"
)

// InfrastructureContainer holds the optional backends of the dev server,
// DB, Redis and Pulsar load as nil when their address is not configured.
type InfrastructureContainer struct {
	DBMigrations lazy.Loader[SQLMigrations]
	DB           lazy.Loader[sql.Database]
	Redis        lazy.Loader[*redis.Client]
	Pulsar       lazy.Loader[pulsar.Connection]
	Logger       lazy.Loader[log.Logger]
}

func NewInfrastructureContainer(ctx context.Context) *InfrastructureContainer {
	logger := loggerProvider()
	db := sqlDatabaseProvider(ctx, logger)

	return &InfrastructureContainer{
		DBMigrations: sqlMigrationsProvider(ctx, db, logger),
		DB:           db,
		Redis:        redisClientProvider(ctx),
		Pulsar:       pulsarConnectionProvider(ctx, logger),
		Logger:       logger,
	}
}

func (i *InfrastructureContainer) NewHTTPServer(opts ...http.ServerOption) http.Server {
	address := env.Must(env.ParseOr(EnvServerAddress, http.DefaultServerAddress))
	opts = append([]http.ServerOption{
		http.WithHealthCheck(),
		http.WithLogging(i.Logger.MustLoad(), log.LevelInfo, log.LevelError, http.HealthPath),
	}, opts...)

	return http.NewServer(address, opts...)
}

func (i *InfrastructureContainer) Close(ctx context.Context) {
	if cmd.HandleAppPanic(ctx, i.Logger.MustLoad(), recover()) {
		defer os.Exit(1)
	}

	i.Pulsar.IfLoaded(func(conn pulsar.Connection) {
		if conn != nil {
			conn.Close()
		}
	})
	i.Redis.IfLoaded(func(client *redis.Client) {
		if client == nil {
			return
		}
		if err := client.Close(); err != nil {
			i.Logger.MustLoad().WithError(err).Error(ctx, "failed to close redis client")
		}
	})
	i.DB.IfLoaded(func(db sql.Database) {
		if db != nil {
			db.Close(ctx)
		}
	})
}

func loggerProvider() lazy.Loader[log.Logger] {
	return lazy.New(func() (log.Logger, error) {
		logLevelStr, err := env.Parse[string](EnvLogLevel)
		if err != nil {
			return log.New(log.LevelInfo), nil
		}

		logLevel, ok := log.ParseLevel(logLevelStr)
		if !ok {
			logLevel = log.LevelInfo
		}

		return log.New(logLevel), nil
	})
}

func sqlDatabaseProvider(
	ctx context.Context,
	logger lazy.Loader[log.Logger],
) lazy.Loader[sql.Database] {
	return lazy.New(func() (sql.Database, error) {
		address := env.Must(env.ParseOptional[string](EnvSQLAddress))
		if address == nil {
			return nil, nil
		}

		sqlConfig := sql.Config{
			DSN: sql.DSN{
				User:     env.Must(env.Parse[string]("SQL_USER")),
				Password: env.Must(env.Parse[string]("SQL_PASSWORD")),
				Address:  *address,
				Database: env.Must(env.Parse[string]("SQL_DATABASE")),
			},
		}
		sqlConnTimeout := env.Must(env.ParseOptional[time.Duration]("SQL_CONNECTION_TIMEOUT"))
		if sqlConnTimeout != nil {
			sqlConfig.ConnectionTimeout = *sqlConnTimeout
		}

		db, err := sql.NewDatabase(ctx, sqlConfig, logger.MustLoad())
		if err != nil {
			panic(fmt.Errorf("open sql connection: %w", err))
		}

		return db, nil
	})
}

func sqlMigrationsProvider(
	ctx context.Context,
	db lazy.Loader[sql.Database],
	logger lazy.Loader[log.Logger],
) lazy.Loader[SQLMigrations] {
	return lazy.New(func() (SQLMigrations, error) {
		return NewSQLMigrations(ctx, db.MustLoad(), logger.MustLoad()), nil
	})
}

func redisClientProvider(ctx context.Context) lazy.Loader[*redis.Client] {
	return lazy.New(func() (*redis.Client, error) {
		url := env.Must(env.ParseOptional[string](EnvRedisURL))
		if url == nil {
			return nil, nil
		}

		config := pkgredis.Config{URL: *url}
		connTimeout := env.Must(env.ParseOptional[time.Duration]("REDIS_CONNECTION_TIMEOUT"))
		if connTimeout != nil {
			config.ConnectionTimeout = *connTimeout
		}

		client, err := pkgredis.NewClient(ctx, config)
		if err != nil {
			panic(fmt.Errorf("open redis connection: %w", err))
		}

		return client, nil
	})
}

func pulsarConnectionProvider(
	ctx context.Context,
	logger lazy.Loader[log.Logger],
) lazy.Loader[pulsar.Connection] {
	return lazy.New(func() (pulsar.Connection, error) {
		address := env.Must(env.ParseOptional[string](EnvPulsarAddress))
		if address == nil {
			return nil, nil
		}

		config := pulsar.Config{Address: *address}
		connTimeout := env.Must(env.ParseOptional[time.Duration]("PULSAR_CONNECTION_TIMEOUT"))
		if connTimeout != nil {
			config.ConnectionTimeout = *connTimeout
		}

		conn, err := pulsar.NewConnection(ctx, config, logger.MustLoad())
		if err != nil {
			panic(fmt.Errorf("open pulsar connection: %w", err))
		}

		return conn, nil
	})
}
