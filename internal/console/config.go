package console

import (
	"errors"
	"fmt"
	"time"

	"github.com/klwxsrx/kahuna-console/internal/session/app/service"
	"github.com/klwxsrx/kahuna-console/internal/session/infra/storage"
	"github.com/klwxsrx/kahuna-console/pkg/env"
	"github.com/klwxsrx/kahuna-console/pkg/log"
)

const (
	DefaultAPIURL      = "http://localhost:8080/api"
	DefaultHTTPTimeout = 10 * time.Second
	DefaultLogLevel    = log.LevelWarn

	EnvAPIURL        = "KAHUNA_API_URL"
	EnvValidationTTL = "KAHUNA_AUTH_CACHE_TTL"
	EnvTokenFile     = "KAHUNA_TOKEN_FILE"
	EnvHTTPTimeout   = "KAHUNA_HTTP_TIMEOUT"
	EnvLogLevel      = "LOG_LEVEL"
)

type Config struct {
	APIURL        string
	ValidationTTL time.Duration
	TokenFile     string
	Ephemeral     bool
	HTTPTimeout   time.Duration
	LogLevel      log.Level
}

func ParseConfig() (Config, error) {
	var errs []error
	collect := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	apiURL, err := env.ParseOr[string](EnvAPIURL, DefaultAPIURL)
	collect(err)
	validationTTL, err := env.ParseOr[time.Duration](EnvValidationTTL, service.DefaultValidationTTL)
	collect(err)
	tokenFile, err := env.ParseOr[string](EnvTokenFile, storage.DefaultTokenFile)
	collect(err)
	httpTimeout, err := env.ParseOr[time.Duration](EnvHTTPTimeout, DefaultHTTPTimeout)
	collect(err)
	logLevelName, err := env.ParseOr[string](EnvLogLevel, "")
	collect(err)

	if err = errors.Join(errs...); err != nil {
		return Config{}, fmt.Errorf("parse console config: %w", err)
	}

	return Config{
		APIURL:        apiURL,
		ValidationTTL: validationTTL,
		TokenFile:     tokenFile,
		HTTPTimeout:   httpTimeout,
		LogLevel:      ParseLogLevel(logLevelName),
	}, nil
}

// ParseLogLevel falls back to DefaultLogLevel for empty and unknown names.
func ParseLogLevel(name string) log.Level {
	level, ok := log.ParseLevel(name)
	if !ok {
		return DefaultLogLevel
	}
	return level
}
