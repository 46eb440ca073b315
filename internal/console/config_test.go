package console_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/kahuna-console/internal/console"
	"github.com/klwxsrx/kahuna-console/pkg/env"
	"github.com/klwxsrx/kahuna-console/pkg/log"
)

func unsetConsoleEnv(t *testing.T) {
	for _, key := range []string{
		console.EnvAPIURL,
		console.EnvValidationTTL,
		console.EnvTokenFile,
		console.EnvHTTPTimeout,
		console.EnvLogLevel,
	} {
		t.Setenv(key, "")
	}
}

func TestParseConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		unsetConsoleEnv(t)

		config, err := console.ParseConfig()
		require.NoError(t, err)
		assert.Equal(t, console.Config{
			APIURL:        console.DefaultAPIURL,
			ValidationTTL: 30 * time.Second,
			TokenFile:     "~/.kahuna/auth_token",
			HTTPTimeout:   10 * time.Second,
			LogLevel:      log.LevelWarn,
		}, config)
	})

	t.Run("overrides", func(t *testing.T) {
		unsetConsoleEnv(t)
		t.Setenv(console.EnvAPIURL, "https://kahuna.example/api")
		t.Setenv(console.EnvValidationTTL, "5s")
		t.Setenv(console.EnvLogLevel, "debug")

		config, err := console.ParseConfig()
		require.NoError(t, err)
		assert.Equal(t, "https://kahuna.example/api", config.APIURL)
		assert.Equal(t, 5*time.Second, config.ValidationTTL)
		assert.Equal(t, log.LevelDebug, config.LogLevel)
	})

	t.Run("invalid_duration", func(t *testing.T) {
		unsetConsoleEnv(t)
		t.Setenv(console.EnvHTTPTimeout, "soon")

		_, err := console.ParseConfig()
		assert.ErrorIs(t, err, env.ErrInvalidValue)
	})

	t.Run("unknown_log_level", func(t *testing.T) {
		unsetConsoleEnv(t)
		t.Setenv(console.EnvLogLevel, "verbose")

		config, err := console.ParseConfig()
		require.NoError(t, err)
		assert.Equal(t, log.LevelWarn, config.LogLevel)
	})
}
