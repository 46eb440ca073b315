package env_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/kahuna-console/pkg/env"
)

func TestParse(t *testing.T) {
	t.Setenv("KAHUNA_AUTH_CACHE_TTL", "45s")
	t.Setenv("KAHUNA_BROKEN_TTL", "soon")
	t.Setenv("KAHUNA_EMPTY", "")

	ttl, err := env.Parse[time.Duration]("KAHUNA_AUTH_CACHE_TTL")
	require.NoError(t, err)
	assert.Equal(t, 45*time.Second, ttl)

	_, err = env.Parse[time.Duration]("KAHUNA_BROKEN_TTL")
	assert.ErrorIs(t, err, env.ErrInvalidValue)

	_, err = env.Parse[string]("KAHUNA_MISSING")
	assert.ErrorIs(t, err, env.ErrNotFound)

	_, err = env.Parse[string]("KAHUNA_EMPTY")
	assert.ErrorIs(t, err, env.ErrNotFound)
}

func TestParseOr(t *testing.T) {
	t.Setenv("KAHUNA_BROKEN_TTL", "soon")

	v, err := env.ParseOr("KAHUNA_MISSING", 30*time.Second)
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, v)

	_, err = env.ParseOr("KAHUNA_BROKEN_TTL", 30*time.Second)
	assert.ErrorIs(t, err, env.ErrInvalidValue)
}

func TestParseOptional(t *testing.T) {
	t.Setenv("SQL_CONNECTION_TIMEOUT", "5s")

	v, err := env.ParseOptional[time.Duration]("SQL_CONNECTION_TIMEOUT")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, 5*time.Second, *v)

	v, err = env.ParseOptional[time.Duration]("SQL_MISSING_TIMEOUT")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestParseList(t *testing.T) {
	t.Setenv("KAHUNA_PUBLIC_PATHS", "/login, /forbidden,,")

	v, err := env.ParseList[string]("KAHUNA_PUBLIC_PATHS", ",")
	require.NoError(t, err)
	assert.Equal(t, []string{"/login", "/forbidden"}, v)
}

func TestMust_Panics(t *testing.T) {
	assert.Panics(t, func() {
		env.Must(env.Parse[int]("KAHUNA_MISSING_INT"))
	})
}
