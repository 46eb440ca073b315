package revocation_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/kahuna-console/internal/account/app/revocation"
	infrarevocation "github.com/klwxsrx/kahuna-console/internal/account/infra/revocation"
)

func TestLists(t *testing.T) {
	tests := []struct {
		name string
		list func(t *testing.T) revocation.List
	}{
		{
			name: "memory",
			list: func(*testing.T) revocation.List {
				return infrarevocation.NewMemoryList()
			},
		},
		{
			name: "redis",
			list: func(t *testing.T) revocation.List {
				server := miniredis.RunT(t)
				client := redis.NewClient(&redis.Options{Addr: server.Addr()})
				t.Cleanup(func() { _ = client.Close() })
				return infrarevocation.NewRedisList(client)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			list := tc.list(t)

			revoked, err := list.IsRevoked(ctx, "jti")
			require.NoError(t, err)
			assert.False(t, revoked)

			require.NoError(t, list.Revoke(ctx, "jti", time.Now().Add(time.Hour)))
			revoked, err = list.IsRevoked(ctx, "jti")
			require.NoError(t, err)
			assert.True(t, revoked)

			require.NoError(t, list.Revoke(ctx, "expired", time.Now().Add(-time.Second)))
			revoked, err = list.IsRevoked(ctx, "expired")
			require.NoError(t, err)
			assert.False(t, revoked, "already expired tokens are not stored")
		})
	}
}

func TestRedisList_KeyExpiresWithToken(t *testing.T) {
	ctx := context.Background()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	defer client.Close()
	list := infrarevocation.NewRedisList(client)

	require.NoError(t, list.Revoke(ctx, "jti", time.Now().Add(time.Minute)))
	server.FastForward(2 * time.Minute)

	revoked, err := list.IsRevoked(ctx, "jti")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRedisList_ServerDown(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr(), MaxRetries: -1})
	defer client.Close()
	list := infrarevocation.NewRedisList(client)
	server.Close()

	_, err := list.IsRevoked(context.Background(), "jti")
	assert.Error(t, err)
}
