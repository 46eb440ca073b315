package revocation

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/klwxsrx/kahuna-console/internal/account/app/revocation"
)

const redisKeyPrefix = "account:revoked_token:"

type redisList struct {
	client redis.UniversalClient
}

// NewRedisList keeps a key per revoked token, the key expires together with the token.
func NewRedisList(client redis.UniversalClient) revocation.List {
	return redisList{client: client}
}

func (l redisList) Revoke(ctx context.Context, tokenID string, till time.Time) error {
	ttl := time.Until(till)
	if ttl <= 0 {
		return nil
	}

	err := l.client.Set(ctx, redisKeyPrefix+tokenID, 1, ttl).Err()
	if err != nil {
		return fmt.Errorf("store revoked token: %w", err)
	}
	return nil
}

func (l redisList) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := l.client.Exists(ctx, redisKeyPrefix+tokenID).Result()
	if err != nil {
		return false, fmt.Errorf("check revoked token: %w", err)
	}
	return n > 0, nil
}
