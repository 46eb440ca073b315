package redis_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/klwxsrx/kahuna-console/pkg/redis"
)

func TestNewClient_InvalidURL(t *testing.T) {
	_, err := redis.NewClient(context.Background(), redis.Config{URL: "http://not-redis"})
	assert.ErrorIs(t, err, redis.ErrInvalidURL)
}
