package password_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/klwxsrx/kahuna-console/internal/account/infra/password"
)

func TestEncoder(t *testing.T) {
	encoder := password.NewEncoder(bcrypt.MinCost)

	hash, err := encoder.HashPassword("secret")
	require.NoError(t, err)
	assert.NotEqual(t, "secret", hash)

	assert.True(t, encoder.CompareHash(hash, "secret"))
	assert.False(t, encoder.CompareHash(hash, "Secret"))
	assert.False(t, encoder.CompareHash("not-a-hash", "secret"))
}

func TestNewEncoder_CostOutOfRange(t *testing.T) {
	hash, err := password.NewEncoder(0).HashPassword("secret")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
