package sql

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/kahuna-console/internal/account/domain"
)

func TestUserRepository_BuildFindQuery(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name       string
		spec       domain.FindUserSpecification
		expectSQL  string
		expectArgs []any
	}{
		{
			name:      "all_users",
			expectSQL: "SELECT id, username, password_hash, roles, created_at FROM account_user ORDER BY created_at, id",
		},
		{
			name:       "by_username",
			spec:       domain.FindUserSpecification{Usernames: []string{"pilot"}},
			expectSQL:  "SELECT id, username, password_hash, roles, created_at FROM account_user WHERE username IN (?) ORDER BY created_at, id",
			expectArgs: []any{"pilot"},
		},
		{
			name:       "by_ids",
			spec:       domain.FindUserSpecification{IDs: []domain.UserID{{UUID: id}}},
			expectSQL:  "SELECT id, username, password_hash, roles, created_at FROM account_user WHERE id IN (?) ORDER BY created_at, id",
			expectArgs: []any{id},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			query, args, err := userRepository{}.buildFindQuery(tc.spec).ToSql()
			require.NoError(t, err)
			assert.Equal(t, tc.expectSQL, query)
			assert.ElementsMatch(t, tc.expectArgs, args)
		})
	}
}
