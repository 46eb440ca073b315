package token_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/kahuna-console/internal/account/app/token"
	"github.com/klwxsrx/kahuna-console/internal/account/domain"
	infratoken "github.com/klwxsrx/kahuna-console/internal/account/infra/token"
)

var testSecret = []byte("test-secret")

func newIssuer(t *testing.T, ttl time.Duration) token.Issuer {
	issuer, err := infratoken.NewJWTIssuer(infratoken.Config{Secret: testSecret, TTL: ttl, Issuer: "test"})
	require.NoError(t, err)
	return issuer
}

func TestJWTIssuer_IssueAndParse(t *testing.T) {
	issuer := newIssuer(t, time.Hour)
	user := domain.User{
		ID:       domain.UserID{UUID: uuid.New()},
		Username: "pilot",
		Roles:    []string{domain.RoleUser},
	}

	issued, err := issuer.Issue(user)
	require.NoError(t, err)
	assert.NotEmpty(t, issued.Encoded)
	assert.NotEmpty(t, issued.ID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), issued.ExpiresAt, 2*time.Second)

	parsed, err := issuer.Parse(issued.Encoded)
	require.NoError(t, err)
	assert.Equal(t, issued.ID, parsed.ID)
	assert.Equal(t, user.ID, parsed.UserID)
	assert.Equal(t, user.Roles, parsed.Roles)
	assert.True(t, issued.ExpiresAt.Equal(parsed.ExpiresAt))
}

func TestJWTIssuer_Parse_Rejects(t *testing.T) {
	issuer := newIssuer(t, time.Hour)
	user := domain.User{ID: domain.UserID{UUID: uuid.New()}}

	sign := func(method jwt.SigningMethod, key any, claims jwt.MapClaims) string {
		encoded, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return encoded
	}
	validClaims := func() jwt.MapClaims {
		return jwt.MapClaims{
			"sub": user.ID.String(),
			"jti": "jti",
			"iss": "test",
			"exp": time.Now().Add(time.Hour).Unix(),
		}
	}

	tests := []struct {
		name    string
		encoded func() string
	}{
		{
			name:    "garbage",
			encoded: func() string { return "not-a-jwt" },
		},
		{
			name: "foreign_secret",
			encoded: func() string {
				return sign(jwt.SigningMethodHS256, []byte("other"), validClaims())
			},
		},
		{
			name: "none_algorithm",
			encoded: func() string {
				return sign(jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, validClaims())
			},
		},
		{
			name: "expired",
			encoded: func() string {
				claims := validClaims()
				claims["exp"] = time.Now().Add(-time.Minute).Unix()
				return sign(jwt.SigningMethodHS256, testSecret, claims)
			},
		},
		{
			name: "without_expiration",
			encoded: func() string {
				claims := validClaims()
				delete(claims, "exp")
				return sign(jwt.SigningMethodHS256, testSecret, claims)
			},
		},
		{
			name: "foreign_issuer",
			encoded: func() string {
				claims := validClaims()
				claims["iss"] = "elsewhere"
				return sign(jwt.SigningMethodHS256, testSecret, claims)
			},
		},
		{
			name: "subject_not_uuid",
			encoded: func() string {
				claims := validClaims()
				claims["sub"] = "42"
				return sign(jwt.SigningMethodHS256, testSecret, claims)
			},
		},
		{
			name: "without_token_id",
			encoded: func() string {
				claims := validClaims()
				delete(claims, "jti")
				return sign(jwt.SigningMethodHS256, testSecret, claims)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := issuer.Parse(tc.encoded())
			assert.ErrorIs(t, err, token.ErrInvalidToken)
		})
	}
}

func TestNewJWTIssuer_EmptySecret(t *testing.T) {
	_, err := infratoken.NewJWTIssuer(infratoken.Config{})
	assert.ErrorIs(t, err, infratoken.ErrEmptySecret)
}
