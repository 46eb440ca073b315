package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/klwxsrx/kahuna-console/internal/account/app/token"
	"github.com/klwxsrx/kahuna-console/internal/account/domain"
)

const DefaultTTL = 24 * time.Hour

var ErrEmptySecret = errors.New("jwt secret is empty")

type (
	Config struct {
		Secret []byte
		TTL    time.Duration
		Issuer string
	}

	claims struct {
		Roles []string `json:"roles"`
		jwt.RegisteredClaims
	}

	jwtIssuer struct {
		config Config
		parser *jwt.Parser
	}
)

// NewJWTIssuer signs HS256 tokens carrying sub, jti and roles claims.
func NewJWTIssuer(config Config) (token.Issuer, error) {
	if len(config.Secret) == 0 {
		return nil, ErrEmptySecret
	}
	if config.TTL <= 0 {
		config.TTL = DefaultTTL
	}

	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if config.Issuer != "" {
		options = append(options, jwt.WithIssuer(config.Issuer))
	}

	return &jwtIssuer{
		config: config,
		parser: jwt.NewParser(options...),
	}, nil
}

func (i *jwtIssuer) Issue(user domain.User) (token.Data, error) {
	now := time.Now()
	data := token.Data{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Roles:     user.Roles,
		ExpiresAt: now.Add(i.config.TTL).Truncate(time.Second),
	}

	encoded, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Roles: user.Roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			ID:        data.ID,
			Issuer:    i.config.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(data.ExpiresAt),
		},
	}).SignedString(i.config.Secret)
	if err != nil {
		return token.Data{}, fmt.Errorf("sign token: %w", err)
	}

	data.Encoded = encoded
	return data, nil
}

func (i *jwtIssuer) Parse(encoded string) (token.Data, error) {
	var c claims
	_, err := i.parser.ParseWithClaims(encoded, &c, func(*jwt.Token) (any, error) {
		return i.config.Secret, nil
	})
	if err != nil {
		return token.Data{}, fmt.Errorf("%w: %w", token.ErrInvalidToken, err)
	}

	userID, err := uuid.Parse(c.Subject)
	if err != nil {
		return token.Data{}, fmt.Errorf("%w: invalid subject: %w", token.ErrInvalidToken, err)
	}
	if c.ID == "" {
		return token.Data{}, fmt.Errorf("%w: token id is missing", token.ErrInvalidToken)
	}

	return token.Data{
		Encoded:   encoded,
		ID:        c.ID,
		UserID:    domain.UserID{UUID: userID},
		Roles:     c.Roles,
		ExpiresAt: c.ExpiresAt.Time,
	}, nil
}
