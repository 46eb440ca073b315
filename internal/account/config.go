package account

import (
	"errors"
	"fmt"
	"time"

	"github.com/klwxsrx/kahuna-console/internal/account/infra/token"
	"github.com/klwxsrx/kahuna-console/pkg/env"
)

const (
	EnvJWTSecret     = "AUTH_JWT_SECRET"
	EnvTokenTTL      = "AUTH_TOKEN_TTL"
	EnvInviteCode    = "AUTH_INVITE_CODE"
	EnvBcryptCost    = "AUTH_BCRYPT_COST"
	EnvAdminUsername = "DEV_ADMIN_USERNAME"
	EnvAdminPassword = "DEV_ADMIN_PASSWORD"

	DefaultInviteCode    = "123456"
	DefaultAdminUsername = "admin"
	defaultTokenIssuer   = "kahuna-auth-devserver"
)

type Config struct {
	JWTSecret     []byte
	TokenTTL      time.Duration
	InviteCode    string
	BcryptCost    int
	AdminUsername string
	// AdminPassword seeds the admin account when set.
	AdminPassword string
}

func ParseConfig() (Config, error) {
	secret, secretErr := env.Parse[string](EnvJWTSecret)
	ttl, ttlErr := env.ParseOr(EnvTokenTTL, token.DefaultTTL)
	inviteCode, inviteErr := env.ParseOr(EnvInviteCode, DefaultInviteCode)
	cost, costErr := env.ParseOr(EnvBcryptCost, 0)
	adminUsername, adminErr := env.ParseOr(EnvAdminUsername, DefaultAdminUsername)
	adminPassword, adminPasswordErr := env.ParseOr(EnvAdminPassword, "")

	err := errors.Join(secretErr, ttlErr, inviteErr, costErr, adminErr, adminPasswordErr)
	if err != nil {
		return Config{}, fmt.Errorf("parse account config: %w", err)
	}

	return Config{
		JWTSecret:     []byte(secret),
		TokenTTL:      ttl,
		InviteCode:    inviteCode,
		BcryptCost:    cost,
		AdminUsername: adminUsername,
		AdminPassword: adminPassword,
	}, nil
}
