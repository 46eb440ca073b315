package service

import "errors"

var (
	ErrCredentialsRequired = errors.New("username and password are required")
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrInvalidInviteCode   = errors.New("invalid invite code")
	ErrUserAlreadyExists   = errors.New("username is already taken")
	ErrUserNotFound        = errors.New("user not found")
)
