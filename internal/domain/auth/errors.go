package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid worker code or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrAccountInactive    = errors.New("account is inactive")
)
