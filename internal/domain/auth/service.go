package auth

import (
	"context"
)

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	// Logout revokes the access token until it expires.
	Logout(ctx context.Context, accessToken string) error
}
