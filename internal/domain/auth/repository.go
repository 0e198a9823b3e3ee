package auth

import (
	"context"
	"time"
)

// RevokedTokenRepository keeps logged-out access tokens, by hash, until they expire.
type RevokedTokenRepository interface {
	Revoke(ctx context.Context, tokenHash string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenHash string, now time.Time) (bool, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
