package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fastep-work/fastep-backend-go/internal/domain/auth"
	"github.com/fastep-work/fastep-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type revokedTokenRepositoryImpl struct {
	db *database.DB
}

func NewRevokedTokenRepository(db *database.DB) auth.RevokedTokenRepository {
	return &revokedTokenRepositoryImpl{db: db}
}

// Revoke implements auth.RevokedTokenRepository.
func (r *revokedTokenRepositoryImpl) Revoke(ctx context.Context, tokenHash string, expiresAt time.Time) error {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO revoked_tokens (token_hash, expires_at)
		VALUES ($1, $2)
		ON CONFLICT (token_hash) DO NOTHING
	`
	if _, err := q.Exec(ctx, query, tokenHash, expiresAt.UTC()); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// IsRevoked implements auth.RevokedTokenRepository.
func (r *revokedTokenRepositoryImpl) IsRevoked(ctx context.Context, tokenHash string, now time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT 1 FROM revoked_tokens WHERE token_hash = $1 AND expires_at > $2`

	var one int
	err := q.QueryRow(ctx, query, tokenHash, now.UTC()).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check revoked token: %w", err)
	}
	return true, nil
}

// DeleteExpired implements auth.RevokedTokenRepository.
func (r *revokedTokenRepositoryImpl) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)
	tag, err := q.Exec(ctx, `DELETE FROM revoked_tokens WHERE expires_at <= $1`, now.UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to purge revoked tokens: %w", err)
	}
	return tag.RowsAffected(), nil
}
