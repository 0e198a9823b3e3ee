package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fastep-work/fastep-backend-go/internal/domain/auth"
)

const PurgeRevokedTokensJobName = "purge-revoked-tokens"

type TokenJobs struct {
	revokedTokens auth.RevokedTokenRepository
	now           func() time.Time
}

func NewTokenJobs(revokedTokens auth.RevokedTokenRepository) *TokenJobs {
	return &TokenJobs{revokedTokens: revokedTokens, now: time.Now}
}

func (j *TokenJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	scheduler.AddJob(PurgeRevokedTokensJobName, interval, j.PurgeRevokedTokens)
}

// PurgeRevokedTokens drops revocations whose tokens have expired anyway.
func (j *TokenJobs) PurgeRevokedTokens(ctx context.Context) error {
	deleted, err := j.revokedTokens.DeleteExpired(ctx, j.now())
	if err != nil {
		return fmt.Errorf("failed to purge revoked tokens: %w", err)
	}
	if deleted > 0 {
		slog.Info("Cron: purged expired revoked tokens", "count", deleted)
	}
	return nil
}
