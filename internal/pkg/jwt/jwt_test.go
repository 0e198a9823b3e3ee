package jwt

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fastep-work/fastep-backend-go/internal/domain/worker"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessToken(t *testing.T) {
	svc := NewJWTService("test-secret-key-for-jwt", "1h")

	token, expiresAt, err := svc.GenerateAccessToken("worker-1", "Rahim", worker.RoleAdmin)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.InDelta(t, time.Now().Add(time.Hour).Unix(), expiresAt, 5)

	decoded, err := jwtauth.VerifyToken(svc.JWTAuth(), token)
	require.NoError(t, err)

	claims, err := decoded.AsMap(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "worker-1", claims["user_id"])
	assert.Equal(t, "admin", claims["role"])
	assert.Equal(t, "access", claims["type"])
}

func TestGenerateAccessToken_BadExpiration(t *testing.T) {
	svc := NewJWTService("secret", "soon")

	_, _, err := svc.GenerateAccessToken("worker-1", "Rahim", worker.RoleWorker)
	assert.Error(t, err)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	issuer := NewJWTService("secret-a", "1h")
	verifier := NewJWTService("secret-b", "1h")

	token, _, err := issuer.GenerateAccessToken("worker-1", "Rahim", worker.RoleWorker)
	require.NoError(t, err)

	_, err = jwtauth.VerifyToken(verifier.JWTAuth(), token)
	assert.Error(t, err)
}

func TestRevokeToken(t *testing.T) {
	ctx := t.Context()
	svc := NewJWTService("secret", "1h").(*JWTService)

	require.NoError(t, svc.RevokeToken(ctx, "stale", time.Now().Add(-time.Hour).Unix()))
	revoked, err := svc.IsTokenRevoked(ctx, "stale")
	require.NoError(t, err)
	assert.True(t, revoked)

	require.NoError(t, svc.RevokeToken(ctx, "live", time.Now().Add(time.Hour).Unix()))

	revoked, err = svc.IsTokenRevoked(ctx, "live")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = svc.IsTokenRevoked(ctx, "stale")
	require.NoError(t, err)
	assert.False(t, revoked, "expired entries are pruned by the next revoke")

	revoked, err = svc.IsTokenRevoked(ctx, "other")
	require.NoError(t, err)
	assert.False(t, revoked)
}

type memoryRevokedTokens struct {
	tokens map[string]time.Time
	err    error
}

func (m *memoryRevokedTokens) Revoke(ctx context.Context, tokenHash string, expiresAt time.Time) error {
	if m.err != nil {
		return m.err
	}
	m.tokens[tokenHash] = expiresAt
	return nil
}

func (m *memoryRevokedTokens) IsRevoked(ctx context.Context, tokenHash string, now time.Time) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	exp, ok := m.tokens[tokenHash]
	return ok && exp.After(now), nil
}

func (m *memoryRevokedTokens) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	return 0, nil
}

func TestRevokeToken_SurvivesRestart(t *testing.T) {
	ctx := t.Context()
	repo := &memoryRevokedTokens{tokens: map[string]time.Time{}}

	before := NewJWTService("secret", "1h", WithRevokedTokenRepository(repo))
	token, expiresAt, err := before.GenerateAccessToken("worker-1", "Rahim", worker.RoleWorker)
	require.NoError(t, err)
	require.NoError(t, before.RevokeToken(ctx, token, expiresAt))

	assert.NotContains(t, repo.tokens, token, "only the hash is stored")
	assert.Contains(t, repo.tokens, hashToken(token))

	after := NewJWTService("secret", "1h", WithRevokedTokenRepository(repo))
	revoked, err := after.IsTokenRevoked(ctx, token)
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestRevokeToken_RepositoryErrors(t *testing.T) {
	ctx := t.Context()
	boom := errors.New("db down")
	svc := NewJWTService("secret", "1h", WithRevokedTokenRepository(&memoryRevokedTokens{err: boom}))

	assert.ErrorIs(t, svc.RevokeToken(ctx, "t", time.Now().Add(time.Hour).Unix()), boom)

	_, err := svc.IsTokenRevoked(ctx, "unknown")
	assert.ErrorIs(t, err, boom)
}
