package jwt

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"sync"
	"time"

	"github.com/fastep-work/fastep-backend-go/internal/domain/auth"
	"github.com/fastep-work/fastep-backend-go/internal/domain/worker"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

type Service interface {
	GenerateAccessToken(workerID string, name string, role worker.Role) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
	RevokeToken(ctx context.Context, token string, expiresAt int64) error
	IsTokenRevoked(ctx context.Context, token string) (bool, error)
}

type JWTService struct {
	accessTokenExpirationTime string
	tokenAuth                 *jwtauth.JWTAuth
	revokedTokens             map[string]int64
	revokedRepo               auth.RevokedTokenRepository
	mu                        sync.RWMutex
	now                       func() time.Time
}

type Option func(*JWTService)

// WithRevokedTokenRepository persists revocations so they survive a restart.
func WithRevokedTokenRepository(repo auth.RevokedTokenRepository) Option {
	return func(j *JWTService) {
		j.revokedRepo = repo
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string, opts ...Option) Service {
	j := &JWTService{
		accessTokenExpirationTime: accessTokenExpirationTime,
		tokenAuth:                 jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		revokedTokens:             make(map[string]int64),
		now:                       time.Now,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

func (j *JWTService) GenerateAccessToken(workerID string, name string, role worker.Role) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = j.now().Add(expDuration).Unix()

	claims := map[string]interface{}{
		"user_id": workerID,
		"name":    name,
		"role":    string(role),
		"type":    "access",
		"exp":     expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

// hashToken keeps raw tokens out of the database.
func hashToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return base64.StdEncoding.EncodeToString(hash[:])
}

// RevokeToken blacklists a token until its own expiry. Expired entries are pruned from memory on each revoke.
func (j *JWTService) RevokeToken(ctx context.Context, token string, expiresAt int64) error {
	j.mu.Lock()
	now := j.now().Unix()
	for t, exp := range j.revokedTokens {
		if exp < now {
			delete(j.revokedTokens, t)
		}
	}
	j.revokedTokens[token] = expiresAt
	j.mu.Unlock()

	if j.revokedRepo == nil {
		return nil
	}
	if err := j.revokedRepo.Revoke(ctx, hashToken(token), time.Unix(expiresAt, 0)); err != nil {
		return fmt.Errorf("persist revoked token: %w", err)
	}
	return nil
}

// IsTokenRevoked checks the in-memory list first, then the repository.
func (j *JWTService) IsTokenRevoked(ctx context.Context, token string) (bool, error) {
	j.mu.RLock()
	_, revoked := j.revokedTokens[token]
	j.mu.RUnlock()
	if revoked || j.revokedRepo == nil {
		return revoked, nil
	}

	revoked, err := j.revokedRepo.IsRevoked(ctx, hashToken(token), j.now())
	if err != nil {
		return false, fmt.Errorf("check revoked token: %w", err)
	}
	return revoked, nil
}
