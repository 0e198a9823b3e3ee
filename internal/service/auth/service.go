package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/fastep-work/fastep-backend-go/internal/domain/auth"
	"github.com/fastep-work/fastep-backend-go/internal/domain/worker"
	"github.com/fastep-work/fastep-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	worker.WorkerRepository
	jwt.Service
}

func NewAuthService(workerRepository worker.WorkerRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		WorkerRepository: workerRepository,
		Service:          jwtService,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	workerData, err := a.GetByCode(ctx, req.WorkerCode)
	if err != nil {
		if errors.Is(err, worker.ErrWorkerNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get worker by code: %w", err)
	}

	if workerData.PasswordHash == "" {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(workerData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	if !workerData.IsActive {
		return auth.TokenResponse{}, auth.ErrAccountInactive
	}

	token, expiresAt, err := a.GenerateAccessToken(workerData.ID, workerData.Name, workerData.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	slog.Info("Worker logged in", "worker_id", workerData.ID, "role", workerData.Role)

	return auth.TokenResponse{
		AccessToken:          token,
		AccessTokenExpiresAt: expiresAt,
		Worker:               worker.NewWorkerResponse(workerData),
	}, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, accessToken string) error {
	token, err := jwtauth.VerifyToken(a.JWTAuth(), accessToken)
	if err != nil {
		return auth.ErrInvalidToken
	}

	if err := a.RevokeToken(ctx, accessToken, token.Expiration().Unix()); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	slog.Info("Worker logged out")
	return nil
}
