package auth

import (
	"strings"

	"github.com/fastep-work/fastep-backend-go/internal/domain/worker"
	"github.com/fastep-work/fastep-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	WorkerCode string `json:"worker_code"`
	Password   string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	r.WorkerCode = strings.TrimSpace(r.WorkerCode)
	if r.WorkerCode == "" {
		errs = append(errs, validator.ValidationError{Field: "worker_code", Message: "is required"})
	}
	if r.Password == "" {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TokenResponse struct {
	AccessToken          string                `json:"access_token"`
	AccessTokenExpiresAt int64                 `json:"access_token_expires_at"`
	Worker               worker.WorkerResponse `json:"worker"`
}
