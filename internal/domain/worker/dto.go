package worker

import (
	"strings"
	"time"

	"github.com/fastep-work/fastep-backend-go/internal/pkg/utils"
	"github.com/fastep-work/fastep-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateWorkerRequest struct {
	Name           string  `json:"name"`
	WorkerCode     string  `json:"worker_code"`
	Trade          *string `json:"trade,omitempty"`
	Role           string  `json:"role,omitempty"`
	MonthlySalary  float64 `json:"monthly_salary"`
	Phone          *string `json:"phone,omitempty"`
	PhotoURL       *string `json:"photo_url,omitempty"`
	Password       string  `json:"password"`
	IqamaExpiry    *string `json:"iqama_expiry,omitempty"`
	PassportExpiry *string `json:"passport_expiry,omitempty"`
}

func (r *CreateWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if !validator.IsValidWorkerCode(r.WorkerCode) {
		errs = append(errs, validator.ValidationError{Field: "worker_code", Message: "must be 2-20 letters, digits or dashes"})
	}
	if r.Role == "" {
		r.Role = string(RoleWorker)
	}
	if r.Role != string(RoleWorker) && r.Role != string(RoleAdmin) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "must be 'worker' or 'admin'"})
	}
	if r.Role == string(RoleWorker) && r.MonthlySalary <= 0 {
		errs = append(errs, validator.ValidationError{Field: "monthly_salary", Message: "must be positive"})
	}
	if r.MonthlySalary < 0 {
		errs = append(errs, validator.ValidationError{Field: "monthly_salary", Message: "must be non-negative"})
	}
	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "must be at least 8 characters"})
	}
	if r.Phone != nil && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "invalid phone number"})
	}
	if r.IqamaExpiry != nil {
		if _, ok := validator.IsValidDate(*r.IqamaExpiry); !ok {
			errs = append(errs, validator.ValidationError{Field: "iqama_expiry", Message: "must be YYYY-MM-DD"})
		}
	}
	if r.PassportExpiry != nil {
		if _, ok := validator.IsValidDate(*r.PassportExpiry); !ok {
			errs = append(errs, validator.ValidationError{Field: "passport_expiry", Message: "must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateWorkerRequest struct {
	ID             string   `json:"-"`
	Name           *string  `json:"name,omitempty"`
	WorkerCode     *string  `json:"worker_code,omitempty"`
	Trade          *string  `json:"trade,omitempty"`
	MonthlySalary  *float64 `json:"monthly_salary,omitempty"`
	Phone          *string  `json:"phone,omitempty"`
	PhotoURL       *string  `json:"photo_url,omitempty"`
	IsActive       *bool    `json:"is_active,omitempty"`
	IqamaExpiry    *string  `json:"iqama_expiry,omitempty"`
	PassportExpiry *string  `json:"passport_expiry,omitempty"`
}

func (r *UpdateWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "cannot be empty"})
	}
	if r.WorkerCode != nil && !validator.IsValidWorkerCode(*r.WorkerCode) {
		errs = append(errs, validator.ValidationError{Field: "worker_code", Message: "must be 2-20 letters, digits or dashes"})
	}
	if r.MonthlySalary != nil && *r.MonthlySalary <= 0 {
		errs = append(errs, validator.ValidationError{Field: "monthly_salary", Message: "must be positive"})
	}
	if r.Phone != nil && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "invalid phone number"})
	}
	if r.IqamaExpiry != nil {
		if _, ok := validator.IsValidDate(*r.IqamaExpiry); !ok {
			errs = append(errs, validator.ValidationError{Field: "iqama_expiry", Message: "must be YYYY-MM-DD"})
		}
	}
	if r.PassportExpiry != nil {
		if _, ok := validator.IsValidDate(*r.PassportExpiry); !ok {
			errs = append(errs, validator.ValidationError{Field: "passport_expiry", Message: "must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type WorkerFilter struct {
	Search     *string
	ActiveOnly bool
}

type WorkerResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	WorkerCode     *string         `json:"worker_code,omitempty"`
	Trade          *string         `json:"trade,omitempty"`
	Role           string          `json:"role"`
	MonthlySalary  decimal.Decimal `json:"monthly_salary"`
	Phone          *string         `json:"phone,omitempty"`
	PhotoURL       *string         `json:"photo_url,omitempty"`
	IsActive       bool            `json:"is_active"`
	IqamaExpiry    *string         `json:"iqama_expiry,omitempty"`
	PassportExpiry *string         `json:"passport_expiry,omitempty"`
	CreatedAt      string          `json:"created_at"`
}

func NewWorkerResponse(w Worker) WorkerResponse {
	return WorkerResponse{
		ID:             w.ID,
		Name:           w.Name,
		WorkerCode:     w.WorkerCode,
		Trade:          w.Trade,
		Role:           string(w.Role),
		MonthlySalary:  utils.Money(w.MonthlySalary),
		Phone:          w.Phone,
		PhotoURL:       w.PhotoURL,
		IsActive:       w.IsActive,
		IqamaExpiry:    utils.FormatDatePtr(w.IqamaExpiry),
		PassportExpiry: utils.FormatDatePtr(w.PassportExpiry),
		CreatedAt:      w.CreatedAt.Format(time.RFC3339),
	}
}
