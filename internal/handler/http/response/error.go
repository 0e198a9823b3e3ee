package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/fastep-work/fastep-backend-go/internal/domain/advance"
	"github.com/fastep-work/fastep-backend-go/internal/domain/auth"
	"github.com/fastep-work/fastep-backend-go/internal/domain/feed"
	"github.com/fastep-work/fastep-backend-go/internal/domain/leave"
	"github.com/fastep-work/fastep-backend-go/internal/domain/payroll"
	"github.com/fastep-work/fastep-backend-go/internal/domain/shift"
	"github.com/fastep-work/fastep-backend-go/internal/domain/worker"
	"github.com/fastep-work/fastep-backend-go/internal/pkg/validator"
	"github.com/fastep-work/fastep-backend-go/internal/service/file"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrAccountInactive):
		Forbidden(w, "Account is inactive")

	// Worker domain errors
	case errors.Is(err, worker.ErrWorkerNotFound), errors.Is(err, payroll.ErrWorkerNotFound):
		NotFound(w, "Worker not found")
	case errors.Is(err, worker.ErrWorkerCodeExists):
		Conflict(w, "Worker code already exists")
	case errors.Is(err, worker.ErrWorkerInactive):
		Forbidden(w, "Worker account is inactive")
	case errors.Is(err, worker.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, worker.ErrLastAdmin):
		Conflict(w, err.Error())

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrShiftLocked):
		Conflict(w, err.Error())
	case errors.Is(err, shift.ErrShiftAlreadyApproved):
		Conflict(w, "Shift already approved")
	case errors.Is(err, shift.ErrFutureShiftDate):
		ValidationError(w, map[string]string{"date": "cannot be in the future"})

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveAlreadyDecided):
		Conflict(w, "Leave request already decided")

	// Advance domain errors
	case errors.Is(err, advance.ErrAdvanceNotFound):
		NotFound(w, "Advance request not found")
	case errors.Is(err, advance.ErrInvalidAdvanceTransition):
		Conflict(w, err.Error())

	// Payroll domain errors
	case errors.Is(err, payroll.ErrWorkerHasNoSalary):
		UnprocessableEntity(w, "Worker has no monthly salary configured")

	// Feed domain errors
	case errors.Is(err, feed.ErrAnnouncementNotFound):
		NotFound(w, "Announcement not found")

	// Upload errors
	case errors.Is(err, file.ErrUnsupportedPhotoType), errors.Is(err, file.ErrUnknownPhotoKind):
		UnprocessableEntity(w, err.Error())
	case errors.Is(err, file.ErrPhotoTooLarge):
		PayloadTooLarge(w, err.Error())

	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
