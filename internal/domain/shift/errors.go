package shift

import "errors"

var (
	ErrShiftNotFound        = errors.New("shift not found")
	ErrShiftLocked          = errors.New("shift for this date is already approved and cannot be modified")
	ErrShiftAlreadyApproved = errors.New("shift already approved")
	ErrFutureShiftDate      = errors.New("shift date cannot be in the future")
)
