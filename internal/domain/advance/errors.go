package advance

import "errors"

var (
	ErrAdvanceNotFound          = errors.New("advance request not found")
	ErrInvalidAdvanceTransition = errors.New("advance request cannot move to the requested status")
)
