package worker

import "errors"

var (
	ErrWorkerNotFound         = errors.New("worker not found")
	ErrWorkerCodeExists       = errors.New("worker code already exists")
	ErrWorkerInactive         = errors.New("worker account is inactive")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
	ErrLastAdmin              = errors.New("cannot delete the last admin account")
)
