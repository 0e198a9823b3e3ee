package payroll

import "errors"

var (
	ErrWorkerHasNoSalary = errors.New("worker has no monthly salary configured")
	ErrWorkerNotFound    = errors.New("worker not found")
)
