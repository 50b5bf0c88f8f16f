package profile

import "errors"

var (
	ErrProfileNotFound     = errors.New("employee profile not found")
	ErrUnknownRole         = errors.New("unknown role")
	ErrRoleAlreadyAssigned = errors.New("role already assigned to this employee")
	ErrRoleNotAssigned     = errors.New("role is not assigned to this employee")
)
