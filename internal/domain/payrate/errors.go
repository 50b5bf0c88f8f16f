package payrate

import "errors"

var (
	ErrInvalidRate  = errors.New("hourly rate must be a non-negative number")
	ErrUnknownRole  = errors.New("unknown role")
	ErrRateNotFound = errors.New("pay rate not found")
)
