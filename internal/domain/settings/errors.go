package settings

import "errors"

var (
	ErrUnknownKey   = errors.New("unknown settings key")
	ErrInvalidValue = errors.New("invalid settings value")
)
