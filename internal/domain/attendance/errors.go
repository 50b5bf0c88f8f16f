package attendance

import "errors"

// Attendance domain errors
var (
	// Transition errors
	ErrAlreadyCheckedIn  = errors.New("you have already checked in today")
	ErrNotCheckedIn      = errors.New("you have not checked in today")
	ErrInvalidTransition = errors.New("action is not allowed in the current status")

	// General errors
	ErrRecordNotFound = errors.New("attendance record not found")
)
