package response

import (
	"errors"
	"net/http"

	"github.com/mycityradius/timeclock-backend-go/internal/domain/attendance"
	"github.com/mycityradius/timeclock-backend-go/internal/domain/payrate"
	"github.com/mycityradius/timeclock-backend-go/internal/domain/profile"
	"github.com/mycityradius/timeclock-backend-go/internal/domain/settings"
	"github.com/mycityradius/timeclock-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in today")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		Conflict(w, "Not checked in today")
	case errors.Is(err, attendance.ErrInvalidTransition):
		Conflict(w, "Action not allowed in the current attendance state")
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")

	// Pay rate domain errors
	case errors.Is(err, payrate.ErrInvalidRate):
		ValidationError(w, map[string]string{"hourly_rate": "must be a non-negative number"})
	case errors.Is(err, payrate.ErrUnknownRole):
		BadRequest(w, "Unknown role", nil)
	case errors.Is(err, payrate.ErrRateNotFound):
		NotFound(w, "Pay rate not found")

	// Profile domain errors
	case errors.Is(err, profile.ErrProfileNotFound):
		NotFound(w, "Employee profile not found")
	case errors.Is(err, profile.ErrUnknownRole):
		BadRequest(w, "Unknown role", nil)
	case errors.Is(err, profile.ErrRoleAlreadyAssigned):
		Conflict(w, "Role already assigned to this employee")
	case errors.Is(err, profile.ErrRoleNotAssigned):
		Conflict(w, "Role is not assigned to this employee")

	// Settings domain errors
	case errors.Is(err, settings.ErrUnknownKey):
		NotFound(w, "Unknown settings key")
	case errors.Is(err, settings.ErrInvalidValue):
		BadRequest(w, "Invalid settings value", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
