package payrate

import (
	"math"
	"time"
)

// PayRate is either a role-default rate (Role set, UserID nil) or an
// individual override (UserID set, Role nil). Exactly one of the two keys is
// populated; the store enforces one active row per key.
type PayRate struct {
	ID         string
	UserID     *string
	Role       *string
	HourlyRate float64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ValidateRate rejects rates that must never reach the replace sequence.
// Running the delete half of a replace with a bad value would leave the key
// with no rate row at all.
func ValidateRate(rate float64) error {
	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate < 0 {
		return ErrInvalidRate
	}
	return nil
}
