package profile

import (
	"time"
)

// Roles lists every assignable role. The first role assigned to a user is
// the one that drives pay-rate fallback.
var Roles = []string{"admin", "caregiver", "it_support", "driver", "manager"}

type Profile struct {
	ID        string
	UserID    string
	FullName  *string
	Email     string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO: assigned roles, oldest assignment first
	Roles []string
}

// DisplayName prefers the full name and falls back to the email address.
func (p Profile) DisplayName() string {
	if p.FullName != nil && *p.FullName != "" {
		return *p.FullName
	}
	return p.Email
}
