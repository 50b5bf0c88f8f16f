package payrate

import (
	"context"
)

type RateResponse struct {
	ID         string  `json:"id"`
	UserID     *string `json:"user_id,omitempty"`
	Role       *string `json:"role,omitempty"`
	HourlyRate float64 `json:"hourly_rate"`
}

type ListResponse struct {
	RoleDefaults  []RateResponse `json:"role_defaults"`
	UserOverrides []RateResponse `json:"user_overrides"`
}

type SetRateRequest struct {
	HourlyRate float64 `json:"hourly_rate"`
}

// Service manages rate rows with replace semantics: saving a rate for a key
// deletes any prior row for that exact key before inserting, inside one
// transaction, so a key never ends up with two rows or zero rows.
type Service interface {
	List(ctx context.Context) (ListResponse, error)
	SetRoleRate(ctx context.Context, role string, rate float64) (RateResponse, error)
	SetUserRate(ctx context.Context, userID string, rate float64) (RateResponse, error)
	ClearUserRate(ctx context.Context, userID string) error
}
