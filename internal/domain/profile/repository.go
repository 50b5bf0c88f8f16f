package profile

import (
	"context"
)

type Repository interface {
	// List retrieves all profiles with their roles, oldest profile first.
	List(ctx context.Context) ([]Profile, error)

	// GetByUserID retrieves one profile with its roles.
	GetByUserID(ctx context.Context, userID string) (Profile, error)

	// GetRoles returns a user's roles ordered by assignment time. The first
	// entry is the primary role used for pay-rate fallback.
	GetRoles(ctx context.Context, userID string) ([]string, error)

	AssignRole(ctx context.Context, userID string, role string) error
	RemoveRole(ctx context.Context, userID string, role string) error
	SetActive(ctx context.Context, userID string, active bool) error
}
