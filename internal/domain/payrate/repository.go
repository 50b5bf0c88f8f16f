package payrate

import (
	"context"
)

// Repository defines data access for pay rates. Get methods return
// (nil, nil) when no row exists for the key; rate resolution treats that as
// "fall through", not an error.
type Repository interface {
	// GetByUser retrieves a user's individual override rate.
	GetByUser(ctx context.Context, userID string) (*PayRate, error)

	// GetByRole retrieves a role-default rate (user_id null).
	GetByRole(ctx context.Context, role string) (*PayRate, error)

	ListRoleDefaults(ctx context.Context) ([]PayRate, error)
	ListUserOverrides(ctx context.Context) ([]PayRate, error)

	// Insert creates a rate row. Callers replace, not merge: delete the
	// prior row for the same key first, inside one transaction.
	Insert(ctx context.Context, rate PayRate) (PayRate, error)

	DeleteByRole(ctx context.Context, role string) error
	DeleteByUser(ctx context.Context, userID string) error
}
