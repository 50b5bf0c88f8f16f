package attendance

import (
	"context"
)

// Repository defines data access for attendance records. Dates are passed in
// "2006-01-02" form, already localized to the organization timezone by the
// caller. Create must surface the store's (user_id, date) uniqueness
// violation as ErrAlreadyCheckedIn rather than overwriting.
type Repository interface {
	// Create inserts a new record and returns it with its assigned ID.
	Create(ctx context.Context, rec Record) (Record, error)

	// GetByID retrieves a record, joined with the owner's profile.
	GetByID(ctx context.Context, id string) (Record, error)

	// GetByUserAndDate retrieves one user's record for a date. Returns
	// (nil, nil) when the user has not checked in on that date.
	GetByUserAndDate(ctx context.Context, userID string, date string) (*Record, error)

	// Update persists all mutable fields of a record in one statement.
	Update(ctx context.Context, rec Record) error

	// ListByUser retrieves a user's most recent records, date descending.
	ListByUser(ctx context.Context, userID string, limit int) ([]Record, error)

	// ListByDate retrieves every record for a date, check-in ascending.
	ListByDate(ctx context.Context, date string) ([]Record, error)

	// ListBetween retrieves every record with date in [startDate, endDate].
	ListBetween(ctx context.Context, startDate string, endDate string) ([]Record, error)

	// SumWorkedMinutes sums the persisted total_worked_minutes snapshots for
	// one user over an inclusive date range.
	SumWorkedMinutes(ctx context.Context, userID string, startDate string, endDate string) (float64, error)

	Delete(ctx context.Context, id string) error
}
