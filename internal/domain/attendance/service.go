package attendance

import (
	"context"
)

// Service defines business logic for attendance operations. The four
// transition methods act on the authenticated user's record for today;
// ListByDate, Correct and Delete are the admin surface.
type Service interface {
	// CheckIn opens today's record. Fails with ErrAlreadyCheckedIn when a
	// record for (user, today) already exists.
	CheckIn(ctx context.Context) (Response, error)

	// Pause opens a break; the worked-time snapshot is taken first.
	Pause(ctx context.Context) (Response, error)

	// Resume closes the open break.
	Resume(ctx context.Context) (Response, error)

	// CheckOut closes any open break, finalizes the record and freezes the
	// worked-time snapshot at the check-out instant.
	CheckOut(ctx context.Context) (Response, error)

	// Today returns the authenticated user's current lifecycle state plus
	// live worked seconds for the timer display.
	Today(ctx context.Context) (TodayResponse, error)

	// History returns the authenticated user's recent records.
	History(ctx context.Context) ([]Response, error)

	// Summary returns today's and the current pay period's progress.
	Summary(ctx context.Context) (SummaryResponse, error)

	// ListByDate returns all records for a date (admin).
	ListByDate(ctx context.Context, date string) ([]Response, error)

	// Correct applies an admin edit and recomputes the snapshot (admin).
	Correct(ctx context.Context, req CorrectionRequest) (Response, error)

	// Delete removes a record (admin).
	Delete(ctx context.Context, id string) error
}
