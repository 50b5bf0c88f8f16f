package activity

import (
	"context"
	"time"
)

// Entry is one append-only audit-log row.
type Entry struct {
	ID        string
	UserID    string
	Action    string
	Details   *string
	CreatedAt time.Time

	// DTO
	UserName *string
}

type Repository interface {
	Insert(ctx context.Context, userID string, action string, details string) error

	// List retrieves the most recent entries, newest first, joined with the
	// actor's profile.
	List(ctx context.Context, limit int) ([]Entry, error)
}

type EntryResponse struct {
	ID        string  `json:"id"`
	UserID    string  `json:"user_id"`
	UserName  *string `json:"user_name"`
	Action    string  `json:"action"`
	Details   *string `json:"details"`
	CreatedAt string  `json:"created_at"`
}

// Service is the audit sink. Record failures are the caller's problem only
// to the extent of logging them: an audit write must never roll back or
// block the state transition it describes.
type Service interface {
	Record(ctx context.Context, userID string, action string, details string) error
	List(ctx context.Context, limit int) ([]EntryResponse, error)
}
