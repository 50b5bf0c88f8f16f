package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mycityradius/timeclock-backend-go/internal/domain/activity"
	"github.com/mycityradius/timeclock-backend-go/internal/pkg/database"
)

type activityRepository struct {
	db *database.DB
}

// Insert implements activity.Repository.
func (a *activityRepository) Insert(ctx context.Context, userID string, action string, details string) error {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO activity_logs (id, user_id, action, details)
		VALUES ($1, $2, $3, $4)
	`

	var detailsParam *string
	if details != "" {
		detailsParam = &details
	}

	_, err := q.Exec(ctx, query, uuid.New().String(), userID, action, detailsParam)
	if err != nil {
		return fmt.Errorf("failed to insert activity log: %w", err)
	}

	return nil
}

// List implements activity.Repository.
func (a *activityRepository) List(ctx context.Context, limit int) ([]activity.Entry, error) {
	q := GetQuerier(ctx, a.db)

	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT l.id, l.user_id, l.action, l.details, l.created_at,
			   p.full_name AS user_name
		FROM activity_logs l
		LEFT JOIN profiles p ON p.user_id = l.user_id
		ORDER BY l.created_at DESC
		LIMIT $1
	`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query activity logs: %w", err)
	}
	defer rows.Close()

	var entries []activity.Entry
	for rows.Next() {
		var entry activity.Entry
		err := rows.Scan(&entry.ID, &entry.UserID, &entry.Action, &entry.Details, &entry.CreatedAt, &entry.UserName)
		if err != nil {
			return nil, fmt.Errorf("failed to scan activity log: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func NewActivityRepository(db *database.DB) activity.Repository {
	return &activityRepository{db: db}
}
