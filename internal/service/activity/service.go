package activity

import (
	"context"
	"time"

	"github.com/mycityradius/timeclock-backend-go/internal/domain/activity"
)

type ActivityServiceImpl struct {
	activityRepo activity.Repository
}

func NewActivityService(activityRepo activity.Repository) activity.Service {
	return &ActivityServiceImpl{activityRepo: activityRepo}
}

// Record implements activity.Service.
func (s *ActivityServiceImpl) Record(ctx context.Context, userID string, action string, details string) error {
	return s.activityRepo.Insert(ctx, userID, action, details)
}

// List implements activity.Service.
func (s *ActivityServiceImpl) List(ctx context.Context, limit int) ([]activity.EntryResponse, error) {
	entries, err := s.activityRepo.List(ctx, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]activity.EntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, activity.EntryResponse{
			ID:        entry.ID,
			UserID:    entry.UserID,
			UserName:  entry.UserName,
			Action:    entry.Action,
			Details:   entry.Details,
			CreatedAt: entry.CreatedAt.Format(time.RFC3339),
		})
	}

	return responses, nil
}
