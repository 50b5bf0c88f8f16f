package profile

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-chi/jwtauth/v5"
	"github.com/mycityradius/timeclock-backend-go/internal/domain/activity"
	"github.com/mycityradius/timeclock-backend-go/internal/domain/profile"
	"github.com/mycityradius/timeclock-backend-go/internal/pkg/validator"
)

type ProfileServiceImpl struct {
	profileRepo     profile.Repository
	activityService activity.Service
}

func NewProfileService(
	profileRepo profile.Repository,
	activityService activity.Service,
) profile.Service {
	return &ProfileServiceImpl{
		profileRepo:     profileRepo,
		activityService: activityService,
	}
}

func actorFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}
	return userID, nil
}

func toProfileResponse(prof profile.Profile) profile.ProfileResponse {
	return profile.ProfileResponse{
		ID:       prof.ID,
		UserID:   prof.UserID,
		FullName: prof.FullName,
		Email:    prof.Email,
		IsActive: prof.IsActive,
		Roles:    prof.Roles,
	}
}

func (s *ProfileServiceImpl) audit(ctx context.Context, userID string, action string, details string) {
	if err := s.activityService.Record(ctx, userID, action, details); err != nil {
		slog.Warn("failed to record activity log entry",
			slog.String("action", action),
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
	}
}

// List implements profile.Service.
func (s *ProfileServiceImpl) List(ctx context.Context) ([]profile.ProfileResponse, error) {
	profiles, err := s.profileRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]profile.ProfileResponse, 0, len(profiles))
	for _, prof := range profiles {
		responses = append(responses, toProfileResponse(prof))
	}

	return responses, nil
}

// AssignRole implements profile.Service.
func (s *ProfileServiceImpl) AssignRole(ctx context.Context, userID string, role string) (profile.ProfileResponse, error) {
	if !validator.IsInSlice(role, profile.Roles) {
		return profile.ProfileResponse{}, profile.ErrUnknownRole
	}

	actorID, err := actorFromContext(ctx)
	if err != nil {
		return profile.ProfileResponse{}, err
	}

	if err := s.profileRepo.AssignRole(ctx, userID, role); err != nil {
		return profile.ProfileResponse{}, err
	}

	s.audit(ctx, actorID, "assign_role",
		fmt.Sprintf("Assigned role %s to user %s", role, userID))

	prof, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return profile.ProfileResponse{}, err
	}

	return toProfileResponse(prof), nil
}

// RemoveRole implements profile.Service.
func (s *ProfileServiceImpl) RemoveRole(ctx context.Context, userID string, role string) (profile.ProfileResponse, error) {
	actorID, err := actorFromContext(ctx)
	if err != nil {
		return profile.ProfileResponse{}, err
	}

	if err := s.profileRepo.RemoveRole(ctx, userID, role); err != nil {
		return profile.ProfileResponse{}, err
	}

	s.audit(ctx, actorID, "remove_role",
		fmt.Sprintf("Removed role %s from user %s", role, userID))

	prof, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return profile.ProfileResponse{}, err
	}

	return toProfileResponse(prof), nil
}

// SetActive implements profile.Service.
func (s *ProfileServiceImpl) SetActive(ctx context.Context, userID string, active bool) (profile.ProfileResponse, error) {
	actorID, err := actorFromContext(ctx)
	if err != nil {
		return profile.ProfileResponse{}, err
	}

	if err := s.profileRepo.SetActive(ctx, userID, active); err != nil {
		return profile.ProfileResponse{}, err
	}

	verb := "Deactivated"
	if active {
		verb = "Activated"
	}
	s.audit(ctx, actorID, "set_employee_active", fmt.Sprintf("%s user %s", verb, userID))

	prof, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return profile.ProfileResponse{}, err
	}

	return toProfileResponse(prof), nil
}
