package payrate

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-chi/jwtauth/v5"
	"github.com/mycityradius/timeclock-backend-go/internal/domain/activity"
	"github.com/mycityradius/timeclock-backend-go/internal/domain/payrate"
	"github.com/mycityradius/timeclock-backend-go/internal/domain/profile"
	"github.com/mycityradius/timeclock-backend-go/internal/pkg/database"
	"github.com/mycityradius/timeclock-backend-go/internal/pkg/validator"
	"github.com/mycityradius/timeclock-backend-go/internal/repository/postgresql"
)

type PayRateServiceImpl struct {
	db              *database.DB
	payRateRepo     payrate.Repository
	activityService activity.Service
}

func NewPayRateService(
	db *database.DB,
	payRateRepo payrate.Repository,
	activityService activity.Service,
) payrate.Service {
	return &PayRateServiceImpl{
		db:              db,
		payRateRepo:     payRateRepo,
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

func toRateResponse(rate payrate.PayRate) payrate.RateResponse {
	return payrate.RateResponse{
		ID:         rate.ID,
		UserID:     rate.UserID,
		Role:       rate.Role,
		HourlyRate: rate.HourlyRate,
	}
}

func (s *PayRateServiceImpl) audit(ctx context.Context, userID string, action string, details string) {
	if err := s.activityService.Record(ctx, userID, action, details); err != nil {
		slog.Warn("failed to record activity log entry",
			slog.String("action", action),
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
	}
}

// List implements payrate.Service.
func (s *PayRateServiceImpl) List(ctx context.Context) (payrate.ListResponse, error) {
	roleDefaults, err := s.payRateRepo.ListRoleDefaults(ctx)
	if err != nil {
		return payrate.ListResponse{}, err
	}
	userOverrides, err := s.payRateRepo.ListUserOverrides(ctx)
	if err != nil {
		return payrate.ListResponse{}, err
	}

	resp := payrate.ListResponse{
		RoleDefaults:  make([]payrate.RateResponse, 0, len(roleDefaults)),
		UserOverrides: make([]payrate.RateResponse, 0, len(userOverrides)),
	}
	for _, rate := range roleDefaults {
		resp.RoleDefaults = append(resp.RoleDefaults, toRateResponse(rate))
	}
	for _, rate := range userOverrides {
		resp.UserOverrides = append(resp.UserOverrides, toRateResponse(rate))
	}

	return resp, nil
}

// SetRoleRate implements payrate.Service. Replace semantics: the prior row
// for the role is deleted and the new one inserted inside one transaction, so
// a failure between the two cannot leave the role rateless. Validation runs
// before the transaction ever starts.
func (s *PayRateServiceImpl) SetRoleRate(ctx context.Context, role string, rate float64) (payrate.RateResponse, error) {
	if err := payrate.ValidateRate(rate); err != nil {
		return payrate.RateResponse{}, err
	}
	if !validator.IsInSlice(role, profile.Roles) {
		return payrate.RateResponse{}, payrate.ErrUnknownRole
	}

	actorID, err := actorFromContext(ctx)
	if err != nil {
		return payrate.RateResponse{}, err
	}

	var saved payrate.PayRate
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.payRateRepo.DeleteByRole(txCtx, role); err != nil {
			return err
		}
		saved, err = s.payRateRepo.Insert(txCtx, payrate.PayRate{Role: &role, HourlyRate: rate})
		return err
	})
	if err != nil {
		return payrate.RateResponse{}, err
	}

	s.audit(ctx, actorID, "set_role_rate",
		fmt.Sprintf("Set %s default rate to %.2f/hr", role, rate))

	return toRateResponse(saved), nil
}

// SetUserRate implements payrate.Service.
func (s *PayRateServiceImpl) SetUserRate(ctx context.Context, userID string, rate float64) (payrate.RateResponse, error) {
	if err := payrate.ValidateRate(rate); err != nil {
		return payrate.RateResponse{}, err
	}
	if !validator.IsValidUUID(userID) {
		return payrate.RateResponse{}, fmt.Errorf("invalid user id")
	}

	actorID, err := actorFromContext(ctx)
	if err != nil {
		return payrate.RateResponse{}, err
	}

	var saved payrate.PayRate
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.payRateRepo.DeleteByUser(txCtx, userID); err != nil {
			return err
		}
		saved, err = s.payRateRepo.Insert(txCtx, payrate.PayRate{UserID: &userID, HourlyRate: rate})
		return err
	})
	if err != nil {
		return payrate.RateResponse{}, err
	}

	s.audit(ctx, actorID, "set_user_rate",
		fmt.Sprintf("Set individual rate for user %s to %.2f/hr", userID, rate))

	return toRateResponse(saved), nil
}

// ClearUserRate implements payrate.Service. Removing the override makes the
// user fall back to their first role's default rate.
func (s *PayRateServiceImpl) ClearUserRate(ctx context.Context, userID string) error {
	actorID, err := actorFromContext(ctx)
	if err != nil {
		return err
	}

	if err := s.payRateRepo.DeleteByUser(ctx, userID); err != nil {
		return err
	}

	s.audit(ctx, actorID, "clear_user_rate",
		fmt.Sprintf("Cleared individual rate for user %s", userID))

	return nil
}
