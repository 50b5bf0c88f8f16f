package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/mycityradius/timeclock-backend-go/internal/domain/payrate"
	"github.com/mycityradius/timeclock-backend-go/internal/pkg/database"
)

type payRateRepository struct {
	db *database.DB
}

// GetByUser implements payrate.Repository.
func (r *payRateRepository) GetByUser(ctx context.Context, userID string) (*payrate.PayRate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, role, hourly_rate, created_at, updated_at
		FROM pay_rates
		WHERE user_id = $1
		LIMIT 1
	`

	var rate payrate.PayRate
	err := q.QueryRow(ctx, query, userID).Scan(
		&rate.ID, &rate.UserID, &rate.Role, &rate.HourlyRate, &rate.CreatedAt, &rate.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // no individual override
		}
		return nil, fmt.Errorf("failed to get pay rate by user: %w", err)
	}

	return &rate, nil
}

// GetByRole implements payrate.Repository.
func (r *payRateRepository) GetByRole(ctx context.Context, role string) (*payrate.PayRate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, role, hourly_rate, created_at, updated_at
		FROM pay_rates
		WHERE role = $1
		  AND user_id IS NULL
		LIMIT 1
	`

	var rate payrate.PayRate
	err := q.QueryRow(ctx, query, role).Scan(
		&rate.ID, &rate.UserID, &rate.Role, &rate.HourlyRate, &rate.CreatedAt, &rate.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // no default for this role
		}
		return nil, fmt.Errorf("failed to get pay rate by role: %w", err)
	}

	return &rate, nil
}

// ListRoleDefaults implements payrate.Repository.
func (r *payRateRepository) ListRoleDefaults(ctx context.Context) ([]payrate.PayRate, error) {
	return r.list(ctx, `
		SELECT id, user_id, role, hourly_rate, created_at, updated_at
		FROM pay_rates
		WHERE user_id IS NULL
		ORDER BY role
	`)
}

// ListUserOverrides implements payrate.Repository.
func (r *payRateRepository) ListUserOverrides(ctx context.Context) ([]payrate.PayRate, error) {
	return r.list(ctx, `
		SELECT id, user_id, role, hourly_rate, created_at, updated_at
		FROM pay_rates
		WHERE user_id IS NOT NULL
		ORDER BY created_at
	`)
}

func (r *payRateRepository) list(ctx context.Context, query string) ([]payrate.PayRate, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query pay rates: %w", err)
	}
	defer rows.Close()

	var rates []payrate.PayRate
	for rows.Next() {
		var rate payrate.PayRate
		err := rows.Scan(&rate.ID, &rate.UserID, &rate.Role, &rate.HourlyRate, &rate.CreatedAt, &rate.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pay rate: %w", err)
		}
		rates = append(rates, rate)
	}

	return rates, nil
}

// Insert implements payrate.Repository.
func (r *payRateRepository) Insert(ctx context.Context, rate payrate.PayRate) (payrate.PayRate, error) {
	q := GetQuerier(ctx, r.db)

	rate.ID = uuid.New().String()

	query := `
		INSERT INTO pay_rates (id, user_id, role, hourly_rate)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query, rate.ID, rate.UserID, rate.Role, rate.HourlyRate).
		Scan(&rate.CreatedAt, &rate.UpdatedAt)
	if err != nil {
		return payrate.PayRate{}, fmt.Errorf("failed to insert pay rate: %w", err)
	}

	return rate, nil
}

// DeleteByRole implements payrate.Repository. Deleting a key that has no row
// is not an error: replace semantics tolerate a first-time save.
func (r *payRateRepository) DeleteByRole(ctx context.Context, role string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM pay_rates WHERE role = $1 AND user_id IS NULL`, role)
	if err != nil {
		return fmt.Errorf("failed to delete role pay rate: %w", err)
	}
	return nil
}

// DeleteByUser implements payrate.Repository.
func (r *payRateRepository) DeleteByUser(ctx context.Context, userID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM pay_rates WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user pay rate: %w", err)
	}
	return nil
}

func NewPayRateRepository(db *database.DB) payrate.Repository {
	return &payRateRepository{db: db}
}
