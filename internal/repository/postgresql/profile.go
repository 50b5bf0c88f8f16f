package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mycityradius/timeclock-backend-go/internal/domain/profile"
	"github.com/mycityradius/timeclock-backend-go/internal/pkg/database"
)

type profileRepository struct {
	db *database.DB
}

// List implements profile.Repository. Roles are aggregated per profile in
// assignment order; the first element is the pay-rate fallback role.
func (p *profileRepository) List(ctx context.Context) ([]profile.Profile, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT p.id, p.user_id, p.full_name, p.email, p.is_active, p.created_at, p.updated_at,
			   COALESCE(
				   array_agg(r.role ORDER BY r.created_at) FILTER (WHERE r.role IS NOT NULL),
				   '{}'
			   ) AS roles
		FROM profiles p
		LEFT JOIN user_roles r ON r.user_id = p.user_id
		GROUP BY p.id, p.user_id, p.full_name, p.email, p.is_active, p.created_at, p.updated_at
		ORDER BY p.created_at ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query profiles: %w", err)
	}
	defer rows.Close()

	var profiles []profile.Profile
	for rows.Next() {
		var prof profile.Profile
		err := rows.Scan(
			&prof.ID, &prof.UserID, &prof.FullName, &prof.Email, &prof.IsActive,
			&prof.CreatedAt, &prof.UpdatedAt, &prof.Roles,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		profiles = append(profiles, prof)
	}

	return profiles, nil
}

// GetByUserID implements profile.Repository.
func (p *profileRepository) GetByUserID(ctx context.Context, userID string) (profile.Profile, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT p.id, p.user_id, p.full_name, p.email, p.is_active, p.created_at, p.updated_at,
			   COALESCE(
				   array_agg(r.role ORDER BY r.created_at) FILTER (WHERE r.role IS NOT NULL),
				   '{}'
			   ) AS roles
		FROM profiles p
		LEFT JOIN user_roles r ON r.user_id = p.user_id
		WHERE p.user_id = $1
		GROUP BY p.id, p.user_id, p.full_name, p.email, p.is_active, p.created_at, p.updated_at
	`

	var prof profile.Profile
	err := q.QueryRow(ctx, query, userID).Scan(
		&prof.ID, &prof.UserID, &prof.FullName, &prof.Email, &prof.IsActive,
		&prof.CreatedAt, &prof.UpdatedAt, &prof.Roles,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return profile.Profile{}, profile.ErrProfileNotFound
		}
		return profile.Profile{}, fmt.Errorf("failed to get profile by user ID: %w", err)
	}

	return prof, nil
}

// GetRoles implements profile.Repository.
func (p *profileRepository) GetRoles(ctx context.Context, userID string) ([]string, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT role
		FROM user_roles
		WHERE user_id = $1
		ORDER BY created_at ASC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query user roles: %w", err)
	}
	defer rows.Close()

	var roles []string
	for rows.Next() {
		var role string
		if err := rows.Scan(&role); err != nil {
			return nil, fmt.Errorf("failed to scan role: %w", err)
		}
		roles = append(roles, role)
	}

	return roles, nil
}

// AssignRole implements profile.Repository. The user_roles table has a
// UNIQUE (user_id, role) constraint; its violation means the role is already
// assigned.
func (p *profileRepository) AssignRole(ctx context.Context, userID string, role string) error {
	q := GetQuerier(ctx, p.db)

	query := `
		INSERT INTO user_roles (id, user_id, role)
		VALUES ($1, $2, $3)
	`

	_, err := q.Exec(ctx, query, uuid.New().String(), userID, role)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return profile.ErrRoleAlreadyAssigned
		}
		return fmt.Errorf("failed to assign role: %w", err)
	}

	return nil
}

// RemoveRole implements profile.Repository.
func (p *profileRepository) RemoveRole(ctx context.Context, userID string, role string) error {
	q := GetQuerier(ctx, p.db)

	commandTag, err := q.Exec(ctx,
		`DELETE FROM user_roles WHERE user_id = $1 AND role = $2`, userID, role)
	if err != nil {
		return fmt.Errorf("failed to remove role: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return profile.ErrRoleNotAssigned
	}

	return nil
}

// SetActive implements profile.Repository.
func (p *profileRepository) SetActive(ctx context.Context, userID string, active bool) error {
	q := GetQuerier(ctx, p.db)

	query := `
		UPDATE profiles
		SET is_active = $1,
			updated_at = NOW()
		WHERE user_id = $2
	`

	commandTag, err := q.Exec(ctx, query, active, userID)
	if err != nil {
		return fmt.Errorf("failed to set profile active flag: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return profile.ErrProfileNotFound
	}

	return nil
}

func NewProfileRepository(db *database.DB) profile.Repository {
	return &profileRepository{db: db}
}
