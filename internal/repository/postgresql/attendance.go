package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mycityradius/timeclock-backend-go/internal/domain/attendance"
	"github.com/mycityradius/timeclock-backend-go/internal/pkg/database"
)

const uniqueViolation = "23505"

type attendanceRepository struct {
	db *database.DB
}

const attendanceColumns = `
	a.id, a.user_id, a.date, a.check_in, a.check_out, a.pauses,
	a.total_worked_minutes, a.status, a.created_at, a.updated_at`

// Create implements attendance.Repository. The attendance_records table has
// a UNIQUE (user_id, date) constraint; the violation is the duplicate
// check-in signal, so it is mapped to the domain error instead of being
// wrapped as a generic failure.
func (a *attendanceRepository) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	rec.ID = uuid.New().String()

	query := `
		INSERT INTO attendance_records (
			id, user_id, date, check_in, check_out, pauses, total_worked_minutes, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.ID,
		rec.UserID,
		rec.Date,
		rec.CheckIn,
		rec.CheckOut,
		rec.Pauses,
		rec.TotalWorkedMinutes,
		rec.Status,
	).Scan(&rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return attendance.Record{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Record{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return rec, nil
}

// GetByID implements attendance.Repository.
func (a *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `,
			   p.full_name AS user_name,
			   p.email AS user_email
		FROM attendance_records a
		LEFT JOIN profiles p ON p.user_id = a.user_id
		WHERE a.id = $1
	`

	var rec attendance.Record
	err := q.QueryRow(ctx, query, id).Scan(
		&rec.ID, &rec.UserID, &rec.Date, &rec.CheckIn, &rec.CheckOut, &rec.Pauses,
		&rec.TotalWorkedMinutes, &rec.Status, &rec.CreatedAt, &rec.UpdatedAt,
		&rec.UserName, &rec.UserEmail,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to get attendance record by ID: %w", err)
	}

	return rec, nil
}

// GetByUserAndDate implements attendance.Repository.
func (a *attendanceRepository) GetByUserAndDate(ctx context.Context, userID string, date string) (*attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records a
		WHERE a.user_id = $1
		  AND a.date = $2
		LIMIT 1
	`

	var rec attendance.Record
	err := q.QueryRow(ctx, query, userID, date).Scan(
		&rec.ID, &rec.UserID, &rec.Date, &rec.CheckIn, &rec.CheckOut, &rec.Pauses,
		&rec.TotalWorkedMinutes, &rec.Status, &rec.CreatedAt, &rec.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // not checked in on that date
		}
		return nil, fmt.Errorf("failed to get attendance record by user and date: %w", err)
	}

	return &rec, nil
}

// Update implements attendance.Repository. Every transition and admin
// correction rewrites the full mutable set in one statement, so a record is
// never persisted with a pause list and snapshot from different instants.
func (a *attendanceRepository) Update(ctx context.Context, rec attendance.Record) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance_records
		SET check_in = $1,
			check_out = $2,
			pauses = $3,
			total_worked_minutes = $4,
			status = $5,
			updated_at = $6
		WHERE id = $7
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		rec.CheckIn,
		rec.CheckOut,
		rec.Pauses,
		rec.TotalWorkedMinutes,
		rec.Status,
		time.Now().UTC(),
		rec.ID,
	).Scan(&updatedID)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.ErrRecordNotFound
		}
		return fmt.Errorf("failed to update attendance record: %w", err)
	}

	return nil
}

// ListByUser implements attendance.Repository.
func (a *attendanceRepository) ListByUser(ctx context.Context, userID string, limit int) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	if limit <= 0 {
		limit = 30
	}

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records a
		WHERE a.user_id = $1
		ORDER BY a.date DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.Date, &rec.CheckIn, &rec.CheckOut, &rec.Pauses,
			&rec.TotalWorkedMinutes, &rec.Status, &rec.CreatedAt, &rec.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	return records, nil
}

// ListByDate implements attendance.Repository.
func (a *attendanceRepository) ListByDate(ctx context.Context, date string) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `,
			   p.full_name AS user_name,
			   p.email AS user_email
		FROM attendance_records a
		LEFT JOIN profiles p ON p.user_id = a.user_id
		WHERE a.date = $1
		ORDER BY a.check_in ASC
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance records by date: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.Date, &rec.CheckIn, &rec.CheckOut, &rec.Pauses,
			&rec.TotalWorkedMinutes, &rec.Status, &rec.CreatedAt, &rec.UpdatedAt,
			&rec.UserName, &rec.UserEmail,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	return records, nil
}

// ListBetween implements attendance.Repository.
func (a *attendanceRepository) ListBetween(ctx context.Context, startDate string, endDate string) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records a
		WHERE a.date >= $1
		  AND a.date <= $2
		ORDER BY a.date ASC
	`

	rows, err := q.Query(ctx, query, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance records between dates: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.Date, &rec.CheckIn, &rec.CheckOut, &rec.Pauses,
			&rec.TotalWorkedMinutes, &rec.Status, &rec.CreatedAt, &rec.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	return records, nil
}

// SumWorkedMinutes implements attendance.Repository.
func (a *attendanceRepository) SumWorkedMinutes(ctx context.Context, userID string, startDate string, endDate string) (float64, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT COALESCE(SUM(total_worked_minutes), 0)
		FROM attendance_records
		WHERE user_id = $1
		  AND date >= $2
		  AND date <= $3
	`

	var minutes float64
	if err := q.QueryRow(ctx, query, userID, startDate, endDate).Scan(&minutes); err != nil {
		return 0, fmt.Errorf("failed to sum worked minutes: %w", err)
	}

	return minutes, nil
}

// Delete implements attendance.Repository.
func (a *attendanceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, a.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM attendance_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance record: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}

	return nil
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}
