package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mycityradius/timeclock-backend-go/internal/domain/settings"
	"github.com/mycityradius/timeclock-backend-go/internal/pkg/database"
)

type settingsRepository struct {
	db *database.DB
}

// All implements settings.Repository.
func (s *settingsRepository) All(ctx context.Context) (map[string]json.RawMessage, error) {
	q := GetQuerier(ctx, s.db)

	rows, err := q.Query(ctx, `SELECT key, value FROM system_settings`)
	if err != nil {
		return nil, fmt.Errorf("failed to query system settings: %w", err)
	}
	defer rows.Close()

	values := make(map[string]json.RawMessage)
	for rows.Next() {
		var key string
		var value json.RawMessage
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan system setting: %w", err)
		}
		values[key] = value
	}

	return values, nil
}

// Set implements settings.Repository.
func (s *settingsRepository) Set(ctx context.Context, key string, value json.RawMessage) error {
	q := GetQuerier(ctx, s.db)

	query := `
		INSERT INTO system_settings (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value,
			updated_at = NOW()
	`

	_, err := q.Exec(ctx, query, key, value)
	if err != nil {
		return fmt.Errorf("failed to upsert system setting: %w", err)
	}

	return nil
}

func NewSettingsRepository(db *database.DB) settings.Repository {
	return &settingsRepository{db: db}
}
