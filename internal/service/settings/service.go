package settings

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/mycityradius/timeclock-backend-go/internal/domain/settings"
)

// SettingsServiceImpl caches the merged settings snapshot in-process.
// Settings change rarely and are read on nearly every dashboard load, so
// reads never hit the store after the first load; an admin update writes
// through and refreshes the cache.
type SettingsServiceImpl struct {
	settingsRepo settings.Repository

	mu     sync.RWMutex
	cached *settings.Settings
}

func NewSettingsService(settingsRepo settings.Repository) settings.Service {
	return &SettingsServiceImpl{settingsRepo: settingsRepo}
}

// Get implements settings.Service.
func (s *SettingsServiceImpl) Get(ctx context.Context) (settings.Settings, error) {
	s.mu.RLock()
	if s.cached != nil {
		cached := *s.cached
		s.mu.RUnlock()
		return cached, nil
	}
	s.mu.RUnlock()

	return s.Refresh(ctx)
}

// Refresh implements settings.Service. Stored keys overlay the defaults, so
// a key that has never been written still reads as its default.
func (s *SettingsServiceImpl) Refresh(ctx context.Context) (settings.Settings, error) {
	rows, err := s.settingsRepo.All(ctx)
	if err != nil {
		return settings.Settings{}, err
	}

	merged := settings.Defaults()

	if raw, ok := rows[settings.KeyAppName]; ok {
		if err := json.Unmarshal(raw, &merged.AppName); err != nil {
			return settings.Settings{}, fmt.Errorf("failed to decode %s setting: %w", settings.KeyAppName, err)
		}
	}
	if raw, ok := rows[settings.KeyModules]; ok {
		if err := json.Unmarshal(raw, &merged.Modules); err != nil {
			return settings.Settings{}, fmt.Errorf("failed to decode %s setting: %w", settings.KeyModules, err)
		}
	}
	if raw, ok := rows[settings.KeyWorkHours]; ok {
		if err := json.Unmarshal(raw, &merged.WorkHours); err != nil {
			return settings.Settings{}, fmt.Errorf("failed to decode %s setting: %w", settings.KeyWorkHours, err)
		}
	}
	if raw, ok := rows[settings.KeyPayPeriod]; ok {
		if err := json.Unmarshal(raw, &merged.PayPeriod); err != nil {
			return settings.Settings{}, fmt.Errorf("failed to decode %s setting: %w", settings.KeyPayPeriod, err)
		}
	}

	s.mu.Lock()
	s.cached = &merged
	s.mu.Unlock()

	return merged, nil
}

// Update implements settings.Service. The value is decoded into the key's
// typed shape before anything is written; a payload that does not fit the
// key never reaches the store.
func (s *SettingsServiceImpl) Update(ctx context.Context, key string, value json.RawMessage) (settings.Settings, error) {
	var probe any
	switch key {
	case settings.KeyAppName, settings.KeyPayPeriod:
		probe = new(string)
	case settings.KeyModules:
		probe = new(map[string]bool)
	case settings.KeyWorkHours:
		probe = new(settings.WorkHours)
	default:
		return settings.Settings{}, settings.ErrUnknownKey
	}

	if err := json.Unmarshal(value, probe); err != nil {
		return settings.Settings{}, settings.ErrInvalidValue
	}

	if err := s.settingsRepo.Set(ctx, key, value); err != nil {
		return settings.Settings{}, err
	}

	return s.Refresh(ctx)
}
