package settings

import (
	"context"
	"encoding/json"
)

type Repository interface {
	// All returns every stored settings row keyed by settings key.
	All(ctx context.Context) (map[string]json.RawMessage, error)

	// Set upserts one key's JSON value.
	Set(ctx context.Context, key string, value json.RawMessage) error
}

type UpdateRequest struct {
	Value json.RawMessage `json:"value"`
}

// Service serves the cached settings snapshot. Get never hits the store
// after the first load; Refresh re-reads explicitly; Update writes through
// and refreshes.
type Service interface {
	Get(ctx context.Context) (Settings, error)
	Refresh(ctx context.Context) (Settings, error)
	Update(ctx context.Context, key string, value json.RawMessage) (Settings, error)
}
