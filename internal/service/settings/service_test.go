package settings

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mycityradius/timeclock-backend-go/internal/domain/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSettingsRepo struct {
	rows  map[string]json.RawMessage
	reads int
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{rows: make(map[string]json.RawMessage)}
}

func (f *fakeSettingsRepo) All(ctx context.Context) (map[string]json.RawMessage, error) {
	f.reads++
	out := make(map[string]json.RawMessage, len(f.rows))
	for k, v := range f.rows {
		out[k] = v
	}
	return out, nil
}

func (f *fakeSettingsRepo) Set(ctx context.Context, key string, value json.RawMessage) error {
	f.rows[key] = value
	return nil
}

func TestGet_DefaultsWhenStoreEmpty(t *testing.T) {
	svc := NewSettingsService(newFakeSettingsRepo())

	got, err := svc.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, settings.Defaults(), got)
}

func TestGet_CachesAfterFirstLoad(t *testing.T) {
	repo := newFakeSettingsRepo()
	svc := NewSettingsService(repo)

	_, err := svc.Get(context.Background())
	require.NoError(t, err)
	_, err = svc.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, repo.reads)
}

func TestRefresh_OverlaysStoredKeys(t *testing.T) {
	repo := newFakeSettingsRepo()
	repo.rows[settings.KeyAppName] = json.RawMessage(`"Acme Time"`)
	repo.rows[settings.KeyWorkHours] = json.RawMessage(`{"start":"07:00","end":"16:00","timezone":"America/Denver"}`)
	svc := NewSettingsService(repo)

	got, err := svc.Refresh(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Acme Time", got.AppName)
	assert.Equal(t, "07:00", got.WorkHours.Start)
	// untouched keys keep their defaults
	assert.Equal(t, settings.Defaults().PayPeriod, got.PayPeriod)
	assert.Equal(t, settings.Defaults().Modules, got.Modules)
}

func TestUpdate_WritesThroughAndRefreshes(t *testing.T) {
	repo := newFakeSettingsRepo()
	svc := NewSettingsService(repo)

	_, err := svc.Get(context.Background())
	require.NoError(t, err)

	got, err := svc.Update(context.Background(), settings.KeyAppName, json.RawMessage(`"Renamed"`))
	require.NoError(t, err)

	assert.Equal(t, "Renamed", got.AppName)

	// subsequent cached reads see the new value
	cached, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Renamed", cached.AppName)
}

func TestUpdate_RejectsUnknownKey(t *testing.T) {
	svc := NewSettingsService(newFakeSettingsRepo())

	_, err := svc.Update(context.Background(), "no_such_key", json.RawMessage(`true`))
	assert.ErrorIs(t, err, settings.ErrUnknownKey)
}

func TestUpdate_RejectsValueOfWrongShape(t *testing.T) {
	repo := newFakeSettingsRepo()
	svc := NewSettingsService(repo)

	_, err := svc.Update(context.Background(), settings.KeyModules, json.RawMessage(`"not a map"`))
	assert.ErrorIs(t, err, settings.ErrInvalidValue)
	// nothing reached the store
	assert.Empty(t, repo.rows)
}
