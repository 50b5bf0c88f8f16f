package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/mycityradius/timeclock-backend-go/internal/config"
	"github.com/mycityradius/timeclock-backend-go/internal/domain/activity"
	"github.com/mycityradius/timeclock-backend-go/internal/domain/attendance"
	"github.com/mycityradius/timeclock-backend-go/internal/pkg/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAttendanceRepo keeps records in memory with the same contract as the
// postgresql repository: one record per (user, date), ErrAlreadyCheckedIn on
// a duplicate insert, (nil, nil) when no record exists for a date.
type fakeAttendanceRepo struct {
	records map[string]attendance.Record // by id
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]attendance.Record)}
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	for _, existing := range f.records {
		if existing.UserID == rec.UserID && existing.DateString() == rec.DateString() {
			return attendance.Record{}, attendance.ErrAlreadyCheckedIn
		}
	}
	rec.ID = uuid.New().String()
	f.records[rec.ID] = rec
	return rec, nil
}

func (f *fakeAttendanceRepo) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	rec, ok := f.records[id]
	if !ok {
		return attendance.Record{}, attendance.ErrRecordNotFound
	}
	return rec, nil
}

func (f *fakeAttendanceRepo) GetByUserAndDate(ctx context.Context, userID string, date string) (*attendance.Record, error) {
	for _, rec := range f.records {
		if rec.UserID == userID && rec.DateString() == date {
			copied := rec
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, rec attendance.Record) error {
	if _, ok := f.records[rec.ID]; !ok {
		return attendance.ErrRecordNotFound
	}
	f.records[rec.ID] = rec
	return nil
}

func (f *fakeAttendanceRepo) ListByUser(ctx context.Context, userID string, limit int) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, rec := range f.records {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListByDate(ctx context.Context, date string) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, rec := range f.records {
		if rec.DateString() == date {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListBetween(ctx context.Context, startDate string, endDate string) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, rec := range f.records {
		d := rec.DateString()
		if d >= startDate && d <= endDate {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) SumWorkedMinutes(ctx context.Context, userID string, startDate string, endDate string) (float64, error) {
	var sum float64
	for _, rec := range f.records {
		d := rec.DateString()
		if rec.UserID == userID && d >= startDate && d <= endDate {
			sum += rec.TotalWorkedMinutes
		}
	}
	return sum, nil
}

func (f *fakeAttendanceRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.records[id]; !ok {
		return attendance.ErrRecordNotFound
	}
	delete(f.records, id)
	return nil
}

type fakeActivityService struct {
	entries []activity.EntryResponse
}

func (f *fakeActivityService) Record(ctx context.Context, userID string, action string, details string) error {
	f.entries = append(f.entries, activity.EntryResponse{UserID: userID, Action: action, Details: &details})
	return nil
}

func (f *fakeActivityService) List(ctx context.Context, limit int) ([]activity.EntryResponse, error) {
	return f.entries, nil
}

func testOrg(t *testing.T) config.OrgConfig {
	loc, err := time.LoadLocation("America/Phoenix")
	require.NoError(t, err)
	return config.OrgConfig{
		Timezone:            "America/Phoenix",
		Location:            loc,
		DailyTargetHours:    8,
		BiweeklyTargetHours: 80,
	}
}

func authedContext(t *testing.T, userID string) context.Context {
	ja := jwtauth.New("HS256", []byte("test-secret-key-for-jwt"), nil)
	tok, _, err := ja.Encode(map[string]interface{}{
		"user_id": userID,
		"type":    "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), tok, nil)
}

func newTestService(t *testing.T) (attendance.Service, *fakeAttendanceRepo, *clock.Fixed, *fakeActivityService) {
	repo := newFakeAttendanceRepo()
	audit := &fakeActivityService{}
	// 2024-03-11 09:00 in Phoenix (UTC-7)
	clk := clock.NewFixed(time.Date(2024, time.March, 11, 16, 0, 0, 0, time.UTC))
	svc := NewAttendanceService(repo, audit, clk, testOrg(t))
	return svc, repo, clk, audit
}

func TestCheckIn(t *testing.T) {
	svc, _, _, audit := newTestService(t)
	ctx := authedContext(t, "user-1")

	resp, err := svc.CheckIn(ctx)
	require.NoError(t, err)

	assert.Equal(t, attendance.StatusCheckedIn, resp.Status)
	assert.Equal(t, "2024-03-11", resp.Date)
	assert.NotNil(t, resp.CheckIn)
	assert.Nil(t, resp.CheckOut)
	assert.Zero(t, resp.TotalWorkedMinutes)

	require.Len(t, audit.entries, 1)
	assert.Equal(t, "check_in", audit.entries[0].Action)
}

func TestCheckIn_Duplicate(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := authedContext(t, "user-1")

	_, err := svc.CheckIn(ctx)
	require.NoError(t, err)

	_, err = svc.CheckIn(ctx)
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestPause_WithoutCheckIn(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := authedContext(t, "user-1")

	_, err := svc.Pause(ctx)
	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
}

func TestPause_SnapshotTakenBeforeBreakOpens(t *testing.T) {
	svc, _, clk, _ := newTestService(t)
	ctx := authedContext(t, "user-1")

	_, err := svc.CheckIn(ctx)
	require.NoError(t, err)

	clk.Advance(1 * time.Hour)
	resp, err := svc.Pause(ctx)
	require.NoError(t, err)

	assert.Equal(t, attendance.StatusPaused, resp.Status)
	assert.InDelta(t, 60.0, resp.TotalWorkedMinutes, 1e-9)
	assert.Equal(t, 1, resp.Breaks)
	assert.Nil(t, resp.Pauses[0].End)
}

func TestPause_WhilePaused(t *testing.T) {
	svc, _, clk, _ := newTestService(t)
	ctx := authedContext(t, "user-1")

	_, err := svc.CheckIn(ctx)
	require.NoError(t, err)
	clk.Advance(10 * time.Minute)
	_, err = svc.Pause(ctx)
	require.NoError(t, err)

	_, err = svc.Pause(ctx)
	assert.ErrorIs(t, err, attendance.ErrInvalidTransition)
}

func TestResume_ClosesBreakAndKeepsSnapshot(t *testing.T) {
	svc, _, clk, _ := newTestService(t)
	ctx := authedContext(t, "user-1")

	_, err := svc.CheckIn(ctx)
	require.NoError(t, err)

	clk.Advance(1 * time.Hour)
	paused, err := svc.Pause(ctx)
	require.NoError(t, err)

	clk.Advance(30 * time.Minute)
	resumed, err := svc.Resume(ctx)
	require.NoError(t, err)

	assert.Equal(t, attendance.StatusCheckedIn, resumed.Status)
	assert.NotNil(t, resumed.Pauses[0].End)
	// break time never counts as worked time
	assert.InDelta(t, paused.TotalWorkedMinutes, resumed.TotalWorkedMinutes, 1e-9)
}

func TestResume_WhileWorking(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := authedContext(t, "user-1")

	_, err := svc.CheckIn(ctx)
	require.NoError(t, err)

	_, err = svc.Resume(ctx)
	assert.ErrorIs(t, err, attendance.ErrInvalidTransition)
}

func TestCheckOut_FullDay(t *testing.T) {
	svc, _, clk, _ := newTestService(t)
	ctx := authedContext(t, "user-1")

	_, err := svc.CheckIn(ctx)
	require.NoError(t, err)

	clk.Advance(1 * time.Hour)
	_, err = svc.Pause(ctx)
	require.NoError(t, err)

	clk.Advance(30 * time.Minute)
	_, err = svc.Resume(ctx)
	require.NoError(t, err)

	clk.Advance(1 * time.Hour)
	resp, err := svc.CheckOut(ctx)
	require.NoError(t, err)

	assert.Equal(t, attendance.StatusCheckedOut, resp.Status)
	assert.NotNil(t, resp.CheckOut)
	assert.InDelta(t, 120.0, resp.TotalWorkedMinutes, 1e-9)
	assert.InDelta(t, 2.0, resp.WorkedHours, 1e-9)
}

func TestCheckOut_DuringBreakClosesIt(t *testing.T) {
	svc, repo, clk, _ := newTestService(t)
	ctx := authedContext(t, "user-1")

	_, err := svc.CheckIn(ctx)
	require.NoError(t, err)

	clk.Advance(2 * time.Hour)
	_, err = svc.Pause(ctx)
	require.NoError(t, err)

	clk.Advance(15 * time.Minute)
	resp, err := svc.CheckOut(ctx)
	require.NoError(t, err)

	assert.InDelta(t, 120.0, resp.TotalWorkedMinutes, 1e-9)

	stored, err := repo.GetByID(ctx, resp.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.Pauses[0].End)
}

func TestTransitionsAfterCheckOut(t *testing.T) {
	svc, _, clk, _ := newTestService(t)
	ctx := authedContext(t, "user-1")

	_, err := svc.CheckIn(ctx)
	require.NoError(t, err)
	clk.Advance(1 * time.Hour)
	_, err = svc.CheckOut(ctx)
	require.NoError(t, err)

	_, err = svc.Pause(ctx)
	assert.ErrorIs(t, err, attendance.ErrInvalidTransition)
	_, err = svc.Resume(ctx)
	assert.ErrorIs(t, err, attendance.ErrInvalidTransition)
	_, err = svc.CheckOut(ctx)
	assert.ErrorIs(t, err, attendance.ErrInvalidTransition)
	// re-check-in needs the next calendar day
	_, err = svc.CheckIn(ctx)
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestToday(t *testing.T) {
	svc, _, clk, _ := newTestService(t)
	ctx := authedContext(t, "user-1")

	today, err := svc.Today(ctx)
	require.NoError(t, err)
	assert.Equal(t, attendance.StateAbsent, today.State)
	assert.Nil(t, today.Record)
	assert.Zero(t, today.WorkedSeconds)

	_, err = svc.CheckIn(ctx)
	require.NoError(t, err)

	clk.Advance(10 * time.Minute)
	today, err = svc.Today(ctx)
	require.NoError(t, err)
	assert.Equal(t, attendance.StateCheckedIn, today.State)
	require.NotNil(t, today.Record)
	assert.Equal(t, int64(600), today.WorkedSeconds)
}

func TestSummary(t *testing.T) {
	svc, _, clk, _ := newTestService(t)
	ctx := authedContext(t, "user-1")

	_, err := svc.CheckIn(ctx)
	require.NoError(t, err)
	clk.Advance(2 * time.Hour)
	_, err = svc.CheckOut(ctx)
	require.NoError(t, err)

	summary, err := svc.Summary(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(7200), summary.WorkedSecondsToday)
	assert.InDelta(t, 2.0, summary.TodayHours, 1e-9)
	assert.InDelta(t, 2.0, summary.PeriodHours, 1e-9)
	assert.InDelta(t, 8.0, summary.DailyTargetHours, 1e-9)
	assert.InDelta(t, 80.0, summary.BiweeklyTargetHours, 1e-9)
	assert.Equal(t, "2024-03-11", summary.PeriodStart)
	assert.Equal(t, "2024-03-24", summary.PeriodEnd)
}

func TestCorrect_RecomputesSnapshotFromFields(t *testing.T) {
	svc, repo, clk, _ := newTestService(t)
	ctx := authedContext(t, "user-1")
	adminCtx := authedContext(t, "admin-1")

	_, err := svc.CheckIn(ctx)
	require.NoError(t, err)
	clk.Advance(1 * time.Hour)
	resp, err := svc.CheckOut(ctx)
	require.NoError(t, err)

	// push the check-out two hours later than it really happened
	stored, err := repo.GetByID(ctx, resp.ID)
	require.NoError(t, err)
	newCheckOut := stored.CheckOut.Add(2 * time.Hour).Format(time.RFC3339)

	corrected, err := svc.Correct(adminCtx, attendance.CorrectionRequest{
		ID:       resp.ID,
		CheckOut: &newCheckOut,
	})
	require.NoError(t, err)

	assert.InDelta(t, 180.0, corrected.TotalWorkedMinutes, 1e-9)
}

func TestCorrect_Validation(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	adminCtx := authedContext(t, "admin-1")

	bad := "not-a-timestamp"
	_, err := svc.Correct(adminCtx, attendance.CorrectionRequest{ID: "some-id", CheckIn: &bad})
	assert.Error(t, err)
}

func TestDelete(t *testing.T) {
	svc, repo, _, _ := newTestService(t)
	ctx := authedContext(t, "user-1")
	adminCtx := authedContext(t, "admin-1")

	resp, err := svc.CheckIn(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(adminCtx, resp.ID))
	_, err = repo.GetByID(ctx, resp.ID)
	assert.ErrorIs(t, err, attendance.ErrRecordNotFound)

	assert.ErrorIs(t, svc.Delete(adminCtx, resp.ID), attendance.ErrRecordNotFound)
}

func TestHistory(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := authedContext(t, "user-1")

	_, err := svc.CheckIn(ctx)
	require.NoError(t, err)

	history, err := svc.History(ctx)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "2024-03-11", history[0].Date)
}
