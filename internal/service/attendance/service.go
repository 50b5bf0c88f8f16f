package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/mycityradius/timeclock-backend-go/internal/config"
	"github.com/mycityradius/timeclock-backend-go/internal/domain/activity"
	"github.com/mycityradius/timeclock-backend-go/internal/domain/attendance"
	"github.com/mycityradius/timeclock-backend-go/internal/domain/payperiod"
	"github.com/mycityradius/timeclock-backend-go/internal/pkg/clock"
)

type AttendanceServiceImpl struct {
	attendanceRepo  attendance.Repository
	activityService activity.Service
	clock           clock.Clock
	org             config.OrgConfig
}

func NewAttendanceService(
	attendanceRepo attendance.Repository,
	activityService activity.Service,
	clk clock.Clock,
	org config.OrgConfig,
) attendance.Service {
	return &AttendanceServiceImpl{
		attendanceRepo:  attendanceRepo,
		activityService: activityService,
		clock:           clk,
		org:             org,
	}
}

// userIDFromContext extracts the authenticated user from the verified token.
func userIDFromContext(ctx context.Context) (string, error) {
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

// timePtrToString safely converts a *time.Time to an RFC3339 string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(time.RFC3339)
	return &formatted
}

func roundHours(minutes float64) float64 {
	return math.Round(minutes/60*100) / 100
}

func toResponse(rec attendance.Record) attendance.Response {
	return attendance.Response{
		ID:                 rec.ID,
		UserID:             rec.UserID,
		UserName:           rec.UserName,
		Date:               rec.DateString(),
		CheckIn:            timePtrToString(rec.CheckIn),
		CheckOut:           timePtrToString(rec.CheckOut),
		Breaks:             len(rec.Pauses),
		Pauses:             rec.Pauses,
		TotalWorkedMinutes: rec.TotalWorkedMinutes,
		WorkedHours:        roundHours(rec.TotalWorkedMinutes),
		Status:             rec.Status,
	}
}

// audit records the transition in the activity log. A failed audit write is
// logged and swallowed: the attendance mutation it describes has already
// committed and must not be reported as failed.
func (a *AttendanceServiceImpl) audit(ctx context.Context, userID string, action attendance.Action, details string) {
	if err := a.activityService.Record(ctx, userID, string(action), details); err != nil {
		slog.Warn("failed to record activity log entry",
			slog.String("action", string(action)),
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
	}
}

// today returns the user's record for the current organization-local date,
// nil when the user has not checked in yet.
func (a *AttendanceServiceImpl) today(ctx context.Context, userID string, now time.Time) (*attendance.Record, string, error) {
	date := now.In(a.org.Location).Format("2006-01-02")
	rec, err := a.attendanceRepo.GetByUserAndDate(ctx, userID, date)
	if err != nil {
		return nil, date, fmt.Errorf("failed to get today's attendance record: %w", err)
	}
	return rec, date, nil
}

// CheckIn implements attendance.Service.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context) (attendance.Response, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return attendance.Response{}, err
	}

	now := a.clock.Now()
	nowLocal := now.In(a.org.Location)

	rec, _, err := a.today(ctx, userID, now)
	if err != nil {
		return attendance.Response{}, err
	}
	if !attendance.StateOf(rec).Allows(attendance.ActionCheckIn) {
		return attendance.Response{}, attendance.ErrAlreadyCheckedIn
	}

	// The unique (user_id, date) constraint closes the race between the
	// read above and this insert: a concurrent duplicate check-in loses
	// with ErrAlreadyCheckedIn from the repository.
	created, err := a.attendanceRepo.Create(ctx, attendance.Record{
		UserID:             userID,
		Date:               time.Date(nowLocal.Year(), nowLocal.Month(), nowLocal.Day(), 0, 0, 0, 0, a.org.Location),
		CheckIn:            &now,
		Pauses:             []attendance.Pause{},
		TotalWorkedMinutes: 0,
		Status:             attendance.StatusCheckedIn,
	})
	if err != nil {
		return attendance.Response{}, err
	}

	a.audit(ctx, userID, attendance.ActionCheckIn, "Checked in at "+now.Format(time.RFC3339))

	return toResponse(created), nil
}

// Pause implements attendance.Service. The worked-time snapshot is taken
// before the pause opens, so the stored value is the frozen timer the
// dashboard shows for the whole break.
func (a *AttendanceServiceImpl) Pause(ctx context.Context) (attendance.Response, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return attendance.Response{}, err
	}

	now := a.clock.Now()

	rec, _, err := a.today(ctx, userID, now)
	if err != nil {
		return attendance.Response{}, err
	}
	if rec == nil {
		return attendance.Response{}, attendance.ErrNotCheckedIn
	}
	if !attendance.StateOf(rec).Allows(attendance.ActionPause) {
		return attendance.Response{}, attendance.ErrInvalidTransition
	}

	rec.TotalWorkedMinutes = attendance.WorkedMinutes(*rec, now)
	rec.Pauses = append(rec.Pauses, attendance.Pause{Start: now})
	rec.Status = attendance.StatusPaused

	if err := a.attendanceRepo.Update(ctx, *rec); err != nil {
		return attendance.Response{}, err
	}

	a.audit(ctx, userID, attendance.ActionPause, "Paused at "+now.Format(time.RFC3339))

	return toResponse(*rec), nil
}

// Resume implements attendance.Service.
func (a *AttendanceServiceImpl) Resume(ctx context.Context) (attendance.Response, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return attendance.Response{}, err
	}

	now := a.clock.Now()

	rec, _, err := a.today(ctx, userID, now)
	if err != nil {
		return attendance.Response{}, err
	}
	if rec == nil {
		return attendance.Response{}, attendance.ErrNotCheckedIn
	}
	if !attendance.StateOf(rec).Allows(attendance.ActionResume) {
		return attendance.Response{}, attendance.ErrInvalidTransition
	}

	if open := rec.OpenPause(); open != nil {
		open.End = &now
	}
	// Recomputing with the pause now closed at the same instant yields the
	// value frozen when the pause opened.
	rec.TotalWorkedMinutes = attendance.WorkedMinutes(*rec, now)
	rec.Status = attendance.StatusCheckedIn

	if err := a.attendanceRepo.Update(ctx, *rec); err != nil {
		return attendance.Response{}, err
	}

	a.audit(ctx, userID, attendance.ActionResume, "Resumed at "+now.Format(time.RFC3339))

	return toResponse(*rec), nil
}

// CheckOut implements attendance.Service. Checking out during a break closes
// the open pause at the check-out instant first.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context) (attendance.Response, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return attendance.Response{}, err
	}

	now := a.clock.Now()

	rec, _, err := a.today(ctx, userID, now)
	if err != nil {
		return attendance.Response{}, err
	}
	if rec == nil {
		return attendance.Response{}, attendance.ErrNotCheckedIn
	}
	if !attendance.StateOf(rec).Allows(attendance.ActionCheckOut) {
		return attendance.Response{}, attendance.ErrInvalidTransition
	}

	if open := rec.OpenPause(); open != nil {
		open.End = &now
	}
	rec.CheckOut = &now
	rec.Status = attendance.StatusCheckedOut
	rec.TotalWorkedMinutes = attendance.WorkedMinutes(*rec, now)

	if err := a.attendanceRepo.Update(ctx, *rec); err != nil {
		return attendance.Response{}, err
	}

	a.audit(ctx, userID, attendance.ActionCheckOut, "Checked out at "+now.Format(time.RFC3339))

	return toResponse(*rec), nil
}

// Today implements attendance.Service.
func (a *AttendanceServiceImpl) Today(ctx context.Context) (attendance.TodayResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return attendance.TodayResponse{}, err
	}

	now := a.clock.Now()

	rec, _, err := a.today(ctx, userID, now)
	if err != nil {
		return attendance.TodayResponse{}, err
	}

	if rec == nil {
		return attendance.TodayResponse{State: attendance.StateAbsent}, nil
	}

	resp := toResponse(*rec)
	return attendance.TodayResponse{
		State:         attendance.StateOf(rec),
		Record:        &resp,
		WorkedSeconds: attendance.WorkedSeconds(*rec, now),
	}, nil
}

// History implements attendance.Service.
func (a *AttendanceServiceImpl) History(ctx context.Context) ([]attendance.Response, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	records, err := a.attendanceRepo.ListByUser(ctx, userID, 30)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.Response, 0, len(records))
	for _, rec := range records {
		responses = append(responses, toResponse(rec))
	}

	return responses, nil
}

// Summary implements attendance.Service. Today's figure is live; the period
// figure sums the persisted snapshots of the current biweekly window.
func (a *AttendanceServiceImpl) Summary(ctx context.Context) (attendance.SummaryResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return attendance.SummaryResponse{}, err
	}

	now := a.clock.Now()

	rec, _, err := a.today(ctx, userID, now)
	if err != nil {
		return attendance.SummaryResponse{}, err
	}

	var workedSecondsToday int64
	if rec != nil {
		workedSecondsToday = attendance.WorkedSeconds(*rec, now)
	}

	period := payperiod.For(now, a.org.Location)
	periodMinutes, err := a.attendanceRepo.SumWorkedMinutes(ctx, userID, period.StartDate(), period.EndDate())
	if err != nil {
		return attendance.SummaryResponse{}, err
	}

	return attendance.SummaryResponse{
		WorkedSecondsToday:  workedSecondsToday,
		TodayHours:          math.Round(float64(workedSecondsToday)/3600*100) / 100,
		DailyTargetHours:    a.org.DailyTargetHours,
		PeriodHours:         roundHours(periodMinutes),
		BiweeklyTargetHours: a.org.BiweeklyTargetHours,
		PeriodStart:         period.StartDate(),
		PeriodEnd:           period.EndDate(),
	}, nil
}

// ListByDate implements attendance.Service.
func (a *AttendanceServiceImpl) ListByDate(ctx context.Context, date string) ([]attendance.Response, error) {
	records, err := a.attendanceRepo.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.Response, 0, len(records))
	for _, rec := range records {
		responses = append(responses, toResponse(rec))
	}

	return responses, nil
}

// Correct implements attendance.Service. The worked-time snapshot is always
// recomputed from the corrected fields, never carried over from the cache.
func (a *AttendanceServiceImpl) Correct(ctx context.Context, req attendance.CorrectionRequest) (attendance.Response, error) {
	if err := req.Validate(); err != nil {
		return attendance.Response{}, err
	}

	adminID, err := userIDFromContext(ctx)
	if err != nil {
		return attendance.Response{}, err
	}

	now := a.clock.Now()

	rec, err := a.attendanceRepo.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.Response{}, err
	}

	if req.CheckIn != nil {
		t, _ := time.Parse(time.RFC3339, *req.CheckIn)
		utc := t.UTC()
		rec.CheckIn = &utc
	}
	if req.CheckOut != nil {
		t, _ := time.Parse(time.RFC3339, *req.CheckOut)
		utc := t.UTC()
		rec.CheckOut = &utc
	}
	if req.Status != nil {
		rec.Status = attendance.Status(*req.Status)
	}

	// A record corrected to checked-out must not keep a running break.
	if rec.Status == attendance.StatusCheckedOut {
		if open := rec.OpenPause(); open != nil {
			end := now
			if rec.CheckOut != nil {
				end = *rec.CheckOut
			}
			open.End = &end
		}
	}

	rec.TotalWorkedMinutes = attendance.WorkedMinutes(rec, now)

	if err := a.attendanceRepo.Update(ctx, rec); err != nil {
		return attendance.Response{}, err
	}

	a.audit(ctx, adminID, "correct_attendance",
		fmt.Sprintf("Corrected attendance record %s for %s", rec.ID, rec.DateString()))

	return toResponse(rec), nil
}

// Delete implements attendance.Service.
func (a *AttendanceServiceImpl) Delete(ctx context.Context, id string) error {
	adminID, err := userIDFromContext(ctx)
	if err != nil {
		return err
	}

	rec, err := a.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := a.attendanceRepo.Delete(ctx, id); err != nil {
		return err
	}

	a.audit(ctx, adminID, "delete_attendance",
		fmt.Sprintf("Deleted attendance record %s for %s", rec.ID, rec.DateString()))

	return nil
}
