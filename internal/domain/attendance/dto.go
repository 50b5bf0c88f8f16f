package attendance

import (
	"github.com/mycityradius/timeclock-backend-go/internal/pkg/validator"
)

type Response struct {
	ID                 string   `json:"id"`
	UserID             string   `json:"user_id"`
	UserName           *string  `json:"user_name,omitempty"`
	Date               string   `json:"date"`
	CheckIn            *string  `json:"check_in"`
	CheckOut           *string  `json:"check_out"`
	Breaks             int      `json:"breaks"`
	Pauses             []Pause  `json:"pauses"`
	TotalWorkedMinutes float64  `json:"total_worked_minutes"`
	WorkedHours        float64  `json:"worked_hours"`
	Status             Status   `json:"status"`
}

// TodayResponse drives the live check-in timer. WorkedSeconds is evaluated
// server-side at response time; the client keeps ticking from there.
type TodayResponse struct {
	State         State     `json:"state"`
	Record        *Response `json:"record"`
	WorkedSeconds int64     `json:"worked_seconds"`
}

// SummaryResponse backs the daily and biweekly progress figures.
type SummaryResponse struct {
	WorkedSecondsToday  int64   `json:"worked_seconds_today"`
	TodayHours          float64 `json:"today_hours"`
	DailyTargetHours    float64 `json:"daily_target_hours"`
	PeriodHours         float64 `json:"period_hours"`
	BiweeklyTargetHours float64 `json:"biweekly_target_hours"`
	PeriodStart         string  `json:"period_start"`
	PeriodEnd           string  `json:"period_end"`
}

// CorrectionRequest is an admin edit of someone's record. Timestamps are
// RFC3339. Fields left nil are unchanged; the worked-time snapshot is always
// recomputed from the corrected fields.
type CorrectionRequest struct {
	ID       string  `json:"-"`
	CheckIn  *string `json:"check_in"`
	CheckOut *string `json:"check_out"`
	Status   *string `json:"status"`
}

func (r CorrectionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}
	if r.CheckIn != nil {
		if _, ok := validator.IsValidDateTime(*r.CheckIn); !ok {
			errs = append(errs, validator.ValidationError{Field: "check_in", Message: "must be an RFC3339 timestamp"})
		}
	}
	if r.CheckOut != nil {
		if _, ok := validator.IsValidDateTime(*r.CheckOut); !ok {
			errs = append(errs, validator.ValidationError{Field: "check_out", Message: "must be an RFC3339 timestamp"})
		}
	}
	if r.Status != nil {
		valid := []string{string(StatusCheckedIn), string(StatusPaused), string(StatusCheckedOut)}
		if !validator.IsInSlice(*r.Status, valid) {
			errs = append(errs, validator.ValidationError{Field: "status", Message: "unknown status"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
