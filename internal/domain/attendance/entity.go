package attendance

import (
	"time"
)

// Status is the persisted lifecycle status of a daily attendance record.
// The "not started" state has no row at all; see State.
type Status string

const (
	StatusCheckedIn  Status = "checked_in"
	StatusPaused     Status = "paused"
	StatusCheckedOut Status = "checked_out"
)

// Pause is one break interval. End stays nil while the break is running;
// at most one pause per record may be open at a time.
type Pause struct {
	Start time.Time  `json:"start"`
	End   *time.Time `json:"end"`
}

// Record is one employee's attendance for one calendar date (organization
// timezone). TotalWorkedMinutes is a cached snapshot rewritten on every
// transition; it is always derivable from CheckIn/CheckOut/Pauses and must
// never be treated as an independent source of truth.
type Record struct {
	ID                 string
	UserID             string
	Date               time.Time
	CheckIn            *time.Time
	CheckOut           *time.Time
	Pauses             []Pause
	TotalWorkedMinutes float64
	Status             Status
	CreatedAt          time.Time
	UpdatedAt          time.Time

	// DTO
	UserName  *string
	UserEmail *string
}

// OpenPause returns the record's running pause, or nil when none is open.
func (r *Record) OpenPause() *Pause {
	if len(r.Pauses) == 0 {
		return nil
	}
	last := &r.Pauses[len(r.Pauses)-1]
	if last.End == nil {
		return last
	}
	return nil
}

// DateString formats the record's calendar date.
func (r *Record) DateString() string {
	return r.Date.Format("2006-01-02")
}
