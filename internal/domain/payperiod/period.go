package payperiod

import (
	"math"
	"time"

	"github.com/mycityradius/timeclock-backend-go/internal/pkg/clock"
)

// Period is a 14-day inclusive window [Start, End] used for hours tracking
// and payroll aggregation. Boundaries always fall on Mondays.
type Period struct {
	Start time.Time
	End   time.Time
}

// For derives the biweekly period containing (or, near year boundaries,
// associated with) the reference instant. The anchor is the first Monday on
// or after January 1 of the reference date's year, evaluated in loc.
//
// The anchor resets every January 1, so periods do not tile cleanly across
// the year boundary: a reference date in late December and one in early
// January can land in overlapping or non-adjacent windows, and a reference
// date before the year's first Monday yields a window that ends before the
// reference date itself. This matches the deployed payroll behavior and is
// preserved deliberately; do not "fix" it without product sign-off.
func For(ref time.Time, loc *time.Location) Period {
	local := ref.In(loc)

	anchor := time.Date(local.Year(), time.January, 1, 0, 0, 0, 0, loc)
	for anchor.Weekday() != time.Monday {
		anchor = anchor.AddDate(0, 0, 1)
	}

	daysSinceAnchor := math.Floor(local.Sub(anchor).Hours() / 24)
	index := int(math.Floor(daysSinceAnchor / 14))

	start := anchor.AddDate(0, 0, index*14)
	return Period{Start: start, End: start.AddDate(0, 0, 13)}
}

// Current derives the period containing the clock's present instant.
func Current(c clock.Clock, loc *time.Location) Period {
	return For(c.Now(), loc)
}

// Anchor returns the period-zero Monday for the given year.
func Anchor(year int, loc *time.Location) time.Time {
	anchor := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	for anchor.Weekday() != time.Monday {
		anchor = anchor.AddDate(0, 0, 1)
	}
	return anchor
}

func (p Period) StartDate() string {
	return p.Start.Format("2006-01-02")
}

func (p Period) EndDate() string {
	return p.End.Format("2006-01-02")
}
