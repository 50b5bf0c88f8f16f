package attendance

import (
	"math"
	"time"
)

// WorkedSeconds derives elapsed worked time for a record at the given
// instant. A checked-out record is pinned to its check-out time, so the
// value is stable for any later asOf. Open pauses are charged up to asOf.
// The result is clamped at zero: admin corrections or clock skew must never
// surface a negative duration.
func WorkedSeconds(rec Record, asOf time.Time) int64 {
	if rec.CheckIn == nil {
		return 0
	}

	end := asOf
	if rec.Status == StatusCheckedOut && rec.CheckOut != nil {
		end = *rec.CheckOut
	}

	var paused time.Duration
	for _, p := range rec.Pauses {
		pauseEnd := asOf
		if p.End != nil {
			pauseEnd = *p.End
		}
		paused += pauseEnd.Sub(p.Start)
	}

	secs := int64(math.Floor((end.Sub(*rec.CheckIn) - paused).Seconds()))
	if secs < 0 {
		return 0
	}
	return secs
}

// WorkedMinutes is the fractional-minute form persisted as the
// total_worked_minutes snapshot at each transition. Fractions are kept;
// the aggregator sums these across a pay period.
func WorkedMinutes(rec Record, asOf time.Time) float64 {
	return float64(WorkedSeconds(rec, asOf)) / 60
}
