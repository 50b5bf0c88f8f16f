package payperiod

import (
	"testing"
	"time"

	"github.com/mycityradius/timeclock-backend-go/internal/pkg/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func phoenix(t *testing.T) *time.Location {
	loc, err := time.LoadLocation("America/Phoenix")
	require.NoError(t, err)
	return loc
}

func TestAnchor(t *testing.T) {
	loc := phoenix(t)

	// 2024-01-01 is itself a Monday
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, loc), Anchor(2024, loc))
	// 2025-01-01 is a Wednesday; first Monday is Jan 6
	assert.Equal(t, time.Date(2025, time.January, 6, 0, 0, 0, 0, loc), Anchor(2025, loc))
}

func TestFor_FourteenDayMondayWindows(t *testing.T) {
	loc := phoenix(t)

	p := For(time.Date(2024, time.January, 10, 12, 0, 0, 0, loc), loc)
	assert.Equal(t, "2024-01-01", p.StartDate())
	assert.Equal(t, "2024-01-14", p.EndDate())
	assert.Equal(t, time.Monday, p.Start.Weekday())

	// the day after a period ends starts the next one
	p = For(time.Date(2024, time.January, 15, 0, 0, 0, 0, loc), loc)
	assert.Equal(t, "2024-01-15", p.StartDate())
	assert.Equal(t, "2024-01-28", p.EndDate())
}

func TestFor_ReferenceInsideWindow(t *testing.T) {
	loc := phoenix(t)

	for day := 1; day <= 28; day++ {
		ref := time.Date(2024, time.June, day, 15, 30, 0, 0, loc)
		p := For(ref, loc)
		assert.Equal(t, time.Monday, p.Start.Weekday())
		assert.Equal(t, 13, int(p.End.Sub(p.Start).Hours()/24))
		assert.False(t, ref.Before(p.Start), "ref %s before start %s", ref, p.Start)
		assert.False(t, ref.After(p.End.AddDate(0, 0, 1)), "ref %s after end %s", ref, p.End)
	}
}

// The anchor resets every January 1, so windows from adjacent years overlap
// instead of tiling. These cases pin the deployed behavior.
func TestFor_YearBoundary(t *testing.T) {
	loc := phoenix(t)

	// Early January before the year's first Monday: the 2025 anchor is
	// Jan 6, so Jan 2 lands in period index -1.
	p := For(time.Date(2025, time.January, 2, 9, 0, 0, 0, loc), loc)
	assert.Equal(t, "2024-12-23", p.StartDate())
	assert.Equal(t, "2025-01-05", p.EndDate())

	// Late December still uses the old year's anchor and reaches into
	// January, overlapping the window above.
	p = For(time.Date(2024, time.December, 31, 9, 0, 0, 0, loc), loc)
	assert.Equal(t, "2024-12-30", p.StartDate())
	assert.Equal(t, "2025-01-12", p.EndDate())
}

func TestCurrent(t *testing.T) {
	loc := phoenix(t)

	clk := clock.NewFixed(time.Date(2024, time.March, 20, 18, 0, 0, 0, time.UTC))
	p := Current(clk, loc)
	assert.Equal(t, "2024-03-11", p.StartDate())
	assert.Equal(t, "2024-03-24", p.EndDate())
}

// A late-evening UTC instant can still be the previous calendar day in the
// organization timezone; the period derivation must follow the local date.
func TestFor_TimezoneSensitivity(t *testing.T) {
	loc := phoenix(t)

	// 2024-01-15 04:00 UTC is 2024-01-14 21:00 in Phoenix (UTC-7):
	// still inside the first period of the year.
	p := For(time.Date(2024, time.January, 15, 4, 0, 0, 0, time.UTC), loc)
	assert.Equal(t, "2024-01-01", p.StartDate())
	assert.Equal(t, "2024-01-14", p.EndDate())
}
