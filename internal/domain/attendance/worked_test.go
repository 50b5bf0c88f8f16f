package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ts(hour, min int) time.Time {
	return time.Date(2024, time.March, 11, hour, min, 0, 0, time.UTC)
}

func tsPtr(hour, min int) *time.Time {
	t := ts(hour, min)
	return &t
}

func TestWorkedSeconds_NoCheckIn(t *testing.T) {
	rec := Record{Status: StatusCheckedIn}
	assert.Equal(t, int64(0), WorkedSeconds(rec, ts(12, 0)))
}

func TestWorkedSeconds_RunningWithoutPauses(t *testing.T) {
	rec := Record{
		CheckIn: tsPtr(9, 0),
		Status:  StatusCheckedIn,
	}

	assert.Equal(t, int64(2*3600), WorkedSeconds(rec, ts(11, 0)))
}

func TestWorkedSeconds_SubtractsClosedPauses(t *testing.T) {
	rec := Record{
		CheckIn: tsPtr(9, 0),
		Pauses: []Pause{
			{Start: ts(10, 0), End: tsPtr(10, 25)},
		},
		Status: StatusCheckedIn,
	}

	// 2h elapsed minus a 25-minute break
	assert.Equal(t, int64(2*3600-1500), WorkedSeconds(rec, ts(11, 0)))
}

func TestWorkedSeconds_OpenPauseChargedToAsOf(t *testing.T) {
	rec := Record{
		CheckIn: tsPtr(9, 0),
		Pauses: []Pause{
			{Start: ts(10, 0)},
		},
		Status: StatusPaused,
	}

	// The timer froze when the break started: the open pause grows in
	// lockstep with asOf.
	assert.Equal(t, int64(3600), WorkedSeconds(rec, ts(10, 10)))
	assert.Equal(t, int64(3600), WorkedSeconds(rec, ts(11, 30)))
}

func TestWorkedSeconds_FrozenAfterCheckOut(t *testing.T) {
	rec := Record{
		CheckIn:  tsPtr(9, 0),
		CheckOut: tsPtr(17, 0),
		Pauses: []Pause{
			{Start: ts(12, 0), End: tsPtr(13, 0)},
		},
		Status: StatusCheckedOut,
	}

	want := int64(7 * 3600)
	assert.Equal(t, want, WorkedSeconds(rec, ts(17, 0)))
	// Later evaluations must not grow the value.
	assert.Equal(t, want, WorkedSeconds(rec, ts(23, 59)))
}

func TestWorkedSeconds_NeverNegative(t *testing.T) {
	rec := Record{
		CheckIn: tsPtr(9, 0),
		Pauses: []Pause{
			// a corrupt pause longer than the elapsed time
			{Start: ts(9, 0), End: tsPtr(12, 0)},
		},
		Status: StatusCheckedIn,
	}

	assert.Equal(t, int64(0), WorkedSeconds(rec, ts(10, 0)))
	assert.Equal(t, int64(0), WorkedSeconds(Record{CheckIn: tsPtr(9, 0), Status: StatusCheckedIn}, ts(8, 0)))
}

func TestWorkedSeconds_FlooredToWholeSeconds(t *testing.T) {
	checkIn := time.Date(2024, time.March, 11, 9, 0, 0, 0, time.UTC)
	rec := Record{CheckIn: &checkIn, Status: StatusCheckedIn}

	asOf := checkIn.Add(90*time.Second + 900*time.Millisecond)
	assert.Equal(t, int64(90), WorkedSeconds(rec, asOf))
}

func TestWorkedMinutes(t *testing.T) {
	rec := Record{
		CheckIn: tsPtr(9, 0),
		Status:  StatusCheckedIn,
	}

	assert.InDelta(t, 90.0, WorkedMinutes(rec, ts(10, 30)), 1e-9)
	assert.InDelta(t, 0.5, WorkedMinutes(rec, ts(9, 0).Add(30*time.Second)), 1e-9)
}

func TestOpenPause(t *testing.T) {
	rec := Record{}
	assert.Nil(t, rec.OpenPause())

	rec.Pauses = []Pause{{Start: ts(10, 0), End: tsPtr(10, 30)}}
	assert.Nil(t, rec.OpenPause())

	rec.Pauses = append(rec.Pauses, Pause{Start: ts(11, 0)})
	open := rec.OpenPause()
	assert.NotNil(t, open)
	assert.Equal(t, ts(11, 0), open.Start)
}
