package aggregate

import (
	"testing"
	"time"

	"github.com/ostrella/clockwise/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func caracas(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Caracas")
	require.NoError(t, err)
	return loc
}

func sched(start, end string, days ...domain.Weekday) domain.Schedule {
	return domain.Schedule{ID: start + "-" + end, Days: days, StartTime: start, EndTime: end}
}

func closedEntry(start time.Time, d time.Duration) domain.Entry {
	end := start.Add(d)
	return domain.Entry{Status: domain.EntryClosed, StartTime: start, EndTime: &end}
}

// Monday 2025-03-10. 09:10 in Caracas is 13:10 UTC.
var mondayStart = time.Date(2025, 3, 10, 13, 10, 0, 0, time.UTC)

func TestHours_SingleWorkerScenario(t *testing.T) {
	loc := caracas(t)
	res := Hours(Input{
		Workers: []WorkerInput{{
			Schedules: []domain.Schedule{sched("09:00:00", "17:00:00", domain.Monday)},
			Entries:   []domain.Entry{closedEntry(mondayStart, 4*time.Hour)},
		}},
		Days:    Workweek,
		Display: loc,
		Now:     mondayStart.Add(8 * time.Hour),
	})

	mon := res.Days[0]
	assert.Equal(t, domain.Monday, mon.Day)
	assert.InDelta(t, 8, mon.Scheduled, 1e-9)
	assert.InDelta(t, 4, mon.Worked, 1e-9)
	assert.InDelta(t, 4, mon.NotWorked, 1e-9)
	assert.Equal(t, 50, res.WorkedPercent)
	assert.Equal(t, 50, res.NotWorkedPercent)
}

func TestHours_DuplicateScheduleRecordsCountOnce(t *testing.T) {
	loc := caracas(t)
	res := Hours(Input{
		Workers: []WorkerInput{{
			Schedules: []domain.Schedule{
				sched("09:00:00", "17:00:00", domain.Monday),
				sched("09:00:00", "17:00:00", domain.Monday),
			},
		}},
		Days:    Workweek,
		Display: loc,
		Now:     mondayStart,
	})
	assert.InDelta(t, 8, res.Days[0].Scheduled, 1e-9, "duplicate import must not double the allotment")
}

func TestHours_SplitShiftAveragesDistinctRanges(t *testing.T) {
	loc := caracas(t)
	res := Hours(Input{
		Workers: []WorkerInput{{
			Schedules: []domain.Schedule{
				sched("09:00:00", "13:00:00", domain.Monday),
				sched("14:00:00", "18:00:00", domain.Monday),
			},
		}},
		Days:    Workweek,
		Display: loc,
		Now:     mondayStart,
	})
	// Two distinct 4h ranges on the same day: summed then divided by the
	// range count, approximating the per-shift average.
	assert.InDelta(t, 4, res.Days[0].Scheduled, 1e-9)
}

func TestHours_WorkedCappedAtScheduled(t *testing.T) {
	loc := caracas(t)
	res := Hours(Input{
		Workers: []WorkerInput{{
			Schedules: []domain.Schedule{sched("09:00:00", "17:00:00", domain.Monday)},
			Entries:   []domain.Entry{closedEntry(mondayStart, 11*time.Hour)},
		}},
		Days:    Workweek,
		Display: loc,
		Now:     mondayStart,
	})
	assert.InDelta(t, 8, res.Days[0].Worked, 1e-9)
	assert.Equal(t, 100, res.WorkedPercent)
}

func TestHours_WorkOnUnscheduledDayCappedToZero(t *testing.T) {
	loc := caracas(t)
	res := Hours(Input{
		Workers: []WorkerInput{{
			Entries: []domain.Entry{closedEntry(mondayStart, 4*time.Hour)},
		}},
		Days:    Workweek,
		Display: loc,
		Now:     mondayStart,
	})
	assert.Zero(t, res.Days[0].Worked)
	assert.Equal(t, 0, res.WorkedPercent)
	assert.Equal(t, 100, res.NotWorkedPercent)
}

func TestHours_OpenEntryAddsLiveElapsedToToday(t *testing.T) {
	loc := caracas(t)
	open := domain.Entry{Status: domain.EntryOpen, StartTime: mondayStart}
	res := Hours(Input{
		Workers: []WorkerInput{{
			Schedules: []domain.Schedule{sched("09:00:00", "17:00:00", domain.Monday)},
			OpenEntry: &open,
		}},
		Days:    Workweek,
		Display: loc,
		Now:     mondayStart.Add(2 * time.Hour),
	})
	assert.InDelta(t, 2, res.Days[0].Worked, 1e-9)
}

func TestHours_MalformedScheduleAddsNoConstraint(t *testing.T) {
	loc := caracas(t)
	res := Hours(Input{
		Workers: []WorkerInput{{
			Schedules: []domain.Schedule{sched("banana", "17:00:00", domain.Monday)},
		}},
		Days:    Workweek,
		Display: loc,
		Now:     mondayStart,
	})
	assert.Zero(t, res.Days[0].Scheduled)
}

func TestHours_FullWeekIncludesWeekend(t *testing.T) {
	loc := caracas(t)
	res := Hours(Input{
		Workers: []WorkerInput{{
			Schedules: []domain.Schedule{sched("09:00:00", "17:00:00", domain.Sunday)},
		}},
		Days:    FullWeek,
		Display: loc,
		Now:     mondayStart,
	})
	require.Len(t, res.Days, 7)
	assert.Equal(t, domain.Sunday, res.Days[6].Day)
	assert.InDelta(t, 8, res.Days[6].Scheduled, 1e-9)
}

func TestHours_MultiWorkerMergeIsOrderIndependent(t *testing.T) {
	loc := caracas(t)
	w1 := WorkerInput{
		Schedules: []domain.Schedule{sched("09:00:00", "17:00:00", domain.Monday)},
		Entries:   []domain.Entry{closedEntry(mondayStart, 3*time.Hour)},
	}
	w2 := WorkerInput{
		Schedules: []domain.Schedule{sched("10:00:00", "18:00:00", domain.Monday, domain.Tuesday)},
		Entries:   []domain.Entry{closedEntry(mondayStart.Add(time.Hour), 5*time.Hour)},
	}

	forward := Hours(Input{Workers: []WorkerInput{w1, w2}, Days: Workweek, Display: loc, Now: mondayStart})
	reversed := Hours(Input{Workers: []WorkerInput{w2, w1}, Days: Workweek, Display: loc, Now: mondayStart})
	assert.Equal(t, forward, reversed)

	assert.InDelta(t, 16, forward.Days[0].Scheduled, 1e-9)
	assert.InDelta(t, 8, forward.Days[0].Worked, 1e-9)
}

func TestHours_Idempotent(t *testing.T) {
	loc := caracas(t)
	in := Input{
		Workers: []WorkerInput{{
			Schedules: []domain.Schedule{sched("09:00:00", "17:00:00", domain.Monday, domain.Friday)},
			Entries:   []domain.Entry{closedEntry(mondayStart, 6*time.Hour)},
		}},
		Days:    Workweek,
		Display: loc,
		Now:     mondayStart,
	}
	assert.Equal(t, Hours(in), Hours(in))
}
