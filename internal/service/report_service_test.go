package service_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/ostrella/clockwise/internal/domain"
	"github.com/ostrella/clockwise/internal/repository"
	"github.com/ostrella/clockwise/internal/service"
	"github.com/ostrella/clockwise/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReports(t *testing.T, db *sql.DB, now time.Time) service.ReportService {
	t.Helper()
	loc, err := time.LoadLocation("America/Caracas")
	require.NoError(t, err)
	return service.NewReportService(
		repository.NewSQLiteWorkerRepo(db),
		repository.NewSQLiteScheduleRepo(db),
		repository.NewSQLiteEntryRepo(db),
		loc,
		func() time.Time { return now },
	)
}

// Monday 2025-03-10, 09:10 in Caracas.
var entryStart = time.Date(2025, 3, 10, 13, 10, 0, 0, time.UTC)

func TestWeeklyHours_Scenario(t *testing.T) {
	db := testutil.NewTestDB(t)
	w := testutil.SeedWorker(t, db, "Ana")
	testutil.SeedSchedule(t, db, w.ID, "09:00:00", "17:00:00", domain.Monday)
	testutil.SeedClosedEntry(t, db, w.ID, entryStart, 4*time.Hour)

	res, err := newReports(t, db, entryStart.Add(8*time.Hour)).WeeklyHours(context.Background(), w.ID)
	require.NoError(t, err)

	require.Len(t, res.Days, 5)
	mon := res.Days[0]
	assert.InDelta(t, 8, mon.Scheduled, 1e-9)
	assert.InDelta(t, 4, mon.Worked, 1e-9)
	assert.InDelta(t, 4, mon.NotWorked, 1e-9)
	assert.Equal(t, 50, res.WorkedPercent)
}

func TestWeeklyHours_ExcludesPreviousWeek(t *testing.T) {
	db := testutil.NewTestDB(t)
	w := testutil.SeedWorker(t, db, "Ana")
	testutil.SeedSchedule(t, db, w.ID, "09:00:00", "17:00:00", domain.Monday)
	testutil.SeedClosedEntry(t, db, w.ID, entryStart.AddDate(0, 0, -7), 8*time.Hour)

	res, err := newReports(t, db, entryStart).WeeklyHours(context.Background(), w.ID)
	require.NoError(t, err)
	assert.Zero(t, res.Days[0].Worked)
}

func TestWeeklyHours_OpenEntryCountsLive(t *testing.T) {
	db := testutil.NewTestDB(t)
	w := testutil.SeedWorker(t, db, "Ana")
	testutil.SeedSchedule(t, db, w.ID, "09:00:00", "17:00:00", domain.Monday)

	now := entryStart.Add(2 * time.Hour)
	att := newAttendance(t, db, entryStart)
	_, err := att.ClockIn(context.Background(), w.ID, "")
	require.NoError(t, err)

	res, err := newReports(t, db, now).WeeklyHours(context.Background(), w.ID)
	require.NoError(t, err)
	assert.InDelta(t, 2, res.Days[0].Worked, 0.01)
}

func TestTeamWeeklyHours_MergesWorkers(t *testing.T) {
	db := testutil.NewTestDB(t)
	a := testutil.SeedWorker(t, db, "Ana")
	b := testutil.SeedWorker(t, db, "Bruno")
	testutil.SeedSchedule(t, db, a.ID, "09:00:00", "17:00:00", domain.Monday)
	testutil.SeedSchedule(t, db, b.ID, "09:00:00", "17:00:00", domain.Monday)
	testutil.SeedClosedEntry(t, db, a.ID, entryStart, 4*time.Hour)
	testutil.SeedClosedEntry(t, db, b.ID, entryStart, 6*time.Hour)

	res, err := newReports(t, db, entryStart.Add(8*time.Hour)).TeamWeeklyHours(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 16, res.Days[0].Scheduled, 1e-9)
	assert.InDelta(t, 10, res.Days[0].Worked, 1e-9)
}

func TestYearToDate_FullWeekSinceJanuary(t *testing.T) {
	db := testutil.NewTestDB(t)
	w := testutil.SeedWorker(t, db, "Ana")
	testutil.SeedSchedule(t, db, w.ID, "09:00:00", "17:00:00", domain.Monday, domain.Saturday)

	// An entry from a previous week still counts year-to-date.
	testutil.SeedClosedEntry(t, db, w.ID, entryStart.AddDate(0, 0, -7), 3*time.Hour)

	res, err := newReports(t, db, entryStart).YearToDate(context.Background(), w.ID)
	require.NoError(t, err)
	require.Len(t, res.Days, 7)
	assert.InDelta(t, 3, res.Days[0].Worked, 1e-9)
	assert.InDelta(t, 8, res.Days[5].Scheduled, 1e-9, "Saturday allotment shows in the full-week view")
}
