package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ostrella/clockwise/internal/aggregate"
	"github.com/ostrella/clockwise/internal/domain"
	"github.com/ostrella/clockwise/internal/service"
	"github.com/ostrella/clockwise/internal/shiftwin"
)

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable(
		[]string{"ID", "Name"},
		[][]string{
			{"1", "Ada"},
			{"22", "Grace Hopper"},
		},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "ID")
	assert.Contains(t, lines[0], "Name")
	assert.Contains(t, lines[3], "Grace Hopper")
}

func TestRenderTable_Empty(t *testing.T) {
	assert.Equal(t, "", RenderTable(nil, nil))
}

func TestRenderProgress_Bounds(t *testing.T) {
	assert.Contains(t, RenderProgress(0, 10), "0%")
	assert.Contains(t, RenderProgress(0.5, 10), "50%")
	assert.Contains(t, RenderProgress(1.5, 10), "100%")
}

func TestFormatHoursReport(t *testing.T) {
	r := &aggregate.Result{
		Days: []aggregate.DailyHours{
			{Day: domain.Monday, Scheduled: 8, Worked: 6, NotWorked: 2},
			{Day: domain.Tuesday, Scheduled: 8, Worked: 8},
		},
		WorkedPercent:    88,
		NotWorkedPercent: 12,
	}

	out := FormatHoursReport("This week", r)
	assert.Contains(t, out, "This week")
	assert.Contains(t, out, "Mon")
	assert.Contains(t, out, "Tue")
	assert.Contains(t, out, "14.0h of 16.0h")
	assert.Contains(t, out, "88%")
	assert.Contains(t, out, "12%")
}

func TestFormatStatus_NoScheduleToday(t *testing.T) {
	st := &service.AttendanceStatus{
		Worker:    &domain.Worker{Name: "Ada"},
		WindowErr: shiftwin.ErrNoScheduleForToday,
		State:     domain.SessionIdle,
	}

	out := FormatStatus(st, time.UTC)
	assert.Contains(t, out, "Ada")
	assert.Contains(t, out, "no shift scheduled today")
}

func TestFormatStatus_OpenEntry(t *testing.T) {
	start := time.Date(2025, 3, 10, 13, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 10, 21, 0, 0, 0, time.UTC)
	st := &service.AttendanceStatus{
		Worker: &domain.Worker{Name: "Ada"},
		Window: &shiftwin.Result{
			ValidStartLocal: "09:00:00",
			ValidStartUTC:   start,
			EndOfShiftUTC:   end,
		},
		State:     domain.SessionActive,
		OpenEntry: &domain.Entry{StartTime: start},
		Elapsed:   "02:15:00",
	}

	out := FormatStatus(st, time.UTC)
	assert.Contains(t, out, "02:15:00")
	assert.Contains(t, out, "13:00:00")
}

func TestFormatStatus_EndingSoon(t *testing.T) {
	st := &service.AttendanceStatus{
		Worker:          &domain.Worker{Name: "Ada"},
		WindowErr:       shiftwin.ErrNoScheduleForToday,
		State:           domain.SessionActive,
		ShiftEndingSoon: true,
	}

	out := FormatStatus(st, time.UTC)
	assert.Contains(t, out, "shift ends in under 5 minutes")
}
