package service

import (
	"context"
	"errors"
	"time"

	"github.com/ostrella/clockwise/internal/aggregate"
	"github.com/ostrella/clockwise/internal/domain"
	"github.com/ostrella/clockwise/internal/shiftwin"
)

var (
	// ErrAlreadyClockedIn indicates the worker has an open entry.
	ErrAlreadyClockedIn = errors.New("worker is already clocked in")
	// ErrNotClockedIn indicates there is no open entry to close or cancel.
	ErrNotClockedIn = errors.New("worker is not clocked in")
)

type WorkerService interface {
	Create(ctx context.Context, name string) (*domain.Worker, error)
	GetByID(ctx context.Context, id string) (*domain.Worker, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Worker, error)
	Archive(ctx context.Context, id string) error
}

type ScheduleService interface {
	Create(ctx context.Context, workerID, start, end string, days []domain.Weekday) (*domain.Schedule, error)
	ListByWorker(ctx context.Context, workerID string) ([]domain.Schedule, error)
	Delete(ctx context.Context, id string) error
}

// AttendanceStatus is the full clock-in picture for one worker, the plain
// data a presentation layer renders.
type AttendanceStatus struct {
	Worker *domain.Worker
	// Window is today's shift window; nil when WindowErr is set.
	Window *shiftwin.Result
	// WindowErr carries ErrNoScheduleDefined or ErrNoScheduleForToday.
	// Both are user-facing conditions, not failures.
	WindowErr error
	State     domain.SessionState
	OpenEntry *domain.Entry
	// Elapsed is the live HH:MM:SS display for an open entry.
	Elapsed  string
	CanStart bool
	// EarlyStart flags an open entry recorded before the valid window.
	EarlyStart bool
	// ShiftEndingSoon is true inside the last minutes before end of shift.
	ShiftEndingSoon bool
	// NotifyShiftEnd requests the one-shot end-of-shift notification. It is
	// raised at most once per worker per shift date.
	NotifyShiftEnd bool
}

type AttendanceService interface {
	Status(ctx context.Context, workerID string) (*AttendanceStatus, error)
	ClockIn(ctx context.Context, workerID, projectID string) (*domain.Entry, error)
	ClockOut(ctx context.Context, workerID string) (*domain.Entry, error)
	Cancel(ctx context.Context, workerID string) error
	// History returns closed entries started at or after since. Entries
	// flagged suspicious are split out untouched for review.
	History(ctx context.Context, workerID string, since time.Time) (regular, suspicious []domain.Entry, err error)
}

type ReportService interface {
	// WeeklyHours aggregates the current week, Monday through Friday.
	WeeklyHours(ctx context.Context, workerID string) (*aggregate.Result, error)
	// TeamWeeklyHours merges every active worker's current week.
	TeamWeeklyHours(ctx context.Context) (*aggregate.Result, error)
	// YearToDate aggregates since January 1st, Monday through Sunday.
	YearToDate(ctx context.Context, workerID string) (*aggregate.Result, error)
}
