package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ostrella/clockwise/internal/db"
	"github.com/ostrella/clockwise/internal/domain"
	"github.com/ostrella/clockwise/internal/punch"
	"github.com/ostrella/clockwise/internal/repository"
	"github.com/ostrella/clockwise/internal/shiftwin"
)

// SuspiciousSessionCutoff is the elapsed time beyond which a clock-out is
// treated as a forgotten session: the entry still closes, but flagged for
// manual review.
const SuspiciousSessionCutoff = 16 * time.Hour

type attendanceService struct {
	workers   repository.WorkerRepo
	schedules repository.ScheduleRepo
	entries   repository.EntryRepo
	reminders repository.ReminderRepo
	uow       db.UnitOfWork
	reference *time.Location
	display   *time.Location
	obs       Observer
	now       func() time.Time
}

// NewAttendanceService wires the clock-in/out engine against the data layer.
// now may be nil; tests inject a fixed clock.
func NewAttendanceService(
	workers repository.WorkerRepo,
	schedules repository.ScheduleRepo,
	entries repository.EntryRepo,
	reminders repository.ReminderRepo,
	uow db.UnitOfWork,
	reference, display *time.Location,
	obs Observer,
	now func() time.Time,
) AttendanceService {
	return &attendanceService{
		workers:   workers,
		schedules: schedules,
		entries:   entries,
		reminders: reminders,
		uow:       uow,
		reference: reference,
		display:   display,
		obs:       observerOrNoop(obs),
		now:       nowOrDefault(now),
	}
}

// computeWindow fetches the worker's schedules and resolves today's window.
// A fetch failure is returned as-is (the caller freezes canStart); the two
// no-schedule conditions come back as the window error.
func (s *attendanceService) computeWindow(ctx context.Context, workerID string) (*shiftwin.Result, error, error) {
	schedules, err := s.schedules.ListByWorker(ctx, workerID)
	if err != nil {
		return nil, nil, fmt.Errorf("fetching schedules: %w", err)
	}

	win, winErr := shiftwin.Compute(shiftwin.Input{
		Now:       s.now(),
		Schedules: schedules,
		Reference: s.reference,
		Display:   s.display,
	})
	for _, id := range win.Malformed {
		s.obs.Observe(ctx, Event{
			Name:   "schedule_time_malformed",
			Err:    shiftwinMalformed(id),
			Fields: map[string]any{"worker_id": workerID, "schedule_id": id},
		})
	}
	if winErr != nil {
		return nil, winErr, nil
	}
	return &win, nil, nil
}

func shiftwinMalformed(id string) error {
	return fmt.Errorf("schedule %s has a malformed wall-clock string", id)
}

func (s *attendanceService) Status(ctx context.Context, workerID string) (*AttendanceStatus, error) {
	worker, err := s.workers.GetByID(ctx, workerID)
	if err != nil {
		return nil, err
	}

	win, winErr, err := s.computeWindow(ctx, workerID)
	if err != nil {
		return nil, err
	}

	open, err := s.entries.GetOpen(ctx, workerID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("fetching open entry: %w", err)
	}

	reminderSent := false
	if win != nil {
		reminderSent, err = s.reminders.WasSent(ctx, workerID, s.shiftDate(win))
		if err != nil {
			return nil, err
		}
	}

	ctrl := punch.NewController(win, reminderSent, s.now)
	if open != nil {
		ctrl.Resume(*open)
	}
	tick := ctrl.Tick()

	status := &AttendanceStatus{
		Worker:          worker,
		Window:          win,
		WindowErr:       winErr,
		State:           ctrl.State(),
		OpenEntry:       open,
		Elapsed:         tick.Elapsed,
		CanStart:        ctrl.CanStart(),
		ShiftEndingSoon: tick.ShiftEndingSoon,
	}
	if open != nil && win != nil {
		status.EarlyStart = shiftwin.EarlyStart(open.StartTime, win.ValidStartUTC)
	}

	if tick.WarnShiftEnd {
		if err := s.reminders.MarkSent(ctx, workerID, s.shiftDate(win), s.now()); err != nil {
			return nil, err
		}
		status.NotifyShiftEnd = true
		s.obs.Observe(ctx, Event{
			Name:    "shift_end_reminder",
			Success: true,
			Fields:  map[string]any{"worker_id": workerID},
		})
	}
	return status, nil
}

func (s *attendanceService) ClockIn(ctx context.Context, workerID, projectID string) (*domain.Entry, error) {
	if _, err := s.workers.GetByID(ctx, workerID); err != nil {
		return nil, err
	}
	if _, err := s.entries.GetOpen(ctx, workerID); err == nil {
		return nil, ErrAlreadyClockedIn
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("fetching open entry: %w", err)
	}

	win, winErr, err := s.computeWindow(ctx, workerID)
	if err != nil {
		return nil, err
	}
	if winErr != nil {
		return nil, winErr
	}

	ctrl := punch.NewController(win, false, s.now)
	start, err := ctrl.Start()
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	entry := &domain.Entry{
		ID:        uuid.New().String(),
		WorkerID:  workerID,
		ProjectID: projectID,
		Status:    domain.EntryOpen,
		StartTime: start,
		CreatedAt: now,
	}
	if err := s.entries.Create(ctx, entry); err != nil {
		if errors.Is(err, repository.ErrOpenEntryExists) {
			return nil, ErrAlreadyClockedIn
		}
		return nil, err
	}

	fields := map[string]any{
		"worker_id": workerID,
		"backdated": !start.Equal(now),
	}
	if shiftwin.EarlyStart(start, win.ValidStartUTC) {
		fields["early_start"] = true
	}
	s.obs.Observe(ctx, Event{Name: "clock_in", Success: true, Fields: fields})
	return entry, nil
}

func (s *attendanceService) ClockOut(ctx context.Context, workerID string) (*domain.Entry, error) {
	open, err := s.entries.GetOpen(ctx, workerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotClockedIn
		}
		return nil, fmt.Errorf("fetching open entry: %w", err)
	}

	end := s.now().UTC()
	suspicious := end.Sub(open.StartTime) > SuspiciousSessionCutoff
	if suspicious {
		err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
			txEntries := repository.NewSQLiteEntryRepo(tx)
			if err := txEntries.Close(ctx, open.ID, end); err != nil {
				return err
			}
			return txEntries.MarkSuspicious(ctx, open.ID)
		})
	} else {
		err = s.entries.Close(ctx, open.ID, end)
	}
	if err != nil {
		return nil, err
	}

	open.Status = domain.EntryClosed
	open.EndTime = &end
	open.Suspicious = suspicious
	s.obs.Observe(ctx, Event{
		Name:    "clock_out",
		Success: true,
		Fields: map[string]any{
			"worker_id":  workerID,
			"minutes":    int(end.Sub(open.StartTime).Minutes()),
			"suspicious": suspicious,
		},
	})
	return open, nil
}

func (s *attendanceService) Cancel(ctx context.Context, workerID string) error {
	open, err := s.entries.GetOpen(ctx, workerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotClockedIn
		}
		return fmt.Errorf("fetching open entry: %w", err)
	}
	if err := s.entries.Delete(ctx, open.ID); err != nil {
		return err
	}
	s.obs.Observe(ctx, Event{
		Name:    "clock_cancel",
		Success: true,
		Fields:  map[string]any{"worker_id": workerID},
	})
	return nil
}

func (s *attendanceService) History(ctx context.Context, workerID string, since time.Time) ([]domain.Entry, []domain.Entry, error) {
	if _, err := s.workers.GetByID(ctx, workerID); err != nil {
		return nil, nil, err
	}
	fetch, err := s.entries.ListClosed(ctx, workerID, since)
	if err != nil {
		return nil, nil, fmt.Errorf("fetching entries: %w", err)
	}
	return fetch.Entries, fetch.Suspicious, nil
}

// shiftDate keys the one-shot reminder flag: the shift's start date as seen
// in the display timezone.
func (s *attendanceService) shiftDate(win *shiftwin.Result) string {
	return win.ValidStartUTC.In(s.display).Format("2006-01-02")
}
