package repository

import (
	"context"
	"time"

	"github.com/ostrella/clockwise/internal/domain"
)

// EntryFetch is the shape entry queries return: regular closed entries plus
// the ones flagged for manual review. Suspicious entries are passed through
// untouched; nothing downstream reinterprets them.
type EntryFetch struct {
	Entries    []domain.Entry
	Suspicious []domain.Entry
}

type WorkerRepo interface {
	Create(ctx context.Context, w *domain.Worker) error
	GetByID(ctx context.Context, id string) (*domain.Worker, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Worker, error)
	Archive(ctx context.Context, id string) error
}

type ScheduleRepo interface {
	Create(ctx context.Context, s *domain.Schedule) error
	GetByID(ctx context.Context, id string) (*domain.Schedule, error)
	ListByWorker(ctx context.Context, workerID string) ([]domain.Schedule, error)
	Delete(ctx context.Context, id string) error
}

type EntryRepo interface {
	Create(ctx context.Context, e *domain.Entry) error
	// GetOpen returns the worker's open entry, or ErrNotFound.
	GetOpen(ctx context.Context, workerID string) (*domain.Entry, error)
	Close(ctx context.Context, id string, end time.Time) error
	// MarkSuspicious flags a closed entry for manual review.
	MarkSuspicious(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	// ListClosed returns the worker's closed entries started at or after
	// since, split into regular and suspicious.
	ListClosed(ctx context.Context, workerID string, since time.Time) (EntryFetch, error)
}

// ReminderRepo persists the one-shot "shift ending" reminder flag per worker
// and shift date, so the warning survives process restarts.
type ReminderRepo interface {
	WasSent(ctx context.Context, workerID, shiftDate string) (bool, error)
	MarkSent(ctx context.Context, workerID, shiftDate string, at time.Time) error
}
