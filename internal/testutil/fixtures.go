package testutil

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ostrella/clockwise/internal/domain"
	"github.com/ostrella/clockwise/internal/repository"
)

// SeedWorker inserts a worker and returns it.
func SeedWorker(t *testing.T, db *sql.DB, name string) *domain.Worker {
	t.Helper()
	w := &domain.Worker{ID: uuid.New().String(), Name: name, CreatedAt: time.Now().UTC()}
	if err := repository.NewSQLiteWorkerRepo(db).Create(context.Background(), w); err != nil {
		t.Fatalf("seeding worker: %v", err)
	}
	return w
}

// SeedSchedule inserts a recurring schedule for the worker.
func SeedSchedule(t *testing.T, db *sql.DB, workerID, start, end string, days ...domain.Weekday) *domain.Schedule {
	t.Helper()
	s := &domain.Schedule{
		ID:        uuid.New().String(),
		WorkerID:  workerID,
		Days:      days,
		StartTime: start,
		EndTime:   end,
		CreatedAt: time.Now().UTC(),
	}
	if err := repository.NewSQLiteScheduleRepo(db).Create(context.Background(), s); err != nil {
		t.Fatalf("seeding schedule: %v", err)
	}
	return s
}

// SeedClosedEntry inserts a closed entry of the given length.
func SeedClosedEntry(t *testing.T, db *sql.DB, workerID string, start time.Time, d time.Duration) *domain.Entry {
	t.Helper()
	end := start.Add(d)
	e := &domain.Entry{
		ID:        uuid.New().String(),
		WorkerID:  workerID,
		Status:    domain.EntryClosed,
		StartTime: start.UTC(),
		EndTime:   &end,
		CreatedAt: time.Now().UTC(),
	}
	if err := repository.NewSQLiteEntryRepo(db).Create(context.Background(), e); err != nil {
		t.Fatalf("seeding entry: %v", err)
	}
	return e
}

// SeedSuspiciousEntry inserts a closed entry flagged for manual review.
func SeedSuspiciousEntry(t *testing.T, db *sql.DB, workerID string, start time.Time, d time.Duration) *domain.Entry {
	t.Helper()
	end := start.Add(d)
	e := &domain.Entry{
		ID:         uuid.New().String(),
		WorkerID:   workerID,
		Status:     domain.EntryClosed,
		StartTime:  start.UTC(),
		EndTime:    &end,
		Suspicious: true,
		CreatedAt:  time.Now().UTC(),
	}
	if err := repository.NewSQLiteEntryRepo(db).Create(context.Background(), e); err != nil {
		t.Fatalf("seeding suspicious entry: %v", err)
	}
	return e
}
