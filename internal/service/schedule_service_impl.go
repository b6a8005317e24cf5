package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ostrella/clockwise/internal/domain"
	"github.com/ostrella/clockwise/internal/repository"
	"github.com/ostrella/clockwise/internal/tzconv"
)

type scheduleService struct {
	workers   repository.WorkerRepo
	schedules repository.ScheduleRepo
}

func NewScheduleService(workers repository.WorkerRepo, schedules repository.ScheduleRepo) ScheduleService {
	return &scheduleService{workers: workers, schedules: schedules}
}

// Create validates and stores a recurring schedule. Wall clocks are kept in
// their normalized HH:mm:ss form; a start equal to the end is rejected since
// it denotes an empty shift.
func (s *scheduleService) Create(ctx context.Context, workerID, start, end string, days []domain.Weekday) (*domain.Schedule, error) {
	if _, err := s.workers.GetByID(ctx, workerID); err != nil {
		return nil, err
	}
	if len(days) == 0 {
		return nil, fmt.Errorf("schedule needs at least one weekday")
	}
	for _, d := range days {
		if !d.Valid() {
			return nil, fmt.Errorf("invalid weekday id %d (want 1-7, Monday-Sunday)", int(d))
		}
	}

	startClock, err := tzconv.Parse(start)
	if err != nil {
		return nil, fmt.Errorf("start time: %w", err)
	}
	endClock, err := tzconv.Parse(end)
	if err != nil {
		return nil, fmt.Errorf("end time: %w", err)
	}
	if startClock == endClock {
		return nil, fmt.Errorf("start and end time must differ")
	}

	sched := &domain.Schedule{
		ID:        uuid.New().String(),
		WorkerID:  workerID,
		Days:      days,
		StartTime: startClock.String(),
		EndTime:   endClock.String(),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.schedules.Create(ctx, sched); err != nil {
		return nil, err
	}
	return sched, nil
}

func (s *scheduleService) ListByWorker(ctx context.Context, workerID string) ([]domain.Schedule, error) {
	return s.schedules.ListByWorker(ctx, workerID)
}

func (s *scheduleService) Delete(ctx context.Context, id string) error {
	return s.schedules.Delete(ctx, id)
}
