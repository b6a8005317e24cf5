package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ostrella/clockwise/internal/aggregate"
	"github.com/ostrella/clockwise/internal/domain"
	"github.com/ostrella/clockwise/internal/repository"
)

type reportService struct {
	workers   repository.WorkerRepo
	schedules repository.ScheduleRepo
	entries   repository.EntryRepo
	display   *time.Location
	now       func() time.Time
}

func NewReportService(
	workers repository.WorkerRepo,
	schedules repository.ScheduleRepo,
	entries repository.EntryRepo,
	display *time.Location,
	now func() time.Time,
) ReportService {
	return &reportService{
		workers:   workers,
		schedules: schedules,
		entries:   entries,
		display:   display,
		now:       nowOrDefault(now),
	}
}

func (s *reportService) WeeklyHours(ctx context.Context, workerID string) (*aggregate.Result, error) {
	now := s.now()
	input, err := s.workerInput(ctx, workerID, startOfWeek(now, s.display))
	if err != nil {
		return nil, err
	}
	res := aggregate.Hours(aggregate.Input{
		Workers: []aggregate.WorkerInput{*input},
		Days:    aggregate.Workweek,
		Display: s.display,
		Now:     now,
	})
	return &res, nil
}

func (s *reportService) TeamWeeklyHours(ctx context.Context) (*aggregate.Result, error) {
	now := s.now()
	workers, err := s.workers.List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("fetching workers: %w", err)
	}

	since := startOfWeek(now, s.display)
	inputs := make([]aggregate.WorkerInput, 0, len(workers))
	for _, w := range workers {
		input, err := s.workerInput(ctx, w.ID, since)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, *input)
	}

	res := aggregate.Hours(aggregate.Input{
		Workers: inputs,
		Days:    aggregate.Workweek,
		Display: s.display,
		Now:     now,
	})
	return &res, nil
}

func (s *reportService) YearToDate(ctx context.Context, workerID string) (*aggregate.Result, error) {
	now := s.now()
	year := now.In(s.display).Year()
	since := time.Date(year, 1, 1, 0, 0, 0, 0, s.display)

	input, err := s.workerInput(ctx, workerID, since)
	if err != nil {
		return nil, err
	}
	res := aggregate.Hours(aggregate.Input{
		Workers: []aggregate.WorkerInput{*input},
		Days:    aggregate.FullWeek,
		Display: s.display,
		Now:     now,
	})
	return &res, nil
}

// workerInput gathers one worker's schedules, closed entries since the given
// instant, and any open entry. Suspicious entries are excluded from the
// series; they are surfaced elsewhere for review.
func (s *reportService) workerInput(ctx context.Context, workerID string, since time.Time) (*aggregate.WorkerInput, error) {
	schedules, err := s.schedules.ListByWorker(ctx, workerID)
	if err != nil {
		return nil, fmt.Errorf("fetching schedules: %w", err)
	}
	fetch, err := s.entries.ListClosed(ctx, workerID, since)
	if err != nil {
		return nil, fmt.Errorf("fetching entries: %w", err)
	}
	open, err := s.entries.GetOpen(ctx, workerID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("fetching open entry: %w", err)
	}
	return &aggregate.WorkerInput{
		Schedules: schedules,
		Entries:   fetch.Entries,
		OpenEntry: open,
	}, nil
}

// startOfWeek returns Monday 00:00 of now's week in the given location.
func startOfWeek(now time.Time, loc *time.Location) time.Time {
	local := now.In(loc)
	offset := int(domain.WeekdayOf(local) - domain.Monday)
	y, m, d := local.AddDate(0, 0, -offset).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
