package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ostrella/clockwise/internal/domain"
	"github.com/ostrella/clockwise/internal/repository"
)

type workerService struct {
	workers repository.WorkerRepo
}

func NewWorkerService(workers repository.WorkerRepo) WorkerService {
	return &workerService{workers: workers}
}

func (s *workerService) Create(ctx context.Context, name string) (*domain.Worker, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("worker name is required")
	}
	w := &domain.Worker{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.workers.Create(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (s *workerService) GetByID(ctx context.Context, id string) (*domain.Worker, error) {
	return s.workers.GetByID(ctx, id)
}

func (s *workerService) List(ctx context.Context, includeArchived bool) ([]*domain.Worker, error) {
	return s.workers.List(ctx, includeArchived)
}

func (s *workerService) Archive(ctx context.Context, id string) error {
	return s.workers.Archive(ctx, id)
}
