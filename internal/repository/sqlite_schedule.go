package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ostrella/clockwise/internal/db"
	"github.com/ostrella/clockwise/internal/domain"
)

// SQLiteScheduleRepo implements ScheduleRepo on SQLite.
type SQLiteScheduleRepo struct {
	db db.DBTX
}

func NewSQLiteScheduleRepo(db db.DBTX) *SQLiteScheduleRepo {
	return &SQLiteScheduleRepo{db: db}
}

func (r *SQLiteScheduleRepo) Create(ctx context.Context, s *domain.Schedule) error {
	query := `INSERT INTO schedules (id, worker_id, days, start_time, end_time, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID, s.WorkerID, encodeDays(s.Days), s.StartTime, s.EndTime,
		s.CreatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting schedule: %w", err)
	}
	return nil
}

func (r *SQLiteScheduleRepo) GetByID(ctx context.Context, id string) (*domain.Schedule, error) {
	query := `SELECT id, worker_id, days, start_time, end_time, created_at
		FROM schedules WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	s, err := scanScheduleRow(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("schedule: %w", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *SQLiteScheduleRepo) ListByWorker(ctx context.Context, workerID string) ([]domain.Schedule, error) {
	query := `SELECT id, worker_id, days, start_time, end_time, created_at
		FROM schedules WHERE worker_id = ? ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query, workerID)
	if err != nil {
		return nil, fmt.Errorf("listing schedules: %w", err)
	}
	defer rows.Close()

	var schedules []domain.Schedule
	for rows.Next() {
		s, err := scanScheduleRow(rows.Scan)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, *s)
	}
	return schedules, rows.Err()
}

func (r *SQLiteScheduleRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM schedules WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting schedule: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting schedule: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("schedule %s: %w", id, ErrNotFound)
	}
	return nil
}

func scanScheduleRow(scan func(dest ...any) error) (*domain.Schedule, error) {
	var s domain.Schedule
	var days, createdAt string
	if err := scan(&s.ID, &s.WorkerID, &days, &s.StartTime, &s.EndTime, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning schedule: %w", err)
	}
	decoded, err := decodeDays(days)
	if err != nil {
		return nil, err
	}
	s.Days = decoded
	if s.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("parsing schedule created_at: %w", err)
	}
	return &s, nil
}
