package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ostrella/clockwise/internal/db"
	"github.com/ostrella/clockwise/internal/domain"
)

// SQLiteWorkerRepo implements WorkerRepo on SQLite.
type SQLiteWorkerRepo struct {
	db db.DBTX
}

func NewSQLiteWorkerRepo(db db.DBTX) *SQLiteWorkerRepo {
	return &SQLiteWorkerRepo{db: db}
}

func (r *SQLiteWorkerRepo) Create(ctx context.Context, w *domain.Worker) error {
	query := `INSERT INTO workers (id, name, archived, created_at) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		w.ID, w.Name, boolToInt(w.Archived), w.CreatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting worker: %w", err)
	}
	return nil
}

func (r *SQLiteWorkerRepo) GetByID(ctx context.Context, id string) (*domain.Worker, error) {
	query := `SELECT id, name, archived, created_at FROM workers WHERE id = ?`
	return r.scanWorker(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteWorkerRepo) List(ctx context.Context, includeArchived bool) ([]*domain.Worker, error) {
	query := `SELECT id, name, archived, created_at FROM workers`
	if !includeArchived {
		query += ` WHERE archived = 0`
	}
	query += ` ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing workers: %w", err)
	}
	defer rows.Close()

	var workers []*domain.Worker
	for rows.Next() {
		var w domain.Worker
		var archived int
		var createdAt string
		if err := rows.Scan(&w.ID, &w.Name, &archived, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning worker: %w", err)
		}
		w.Archived = archived != 0
		if w.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, fmt.Errorf("parsing worker created_at: %w", err)
		}
		workers = append(workers, &w)
	}
	return workers, rows.Err()
}

func (r *SQLiteWorkerRepo) Archive(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE workers SET archived = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("archiving worker: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("archiving worker: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("worker %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteWorkerRepo) scanWorker(row *sql.Row) (*domain.Worker, error) {
	var w domain.Worker
	var archived int
	var createdAt string
	err := row.Scan(&w.ID, &w.Name, &archived, &createdAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("worker: %w", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("scanning worker: %w", err)
	}
	w.Archived = archived != 0
	if w.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("parsing worker created_at: %w", err)
	}
	return &w, nil
}
