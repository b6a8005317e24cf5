package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/ostrella/clockwise/internal/db"
	"github.com/ostrella/clockwise/internal/domain"
)

// SQLiteEntryRepo implements EntryRepo on SQLite. The schema's partial
// unique index guarantees at most one open entry per worker.
type SQLiteEntryRepo struct {
	db db.DBTX
}

func NewSQLiteEntryRepo(db db.DBTX) *SQLiteEntryRepo {
	return &SQLiteEntryRepo{db: db}
}

func (r *SQLiteEntryRepo) Create(ctx context.Context, e *domain.Entry) error {
	query := `INSERT INTO entries (id, worker_id, project_id, status, start_time, end_time, suspicious, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID, e.WorkerID, e.ProjectID, int(e.Status),
		e.StartTime.UTC().Format(time.RFC3339),
		timeToValue(e.EndTime),
		boolToInt(e.Suspicious),
		e.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		if e.Status == domain.EntryOpen && strings.Contains(err.Error(), "UNIQUE") {
			return fmt.Errorf("worker %s: %w", e.WorkerID, ErrOpenEntryExists)
		}
		return fmt.Errorf("inserting entry: %w", err)
	}
	return nil
}

func (r *SQLiteEntryRepo) GetOpen(ctx context.Context, workerID string) (*domain.Entry, error) {
	query := `SELECT id, worker_id, project_id, status, start_time, end_time, suspicious, created_at
		FROM entries WHERE worker_id = ? AND status = 0`
	row := r.db.QueryRowContext(ctx, query, workerID)

	e, err := scanEntryRow(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("open entry: %w", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *SQLiteEntryRepo) Close(ctx context.Context, id string, end time.Time) error {
	query := `UPDATE entries SET status = ?, end_time = ? WHERE id = ? AND status = 0`
	res, err := r.db.ExecContext(ctx, query,
		int(domain.EntryClosed), end.UTC().Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("closing entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("closing entry: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("open entry %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteEntryRepo) MarkSuspicious(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE entries SET suspicious = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("flagging entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("flagging entry: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("entry %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteEntryRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting entry: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("entry %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteEntryRepo) ListClosed(ctx context.Context, workerID string, since time.Time) (EntryFetch, error) {
	query := `SELECT id, worker_id, project_id, status, start_time, end_time, suspicious, created_at
		FROM entries
		WHERE worker_id = ? AND status != 0 AND start_time >= ?
		ORDER BY start_time`
	rows, err := r.db.QueryContext(ctx, query, workerID, since.UTC().Format(time.RFC3339))
	if err != nil {
		return EntryFetch{}, fmt.Errorf("listing closed entries: %w", err)
	}
	defer rows.Close()

	var fetch EntryFetch
	for rows.Next() {
		e, err := scanEntryRow(rows.Scan)
		if err != nil {
			return EntryFetch{}, err
		}
		if e.Suspicious {
			fetch.Suspicious = append(fetch.Suspicious, *e)
		} else {
			fetch.Entries = append(fetch.Entries, *e)
		}
	}
	return fetch, rows.Err()
}

func scanEntryRow(scan func(dest ...any) error) (*domain.Entry, error) {
	var e domain.Entry
	var status, suspicious int
	var startStr, createdStr string
	var endStr sql.NullString

	if err := scan(&e.ID, &e.WorkerID, &e.ProjectID, &status, &startStr, &endStr, &suspicious, &createdStr); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning entry: %w", err)
	}

	e.Status = domain.EntryStatus(status)
	e.Suspicious = suspicious != 0

	var err error
	if e.StartTime, err = parseTime(startStr); err != nil {
		return nil, fmt.Errorf("parsing entry start_time: %w", err)
	}
	if endStr.Valid {
		end, err := parseTime(endStr.String)
		if err != nil {
			return nil, fmt.Errorf("parsing entry end_time: %w", err)
		}
		e.EndTime = &end
	}
	if e.CreatedAt, err = parseTime(createdStr); err != nil {
		return nil, fmt.Errorf("parsing entry created_at: %w", err)
	}
	return &e, nil
}
