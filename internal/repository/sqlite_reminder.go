package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/ostrella/clockwise/internal/db"
)

// SQLiteReminderRepo implements ReminderRepo on SQLite.
type SQLiteReminderRepo struct {
	db db.DBTX
}

func NewSQLiteReminderRepo(db db.DBTX) *SQLiteReminderRepo {
	return &SQLiteReminderRepo{db: db}
}

func (r *SQLiteReminderRepo) WasSent(ctx context.Context, workerID, shiftDate string) (bool, error) {
	query := `SELECT COUNT(*) FROM shift_reminders WHERE worker_id = ? AND shift_date = ?`
	var n int
	if err := r.db.QueryRowContext(ctx, query, workerID, shiftDate).Scan(&n); err != nil {
		return false, fmt.Errorf("checking reminder flag: %w", err)
	}
	return n > 0, nil
}

func (r *SQLiteReminderRepo) MarkSent(ctx context.Context, workerID, shiftDate string, at time.Time) error {
	query := `INSERT OR IGNORE INTO shift_reminders (worker_id, shift_date, sent_at) VALUES (?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, workerID, shiftDate, at.UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("marking reminder sent: %w", err)
	}
	return nil
}
