package db

import (
	"database/sql"
	"fmt"
)

// migrations are applied in order on every open; each statement is written
// to be idempotent.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS workers (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		archived   INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS schedules (
		id         TEXT PRIMARY KEY,
		worker_id  TEXT NOT NULL REFERENCES workers(id) ON DELETE CASCADE,
		days       TEXT NOT NULL,
		start_time TEXT NOT NULL,
		end_time   TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_schedules_worker ON schedules(worker_id)`,

	`CREATE TABLE IF NOT EXISTS entries (
		id         TEXT PRIMARY KEY,
		worker_id  TEXT NOT NULL REFERENCES workers(id) ON DELETE CASCADE,
		project_id TEXT NOT NULL DEFAULT '',
		status     INTEGER NOT NULL DEFAULT 0,
		start_time TEXT NOT NULL,
		end_time   TEXT,
		suspicious INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_entries_worker ON entries(worker_id)`,
	`CREATE INDEX IF NOT EXISTS idx_entries_worker_status ON entries(worker_id, status)`,

	// One open entry per worker, enforced where the data lives.
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_entries_one_open
		ON entries(worker_id) WHERE status = 0`,

	// End-of-shift reminder flags, one per worker per shift date.
	`CREATE TABLE IF NOT EXISTS shift_reminders (
		worker_id  TEXT NOT NULL REFERENCES workers(id) ON DELETE CASCADE,
		shift_date TEXT NOT NULL,
		sent_at    TEXT NOT NULL,
		PRIMARY KEY (worker_id, shift_date)
	)`,
}

// Migrate applies all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
