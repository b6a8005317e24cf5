package domain

import "time"

// Entry is one work session. StartTime and EndTime are UTC instants.
// EndTime is nil while the entry is open; the data layer guarantees at most
// one open entry per worker at any time.
type Entry struct {
	ID         string
	WorkerID   string
	ProjectID  string
	Status     EntryStatus
	StartTime  time.Time
	EndTime    *time.Time
	Suspicious bool
	CreatedAt  time.Time
}

// IsOpen reports whether the worker is still clocked in on this entry.
func (e *Entry) IsOpen() bool {
	return e.Status == EntryOpen
}

// Duration returns the closed entry's length, or zero for an open entry.
func (e *Entry) Duration() time.Duration {
	if e.EndTime == nil {
		return 0
	}
	return e.EndTime.Sub(e.StartTime)
}
