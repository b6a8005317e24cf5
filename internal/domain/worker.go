package domain

import "time"

type Worker struct {
	ID        string
	Name      string
	Archived  bool
	CreatedAt time.Time
}
