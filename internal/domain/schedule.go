package domain

import "time"

// Schedule is a recurring weekly shift. StartTime and EndTime are wall-clock
// strings ("HH:mm:ss") authored in the company's reference timezone, not the
// viewer's. A worker may hold several schedules covering the same weekday
// (split shifts); each record is processed independently.
type Schedule struct {
	ID        string
	WorkerID  string
	Days      []Weekday
	StartTime string
	EndTime   string
	CreatedAt time.Time
}

// CoversDay reports whether the schedule recurs on the given weekday.
func (s *Schedule) CoversDay(d Weekday) bool {
	for _, day := range s.Days {
		if day == d {
			return true
		}
	}
	return false
}
