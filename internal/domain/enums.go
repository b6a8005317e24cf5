package domain

import "time"

// Weekday is an ISO 8601 weekday id: 1 (Monday) through 7 (Sunday).
// Sunday is always 7, never 0.
type Weekday int

const (
	Monday    Weekday = 1
	Tuesday   Weekday = 2
	Wednesday Weekday = 3
	Thursday  Weekday = 4
	Friday    Weekday = 5
	Saturday  Weekday = 6
	Sunday    Weekday = 7
)

var weekdayAbbrevs = map[Weekday]string{
	Monday: "Mon", Tuesday: "Tue", Wednesday: "Wed", Thursday: "Thu",
	Friday: "Fri", Saturday: "Sat", Sunday: "Sun",
}

// Abbrev returns the three-letter English abbreviation ("Mon".."Sun").
func (d Weekday) Abbrev() string {
	return weekdayAbbrevs[d]
}

// Valid reports whether d is within the ISO 1..7 range.
func (d Weekday) Valid() bool {
	return d >= Monday && d <= Sunday
}

// WeekdayOf maps a time.Time to its ISO weekday id in the time's location.
func WeekdayOf(t time.Time) Weekday {
	wd := t.Weekday()
	if wd == time.Sunday {
		return Sunday
	}
	return Weekday(wd)
}

// EntryStatus is the lifecycle status of a time entry. Zero means the worker
// is clocked in with no end recorded; any other value means closed.
type EntryStatus int

const (
	EntryOpen   EntryStatus = 0
	EntryClosed EntryStatus = 1
)

type SessionState string

const (
	SessionIdle    SessionState = "idle"
	SessionWaiting SessionState = "waiting_to_start"
	SessionActive  SessionState = "active"
)
