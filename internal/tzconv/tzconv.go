// Package tzconv converts between UTC instants and wall-clock strings in a
// named IANA timezone. Conversions go through time.Date in the target
// location, so the DST offset in effect on the given calendar date is
// applied, never a fixed offset.
package tzconv

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrMalformedClock indicates a time string that is not parseable in any
// accepted form. Callers treat it as "no constraint", not as a failure.
var ErrMalformedClock = errors.New("malformed clock time")

// clockLayouts are the accepted wall-clock forms: 24-hour with and without
// seconds, and 12-hour with an AM/PM marker.
var clockLayouts = []string{
	"15:04:05",
	"15:04",
	"3:04:05 PM",
	"3:04 PM",
	"03:04:05 PM",
	"03:04 PM",
}

// WallClock is a parsed time-of-day with no date or zone attached.
type WallClock struct {
	Hour   int
	Minute int
	Second int
}

func (w WallClock) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", w.Hour, w.Minute, w.Second)
}

// Seconds returns the offset from midnight. Used for ordering two wall
// clocks numerically, e.g. to detect a shift that crosses midnight.
func (w WallClock) Seconds() int {
	return w.Hour*3600 + w.Minute*60 + w.Second
}

// Parse parses a wall-clock string. AM/PM markers are matched
// case-insensitively.
func Parse(s string) (WallClock, error) {
	trimmed := strings.TrimSpace(s)
	candidate := strings.ToUpper(trimmed)
	for _, layout := range clockLayouts {
		t, err := time.Parse(layout, candidate)
		if err != nil {
			continue
		}
		h, m, sec := t.Clock()
		return WallClock{Hour: h, Minute: m, Second: sec}, nil
	}
	return WallClock{}, fmt.Errorf("%w: %q", ErrMalformedClock, s)
}

// ToUTC binds a wall clock to the calendar date that anchor falls on as
// observed in loc, and returns the resulting instant in UTC. Binding to the
// anchor's date is a deliberate approximation: schedules carry no date
// component, so "today" is the only date the engine can attach.
func ToUTC(w WallClock, anchor time.Time, loc *time.Location) time.Time {
	y, m, d := anchor.In(loc).Date()
	return time.Date(y, m, d, w.Hour, w.Minute, w.Second, 0, loc).UTC()
}

// FromUTC renders an instant as an "HH:mm:ss" wall-clock string in loc.
func FromUTC(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("15:04:05")
}
