// Package shiftwin computes the valid clock-in/out window for a worker's
// recurring weekly schedules on a given day. Schedule wall-clock strings are
// interpreted in the company's reference timezone; results are UTC instants
// plus a display-timezone rendering of the valid start.
package shiftwin

import (
	"time"

	"github.com/ostrella/clockwise/internal/domain"
	"github.com/ostrella/clockwise/internal/tzconv"
)

// GracePeriod is the window after the valid start during which clocking in
// still counts as starting exactly on time.
const GracePeriod = 5 * time.Minute

type Input struct {
	Now       time.Time
	Schedules []domain.Schedule
	// Reference is the timezone schedule wall clocks are authored in.
	Reference *time.Location
	// Display is the timezone used to pick "today" and render local times.
	Display *time.Location
}

type Result struct {
	ScheduleID      string
	ValidStartLocal string
	ValidStartUTC   time.Time
	EndOfShiftUTC   time.Time
	JustInTime      bool
	CanStart        bool
	// Malformed lists ids of schedules skipped because their wall-clock
	// strings did not parse. Skipping means "no constraint"; the caller
	// decides whether to log.
	Malformed []string
}

// window is one schedule's [start, end] interval resolved to UTC for today.
type window struct {
	scheduleID string
	start      time.Time
	end        time.Time
}

// Compute resolves today's shift window. Among schedules covering today's
// weekday it picks the one whose window contains Now, falling back to the
// earliest-starting window if none does. (The product historically let the
// last record iterated win; picking the containing window is a deliberate
// change.)
func Compute(in Input) (Result, error) {
	if len(in.Schedules) == 0 {
		return Result{}, ErrNoScheduleDefined
	}

	today := domain.WeekdayOf(in.Now.In(in.Display))

	var res Result
	var windows []window
	for _, s := range in.Schedules {
		if !s.CoversDay(today) {
			continue
		}
		w, err := resolve(s, in.Now, in.Reference)
		if err != nil {
			res.Malformed = append(res.Malformed, s.ID)
			continue
		}
		windows = append(windows, w)
	}
	if len(windows) == 0 {
		return res, ErrNoScheduleForToday
	}

	chosen := windows[0]
	found := false
	for _, w := range windows {
		if !w.start.After(in.Now) && !w.end.Before(in.Now) {
			chosen = w
			found = true
			break
		}
	}
	if !found {
		for _, w := range windows[1:] {
			if w.start.Before(chosen.start) {
				chosen = w
			}
		}
	}

	res.ScheduleID = chosen.scheduleID
	res.ValidStartUTC = chosen.start
	res.EndOfShiftUTC = chosen.end
	res.ValidStartLocal = tzconv.FromUTC(chosen.start, in.Display)
	res.JustInTime = JustInTime(in.Now, chosen.start)
	res.CanStart = true
	return res, nil
}

// resolve turns one schedule into a UTC window bound to today's date in the
// reference timezone. An end wall clock numerically before the start means
// the shift crosses midnight, so the end lands on the following calendar day.
func resolve(s domain.Schedule, now time.Time, ref *time.Location) (window, error) {
	startClock, err := tzconv.Parse(s.StartTime)
	if err != nil {
		return window{}, err
	}
	endClock, err := tzconv.Parse(s.EndTime)
	if err != nil {
		return window{}, err
	}

	start := tzconv.ToUTC(startClock, now, ref)
	endAnchor := now
	if endClock.Seconds() < startClock.Seconds() {
		endAnchor = now.AddDate(0, 0, 1)
	}
	end := tzconv.ToUTC(endClock, endAnchor, ref)
	return window{scheduleID: s.ID, start: start, end: end}, nil
}

// JustInTime reports whether now falls inside the grace period, boundaries
// included on both sides.
func JustInTime(now, validStart time.Time) bool {
	return !now.Before(validStart) && !now.After(validStart.Add(GracePeriod))
}

// EarlyStart reports whether an entry's recorded start predates the valid
// window. Early starts are flagged for review, never blocked.
func EarlyStart(entryStart, validStart time.Time) bool {
	return !entryStart.After(validStart)
}

// Duration returns a schedule's shift length using the same cross-midnight
// rule as Compute. The result is offset-independent, so any anchor date
// serves.
func Duration(s domain.Schedule) (time.Duration, error) {
	startClock, err := tzconv.Parse(s.StartTime)
	if err != nil {
		return 0, err
	}
	endClock, err := tzconv.Parse(s.EndTime)
	if err != nil {
		return 0, err
	}
	secs := endClock.Seconds() - startClock.Seconds()
	if secs < 0 {
		secs += 24 * 3600
	}
	return time.Duration(secs) * time.Second, nil
}
