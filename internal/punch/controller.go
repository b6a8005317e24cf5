// Package punch tracks one worker's live work session: the small state
// machine behind the clock-in button and the HH:MM:SS elapsed display.
// Persistence of the underlying entry is the caller's job; the controller
// only manages local timer state.
package punch

import (
	"errors"
	"fmt"
	"time"

	"github.com/ostrella/clockwise/internal/domain"
	"github.com/ostrella/clockwise/internal/shiftwin"
)

// EndOfShiftWarningLead is how far before the end of the shift the one-shot
// "shift ending soon" warning fires.
const EndOfShiftWarningLead = 5 * time.Minute

var (
	// ErrNotStartable indicates there is no valid window to start in.
	ErrNotStartable = errors.New("session cannot be started")
	// ErrAlreadyActive indicates a session is already running.
	ErrAlreadyActive = errors.New("session already active")
)

// Controller drives the session lifecycle against a computed shift window.
// A nil window (schedule fetch failed or no schedule today) freezes the
// controller: starting stays disabled until a fresh window is supplied.
type Controller struct {
	now    func() time.Time
	window *shiftwin.Result

	active    bool
	startedAt time.Time

	// reminderSent mirrors the externally persisted "reminder already
	// sent" flag; warned stops re-fires within this controller's lifetime.
	reminderSent bool
	warned       bool
}

// TickResult is the per-second display update for an active session.
type TickResult struct {
	Elapsed         string
	WarnShiftEnd    bool
	ShiftEndingSoon bool
}

func NewController(window *shiftwin.Result, reminderSent bool, now func() time.Time) *Controller {
	if now == nil {
		now = time.Now
	}
	return &Controller{now: now, window: window, reminderSent: reminderSent}
}

// State derives the current lifecycle state. Waiting means a window exists
// but its valid start is still in the future.
func (c *Controller) State() domain.SessionState {
	if c.active {
		return domain.SessionActive
	}
	if c.window != nil && c.window.CanStart && c.now().Before(c.window.ValidStartUTC) {
		return domain.SessionWaiting
	}
	return domain.SessionIdle
}

// CanStart reports whether a clock-in is allowed right now.
func (c *Controller) CanStart() bool {
	return !c.active && c.window != nil && c.window.CanStart
}

// Start begins a session and returns the recorded start instant. A start
// inside the grace period is backdated to the window's valid start, so
// just-in-time arrivals get full credit; otherwise the recorded start is now.
func (c *Controller) Start() (time.Time, error) {
	if c.active {
		return time.Time{}, ErrAlreadyActive
	}
	if c.window == nil || !c.window.CanStart {
		return time.Time{}, ErrNotStartable
	}
	start := c.now().UTC()
	if shiftwin.JustInTime(start, c.window.ValidStartUTC) {
		start = c.window.ValidStartUTC
	}
	c.active = true
	c.startedAt = start
	return start, nil
}

// Resume adopts an already-open entry, e.g. after the process restarts while
// the worker is still clocked in.
func (c *Controller) Resume(e domain.Entry) {
	c.active = true
	c.startedAt = e.StartTime
}

// Tick produces the elapsed display and, at most once, the end-of-shift
// warning. Call it every second while the session is active.
func (c *Controller) Tick() TickResult {
	if !c.active {
		return TickResult{}
	}
	now := c.now()
	res := TickResult{Elapsed: FormatElapsed(now.Sub(c.startedAt))}
	if c.window != nil && !now.After(c.window.EndOfShiftUTC) {
		res.ShiftEndingSoon = !now.Before(c.window.EndOfShiftUTC.Add(-EndOfShiftWarningLead))
		if res.ShiftEndingSoon && !c.reminderSent && !c.warned {
			c.warned = true
			res.WarnShiftEnd = true
		}
	}
	return res
}

// End finalizes the session locally. Closing the entry is delegated to the
// data layer by the caller.
func (c *Controller) End() {
	c.reset()
}

// Cancel discards the session locally. Deleting the entry is delegated to
// the data layer by the caller.
func (c *Controller) Cancel() {
	c.reset()
}

func (c *Controller) reset() {
	c.active = false
	c.startedAt = time.Time{}
}

// StartedAt returns the recorded start of the active session.
func (c *Controller) StartedAt() time.Time {
	return c.startedAt
}

// FormatElapsed renders a duration as zero-padded HH:MM:SS. Hours keep
// growing past 24; an open entry spanning days stays readable.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, total%3600/60, total%60)
}
