package punch

import (
	"testing"
	"time"

	"github.com/ostrella/clockwise/internal/domain"
	"github.com/ostrella/clockwise/internal/shiftwin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock lets tests march time forward explicitly.
type fakeClock struct {
	t time.Time
}

func (f *fakeClock) now() time.Time          { return f.t }
func (f *fakeClock) advance(d time.Duration) { f.t = f.t.Add(d) }

func testWindow() *shiftwin.Result {
	return &shiftwin.Result{
		ScheduleID:    "s1",
		ValidStartUTC: time.Date(2025, 3, 10, 13, 0, 0, 0, time.UTC),
		EndOfShiftUTC: time.Date(2025, 3, 10, 21, 0, 0, 0, time.UTC),
		CanStart:      true,
	}
}

func TestStart_JustInTimeBackdatesToValidStart(t *testing.T) {
	w := testWindow()
	clock := &fakeClock{t: w.ValidStartUTC.Add(3 * time.Minute)}
	c := NewController(w, false, clock.now)

	start, err := c.Start()
	require.NoError(t, err)
	assert.Equal(t, w.ValidStartUTC, start, "grace-period start gets full credit")
	assert.Equal(t, domain.SessionActive, c.State())
}

func TestStart_AfterGraceRecordsRealTime(t *testing.T) {
	w := testWindow()
	clock := &fakeClock{t: w.ValidStartUTC.Add(20 * time.Minute)}
	c := NewController(w, false, clock.now)

	start, err := c.Start()
	require.NoError(t, err)
	assert.Equal(t, clock.t, start)
}

func TestStart_TwiceFails(t *testing.T) {
	w := testWindow()
	clock := &fakeClock{t: w.ValidStartUTC}
	c := NewController(w, false, clock.now)

	_, err := c.Start()
	require.NoError(t, err)
	_, err = c.Start()
	assert.ErrorIs(t, err, ErrAlreadyActive)
}

func TestStart_NoWindowDisabled(t *testing.T) {
	c := NewController(nil, false, time.Now)
	assert.False(t, c.CanStart())
	_, err := c.Start()
	assert.ErrorIs(t, err, ErrNotStartable)
}

func TestState_WaitingBeforeValidStart(t *testing.T) {
	w := testWindow()
	clock := &fakeClock{t: w.ValidStartUTC.Add(-30 * time.Minute)}
	c := NewController(w, false, clock.now)
	assert.Equal(t, domain.SessionWaiting, c.State())

	clock.advance(time.Hour)
	assert.Equal(t, domain.SessionIdle, c.State())
}

func TestTick_ElapsedDisplay(t *testing.T) {
	w := testWindow()
	clock := &fakeClock{t: w.ValidStartUTC.Add(10 * time.Minute)}
	c := NewController(w, false, clock.now)
	_, err := c.Start()
	require.NoError(t, err)

	clock.advance(time.Hour + 2*time.Minute + 3*time.Second)
	assert.Equal(t, "01:02:03", c.Tick().Elapsed)
}

func TestTick_InactiveIsEmpty(t *testing.T) {
	c := NewController(testWindow(), false, time.Now)
	assert.Equal(t, TickResult{}, c.Tick())
}

func TestTick_EndOfShiftWarningFiresOnce(t *testing.T) {
	w := testWindow()
	clock := &fakeClock{t: w.ValidStartUTC}
	c := NewController(w, false, clock.now)
	_, err := c.Start()
	require.NoError(t, err)

	// Well before the end: nothing.
	clock.t = w.EndOfShiftUTC.Add(-time.Hour)
	assert.False(t, c.Tick().WarnShiftEnd)

	// Inside the last five minutes: exactly one warning across many ticks.
	clock.t = w.EndOfShiftUTC.Add(-4 * time.Minute)
	first := c.Tick()
	assert.True(t, first.WarnShiftEnd)
	assert.True(t, first.ShiftEndingSoon)
	for i := 0; i < 10; i++ {
		clock.advance(time.Second)
		tick := c.Tick()
		assert.False(t, tick.WarnShiftEnd, "warning must not re-fire")
		assert.True(t, tick.ShiftEndingSoon)
	}
}

func TestTick_WarningSuppressedWhenReminderAlreadySent(t *testing.T) {
	w := testWindow()
	clock := &fakeClock{t: w.EndOfShiftUTC.Add(-2 * time.Minute)}
	c := NewController(w, true, clock.now)
	c.Resume(domain.Entry{StartTime: w.ValidStartUTC})

	tick := c.Tick()
	assert.False(t, tick.WarnShiftEnd)
	assert.True(t, tick.ShiftEndingSoon)
}

func TestResume_AdoptsOpenEntry(t *testing.T) {
	w := testWindow()
	clock := &fakeClock{t: w.ValidStartUTC.Add(2 * time.Hour)}
	c := NewController(w, false, clock.now)
	c.Resume(domain.Entry{StartTime: w.ValidStartUTC})

	assert.Equal(t, domain.SessionActive, c.State())
	assert.Equal(t, "02:00:00", c.Tick().Elapsed)
}

func TestEndAndCancelReturnToIdle(t *testing.T) {
	w := testWindow()
	clock := &fakeClock{t: w.ValidStartUTC}
	c := NewController(w, false, clock.now)

	_, err := c.Start()
	require.NoError(t, err)
	c.End()
	assert.Equal(t, domain.SessionIdle, c.State())

	_, err = c.Start()
	require.NoError(t, err)
	c.Cancel()
	assert.Equal(t, domain.SessionIdle, c.State())
}

func TestFormatElapsed(t *testing.T) {
	assert.Equal(t, "00:00:00", FormatElapsed(0))
	assert.Equal(t, "00:00:09", FormatElapsed(9*time.Second))
	assert.Equal(t, "00:59:59", FormatElapsed(59*time.Minute+59*time.Second))
	assert.Equal(t, "26:00:00", FormatElapsed(26*time.Hour))
	assert.Equal(t, "00:00:00", FormatElapsed(-time.Second))
}
