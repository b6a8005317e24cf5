package punch

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunTicker_DeliversWhileActive(t *testing.T) {
	w := testWindow()
	clock := &fakeClock{t: w.ValidStartUTC.Add(10 * time.Minute)}
	c := NewController(w, false, clock.now)
	_, err := c.Start()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var ticks atomic.Int32
	go RunTicker(ctx, c, time.Millisecond, func(TickResult) { ticks.Add(1) })

	assert.Eventually(t, func() bool { return ticks.Load() >= 3 }, time.Second, time.Millisecond)
}

func TestRunTicker_StopsWhenSessionEnds(t *testing.T) {
	w := testWindow()
	clock := &fakeClock{t: w.ValidStartUTC.Add(10 * time.Minute)}
	c := NewController(w, false, clock.now)
	_, err := c.Start()
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		RunTicker(context.Background(), c, time.Millisecond, func(TickResult) { c.End() })
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("ticker kept running after the session ended")
	}
}

func TestRunTicker_CancelledContext(t *testing.T) {
	c := NewController(testWindow(), false, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		RunTicker(ctx, c, time.Millisecond, func(TickResult) {})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("ticker ignored cancellation")
	}
}
