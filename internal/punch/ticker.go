package punch

import (
	"context"
	"time"

	"github.com/ostrella/clockwise/internal/domain"
)

// RunTicker drives the controller's Tick on a fixed cadence, invoking fn
// with each result. It returns when ctx is cancelled or the session leaves
// the active state.
func RunTicker(ctx context.Context, c *Controller, interval time.Duration, fn func(TickResult)) {
	if interval <= 0 {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if c.State() != domain.SessionActive {
				return
			}
			fn(c.Tick())
		}
	}
}
