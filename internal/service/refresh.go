package service

import (
	"context"
	"time"

	"github.com/ostrella/clockwise/internal/aggregate"
)

// Snapshot is one generation-tagged aggregation result. Generations increase
// with every recomputation; consumers can rely on never seeing them move
// backwards.
type Snapshot struct {
	Generation uint64
	Result     *aggregate.Result
	Err        error
	At         time.Time
}

// Refresher re-runs an aggregation on a fixed cadence for near-real-time
// dashboards. Each run is tagged with a generation counter; a slow run that
// finishes after a newer one is discarded instead of overwriting it.
type Refresher struct {
	interval time.Duration
	compute  func(ctx context.Context) (*aggregate.Result, error)
	obs      Observer
	now      func() time.Time
}

func NewRefresher(
	interval time.Duration,
	compute func(ctx context.Context) (*aggregate.Result, error),
	obs Observer,
	now func() time.Time,
) *Refresher {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Refresher{
		interval: interval,
		compute:  compute,
		obs:      observerOrNoop(obs),
		now:      nowOrDefault(now),
	}
}

// Run computes once immediately, then on every tick, invoking deliver for
// each fresh snapshot. It blocks until ctx is cancelled.
func (r *Refresher) Run(ctx context.Context, deliver func(Snapshot)) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	results := make(chan Snapshot)
	var generation, delivered uint64

	launch := func() {
		generation++
		gen := generation
		go func() {
			res, err := r.compute(ctx)
			snap := Snapshot{Generation: gen, Result: res, Err: err, At: r.now()}
			select {
			case results <- snap:
			case <-ctx.Done():
			}
		}()
	}

	launch()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			launch()
		case snap := <-results:
			if snap.Generation < delivered {
				r.obs.Observe(ctx, Event{
					Name:   "aggregation_stale_dropped",
					Fields: map[string]any{"generation": snap.Generation, "delivered": delivered},
				})
				continue
			}
			delivered = snap.Generation
			deliver(snap)
		}
	}
}
