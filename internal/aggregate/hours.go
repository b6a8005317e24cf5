// Package aggregate merges recurring schedules and closed time entries into
// the worked-vs-scheduled hour series behind every report and chart. The
// computation is pure: same input, same output, in any worker order.
package aggregate

import (
	"math"
	"time"

	"github.com/ostrella/clockwise/internal/domain"
	"github.com/ostrella/clockwise/internal/shiftwin"
)

// Workweek is the Monday–Friday set used by dashboards.
var Workweek = []domain.Weekday{
	domain.Monday, domain.Tuesday, domain.Wednesday, domain.Thursday, domain.Friday,
}

// FullWeek is the Monday–Sunday set used by year-to-date views.
var FullWeek = []domain.Weekday{
	domain.Monday, domain.Tuesday, domain.Wednesday, domain.Thursday,
	domain.Friday, domain.Saturday, domain.Sunday,
}

// DailyHours is one weekday's totals. Worked never exceeds Scheduled:
// overtime is tracked elsewhere, not by this series.
type DailyHours struct {
	Day       domain.Weekday
	Scheduled float64
	Worked    float64
	NotWorked float64
}

type Result struct {
	Days             []DailyHours
	WorkedPercent    int
	NotWorkedPercent int
}

// WorkerInput is one worker's raw data. Entries should be closed; open or
// end-less entries are ignored except for OpenEntry, whose live elapsed time
// counts toward today.
type WorkerInput struct {
	Schedules []domain.Schedule
	Entries   []domain.Entry
	OpenEntry *domain.Entry
}

type Input struct {
	Workers []WorkerInput
	Days    []domain.Weekday
	// Display decides which weekday an entry's start lands on.
	Display *time.Location
	Now     time.Time
}

type bucket struct {
	scheduled float64
	worked    float64
}

// Hours aggregates all workers into per-weekday totals plus the derived
// percentages. Multi-worker aggregation is the per-worker algorithm followed
// by a bucket-wise sum, so processing order cannot affect the result.
func Hours(in Input) Result {
	totals := make(map[domain.Weekday]bucket, len(in.Days))
	for _, w := range in.Workers {
		for day, b := range workerBuckets(w, in) {
			agg := totals[day]
			agg.scheduled += b.scheduled
			agg.worked += b.worked
			totals[day] = agg
		}
	}

	res := Result{Days: make([]DailyHours, 0, len(in.Days))}
	var sumWorked, sumScheduled float64
	for _, day := range in.Days {
		b := totals[day]
		res.Days = append(res.Days, DailyHours{
			Day:       day,
			Scheduled: b.scheduled,
			Worked:    b.worked,
			NotWorked: math.Max(b.scheduled-b.worked, 0),
		})
		sumWorked += b.worked
		sumScheduled += b.scheduled
	}

	if sumScheduled > 0 {
		res.WorkedPercent = int(math.Round(sumWorked / sumScheduled * 100))
	}
	res.NotWorkedPercent = max(100-res.WorkedPercent, 0)
	return res
}

// workerBuckets runs the single-worker algorithm: bucket worked hours by
// weekday, compute deduplicated scheduled hours, then cap worked at the
// scheduled allotment per day.
func workerBuckets(w WorkerInput, in Input) map[domain.Weekday]bucket {
	wanted := make(map[domain.Weekday]bool, len(in.Days))
	for _, d := range in.Days {
		wanted[d] = true
	}

	worked := make(map[domain.Weekday]float64)
	for _, e := range w.Entries {
		if e.IsOpen() || e.EndTime == nil {
			continue
		}
		day := domain.WeekdayOf(e.StartTime.In(in.Display))
		if !wanted[day] {
			continue
		}
		worked[day] += e.Duration().Hours()
	}
	if w.OpenEntry != nil {
		today := domain.WeekdayOf(in.Now.In(in.Display))
		if wanted[today] {
			worked[today] += in.Now.Sub(w.OpenEntry.StartTime).Hours()
		}
	}

	scheduled := scheduledHours(w.Schedules, wanted)

	out := make(map[domain.Weekday]bucket, len(in.Days))
	for day := range wanted {
		s := scheduled[day]
		out[day] = bucket{
			scheduled: s,
			worked:    math.Min(worked[day], s),
		}
	}
	return out
}

type rangeKey struct {
	day        domain.Weekday
	start, end string
}

// scheduledHours sums each schedule's cross-midnight-aware duration into
// every weekday it covers. The same (weekday, start, end) triple is counted
// once no matter how many records list it; when a day still carries more
// than one distinct range, the sum is divided by the range count to
// approximate a per-shift average. Records with malformed wall clocks add
// no constraint.
func scheduledHours(schedules []domain.Schedule, wanted map[domain.Weekday]bool) map[domain.Weekday]float64 {
	seen := make(map[rangeKey]bool)
	sums := make(map[domain.Weekday]float64)
	counts := make(map[domain.Weekday]int)

	for _, s := range schedules {
		dur, err := shiftwin.Duration(s)
		if err != nil {
			continue
		}
		for _, day := range s.Days {
			if !wanted[day] {
				continue
			}
			key := rangeKey{day: day, start: s.StartTime, end: s.EndTime}
			if seen[key] {
				continue
			}
			seen[key] = true
			sums[day] += dur.Hours()
			counts[day]++
		}
	}

	for day, n := range counts {
		if n > 1 {
			sums[day] /= float64(n)
		}
	}
	return sums
}
