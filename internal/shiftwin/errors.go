package shiftwin

import "errors"

var (
	// ErrNoScheduleDefined indicates the worker has no schedules at all.
	ErrNoScheduleDefined = errors.New("no schedules defined")
	// ErrNoScheduleForToday indicates schedules exist but none covers
	// today's weekday.
	ErrNoScheduleForToday = errors.New("no schedule defined for this day")
)
