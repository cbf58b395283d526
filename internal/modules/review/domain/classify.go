package domain

import (
	"time"

	"examtrack/internal/platform/clock"
)

// IsOverdue compares instants: a task due at 00:00 today is overdue from
// 00:00:00.000000001 onwards.
func IsOverdue(task ReviewTask, now time.Time) bool {
	if task.Done() {
		return false
	}
	return now.After(task.DueAt)
}

func IsDueToday(task ReviewTask, now time.Time, loc *time.Location) bool {
	if task.Done() {
		return false
	}
	return clock.SameDay(task.DueAt, now, loc)
}

// DaysOverdue counts calendar days between the due day and today. It is
// gated by the instant-based IsOverdue, so a task due earlier today reports
// 0 while still being overdue.
func DaysOverdue(task ReviewTask, now time.Time, loc *time.Location) int {
	if !IsOverdue(task, now) {
		return 0
	}
	return clock.CalendarDaysBetween(task.DueAt, now, loc)
}
