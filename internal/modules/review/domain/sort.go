package domain

import (
	"slices"
	"time"
)

// SortTasks returns a new slice ordered as a review queue: incomplete before
// completed, overdue before not yet due, then by due instant. Ties keep their
// input order.
func SortTasks(tasks []ReviewTask, now time.Time) []ReviewTask {
	out := make([]ReviewTask, len(tasks))
	copy(out, tasks)
	slices.SortStableFunc(out, func(a, b ReviewTask) int {
		return compareTasks(a, b, now)
	})
	return out
}

func compareTasks(a, b ReviewTask, now time.Time) int {
	if a.Done() != b.Done() {
		if a.Done() {
			return 1
		}
		return -1
	}
	aOverdue, bOverdue := IsOverdue(a, now), IsOverdue(b, now)
	if aOverdue != bOverdue {
		if aOverdue {
			return -1
		}
		return 1
	}
	return a.DueAt.Compare(b.DueAt)
}
