package domain

import (
	"time"

	"examtrack/internal/platform/clock"
	"examtrack/internal/platform/id"
)

// Offsets are the review days after a study event, in ascending order.
var Offsets = [...]int{4, 7, 14, 28, 40}

// GenerateTasks schedules one review per offset, each due at local midnight
// of the event's day plus the offset in calendar days.
func GenerateTasks(event StudyEvent, loc *time.Location, ids id.Generator) []ReviewTask {
	dayStart := clock.StartOfDay(event.CreatedAt, loc)
	tasks := make([]ReviewTask, 0, len(Offsets))
	for _, offset := range Offsets {
		tasks = append(tasks, ReviewTask{
			ID:        ids.New(),
			SessionID: event.ID,
			DueAt:     clock.AddDays(dayStart, offset, loc),
		})
	}
	return tasks
}
