package domain

import (
	"time"

	"examtrack/internal/platform/clock"
)

// DayLoad is the number of incomplete reviews falling on one calendar day.
type DayLoad struct {
	Day   time.Time
	Count int
}

// Forecast counts incomplete tasks for each of the next days calendar days,
// starting tomorrow.
func Forecast(tasks []ReviewTask, now time.Time, loc *time.Location, days int) []DayLoad {
	today := clock.StartOfDay(now, loc)
	out := make([]DayLoad, 0, days)
	for i := 1; i <= days; i++ {
		out = append(out, DayLoad{Day: clock.AddDays(today, i, loc)})
	}
	for _, t := range tasks {
		if t.Done() {
			continue
		}
		offset := clock.CalendarDaysBetween(today, t.DueAt, loc)
		if offset >= 1 && offset <= days {
			out[offset-1].Count++
		}
	}
	return out
}
