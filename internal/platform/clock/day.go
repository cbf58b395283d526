package clock

import "time"

// StartOfDay returns local midnight of the calendar day containing t.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(location(loc))
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, local.Location())
}

// AddDays moves t by whole calendar days, keeping the local wall-clock time.
// Unlike t.Add(n*24h) it does not drift across DST transitions.
func AddDays(t time.Time, days int, loc *time.Location) time.Time {
	local := t.In(location(loc))
	return time.Date(local.Year(), local.Month(), local.Day()+days,
		local.Hour(), local.Minute(), local.Second(), local.Nanosecond(), local.Location())
}

func SameDay(a, b time.Time, loc *time.Location) bool {
	loc = location(loc)
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

// CalendarDaysBetween counts the calendar days from the day of `from` to the
// day of `to`. The result is negative when `to` is on an earlier day.
func CalendarDaysBetween(from, to time.Time, loc *time.Location) int {
	loc = location(loc)
	fy, fm, fd := from.In(loc).Date()
	ty, tm, td := to.In(loc).Date()
	start := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	end := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start) / (24 * time.Hour))
}

func location(loc *time.Location) *time.Location {
	if loc == nil {
		return time.Local
	}
	return loc
}
