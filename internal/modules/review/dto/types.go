package dto

import "time"

type AddStudyInput struct {
	Subject   string `validate:"required,oneof=Physics Chemistry Biology"`
	ChapterID string `validate:"required"`
	TopicID   string `validate:"required"`
	// Difficulty is resolved from the syllabus when empty.
	Difficulty string `validate:"omitempty,oneof=Easy Medium Hard"`
	Notes      string `validate:"max=2000"`
}

type AddStudyOutput struct {
	EventID   string
	TopicID   string
	CreatedAt time.Time
	Tasks     []TaskOutput
}

type TaskOutput struct {
	ID          string
	SessionID   string
	TopicID     string
	Subject     string
	ChapterID   string
	Topic       string
	Difficulty  string
	DueAt       time.Time
	DoneAt      *time.Time
	SnoozeCount int
	Overdue     bool
	DueToday    bool
	DaysOverdue int
}

type SnoozeInput struct {
	TaskID string `validate:"required"`
	Days   int    `validate:"min=1"`
}

// ChangeOutput reports whether a mutation touched a task. Unknown ids and
// repeated completions come back with Changed false and no error.
type ChangeOutput struct {
	TaskID  string
	Changed bool
}

type UpcomingInput struct {
	// Days falls back to the configured window when zero.
	Days int `validate:"min=0"`
}

type SummaryOutput struct {
	DueToday     int
	Overdue      int
	Upcoming     int
	UpcomingDays int
	Completed    int
	Total        int
	Events       int
}

type ForecastInput struct {
	Days int `validate:"min=1,max=90"`
}

type DayLoadOutput struct {
	Day   time.Time
	Count int
}
