package domain

import (
	"fmt"
	"time"

	"examtrack/internal/platform/exam"
)

// TopicScore is the optional per-topic breakdown of a practice test.
type TopicScore struct {
	Subject    exam.Subject    `json:"subject"`
	ChapterID  string          `json:"chapterId"`
	TopicID    string          `json:"topicId"`
	Difficulty exam.Difficulty `json:"difficulty"`
	Correct    int             `json:"correct"`
	Total      int             `json:"total"`
}

// TestEntry is one logged practice test. Scores may be negative under
// negative marking.
type TestEntry struct {
	ID             string       `json:"id"`
	Date           time.Time    `json:"date"`
	Source         string       `json:"source,omitempty"`
	DurationMin    int          `json:"durationMin,omitempty"`
	ScoreOverall   float64      `json:"scoreOverall"`
	MaxOverall     float64      `json:"maxOverall"`
	ScorePhysics   *float64     `json:"scorePhysics,omitempty"`
	ScoreChemistry *float64     `json:"scoreChemistry,omitempty"`
	ScoreBiology   *float64     `json:"scoreBiology,omitempty"`
	ByTopic        []TopicScore `json:"byTopic,omitempty"`
}

func (e TestEntry) Validate() error {
	if e.Date.IsZero() {
		return fmt.Errorf("test date is required")
	}
	if e.MaxOverall <= 0 {
		return fmt.Errorf("max score must be positive")
	}
	if e.ScoreOverall > e.MaxOverall {
		return fmt.Errorf("score %.2f exceeds max %.2f", e.ScoreOverall, e.MaxOverall)
	}
	if e.DurationMin < 0 {
		return fmt.Errorf("duration must be non-negative")
	}
	for _, t := range e.ByTopic {
		if t.Total < 0 || t.Correct > t.Total {
			return fmt.Errorf("topic %s: %d correct of %d", t.TopicID, t.Correct, t.Total)
		}
	}
	return nil
}

// Percent is the overall score as a percentage of the maximum.
func (e TestEntry) Percent() float64 {
	return e.ScoreOverall / e.MaxOverall * 100
}

// SubjectScore returns the score recorded for subject, if any.
func (e TestEntry) SubjectScore(subject exam.Subject) (float64, bool) {
	var score *float64
	switch subject {
	case exam.Physics:
		score = e.ScorePhysics
	case exam.Chemistry:
		score = e.ScoreChemistry
	case exam.Biology:
		score = e.ScoreBiology
	}
	if score == nil {
		return 0, false
	}
	return *score, true
}
