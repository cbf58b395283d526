package domain

import (
	"fmt"
	"strings"
	"time"

	"examtrack/internal/platform/exam"
)

// TopicRef points at one syllabus topic.
type TopicRef struct {
	ID         string          `json:"id"`
	Subject    exam.Subject    `json:"subject"`
	ChapterID  string          `json:"chapterId"`
	TopicID    string          `json:"topicId"`
	Difficulty exam.Difficulty `json:"difficulty"`
}

// TopicKey is the stable identity of a topic across study events.
func TopicKey(subject exam.Subject, chapterID, topicID string) string {
	return strings.ToLower(string(subject)) + "/" + chapterID + "/" + topicID
}

func (t TopicRef) Validate() error {
	if err := t.Subject.Validate(); err != nil {
		return err
	}
	if err := t.Difficulty.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(t.ChapterID) == "" {
		return fmt.Errorf("chapter id is required")
	}
	if strings.TrimSpace(t.TopicID) == "" {
		return fmt.Errorf("topic id is required")
	}
	return nil
}

// StudyEvent records one sitting on a topic. It is never mutated after
// creation.
type StudyEvent struct {
	ID        string    `json:"id"`
	Topic     TopicRef  `json:"topic"`
	CreatedAt time.Time `json:"createdAt"`
	Notes     string    `json:"notes,omitempty"`
}

// ReviewTask is one scheduled review of a StudyEvent. DoneAt, once set, is
// never cleared; DueAt only moves forward.
type ReviewTask struct {
	ID          string     `json:"id"`
	SessionID   string     `json:"sessionId"`
	DueAt       time.Time  `json:"dueAt"`
	DoneAt      *time.Time `json:"doneAt,omitempty"`
	SnoozeCount int        `json:"snoozeCount,omitempty"`
}

func (t ReviewTask) Done() bool {
	return t.DoneAt != nil
}

// Clone copies the task including the completion instant.
func (t ReviewTask) Clone() ReviewTask {
	if t.DoneAt != nil {
		done := *t.DoneAt
		t.DoneAt = &done
	}
	return t
}
