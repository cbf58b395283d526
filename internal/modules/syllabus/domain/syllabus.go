package domain

import (
	"fmt"
	"strings"

	"examtrack/internal/platform/exam"
)

type Status string

const (
	NotStarted Status = "not-started"
	InProgress Status = "in-progress"
	Completed  Status = "completed"
)

func (s Status) Validate() error {
	switch s {
	case NotStarted, InProgress, Completed:
		return nil
	default:
		return fmt.Errorf("unsupported status %q", string(s))
	}
}

type Topic struct {
	ID         string          `json:"id" yaml:"id"`
	Name       string          `json:"name" yaml:"name"`
	Difficulty exam.Difficulty `json:"difficulty" yaml:"difficulty"`
	Status     Status          `json:"status,omitempty" yaml:"status"`
}

type Chapter struct {
	ID         string          `json:"id" yaml:"id"`
	Name       string          `json:"name" yaml:"name"`
	Difficulty exam.Difficulty `json:"difficulty" yaml:"difficulty"`
	Topics     []Topic         `json:"topics" yaml:"topics"`
}

// Complete reports whether every topic of the chapter is completed. A
// chapter without topics is never complete.
func (c Chapter) Complete() bool {
	if len(c.Topics) == 0 {
		return false
	}
	for _, t := range c.Topics {
		if t.Status != Completed {
			return false
		}
	}
	return true
}

// Syllabus is the chapter list of one subject.
type Syllabus struct {
	Subject  exam.Subject `json:"subject" yaml:"subject"`
	Chapters []Chapter    `json:"chapters" yaml:"chapters"`
}

func (s Syllabus) Validate() error {
	if err := s.Subject.Validate(); err != nil {
		return err
	}
	for _, c := range s.Chapters {
		if strings.TrimSpace(c.Name) == "" {
			return fmt.Errorf("%s: chapter name is required", s.Subject)
		}
		if err := c.Difficulty.Validate(); err != nil {
			return fmt.Errorf("%s/%s: %w", s.Subject, c.Name, err)
		}
		for _, t := range c.Topics {
			if strings.TrimSpace(t.Name) == "" {
				return fmt.Errorf("%s/%s: topic name is required", s.Subject, c.Name)
			}
			if err := t.Difficulty.Validate(); err != nil {
				return fmt.Errorf("%s/%s/%s: %w", s.Subject, c.Name, t.Name, err)
			}
			if t.Status != "" {
				if err := t.Status.Validate(); err != nil {
					return fmt.Errorf("%s/%s/%s: %w", s.Subject, c.Name, t.Name, err)
				}
			}
		}
	}
	return nil
}

// Clone deep-copies a tree so callers can edit it freely.
func Clone(tree []Syllabus) []Syllabus {
	out := make([]Syllabus, len(tree))
	for i, s := range tree {
		out[i] = Syllabus{Subject: s.Subject, Chapters: make([]Chapter, len(s.Chapters))}
		for j, c := range s.Chapters {
			c.Topics = append([]Topic{}, c.Topics...)
			out[i].Chapters[j] = c
		}
	}
	return out
}
