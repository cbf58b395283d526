package domain

import (
	"strings"

	"examtrack/internal/platform/exam"
)

// Filter narrows a tree. An empty subject or difficulty matches all. A
// chapter stays when its difficulty matches and either its name or one of
// its topic names contains search; its topics are narrowed the same way.
// Subjects left without chapters are dropped.
func Filter(tree []Syllabus, search string, subject exam.Subject, difficulty exam.Difficulty) []Syllabus {
	needle := strings.ToLower(strings.TrimSpace(search))
	contains := func(name string) bool {
		return needle == "" || strings.Contains(strings.ToLower(name), needle)
	}
	out := []Syllabus{}
	for _, s := range tree {
		if subject != "" && s.Subject != subject {
			continue
		}
		chapters := []Chapter{}
		for _, c := range s.Chapters {
			if difficulty != "" && c.Difficulty != difficulty {
				continue
			}
			if !contains(c.Name) && !anyTopic(c.Topics, contains) {
				continue
			}
			topics := []Topic{}
			for _, t := range c.Topics {
				if (difficulty == "" || t.Difficulty == difficulty) && contains(t.Name) {
					topics = append(topics, t)
				}
			}
			c.Topics = topics
			chapters = append(chapters, c)
		}
		if len(chapters) > 0 {
			out = append(out, Syllabus{Subject: s.Subject, Chapters: chapters})
		}
	}
	return out
}

func anyTopic(topics []Topic, match func(string) bool) bool {
	for _, t := range topics {
		if match(t.Name) {
			return true
		}
	}
	return false
}

// FindTopic locates a topic by subject, chapter id and topic id.
func FindTopic(tree []Syllabus, subject exam.Subject, chapterID, topicID string) (Chapter, Topic, bool) {
	for _, s := range tree {
		if s.Subject != subject {
			continue
		}
		for _, c := range s.Chapters {
			if c.ID != chapterID {
				continue
			}
			for _, t := range c.Topics {
				if t.ID == topicID {
					return c, t, true
				}
			}
		}
	}
	return Chapter{}, Topic{}, false
}

// Progress counts completed chapters of one subject.
type Progress struct {
	Subject           exam.Subject
	Chapters          int
	CompletedChapters int
	Topics            int
	CompletedTopics   int
}

func SubjectProgress(s Syllabus) Progress {
	p := Progress{Subject: s.Subject, Chapters: len(s.Chapters)}
	for _, c := range s.Chapters {
		if c.Complete() {
			p.CompletedChapters++
		}
		p.Topics += len(c.Topics)
		for _, t := range c.Topics {
			if t.Status == Completed {
				p.CompletedTopics++
			}
		}
	}
	return p
}
