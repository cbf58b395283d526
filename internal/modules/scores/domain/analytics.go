package domain

import (
	"slices"
	"time"

	"examtrack/internal/platform/exam"
)

// SortNewestFirst orders entries by date, latest first, keeping the input
// order for equal dates.
func SortNewestFirst(entries []TestEntry) []TestEntry {
	out := slices.Clone(entries)
	slices.SortStableFunc(out, func(a, b TestEntry) int {
		return b.Date.Compare(a.Date)
	})
	return out
}

// Recent keeps entries dated at or after cutoff.
func Recent(entries []TestEntry, cutoff time.Time) []TestEntry {
	out := []TestEntry{}
	for _, e := range entries {
		if !e.Date.Before(cutoff) {
			out = append(out, e)
		}
	}
	return out
}

// AveragePercent is the mean overall percentage, 0 for no entries.
func AveragePercent(entries []TestEntry) float64 {
	if len(entries) == 0 {
		return 0
	}
	total := 0.0
	for _, e := range entries {
		total += e.Percent()
	}
	return total / float64(len(entries))
}

type SubjectPerformance struct {
	Subject exam.Subject
	Average float64
	Count   int
}

// Performance averages each subject's score against a third of the overall
// maximum, over the entries that recorded that subject.
func Performance(entries []TestEntry) []SubjectPerformance {
	out := make([]SubjectPerformance, 0, len(exam.Subjects))
	for _, subject := range exam.Subjects {
		p := SubjectPerformance{Subject: subject}
		total := 0.0
		for _, e := range entries {
			score, ok := e.SubjectScore(subject)
			if !ok {
				continue
			}
			total += score / (e.MaxOverall / 3) * 100
			p.Count++
		}
		if p.Count > 0 {
			p.Average = total / float64(p.Count)
		}
		out = append(out, p)
	}
	return out
}
