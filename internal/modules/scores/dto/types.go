package dto

import "time"

const DateLayout = "2006-01-02"

type AddInput struct {
	// Date uses DateLayout; empty means today.
	Date           string `validate:"omitempty,datetime=2006-01-02"`
	Source         string `validate:"max=200"`
	DurationMin    int    `validate:"min=0"`
	ScoreOverall   float64
	MaxOverall     float64 `validate:"gt=0"`
	ScorePhysics   *float64
	ScoreChemistry *float64
	ScoreBiology   *float64
}

// UpdateInput changes only the fields that are set.
type UpdateInput struct {
	ID             string  `validate:"required"`
	Date           string  `validate:"omitempty,datetime=2006-01-02"`
	Source         *string `validate:"omitempty,max=200"`
	DurationMin    *int    `validate:"omitempty,min=0"`
	ScoreOverall   *float64
	MaxOverall     *float64 `validate:"omitempty,gt=0"`
	ScorePhysics   *float64
	ScoreChemistry *float64
	ScoreBiology   *float64
}

type EntryOutput struct {
	ID             string
	Date           time.Time
	Source         string
	DurationMin    int
	ScoreOverall   float64
	MaxOverall     float64
	Percent        float64
	ScorePhysics   *float64
	ScoreChemistry *float64
	ScoreBiology   *float64
}

type SubjectOutput struct {
	Subject string
	Average float64
	Count   int
}

type StatsOutput struct {
	Days     int
	Recent   int
	Average  float64
	Subjects []SubjectOutput
}
