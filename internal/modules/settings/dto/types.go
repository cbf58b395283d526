package dto

import "time"

type SettingsOutput struct {
	TargetDate time.Time
	Theme      string
	Compact    bool
}

type UpdateInput struct {
	// TargetDate is RFC 3339, e.g. 2026-05-03T09:00:00+05:30.
	TargetDate string  `validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Theme      *string `validate:"omitempty,oneof=light dark"`
	Compact    *bool
}

type CountdownOutput struct {
	TargetDate time.Time
	Days       int
	Hours      int
	Minutes    int
	Passed     bool
}
