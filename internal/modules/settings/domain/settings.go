package domain

import (
	"fmt"
	"time"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func (t Theme) Validate() error {
	switch t {
	case ThemeLight, ThemeDark:
		return nil
	default:
		return fmt.Errorf("unsupported theme %q", string(t))
	}
}

type Settings struct {
	TargetDate time.Time `json:"targetDateISO"`
	Theme      Theme     `json:"theme"`
	Compact    bool      `json:"compact"`
}

// Default targets 3 May 2026, 09:00 IST.
func Default() Settings {
	return Settings{
		TargetDate: time.Date(2026, time.May, 3, 9, 0, 0, 0, time.FixedZone("IST", 5*3600+30*60)),
		Theme:      ThemeLight,
		Compact:    false,
	}
}

func (s Settings) Validate() error {
	if s.TargetDate.IsZero() {
		return fmt.Errorf("target date is required")
	}
	return s.Theme.Validate()
}

type Countdown struct {
	Days    int
	Hours   int
	Minutes int
	Passed  bool
}

// CountdownTo splits the time left until target into whole days, hours and
// minutes. Once the target has passed every part is zero.
func CountdownTo(target, now time.Time) Countdown {
	left := target.Sub(now)
	if left <= 0 {
		return Countdown{Passed: true}
	}
	return Countdown{
		Days:    int(left / (24 * time.Hour)),
		Hours:   int(left % (24 * time.Hour) / time.Hour),
		Minutes: int(left % time.Hour / time.Minute),
	}
}
