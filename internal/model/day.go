package model

import (
	"fmt"
	"time"
)

// TimeOfDay is a wall-clock hour:minute value, used for the configured
// rollover time after which "today" requests are treated as tomorrow.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses a "HH:MM" string.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("parsing time of day %q: %w", s, err)
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Seconds returns the value as seconds since midnight.
func (t TimeOfDay) Seconds() int {
	return (t.Hour*60 + t.Minute) * 60
}

// DateOnly truncates an instant to its local calendar date (midnight).
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WeekdayGerman localizes Mon-Fri for presentation. The upstream never
// publishes weekend data, so the fallback is defensive only.
func WeekdayGerman(weekday time.Weekday) string {
	switch weekday {
	case time.Monday:
		return "Montag"
	case time.Tuesday:
		return "Dienstag"
	case time.Wednesday:
		return "Mittwoch"
	case time.Thursday:
		return "Donnerstag"
	case time.Friday:
		return "Freitag"
	default:
		return "Unbekannt"
	}
}
