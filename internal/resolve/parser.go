// Package resolve turns symbolic day requests into concrete calendar dates
// and selects the best matching date from the upstream availability list.
// Everything in this package is a pure function of its inputs; callers
// inject the current instant.
package resolve

import (
	"fmt"
	"time"

	"github.com/speiseplan/mensabot/internal/model"
)

// InvalidDayError indicates an unrecognized day argument.
type InvalidDayError struct {
	Token string
}

func (e *InvalidDayError) Error() string {
	return fmt.Sprintf("invalid day argument %q", e.Token)
}

// ParseDay converts a symbolic day token into a calendar date relative to
// now. Weekday tokens resolve to the next occurrence of that weekday; if
// now already falls on it, today is returned.
func ParseDay(token string, now time.Time) (time.Time, error) {
	today := model.DateOnly(now)

	switch token {
	case "today":
		return today, nil
	case "tomorrow":
		return today.AddDate(0, 0, 1), nil
	case "dayaftertomorrow":
		return today.AddDate(0, 0, 2), nil
	case "monday":
		return nextWeekday(today, time.Monday), nil
	case "tuesday":
		return nextWeekday(today, time.Tuesday), nil
	case "wednesday":
		return nextWeekday(today, time.Wednesday), nil
	case "thursday":
		return nextWeekday(today, time.Thursday), nil
	case "friday":
		return nextWeekday(today, time.Friday), nil
	default:
		return time.Time{}, &InvalidDayError{Token: token}
	}
}

func nextWeekday(today time.Time, weekday time.Weekday) time.Time {
	days := (int(weekday) - int(today.Weekday()) + 7) % 7
	return today.AddDate(0, 0, days)
}
