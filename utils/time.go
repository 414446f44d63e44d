package utils

import (
	"errors"
	"time"
)

var ErrInvalidTime = errors.New("invalid time, expected HH:MM")

// To12Hour converts a 24-hour "HH:MM" input to the "hh:mm AM/PM" display
// form used as the time-slot key. Hours 0 and 12 both render as 12.
func To12Hour(raw string) (string, error) {
	t, err := time.Parse("15:04", raw)
	if err != nil {
		return "", ErrInvalidTime
	}
	return t.Format("03:04 PM"), nil
}

// SlotMinutes maps a 12-hour display time to minutes past midnight for
// chronological sorting. Unparseable strings sort first.
func SlotMinutes(display string) int {
	t, err := time.Parse("03:04 PM", display)
	if err != nil {
		return 0
	}
	return t.Hour()*60 + t.Minute()
}
