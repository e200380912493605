package domain

import (
	"fmt"
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

// ParseTimeOfDay parses a 24h "HH:mm" string into minutes since midnight.
// Single-digit hours are accepted ("9:05"); anything else is an error.
func ParseTimeOfDay(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("time of day %q: want HH:mm", s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("time of day %q: bad hour: %w", s, err)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("time of day %q: bad minute: %w", s, err)
	}

	if hour < 0 || hour > 23 {
		return 0, fmt.Errorf("time of day %q: hour out of range", s)
	}
	if minute < 0 || minute > 59 {
		return 0, fmt.Errorf("time of day %q: minute out of range", s)
	}

	return hour*60 + minute, nil
}

// FormatTimeOfDay renders minutes since midnight as "HH:mm".
// Values outside one day wrap around midnight.
func FormatTimeOfDay(minutes int) string {
	minutes = ((minutes % minutesPerDay) + minutesPerDay) % minutesPerDay
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// DurationMinutes returns end minus start in minutes, both "HH:mm" on the
// same day. The result is negative when end precedes start; callers that
// require end > start must validate before storing. Unparseable input
// yields 0 rather than an error so a single malformed entry cannot break
// an aggregate view.
func DurationMinutes(start, end string) int {
	s, err := ParseTimeOfDay(start)
	if err != nil {
		return 0
	}
	e, err := ParseTimeOfDay(end)
	if err != nil {
		return 0
	}
	return e - s
}

// AddMinutes returns start shifted by the given number of minutes,
// wrapping around midnight. Unparseable input returns start unchanged.
func AddMinutes(start string, minutes int) string {
	s, err := ParseTimeOfDay(start)
	if err != nil {
		return start
	}
	return FormatTimeOfDay(s + minutes)
}
