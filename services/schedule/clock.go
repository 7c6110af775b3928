package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// All wall-clock comparisons run in a single fixed reference timezone,
// IST (UTC+5:30), applied as a fixed offset to the UTC instant. Host-local
// time must never leak into business-logic comparisons.
const refOffsetMinutes = 330

var refLocation = time.FixedZone("IST", refOffsetMinutes*60)

// ReferenceNow shifts an instant into the reference timezone.
func ReferenceNow(t time.Time) time.Time {
	return t.In(refLocation)
}

// ClockMinutes reads the reference wall clock of an instant as minutes from
// midnight.
func ClockMinutes(t time.Time) int {
	shifted := t.In(refLocation)
	return shifted.Hour()*60 + shifted.Minute()
}

// DateString reads the reference calendar date of an instant as "YYYY-MM-DD".
func DateString(t time.Time) string {
	return t.In(refLocation).Format("2006-01-02")
}

// ParseClock converts a wall-clock string ("HH:MM" or "HH:MM:SS", seconds
// ignored) into minutes from midnight in [0, 1439].
func ParseClock(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	hour, err := parseClockField(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	minute, err := parseClockField(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	if hour > 23 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	return hour*60 + minute, nil
}

// parseClockField parses one unsigned numeric clock component.
func parseClockField(s string) (int, error) {
	if s == "" {
		return 0, ErrInvalidTimeFormat
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, ErrInvalidTimeFormat
		}
	}
	return strconv.Atoi(s)
}

// FormatClock renders minutes from midnight back to "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
