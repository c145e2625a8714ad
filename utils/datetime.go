// File: /utils/datetime.go
package utils

import (
	"strconv"
	"strings"
	"time"
)

// ParseTimeString parses a wall-clock time string into hours and
// minutes. Accepts 24-hour ("14:30") and 12-hour ("02:30 PM") formats.
// Ill-formed input yields zero components rather than an error; callers
// validate the format before scheduling anything.
func ParseTimeString(timeString string) (int, int) {
	parts := strings.Split(timeString, ":")

	hours, _ := strconv.Atoi(strings.TrimSpace(parts[0]))

	minutes := 0
	if len(parts) > 1 {
		minutePart := strings.TrimSpace(parts[1])
		minutePart = strings.TrimSuffix(minutePart, "AM")
		minutePart = strings.TrimSuffix(minutePart, "PM")
		minutes, _ = strconv.Atoi(strings.TrimSpace(minutePart))
	}

	if strings.Contains(timeString, "PM") && hours != 12 {
		hours += 12
	} else if strings.Contains(timeString, "AM") && hours == 12 {
		hours = 0
	}

	return hours, minutes
}

// EventDateTime combines a calendar date ("2006-01-02") and a time
// string into a single local instant.
func EventDateTime(startDate, startTime string) time.Time {
	var year, month, day int
	dateParts := strings.Split(startDate, "-")
	if len(dateParts) == 3 {
		year, _ = strconv.Atoi(dateParts[0])
		month, _ = strconv.Atoi(dateParts[1])
		day, _ = strconv.Atoi(dateParts[2])
	}

	hours, minutes := ParseTimeString(startTime)

	return time.Date(year, time.Month(month), day, hours, minutes, 0, 0, time.Local)
}

// IsEventExpiredAt reports whether now is strictly after the scheduled
// instant.
func IsEventExpiredAt(startDate, startTime string, now time.Time) bool {
	return now.After(EventDateTime(startDate, startTime))
}

// IsEventStartedAt reports whether now is at or after the scheduled
// instant. Differs from IsEventExpiredAt only at the exact boundary.
func IsEventStartedAt(startDate, startTime string, now time.Time) bool {
	return !now.Before(EventDateTime(startDate, startTime))
}

func IsEventExpired(startDate, startTime string) bool {
	return IsEventExpiredAt(startDate, startTime, time.Now())
}

func IsEventStarted(startDate, startTime string) bool {
	return IsEventStartedAt(startDate, startTime, time.Now())
}
