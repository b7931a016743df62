package services

import "time"

// DayFormat is the only date layout that crosses the API and storage
// boundaries.
const DayFormat = "2006-01-02"

// DateOnly truncates a timestamp to its calendar date at midnight UTC.
// All cycle arithmetic runs on calendar dates, never on timestamps.
func DateOnly(value time.Time) time.Time {
	year, month, day := value.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ParseDay parses an ISO calendar date string.
func ParseDay(raw string) (time.Time, error) {
	return time.ParseInLocation(DayFormat, raw, time.UTC)
}

func betweenCalendarDaysInclusive(day time.Time, start time.Time, end time.Time) bool {
	return !day.Before(start) && !day.After(end)
}
