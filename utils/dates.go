package utils

import "time"

// dateFormats are tried in order when parsing date query parameters.
var dateFormats = []string{
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDateOr parses a date string, trying multiple formats. A malformed
// or empty input falls back to the supplied default instead of failing.
func ParseDateOr(dateStr string, fallback time.Time) time.Time {
	if dateStr == "" {
		return fallback
	}
	for _, format := range dateFormats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t.UTC()
		}
	}
	return fallback
}

// StartOfDay truncates a time to midnight UTC.
func StartOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// EndOfDay normalizes a time to 23:59:59.999 UTC so range queries include
// the whole closing day.
func EndOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999000000, time.UTC)
}
