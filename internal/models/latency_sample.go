package models

import "time"

// TimestampLayout is the storage format for latency sample timestamps:
// UTC, second precision, trailing literal Z.
const TimestampLayout = "2006-01-02T15:04:05Z"

// DateLayout is the calendar-date format used to group and query samples.
const DateLayout = "2006-01-02"

// LatencySample is one persisted latency measurement.
type LatencySample struct {
	Timestamp string
	LatencyMS int64
}

// Time parses the sample timestamp back into a time.Time.
func (s LatencySample) Time() (time.Time, error) {
	return time.Parse(TimestampLayout, s.Timestamp)
}

// FormatTimestamp renders t in the storage timestamp format.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
