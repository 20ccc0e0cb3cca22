package utils

import "time"

const (
	// IncomingTimestampLayout is the format POST bodies use for
	// created_at / date_time values.
	IncomingTimestampLayout = "2006-01-02 15:04:05"

	// TimelineEventLayout is how event timestamps are rendered for the
	// timeline view: second precision, no timezone suffix.
	TimelineEventLayout = "2006-01-02T15:04:05"
)

// ParseIncomingTimestamp reads the first 19 characters of an incoming
// timestamp string and interprets them as UTC. Anything after seconds
// precision is ignored.
func ParseIncomingTimestamp(value string) (time.Time, error) {
	if len(value) > len(IncomingTimestampLayout) {
		value = value[:len(IncomingTimestampLayout)]
	}
	return time.ParseInLocation(IncomingTimestampLayout, value, time.UTC)
}

func FormatTimelineEvent(t time.Time) string {
	return t.UTC().Format(TimelineEventLayout)
}
