package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIncomingTimestamp(t *testing.T) {
	parsed, err := ParseIncomingTimestamp("2025-02-13 20:20:56")
	require.NoError(t, err)
	assert.True(t, parsed.Equal(time.Date(2025, 2, 13, 20, 20, 56, 0, time.UTC)))
	assert.Equal(t, time.UTC, parsed.Location())
}

func TestParseIncomingTimestampIgnoresTrailingPrecision(t *testing.T) {
	parsed, err := ParseIncomingTimestamp("2025-02-13 20:20:56.123456+03:00")
	require.NoError(t, err)
	assert.True(t, parsed.Equal(time.Date(2025, 2, 13, 20, 20, 56, 0, time.UTC)))
}

func TestParseIncomingTimestampRejectsGarbage(t *testing.T) {
	_, err := ParseIncomingTimestamp("not a timestamp")
	require.Error(t, err)

	_, err = ParseIncomingTimestamp("")
	require.Error(t, err)
}

func TestFormatTimelineEvent(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	stamp := time.Date(2025, 2, 9, 21, 53, 9, 0, loc)

	// Rendered in UTC, second precision, no zone suffix.
	assert.Equal(t, "2025-02-09T18:53:09", FormatTimelineEvent(stamp))
}
