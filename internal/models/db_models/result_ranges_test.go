package db_models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultRangesPreservesDocumentOrder(t *testing.T) {
	var ranges ResultRanges
	err := json.Unmarshal([]byte(`{"good": [0, 13], "bad": [14, 25]}`), &ranges)
	require.NoError(t, err)

	require.Len(t, ranges, 2)
	assert.Equal(t, "good", ranges[0].Name)
	assert.Equal(t, 0, ranges[0].Low)
	assert.Equal(t, 13, ranges[0].High)
	assert.Equal(t, "bad", ranges[1].Name)
}

func TestResultRangesCategoryFor(t *testing.T) {
	var ranges ResultRanges
	err := json.Unmarshal([]byte(`{"bad": [0, 10], "normal": [11, 30], "good": [31, 50]}`), &ranges)
	require.NoError(t, err)

	assert.Equal(t, "bad", ranges.CategoryFor(0))
	assert.Equal(t, "bad", ranges.CategoryFor(10))
	assert.Equal(t, "normal", ranges.CategoryFor(11))
	assert.Equal(t, "good", ranges.CategoryFor(50))
	assert.Equal(t, "Unknown", ranges.CategoryFor(51))
	assert.Equal(t, "Unknown", ranges.CategoryFor(-1))
}

func TestResultRangesOverlapLastMatchWins(t *testing.T) {
	var ranges ResultRanges
	err := json.Unmarshal([]byte(`{"first": [0, 20], "second": [10, 30]}`), &ranges)
	require.NoError(t, err)

	assert.Equal(t, "first", ranges.CategoryFor(5))
	// Both ranges cover 15; the later entry in document order wins.
	assert.Equal(t, "second", ranges.CategoryFor(15))
	assert.Equal(t, "second", ranges.CategoryFor(25))
}

func TestResultRangesMarshalRoundTrip(t *testing.T) {
	raw := `{"good":[0,13],"bad":[14,25]}`

	var ranges ResultRanges
	require.NoError(t, json.Unmarshal([]byte(raw), &ranges))

	out, err := json.Marshal(ranges)
	require.NoError(t, err)
	assert.Equal(t, raw, string(out))
}

func TestResultRangesScanAndValue(t *testing.T) {
	var ranges ResultRanges
	require.NoError(t, ranges.Scan([]byte(`{"ok": [1, 2]}`)))
	require.Len(t, ranges, 1)
	assert.Equal(t, "ok", ranges[0].Name)

	value, err := ranges.Value()
	require.NoError(t, err)
	assert.Equal(t, `{"ok":[1,2]}`, value)

	var empty ResultRanges
	require.NoError(t, empty.Scan(nil))
	assert.Nil(t, empty)
}

func TestResultRangesRejectsMalformedRanges(t *testing.T) {
	var ranges ResultRanges
	assert.Error(t, json.Unmarshal([]byte(`{"good": [0]}`), &ranges))
	assert.Error(t, json.Unmarshal([]byte(`["good"]`), &ranges))
}
