package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBase64PayloadRoundTrip(t *testing.T) {
	raw := []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a}

	decoded, err := DecodeBase64Payload(EncodeBase64Payload(raw))
	require.NoError(t, err)
	assert.Equal(t, raw, decoded)
}

func TestDecodeBase64PayloadEmpty(t *testing.T) {
	decoded, err := DecodeBase64Payload("")
	require.NoError(t, err)
	assert.Nil(t, decoded)
}

func TestDecodeBase64PayloadInvalid(t *testing.T) {
	_, err := DecodeBase64Payload("not base64!!!")
	require.Error(t, err)
}

func TestCutBase64TruncatesLongValues(t *testing.T) {
	long := strings.Repeat("A", 100)

	cut := CutBase64(long)
	assert.Equal(t, strings.Repeat("A", 20)+CutSuffix, cut)
}

func TestCutBase64AppendsSuffixToShortValues(t *testing.T) {
	// Even short previews carry the suffix.
	assert.Equal(t, "abc"+CutSuffix, CutBase64("abc"))
	assert.Equal(t, CutSuffix, CutBase64(""))
}
