package utils

import "encoding/base64"

// CutSuffix is appended to base64 previews when the caller did not ask
// for full payload data.
const CutSuffix = "... (end cutted because of very long length)"

const previewLen = 20

// DecodeBase64Payload turns a request's base64 string into the raw
// bytes stored in the blob column. Standard alphabet only.
func DecodeBase64Payload(value string) ([]byte, error) {
	if value == "" {
		return nil, nil
	}
	return base64.StdEncoding.DecodeString(value)
}

func EncodeBase64Payload(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// CutBase64 truncates an encoded payload to a short preview. The suffix
// is appended even when the value is already short, matching the wire
// behavior clients rely on.
func CutBase64(value string) string {
	if len(value) > previewLen {
		value = value[:previewLen]
	}
	return value + CutSuffix
}
