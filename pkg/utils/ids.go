package utils

import "strconv"

// ParseID reads a numeric query-string id. Callers decide how a bad
// value is reported; this only does the conversion.
func ParseID(value string) (uint, error) {
	id, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
