package utils

import (
	"errors"
	"fmt"
)

// Error kinds. Every handled error still surfaces as HTTP 400 with its
// message in data.error; the kinds exist so services and tests can tell
// the failure classes apart without parsing message text.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrInvalidInput  = errors.New("invalid input")
	ErrPartialWrite  = errors.New("partial write")
	ErrDatabaseError = errors.New("database error")
)

type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }

func NotFoundf(format string, args ...interface{}) error {
	return &kindError{kind: ErrNotFound, msg: fmt.Sprintf(format, args...)}
}

func AlreadyExistsf(format string, args ...interface{}) error {
	return &kindError{kind: ErrAlreadyExists, msg: fmt.Sprintf(format, args...)}
}

func InvalidInputf(format string, args ...interface{}) error {
	return &kindError{kind: ErrInvalidInput, msg: fmt.Sprintf(format, args...)}
}

// PartialWritef reports a composite operation that failed after some of
// its rows were already committed. The committed rows stay.
func PartialWritef(format string, args ...interface{}) error {
	return &kindError{kind: ErrPartialWrite, msg: fmt.Sprintf(format, args...)}
}

func DatabaseErrf(format string, args ...interface{}) error {
	return &kindError{kind: ErrDatabaseError, msg: fmt.Sprintf(format, args...)}
}

func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }
