package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindErrorsCarryMessageAndKind(t *testing.T) {
	err := NotFoundf("not found any Entry with this id: %s", "42")
	assert.Equal(t, "not found any Entry with this id: 42", err.Error())
	assert.True(t, IsNotFound(err))
	assert.False(t, errors.Is(err, ErrInvalidInput))

	assert.True(t, errors.Is(InvalidInputf("incoming data is not valid"), ErrInvalidInput))
	assert.True(t, errors.Is(AlreadyExistsf("this email (%s) already exist", "a@b.c"), ErrAlreadyExists))
	assert.True(t, errors.Is(PartialWritef("cp UserCompletedPoll is not saved!"), ErrPartialWrite))
	assert.True(t, errors.Is(DatabaseErrf("boom"), ErrDatabaseError))
}

func TestIsNotFoundOnForeignErrors(t *testing.T) {
	assert.False(t, IsNotFound(nil))
	assert.False(t, IsNotFound(errors.New("something else")))
}
