package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind(t *testing.T) {
	assert.Equal(t, ErrNotFound, Kind(NewNotFoundError("drive", "d1")))
	assert.Equal(t, ErrOutOfRange, Kind(fmt.Errorf("student: %w", NewOutOfRangeError("cgpa", "cgpa out of range"))))
	assert.Equal(t, ErrDuplicateOffer, Kind(ErrDuplicateOffer))
	assert.Nil(t, Kind(errors.New("disk full")))
	assert.Nil(t, Kind(nil))
}

func TestCustomError(t *testing.T) {
	err := NewNotFoundError("student", "s1")

	assert.Equal(t, "student not found", err.Error())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, map[string]interface{}{"entity": "student", "id": "s1"}, err.Details)

	assert.Equal(t, "referenced entity", NewCustomError(ErrReferencedEntity, "").Error())
	assert.Equal(t, "unknown error", (&CustomError{}).Error())
}

func TestIs(t *testing.T) {
	err := NewValidationError("email", "email is invalid")
	assert.True(t, Is(err, ErrNotFound, ErrOutOfRange, ErrValidationFailed))
	assert.False(t, Is(err, ErrNotFound, ErrOutOfRange))
}
