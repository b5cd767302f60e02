package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/yigit/placement/internal/pkg/apperrors"
)

func TestTranslate(t *testing.T) {
	unique := func(name string) error {
		return fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: name})
	}
	assert.ErrorIs(t, Translate(unique(ConstraintStudentRollNo)), apperrors.ErrDuplicateRollNumber)
	assert.ErrorIs(t, Translate(unique(ConstraintApplicationPair)), apperrors.ErrDuplicateApplication)
	assert.ErrorIs(t, Translate(unique(ConstraintOfferPair)), apperrors.ErrDuplicateOffer)
	assert.ErrorIs(t, Translate(&pgconn.PgError{Code: "23503"}), apperrors.ErrReferencedEntity)

	other := unique("something_else")
	assert.Equal(t, other, Translate(other))
	assert.Nil(t, Translate(nil))

	plain := errors.New("boom")
	assert.False(t, IsDuplicateConstraintError(plain, ConstraintOfferPair))
	assert.False(t, IsForeignKeyError(plain))
}
