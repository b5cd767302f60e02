package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn" // Import pgconn for PgError
	"github.com/yigit/placement/internal/pkg/apperrors"
)

// Unique constraints declared by the schema migrations
const (
	ConstraintStudentRollNo   = "students_roll_no_key"
	ConstraintApplicationPair = "applications_student_drive_key"
	ConstraintOfferPair       = "offer_letters_student_drive_key"
)

// IsDuplicateConstraintError checks if the error is a PostgreSQL unique violation error
// for a specific constraint.
func IsDuplicateConstraintError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	// Check if the error is a PgError, if the code is unique_violation (23505),
	// and if the constraint name matches the provided one.
	return errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == constraintName
}

// IsForeignKeyError checks if the error is a PostgreSQL foreign key violation
func IsForeignKeyError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}

// Translate maps known constraint violations to their domain error kinds.
// Unknown errors are returned unchanged.
func Translate(err error) error {
	switch {
	case err == nil:
		return nil
	case IsDuplicateConstraintError(err, ConstraintStudentRollNo):
		return apperrors.NewCustomError(apperrors.ErrDuplicateRollNumber, "roll number already registered")
	case IsDuplicateConstraintError(err, ConstraintApplicationPair):
		return apperrors.NewCustomError(apperrors.ErrDuplicateApplication, "application already exists")
	case IsDuplicateConstraintError(err, ConstraintOfferPair):
		return apperrors.NewCustomError(apperrors.ErrDuplicateOffer, "offer letter already exists")
	case IsForeignKeyError(err):
		return apperrors.NewCustomError(apperrors.ErrReferencedEntity, "entity is still referenced")
	}
	return err
}
