package apperrors

import "errors"

// Error kinds returned by the placement engine. Every failed operation wraps
// exactly one of these, so callers match with errors.Is.
var (
	ErrNotFound             = errors.New("not found")
	ErrDuplicateApplication = errors.New("duplicate application")
	ErrDuplicateOffer       = errors.New("duplicate offer")
	ErrIneligibleOffer      = errors.New("ineligible offer")
	ErrInvalidTransition    = errors.New("invalid transition")
	ErrReferencedEntity     = errors.New("referenced entity")
	ErrOutOfRange           = errors.New("out of range")

	// Validation errors
	ErrValidationFailed    = errors.New("validation failed")
	ErrDuplicateRollNumber = errors.New("duplicate roll number")
)

// Kinds lists every error kind in mapping order
var Kinds = []error{
	ErrNotFound,
	ErrDuplicateApplication,
	ErrDuplicateOffer,
	ErrIneligibleOffer,
	ErrInvalidTransition,
	ErrReferencedEntity,
	ErrOutOfRange,
	ErrValidationFailed,
	ErrDuplicateRollNumber,
}

// Kind returns the error kind wrapped by err, or nil for foreign errors
func Kind(err error) error {
	for _, k := range Kinds {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}

// NewNotFoundError creates a not-found error naming the entity kind
func NewNotFoundError(entity, id string) *CustomError {
	return NewCustomError(ErrNotFound, entity+" not found").
		WithDetails(map[string]interface{}{"entity": entity, "id": id})
}

// NewOutOfRangeError creates an out-of-range error for a scalar field
func NewOutOfRangeError(field, message string) *CustomError {
	return NewCustomError(ErrOutOfRange, message).
		WithDetails(map[string]interface{}{"field": field})
}

// NewValidationError creates a validation error for a field
func NewValidationError(field, message string) *CustomError {
	return NewCustomError(ErrValidationFailed, message).
		WithDetails(map[string]interface{}{"field": field})
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}
