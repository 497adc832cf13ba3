package errors

import "errors"

var (
	ErrNotFound       = errors.New("not found")
	ErrNumberConflict = errors.New("receipt number conflict")
)

// ValidationError carries a client-facing message naming the rejected field.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// NewValidation builds a ValidationError with the given message.
func NewValidation(reason string) error {
	return &ValidationError{Reason: reason}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
