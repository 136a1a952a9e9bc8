package errors

import "errors"

var (
	ErrValidation    = errors.New("validation failed")
	ErrNotFound      = errors.New("not found")
	ErrConflict      = errors.New("conflict")
	ErrAlreadyExists = errors.New("already exists")
)

// Error carries a client-facing message for one of the sentinel kinds.
type Error struct {
	kind    error
	message string
}

func (e *Error) Error() string {
	return e.message
}

// Unwrap exposes the sentinel so callers can use errors.Is.
func (e *Error) Unwrap() error {
	return e.kind
}

// Validation reports a missing or malformed request field.
func Validation(message string) error {
	return &Error{kind: ErrValidation, message: message}
}

// NotFound reports an unknown resource.
func NotFound(message string) error {
	return &Error{kind: ErrNotFound, message: message}
}

// Conflict reports an operation the resource's current state forbids.
func Conflict(message string) error {
	return &Error{kind: ErrConflict, message: message}
}

// Message returns the client-facing text of err.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.message
	}
	return err.Error()
}
