package domain

import (
	"errors"
	"strings"
)

var (
	ErrEventNotFound   = errors.New("event not found")
	ErrVenueNotFound   = errors.New("venue not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrVersionNotFound = errors.New("event version not found")
)

var (
	ErrValidation        = errors.New("validation error")
	ErrForbidden         = errors.New("forbidden")
	ErrUnauthenticated   = errors.New("unauthenticated")
	ErrInvalidStatus     = errors.New("invalid event status")
	ErrAreaNotFound      = errors.New("one or more selected areas could not be found")
	ErrAreaVenueMismatch = errors.New("selected areas do not belong to the chosen venue")
)

var (
	ErrUsernameTaken  = errors.New("username is already taken")
	ErrPartialFailure = errors.New("partial failure")
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is returned before any write happened.
type ValidationError struct {
	Fields []FieldError
}

func NewFieldError(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// PartialFailureError reports a multi-step write where Committed already
// happened and Failed did not. Operators reconcile from the message.
type PartialFailureError struct {
	EventID   string
	Committed string
	Failed    string
	Err       error
}

func (e *PartialFailureError) Error() string {
	return e.Committed + " but " + e.Failed + " failed: " + e.Err.Error()
}

func (e *PartialFailureError) Unwrap() []error {
	return []error{ErrPartialFailure, e.Err}
}
