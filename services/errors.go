package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an identifier has no profile.
	ErrNotFound = errors.New("not found")
	// ErrInvalidReference is returned when a swipe names an unknown profile.
	ErrInvalidReference = errors.New("invalid reference")
	// ErrInvalidSelfReference is returned when a profile swipes on itself.
	ErrInvalidSelfReference = errors.New("cannot swipe on self")
	// ErrInvalidAction is returned for actions other than LIKE and PASS.
	ErrInvalidAction = errors.New("invalid action")
	// ErrValidation is matched by every *ValidationError.
	ErrValidation = errors.New("validation failed")
)

// ValidationError reports a malformed profile attribute.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Is lets errors.Is(err, ErrValidation) match any ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
