package domain

import "github.com/pkg/errors"

// ValidationError messages are meant to be shown to the user as is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(message string) error {
	return errors.WithStack(&ValidationError{Message: message})
}
