// services/errors.go - Error taxonomy shared by handlers
package services

import (
	"errors"
	"fmt"
)

var (
	// ErrTeamNotFound means no team exists for the given join code.
	ErrTeamNotFound = errors.New("team not found")

	// ErrAlreadyInTeam means the user already holds a team membership.
	ErrAlreadyInTeam = errors.New("already in a team")

	// ErrNoTeam means the user holds no team membership.
	ErrNoTeam = errors.New("no team membership")
)

// ValidationError reports malformed or out-of-range input. It is surfaced to
// the caller with the field message and never retried.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErrorf(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
