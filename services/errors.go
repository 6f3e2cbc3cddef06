package services

import "errors"

// Errors surfaced to the HTTP layer. Handlers map these to status codes;
// anything else is treated as a storage failure.
var (
	ErrQuizNotFound       = errors.New("quiz not found")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// ValidationError marks request payloads rejected before any persistence
// side effect.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErr(msg string) error {
	return &ValidationError{Message: msg}
}
