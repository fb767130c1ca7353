package models

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrDuplicate          = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotLoggedIn        = errors.New("not logged in")
	ErrSessionExpired     = errors.New("session expired")
	ErrForbidden          = errors.New("not authorized")
	ErrConflict           = errors.New("modified concurrently")
)

// ValidationError carries a message meant for the client as-is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}
