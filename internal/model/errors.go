package model

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrNoActiveOrg      = errors.New("no active organization selected")
)

// GatewayError is any failure reported by the remote backend: network errors,
// invalid credentials, expired tokens or rejected queries.
type GatewayError struct {
	Op      string
	Status  int
	Code    string
	Message string
	Err     error
}

func (e *GatewayError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Status != 0 {
		return fmt.Sprintf("%s: %s (status %d)", e.Op, msg, e.Status)
	}
	return fmt.Sprintf("%s: %s", e.Op, msg)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

// ValidationError reports invalid user input before any remote call is made.
type ValidationError struct {
	Title   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Title + ": " + e.Message
}

// NewValidationError creates a ValidationError.
func NewValidationError(title, message string) *ValidationError {
	return &ValidationError{Title: title, Message: message}
}
