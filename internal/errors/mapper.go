// internal/errors/mapper.go
package errors

import (
	"context"
	"errors"
	"net/http"

	"gorm.io/gorm"
)

// Error carries an HTTP status alongside a user-facing message.
// Services return these so handlers never inspect infra errors.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

// Map converts repo/infra errors into HTTP-friendly errors.
// Keeps the service layer clean by centralizing error mapping.
func Map(err error) error {
	if err == nil {
		return nil
	}

	var he *Error
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return &Error{Status: http.StatusNotFound, Message: "record not found"}

	case errors.Is(err, context.DeadlineExceeded):
		return &Error{Status: http.StatusGatewayTimeout, Message: "request timed out"}

	case errors.Is(err, context.Canceled):
		return &Error{Status: http.StatusRequestTimeout, Message: "request was canceled"}

	default:
		// fallback → bubble up error message for debugging
		return &Error{Status: http.StatusInternalServerError, Message: err.Error()}
	}
}

// Status returns the HTTP status and message for any error.
func Status(err error) (int, string) {
	mapped := Map(err)
	var he *Error
	if errors.As(mapped, &he) {
		return he.Status, he.Message
	}
	return http.StatusInternalServerError, mapped.Error()
}

// InvalidArgument creates a 400 error.
// Use this in the service layer for bad input validation.
func InvalidArgument(msg string) error {
	return &Error{Status: http.StatusBadRequest, Message: msg}
}

// Unauthorized creates a 401 error.
func Unauthorized(msg string) error {
	return &Error{Status: http.StatusUnauthorized, Message: msg}
}

// Forbidden creates a 403 error.
func Forbidden(msg string) error {
	return &Error{Status: http.StatusForbidden, Message: msg}
}

// NotFound creates a 404 error.
func NotFound(msg string) error {
	return &Error{Status: http.StatusNotFound, Message: msg}
}

// AlreadyExists creates a 409 error.
func AlreadyExists(msg string) error {
	return &Error{Status: http.StatusConflict, Message: msg}
}
