// Package apperror defines the error kinds surfaced by the API and their
// HTTP status codes.
package apperror

import (
	"errors"
	"net/http"
)

var (
	ErrValidation         = errors.New("validation error")
	ErrDuplicateEmail     = errors.New("duplicate email")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
)

// InternalMessage is what clients see for any error without a known kind.
const InternalMessage = "Server Error"

// Error pairs a kind with the message shown to the client.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func New(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Validation(message string) *Error {
	return New(ErrValidation, message)
}

func NotFound(message string) *Error {
	return New(ErrNotFound, message)
}

func Forbidden(message string) *Error {
	return New(ErrForbidden, message)
}

func Unauthenticated(message string) *Error {
	return New(ErrUnauthenticated, message)
}

// StatusCode maps err to an HTTP status; unknown errors are 500.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, ErrDuplicateEmail):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the client-facing text for err. Internal details never
// leak: errors without a kind report InternalMessage.
func Message(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	if StatusCode(err) == http.StatusInternalServerError {
		return InternalMessage
	}
	return err.Error()
}
