package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode represents a unique error code
type ErrorCode int

// Common error codes
const (
	ErrUnauthenticated ErrorCode = iota + 1000
	ErrInvalidToken
	ErrInvalidCredentials
	ErrDuplicateEmail
	ErrInvalidRole
	ErrBadRequest
	ErrForbidden
	ErrNotFound
	ErrInternal
)

// AppError represents an application error
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode maps the error code to an HTTP status. The error middleware and
// the handler response helper both rely on this.
func (e *AppError) StatusCode() int {
	switch e.Code {
	case ErrUnauthenticated, ErrInvalidCredentials:
		return http.StatusUnauthorized
	case ErrInvalidToken, ErrForbidden:
		return http.StatusForbidden
	case ErrDuplicateEmail, ErrInvalidRole, ErrBadRequest:
		return http.StatusBadRequest
	case ErrNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Error constructors
func Unauthenticated(message string) *AppError {
	return &AppError{Code: ErrUnauthenticated, Message: message}
}

func InvalidToken(err error) *AppError {
	return &AppError{Code: ErrInvalidToken, Message: "invalid token", Err: err}
}

func InvalidCredentials() *AppError {
	return &AppError{Code: ErrInvalidCredentials, Message: "invalid credentials"}
}

func DuplicateEmail() *AppError {
	return &AppError{Code: ErrDuplicateEmail, Message: "email already registered"}
}

func InvalidRole(role string) *AppError {
	return &AppError{Code: ErrInvalidRole, Message: fmt.Sprintf("invalid role: %s", role)}
}

func BadRequest(message string, err error) *AppError {
	return &AppError{Code: ErrBadRequest, Message: message, Err: err}
}

func Forbidden(message string) *AppError {
	return &AppError{Code: ErrForbidden, Message: message}
}

func NotFound(resource string) *AppError {
	return &AppError{Code: ErrNotFound, Message: fmt.Sprintf("%s not found", resource)}
}

func Internal(err error) *AppError {
	return &AppError{Code: ErrInternal, Message: "internal server error", Err: err}
}

// Status returns the HTTP status for any error, falling back to 500 for
// errors that are not AppErrors.
func Status(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode()
	}
	return http.StatusInternalServerError
}
