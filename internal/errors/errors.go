package errors

import (
	"errors"
	"fmt"
	"net/http"

	"gorm.io/gorm"
)

// ===========================================================================
// Application errors
// Sentinel errors shared by services and handlers.
// Each one maps to an HTTP status code and a short error code.
// ===========================================================================

// Sentinel errors, compare with errors.Is()
var (
	// ErrNotFound resource does not exist (or the id could not be parsed)
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput missing or malformed input
	ErrInvalidInput = errors.New("invalid input")

	// ErrDuplicateEntry unique constraint violation
	ErrDuplicateEntry = errors.New("duplicate entry")

	// ErrExternal translation, geo-ip, mail, storage mirror or toolchain failure
	ErrExternal = errors.New("external service error")

	// ErrInvalidCredentials username or password is wrong
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNoChatSession the browser has not started an inquiry
	ErrNoChatSession = errors.New("no chat session")
)

// ===========================================================================
// AppError
// ===========================================================================

// AppError carries a user facing message next to the wrapped error
type AppError struct {
	// Err wrapped error
	Err error

	// Message shown to the user
	Message string

	// Code error code (e.g. "NOT_FOUND")
	Code string

	// StatusCode HTTP status code
	StatusCode int
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Err.Error()
}

// Unwrap returns the wrapped error (for errors.Is/As)
func (e *AppError) Unwrap() error {
	return e.Err
}

// New builds an AppError from a sentinel error
func New(err error, message string) *AppError {
	return &AppError{
		Err:        err,
		Message:    message,
		StatusCode: StatusCode(err),
		Code:       ErrorCode(err),
	}
}

// FromDB maps gorm.ErrRecordNotFound to ErrNotFound and wraps anything else
func FromDB(err error, message string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", message, ErrNotFound)
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%s: %w", message, ErrDuplicateEntry)
	}
	return fmt.Errorf("%s: %w", message, err)
}

// ===========================================================================
// Error mapping
// ===========================================================================

// StatusCode returns the HTTP status code for err
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrNoChatSession):
		return http.StatusBadRequest
	case errors.Is(err, ErrDuplicateEntry):
		return http.StatusConflict
	case errors.Is(err, ErrExternal):
		return http.StatusBadGateway
	case errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// ErrorCode returns the error code string for err
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return "NOT_FOUND"
	case errors.Is(err, ErrInvalidInput):
		return "INVALID_INPUT"
	case errors.Is(err, ErrNoChatSession):
		return "NO_CHAT_SESSION"
	case errors.Is(err, ErrDuplicateEntry):
		return "DUPLICATE_ENTRY"
	case errors.Is(err, ErrExternal):
		return "EXTERNAL_ERROR"
	case errors.Is(err, ErrInvalidCredentials):
		return "INVALID_CREDENTIALS"
	default:
		return "INTERNAL_ERROR"
	}
}

// Is helper for errors.Is()
func Is(err, target error) bool {
	return errors.Is(err, target)
}
