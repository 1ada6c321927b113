package errors

import (
	"fmt"
	"net/http"
)

type ErrorCode string

const (
	NotFound         ErrorCode = "not_found"
	AlreadyExists    ErrorCode = "already_exists"
	PersistenceError ErrorCode = "persistence_error"
	InvalidInput     ErrorCode = "invalid_input"
)

type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewAppError(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

func NewAppErrorf(code ErrorCode, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

func (e *AppError) WithDetails(details string) *AppError {
	return &AppError{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
	}
}

// HTTPStatus maps an error code to the response status used by the handlers.
func (e *AppError) HTTPStatus() int {
	switch e.Code {
	case NotFound:
		return http.StatusNotFound
	case AlreadyExists:
		return http.StatusConflict
	case InvalidInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Predefined errors for common cases
var (
	ErrAccountNotFound = NewAppError(NotFound, "account not found")
	ErrAccountExists   = NewAppError(AlreadyExists, "account already exists")
)
