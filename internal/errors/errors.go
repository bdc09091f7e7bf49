// Package errors provides custom error types for the spendtrack API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, optional structured details, HTTP status code,
// and optional internal error.
type AppError struct {
	Code       string         `json:"code"`
	Message    string         `json:"message"`
	Details    map[string]any `json:"details,omitempty"`
	StatusCode int            `json:"-"`
	Internal   error          `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		Details:    sentinel.Details,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// WithDetails creates a new AppError carrying structured details.
func WithDetails(sentinel *AppError, details map[string]any) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		Details:    details,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// General errors.
var (
	ErrBadRequest     = &AppError{Code: "BAD_REQUEST", Message: "Malformed request", StatusCode: http.StatusBadRequest}
	ErrValidation     = &AppError{Code: "VALIDATION_ERROR", Message: "Invalid input", StatusCode: http.StatusUnprocessableEntity}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrDeleteConflict = &AppError{Code: "DELETE_CONFLICT", Message: "Resource is referenced by existing records", StatusCode: http.StatusConflict}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An unexpected error occurred", StatusCode: http.StatusInternalServerError}
)

// ErrForeignKey is raised when a write references a row that does not
// exist. It surfaces as a validation error: the input was unprocessable
// rather than malformed.
var ErrForeignKey = &AppError{
	Code:       "VALIDATION_ERROR",
	Message:    "Invalid foreign key reference",
	StatusCode: http.StatusUnprocessableEntity,
}

// Entity lookups.
var (
	ErrAccountNotFound     = &AppError{Code: "NOT_FOUND", Message: "Account not found", StatusCode: http.StatusNotFound}
	ErrTransactionNotFound = &AppError{Code: "NOT_FOUND", Message: "Transaction not found", StatusCode: http.StatusNotFound}
	ErrCategoryNotFound    = &AppError{Code: "NOT_FOUND", Message: "Category not found", StatusCode: http.StatusNotFound}
	ErrPayeeNotFound       = &AppError{Code: "NOT_FOUND", Message: "Payee not found", StatusCode: http.StatusNotFound}
	ErrTableNotFound       = &AppError{Code: "NOT_FOUND", Message: "Table not found", StatusCode: http.StatusNotFound}
)
