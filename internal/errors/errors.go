// Package errors provides custom error types for the Pocketledger API.
// All store-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
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

// Store lifecycle errors.
var (
	ErrStoreUnavailable = &AppError{Code: "STORE_UNAVAILABLE", Message: "Ledger database is unavailable", StatusCode: http.StatusServiceUnavailable}
	ErrVersionConflict  = &AppError{Code: "VERSION_CONFLICT", Message: "Requested schema version is older than the stored schema version", StatusCode: http.StatusConflict}
	ErrWriteFailed      = &AppError{Code: "WRITE_ERROR", Message: "Failed to write to the ledger database", StatusCode: http.StatusInternalServerError}
	ErrReadFailed       = &AppError{Code: "READ_ERROR", Message: "Failed to read from the ledger database", StatusCode: http.StatusInternalServerError}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Transaction errors.
var (
	ErrTransactionNotFound    = &AppError{Code: "TRANSACTION_NOT_FOUND", Message: "Transaction not found", StatusCode: http.StatusNotFound}
	ErrInvalidTransactionType = &AppError{Code: "INVALID_TRANSACTION_TYPE", Message: "Unsupported transaction type", StatusCode: http.StatusBadRequest}
	ErrNegativeAmount         = &AppError{Code: "NEGATIVE_AMOUNT", Message: "Transaction amount must not be negative", StatusCode: http.StatusBadRequest}
)

// Category errors.
var (
	ErrCategoryNotFound  = &AppError{Code: "CATEGORY_NOT_FOUND", Message: "Category not found", StatusCode: http.StatusNotFound}
	ErrCategoryInUse     = &AppError{Code: "CATEGORY_IN_USE", Message: "Category is referenced by existing transactions", StatusCode: http.StatusConflict}
	ErrDuplicateCategory = &AppError{Code: "DUPLICATE_CATEGORY", Message: "A category with this name and type already exists", StatusCode: http.StatusConflict}
)

// Setting errors.
var (
	ErrSettingNotFound = &AppError{Code: "SETTING_NOT_FOUND", Message: "Setting not found", StatusCode: http.StatusNotFound}
)

// Backup and import/export errors.
var (
	ErrBackupNotFound = &AppError{Code: "BACKUP_NOT_FOUND", Message: "Backup not found", StatusCode: http.StatusNotFound}
	ErrInvalidFormat  = &AppError{Code: "INVALID_FORMAT", Message: "Import payload is missing required fields", StatusCode: http.StatusBadRequest}
)
