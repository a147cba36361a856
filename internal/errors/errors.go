// Package errors provides custom error types for the verde ledger.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import (
	"errors"
	"net/http"
)

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

// From returns err as an *AppError, or ErrInternalServer when err carries
// none.
func From(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return ErrInternalServer
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Profile errors.
var (
	ErrNoActiveUser = &AppError{Code: "NO_ACTIVE_USER", Message: "No user is logged in", StatusCode: http.StatusNotFound}
)

// Account errors.
var (
	ErrAccountNotFound = &AppError{Code: "ACCOUNT_NOT_FOUND", Message: "Account not found", StatusCode: http.StatusNotFound}
)

// Category errors.
var (
	ErrCategoryNotFound   = &AppError{Code: "CATEGORY_NOT_FOUND", Message: "Category not found", StatusCode: http.StatusNotFound}
	ErrSelfParentCategory = &AppError{Code: "SELF_PARENT_CATEGORY", Message: "A category cannot be its own parent", StatusCode: http.StatusBadRequest}
	ErrSystemCategory     = &AppError{Code: "SYSTEM_CATEGORY", Message: "System categories cannot be modified", StatusCode: http.StatusBadRequest}
)

// Transaction errors.
var (
	ErrTransactionNotFound    = &AppError{Code: "TRANSACTION_NOT_FOUND", Message: "Transaction not found", StatusCode: http.StatusNotFound}
	ErrInvalidTransactionType = &AppError{Code: "INVALID_TRANSACTION_TYPE", Message: "Unsupported transaction type", StatusCode: http.StatusBadRequest}
	ErrNegativeAmount         = &AppError{Code: "NEGATIVE_AMOUNT", Message: "Amount must not be negative", StatusCode: http.StatusBadRequest}
	ErrSameAccountTransfer    = &AppError{Code: "SAME_ACCOUNT_TRANSFER", Message: "Cannot transfer to the same account", StatusCode: http.StatusBadRequest}
	ErrMissingDestination     = &AppError{Code: "MISSING_DESTINATION", Message: "Transfers need a destination account", StatusCode: http.StatusBadRequest}
	ErrInvalidDate            = &AppError{Code: "INVALID_DATE", Message: "Dates must use the YYYY-MM-DD format", StatusCode: http.StatusBadRequest}
)

// Budget errors.
var (
	ErrBudgetNotFound = &AppError{Code: "BUDGET_NOT_FOUND", Message: "Budget not found", StatusCode: http.StatusNotFound}
	ErrInvalidLimit   = &AppError{Code: "INVALID_LIMIT", Message: "Budget limit must be greater than zero", StatusCode: http.StatusBadRequest}
)

// Schedule errors.
var (
	ErrScheduleNotFound = &AppError{Code: "SCHEDULE_NOT_FOUND", Message: "Schedule not found", StatusCode: http.StatusNotFound}
	ErrInvalidFrequency = &AppError{Code: "INVALID_FREQUENCY", Message: "Unsupported schedule frequency", StatusCode: http.StatusBadRequest}
)

// Investment errors.
var (
	ErrInvestmentNotFound = &AppError{Code: "INVESTMENT_NOT_FOUND", Message: "Investment not found", StatusCode: http.StatusNotFound}
)

// Goal errors.
var (
	ErrGoalNotFound = &AppError{Code: "GOAL_NOT_FOUND", Message: "Goal not found", StatusCode: http.StatusNotFound}
)
