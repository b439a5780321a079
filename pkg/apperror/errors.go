package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Economy Business Rules (ECON) ----
// Expected outcomes of normal play, not exceptional conditions.

func ErrInvalidAmount() *AppError {
	return New("ECON_001", "Amount must be positive", http.StatusBadRequest)
}

func ErrInsufficientFunds() *AppError {
	return New("ECON_002", "Insufficient funds", http.StatusPaymentRequired)
}

func ErrSelfTransfer() *AppError {
	return New("ECON_003", "Cannot transfer to the same account", http.StatusBadRequest)
}

func ErrBalanceOverflow() *AppError {
	return New("ECON_004", "Balance would exceed the maximum representable value", http.StatusUnprocessableEntity)
}

func ErrNotFound(entity string) *AppError {
	return New("ECON_005", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrNegativeBalance() *AppError {
	return New("ECON_006", "Balance cannot be set below zero", http.StatusBadRequest)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrRemoteUnavailable(err error) *AppError {
	return Wrap("SYS_002", "Remote economy service unavailable", http.StatusBadGateway, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns an ECON_001-style validation error with a custom message.
func Validation(message string) *AppError {
	return New("ECON_001", message, http.StatusBadRequest)
}
