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

// ---- Gateway callback (GW) ----

func ErrMalformedCallback(field string) *AppError {
	return New("GW_001", fmt.Sprintf("Missing required callback field: %s", field), http.StatusBadRequest)
}

func ErrSignatureMismatch() *AppError {
	return New("GW_002", "Callback signature verification failed", http.StatusBadRequest)
}

func ErrUnknownTrade(tradeNo string) *AppError {
	return New("GW_003", fmt.Sprintf("No record for trade number %s", tradeNo), http.StatusBadRequest)
}

func ErrUnknownKind(kind string) *AppError {
	return New("GW_004", fmt.Sprintf("Unknown transaction kind %q", kind), http.StatusBadRequest)
}

func ErrAlreadyTerminal(tradeNo string) *AppError {
	return New("GW_005", fmt.Sprintf("Trade %s is already in a terminal state", tradeNo), http.StatusConflict)
}

// ---- Checkout validation (PAY) ----

func ErrInvalidAmount() *AppError {
	return New("PAY_001", "Amount must be a positive integer", http.StatusBadRequest)
}

func ErrMissingDonorInfo() *AppError {
	return New("PAY_002", "Donor name and email are required", http.StatusBadRequest)
}

func ErrRetryNotAllowed(tradeNo string) *AppError {
	return New("PAY_003", fmt.Sprintf("Trade %s is not in a failed state; retry refused", tradeNo), http.StatusConflict)
}

func ErrNotFound(entity string) *AppError {
	return New("PAY_004", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- Identity (AUTH) ----

// ErrMissingIdentity signals an absent or malformed forwarded user identity.
func ErrMissingIdentity() *AppError {
	return New("AUTH_001", "Missing or invalid user identity", http.StatusUnauthorized)
}

// ---- Rate limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a request-binding validation error.
func Validation(message string) *AppError {
	return New("PAY_000", message, http.StatusBadRequest)
}
