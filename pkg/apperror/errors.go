package apperror

import (
	"errors"
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

// HasCode reports whether err is, or wraps, an AppError with the given code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

const (
	CodeDecode        = "STORE_001"
	CodeSerialization = "STORE_002"
	CodeStorage       = "STORE_003"
	CodeCartIndex     = "CART_001"
	CodeSession       = "SESSION_001"
	CodeWalletSigning = "WALLET_001"
	CodeRateLimit     = "RATE_001"
	CodeValidation    = "REQ_001"
	CodeInternal      = "SYS_001"
)

// ---- Persistence (STORE) ----

// ErrDecode reports stored text under key that is not valid JSON for its record type.
func ErrDecode(key string, err error) *AppError {
	return Wrap(CodeDecode, fmt.Sprintf("Stored value for %s is malformed", key), http.StatusInternalServerError, err)
}

// ErrSerialization reports a value that cannot be encoded for storage under key.
func ErrSerialization(key string, err error) *AppError {
	return Wrap(CodeSerialization, fmt.Sprintf("Value for %s cannot be serialized", key), http.StatusBadRequest, err)
}

// ErrInvalidRecord reports a value for key that fails record validation.
func ErrInvalidRecord(key string, err error) *AppError {
	return Wrap(CodeValidation, fmt.Sprintf("Value for %s is invalid", key), http.StatusBadRequest, err)
}

func ErrStorage(err error) *AppError {
	return Wrap(CodeStorage, "Storage backend unavailable", http.StatusServiceUnavailable, err)
}

// ---- Cart (CART) ----

func ErrCartIndexOutOfRange(index, length int) *AppError {
	return New(CodeCartIndex, fmt.Sprintf("Cart index %d out of range [0,%d)", index, length), http.StatusBadRequest)
}

// ---- Session (SESSION) ----

func ErrMissingSession() *AppError {
	return New(CodeSession, "Missing or invalid session", http.StatusUnauthorized)
}

// ---- Wallet (WALLET) ----

func ErrWalletSigning(err error) *AppError {
	return Wrap(CodeWalletSigning, "Wallet request signing failed", http.StatusInternalServerError, err)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New(CodeRateLimit, "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- Requests & System ----

// Validation returns a request validation error.
func Validation(message string) *AppError {
	return New(CodeValidation, message, http.StatusBadRequest)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap(CodeInternal, "Internal server error", http.StatusInternalServerError, err)
}
