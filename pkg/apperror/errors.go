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
	Err        error  `json:"-"` // internal cause, never sent to clients
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

// Is matches on Code so callers can compare against a constructor result.
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
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

// CodeOf returns the AppError code carried by err, or "" if there is none.
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// ---- Integrity (SEC) ----

func ErrInvalidSignature() *AppError {
	return New("SEC_002", "Invalid signature", http.StatusUnauthorized)
}

// ErrIntegrityFailure means signing material is unavailable. Settlement must stop.
func ErrIntegrityFailure(err error) *AppError {
	return Wrap("SEC_003", "Transaction integrity service unavailable", http.StatusInternalServerError, err)
}

// ---- Payment Business Logic (PAY) ----

func ErrInsufficientFunds() *AppError {
	return New("PAY_001", "Insufficient balance", http.StatusPaymentRequired)
}

func ErrInvalidAmount() *AppError {
	return New("PAY_002", "Amount must be greater than zero", http.StatusBadRequest)
}

func ErrNotFound(entity string) *AppError {
	return New("PAY_004", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrSelfTransfer() *AppError {
	return New("PAY_008", "Cannot send money to yourself", http.StatusBadRequest)
}

func ErrUnsupportedRail() *AppError {
	return New("PAY_009", "Unsupported payment rail", http.StatusBadRequest)
}

// ---- Authentication (AUTH) ----

func ErrInvalidCredentials() *AppError {
	return New("AUTH_001", "Invalid credentials", http.StatusUnauthorized)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_003", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrInvalidPIN() *AppError {
	return New("AUTH_004", "Invalid UPI PIN", http.StatusUnauthorized)
}

func ErrInvalidCard(reason string) *AppError {
	return New("AUTH_008", reason, http.StatusUnauthorized)
}

func ErrStepUpRequired() *AppError {
	return New("AUTH_005", "Two-factor code required for high-value payment", http.StatusUnauthorized)
}

func ErrStepUpInvalid() *AppError {
	return New("AUTH_006", "Invalid two-factor code", http.StatusUnauthorized)
}

func ErrStepUpNotConfigured() *AppError {
	return New("AUTH_007", "Two-factor authentication has not been set up", http.StatusBadRequest)
}

// ---- Bank OTP challenge (OTP) ----

func ErrChallengeNotFound() *AppError {
	return New("OTP_001", "No OTP request found, initiate the payment again", http.StatusNotFound)
}

func ErrChallengeExpired() *AppError {
	return New("OTP_002", "OTP expired, initiate the payment again", http.StatusGone)
}

func ErrChallengeMismatch() *AppError {
	return New("OTP_003", "Invalid OTP", http.StatusUnauthorized)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

func ErrEncryptionFailure(err error) *AppError {
	return Wrap("SYS_003", "Encryption service failure", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a VAL_001 error for malformed or missing input.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}
