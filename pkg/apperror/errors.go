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

// ---- Input Validation (VAL) ----

func ErrInvalidInput(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

func ErrUnknownToken(symbol string) *AppError {
	return New("VAL_002", fmt.Sprintf("unsupported token %q", symbol), http.StatusBadRequest)
}

// ---- Lifecycle Business Logic (PAY) ----

func ErrInsufficientBalance() *AppError {
	return New("PAY_001", "Insufficient balance for requested amount", http.StatusPaymentRequired)
}

func ErrInvalidStatus(message string) *AppError {
	return New("PAY_002", message, http.StatusConflict)
}

func ErrRecordNotFound() *AppError {
	return New("PAY_003", "Token record not found", http.StatusNotFound)
}

func ErrOperationInProgress() *AppError {
	return New("PAY_004", "Another operation on this record is already in progress", http.StatusConflict)
}

// ---- Ledger (NET / CHAIN) ----

func ErrNetworkUnavailable(err error) *AppError {
	return Wrap("NET_001", "All ledger endpoints exhausted", http.StatusBadGateway, err)
}

func ErrLedgerRejected(reason string) *AppError {
	return New("NET_002", fmt.Sprintf("Ledger rejected transaction: %s", reason), http.StatusUnprocessableEntity)
}

func ErrLockObjectNotFound(digest string) *AppError {
	return New("CHAIN_001", fmt.Sprintf("Confirmed transaction %s yielded no shared lock object", digest), http.StatusBadGateway)
}

// ---- Record Store (STORE) ----

func ErrStoreWriteFailed(err error) *AppError {
	return Wrap("STORE_001", "Record persistence failed after ledger action succeeded", http.StatusInternalServerError, err)
}

// ---- Cipher (CRYPTO) ----

func ErrDecryptionFailed(err error) *AppError {
	return Wrap("CRYPTO_001", "Payload decryption failed (wrong key or corrupted ciphertext)", http.StatusUnprocessableEntity, err)
}

func ErrDecryptionGarbage(err error) *AppError {
	return Wrap("CRYPTO_002", "Decrypted payload is not the expected structure", http.StatusUnprocessableEntity, err)
}

// ---- Session (AUTH) ----

func ErrInvalidSession() *AppError {
	return New("AUTH_001", "Invalid or expired session", http.StatusUnauthorized)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
