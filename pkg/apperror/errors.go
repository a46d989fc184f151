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

func ErrInvalidAmount() *AppError {
	return New("VAL_001", "Amount must be greater than zero", http.StatusBadRequest)
}

func ErrInvalidBeneficiary() *AppError {
	return New("VAL_002", "Beneficiary identity is missing or invalid", http.StatusBadRequest)
}

func ErrInvalidUnlockTime() *AppError {
	return New("VAL_003", "Unlock time must be in the future", http.StatusBadRequest)
}

func ErrArityMismatch() *AppError {
	return New("VAL_004", "Beneficiary and percentage lists differ in length", http.StatusBadRequest)
}

func ErrEmptyBeneficiaryList() *AppError {
	return New("VAL_005", "Beneficiary list is empty", http.StatusBadRequest)
}

func ErrPercentageSumInvalid() *AppError {
	return New("VAL_006", "Share percentages must sum to exactly 100", http.StatusBadRequest)
}

func ErrTimeNotLater() *AppError {
	return New("VAL_007", "New unlock time must be later than the current one", http.StatusBadRequest)
}

func ErrInvalidInterval() *AppError {
	return New("VAL_008", "Heartbeat interval out of allowed range", http.StatusBadRequest)
}

// ---- Ledger Authorization (VAUTH) ----

func ErrNotOwner() *AppError {
	return New("VAUTH_001", "Caller is not the vault owner", http.StatusForbidden)
}

func ErrNotBeneficiary() *AppError {
	return New("VAUTH_002", "Caller is not the vault beneficiary", http.StatusForbidden)
}

func ErrTokenOwnerMismatch() *AppError {
	return New("VAUTH_003", "Token is not bound to the calling identity", http.StatusForbidden)
}

// ---- Ledger State (STATE) ----

func ErrVaultNotFound() *AppError {
	return New("STATE_001", "Vault not found", http.StatusNotFound)
}

func ErrAlreadyClaimed() *AppError {
	return New("STATE_002", "Vault has already been claimed", http.StatusConflict)
}

func ErrStillLocked() *AppError {
	return New("STATE_003", "Vault unlock time has not been reached", http.StatusConflict)
}

func ErrTokenNotFound() *AppError {
	return New("STATE_004", "Inheritance token not found", http.StatusNotFound)
}

func ErrTokenInactive() *AppError {
	return New("STATE_005", "Inheritance token has already been used", http.StatusConflict)
}

func ErrTokenVaultMismatch() *AppError {
	return New("STATE_006", "Token is not bound to this vault", http.StatusConflict)
}

func ErrHeartbeatNotEnabled() *AppError {
	return New("STATE_007", "Heartbeat is not enabled for this vault", http.StatusConflict)
}

func ErrNotMultiBeneficiaryVault() *AppError {
	return New("STATE_008", "Vault does not have multiple beneficiaries", http.StatusConflict)
}

func ErrCannotUpdateMultiBeneficiaryVault() *AppError {
	return New("STATE_009", "Multi-beneficiary shares are immutable", http.StatusConflict)
}

func ErrEmergencyWindowClosed() *AppError {
	return New("STATE_010", "Vault is already unlocked, use the claim path", http.StatusConflict)
}

// ---- Value Transfer (XFER) ----

func ErrValueTransferFailed(err error) *AppError {
	return Wrap("XFER_001", "Value transfer failed", http.StatusBadGateway, err)
}

func ErrInsufficientFunds() *AppError {
	return New("XFER_002", "Insufficient external balance", http.StatusPaymentRequired)
}

// ---- Account Authentication (AUTH) ----

func ErrInvalidCredentials() *AppError {
	return New("AUTH_001", "Invalid credentials", http.StatusUnauthorized)
}

func ErrUsernameExists() *AppError {
	return New("AUTH_002", "Username already exists", http.StatusConflict)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_003", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a request-shape validation error.
func Validation(message string) *AppError {
	return New("VAL_000", message, http.StatusBadRequest)
}
