package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New("STATE_002", "Vault has already been claimed", http.StatusConflict),
			expected: "[STATE_002] Vault has already been claimed",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("SYS_001", "DB error", http.StatusInternalServerError, fmt.Errorf("connection refused")),
			expected: "[SYS_001] DB error: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap("SYS_001", "wrapped", http.StatusInternalServerError, inner)

	assert.True(t, errors.Is(appErr, inner))
}

func TestAppError_IsNilUnwrap(t *testing.T) {
	appErr := New("VAL_001", "test", http.StatusBadRequest)
	assert.Nil(t, appErr.Unwrap())
}

func TestValidationErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"InvalidAmount", ErrInvalidAmount(), "VAL_001", 400},
		{"InvalidBeneficiary", ErrInvalidBeneficiary(), "VAL_002", 400},
		{"InvalidUnlockTime", ErrInvalidUnlockTime(), "VAL_003", 400},
		{"ArityMismatch", ErrArityMismatch(), "VAL_004", 400},
		{"EmptyBeneficiaryList", ErrEmptyBeneficiaryList(), "VAL_005", 400},
		{"PercentageSumInvalid", ErrPercentageSumInvalid(), "VAL_006", 400},
		{"TimeNotLater", ErrTimeNotLater(), "VAL_007", 400},
		{"InvalidInterval", ErrInvalidInterval(), "VAL_008", 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestStateErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"VaultNotFound", ErrVaultNotFound(), "STATE_001", 404},
		{"AlreadyClaimed", ErrAlreadyClaimed(), "STATE_002", 409},
		{"StillLocked", ErrStillLocked(), "STATE_003", 409},
		{"TokenNotFound", ErrTokenNotFound(), "STATE_004", 404},
		{"TokenInactive", ErrTokenInactive(), "STATE_005", 409},
		{"TokenVaultMismatch", ErrTokenVaultMismatch(), "STATE_006", 409},
		{"HeartbeatNotEnabled", ErrHeartbeatNotEnabled(), "STATE_007", 409},
		{"NotMultiBeneficiaryVault", ErrNotMultiBeneficiaryVault(), "STATE_008", 409},
		{"CannotUpdateMultiBeneficiaryVault", ErrCannotUpdateMultiBeneficiaryVault(), "STATE_009", 409},
		{"EmergencyWindowClosed", ErrEmergencyWindowClosed(), "STATE_010", 409},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestAuthorizationErrors(t *testing.T) {
	assert.Equal(t, "VAUTH_001", ErrNotOwner().Code)
	assert.Equal(t, http.StatusForbidden, ErrNotOwner().HTTPStatus)
	assert.Equal(t, "VAUTH_002", ErrNotBeneficiary().Code)
	assert.Equal(t, "VAUTH_003", ErrTokenOwnerMismatch().Code)
}

func TestTransferErrors(t *testing.T) {
	inner := fmt.Errorf("recipient account missing")
	xfer := ErrValueTransferFailed(inner)
	assert.Equal(t, "XFER_001", xfer.Code)
	assert.True(t, errors.Is(xfer, inner))

	assert.Equal(t, "XFER_002", ErrInsufficientFunds().Code)
	assert.Equal(t, http.StatusPaymentRequired, ErrInsufficientFunds().HTTPStatus)
}
