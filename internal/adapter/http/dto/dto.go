package dto

import "time"

// RegisterRequest is the request body for account registration.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

// LoginRequest is the request body for account login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterResponse is the response body for successful registration.
type RegisterResponse struct {
	AccountID string `json:"account_id"`
	Username  string `json:"username"`
	Balance   int64  `json:"balance"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// CreateVaultRequest is the request body for single-beneficiary vault creation.
type CreateVaultRequest struct {
	Beneficiary string    `json:"beneficiary" binding:"required,uuid"`
	UnlockTime  time.Time `json:"unlock_time" binding:"required"`
	Deposit     int64     `json:"deposit" binding:"required,gt=0"`
}

// CreateMultiVaultRequest is the request body for multi-beneficiary vault creation.
type CreateMultiVaultRequest struct {
	Beneficiaries []string  `json:"beneficiaries" binding:"required,min=1,dive,uuid"`
	Percentages   []int64   `json:"percentages" binding:"required,min=1,dive,gte=1,lte=100"`
	UnlockTime    time.Time `json:"unlock_time" binding:"required"`
	Deposit       int64     `json:"deposit" binding:"required,gt=0"`
}

// AddFundsRequest is the request body for topping up a vault.
type AddFundsRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

// ExtendVaultRequest is the request body for pushing the unlock time later.
type ExtendVaultRequest struct {
	UnlockTime time.Time `json:"unlock_time" binding:"required"`
}

// UpdateBeneficiaryRequest is the request body for retargeting a vault.
type UpdateBeneficiaryRequest struct {
	Beneficiary string `json:"beneficiary" binding:"required,uuid"`
}

// SetMessageRequest is the request body for updating the vault note.
// An empty message clears the note.
type SetMessageRequest struct {
	Message string `json:"message" binding:"max=1000"`
}

// EnableHeartbeatRequest is the request body for enabling proof-of-life tracking.
type EnableHeartbeatRequest struct {
	IntervalSeconds int64 `json:"interval_seconds" binding:"required,gt=0"`
}

// ClaimVaultRequest is the request body for a token-gated claim.
type ClaimVaultRequest struct {
	TokenID int64 `json:"token_id" binding:"required"`
}

// VaultResponse is the response body for vault state.
type VaultResponse struct {
	ID                int64           `json:"id"`
	Owner             string          `json:"owner"`
	Beneficiary       string          `json:"beneficiary,omitempty"`
	MultiBeneficiary  bool            `json:"multi_beneficiary"`
	Balance           int64           `json:"balance"`
	UnlockTime        string          `json:"unlock_time"`
	Claimed           bool            `json:"claimed"`
	HeartbeatEnabled  bool            `json:"heartbeat_enabled"`
	HeartbeatInterval int64           `json:"heartbeat_interval_seconds,omitempty"`
	LastHeartbeatAt   *string         `json:"last_heartbeat_at,omitempty"`
	Message           string          `json:"message,omitempty"`
	Shares            []ShareResponse `json:"shares,omitempty"`
	CreatedAt         string          `json:"created_at"`
}

// ShareResponse is one beneficiary's slice of a distribution plan.
type ShareResponse struct {
	Beneficiary string `json:"beneficiary"`
	Percentage  int64  `json:"percentage"`
}

// TokenResponse is the response body for inheritance token state.
type TokenResponse struct {
	ID          int64  `json:"id"`
	VaultID     int64  `json:"vault_id"`
	Beneficiary string `json:"beneficiary"`
	Active      bool   `json:"active"`
	MintedAt    string `json:"minted_at"`
}

// ClaimResponse is the response body for a completed single-recipient release.
type ClaimResponse struct {
	VaultID   int64  `json:"vault_id"`
	Recipient string `json:"recipient"`
	Amount    int64  `json:"amount"`
}

// PayoutResponse is one beneficiary's payout in a multi-beneficiary release.
type PayoutResponse struct {
	Beneficiary string `json:"beneficiary"`
	Amount      int64  `json:"amount"`
}

// MultiClaimResponse is the response body for a completed multi-beneficiary release.
type MultiClaimResponse struct {
	VaultID   int64            `json:"vault_id"`
	Total     int64            `json:"total"`
	Payouts   []PayoutResponse `json:"payouts"`
	Remainder int64            `json:"remainder"`
}

// HeartbeatStatusResponse is the response body for the overdue query.
type HeartbeatStatusResponse struct {
	VaultID int64 `json:"vault_id"`
	Overdue bool  `json:"overdue"`
}

// FactResponse is one entry of a vault's fact log.
type FactResponse struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	VaultID   int64  `json:"vault_id"`
	Actor     string `json:"actor"`
	Recipient string `json:"recipient,omitempty"`
	Amount    int64  `json:"amount,omitempty"`
	Details   string `json:"details,omitempty"`
	CreatedAt string `json:"created_at"`
}

// StatsResponse is the response body for ledger-wide aggregates.
type StatsResponse struct {
	TotalVaults   int64 `json:"total_vaults"`
	TotalTokens   int64 `json:"total_tokens"`
	TotalEscrowed int64 `json:"total_escrowed"`
}
