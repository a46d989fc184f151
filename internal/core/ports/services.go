package ports

import (
	"context"
	"time"

	"inheritance-vault/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ValueTransfer is the value transfer backend. Both methods run inside the
// caller's database transaction: a failed transfer rolls the whole mutation
// back, so the ledger is never left claimed with an unpaid recipient.
type ValueTransfer interface {
	// Debit moves amount out of the identity's external balance into escrow.
	Debit(ctx context.Context, tx pgx.Tx, identity uuid.UUID, amount int64) error
	// Credit releases amount to the identity's external balance.
	Credit(ctx context.Context, tx pgx.Tx, identity uuid.UUID, amount int64) error
}

// FactPublisher fans committed facts out to external observers. Publishing is
// best-effort: the durable fact log is the source of truth.
type FactPublisher interface {
	Publish(ctx context.Context, f *domain.Fact) error
}

// --- Service Ports (Business Logic) ---

// LedgerService defines owner-side vault mutations.
type LedgerService interface {
	CreateVault(ctx context.Context, req CreateVaultRequest) (*domain.Vault, error)
	CreateMultiBeneficiaryVault(ctx context.Context, req CreateMultiVaultRequest) (*domain.Vault, error)
	AddFunds(ctx context.Context, caller uuid.UUID, vaultID int64, amount int64) (*domain.Vault, error)
	ExtendVaultTime(ctx context.Context, caller uuid.UUID, vaultID int64, newUnlockTime time.Time) (*domain.Vault, error)
	UpdateBeneficiary(ctx context.Context, caller uuid.UUID, vaultID int64, newBeneficiary uuid.UUID) (*domain.Vault, error)
	SetMessage(ctx context.Context, caller uuid.UUID, vaultID int64, text string) (*domain.Vault, error)
}

// CreateVaultRequest holds validated input for single-beneficiary vault creation.
type CreateVaultRequest struct {
	Owner       uuid.UUID
	Beneficiary uuid.UUID
	UnlockTime  time.Time
	Deposit     int64
}

// CreateMultiVaultRequest holds validated input for multi-beneficiary vault creation.
type CreateMultiVaultRequest struct {
	Owner         uuid.UUID
	Beneficiaries []uuid.UUID
	Percentages   []int64
	UnlockTime    time.Time
	Deposit       int64
}

// ClaimService defines the release-authorization operations that terminate a
// vault exactly once.
type ClaimService interface {
	MintToken(ctx context.Context, caller uuid.UUID, vaultID int64) (*domain.InheritanceToken, error)
	ClaimVault(ctx context.Context, caller uuid.UUID, vaultID int64, tokenID int64) (*ClaimResult, error)
	ClaimMultiBeneficiaryVault(ctx context.Context, caller uuid.UUID, vaultID int64) (*MultiClaimResult, error)
	EmergencyWithdraw(ctx context.Context, caller uuid.UUID, vaultID int64) (*ClaimResult, error)
}

// ClaimResult describes a completed single-recipient release.
type ClaimResult struct {
	VaultID   int64
	Recipient uuid.UUID
	Amount    int64
}

// Payout is one beneficiary's slice of a multi-beneficiary release.
type Payout struct {
	Beneficiary uuid.UUID
	Amount      int64
}

// MultiClaimResult describes a completed multi-beneficiary release.
// Remainder is the truncation residue that stays escrowed in the ledger.
type MultiClaimResult struct {
	VaultID   int64
	Total     int64
	Payouts   []Payout
	Remainder int64
}

// HeartbeatService defines proof-of-life tracking.
type HeartbeatService interface {
	EnableHeartbeat(ctx context.Context, caller uuid.UUID, vaultID int64, interval time.Duration) (*domain.Vault, error)
	RecordHeartbeat(ctx context.Context, caller uuid.UUID, vaultID int64) (*domain.Vault, error)
	IsHeartbeatOverdue(ctx context.Context, vaultID int64) (bool, error)
}

// QueryService defines the pure read surface over ledger state.
type QueryService interface {
	GetVaultDetails(ctx context.Context, vaultID int64) (*VaultDetails, error)
	GetOwnerVaults(ctx context.Context, owner uuid.UUID) ([]domain.Vault, error)
	GetBeneficiaryVaults(ctx context.Context, beneficiary uuid.UUID) ([]domain.Vault, error)
	GetVaultBeneficiaries(ctx context.Context, vaultID int64) ([]domain.BeneficiaryShare, error)
	GetTokenDetails(ctx context.Context, tokenID int64) (*domain.InheritanceToken, error)
	GetVaultFacts(ctx context.Context, vaultID int64, limit int) ([]domain.Fact, error)
	GetStats(ctx context.Context) (*LedgerStats, error)
}

// VaultDetails bundles a vault with its share list (empty for single-beneficiary).
type VaultDetails struct {
	Vault  domain.Vault              `json:"vault"`
	Shares []domain.BeneficiaryShare `json:"shares,omitempty"`
}

// LedgerStats holds ledger-wide aggregates.
type LedgerStats struct {
	TotalVaults   int64 `json:"total_vaults"`
	TotalTokens   int64 `json:"total_tokens"`
	TotalEscrowed int64 `json:"total_escrowed"`
}

// AuthService defines account registration and login for the transport layer.
// The ledger itself never authenticates identities, it only compares them.
type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*domain.Account, error)
	Login(ctx context.Context, username, password string) (string, time.Time, error) // token, expiry, error
}

// RegisterRequest holds input for account registration.
type RegisterRequest struct {
	Username string
	Password string
}

// HashService handles password hashing (Argon2id).
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}

// TokenService handles JWT token operations for transport authentication.
type TokenService interface {
	Generate(accountID uuid.UUID, username string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	AccountID uuid.UUID
	Username  string
}
