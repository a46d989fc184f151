package ports

import (
	"context"

	"inheritance-vault/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// VaultRepository defines persistence operations for vaults.
// Methods accepting pgx.Tx run inside transaction blocks; GetByIDForUpdate
// takes the per-vault row lock that serializes concurrent mutations.
type VaultRepository interface {
	// Create inserts the vault and assigns its storage-generated id.
	Create(ctx context.Context, tx pgx.Tx, v *domain.Vault) error
	GetByID(ctx context.Context, id int64) (*domain.Vault, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*domain.Vault, error)
	Update(ctx context.Context, tx pgx.Tx, v *domain.Vault) error
	GetMany(ctx context.Context, ids []int64) ([]domain.Vault, error)
	// Stats returns the total vault count and the sum of unclaimed balances.
	Stats(ctx context.Context) (totalVaults int64, totalEscrowed int64, err error)
}

// TokenRepository defines persistence operations for inheritance tokens.
type TokenRepository interface {
	// Create inserts the token and assigns its storage-generated id.
	Create(ctx context.Context, tx pgx.Tx, t *domain.InheritanceToken) error
	GetByID(ctx context.Context, id int64) (*domain.InheritanceToken, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*domain.InheritanceToken, error)
	Deactivate(ctx context.Context, tx pgx.Tx, id int64) error
	Count(ctx context.Context) (int64, error)
}

// ShareRepository defines persistence for multi-beneficiary shares.
// Shares are write-once at vault creation; there is no update path.
type ShareRepository interface {
	CreateAll(ctx context.Context, tx pgx.Tx, shares []domain.BeneficiaryShare) error
	ListByVaultID(ctx context.Context, vaultID int64) ([]domain.BeneficiaryShare, error)
}

// IndexRole distinguishes the two identity->vault lookup indices.
type IndexRole string

const (
	IndexOwner       IndexRole = "owner"
	IndexBeneficiary IndexRole = "beneficiary"
)

// VaultIndexRepository is the append-only identity->vault index. Entries are
// never removed: retargeting a vault appends the new beneficiary and leaves
// the old row behind, so beneficiary lookups must filter against current
// vault state.
type VaultIndexRepository interface {
	Add(ctx context.Context, tx pgx.Tx, identity uuid.UUID, role IndexRole, vaultID int64) error
	VaultIDs(ctx context.Context, identity uuid.UUID, role IndexRole) ([]int64, error)
}

// FactRepository is the durable fact log. Append runs inside the mutating
// transaction so the log orders facts exactly as mutations committed.
type FactRepository interface {
	Append(ctx context.Context, tx pgx.Tx, f *domain.Fact) error
	ListByVaultID(ctx context.Context, vaultID int64, limit int) ([]domain.Fact, error)
}

// AccountRepository defines persistence operations for accounts.
type AccountRepository interface {
	Create(ctx context.Context, a *domain.Account) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	GetByUsername(ctx context.Context, username string) (*domain.Account, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
