package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"inheritance-vault/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// VaultRepo implements ports.VaultRepository.
type VaultRepo struct {
	pool Pool
}

// NewVaultRepo creates a new VaultRepo.
func NewVaultRepo(pool Pool) *VaultRepo {
	return &VaultRepo{pool: pool}
}

const vaultColumns = `id, owner_id, beneficiary_id, balance, unlock_time, claimed,
	heartbeat_enabled, heartbeat_interval_ns, last_heartbeat_at, note, created_at, updated_at`

// Create inserts a new vault and assigns its storage-generated id.
func (r *VaultRepo) Create(ctx context.Context, tx pgx.Tx, v *domain.Vault) error {
	query := `INSERT INTO vaults (owner_id, beneficiary_id, balance, unlock_time, claimed,
		heartbeat_enabled, heartbeat_interval_ns, last_heartbeat_at, note, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`

	err := tx.QueryRow(ctx, query,
		v.Owner, v.Beneficiary, v.Balance, v.UnlockTime, v.Claimed,
		v.HeartbeatEnabled, int64(v.HeartbeatInterval), v.LastHeartbeatAt,
		v.Note, v.CreatedAt, v.UpdatedAt,
	).Scan(&v.ID)
	if err != nil {
		return fmt.Errorf("insert vault: %w", err)
	}
	return nil
}

// GetByID fetches a vault by id (without locking).
func (r *VaultRepo) GetByID(ctx context.Context, id int64) (*domain.Vault, error) {
	query := `SELECT ` + vaultColumns + ` FROM vaults WHERE id = $1`

	v, err := scanVault(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vault by id: %w", err)
	}
	return v, nil
}

// GetByIDForUpdate fetches a vault by id with pessimistic locking.
// This MUST be called within a transaction.
func (r *VaultRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*domain.Vault, error) {
	query := `SELECT ` + vaultColumns + ` FROM vaults WHERE id = $1 FOR UPDATE`

	v, err := scanVault(tx.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vault for update: %w", err)
	}
	return v, nil
}

// Update rewrites the vault's mutable fields within a transaction.
func (r *VaultRepo) Update(ctx context.Context, tx pgx.Tx, v *domain.Vault) error {
	query := `UPDATE vaults SET beneficiary_id = $1, balance = $2, unlock_time = $3,
		claimed = $4, heartbeat_enabled = $5, heartbeat_interval_ns = $6,
		last_heartbeat_at = $7, note = $8, updated_at = $9
		WHERE id = $10`

	tag, err := tx.Exec(ctx, query,
		v.Beneficiary, v.Balance, v.UnlockTime, v.Claimed,
		v.HeartbeatEnabled, int64(v.HeartbeatInterval), v.LastHeartbeatAt,
		v.Note, v.UpdatedAt, v.ID,
	)
	if err != nil {
		return fmt.Errorf("update vault: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("vault not found: %d", v.ID)
	}
	return nil
}

// GetMany fetches vaults by id, ordered by id ascending.
func (r *VaultRepo) GetMany(ctx context.Context, ids []int64) ([]domain.Vault, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `SELECT ` + vaultColumns + ` FROM vaults WHERE id = ANY($1) ORDER BY id`

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("get vaults: %w", err)
	}
	defer rows.Close()

	var vaults []domain.Vault
	for rows.Next() {
		v, err := scanVault(rows)
		if err != nil {
			return nil, fmt.Errorf("scan vault: %w", err)
		}
		vaults = append(vaults, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate vaults: %w", err)
	}
	return vaults, nil
}

// Stats returns the total vault count and the sum of unclaimed balances.
func (r *VaultRepo) Stats(ctx context.Context) (int64, int64, error) {
	query := `SELECT COUNT(*), COALESCE(SUM(balance), 0) FROM vaults`

	var totalVaults, totalEscrowed int64
	if err := r.pool.QueryRow(ctx, query).Scan(&totalVaults, &totalEscrowed); err != nil {
		return 0, 0, fmt.Errorf("vault stats: %w", err)
	}
	return totalVaults, totalEscrowed, nil
}

func scanVault(row pgx.Row) (*domain.Vault, error) {
	v := &domain.Vault{}
	var intervalNs int64
	err := row.Scan(
		&v.ID, &v.Owner, &v.Beneficiary, &v.Balance, &v.UnlockTime, &v.Claimed,
		&v.HeartbeatEnabled, &intervalNs, &v.LastHeartbeatAt,
		&v.Note, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	v.HeartbeatInterval = time.Duration(intervalNs)
	return v, nil
}
