package postgres

import (
	"context"
	"fmt"

	"inheritance-vault/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// VaultIndexRepo implements ports.VaultIndexRepository. The index is
// append-only: rows are never removed, so beneficiary reads filter stale
// entries against current vault state.
type VaultIndexRepo struct {
	pool Pool
}

// NewVaultIndexRepo creates a new VaultIndexRepo.
func NewVaultIndexRepo(pool Pool) *VaultIndexRepo {
	return &VaultIndexRepo{pool: pool}
}

// Add appends an identity->vault index entry within a transaction.
// Duplicate entries are ignored.
func (r *VaultIndexRepo) Add(ctx context.Context, tx pgx.Tx, identity uuid.UUID, role ports.IndexRole, vaultID int64) error {
	query := `INSERT INTO vault_index (identity, role, vault_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (identity, role, vault_id) DO NOTHING`

	if _, err := tx.Exec(ctx, query, identity, string(role), vaultID); err != nil {
		return fmt.Errorf("insert index entry: %w", err)
	}
	return nil
}

// VaultIDs lists the vault ids ever indexed for an identity and role.
func (r *VaultIndexRepo) VaultIDs(ctx context.Context, identity uuid.UUID, role ports.IndexRole) ([]int64, error) {
	query := `SELECT vault_id FROM vault_index
		WHERE identity = $1 AND role = $2 ORDER BY vault_id`

	rows, err := r.pool.Query(ctx, query, identity, string(role))
	if err != nil {
		return nil, fmt.Errorf("list index entries: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan index entry: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate index entries: %w", err)
	}
	return ids, nil
}
