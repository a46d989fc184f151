package postgres

import (
	"context"
	"fmt"

	"inheritance-vault/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// ShareRepo implements ports.ShareRepository. Shares are write-once at vault
// creation; there is no update or delete path.
type ShareRepo struct {
	pool Pool
}

// NewShareRepo creates a new ShareRepo.
func NewShareRepo(pool Pool) *ShareRepo {
	return &ShareRepo{pool: pool}
}

// CreateAll inserts the full share list for a vault within a transaction.
func (r *ShareRepo) CreateAll(ctx context.Context, tx pgx.Tx, shares []domain.BeneficiaryShare) error {
	query := `INSERT INTO beneficiary_shares (vault_id, beneficiary_id, percentage)
		VALUES ($1, $2, $3)`

	for _, s := range shares {
		if _, err := tx.Exec(ctx, query, s.VaultID, s.Beneficiary, s.Percentage); err != nil {
			return fmt.Errorf("insert share: %w", err)
		}
	}
	return nil
}

// ListByVaultID fetches all shares for a vault in insertion order.
func (r *ShareRepo) ListByVaultID(ctx context.Context, vaultID int64) ([]domain.BeneficiaryShare, error) {
	query := `SELECT vault_id, beneficiary_id, percentage
		FROM beneficiary_shares WHERE vault_id = $1 ORDER BY id`

	rows, err := r.pool.Query(ctx, query, vaultID)
	if err != nil {
		return nil, fmt.Errorf("list shares: %w", err)
	}
	defer rows.Close()

	var shares []domain.BeneficiaryShare
	for rows.Next() {
		var s domain.BeneficiaryShare
		if err := rows.Scan(&s.VaultID, &s.Beneficiary, &s.Percentage); err != nil {
			return nil, fmt.Errorf("scan share: %w", err)
		}
		shares = append(shares, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate shares: %w", err)
	}
	return shares, nil
}
