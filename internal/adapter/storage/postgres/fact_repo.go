package postgres

import (
	"context"
	"fmt"

	"inheritance-vault/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// FactRepo implements ports.FactRepository, the durable fact log.
type FactRepo struct {
	pool Pool
}

// NewFactRepo creates a new FactRepo.
func NewFactRepo(pool Pool) *FactRepo {
	return &FactRepo{pool: pool}
}

// Append writes a fact inside the mutating transaction so the log orders
// facts exactly as mutations committed.
func (r *FactRepo) Append(ctx context.Context, tx pgx.Tx, f *domain.Fact) error {
	query := `INSERT INTO facts (id, type, vault_id, actor, recipient, amount, details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := tx.Exec(ctx, query,
		f.ID, string(f.Type), f.VaultID, f.Actor, f.Recipient, f.Amount, f.Details, f.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert fact: %w", err)
	}
	return nil
}

// ListByVaultID fetches the most recent facts for a vault, newest first.
func (r *FactRepo) ListByVaultID(ctx context.Context, vaultID int64, limit int) ([]domain.Fact, error) {
	query := `SELECT id, type, vault_id, actor, recipient, amount, details, created_at
		FROM facts WHERE vault_id = $1 ORDER BY created_at DESC, id DESC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, vaultID, limit)
	if err != nil {
		return nil, fmt.Errorf("list facts: %w", err)
	}
	defer rows.Close()

	var facts []domain.Fact
	for rows.Next() {
		var f domain.Fact
		var factType string
		if err := rows.Scan(&f.ID, &factType, &f.VaultID, &f.Actor, &f.Recipient,
			&f.Amount, &f.Details, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan fact: %w", err)
		}
		f.Type = domain.FactType(factType)
		facts = append(facts, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate facts: %w", err)
	}
	return facts, nil
}
