package postgres

import (
	"context"
	"errors"
	"fmt"

	"inheritance-vault/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// TokenRepo implements ports.TokenRepository.
type TokenRepo struct {
	pool Pool
}

// NewTokenRepo creates a new TokenRepo.
func NewTokenRepo(pool Pool) *TokenRepo {
	return &TokenRepo{pool: pool}
}

// Create inserts a new inheritance token and assigns its storage-generated id.
func (r *TokenRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.InheritanceToken) error {
	query := `INSERT INTO inheritance_tokens (vault_id, beneficiary_id, active, minted_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	err := tx.QueryRow(ctx, query, t.VaultID, t.Beneficiary, t.Active, t.MintedAt).Scan(&t.ID)
	if err != nil {
		return fmt.Errorf("insert token: %w", err)
	}
	return nil
}

// GetByID fetches a token by id (without locking).
func (r *TokenRepo) GetByID(ctx context.Context, id int64) (*domain.InheritanceToken, error) {
	query := `SELECT id, vault_id, beneficiary_id, active, minted_at
		FROM inheritance_tokens WHERE id = $1`

	t := &domain.InheritanceToken{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.VaultID, &t.Beneficiary, &t.Active, &t.MintedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get token by id: %w", err)
	}
	return t, nil
}

// GetByIDForUpdate fetches a token by id with pessimistic locking.
// This MUST be called within a transaction.
func (r *TokenRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*domain.InheritanceToken, error) {
	query := `SELECT id, vault_id, beneficiary_id, active, minted_at
		FROM inheritance_tokens WHERE id = $1 FOR UPDATE`

	t := &domain.InheritanceToken{}
	err := tx.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.VaultID, &t.Beneficiary, &t.Active, &t.MintedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get token for update: %w", err)
	}
	return t, nil
}

// Deactivate marks a token as consumed within a transaction.
func (r *TokenRepo) Deactivate(ctx context.Context, tx pgx.Tx, id int64) error {
	query := `UPDATE inheritance_tokens SET active = FALSE WHERE id = $1`

	tag, err := tx.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deactivate token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("token not found: %d", id)
	}
	return nil
}

// Count returns the total number of minted tokens.
func (r *TokenRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM inheritance_tokens`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count tokens: %w", err)
	}
	return count, nil
}
