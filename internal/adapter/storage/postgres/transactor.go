package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Transactor implements ports.DBTransactor over the connection pool. Every
// vault mutation runs inside one of these transactions, which carry the
// SELECT ... FOR UPDATE row locks that serialize operations per vault.
type Transactor struct {
	pool Pool
}

// NewTransactor creates a Transactor wrapping the connection pool.
func NewTransactor(pool Pool) *Transactor {
	return &Transactor{pool: pool}
}

// Begin starts a transaction for a vault mutation.
func (t *Transactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return t.pool.Begin(ctx)
}
