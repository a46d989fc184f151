package integration

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"inheritance-vault/internal/core/domain"
	"inheritance-vault/internal/core/ports"
	"inheritance-vault/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// --- In-Memory Vault Repo ---

type inMemoryVaultRepo struct {
	mu     sync.RWMutex
	vaults map[int64]domain.Vault
	nextID int64
}

func newInMemoryVaultRepo() *inMemoryVaultRepo {
	return &inMemoryVaultRepo{vaults: make(map[int64]domain.Vault), nextID: 1}
}

func (r *inMemoryVaultRepo) Create(ctx context.Context, tx pgx.Tx, v *domain.Vault) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	v.ID = r.nextID
	r.nextID++
	r.vaults[v.ID] = *v
	return nil
}

func (r *inMemoryVaultRepo) GetByID(ctx context.Context, id int64) (*domain.Vault, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.vaults[id]
	if !ok {
		return nil, nil
	}
	return &v, nil
}

func (r *inMemoryVaultRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*domain.Vault, error) {
	return r.GetByID(ctx, id)
}

func (r *inMemoryVaultRepo) Update(ctx context.Context, tx pgx.Tx, v *domain.Vault) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.vaults[v.ID]; !ok {
		return fmt.Errorf("vault not found")
	}
	r.vaults[v.ID] = *v
	return nil
}

func (r *inMemoryVaultRepo) GetMany(ctx context.Context, ids []int64) ([]domain.Vault, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.Vault
	for _, id := range ids {
		if v, ok := r.vaults[id]; ok {
			result = append(result, v)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *inMemoryVaultRepo) Stats(ctx context.Context) (int64, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var total, escrowed int64
	for _, v := range r.vaults {
		total++
		escrowed += v.Balance
	}
	return total, escrowed, nil
}

// --- In-Memory Token Repo ---

type inMemoryTokenRepo struct {
	mu     sync.RWMutex
	tokens map[int64]domain.InheritanceToken
	nextID int64
}

func newInMemoryTokenRepo() *inMemoryTokenRepo {
	return &inMemoryTokenRepo{tokens: make(map[int64]domain.InheritanceToken), nextID: 1}
}

func (r *inMemoryTokenRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.InheritanceToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t.ID = r.nextID
	r.nextID++
	r.tokens[t.ID] = *t
	return nil
}

func (r *inMemoryTokenRepo) GetByID(ctx context.Context, id int64) (*domain.InheritanceToken, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tokens[id]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (r *inMemoryTokenRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*domain.InheritanceToken, error) {
	return r.GetByID(ctx, id)
}

func (r *inMemoryTokenRepo) Deactivate(ctx context.Context, tx pgx.Tx, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tokens[id]
	if !ok {
		return fmt.Errorf("token not found")
	}
	t.Active = false
	r.tokens[id] = t
	return nil
}

func (r *inMemoryTokenRepo) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.tokens)), nil
}

// --- In-Memory Share Repo ---

type inMemoryShareRepo struct {
	mu     sync.RWMutex
	shares map[int64][]domain.BeneficiaryShare
}

func newInMemoryShareRepo() *inMemoryShareRepo {
	return &inMemoryShareRepo{shares: make(map[int64][]domain.BeneficiaryShare)}
}

func (r *inMemoryShareRepo) CreateAll(ctx context.Context, tx pgx.Tx, shares []domain.BeneficiaryShare) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range shares {
		r.shares[s.VaultID] = append(r.shares[s.VaultID], s)
	}
	return nil
}

func (r *inMemoryShareRepo) ListByVaultID(ctx context.Context, vaultID int64) ([]domain.BeneficiaryShare, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.BeneficiaryShare(nil), r.shares[vaultID]...), nil
}

// --- In-Memory Vault Index Repo (append-only) ---

type indexKey struct {
	identity uuid.UUID
	role     ports.IndexRole
	vaultID  int64
}

type inMemoryVaultIndexRepo struct {
	mu      sync.RWMutex
	entries map[indexKey]struct{}
}

func newInMemoryVaultIndexRepo() *inMemoryVaultIndexRepo {
	return &inMemoryVaultIndexRepo{entries: make(map[indexKey]struct{})}
}

func (r *inMemoryVaultIndexRepo) Add(ctx context.Context, tx pgx.Tx, identity uuid.UUID, role ports.IndexRole, vaultID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[indexKey{identity, role, vaultID}] = struct{}{}
	return nil
}

func (r *inMemoryVaultIndexRepo) VaultIDs(ctx context.Context, identity uuid.UUID, role ports.IndexRole) ([]int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var ids []int64
	for k := range r.entries {
		if k.identity == identity && k.role == role {
			ids = append(ids, k.vaultID)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

// --- In-Memory Fact Repo ---

type inMemoryFactRepo struct {
	mu    sync.RWMutex
	facts map[int64][]domain.Fact
}

func newInMemoryFactRepo() *inMemoryFactRepo {
	return &inMemoryFactRepo{facts: make(map[int64][]domain.Fact)}
}

func (r *inMemoryFactRepo) Append(ctx context.Context, tx pgx.Tx, f *domain.Fact) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.facts[f.VaultID] = append(r.facts[f.VaultID], *f)
	return nil
}

func (r *inMemoryFactRepo) ListByVaultID(ctx context.Context, vaultID int64, limit int) ([]domain.Fact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := r.facts[vaultID]
	// Newest first
	result := make([]domain.Fact, 0, len(all))
	for i := len(all) - 1; i >= 0 && len(result) < limit; i-- {
		result = append(result, all[i])
	}
	return result, nil
}

// --- In-Memory Account Repo (accounts + value transfer) ---

type inMemoryAccountRepo struct {
	mu       sync.RWMutex
	accounts map[uuid.UUID]domain.Account
}

func newInMemoryAccountRepo() *inMemoryAccountRepo {
	return &inMemoryAccountRepo{accounts: make(map[uuid.UUID]domain.Account)}
}

func (r *inMemoryAccountRepo) Create(ctx context.Context, a *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.accounts {
		if existing.Username == a.Username {
			return fmt.Errorf("username already exists")
		}
	}
	r.accounts[a.ID] = *a
	return nil
}

func (r *inMemoryAccountRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.accounts[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r *inMemoryAccountRepo) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.accounts {
		if a.Username == username {
			return &a, nil
		}
	}
	return nil, nil
}

func (r *inMemoryAccountRepo) Debit(ctx context.Context, tx pgx.Tx, identity uuid.UUID, amount int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.accounts[identity]
	if !ok {
		return fmt.Errorf("account not found")
	}
	if a.Balance < amount {
		return apperror.ErrInsufficientFunds()
	}
	a.Balance -= amount
	r.accounts[identity] = a
	return nil
}

func (r *inMemoryAccountRepo) Credit(ctx context.Context, tx pgx.Tx, identity uuid.UUID, amount int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.accounts[identity]
	if !ok {
		return fmt.Errorf("account not found")
	}
	a.Balance += amount
	r.accounts[identity] = a
	return nil
}

// --- Serializing Transactor ---

// serialTransactor serializes all transactions behind one mutex, standing in
// for the row locks that real PostgreSQL transactions take with
// SELECT ... FOR UPDATE. Concurrent claims therefore observe each other's
// commits, which is the property the concurrency tests exercise.
type serialTransactor struct {
	mu sync.Mutex
}

func newSerialTransactor() *serialTransactor {
	return &serialTransactor{}
}

func (t *serialTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	t.mu.Lock()
	return &serialTx{release: &t.mu}, nil
}

// serialTx is a pgx.Tx that releases the transactor mutex exactly once, on
// whichever of Commit or Rollback runs first.
type serialTx struct {
	release *sync.Mutex
	once    sync.Once
}

func (t *serialTx) done() {
	t.once.Do(t.release.Unlock)
}

func (t *serialTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *serialTx) Commit(ctx context.Context) error          { t.done(); return nil }
func (t *serialTx) Rollback(ctx context.Context) error        { t.done(); return nil }
func (t *serialTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *serialTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *serialTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *serialTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *serialTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *serialTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *serialTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *serialTx) Conn() *pgx.Conn { return nil }
