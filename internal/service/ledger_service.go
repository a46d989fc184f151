package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"inheritance-vault/internal/core/domain"
	"inheritance-vault/internal/core/ports"
	"inheritance-vault/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// LedgerServiceImpl implements ports.LedgerService. All mutations run inside
// a database transaction holding the vault's row lock, so operations on one
// vault serialize while distinct vaults proceed concurrently.
type LedgerServiceImpl struct {
	vaultRepo  ports.VaultRepository
	shareRepo  ports.ShareRepository
	indexRepo  ports.VaultIndexRepository
	factRepo   ports.FactRepository
	transfer   ports.ValueTransfer
	transactor ports.DBTransactor
	publisher  ports.FactPublisher
	log        zerolog.Logger
	now        func() time.Time
}

// NewLedgerService creates a new LedgerServiceImpl.
func NewLedgerService(
	vaultRepo ports.VaultRepository,
	shareRepo ports.ShareRepository,
	indexRepo ports.VaultIndexRepository,
	factRepo ports.FactRepository,
	transfer ports.ValueTransfer,
	transactor ports.DBTransactor,
	publisher ports.FactPublisher,
	log zerolog.Logger,
) *LedgerServiceImpl {
	return &LedgerServiceImpl{
		vaultRepo:  vaultRepo,
		shareRepo:  shareRepo,
		indexRepo:  indexRepo,
		factRepo:   factRepo,
		transfer:   transfer,
		transactor: transactor,
		publisher:  publisher,
		log:        log,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// CreateVault escrows a deposit into a new single-beneficiary vault.
func (s *LedgerServiceImpl) CreateVault(ctx context.Context, req ports.CreateVaultRequest) (*domain.Vault, error) {
	now := s.now()

	if req.Deposit <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	if req.Beneficiary == uuid.Nil {
		return nil, apperror.ErrInvalidBeneficiary()
	}
	if !req.UnlockTime.After(now) {
		return nil, apperror.ErrInvalidUnlockTime()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	// Escrow the deposit from the owner's external balance.
	if err := s.transfer.Debit(ctx, dbTx, req.Owner, req.Deposit); err != nil {
		return nil, transferError(err)
	}

	vault := &domain.Vault{
		Owner:       req.Owner,
		Beneficiary: req.Beneficiary,
		Balance:     req.Deposit,
		UnlockTime:  req.UnlockTime,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.vaultRepo.Create(ctx, dbTx, vault); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create vault: %w", err))
	}

	if err := s.indexRepo.Add(ctx, dbTx, req.Owner, ports.IndexOwner, vault.ID); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("index owner: %w", err))
	}
	if err := s.indexRepo.Add(ctx, dbTx, req.Beneficiary, ports.IndexBeneficiary, vault.ID); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("index beneficiary: %w", err))
	}

	fact := domain.NewFact(domain.FactVaultCreated, vault.ID, req.Owner, now)
	fact.Recipient = req.Beneficiary
	fact.Amount = req.Deposit
	if err := s.factRepo.Append(ctx, dbTx, fact); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("append fact: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.publish(ctx, fact)
	s.log.Info().
		Int64("vault_id", vault.ID).
		Str("owner", req.Owner.String()).
		Int64("deposit", req.Deposit).
		Time("unlock_time", req.UnlockTime).
		Msg("vault created")

	return vault, nil
}

// CreateMultiBeneficiaryVault escrows a deposit split across share percentages.
func (s *LedgerServiceImpl) CreateMultiBeneficiaryVault(ctx context.Context, req ports.CreateMultiVaultRequest) (*domain.Vault, error) {
	now := s.now()

	if len(req.Beneficiaries) == 0 {
		return nil, apperror.ErrEmptyBeneficiaryList()
	}
	if len(req.Beneficiaries) != len(req.Percentages) {
		return nil, apperror.ErrArityMismatch()
	}
	// Bounding each share to [1, 100] before summing keeps the sum itself
	// within int64, so a wrapped sum can never fake the 100 total.
	var pctSum int64
	for i, b := range req.Beneficiaries {
		if b == uuid.Nil {
			return nil, apperror.ErrInvalidBeneficiary()
		}
		if req.Percentages[i] <= 0 || req.Percentages[i] > 100 {
			return nil, apperror.ErrPercentageSumInvalid()
		}
		pctSum += req.Percentages[i]
	}
	if pctSum != 100 {
		return nil, apperror.ErrPercentageSumInvalid()
	}
	if req.Deposit <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	if !req.UnlockTime.After(now) {
		return nil, apperror.ErrInvalidUnlockTime()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.transfer.Debit(ctx, dbTx, req.Owner, req.Deposit); err != nil {
		return nil, transferError(err)
	}

	vault := &domain.Vault{
		Owner:       req.Owner,
		Beneficiary: domain.MultiBeneficiaryMarker,
		Balance:     req.Deposit,
		UnlockTime:  req.UnlockTime,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.vaultRepo.Create(ctx, dbTx, vault); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create vault: %w", err))
	}

	shares := make([]domain.BeneficiaryShare, len(req.Beneficiaries))
	for i, b := range req.Beneficiaries {
		shares[i] = domain.BeneficiaryShare{
			VaultID:     vault.ID,
			Beneficiary: b,
			Percentage:  req.Percentages[i],
		}
	}
	if err := s.shareRepo.CreateAll(ctx, dbTx, shares); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create shares: %w", err))
	}

	if err := s.indexRepo.Add(ctx, dbTx, req.Owner, ports.IndexOwner, vault.ID); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("index owner: %w", err))
	}
	for _, b := range req.Beneficiaries {
		if err := s.indexRepo.Add(ctx, dbTx, b, ports.IndexBeneficiary, vault.ID); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("index beneficiary: %w", err))
		}
	}

	fact := domain.NewFact(domain.FactMultiVaultCreated, vault.ID, req.Owner, now)
	fact.Amount = req.Deposit
	fact.Details = fmt.Sprintf("beneficiaries=%d", len(req.Beneficiaries))
	if err := s.factRepo.Append(ctx, dbTx, fact); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("append fact: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.publish(ctx, fact)
	s.log.Info().
		Int64("vault_id", vault.ID).
		Str("owner", req.Owner.String()).
		Int64("deposit", req.Deposit).
		Int("beneficiaries", len(req.Beneficiaries)).
		Msg("multi-beneficiary vault created")

	return vault, nil
}

// AddFunds escrows additional value into an existing vault.
func (s *LedgerServiceImpl) AddFunds(ctx context.Context, caller uuid.UUID, vaultID int64, amount int64) (*domain.Vault, error) {
	now := s.now()

	if amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	vault, err := s.lockOwnedVault(ctx, dbTx, caller, vaultID)
	if err != nil {
		return nil, err
	}

	if err := s.transfer.Debit(ctx, dbTx, caller, amount); err != nil {
		return nil, transferError(err)
	}

	vault.Balance += amount
	vault.UpdatedAt = now
	if err := s.vaultRepo.Update(ctx, dbTx, vault); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update vault: %w", err))
	}

	fact := domain.NewFact(domain.FactVaultFunded, vault.ID, caller, now)
	fact.Amount = amount
	if err := s.factRepo.Append(ctx, dbTx, fact); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("append fact: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.publish(ctx, fact)
	s.log.Info().
		Int64("vault_id", vault.ID).
		Int64("amount", amount).
		Int64("balance", vault.Balance).
		Msg("vault funded")

	return vault, nil
}

// ExtendVaultTime pushes the unlock time later. Extensions are monotonic: the
// lock can never be shortened.
func (s *LedgerServiceImpl) ExtendVaultTime(ctx context.Context, caller uuid.UUID, vaultID int64, newUnlockTime time.Time) (*domain.Vault, error) {
	now := s.now()

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	vault, err := s.lockOwnedVault(ctx, dbTx, caller, vaultID)
	if err != nil {
		return nil, err
	}

	if !newUnlockTime.After(vault.UnlockTime) {
		return nil, apperror.ErrTimeNotLater()
	}

	vault.UnlockTime = newUnlockTime
	vault.UpdatedAt = now
	if err := s.vaultRepo.Update(ctx, dbTx, vault); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update vault: %w", err))
	}

	fact := domain.NewFact(domain.FactVaultExtended, vault.ID, caller, now)
	fact.Details = newUnlockTime.UTC().Format(time.RFC3339)
	if err := s.factRepo.Append(ctx, dbTx, fact); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("append fact: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.publish(ctx, fact)
	s.log.Info().
		Int64("vault_id", vault.ID).
		Time("unlock_time", newUnlockTime).
		Msg("vault lock extended")

	return vault, nil
}

// UpdateBeneficiary retargets a single-beneficiary vault. The old index entry
// is left behind; beneficiary queries filter stale rows at read time. Tokens
// minted for the previous beneficiary become permanently unusable.
func (s *LedgerServiceImpl) UpdateBeneficiary(ctx context.Context, caller uuid.UUID, vaultID int64, newBeneficiary uuid.UUID) (*domain.Vault, error) {
	now := s.now()

	if newBeneficiary == uuid.Nil {
		return nil, apperror.ErrInvalidBeneficiary()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	vault, err := s.lockOwnedVault(ctx, dbTx, caller, vaultID)
	if err != nil {
		return nil, err
	}

	if vault.IsMultiBeneficiary() {
		return nil, apperror.ErrCannotUpdateMultiBeneficiaryVault()
	}

	vault.Beneficiary = newBeneficiary
	vault.UpdatedAt = now
	if err := s.vaultRepo.Update(ctx, dbTx, vault); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update vault: %w", err))
	}

	if err := s.indexRepo.Add(ctx, dbTx, newBeneficiary, ports.IndexBeneficiary, vault.ID); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("index beneficiary: %w", err))
	}

	fact := domain.NewFact(domain.FactBeneficiaryUpdated, vault.ID, caller, now)
	fact.Recipient = newBeneficiary
	if err := s.factRepo.Append(ctx, dbTx, fact); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("append fact: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.publish(ctx, fact)
	s.log.Info().
		Int64("vault_id", vault.ID).
		Str("beneficiary", newBeneficiary.String()).
		Msg("vault beneficiary updated")

	return vault, nil
}

// SetMessage replaces the note shown to the beneficiary.
func (s *LedgerServiceImpl) SetMessage(ctx context.Context, caller uuid.UUID, vaultID int64, text string) (*domain.Vault, error) {
	now := s.now()

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	vault, err := s.lockOwnedVault(ctx, dbTx, caller, vaultID)
	if err != nil {
		return nil, err
	}

	vault.Note = text
	vault.UpdatedAt = now
	if err := s.vaultRepo.Update(ctx, dbTx, vault); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update vault: %w", err))
	}

	fact := domain.NewFact(domain.FactMessageUpdated, vault.ID, caller, now)
	if err := s.factRepo.Append(ctx, dbTx, fact); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("append fact: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.publish(ctx, fact)
	s.log.Info().Int64("vault_id", vault.ID).Msg("vault message updated")

	return vault, nil
}

// lockOwnedVault fetches the vault under its row lock and runs the shared
// owner-mutation preconditions.
func (s *LedgerServiceImpl) lockOwnedVault(ctx context.Context, dbTx pgx.Tx, caller uuid.UUID, vaultID int64) (*domain.Vault, error) {
	vault, err := s.vaultRepo.GetByIDForUpdate(ctx, dbTx, vaultID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock vault: %w", err))
	}
	if vault == nil {
		return nil, apperror.ErrVaultNotFound()
	}
	if vault.Owner != caller {
		return nil, apperror.ErrNotOwner()
	}
	if vault.Claimed {
		return nil, apperror.ErrAlreadyClaimed()
	}
	return vault, nil
}

// publish fans a committed fact out to the stream, best-effort. The durable
// fact log written inside the transaction is the source of truth.
func (s *LedgerServiceImpl) publish(ctx context.Context, f *domain.Fact) {
	publishFact(ctx, s.publisher, s.log, f)
}

func publishFact(ctx context.Context, pub ports.FactPublisher, log zerolog.Logger, f *domain.Fact) {
	if pub == nil {
		return
	}
	if err := pub.Publish(ctx, f); err != nil {
		log.Warn().Err(err).
			Str("fact_type", string(f.Type)).
			Int64("vault_id", f.VaultID).
			Msg("fact stream publish failed")
	}
}

// transferError maps value-transfer failures onto the error taxonomy,
// passing through already-classified errors.
func transferError(err error) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return apperror.ErrValueTransferFailed(err)
}
