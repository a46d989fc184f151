package service

import (
	"context"
	"fmt"
	"time"

	"inheritance-vault/internal/core/domain"
	"inheritance-vault/internal/core/ports"
	"inheritance-vault/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ClaimServiceImpl implements ports.ClaimService. Every terminal operation
// validates under the vault's row lock, mutates, and transfers inside one
// database transaction: a failed payout rolls the claim back, so the vault is
// never marked claimed with value still owed.
type ClaimServiceImpl struct {
	vaultRepo  ports.VaultRepository
	tokenRepo  ports.TokenRepository
	shareRepo  ports.ShareRepository
	factRepo   ports.FactRepository
	transfer   ports.ValueTransfer
	transactor ports.DBTransactor
	publisher  ports.FactPublisher
	log        zerolog.Logger
	now        func() time.Time
}

// NewClaimService creates a new ClaimServiceImpl.
func NewClaimService(
	vaultRepo ports.VaultRepository,
	tokenRepo ports.TokenRepository,
	shareRepo ports.ShareRepository,
	factRepo ports.FactRepository,
	transfer ports.ValueTransfer,
	transactor ports.DBTransactor,
	publisher ports.FactPublisher,
	log zerolog.Logger,
) *ClaimServiceImpl {
	return &ClaimServiceImpl{
		vaultRepo:  vaultRepo,
		tokenRepo:  tokenRepo,
		shareRepo:  shareRepo,
		factRepo:   factRepo,
		transfer:   transfer,
		transactor: transactor,
		publisher:  publisher,
		log:        log,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// MintToken binds a fresh inheritance token to the vault's current
// beneficiary. No uniqueness is enforced: an owner may mint several tokens
// for one vault, and retargeting the vault strands all of them.
func (s *ClaimServiceImpl) MintToken(ctx context.Context, caller uuid.UUID, vaultID int64) (*domain.InheritanceToken, error) {
	now := s.now()

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

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

	token := &domain.InheritanceToken{
		VaultID:     vault.ID,
		Beneficiary: vault.Beneficiary,
		Active:      true,
		MintedAt:    now,
	}
	if err := s.tokenRepo.Create(ctx, dbTx, token); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create token: %w", err))
	}

	fact := domain.NewFact(domain.FactTokenMinted, vault.ID, caller, now)
	fact.Recipient = token.Beneficiary
	fact.Details = fmt.Sprintf("token_id=%d", token.ID)
	if err := s.factRepo.Append(ctx, dbTx, fact); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("append fact: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.publish(ctx, fact)
	s.log.Info().
		Int64("vault_id", vault.ID).
		Int64("token_id", token.ID).
		Str("beneficiary", token.Beneficiary.String()).
		Msg("inheritance token minted")

	return token, nil
}

// ClaimVault releases a single-beneficiary vault to its beneficiary. All
// checks run before any mutation, in a fixed order so each failure surfaces
// as its own named error.
func (s *ClaimServiceImpl) ClaimVault(ctx context.Context, caller uuid.UUID, vaultID int64, tokenID int64) (*ports.ClaimResult, error) {
	now := s.now()

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	vault, err := s.vaultRepo.GetByIDForUpdate(ctx, dbTx, vaultID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock vault: %w", err))
	}
	if vault == nil {
		return nil, apperror.ErrVaultNotFound()
	}
	if vault.Claimed {
		return nil, apperror.ErrAlreadyClaimed()
	}
	if !vault.IsUnlocked(now) {
		return nil, apperror.ErrStillLocked()
	}
	if vault.Beneficiary != caller {
		return nil, apperror.ErrNotBeneficiary()
	}

	token, err := s.tokenRepo.GetByIDForUpdate(ctx, dbTx, tokenID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock token: %w", err))
	}
	if token == nil {
		return nil, apperror.ErrTokenNotFound()
	}
	if !token.Active {
		return nil, apperror.ErrTokenInactive()
	}
	if token.VaultID != vaultID {
		return nil, apperror.ErrTokenVaultMismatch()
	}
	if token.Beneficiary != caller {
		return nil, apperror.ErrTokenOwnerMismatch()
	}

	amount := vault.Balance
	vault.Claimed = true
	vault.Balance = 0
	vault.UpdatedAt = now
	if err := s.vaultRepo.Update(ctx, dbTx, vault); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update vault: %w", err))
	}

	if err := s.tokenRepo.Deactivate(ctx, dbTx, token.ID); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("deactivate token: %w", err))
	}

	if err := s.transfer.Credit(ctx, dbTx, caller, amount); err != nil {
		return nil, transferError(err)
	}

	fact := domain.NewFact(domain.FactVaultClaimed, vault.ID, caller, now)
	fact.Recipient = caller
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
		Int64("token_id", token.ID).
		Str("beneficiary", caller.String()).
		Int64("amount", amount).
		Msg("vault claimed")

	return &ports.ClaimResult{VaultID: vault.ID, Recipient: caller, Amount: amount}, nil
}

// ClaimMultiBeneficiaryVault releases a multi-beneficiary vault, paying each
// share its truncated percentage of the snapshot balance. Any caller may
// trigger it once the unlock time has passed. The truncation remainder is
// not redistributed: it stays escrowed in the ledger.
func (s *ClaimServiceImpl) ClaimMultiBeneficiaryVault(ctx context.Context, caller uuid.UUID, vaultID int64) (*ports.MultiClaimResult, error) {
	now := s.now()

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	vault, err := s.vaultRepo.GetByIDForUpdate(ctx, dbTx, vaultID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock vault: %w", err))
	}
	if vault == nil {
		return nil, apperror.ErrVaultNotFound()
	}
	if vault.Claimed {
		return nil, apperror.ErrAlreadyClaimed()
	}
	if !vault.IsUnlocked(now) {
		return nil, apperror.ErrStillLocked()
	}
	if !vault.IsMultiBeneficiary() {
		return nil, apperror.ErrNotMultiBeneficiaryVault()
	}

	shares, err := s.shareRepo.ListByVaultID(ctx, vaultID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list shares: %w", err))
	}
	if len(shares) == 0 {
		return nil, apperror.ErrNotMultiBeneficiaryVault()
	}

	total := vault.Balance
	vault.Claimed = true
	vault.Balance = 0
	vault.UpdatedAt = now
	if err := s.vaultRepo.Update(ctx, dbTx, vault); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update vault: %w", err))
	}

	payouts := make([]ports.Payout, 0, len(shares))
	facts := make([]*domain.Fact, 0, len(shares))
	var paid int64
	for _, share := range shares {
		amount := domain.SharePayout(total, share.Percentage)
		// Percentages are validated at creation; a payout outside what is
		// left of the balance means corrupted share data.
		if amount < 0 || paid+amount > total {
			return nil, apperror.InternalError(fmt.Errorf("share payout %d out of range for vault %d", amount, vault.ID))
		}
		if amount > 0 {
			if err := s.transfer.Credit(ctx, dbTx, share.Beneficiary, amount); err != nil {
				return nil, transferError(err)
			}
		}
		paid += amount
		payouts = append(payouts, ports.Payout{Beneficiary: share.Beneficiary, Amount: amount})

		fact := domain.NewFact(domain.FactVaultClaimed, vault.ID, caller, now)
		fact.Recipient = share.Beneficiary
		fact.Amount = amount
		if err := s.factRepo.Append(ctx, dbTx, fact); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("append fact: %w", err))
		}
		facts = append(facts, fact)
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	for _, fact := range facts {
		s.publish(ctx, fact)
	}
	s.log.Info().
		Int64("vault_id", vault.ID).
		Int64("total", total).
		Int64("paid", paid).
		Int64("remainder", total-paid).
		Int("shares", len(shares)).
		Msg("multi-beneficiary vault claimed")

	return &ports.MultiClaimResult{
		VaultID:   vault.ID,
		Total:     total,
		Payouts:   payouts,
		Remainder: total - paid,
	}, nil
}

// EmergencyWithdraw lets the owner reclaim the full balance before the
// unlock time. After unlock only the claim path remains: the two terminal
// operations are mutually exclusive in time.
func (s *ClaimServiceImpl) EmergencyWithdraw(ctx context.Context, caller uuid.UUID, vaultID int64) (*ports.ClaimResult, error) {
	now := s.now()

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

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
	if vault.IsUnlocked(now) {
		return nil, apperror.ErrEmergencyWindowClosed()
	}

	amount := vault.Balance
	vault.Claimed = true
	vault.Balance = 0
	vault.UpdatedAt = now
	if err := s.vaultRepo.Update(ctx, dbTx, vault); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update vault: %w", err))
	}

	if err := s.transfer.Credit(ctx, dbTx, caller, amount); err != nil {
		return nil, transferError(err)
	}

	fact := domain.NewFact(domain.FactEmergencyWithdraw, vault.ID, caller, now)
	fact.Recipient = caller
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
		Str("owner", caller.String()).
		Int64("amount", amount).
		Msg("emergency withdrawal completed")

	return &ports.ClaimResult{VaultID: vault.ID, Recipient: caller, Amount: amount}, nil
}

func (s *ClaimServiceImpl) publish(ctx context.Context, f *domain.Fact) {
	publishFact(ctx, s.publisher, s.log, f)
}
