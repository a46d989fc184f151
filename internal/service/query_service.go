package service

import (
	"context"
	"fmt"

	"inheritance-vault/internal/core/domain"
	"inheritance-vault/internal/core/ports"
	"inheritance-vault/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// QueryServiceImpl implements ports.QueryService. All reads run without row
// locks; callers get a consistent snapshot per query, not across queries.
type QueryServiceImpl struct {
	vaultRepo ports.VaultRepository
	tokenRepo ports.TokenRepository
	shareRepo ports.ShareRepository
	indexRepo ports.VaultIndexRepository
	factRepo  ports.FactRepository
	log       zerolog.Logger
}

// NewQueryService creates a new QueryServiceImpl.
func NewQueryService(
	vaultRepo ports.VaultRepository,
	tokenRepo ports.TokenRepository,
	shareRepo ports.ShareRepository,
	indexRepo ports.VaultIndexRepository,
	factRepo ports.FactRepository,
	log zerolog.Logger,
) *QueryServiceImpl {
	return &QueryServiceImpl{
		vaultRepo: vaultRepo,
		tokenRepo: tokenRepo,
		shareRepo: shareRepo,
		indexRepo: indexRepo,
		factRepo:  factRepo,
		log:       log,
	}
}

// GetVaultDetails returns a vault with its share list. Single-beneficiary
// vaults come back with an empty share list.
func (s *QueryServiceImpl) GetVaultDetails(ctx context.Context, vaultID int64) (*ports.VaultDetails, error) {
	vault, err := s.getVault(ctx, vaultID)
	if err != nil {
		return nil, err
	}

	details := &ports.VaultDetails{Vault: *vault}
	if vault.IsMultiBeneficiary() {
		shares, err := s.shareRepo.ListByVaultID(ctx, vaultID)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("list shares: %w", err))
		}
		details.Shares = shares
	}
	return details, nil
}

// GetOwnerVaults lists every vault the identity ever created.
func (s *QueryServiceImpl) GetOwnerVaults(ctx context.Context, owner uuid.UUID) ([]domain.Vault, error) {
	ids, err := s.indexRepo.VaultIDs(ctx, owner, ports.IndexOwner)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("owner index: %w", err))
	}
	vaults, err := s.vaultRepo.GetMany(ctx, ids)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load vaults: %w", err))
	}
	return vaults, nil
}

// GetBeneficiaryVaults lists the vaults the identity can currently inherit
// from. The index is append-only, so rows left behind by retargeting are
// filtered here against the vault's current beneficiary set.
func (s *QueryServiceImpl) GetBeneficiaryVaults(ctx context.Context, beneficiary uuid.UUID) ([]domain.Vault, error) {
	ids, err := s.indexRepo.VaultIDs(ctx, beneficiary, ports.IndexBeneficiary)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("beneficiary index: %w", err))
	}
	vaults, err := s.vaultRepo.GetMany(ctx, ids)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load vaults: %w", err))
	}

	current := make([]domain.Vault, 0, len(vaults))
	for _, v := range vaults {
		ok, err := s.isCurrentBeneficiary(ctx, v, beneficiary)
		if err != nil {
			return nil, err
		}
		if ok {
			current = append(current, v)
		}
	}
	return current, nil
}

// GetVaultBeneficiaries returns the distribution plan. Single-beneficiary
// vaults are reported as one synthetic 100% share.
func (s *QueryServiceImpl) GetVaultBeneficiaries(ctx context.Context, vaultID int64) ([]domain.BeneficiaryShare, error) {
	vault, err := s.getVault(ctx, vaultID)
	if err != nil {
		return nil, err
	}

	if !vault.IsMultiBeneficiary() {
		return []domain.BeneficiaryShare{{
			VaultID:     vault.ID,
			Beneficiary: vault.Beneficiary,
			Percentage:  100,
		}}, nil
	}

	shares, err := s.shareRepo.ListByVaultID(ctx, vaultID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list shares: %w", err))
	}
	return shares, nil
}

// GetTokenDetails returns one inheritance token.
func (s *QueryServiceImpl) GetTokenDetails(ctx context.Context, tokenID int64) (*domain.InheritanceToken, error) {
	token, err := s.tokenRepo.GetByID(ctx, tokenID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get token: %w", err))
	}
	if token == nil {
		return nil, apperror.ErrTokenNotFound()
	}
	return token, nil
}

// GetVaultFacts returns the most recent facts for a vault, newest first.
func (s *QueryServiceImpl) GetVaultFacts(ctx context.Context, vaultID int64, limit int) ([]domain.Fact, error) {
	if _, err := s.getVault(ctx, vaultID); err != nil {
		return nil, err
	}
	facts, err := s.factRepo.ListByVaultID(ctx, vaultID, limit)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list facts: %w", err))
	}
	return facts, nil
}

// GetStats returns ledger-wide aggregates.
func (s *QueryServiceImpl) GetStats(ctx context.Context) (*ports.LedgerStats, error) {
	totalVaults, totalEscrowed, err := s.vaultRepo.Stats(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("vault stats: %w", err))
	}
	totalTokens, err := s.tokenRepo.Count(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("token count: %w", err))
	}
	return &ports.LedgerStats{
		TotalVaults:   totalVaults,
		TotalTokens:   totalTokens,
		TotalEscrowed: totalEscrowed,
	}, nil
}

func (s *QueryServiceImpl) getVault(ctx context.Context, vaultID int64) (*domain.Vault, error) {
	vault, err := s.vaultRepo.GetByID(ctx, vaultID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get vault: %w", err))
	}
	if vault == nil {
		return nil, apperror.ErrVaultNotFound()
	}
	return vault, nil
}

func (s *QueryServiceImpl) isCurrentBeneficiary(ctx context.Context, v domain.Vault, identity uuid.UUID) (bool, error) {
	if !v.IsMultiBeneficiary() {
		return v.Beneficiary == identity, nil
	}
	shares, err := s.shareRepo.ListByVaultID(ctx, v.ID)
	if err != nil {
		return false, apperror.InternalError(fmt.Errorf("list shares: %w", err))
	}
	for _, share := range shares {
		if share.Beneficiary == identity {
			return true, nil
		}
	}
	return false, nil
}
