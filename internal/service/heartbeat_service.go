package service

import (
	"context"
	"fmt"
	"time"

	"inheritance-vault/internal/core/domain"
	"inheritance-vault/internal/core/ports"
	"inheritance-vault/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// HeartbeatServiceImpl implements ports.HeartbeatService. Overdue status is
// advisory: the ledger never acts on it, external automation does.
type HeartbeatServiceImpl struct {
	vaultRepo  ports.VaultRepository
	factRepo   ports.FactRepository
	transactor ports.DBTransactor
	publisher  ports.FactPublisher
	log        zerolog.Logger
	now        func() time.Time
}

// NewHeartbeatService creates a new HeartbeatServiceImpl.
func NewHeartbeatService(
	vaultRepo ports.VaultRepository,
	factRepo ports.FactRepository,
	transactor ports.DBTransactor,
	publisher ports.FactPublisher,
	log zerolog.Logger,
) *HeartbeatServiceImpl {
	return &HeartbeatServiceImpl{
		vaultRepo:  vaultRepo,
		factRepo:   factRepo,
		transactor: transactor,
		publisher:  publisher,
		log:        log,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// EnableHeartbeat turns on proof-of-life tracking with the given interval
// and resets the clock to now.
func (s *HeartbeatServiceImpl) EnableHeartbeat(ctx context.Context, caller uuid.UUID, vaultID int64, interval time.Duration) (*domain.Vault, error) {
	now := s.now()

	if interval < domain.MinHeartbeatInterval || interval > domain.MaxHeartbeatInterval {
		return nil, apperror.ErrInvalidInterval()
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

	vault.HeartbeatEnabled = true
	vault.HeartbeatInterval = interval
	vault.LastHeartbeatAt = &now
	vault.UpdatedAt = now
	if err := s.vaultRepo.Update(ctx, dbTx, vault); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update vault: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Int64("vault_id", vault.ID).
		Dur("interval", interval).
		Msg("heartbeat enabled")

	return vault, nil
}

// RecordHeartbeat registers owner activity, resetting the overdue deadline.
func (s *HeartbeatServiceImpl) RecordHeartbeat(ctx context.Context, caller uuid.UUID, vaultID int64) (*domain.Vault, error) {
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

	if !vault.HeartbeatEnabled {
		return nil, apperror.ErrHeartbeatNotEnabled()
	}

	vault.LastHeartbeatAt = &now
	vault.UpdatedAt = now
	if err := s.vaultRepo.Update(ctx, dbTx, vault); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update vault: %w", err))
	}

	fact := domain.NewFact(domain.FactHeartbeatRecorded, vault.ID, caller, now)
	if err := s.factRepo.Append(ctx, dbTx, fact); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("append fact: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	publishFact(ctx, s.publisher, s.log, fact)
	s.log.Debug().Int64("vault_id", vault.ID).Msg("heartbeat recorded")

	return vault, nil
}

// IsHeartbeatOverdue is a pure query over stored timestamps.
func (s *HeartbeatServiceImpl) IsHeartbeatOverdue(ctx context.Context, vaultID int64) (bool, error) {
	vault, err := s.vaultRepo.GetByID(ctx, vaultID)
	if err != nil {
		return false, apperror.InternalError(fmt.Errorf("get vault: %w", err))
	}
	if vault == nil {
		return false, apperror.ErrVaultNotFound()
	}
	return vault.IsHeartbeatOverdue(s.now()), nil
}

func (s *HeartbeatServiceImpl) lockOwnedVault(ctx context.Context, dbTx pgx.Tx, caller uuid.UUID, vaultID int64) (*domain.Vault, error) {
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
