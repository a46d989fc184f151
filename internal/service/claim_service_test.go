package service

import (
	"context"
	"testing"
	"time"

	"inheritance-vault/internal/core/domain"
	"inheritance-vault/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type claimTestDeps struct {
	svc        *ClaimServiceImpl
	vaultRepo  *mocks.MockVaultRepository
	tokenRepo  *mocks.MockTokenRepository
	shareRepo  *mocks.MockShareRepository
	factRepo   *mocks.MockFactRepository
	transfer   *mocks.MockValueTransfer
	transactor *mocks.MockDBTransactor
	publisher  *mocks.MockFactPublisher
	ctrl       *gomock.Controller
	now        time.Time
}

func setupClaimService(t *testing.T) *claimTestDeps {
	ctrl := gomock.NewController(t)
	d := &claimTestDeps{
		vaultRepo:  mocks.NewMockVaultRepository(ctrl),
		tokenRepo:  mocks.NewMockTokenRepository(ctrl),
		shareRepo:  mocks.NewMockShareRepository(ctrl),
		factRepo:   mocks.NewMockFactRepository(ctrl),
		transfer:   mocks.NewMockValueTransfer(ctrl),
		transactor: mocks.NewMockDBTransactor(ctrl),
		publisher:  mocks.NewMockFactPublisher(ctrl),
		ctrl:       ctrl,
		now:        time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	d.svc = NewClaimService(
		d.vaultRepo, d.tokenRepo, d.shareRepo, d.factRepo,
		d.transfer, d.transactor, d.publisher, zerolog.Nop(),
	)
	d.svc.now = func() time.Time { return d.now }
	return d
}

// ==================== MintToken Tests ====================

func TestClaimService_MintToken_Success(t *testing.T) {
	d := setupClaimService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	owner := uuid.New()
	beneficiary := uuid.New()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.vaultRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(1)).Return(&domain.Vault{
		ID: 1, Owner: owner, Beneficiary: beneficiary,
	}, nil)
	d.tokenRepo.EXPECT().Create(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ any, tok *domain.InheritanceToken) error {
			tok.ID = 42
			return nil
		})
	d.factRepo.EXPECT().Append(ctx, tx, gomock.Any()).Return(nil)
	d.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	token, err := d.svc.MintToken(ctx, owner, 1)
	require.NoError(t, err)
	require.NotNil(t, token)
	assert.Equal(t, int64(42), token.ID)
	assert.Equal(t, int64(1), token.VaultID)
	assert.Equal(t, beneficiary, token.Beneficiary)
	assert.True(t, token.Active)
}

func TestClaimService_MintToken_NotOwner(t *testing.T) {
	d := setupClaimService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.vaultRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(1)).Return(&domain.Vault{
		ID: 1, Owner: uuid.New(),
	}, nil)

	token, err := d.svc.MintToken(ctx, uuid.New(), 1)
	assert.Nil(t, token)
	assertAppError(t, err, "VAUTH_001")
}

func TestClaimService_MintToken_AlreadyClaimed(t *testing.T) {
	d := setupClaimService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	owner := uuid.New()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.vaultRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(1)).Return(&domain.Vault{
		ID: 1, Owner: owner, Claimed: true,
	}, nil)

	token, err := d.svc.MintToken(ctx, owner, 1)
	assert.Nil(t, token)
	assertAppError(t, err, "STATE_002")
}

// ==================== ClaimVault Tests ====================

func claimableVault(owner, beneficiary uuid.UUID, now time.Time) *domain.Vault {
	return &domain.Vault{
		ID:          1,
		Owner:       owner,
		Beneficiary: beneficiary,
		Balance:     80000,
		UnlockTime:  now.Add(-time.Hour),
	}
}

func TestClaimService_ClaimVault_Success(t *testing.T) {
	d := setupClaimService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	owner := uuid.New()
	beneficiary := uuid.New()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.vaultRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(1)).
		Return(claimableVault(owner, beneficiary, d.now), nil)
	d.tokenRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(5)).Return(&domain.InheritanceToken{
		ID: 5, VaultID: 1, Beneficiary: beneficiary, Active: true,
	}, nil)
	d.vaultRepo.EXPECT().Update(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ any, v *domain.Vault) error {
			assert.True(t, v.Claimed)
			assert.Zero(t, v.Balance)
			return nil
		})
	d.tokenRepo.EXPECT().Deactivate(ctx, tx, int64(5)).Return(nil)
	d.transfer.EXPECT().Credit(ctx, tx, beneficiary, int64(80000)).Return(nil)
	d.factRepo.EXPECT().Append(ctx, tx, gomock.Any()).Return(nil)
	d.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	result, err := d.svc.ClaimVault(ctx, beneficiary, 1, 5)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, int64(80000), result.Amount)
	assert.Equal(t, beneficiary, result.Recipient)
}

func TestClaimService_ClaimVault_ExactlyAtUnlockTime(t *testing.T) {
	d := setupClaimService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	beneficiary := uuid.New()
	tx := &mockTx{}

	// Unlock boundary is inclusive.
	vault := claimableVault(uuid.New(), beneficiary, d.now)
	vault.UnlockTime = d.now

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.vaultRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(1)).Return(vault, nil)
	d.tokenRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(5)).Return(&domain.InheritanceToken{
		ID: 5, VaultID: 1, Beneficiary: beneficiary, Active: true,
	}, nil)
	d.vaultRepo.EXPECT().Update(ctx, tx, gomock.Any()).Return(nil)
	d.tokenRepo.EXPECT().Deactivate(ctx, tx, int64(5)).Return(nil)
	d.transfer.EXPECT().Credit(ctx, tx, beneficiary, int64(80000)).Return(nil)
	d.factRepo.EXPECT().Append(ctx, tx, gomock.Any()).Return(nil)
	d.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	result, err := d.svc.ClaimVault(ctx, beneficiary, 1, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(80000), result.Amount)
}

func TestClaimService_ClaimVault_VaultNotFound(t *testing.T) {
	d := setupClaimService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.vaultRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(99)).Return(nil, nil)

	result, err := d.svc.ClaimVault(ctx, uuid.New(), 99, 5)
	assert.Nil(t, result)
	assertAppError(t, err, "STATE_001")
}

func TestClaimService_ClaimVault_AlreadyClaimed(t *testing.T) {
	d := setupClaimService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	beneficiary := uuid.New()
	tx := &mockTx{}

	vault := claimableVault(uuid.New(), beneficiary, d.now)
	vault.Claimed = true
	vault.Balance = 0

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.vaultRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(1)).Return(vault, nil)

	result, err := d.svc.ClaimVault(ctx, beneficiary, 1, 5)
	assert.Nil(t, result)
	assertAppError(t, err, "STATE_002")
}

func TestClaimService_ClaimVault_StillLocked(t *testing.T) {
	d := setupClaimService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	beneficiary := uuid.New()
	tx := &mockTx{}

	vault := claimableVault(uuid.New(), beneficiary, d.now)
	vault.UnlockTime = d.now.Add(time.Hour)

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.vaultRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(1)).Return(vault, nil)

	result, err := d.svc.ClaimVault(ctx, beneficiary, 1, 5)
	assert.Nil(t, result)
	assertAppError(t, err, "STATE_003")
}

func TestClaimService_ClaimVault_NotBeneficiary(t *testing.T) {
	d := setupClaimService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.vaultRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(1)).
		Return(claimableVault(uuid.New(), uuid.New(), d.now), nil)

	result, err := d.svc.ClaimVault(ctx, uuid.New(), 1, 5)
	assert.Nil(t, result)
	assertAppError(t, err, "VAUTH_002")
}

func TestClaimService_ClaimVault_TokenNotFound(t *testing.T) {
	d := setupClaimService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	beneficiary := uuid.New()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.vaultRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(1)).
		Return(claimableVault(uuid.New(), beneficiary, d.now), nil)
	d.tokenRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(5)).Return(nil, nil)

	result, err := d.svc.ClaimVault(ctx, beneficiary, 1, 5)
	assert.Nil(t, result)
	assertAppError(t, err, "STATE_004")
}

func TestClaimService_ClaimVault_TokenInactive(t *testing.T) {
	d := setupClaimService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	beneficiary := uuid.New()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.vaultRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(1)).
		Return(claimableVault(uuid.New(), beneficiary, d.now), nil)
	d.tokenRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(5)).Return(&domain.InheritanceToken{
		ID: 5, VaultID: 1, Beneficiary: beneficiary, Active: false,
	}, nil)

	result, err := d.svc.ClaimVault(ctx, beneficiary, 1, 5)
	assert.Nil(t, result)
	assertAppError(t, err, "STATE_005")
}

func TestClaimService_ClaimVault_TokenVaultMismatch(t *testing.T) {
	d := setupClaimService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	beneficiary := uuid.New()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.vaultRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(1)).
		Return(claimableVault(uuid.New(), beneficiary, d.now), nil)
	d.tokenRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(5)).Return(&domain.InheritanceToken{
		ID: 5, VaultID: 2, Beneficiary: beneficiary, Active: true,
	}, nil)

	result, err := d.svc.ClaimVault(ctx, beneficiary, 1, 5)
	assert.Nil(t, result)
	assertAppError(t, err, "STATE_006")
}

// A token minted for a previous beneficiary is stranded after retargeting.
func TestClaimService_ClaimVault_StaleTokenAfterRetarget(t *testing.T) {
	d := setupClaimService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	newBeneficiary := uuid.New()
	oldBeneficiary := uuid.New()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.vaultRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(1)).
		Return(claimableVault(uuid.New(), newBeneficiary, d.now), nil)
	d.tokenRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(5)).Return(&domain.InheritanceToken{
		ID: 5, VaultID: 1, Beneficiary: oldBeneficiary, Active: true,
	}, nil)

	result, err := d.svc.ClaimVault(ctx, newBeneficiary, 1, 5)
	assert.Nil(t, result)
	assertAppError(t, err, "VAUTH_003")
}

// A failed payout rolls the whole claim back: commit never happens.
func TestClaimService_ClaimVault_TransferFailureAborts(t *testing.T) {
	d := setupClaimService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	beneficiary := uuid.New()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.vaultRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(1)).
		Return(claimableVault(uuid.New(), beneficiary, d.now), nil)
	d.tokenRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(5)).Return(&domain.InheritanceToken{
		ID: 5, VaultID: 1, Beneficiary: beneficiary, Active: true,
	}, nil)
	d.vaultRepo.EXPECT().Update(ctx, tx, gomock.Any()).Return(nil)
	d.tokenRepo.EXPECT().Deactivate(ctx, tx, int64(5)).Return(nil)
	d.transfer.EXPECT().Credit(ctx, tx, beneficiary, int64(80000)).Return(assert.AnError)

	result, err := d.svc.ClaimVault(ctx, beneficiary, 1, 5)
	assert.Nil(t, result)
	assertAppError(t, err, "XFER_001")
}

// ==================== ClaimMultiBeneficiaryVault Tests ====================

func TestClaimService_ClaimMultiVault_Success(t *testing.T) {
	d := setupClaimService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	caller := uuid.New()
	b1, b2, b3 := uuid.New(), uuid.New(), uuid.New()
	tx := &mockTx{}

	vault := &domain.Vault{
		ID:          1,
		Owner:       uuid.New(),
		Beneficiary: domain.MultiBeneficiaryMarker,
		Balance:     100,
		UnlockTime:  d.now.Add(-time.Hour),
	}
	shares := []domain.BeneficiaryShare{
		{VaultID: 1, Beneficiary: b1, Percentage: 33},
		{VaultID: 1, Beneficiary: b2, Percentage: 33},
		{VaultID: 1, Beneficiary: b3, Percentage: 34},
	}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.vaultRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(1)).Return(vault, nil)
	d.shareRepo.EXPECT().ListByVaultID(ctx, int64(1)).Return(shares, nil)
	d.vaultRepo.EXPECT().Update(ctx, tx, gomock.Any()).Return(nil)
	d.transfer.EXPECT().Credit(ctx, tx, b1, int64(33)).Return(nil)
	d.transfer.EXPECT().Credit(ctx, tx, b2, int64(33)).Return(nil)
	d.transfer.EXPECT().Credit(ctx, tx, b3, int64(34)).Return(nil)
	d.factRepo.EXPECT().Append(ctx, tx, gomock.Any()).Return(nil).Times(3)
	d.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(3)

	result, err := d.svc.ClaimMultiBeneficiaryVault(ctx, caller, 1)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, int64(100), result.Total)
	assert.Len(t, result.Payouts, 3)
	assert.Zero(t, result.Remainder)
}

// Truncation leaves the remainder escrowed, not redistributed.
func TestClaimService_ClaimMultiVault_TruncationRemainder(t *testing.T) {
	d := setupClaimService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	caller := uuid.New()
	b1, b2, b3 := uuid.New(), uuid.New(), uuid.New()
	tx := &mockTx{}

	vault := &domain.Vault{
		ID:          1,
		Owner:       uuid.New(),
		Beneficiary: domain.MultiBeneficiaryMarker,
		Balance:     101,
		UnlockTime:  d.now.Add(-time.Hour),
	}
	shares := []domain.BeneficiaryShare{
		{VaultID: 1, Beneficiary: b1, Percentage: 33},
		{VaultID: 1, Beneficiary: b2, Percentage: 33},
		{VaultID: 1, Beneficiary: b3, Percentage: 34},
	}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.vaultRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(1)).Return(vault, nil)
	d.shareRepo.EXPECT().ListByVaultID(ctx, int64(1)).Return(shares, nil)
	d.vaultRepo.EXPECT().Update(ctx, tx, gomock.Any()).Return(nil)
	// floor(101*33/100)=33, floor(101*34/100)=34 -> paid 100, remainder 1
	d.transfer.EXPECT().Credit(ctx, tx, b1, int64(33)).Return(nil)
	d.transfer.EXPECT().Credit(ctx, tx, b2, int64(33)).Return(nil)
	d.transfer.EXPECT().Credit(ctx, tx, b3, int64(34)).Return(nil)
	d.factRepo.EXPECT().Append(ctx, tx, gomock.Any()).Return(nil).Times(3)
	d.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(3)

	result, err := d.svc.ClaimMultiBeneficiaryVault(ctx, caller, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Remainder)
}

// Zero payouts are skipped at the transfer layer but still recorded.
func TestClaimService_ClaimMultiVault_TinyBalanceZeroPayouts(t *testing.T) {
	d := setupClaimService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	caller := uuid.New()
	b1, b2 := uuid.New(), uuid.New()
	tx := &mockTx{}

	vault := &domain.Vault{
		ID:          1,
		Owner:       uuid.New(),
		Beneficiary: domain.MultiBeneficiaryMarker,
		Balance:     1,
		UnlockTime:  d.now.Add(-time.Hour),
	}
	shares := []domain.BeneficiaryShare{
		{VaultID: 1, Beneficiary: b1, Percentage: 50},
		{VaultID: 1, Beneficiary: b2, Percentage: 50},
	}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.vaultRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(1)).Return(vault, nil)
	d.shareRepo.EXPECT().ListByVaultID(ctx, int64(1)).Return(shares, nil)
	d.vaultRepo.EXPECT().Update(ctx, tx, gomock.Any()).Return(nil)
	// floor(1*50/100)=0 for both: no Credit calls, facts still appended.
	d.factRepo.EXPECT().Append(ctx, tx, gomock.Any()).Return(nil).Times(2)
	d.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(2)

	result, err := d.svc.ClaimMultiBeneficiaryVault(ctx, caller, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Remainder)
}

// Share rows whose percentages pay out more than the balance (corrupted
// data) must abort the claim inside the transaction.
func TestClaimService_ClaimMultiVault_CorruptSharesAbort(t *testing.T) {
	d := setupClaimService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	caller := uuid.New()
	b1, b2 := uuid.New(), uuid.New()
	tx := &mockTx{}

	vault := &domain.Vault{
		ID:          1,
		Owner:       uuid.New(),
		Beneficiary: domain.MultiBeneficiaryMarker,
		Balance:     1000,
		UnlockTime:  d.now.Add(-time.Hour),
	}
	shares := []domain.BeneficiaryShare{
		{VaultID: 1, Beneficiary: b1, Percentage: 100},
		{VaultID: 1, Beneficiary: b2, Percentage: 100},
	}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.vaultRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(1)).Return(vault, nil)
	d.shareRepo.EXPECT().ListByVaultID(ctx, int64(1)).Return(shares, nil)
	d.vaultRepo.EXPECT().Update(ctx, tx, gomock.Any()).Return(nil)
	// The first share drains the full balance; the second must trip the
	// range check before any further credit.
	d.transfer.EXPECT().Credit(ctx, tx, b1, int64(1000)).Return(nil)
	d.factRepo.EXPECT().Append(ctx, tx, gomock.Any()).Return(nil)

	result, err := d.svc.ClaimMultiBeneficiaryVault(ctx, caller, 1)
	assert.Nil(t, result)
	assertAppError(t, err, "SYS_001")
}

// A share beneficiary without a ledger account fails the credit and rolls the
// whole claim back; the vault stays unclaimed and retriable.
func TestClaimService_ClaimMultiVault_UnknownBeneficiaryAborts(t *testing.T) {
	d := setupClaimService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	caller := uuid.New()
	b1, b2 := uuid.New(), uuid.New()
	tx := &mockTx{}

	vault := &domain.Vault{
		ID:          1,
		Owner:       uuid.New(),
		Beneficiary: domain.MultiBeneficiaryMarker,
		Balance:     1000,
		UnlockTime:  d.now.Add(-time.Hour),
	}
	shares := []domain.BeneficiaryShare{
		{VaultID: 1, Beneficiary: b1, Percentage: 50},
		{VaultID: 1, Beneficiary: b2, Percentage: 50},
	}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.vaultRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(1)).Return(vault, nil)
	d.shareRepo.EXPECT().ListByVaultID(ctx, int64(1)).Return(shares, nil)
	d.vaultRepo.EXPECT().Update(ctx, tx, gomock.Any()).Return(nil)
	d.transfer.EXPECT().Credit(ctx, tx, b1, int64(500)).Return(assert.AnError)

	result, err := d.svc.ClaimMultiBeneficiaryVault(ctx, caller, 1)
	assert.Nil(t, result)
	assertAppError(t, err, "XFER_001")
}

func TestClaimService_ClaimMultiVault_NotMultiVault(t *testing.T) {
	d := setupClaimService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.vaultRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(1)).
		Return(claimableVault(uuid.New(), uuid.New(), d.now), nil)

	result, err := d.svc.ClaimMultiBeneficiaryVault(ctx, uuid.New(), 1)
	assert.Nil(t, result)
	assertAppError(t, err, "STATE_008")
}

func TestClaimService_ClaimMultiVault_StillLocked(t *testing.T) {
	d := setupClaimService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}

	vault := &domain.Vault{
		ID:          1,
		Beneficiary: domain.MultiBeneficiaryMarker,
		Balance:     100,
		UnlockTime:  d.now.Add(time.Hour),
	}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.vaultRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(1)).Return(vault, nil)

	result, err := d.svc.ClaimMultiBeneficiaryVault(ctx, uuid.New(), 1)
	assert.Nil(t, result)
	assertAppError(t, err, "STATE_003")
}

// ==================== EmergencyWithdraw Tests ====================

func TestClaimService_EmergencyWithdraw_Success(t *testing.T) {
	d := setupClaimService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	owner := uuid.New()
	tx := &mockTx{}

	vault := &domain.Vault{
		ID:          1,
		Owner:       owner,
		Beneficiary: uuid.New(),
		Balance:     60000,
		UnlockTime:  d.now.Add(time.Hour),
	}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.vaultRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(1)).Return(vault, nil)
	d.vaultRepo.EXPECT().Update(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ any, v *domain.Vault) error {
			assert.True(t, v.Claimed)
			assert.Zero(t, v.Balance)
			return nil
		})
	d.transfer.EXPECT().Credit(ctx, tx, owner, int64(60000)).Return(nil)
	d.factRepo.EXPECT().Append(ctx, tx, gomock.Any()).Return(nil)
	d.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	result, err := d.svc.EmergencyWithdraw(ctx, owner, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(60000), result.Amount)
	assert.Equal(t, owner, result.Recipient)
}

func TestClaimService_EmergencyWithdraw_WindowClosed(t *testing.T) {
	d := setupClaimService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	owner := uuid.New()
	tx := &mockTx{}

	// At or past the unlock time the claim path is the only way out.
	vault := &domain.Vault{
		ID: 1, Owner: owner, Balance: 60000, UnlockTime: d.now,
	}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.vaultRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(1)).Return(vault, nil)

	result, err := d.svc.EmergencyWithdraw(ctx, owner, 1)
	assert.Nil(t, result)
	assertAppError(t, err, "STATE_010")
}

func TestClaimService_EmergencyWithdraw_NotOwner(t *testing.T) {
	d := setupClaimService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}

	vault := &domain.Vault{
		ID: 1, Owner: uuid.New(), Balance: 60000, UnlockTime: d.now.Add(time.Hour),
	}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.vaultRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(1)).Return(vault, nil)

	result, err := d.svc.EmergencyWithdraw(ctx, uuid.New(), 1)
	assert.Nil(t, result)
	assertAppError(t, err, "VAUTH_001")
}

func TestClaimService_EmergencyWithdraw_AlreadyClaimed(t *testing.T) {
	d := setupClaimService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	owner := uuid.New()
	tx := &mockTx{}

	vault := &domain.Vault{
		ID: 1, Owner: owner, Claimed: true, UnlockTime: d.now.Add(time.Hour),
	}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.vaultRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(1)).Return(vault, nil)

	result, err := d.svc.EmergencyWithdraw(ctx, owner, 1)
	assert.Nil(t, result)
	assertAppError(t, err, "STATE_002")
}
