package domain

import (
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestVault_IsMultiBeneficiary(t *testing.T) {
	single := &Vault{Beneficiary: uuid.New()}
	assert.False(t, single.IsMultiBeneficiary())

	multi := &Vault{Beneficiary: MultiBeneficiaryMarker}
	assert.True(t, multi.IsMultiBeneficiary())
}

func TestVault_IsUnlocked(t *testing.T) {
	unlock := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	v := &Vault{UnlockTime: unlock}

	assert.False(t, v.IsUnlocked(unlock.Add(-time.Second)))
	assert.True(t, v.IsUnlocked(unlock)) // Boundary: exactly at unlock is open
	assert.True(t, v.IsUnlocked(unlock.Add(time.Second)))
}

func TestVault_IsHeartbeatOverdue(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	disabled := &Vault{HeartbeatEnabled: false}
	assert.False(t, disabled.IsHeartbeatOverdue(base.Add(1000*time.Hour)))

	v := &Vault{
		HeartbeatEnabled:  true,
		HeartbeatInterval: MinHeartbeatInterval,
		LastHeartbeatAt:   &base,
	}

	assert.False(t, v.IsHeartbeatOverdue(base.Add(29*24*time.Hour)))
	assert.False(t, v.IsHeartbeatOverdue(base.Add(MinHeartbeatInterval))) // Boundary: not yet overdue
	assert.True(t, v.IsHeartbeatOverdue(base.Add(MinHeartbeatInterval+time.Second)))
}

func TestSharePayout_Truncates(t *testing.T) {
	tests := []struct {
		name       string
		total      int64
		percentage int64
		expected   int64
	}{
		{"even split", 100, 50, 50},
		{"truncated", 101, 50, 50},
		{"small share", 10, 33, 3},
		{"full", 100, 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SharePayout(tt.total, tt.percentage))
		})
	}
}

func TestSharePayout_NeverExceedsTotal(t *testing.T) {
	// 33/33/34 of 100: 33+33+34 = 100 (even). 50/30/20 of 101: 50+30+20 = 100 < 101.
	total := int64(101)
	percentages := []int64{50, 30, 20}

	var paid int64
	for _, p := range percentages {
		paid += SharePayout(total, p)
	}
	assert.LessOrEqual(t, paid, total)
	assert.Equal(t, int64(100), paid) // Remainder of 1 stays escrowed
}

// Totals near MaxInt64 must not wrap the scaled product into a negative or
// oversized payout.
func TestSharePayout_LargeTotalNoOverflow(t *testing.T) {
	total := int64(math.MaxInt64 - 3)

	var paid int64
	for _, p := range []int64{50, 30, 20} {
		amount := SharePayout(total, p)
		assert.GreaterOrEqual(t, amount, int64(0))
		paid += amount
	}
	assert.LessOrEqual(t, paid, total)
}

func TestSharePayout_ClampsOutOfRangeInputs(t *testing.T) {
	assert.Equal(t, int64(0), SharePayout(1000, 0))
	assert.Equal(t, int64(0), SharePayout(1000, -5))
	assert.Equal(t, int64(0), SharePayout(-10, 50))
	assert.Equal(t, int64(1000), SharePayout(1000, 100))
	assert.Equal(t, int64(1000), SharePayout(1000, math.MaxInt64))
}

func TestInheritanceToken_Authorizes(t *testing.T) {
	beneficiary := uuid.New()
	token := &InheritanceToken{ID: 1, VaultID: 9, Beneficiary: beneficiary, Active: true}

	assert.True(t, token.Authorizes(9, beneficiary))
	assert.False(t, token.Authorizes(8, beneficiary))
	assert.False(t, token.Authorizes(9, uuid.New()))
}
