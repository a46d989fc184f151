package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Heartbeat interval bounds for proof-of-life tracking.
const (
	MinHeartbeatInterval = 30 * 24 * time.Hour
	MaxHeartbeatInterval = 365 * 24 * time.Hour
)

// MultiBeneficiaryMarker is the reserved beneficiary value for vaults whose
// balance is split across BeneficiaryShare rows.
var MultiBeneficiaryMarker = uuid.Nil

// Vault is a locked balance awaiting conditional release. The owner holds all
// mutation rights except claiming; claiming belongs to the beneficiary side.
type Vault struct {
	ID                int64         `json:"id"`
	Owner             uuid.UUID     `json:"owner"`
	Beneficiary       uuid.UUID     `json:"beneficiary"` // uuid.Nil = multi-beneficiary
	Balance           int64         `json:"balance"`     // Smallest unit, never negative
	UnlockTime        time.Time     `json:"unlock_time"`
	Claimed           bool          `json:"claimed"`
	HeartbeatEnabled  bool          `json:"heartbeat_enabled"`
	HeartbeatInterval time.Duration `json:"heartbeat_interval,omitempty"`
	LastHeartbeatAt   *time.Time    `json:"last_heartbeat_at,omitempty"`
	Note              string        `json:"note,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

// IsMultiBeneficiary returns true if the balance is split across shares.
func (v *Vault) IsMultiBeneficiary() bool {
	return v.Beneficiary == MultiBeneficiaryMarker
}

// IsUnlocked returns true if the claim window is open at the given instant.
func (v *Vault) IsUnlocked(now time.Time) bool {
	return !now.Before(v.UnlockTime)
}

// IsHeartbeatOverdue returns true if proof-of-life is enabled and the owner
// has been silent longer than the configured interval. Advisory only: no
// ledger action is triggered by overdue status.
func (v *Vault) IsHeartbeatOverdue(now time.Time) bool {
	if !v.HeartbeatEnabled || v.LastHeartbeatAt == nil {
		return false
	}
	return now.After(v.LastHeartbeatAt.Add(v.HeartbeatInterval))
}

// BeneficiaryShare is one slice of a multi-beneficiary vault. Shares are
// written once at vault creation and never change; per vault the
// percentages sum to exactly 100.
type BeneficiaryShare struct {
	VaultID     int64     `json:"vault_id"`
	Beneficiary uuid.UUID `json:"beneficiary"`
	Percentage  int64     `json:"percentage"`
}

// SharePayout computes the amount released for one share. Integer division
// truncates; the summed payouts may fall short of total and the remainder
// stays escrowed in the ledger. Inputs outside the valid ranges clamp to an
// empty or full share, so the result is always within [0, total].
func SharePayout(total int64, percentage int64) int64 {
	if total <= 0 || percentage <= 0 {
		return 0
	}
	if percentage >= 100 {
		return total
	}
	if total > math.MaxInt64/percentage {
		// Divide first when the scaled product would overflow.
		return total / 100 * percentage
	}
	return total * percentage / 100
}
