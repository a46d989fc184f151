package domain

import (
	"time"

	"github.com/google/uuid"
)

// FactType identifies a committed ledger mutation.
type FactType string

const (
	FactVaultCreated       FactType = "VAULT_CREATED"
	FactMultiVaultCreated  FactType = "MULTI_VAULT_CREATED"
	FactTokenMinted        FactType = "TOKEN_MINTED"
	FactVaultClaimed       FactType = "VAULT_CLAIMED"
	FactEmergencyWithdraw  FactType = "EMERGENCY_WITHDRAW"
	FactVaultExtended      FactType = "VAULT_EXTENDED"
	FactBeneficiaryUpdated FactType = "BENEFICIARY_UPDATED"
	FactHeartbeatRecorded  FactType = "HEARTBEAT_RECORDED"
	FactVaultFunded        FactType = "VAULT_FUNDED"
	FactMessageUpdated     FactType = "MESSAGE_UPDATED"
)

// Fact describes one committed mutation for downstream observers. Facts are
// appended inside the mutating database transaction, so the durable log
// orders them exactly as mutations committed for a given vault.
type Fact struct {
	ID        uuid.UUID `json:"id"`
	Type      FactType  `json:"type"`
	VaultID   int64     `json:"vault_id"`
	Actor     uuid.UUID `json:"actor"`
	Recipient uuid.UUID `json:"recipient,omitempty"` // Payout target for claims
	Amount    int64     `json:"amount,omitempty"`
	Details   string    `json:"details,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewFact builds a fact with a fresh id and the given timestamp.
func NewFact(t FactType, vaultID int64, actor uuid.UUID, now time.Time) *Fact {
	return &Fact{
		ID:        uuid.New(),
		Type:      t,
		VaultID:   vaultID,
		Actor:     actor,
		CreatedAt: now,
	}
}
