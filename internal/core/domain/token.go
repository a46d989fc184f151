package domain

import (
	"time"

	"github.com/google/uuid"
)

// InheritanceToken is an authorization record proving a beneficiary's right
// to claim a single-beneficiary vault. It is checked by identity equality,
// not by possession: presenting it from another identity fails.
//
// The bound beneficiary is a snapshot taken at mint time. If the vault is
// later retargeted the token keeps its stale binding and becomes permanently
// unusable for claiming. Several tokens may exist for one vault.
type InheritanceToken struct {
	ID          int64     `json:"id"`
	VaultID     int64     `json:"vault_id"`
	Beneficiary uuid.UUID `json:"beneficiary"`
	Active      bool      `json:"active"`
	MintedAt    time.Time `json:"minted_at"`
}

// Authorizes reports whether the token permits the given caller to claim the
// given vault. State checks (active, vault claimed) are handled separately so
// each failure surfaces as its own error.
func (t *InheritanceToken) Authorizes(vaultID int64, caller uuid.UUID) bool {
	return t.VaultID == vaultID && t.Beneficiary == caller
}
