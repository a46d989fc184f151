package domain

import (
	"time"

	"github.com/google/uuid"
)

// Account is a registered identity. Its Balance is the external (non-escrowed)
// value the value-transfer backend debits on deposit and credits on release.
type Account struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Balance      int64     `json:"balance"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
