package domain

import (
	"time"

	"github.com/google/uuid"
)

// BalanceSnapshot is a point-in-time copy of an account balance held by the
// remote economy service. It is never the authoritative balance for accounts
// served by the local ledger; the two stores must not be conflated.
type BalanceSnapshot struct {
	AccountID   uuid.UUID `json:"account_id"`
	Balance     int64     `json:"balance"` // fixed-point units, scale 10,000
	RetrievedAt time.Time `json:"retrieved_at"`
}
