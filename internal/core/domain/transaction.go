package domain

import (
	"time"

	"github.com/google/uuid"
)

// Transaction is the remote service's record of a registered transfer.
// The ID and timestamp are assigned server-side; the record is a wire
// artifact, not a local ledger entity.
type Transaction struct {
	ID        uuid.UUID `json:"id"`
	From      uuid.UUID `json:"from"`
	To        uuid.UUID `json:"to"`
	Amount    int64     `json:"amount"` // fixed-point units, scale 10,000
	CreatedAt time.Time `json:"created_at"`
}
