package ports

import (
	"context"

	"github.com/HenriqueMichelini/craftalism-economy-sub001/internal/core/domain"

	"github.com/google/uuid"
)

// AccountService exposes the validated, atomic business operations over the
// ledger. Business-rule violations (insufficient funds, invalid amount,
// overflow, self-transfer) are returned as typed apperror values — ordinary
// outcomes, not panics.
type AccountService interface {
	Balance(id uuid.UUID) int64
	Deposit(id uuid.UUID, amount int64) error
	Withdraw(id uuid.UUID, amount int64) error
	Transfer(from, to uuid.UUID, amount int64) error
	// SetBalance is the administrative overwrite.
	SetBalance(id uuid.UUID, balance int64) error
}

// PlayerService owns the player session lifecycle against cache + remote
// store, and the best-effort remote registration of local transfers.
type PlayerService interface {
	// HandleJoin resolves the player record on join, creating it remotely
	// on first join and refreshing the display name when it changed.
	HandleJoin(ctx context.Context, id uuid.UUID, name string) (domain.Player, error)
	// HandleQuit invalidates the player's cached entities.
	HandleQuit(id uuid.UUID)
	// Lookup returns the cached player, falling back to a remote fetch.
	Lookup(ctx context.Context, id uuid.UUID) (domain.Player, error)
	// LookupByName resolves a player by display name. Names are not cache
	// keys, so this always asks the remote store; the result is cached
	// under its identifier for subsequent Lookup calls.
	LookupByName(ctx context.Context, name string) (domain.Player, error)
	// RemoteBalance returns the remote balance snapshot, cache-first.
	// Snapshots may be stale up to the cache TTL.
	RemoteBalance(ctx context.Context, id uuid.UUID) (domain.BalanceSnapshot, error)
	// QueueTransferRegistration registers a completed local transfer with
	// the remote service asynchronously. Failures are logged, never
	// surfaced to the transfer path.
	QueueTransferRegistration(from, to uuid.UUID, amount int64)
}

// LedgerService manages durable persistence of the balance store.
type LedgerService interface {
	// Load replaces all in-memory entries from the ledger document. It
	// must run before the store receives traffic.
	Load() error
	// Save persists the current map. Failure is non-fatal; the in-memory
	// ledger remains authoritative.
	Save() error
	// Run autosaves on an interval until ctx is done, then saves once more.
	Run(ctx context.Context)
}
