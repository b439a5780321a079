package ports

import (
	"context"

	"github.com/HenriqueMichelini/craftalism-economy-sub001/internal/core/domain"

	"github.com/google/uuid"
)

// BalanceStore is the authoritative, concurrency-safe account → balance map.
// Balances are fixed-point units at scale 10,000. Implementations must allow
// concurrent readers and per-key writers without external locking; callers
// needing read-modify-write atomicity serialize per account above the store.
type BalanceStore interface {
	// Get returns the stored balance, or the configured default when absent.
	Get(id uuid.UUID) int64
	// Set unconditionally overwrites; last write wins.
	Set(id uuid.UUID, balance int64)
	Exists(id uuid.UUID) bool
	// Snapshot returns a copy of the full map for persistence.
	Snapshot() map[uuid.UUID]int64
	// ReplaceAll swaps in a full new balance map. It is an exclusive,
	// front-of-pipeline operation; callers must not interleave it with Set.
	ReplaceAll(balances map[uuid.UUID]int64)
	Len() int
}

// LedgerDocument is the durable key-value representation of the ledger:
// canonical account id strings mapped to fixed-point balances.
type LedgerDocument interface {
	// Load parses the document. Entries with malformed keys or values are
	// skipped, not fatal.
	Load() (map[uuid.UUID]int64, error)
	// Save rewrites the document from the given map.
	Save(balances map[uuid.UUID]int64) error
}

// CacheStats exposes cache counters for operational monitoring.
type CacheStats struct {
	Hits      int64 `json:"hits"`
	Misses    int64 `json:"misses"`
	Evictions int64 `json:"evictions"`
	Size      int   `json:"size"`
}

// EntityCache is a bounded, time-expiring cache of remotely-sourced
// entities. Find never triggers a remote fetch; population is the caller's
// job. Implementations hold copies, bound resident entries by a hard
// maximum, and expire entries past a fixed TTL.
type EntityCache[T any] interface {
	Find(id uuid.UUID) (T, bool)
	Save(id uuid.UUID, entity T)
	Delete(id uuid.UUID) bool
	Stats() CacheStats
}

// RemoteStore is the client protocol against the remote economy service.
// Failures are *remote.Error values classifying the transport/status cause;
// the get-or-create calls issue a create only on a not-found fetch result.
type RemoteStore interface {
	GetPlayer(ctx context.Context, id uuid.UUID) (domain.Player, error)
	GetPlayerByName(ctx context.Context, name string) (domain.Player, error)
	CreatePlayer(ctx context.Context, id uuid.UUID, name string) (domain.Player, error)
	GetOrCreatePlayer(ctx context.Context, id uuid.UUID, name string) (domain.Player, error)

	GetBalance(ctx context.Context, id uuid.UUID) (domain.BalanceSnapshot, error)
	CreateBalance(ctx context.Context, id uuid.UUID, initial int64) (domain.BalanceSnapshot, error)
	GetOrCreateBalance(ctx context.Context, id uuid.UUID, initial int64) (domain.BalanceSnapshot, error)
	Deposit(ctx context.Context, id uuid.UUID, amount int64) (domain.BalanceSnapshot, error)
	Withdraw(ctx context.Context, id uuid.UUID, amount int64) (domain.BalanceSnapshot, error)

	RegisterTransaction(ctx context.Context, from, to uuid.UUID, amount int64) (domain.Transaction, error)
}
