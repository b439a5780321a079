// Package memory holds the authoritative in-memory balance map.
package memory

import (
	"sync"

	"github.com/google/uuid"
)

// BalanceStore implements ports.BalanceStore with an RWMutex-guarded map.
// Absent accounts read as the configured default balance; an entry is
// materialized the first time it is written.
type BalanceStore struct {
	mu             sync.RWMutex
	balances       map[uuid.UUID]int64
	defaultBalance int64
}

// NewBalanceStore creates an empty store. defaultBalance is returned for
// accounts with no entry; the policy is supplied by configuration, not
// hardcoded here.
func NewBalanceStore(defaultBalance int64) *BalanceStore {
	return &BalanceStore{
		balances:       make(map[uuid.UUID]int64),
		defaultBalance: defaultBalance,
	}
}

func (s *BalanceStore) Get(id uuid.UUID) int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if b, ok := s.balances[id]; ok {
		return b
	}
	return s.defaultBalance
}

func (s *BalanceStore) Set(id uuid.UUID, balance int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.balances[id] = balance
}

func (s *BalanceStore) Exists(id uuid.UUID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.balances[id]
	return ok
}

// Snapshot returns a copy of the full map for persistence.
func (s *BalanceStore) Snapshot() map[uuid.UUID]int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[uuid.UUID]int64, len(s.balances))
	for id, b := range s.balances {
		out[id] = b
	}
	return out
}

// ReplaceAll swaps in a fresh map built from the given entries. Existing
// entries are discarded.
func (s *BalanceStore) ReplaceAll(balances map[uuid.UUID]int64) {
	fresh := make(map[uuid.UUID]int64, len(balances))
	for id, b := range balances {
		fresh[id] = b
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.balances = fresh
}

func (s *BalanceStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.balances)
}
