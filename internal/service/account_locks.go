package service

import (
	"bytes"
	"sync"

	"github.com/google/uuid"
)

// accountLocks serializes mutations per account. Locks are created lazily
// and kept for the process lifetime; the population is bounded by the number
// of accounts ever touched.
type accountLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func newAccountLocks() *accountLocks {
	return &accountLocks{locks: make(map[uuid.UUID]*sync.Mutex)}
}

func (l *accountLocks) forAccount(id uuid.UUID) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	if m, ok := l.locks[id]; ok {
		return m
	}
	m := &sync.Mutex{}
	l.locks[id] = m
	return m
}

// lockPair acquires both account locks in a stable order so that two
// concurrent transfers over the same pair can never deadlock. The returned
// function releases both.
func (l *accountLocks) lockPair(a, b uuid.UUID) func() {
	first, second := l.forAccount(a), l.forAccount(b)
	if bytes.Compare(a[:], b[:]) > 0 {
		first, second = second, first
	}
	first.Lock()
	second.Lock()
	return func() {
		second.Unlock()
		first.Unlock()
	}
}
