package service

import (
	"math"

	"github.com/HenriqueMichelini/craftalism-economy-sub001/internal/core/ports"
	"github.com/HenriqueMichelini/craftalism-economy-sub001/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// AccountServiceImpl implements ports.AccountService over the balance
// store. Every mutation holds the account's lock, so two operations on the
// same account are serialized and no update is lost; a transfer holds both
// locks so readers of the pair observe it fully applied or not at all.
type AccountServiceImpl struct {
	store ports.BalanceStore
	locks *accountLocks
	log   zerolog.Logger
}

// NewAccountService creates a new AccountServiceImpl.
func NewAccountService(store ports.BalanceStore, log zerolog.Logger) *AccountServiceImpl {
	return &AccountServiceImpl{
		store: store,
		locks: newAccountLocks(),
		log:   log,
	}
}

// Balance returns the current balance in fixed-point units. It takes the
// account lock, so a balance read never observes the middle of a transfer
// touching this account.
func (s *AccountServiceImpl) Balance(id uuid.UUID) int64 {
	mu := s.locks.forAccount(id)
	mu.Lock()
	defer mu.Unlock()
	return s.store.Get(id)
}

// Deposit adds amount to the account. The overflow guard runs before any
// mutation: a rejected deposit leaves the balance untouched.
func (s *AccountServiceImpl) Deposit(id uuid.UUID, amount int64) error {
	if amount <= 0 {
		return apperror.ErrInvalidAmount()
	}

	mu := s.locks.forAccount(id)
	mu.Lock()
	defer mu.Unlock()

	current := s.store.Get(id)
	if current > math.MaxInt64-amount {
		return apperror.ErrBalanceOverflow()
	}
	s.store.Set(id, current+amount)

	s.log.Debug().
		Str("account_id", id.String()).
		Int64("amount", amount).
		Int64("balance", current+amount).
		Msg("deposit applied")
	return nil
}

// Withdraw removes amount from the account, failing on insufficient funds.
func (s *AccountServiceImpl) Withdraw(id uuid.UUID, amount int64) error {
	if amount <= 0 {
		return apperror.ErrInvalidAmount()
	}

	mu := s.locks.forAccount(id)
	mu.Lock()
	defer mu.Unlock()

	current := s.store.Get(id)
	if current < amount {
		return apperror.ErrInsufficientFunds()
	}
	s.store.Set(id, current-amount)

	s.log.Debug().
		Str("account_id", id.String()).
		Int64("amount", amount).
		Int64("balance", current-amount).
		Msg("withdrawal applied")
	return nil
}

// Transfer moves amount between two distinct accounts. All checks run
// before either side mutates; both locks are held across the two writes.
func (s *AccountServiceImpl) Transfer(from, to uuid.UUID, amount int64) error {
	if from == to {
		return apperror.ErrSelfTransfer()
	}
	if amount <= 0 {
		return apperror.ErrInvalidAmount()
	}

	unlock := s.locks.lockPair(from, to)
	defer unlock()

	fromBalance := s.store.Get(from)
	if fromBalance < amount {
		return apperror.ErrInsufficientFunds()
	}
	toBalance := s.store.Get(to)
	if toBalance > math.MaxInt64-amount {
		return apperror.ErrBalanceOverflow()
	}

	s.store.Set(from, fromBalance-amount)
	s.store.Set(to, toBalance+amount)

	s.log.Info().
		Str("from", from.String()).
		Str("to", to.String()).
		Int64("amount", amount).
		Msg("transfer applied")
	return nil
}

// SetBalance is the administrative overwrite. Negative targets are
// rejected; overdrafts only ever arise from caller-level policy, not
// administration.
func (s *AccountServiceImpl) SetBalance(id uuid.UUID, balance int64) error {
	if balance < 0 {
		return apperror.ErrNegativeBalance()
	}

	mu := s.locks.forAccount(id)
	mu.Lock()
	defer mu.Unlock()

	s.store.Set(id, balance)

	s.log.Info().
		Str("account_id", id.String()).
		Int64("balance", balance).
		Msg("balance set")
	return nil
}
