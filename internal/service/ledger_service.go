package service

import (
	"context"
	"fmt"
	"time"

	"github.com/HenriqueMichelini/craftalism-economy-sub001/internal/core/ports"

	"github.com/rs/zerolog"
)

// LedgerServiceImpl implements ports.LedgerService: it moves the balance
// map between the store and its durable document.
type LedgerServiceImpl struct {
	store    ports.BalanceStore
	doc      ports.LedgerDocument
	interval time.Duration
	log      zerolog.Logger
}

// NewLedgerService creates a new LedgerServiceImpl. interval is the
// autosave period for Run.
func NewLedgerService(store ports.BalanceStore, doc ports.LedgerDocument, interval time.Duration, log zerolog.Logger) *LedgerServiceImpl {
	return &LedgerServiceImpl{
		store:    store,
		doc:      doc,
		interval: interval,
		log:      log,
	}
}

// Load replaces the in-memory map from the document. It must run before
// the store receives traffic; it is not safe to interleave with Set.
func (s *LedgerServiceImpl) Load() error {
	balances, err := s.doc.Load()
	if err != nil {
		return fmt.Errorf("loading ledger document: %w", err)
	}
	s.store.ReplaceAll(balances)
	s.log.Info().Int("accounts", len(balances)).Msg("ledger loaded")
	return nil
}

// Save persists the current map. A failed save is reported to the caller
// and logged, but the in-memory ledger stays authoritative; the next save
// may succeed.
func (s *LedgerServiceImpl) Save() error {
	snapshot := s.store.Snapshot()
	if err := s.doc.Save(snapshot); err != nil {
		s.log.Error().Err(err).Int("accounts", len(snapshot)).Msg("ledger save failed")
		return err
	}
	s.log.Debug().Int("accounts", len(snapshot)).Msg("ledger saved")
	return nil
}

// Run autosaves on the configured interval until ctx is done, then saves
// once more on the way out.
func (s *LedgerServiceImpl) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			_ = s.Save() // already logged; the operator watches for repeats
		case <-ctx.Done():
			if err := s.Save(); err == nil {
				s.log.Info().Msg("final ledger save complete")
			}
			return
		}
	}
}
