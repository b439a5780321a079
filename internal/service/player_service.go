package service

import (
	"context"
	"errors"
	"time"

	"github.com/HenriqueMichelini/craftalism-economy-sub001/internal/adapter/remote"
	"github.com/HenriqueMichelini/craftalism-economy-sub001/internal/core/domain"
	"github.com/HenriqueMichelini/craftalism-economy-sub001/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const registerTimeout = 10 * time.Second

// PlayerServiceImpl implements ports.PlayerService: the join/quit lifecycle
// over cache + remote store, and best-effort remote registration of local
// transfers.
type PlayerServiceImpl struct {
	players        ports.EntityCache[domain.Player]
	balances       ports.EntityCache[domain.BalanceSnapshot]
	remote         ports.RemoteStore
	defaultBalance int64
	log            zerolog.Logger
}

// NewPlayerService creates a new PlayerServiceImpl. defaultBalance is the
// starting balance for accounts created remotely on first join.
func NewPlayerService(
	players ports.EntityCache[domain.Player],
	balances ports.EntityCache[domain.BalanceSnapshot],
	remoteStore ports.RemoteStore,
	defaultBalance int64,
	log zerolog.Logger,
) *PlayerServiceImpl {
	return &PlayerServiceImpl{
		players:        players,
		balances:       balances,
		remote:         remoteStore,
		defaultBalance: defaultBalance,
		log:            log,
	}
}

// HandleJoin resolves the player record on join. A cached record with the
// current display name is served as-is; otherwise the record is fetched (or
// created, on first join) remotely, the display name refreshed, and the
// result cached.
func (s *PlayerServiceImpl) HandleJoin(ctx context.Context, id uuid.UUID, name string) (domain.Player, error) {
	if p, ok := s.players.Find(id); ok && p.Name == name {
		return p, nil
	}

	p, err := s.remote.GetOrCreatePlayer(ctx, id, name)
	if err != nil {
		return domain.Player{}, err
	}
	if p.Name != name {
		// Name changed game-side since the remote record was written.
		p = p.WithName(name)
	}
	s.players.Save(p.ID, p)

	s.log.Info().
		Str("player_id", p.ID.String()).
		Str("name", p.Name).
		Msg("player joined")
	return p, nil
}

// HandleQuit invalidates the player's cached entities.
func (s *PlayerServiceImpl) HandleQuit(id uuid.UUID) {
	s.players.Delete(id)
	s.balances.Delete(id)
	s.log.Debug().Str("player_id", id.String()).Msg("player cache invalidated on quit")
}

// Lookup returns the player record, consulting the cache before the remote
// store.
func (s *PlayerServiceImpl) Lookup(ctx context.Context, id uuid.UUID) (domain.Player, error) {
	if p, ok := s.players.Find(id); ok {
		return p, nil
	}
	p, err := s.remote.GetPlayer(ctx, id)
	if err != nil {
		return domain.Player{}, err
	}
	s.players.Save(p.ID, p)
	return p, nil
}

// LookupByName resolves a player by display name. The cache is keyed by
// identifier, so the remote store is always consulted; the result is
// cached under its identifier for subsequent Lookup calls.
func (s *PlayerServiceImpl) LookupByName(ctx context.Context, name string) (domain.Player, error) {
	p, err := s.remote.GetPlayerByName(ctx, name)
	if err != nil {
		return domain.Player{}, err
	}
	s.players.Save(p.ID, p)
	return p, nil
}

// RemoteBalance returns the remote balance snapshot for an account,
// cache-first. Snapshots may be stale up to the cache TTL.
func (s *PlayerServiceImpl) RemoteBalance(ctx context.Context, id uuid.UUID) (domain.BalanceSnapshot, error) {
	if snap, ok := s.balances.Find(id); ok {
		return snap, nil
	}
	snap, err := s.remote.GetOrCreateBalance(ctx, id, s.defaultBalance)
	if err != nil {
		return domain.BalanceSnapshot{}, err
	}
	s.balances.Save(snap.AccountID, snap)
	return snap, nil
}

// QueueTransferRegistration registers a completed local transfer with the
// remote service asynchronously. The transfer has already happened; a
// registration failure is logged for the operator and never unwinds the
// ledger.
func (s *PlayerServiceImpl) QueueTransferRegistration(from, to uuid.UUID, amount int64) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), registerTimeout)
		defer cancel()
		s.registerTransfer(ctx, from, to, amount)
	}()
}

func (s *PlayerServiceImpl) registerTransfer(ctx context.Context, from, to uuid.UUID, amount int64) {
	txn, err := s.remote.RegisterTransaction(ctx, from, to, amount)
	if err != nil {
		evt := s.log.Warn().
			Err(err).
			Str("from", from.String()).
			Str("to", to.String()).
			Int64("amount", amount)
		var re *remote.Error
		if errors.As(err, &re) {
			evt = evt.Bool("retryable", re.Retryable())
		}
		evt.Msg("failed to register transfer remotely")
		return
	}

	s.log.Debug().
		Str("transaction_id", txn.ID.String()).
		Time("created_at", txn.CreatedAt).
		Msg("transfer registered remotely")
}
