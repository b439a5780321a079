package handler

import (
	"net/http"
	"time"

	"github.com/HenriqueMichelini/craftalism-economy-sub001/internal/adapter/http/dto"
	"github.com/HenriqueMichelini/craftalism-economy-sub001/internal/core/domain"
	"github.com/HenriqueMichelini/craftalism-economy-sub001/internal/core/ports"
	"github.com/HenriqueMichelini/craftalism-economy-sub001/pkg/response"

	"github.com/gin-gonic/gin"
)

// StatsHandler exposes operational counters: ledger size and cache
// hit/miss/eviction totals.
type StatsHandler struct {
	store     ports.BalanceStore
	players   ports.EntityCache[domain.Player]
	snapshots ports.EntityCache[domain.BalanceSnapshot]
	started   time.Time
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(
	store ports.BalanceStore,
	players ports.EntityCache[domain.Player],
	snapshots ports.EntityCache[domain.BalanceSnapshot],
) *StatsHandler {
	return &StatsHandler{
		store:     store,
		players:   players,
		snapshots: snapshots,
		started:   time.Now(),
	}
}

// GetStats handles GET /api/v1/stats.
func (h *StatsHandler) GetStats(c *gin.Context) {
	response.OK(c, dto.StatsResponse{
		Accounts:      h.store.Len(),
		PlayerCache:   toCacheStats(h.players.Stats()),
		SnapshotCache: toCacheStats(h.snapshots.Stats()),
		UptimeSeconds: int64(time.Since(h.started).Seconds()),
	})
}

func toCacheStats(s ports.CacheStats) dto.CacheStatsResponse {
	return dto.CacheStatsResponse{
		Hits:      s.Hits,
		Misses:    s.Misses,
		Evictions: s.Evictions,
		Size:      s.Size,
	}
}

// HealthCheck reports process liveness. The ledger is in-memory, so a
// responding process is a healthy one.
func HealthCheck() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
