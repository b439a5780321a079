package handler

import (
	"github.com/HenriqueMichelini/craftalism-economy-sub001/internal/adapter/http/middleware"
	"github.com/HenriqueMichelini/craftalism-economy-sub001/internal/core/domain"
	"github.com/HenriqueMichelini/craftalism-economy-sub001/internal/core/ports"
	"github.com/HenriqueMichelini/craftalism-economy-sub001/pkg/money"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Mode           string // gin mode: debug, release, test; anything else means release
	AccountSvc     ports.AccountService
	PlayerSvc      ports.PlayerService // nil = remote player features disabled
	BalanceStore   ports.BalanceStore
	PlayerCache    ports.EntityCache[domain.Player]
	SnapshotCache  ports.EntityCache[domain.BalanceSnapshot]
	Codec          *money.Codec
	RateLimitStore *middleware.RateLimitStore // nil = rate limiting disabled
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	switch deps.Mode {
	case gin.DebugMode, gin.TestMode:
		gin.SetMode(deps.Mode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 16)) // amounts and names only; 64 KiB is generous

	r.GET("/health", HealthCheck())

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	accountHandler := NewAccountHandler(deps.AccountSvc, deps.PlayerSvc, deps.Codec)
	accounts := v1.Group("/accounts")
	{
		accounts.GET("/:id/balance", rl("accounts"), accountHandler.GetBalance)
		accounts.POST("/:id/deposit", rl("accounts"), accountHandler.Deposit)
		accounts.POST("/:id/withdraw", rl("accounts"), accountHandler.Withdraw)
		accounts.POST("/:id/transfer", rl("accounts"), accountHandler.Transfer)
	}

	admin := v1.Group("/admin")
	{
		admin.PUT("/accounts/:id/balance", rl("admin"), accountHandler.SetBalance)
	}

	if deps.PlayerSvc != nil {
		playerHandler := NewPlayerHandler(deps.PlayerSvc, deps.Codec)
		players := v1.Group("/players")
		{
			players.POST("/:id/join", rl("players"), playerHandler.Join)
			players.POST("/:id/quit", rl("players"), playerHandler.Quit)
			players.GET("/:id", rl("players"), playerHandler.Get)
			players.GET("/by-name/:name", rl("players"), playerHandler.GetByName)
			players.GET("/:id/remote-balance", rl("players"), playerHandler.RemoteBalance)
		}
	}

	statsHandler := NewStatsHandler(deps.BalanceStore, deps.PlayerCache, deps.SnapshotCache)
	v1.GET("/stats", rl("stats"), statsHandler.GetStats)

	return r
}
