package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/HenriqueMichelini/craftalism-economy-sub001/config"
	"github.com/HenriqueMichelini/craftalism-economy-sub001/internal/adapter/cache"
	httpHandler "github.com/HenriqueMichelini/craftalism-economy-sub001/internal/adapter/http/handler"
	"github.com/HenriqueMichelini/craftalism-economy-sub001/internal/adapter/http/middleware"
	"github.com/HenriqueMichelini/craftalism-economy-sub001/internal/adapter/remote"
	fileStorage "github.com/HenriqueMichelini/craftalism-economy-sub001/internal/adapter/storage/file"
	"github.com/HenriqueMichelini/craftalism-economy-sub001/internal/adapter/storage/memory"
	"github.com/HenriqueMichelini/craftalism-economy-sub001/internal/core/domain"
	"github.com/HenriqueMichelini/craftalism-economy-sub001/internal/core/ports"
	"github.com/HenriqueMichelini/craftalism-economy-sub001/internal/service"
	"github.com/HenriqueMichelini/craftalism-economy-sub001/pkg/logger"
	"github.com/HenriqueMichelini/craftalism-economy-sub001/pkg/money"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting economy service")

	// Currency codec
	codec, err := money.NewCodec(cfg.Currency.Locale, cfg.Currency.Symbol, cfg.Currency.Fallback)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize currency codec")
	}

	// Ledger: in-memory store hydrated from the YAML document
	store := memory.NewBalanceStore(cfg.Currency.DefaultBalance)
	ledgerDoc := fileStorage.NewLedgerFile(cfg.Ledger.Path, log)
	ledgerSvc := service.NewLedgerService(store, ledgerDoc, cfg.Ledger.AutosaveInterval, log)
	if err := ledgerSvc.Load(); err != nil {
		log.Fatal().Err(err).Str("path", cfg.Ledger.Path).Msg("Failed to load ledger")
	}
	log.Info().Int("accounts", store.Len()).Msg("Ledger loaded")

	// Entity caches
	playerCache := cache.New[domain.Player](cfg.Cache.MaxEntries, cfg.Cache.TTL)
	snapshotCache := cache.New[domain.BalanceSnapshot](cfg.Cache.MaxEntries, cfg.Cache.TTL)

	// Business services
	accountSvc := service.NewAccountService(store, log)

	// Remote economy backend is optional; without it the service runs
	// local-only and the player endpoints are not mounted.
	var playerSvc ports.PlayerService
	if cfg.Remote.BaseURL != "" {
		remoteStore := remote.NewClient(cfg.Remote.BaseURL, cfg.Remote.ConnectTimeout, cfg.Remote.RequestTimeout, log)
		playerSvc = service.NewPlayerService(playerCache, snapshotCache, remoteStore, cfg.Currency.DefaultBalance, log)
		log.Info().Str("base_url", cfg.Remote.BaseURL).Msg("Remote economy backend configured")
	} else {
		log.Warn().Msg("No remote base URL configured, running local-only")
	}

	// Rate limit store
	rateLimitStore := middleware.NewRateLimitStore(cfg.Cache.MaxEntries, 10*time.Minute)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Mode:           cfg.Server.Mode,
		AccountSvc:     accountSvc,
		PlayerSvc:      playerSvc,
		BalanceStore:   store,
		PlayerCache:    playerCache,
		SnapshotCache:  snapshotCache,
		Codec:          codec,
		RateLimitStore: rateLimitStore,
		Logger:         log,
	})

	// Autosave loop, cancelled on shutdown; Run performs a final save.
	autosaveCtx, stopAutosave := context.WithCancel(context.Background())
	autosaveDone := make(chan struct{})
	go func() {
		ledgerSvc.Run(autosaveCtx)
		close(autosaveDone)
	}()

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	// Stop the autosave loop and wait for the final ledger flush.
	stopAutosave()
	<-autosaveDone

	log.Info().Msg("Server exited")
}
