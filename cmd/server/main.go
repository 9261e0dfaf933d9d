package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"match-wager/internal/config"
	"match-wager/internal/database"
	"match-wager/internal/event"
	"match-wager/internal/handler"
	"match-wager/internal/lock"
	"match-wager/internal/logger"
	"match-wager/internal/repository"
	"match-wager/internal/repository/memory"
	"match-wager/internal/repository/postgres"
	"match-wager/internal/riot"
	"match-wager/internal/service"
	"match-wager/internal/worker"

	"github.com/joho/godotenv"

	_ "match-wager/docs"
)

// @title Match Wager API
// @version 1.0
// @description API for coin wagers settled from observed League matches
// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Local development convenience, missing .env is fine
	_ = godotenv.Load()

	// Setup logger
	log := logger.New(true)

	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	// Repositories, backed by memory or postgres depending on config
	var (
		userRepo  repository.UserRepository
		transRepo repository.TransactionRepository
		wagerRepo repository.WagerRepository
	)
	switch cfg.Store.Backend {
	case "postgres":
		dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		dbPool, err := database.NewPool(dbCtx, cfg.Database)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer dbPool.Close()

		userRepo = postgres.NewUserRepository(dbPool)
		transRepo = postgres.NewTransactionRepository(dbPool)
		wagerRepo = postgres.NewWagerRepository(dbPool)
	case "memory":
		userRepo = memory.NewUserRepository()
		transRepo = memory.NewTransactionRepository()
		wagerRepo = memory.NewWagerRepository()
	default:
		log.Fatal().Str("backend", cfg.Store.Backend).Msg("unknown store backend")
	}
	log.Info().Str("backend", cfg.Store.Backend).Msg("Store initialized")

	// Shared infrastructure
	locks := lock.NewKeyedMutex()
	bus := event.NewBus(64)

	provider := riot.NewClient(cfg.Riot.APIKey, cfg.Riot.HTTPTimeout, cfg.Riot.RecentMatchCount)

	// Services
	ledgerService := service.NewLedgerService(userRepo, transRepo, locks, bus, log)
	userService := service.NewUserService(userRepo, bus, log)
	wagerService := service.NewWagerService(userRepo, wagerRepo, ledgerService, provider, locks, bus, log)
	rewardService := service.NewRewardService(ledgerService, cfg.Reward, log)

	// Root context to be canceled on SIGINT / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Worker resolving in-play wagers
	resolutionWorker := worker.NewResolutionWorker(wagerService, cfg.Worker.ResolutionInterval, log)
	resolutionWorker.Start(ctx)
	defer resolutionWorker.Stop()

	// http handler
	h := handler.NewHandler(userService, wagerService, ledgerService, rewardService, log)
	router := h.SetupRoutes()

	// http server configuration
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Str("port", cfg.Server.Port).Msg("Server started")

	// Wait for shutdown signal
	<-ctx.Done()
	log.Info().Msg("Shutdown signal received, starting graceful shutdown...")

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown error")
	} else {
		log.Info().Msg("HTTP server stopped gracefully")
	}

	log.Info().Msg("Shutdown complete")
}
