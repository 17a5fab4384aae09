package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/abikefoods/storefront-api/internal/api"
	"github.com/abikefoods/storefront-api/internal/infrastructure/config"
	"github.com/abikefoods/storefront-api/internal/infrastructure/db/kv"
	mongodb "github.com/abikefoods/storefront-api/internal/infrastructure/db/mongo"
	redisdb "github.com/abikefoods/storefront-api/internal/infrastructure/db/redis"
	"github.com/abikefoods/storefront-api/internal/infrastructure/remote"
	"github.com/abikefoods/storefront-api/pkg/logger"
)

// @title        Abike Storefront API
// @version      1.0
// @description  Storefront and back-office data service.
// @securityDefinitions.apikey  BearerAuth
// @in    header
// @name  Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		boot := logger.Init(logger.Options{Level: "info"})
		boot.Fatal().Err(err).Msg("configuration failed")
	}

	logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.Env == "development"})
	log := logger.Get()

	if err := kv.CheckRegistry(); err != nil {
		log.Fatal().Err(err).Msg("key registry invalid")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("redis unavailable")
	}
	defer rdb.Close()

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo unavailable")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	store := redisdb.NewStore(rdb, log)

	// Fold legacy per-status order partitions into the single orders
	// partition before serving traffic.
	if moved := kv.NewOrderRepository(store).MigrateLegacyPartitions(ctx); moved > 0 {
		log.Info().Int("orders", moved).Msg("legacy order partitions migrated")
	}

	e := api.NewRouter(api.RouterDeps{
		Store:     store,
		Redis:     rdb,
		Mongo:     db,
		Remote:    remote.NewOrdersClient(cfg.Remote.OrdersBaseURL, cfg.Remote.Timeout),
		JWTSecret: cfg.JWTSecret,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
