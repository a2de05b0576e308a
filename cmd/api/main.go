package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/adboard/listings-api/internal/api"
	"github.com/adboard/listings-api/internal/core/service"
	"github.com/adboard/listings-api/internal/infrastructure/config"
	"github.com/adboard/listings-api/internal/infrastructure/db/postgres"
	redisinfra "github.com/adboard/listings-api/internal/infrastructure/db/redis"
	"github.com/adboard/listings-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Init(logger.Options{})
		l := logger.Get()
		l.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	db, err := postgres.Connect(cfg.Postgres.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer postgres.Close(db)

	// Redis is optional: without it the listing cache is disabled and
	// readiness reports only the database.
	rdb, err := redisinfra.Connect(ctx, redisinfra.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, listing cache disabled")
		rdb = nil
	} else {
		defer rdb.Close()
	}

	users := postgres.NewUserRepository(db)
	if err := service.EnsureRootUser(ctx, users, cfg.Bootstrap.RootUsername, cfg.Bootstrap.RootPassword, log); err != nil {
		log.Fatal().Err(err).Msg("root bootstrap failed")
	}

	e := api.NewRouter(db, rdb, cfg)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
