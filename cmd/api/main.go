package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bugtrack/bugtrack-api/internal/api"
	"github.com/bugtrack/bugtrack-api/internal/auth"
	"github.com/bugtrack/bugtrack-api/internal/core/service"
	mongodb "github.com/bugtrack/bugtrack-api/internal/infrastructure/db/mongo"
	redisdb "github.com/bugtrack/bugtrack-api/internal/infrastructure/db/redis"
	"github.com/bugtrack/bugtrack-api/internal/infrastructure/queue"
	"github.com/bugtrack/bugtrack-api/internal/pkg/config"
	"github.com/bugtrack/bugtrack-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title                      BugTrack API
// @version                    1.0
// @description                Bug tracking backend with token-based authentication.
// @BasePath                   /
// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Config is loaded before anything else: a missing JWT_SECRET or
	// AUTH_PEPPER aborts here, before a socket is ever bound.
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		return err
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	if err := mongodb.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		return err
	}
	defer rdb.Close()

	hasher := auth.NewPasswordHasher(cfg.AuthPepper)
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)

	auditWriter := service.NewAuditWriter(mongodb.NewAuditRepository(db), log)
	dispatcher := queue.NewDispatcher(0, auditWriter, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(db, rdb, hasher, tokens, dispatcher, log)

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
