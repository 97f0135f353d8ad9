package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/unerg-ais/reporting-system/internal/api"
	"github.com/unerg-ais/reporting-system/internal/core/service"
	"github.com/unerg-ais/reporting-system/internal/infrastructure/config"
	mongodb "github.com/unerg-ais/reporting-system/internal/infrastructure/db/mongo"
	redisdb "github.com/unerg-ais/reporting-system/internal/infrastructure/db/redis"
	"github.com/unerg-ais/reporting-system/internal/infrastructure/email"
	"github.com/unerg-ais/reporting-system/internal/infrastructure/queue"
	"github.com/unerg-ais/reporting-system/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Service: "reporting-api",
		Pretty:  cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()
	log.Info().Str("database", cfg.Mongo.Database).Msg("mongodb connection established")

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()
	log.Info().Str("addr", cfg.Redis.Addr).Msg("redis connection established")

	authRepo := mongodb.NewAuthRepository(db)
	reportRepo := mongodb.NewReportRepository(db)
	if err := authRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("admin index creation failed")
	}
	if err := reportRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("report index creation failed")
	}

	// Seed the default admin account so a fresh deployment is usable
	// immediately. A no-op when the account already exists.
	authService := service.NewAuthService(authRepo, cfg.JWTSecret, cfg.TokenTTL)
	if err := authService.EnsureBootstrapAdmin(ctx, cfg.AdminPassword); err != nil {
		log.Fatal().Err(err).Msg("bootstrap admin seeding failed")
	}

	notifier := email.NewSMTPNotifier(email.SMTPConfig{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
		To:       cfg.SMTP.To,
	})
	dispatcher := queue.NewDispatcher(0, notifier, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(db, rdb, cfg, dispatcher, log)

	go func() {
		log.Info().Str("port", cfg.Port).Msg("starting http server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("http server stopped unexpectedly")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		os.Exit(1)
	}
	log.Info().Msg("server stopped")
}
