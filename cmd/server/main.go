package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/mikens/recetas-api/internal/api"
	"github.com/mikens/recetas-api/internal/infrastructure/db/mongo"
	"github.com/mikens/recetas-api/internal/infrastructure/db/redis"
	"github.com/mikens/recetas-api/internal/pkg/config"
	"github.com/mikens/recetas-api/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	secret, devFallback := cfg.SigningSecret()
	if devFallback {
		log.Warn().Msg("JWT_SECRET is not set; falling back to the insecure development secret")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	if err := mongo.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("mongodb index creation failed")
	}

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		_ = rdb.Close()
	}()

	e := api.NewRouter(db, rdb, api.Options{
		JWTSecret:  secret,
		AdminEmail: cfg.AdminEmail,
	}, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("recetas api started")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
