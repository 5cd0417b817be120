package main

import (
	"context"
	"os"

	"github.com/nify/user-portal/internal/api"
	"github.com/nify/user-portal/internal/api/session"
	"github.com/nify/user-portal/internal/infrastructure/bootstrap"
	"github.com/nify/user-portal/internal/infrastructure/config"
	mongodb "github.com/nify/user-portal/internal/infrastructure/db/mongo"
	redisdb "github.com/nify/user-portal/internal/infrastructure/db/redis"
	"github.com/nify/user-portal/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.Production(),
	})

	ctx := context.Background()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Error().Err(err).Msg("mongo connection failed")
		os.Exit(1)
	}
	defer func() { _ = client.Disconnect(ctx) }()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Error().Err(err).Msg("redis connection failed")
		os.Exit(1)
	}
	defer func() { _ = rdb.Close() }()

	userRepo := mongodb.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Error().Err(err).Msg("index creation failed")
		os.Exit(1)
	}

	if err := bootstrap.SeedAdmin(ctx, userRepo, cfg.Admin.Nickname, cfg.Admin.Password, log); err != nil {
		log.Error().Err(err).Msg("admin seeding failed")
		os.Exit(1)
	}

	if cfg.Production() && cfg.Session.Secret == "" {
		log.Error().Msg("SESSION_SECRET must be set in production")
		os.Exit(1)
	}
	sessions := session.NewManager(cfg.Session.Secret, cfg.Session.TTL, cfg.Production())

	e := api.NewRouter(db, rdb, sessions, log)

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting user portal API")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
