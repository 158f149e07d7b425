package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/pageza/moodrecipes/backend/config"
	"github.com/pageza/moodrecipes/backend/internal/database"
	"github.com/pageza/moodrecipes/backend/internal/logging"
	"github.com/pageza/moodrecipes/backend/internal/router"
	"github.com/pageza/moodrecipes/backend/internal/server"
	"github.com/pageza/moodrecipes/backend/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to load configuration")
	}
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	db, err := database.New(cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer database.Close(db)

	if err := database.RunMigrations(db); err != nil {
		logging.Fatal().Err(err).Msg("failed to run migrations")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	inserted, err := database.SeedRecipes(ctx, db, false)
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to seed recipes")
	}
	if inserted > 0 {
		logging.Info().Int("count", inserted).Msg("seeded sample recipes")
	}

	var locker service.Locker
	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to connect to Redis")
	}
	if redisClient != nil {
		defer redisClient.Close()
		locker = service.NewRedisLocker(redisClient, service.RedisLockConfig{})
	}

	srv := server.New(cfg, router.SetupRouter(cfg, db, locker))
	if err := srv.Start(ctx); err != nil {
		logging.Fatal().Err(err).Msg("server error")
	}
	logging.Info().Msg("server stopped")
}
