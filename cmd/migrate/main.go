package main

import (
	"context"
	"flag"

	"github.com/pageza/moodrecipes/backend/config"
	"github.com/pageza/moodrecipes/backend/internal/database"
	"github.com/pageza/moodrecipes/backend/internal/logging"
)

func main() {
	seed := flag.Bool("seed", true, "Insert the sample recipes into an empty table")
	flag.Parse()

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
	logging.Info().Str("driver", cfg.DBDriver).Msg("migrations applied")

	if !*seed {
		return
	}
	inserted, err := database.SeedRecipes(context.Background(), db, false)
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to seed recipes")
	}
	logging.Info().Int("count", inserted).Msg("seed complete")
}
