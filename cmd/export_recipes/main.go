package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/pageza/moodrecipes/backend/config"
	"github.com/pageza/moodrecipes/backend/internal/database"
	"github.com/pageza/moodrecipes/backend/internal/logging"
	"github.com/pageza/moodrecipes/backend/internal/service"
)

func main() {
	presign := flag.Duration("presign", 0, "Also print a presigned download URL valid for this long")
	timeout := flag.Duration("timeout", time.Minute, "Overall export timeout")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to load configuration")
	}
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	db, err := database.New(cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer database.Close(db)

	s3cfg, err := config.NewS3Config(ctx, cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to configure S3")
	}

	exporter := service.NewExportService(service.NewRecipeService(db), s3cfg.Client, s3cfg.BucketName)
	key, err := exporter.Export(ctx)
	if err != nil {
		logging.Fatal().Err(err).Msg("export failed")
	}
	logging.Info().Str("bucket", s3cfg.BucketName).Str("key", key).Msg("recipes exported")

	if *presign > 0 {
		url, err := s3cfg.GeneratePresignedURL(ctx, key, *presign)
		if err != nil {
			logging.Fatal().Err(err).Msg("failed to presign snapshot")
		}
		fmt.Println(url)
	}
}
