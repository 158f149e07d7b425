package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/pageza/moodrecipes/backend/internal/logging"
	"github.com/pageza/moodrecipes/backend/internal/model"
)

// RunMigrations creates or updates the recipes table
func RunMigrations(db *gorm.DB) error {
	logging.Info().Str("dialect", db.Dialector.Name()).Msg("running auto-migration")
	if err := db.AutoMigrate(&model.Recipe{}); err != nil {
		return fmt.Errorf("failed to migrate recipes table: %w", err)
	}
	return nil
}
