package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"portfolio-backend/models"
	"portfolio-backend/utils"
)

var DB *gorm.DB

// Init opens the Postgres connection and runs the schema migration.
func Init(dsn string) error {
	if dsn == "" {
		return fmt.Errorf("database URL is not configured")
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: utils.GetGormLogger(),
	})
	if err != nil {
		return fmt.Errorf("connecting to the database: %w", err)
	}

	if err := DB.AutoMigrate(&models.Contact{}); err != nil {
		return fmt.Errorf("migrating the database: %w", err)
	}

	utils.LogSuccess("Database connection successful")
	return nil
}
