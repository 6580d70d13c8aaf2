package database

import (
	"fmt"

	"placement_backend/internal/config"
	"placement_backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var gormDB *gorm.DB

// ConnectGorm opens the shared GORM connection using the configured DSN.
func ConnectGorm() (*gorm.DB, error) {
	if gormDB != nil {
		return gormDB, nil
	}

	cfg := config.GetConfig()

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	gormDB = db
	return db, nil
}

// AutoMigrate creates or updates the schema for every model.
func AutoMigrate() error {
	db, err := ConnectGorm()
	if err != nil {
		return err
	}

	// uuid_generate_v4 default on primary keys
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return fmt.Errorf("enable uuid-ossp extension: %w", err)
	}

	return db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.StudentProfile{},
		&models.CompanyProfile{},
		&models.UserSkill{},
		&models.Experience{},
		&models.UserProject{},
		&models.Certification{},
		&models.InterestedRole{},
		&models.InterestedCompany{},
		&models.Resume{},
		&models.JobPosting{},
		&models.JobBranch{},
		&models.JobSkill{},
		&models.ProcessStep{},
		&models.Application{},
		&models.ProcessStepCompletion{},
		&models.Notification{},
	)
}
