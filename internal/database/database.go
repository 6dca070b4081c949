package database

import (
	"coinnect-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Connect opens the gorm connection used by the whole service.
// Tests replace DB with an in-memory sqlite handle instead.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	DB = db
	return db, nil
}

// Migrate applies the schema for every persisted record type.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Skill{},
		&models.Transaction{},
		&models.TrustScore{},
		&models.AuditEvent{},
	)
}
