package db

import (
	"github.com/diewo77/go-contracts/internal/models"
	"gorm.io/gorm"
)

// Migrate runs AutoMigrate for all models.
// Call this at application startup or as part of a migration step.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		// Contracts & signatures
		&models.GeneratedContract{},
		&models.GeneratedClause{},
		&models.SignatureRequest{},
		// Regulatory filings
		&models.RevisalSubmission{},
		&models.D112Declaration{},
	)
}
