package database

import (
	"gorm.io/gorm"

	"bountyboard_backend/internal/models"
)

// AutoMigrate создает и обновляет схему базы данных
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Brief{},
		&models.Submission{},
		&models.Feedback{},
		&models.InfluencerApplication{},
	)
}
