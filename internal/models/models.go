package models

import "gorm.io/gorm"

// AllModels returns all models for migration.
func AllModels() []interface{} {
	return []interface{}{
		&Genre{},
		&Game{},
	}
}

// AutoMigrate runs GORM auto-migration for all models, including the
// game_genres join table.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}
