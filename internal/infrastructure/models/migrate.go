package models

import "gorm.io/gorm"

// All returns every persisted model in dependency order
func All() []interface{} {
	return []interface{}{
		&User{},
		&Task{},
		&Submission{},
		&Withdrawal{},
		&Transaction{},
		&Notification{},
		&Admin{},
		&Referral{},
		&AppSetting{},
	}
}

// AutoMigrate creates or updates the schema for all models
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(All()...)
}
