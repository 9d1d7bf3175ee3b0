package models

import "time"

type Notification struct {
	ID         uint   `gorm:"primaryKey;autoIncrement"`
	TargetType string `gorm:"type:varchar(10);not null;index:idx_notifications_target"`
	TargetID   string `gorm:"type:varchar(64);not null;index:idx_notifications_target"`
	Message    string `gorm:"type:text;not null"`
	Read       bool   `gorm:"not null;default:false"`
	CreatedAt  time.Time
}
