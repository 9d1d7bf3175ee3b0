package models

import (
	"database/sql"
	"time"
)

type Admin struct {
	ID              uint           `gorm:"primaryKey;autoIncrement"`
	TelegramID      string         `gorm:"type:varchar(64);uniqueIndex;not null"`
	IsOwner         bool           `gorm:"not null;default:false"`
	IsActive        bool           `gorm:"not null"`
	AllowedCommands sql.NullString `gorm:"type:text"`
	AddedAt         time.Time      `gorm:"autoCreateTime"`
}
