package models

import (
	"database/sql"
	"time"
)

type Submission struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	UserID     uint      `gorm:"not null;index"`
	TaskID     uint      `gorm:"not null;index"`
	Proof      string    `gorm:"type:text;not null"`
	Status     string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt  time.Time `gorm:"index"`
	ReviewedAt sql.NullTime
}
